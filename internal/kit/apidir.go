package kit

import (
	"fmt"

	"kit/internal/apidir"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type apiDirTool struct {
	form
	apis  []apidir.API
	shown []apidir.API
}

func newAPIDirTool() *apiDirTool {
	apis, err := apidir.Load()
	if err != nil {
		Logger().Error("api directory failed to load", zap.Error(err))
	}
	return &apiDirTool{
		form: newForm(
			[]string{"Search"},
			[]string{"Search APIs..."},
		),
		apis:  apis,
		shown: apis,
	}
}

func (t *apiDirTool) Name() string       { return "API Directory" }
func (t *apiDirTool) Slug() string       { return "api-directory" }
func (t *apiDirTool) Category() Category { return CategoryViewers }

func (t *apiDirTool) Options(m *Model) string {
	return fmt.Sprintf("%d of %d", len(t.shown), len(t.apis))
}

func (t *apiDirTool) Changed(m *Model, i int) tea.Cmd {
	t.shown = apidir.Filter(t.apis, t.value(0))
	return nil
}

// Outputs lists one entry per API. Copying an entry copies its link.
func (t *apiDirTool) Outputs() []output {
	out := make([]output, len(t.shown))
	for i, a := range t.shown {
		out[i] = output{
			label:  a.Name,
			value:  a.Link,
			styled: fmt.Sprintf("%s [%s]\n%s", a.Description, a.Auth, a.Link),
		}
	}
	return out
}
