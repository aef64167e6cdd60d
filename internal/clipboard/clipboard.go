package clipboard

import (
	"github.com/atotto/clipboard"
)

type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found on this system.
func Available() bool {
	return !clipboard.Unsupported
}
