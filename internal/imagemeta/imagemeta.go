// Package imagemeta reads dimensions and EXIF tags from image files.
package imagemeta

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"sort"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

var (
	ErrNotImage = errors.New("Please upload a valid image file.")
	ErrNoExif   = errors.New("No EXIF data found in this image.")
)

type Tag struct {
	Name  string
	Value string
}

type Metadata struct {
	Type   string
	Width  int
	Height int
	// Tags is sorted by name and empty when the image carries no EXIF block.
	Tags []Tag
}

type walker struct {
	tags []Tag
}

func (w *walker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	w.tags = append(w.tags, Tag{Name: string(name), Value: strings.Trim(tag.String(), `"`)})
	return nil
}

// Read inspects an encoded image. A missing EXIF block is not an error; check
// Tags instead.
func Read(data []byte) (*Metadata, error) {
	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") {
		return nil, ErrNotImage
	}
	md := &Metadata{Type: ct}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		md.Width, md.Height = cfg.Width, cfg.Height
	}

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return md, nil
	}
	w := &walker{}
	if err := x.Walk(w); err != nil {
		return nil, fmt.Errorf("exif: %w", err)
	}
	sort.Slice(w.tags, func(i, j int) bool { return w.tags[i].Name < w.tags[j].Name })
	md.Tags = w.tags
	return md, nil
}
