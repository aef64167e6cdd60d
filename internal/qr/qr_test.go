package qr

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeEmpty(t *testing.T) {
	if _, err := Encode(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestRender(t *testing.T) {
	code, err := Encode("hello")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(Render(code), "\n")
	size := len(code.Bitmap())
	if len(lines) != (size+1)/2 {
		t.Errorf("expected %d lines, got %d", (size+1)/2, len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != size {
			t.Fatalf("line %d: expected width %d, got %d", i, size, n)
		}
	}
	// quiet zone is light
	if !strings.HasPrefix(lines[0], "████") {
		t.Errorf("expected light border, got %q", lines[0])
	}
}

func TestSaveAndDecode(t *testing.T) {
	code, err := Encode("https://example.com/?q=1")
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "code.png")
	if err := Save(code, name); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	text, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if text != "https://example.com/?q=1" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestDecodeNoCode(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(buf.Bytes()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for non-image data")
	}
}
