package imagemeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// withExif splices an APP1 segment holding a single Make tag after the JPEG
// start of image marker.
func withExif(t *testing.T, maker string) []byte {
	t.Helper()
	var img bytes.Buffer
	if err := jpeg.Encode(&img, image.NewGray(image.Rect(0, 0, 3, 2)), nil); err != nil {
		t.Fatal(err)
	}

	value := append([]byte(maker), 0)
	var tiffData bytes.Buffer
	tiffData.WriteString("MM")
	binary.Write(&tiffData, binary.BigEndian, uint16(42))
	binary.Write(&tiffData, binary.BigEndian, uint32(8))
	binary.Write(&tiffData, binary.BigEndian, uint16(1))
	binary.Write(&tiffData, binary.BigEndian, uint16(0x010f)) // Make
	binary.Write(&tiffData, binary.BigEndian, uint16(2))      // ASCII
	binary.Write(&tiffData, binary.BigEndian, uint32(len(value)))
	binary.Write(&tiffData, binary.BigEndian, uint32(8+2+12+4))
	binary.Write(&tiffData, binary.BigEndian, uint32(0))
	tiffData.Write(value)

	payload := append([]byte("Exif\x00\x00"), tiffData.Bytes()...)
	var out bytes.Buffer
	out.Write(img.Bytes()[:2])
	out.Write([]byte{0xff, 0xe1})
	binary.Write(&out, binary.BigEndian, uint16(len(payload)+2))
	out.Write(payload)
	out.Write(img.Bytes()[2:])
	return out.Bytes()
}

func TestReadPNG(t *testing.T) {
	md, err := Read(encodePNG(t, 4, 3))
	if err != nil {
		t.Fatal(err)
	}
	if md.Type != "image/png" || md.Width != 4 || md.Height != 3 {
		t.Errorf("unexpected metadata %+v", md)
	}
	if len(md.Tags) != 0 {
		t.Errorf("expected no tags, got %v", md.Tags)
	}
}

func TestReadExif(t *testing.T) {
	md, err := Read(withExif(t, "Gopher"))
	if err != nil {
		t.Fatal(err)
	}
	if md.Type != "image/jpeg" || md.Width != 3 || md.Height != 2 {
		t.Errorf("unexpected metadata %+v", md)
	}
	if len(md.Tags) != 1 || md.Tags[0].Name != "Make" || md.Tags[0].Value != "Gopher" {
		t.Errorf("unexpected tags %v", md.Tags)
	}
}

func TestReadNotImage(t *testing.T) {
	if _, err := Read([]byte("plain text")); !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
}
