// Package qr encodes text as QR codes and reads them back from images.
package qr

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/skip2/go-qrcode"
)

// PNGSize is the side length in pixels of saved images.
const PNGSize = 256

var (
	ErrEmpty    = errors.New("Enter text to encode")
	ErrNotFound = errors.New("No QR code found.")
)

// Encode builds a code with the highest error correction level.
func Encode(text string) (*qrcode.QRCode, error) {
	if text == "" {
		return nil, ErrEmpty
	}
	return qrcode.New(text, qrcode.Highest)
}

// Render draws the code with half block characters, two modules per line.
// Dark modules are drawn as spaces so the code reads on dark terminals.
func Render(code *qrcode.QRCode) string {
	bits := code.Bitmap()
	var sb strings.Builder
	for y := 0; y < len(bits); y += 2 {
		for x := range bits[y] {
			top := bits[y][x]
			bottom := y+1 < len(bits) && bits[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune(' ')
			case top:
				sb.WriteRune('▄')
			case bottom:
				sb.WriteRune('▀')
			default:
				sb.WriteRune('█')
			}
		}
		if y+2 < len(bits) {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Save writes the code to filename as a PNG.
func Save(code *qrcode.QRCode, filename string) error {
	return code.WriteFile(PNGSize, filename)
}

// Decode finds a QR code in an encoded PNG, JPEG or GIF image.
func Decode(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	res, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", ErrNotFound
	}
	return res.GetText(), nil
}
