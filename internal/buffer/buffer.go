package buffer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// MaxSize is the largest file a tool will load.
const MaxSize = 16 << 20

type Buffer struct {
	filename string
	data     []byte
	digest   string
}

func Open(filename string) (*Buffer, error) {
	data, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	return &Buffer{
		filename: filename,
		data:     data,
		digest:   digestOf(data),
	}, nil
}

func readFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filename)
	}
	if info.Size() > MaxSize {
		return nil, fmt.Errorf("%s is larger than %d bytes", filename, MaxSize)
	}

	// Size can change between Stat and ReadAll
	data, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%s is larger than %d bytes", filename, MaxSize)
	}
	return data, nil
}

func digestOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (b *Buffer) Filename() string {
	return b.filename
}

func (b *Buffer) Size() int64 {
	return int64(len(b.data))
}

func (b *Buffer) Data() []byte {
	return b.data
}

// Digest is the hex sha256 of the loaded content.
func (b *Buffer) Digest() string {
	return b.digest
}

func (b *Buffer) HasChangedOnDisk() (bool, error) {
	data, err := readFile(b.filename)
	if err != nil {
		return false, err
	}
	return digestOf(data) != b.digest, nil
}

// Cache holds the most recently loaded file of one tool.
type Cache struct {
	current *Buffer
}

// Load returns the cached buffer for filename unless the file changed on disk
// since it was read.
func (c *Cache) Load(filename string) (*Buffer, error) {
	if c.current != nil && c.current.filename == filename {
		changed, err := c.current.HasChangedOnDisk()
		if err == nil && !changed {
			return c.current, nil
		}
	}

	b, err := Open(filename)
	if err != nil {
		c.current = nil
		return nil, err
	}
	c.current = b
	return b, nil
}
