package generate

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

type Algorithm string

const (
	MD5    Algorithm = "MD5"
	SHA1   Algorithm = "SHA-1"
	SHA256 Algorithm = "SHA-256"
	SHA512 Algorithm = "SHA-512"
)

var Algorithms = []Algorithm{MD5, SHA1, SHA256, SHA512}

// ParseAlgorithm accepts names like "sha256", "SHA-256" or "sha_256".
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToUpper(name))
	for _, a := range Algorithms {
		if strings.ReplaceAll(string(a), "-", "") == norm {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown hash algorithm %q", name)
}

func (a Algorithm) Next() Algorithm {
	for i, alg := range Algorithms {
		if alg == a {
			return Algorithms[(i+1)%len(Algorithms)]
		}
	}
	return Algorithms[0]
}

func (a Algorithm) new() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New()
	case SHA256:
		return sha256.New()
	case SHA512:
		return sha512.New()
	default:
		return md5.New()
	}
}

// Hash returns the lowercase hex digest of data.
func Hash(a Algorithm, data []byte) string {
	h := a.new()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// HashText is Hash for text input; empty text has no digest.
func HashText(a Algorithm, text string) string {
	if text == "" {
		return ""
	}
	return Hash(a, []byte(text))
}
