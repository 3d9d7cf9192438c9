// Package digestx computes message digests of byte buffers.
//
// Package: digestx
// Title: Message Digests
// Description: Fixed-length digests over MD5, the SHA-1 and SHA-2 families
//              from the standard library, and SHA3-256 and BLAKE2b-256 from
//              golang.org/x/crypto.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
package digestx

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// Algorithm identifies a digest function
type Algorithm int

const (
	MD5 Algorithm = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA3_256
	BLAKE2b256
)

type algorithmInfo struct {
	name    string
	aliases []string
	size    int
	new     func() hash.Hash
}

var algorithms = [...]algorithmInfo{
	MD5:        {"md5", nil, md5.Size, md5.New},
	SHA1:       {"sha1", []string{"sha-1"}, sha1.Size, sha1.New},
	SHA224:     {"sha224", []string{"sha-224"}, sha256.Size224, sha256.New224},
	SHA256:     {"sha256", []string{"sha-256"}, sha256.Size, sha256.New},
	SHA384:     {"sha384", []string{"sha-384"}, sha512.Size384, sha512.New384},
	SHA512:     {"sha512", []string{"sha-512"}, sha512.Size, sha512.New},
	SHA3_256:   {"sha3-256", []string{"sha3_256", "sha3"}, 32, sha3.New256},
	BLAKE2b256: {"blake2b-256", []string{"blake2b_256", "blake2b"}, blake2b.Size256, newBlake2b256},
}

func newBlake2b256() hash.Hash {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	return h
}

// Algorithms lists every supported algorithm
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	for i := range algorithms {
		out[i] = Algorithm(i)
	}
	return out
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithms)
}

// String returns the canonical lower-case name
func (a Algorithm) String() string {
	if !a.valid() {
		return "unknown"
	}
	return algorithms[a].name
}

// Size returns the digest length in bytes, 0 for an unknown algorithm
func (a Algorithm) Size() int {
	if !a.valid() {
		return 0
	}
	return algorithms[a].size
}

// New returns a fresh hash for a, nil for an unknown algorithm
func (a Algorithm) New() hash.Hash {
	if !a.valid() {
		return nil
	}
	return algorithms[a].new()
}

// ParseAlgorithm reads an algorithm name such as "sha256" or "SHA-256"
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, info := range algorithms {
		if key == info.name {
			return Algorithm(i), nil
		}
		for _, alias := range info.aliases {
			if key == alias {
				return Algorithm(i), nil
			}
		}
	}
	return 0, mdwerror.New("unsupported digest algorithm").
		WithCode(mdwerror.CodeUnsupportedAlgorithm).
		WithOperation("digestx.ParseAlgorithm").
		WithDetail("algorithm", name)
}

// Standard computes digests with the built-in algorithms. The zero value is
// ready to use.
type Standard struct{}

// Sum returns the digest of data, nil for an unknown algorithm
func (Standard) Sum(data []byte, a Algorithm) []byte {
	h := a.New()
	if h == nil {
		return nil
	}
	h.Write(data)
	return h.Sum(nil)
}

// Hex returns the lower-case hexadecimal digest of data
func (s Standard) Hex(data []byte, a Algorithm) string {
	return hex.EncodeToString(s.Sum(data, a))
}

// Sum returns the digest of data
func Sum(data []byte, a Algorithm) []byte {
	return Standard{}.Sum(data, a)
}

// Hex returns the hexadecimal digest of data
func Hex(data []byte, a Algorithm) string {
	return Standard{}.Hex(data, a)
}
