// Package sampling implements generation of random floats and integers,
// including a deterministic keyed PRNG for reproducible randomized tests.
package sampling

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG generates a deterministic sequence of pseudo-random bytes from a
// key using the blake2b hash function in XOF mode. Two instances built with
// the same key produce the same sequence. It is not safe for concurrent use.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG returns a KeyedPRNG keyed with key, which may be nil.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the PRNG's key.
func (prng *KeyedPRNG) Key() []byte {
	key := make([]byte, len(prng.key))
	copy(key, prng.key)
	return key
}

// Reset rewinds the PRNG to the start of its sequence.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}

// Read fills sum with pseudo-random bytes.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// SecurePRNG is a PRNG backed by crypto/rand. It is safe for concurrent use
// and not reproducible.
type SecurePRNG struct{}

// Read fills sum with random bytes from the operating system.
func (SecurePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}
