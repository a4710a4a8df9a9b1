// Package random provides cryptographic seed generation helpers.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// Resolve returns configured unless it is zero, in which case a fresh
// seed is generated.
func Resolve(configured uint64) (uint64, error) {
	if configured != 0 {
		return configured, nil
	}
	return NewSeed()
}
