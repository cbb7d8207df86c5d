package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Domain-specific hash types
type (
	DatasetFingerprint Hash
	RunFingerprint     Hash
)

// Constructors
func NewDatasetFingerprint(data []byte) DatasetFingerprint { return DatasetFingerprint(NewHash(data)) }
func NewRunFingerprint(data []byte) RunFingerprint         { return RunFingerprint(NewHash(data)) }

// String conversions
func (h DatasetFingerprint) String() string { return Hash(h).String() }
func (h RunFingerprint) String() string     { return Hash(h).String() }
