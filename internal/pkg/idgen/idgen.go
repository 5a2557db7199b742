// Package idgen produces identifiers for new records.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces a fresh identifier on every call
type Generator interface {
	NewID() string
}

// UUIDGenerator issues random 128-bit (v4) UUIDs
type UUIDGenerator struct{}

// NewID returns a new UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues prefix-1, prefix-2, ... from a counter scoped to the generator
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator creates a counter-backed generator. An empty prefix yields bare numbers.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewID returns the next id in the sequence
func (g *SequenceGenerator) NewID() string {
	n := strconv.FormatUint(g.next.Add(1), 10)
	if g.prefix == "" {
		return n
	}
	return g.prefix + "-" + n
}

// New returns the generator selected by name: "sequence" or anything else for UUIDs
func New(kind, prefix string) Generator {
	if kind == "sequence" {
		return NewSequenceGenerator(prefix)
	}
	return UUIDGenerator{}
}
