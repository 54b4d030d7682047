package form

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IdGenerator supplies unique, opaque field identifiers.
type IdGenerator interface {
	Next() string
}

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	return uuid.New().String()
}

// SequenceGenerator issues "<prefix>-1", "<prefix>-2", ... and is meant for
// deterministic tests and snapshots.
type SequenceGenerator struct {
	Prefix string
	n      atomic.Uint64
}

func (g *SequenceGenerator) Next() string {
	prefix := g.Prefix
	if prefix == "" {
		prefix = "field"
	}
	return fmt.Sprintf("%s-%d", prefix, g.n.Add(1))
}
