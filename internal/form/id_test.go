package form

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator(t *testing.T) {
	var gen UUIDGenerator
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen.Next()
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSequenceGenerator(t *testing.T) {
	gen := &SequenceGenerator{}
	assert.Equal(t, "field-1", gen.Next())
	assert.Equal(t, "field-2", gen.Next())

	named := &SequenceGenerator{Prefix: "f"}
	assert.Equal(t, "f-1", named.Next())
}
