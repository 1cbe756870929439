package service

import (
	"testing"

	"myregistrar/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_NewID_IsRandomUUID(t *testing.T) {
	id := NewUUIDGenerator().NewID()

	parsed, err := uuid.Parse(string(id))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestUUIDGenerator_NewID_NoCollisions(t *testing.T) {
	const n = 100000
	gen := NewUUIDGenerator()
	seen := make(domain.IDSet, n)
	for i := 0; i < n; i++ {
		seen.Add(gen.NewID())
	}
	assert.Equal(t, n, seen.Len())
}
