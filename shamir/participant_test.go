package shamir

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipant(t *testing.T) {
	p := NewParticipant(3)
	assert.Equal(t, 3, p.Index())
	assert.False(t, p.HasShare())

	_, err := p.Share()
	assert.True(t, errors.Is(err, ErrState))

	point := big.NewInt(4)
	require.NoError(t, p.ReceivePoint(point))
	point.SetInt64(99)

	_, err = p.Share()
	assert.True(t, errors.Is(err, ErrState), "share without value")

	require.NoError(t, p.ReceiveValue(big.NewInt(190)))
	assert.True(t, p.HasShare())

	s, err := p.Share()
	require.NoError(t, err)
	assert.Equal(t, int64(4), s.X.Int64())
	assert.Equal(t, int64(190), s.Y.Int64())

	t.Run("write once", func(t *testing.T) {
		assert.True(t, errors.Is(p.ReceivePoint(big.NewInt(5)), ErrState))
		assert.True(t, errors.Is(p.ReceiveValue(big.NewInt(1)), ErrState))

		s, err := p.Share()
		require.NoError(t, err)
		assert.Equal(t, int64(4), s.X.Int64())
		assert.Equal(t, int64(190), s.Y.Int64())
	})

	t.Run("nil input", func(t *testing.T) {
		q := NewParticipant(0)
		assert.True(t, errors.Is(q.ReceivePoint(nil), ErrArgument))
		assert.True(t, errors.Is(q.ReceiveValue(nil), ErrArgument))
	})
}
