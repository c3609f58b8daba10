package shamir

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareBinary(t *testing.T) {
	f := p256Field()
	shares, err := Split(f, big.NewInt(123456789), 5, 3, nil)
	require.NoError(t, err)

	decoded := make([]Share, len(shares))
	for i, s := range shares {
		data, err := s.MarshalBinary()
		require.NoError(t, err)
		require.NoError(t, decoded[i].UnmarshalBinary(data))
		assert.True(t, s.Equal(decoded[i]))
	}

	secret, err := Combine(f, decoded[2:])
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), secret.Int64())
}

func TestShareBinaryWide(t *testing.T) {
	// values wider than 256 bits must survive encoding
	y := new(big.Int).Lsh(big.NewInt(1), 511)
	s := Share{X: big.NewInt(12), Y: y}

	data, err := s.MarshalBinary()
	require.NoError(t, err)

	var got Share
	require.NoError(t, got.UnmarshalBinary(data))
	assert.True(t, s.Equal(got))
}

func TestShareBinaryErrors(t *testing.T) {
	_, err := Share{X: big.NewInt(1)}.MarshalBinary()
	assert.True(t, errors.Is(err, ErrInvalidShare))

	var s Share
	assert.True(t, errors.Is(s.UnmarshalBinary([]byte{0xff}), ErrInvalidShare))

	zeroX, err := rlp.EncodeToBytes(&shareRLP{X: big.NewInt(0), Y: big.NewInt(5)})
	require.NoError(t, err)
	assert.True(t, errors.Is(s.UnmarshalBinary(zeroX), ErrInvalidShare))
}

func TestShareString(t *testing.T) {
	s := Share{X: big.NewInt(1), Y: big.NewInt(64)}
	assert.Equal(t, "0x1:0x40", s.String())
	assert.Equal(t, "<empty>", Share{}.String())
}

func TestShareCloneAndEqual(t *testing.T) {
	s := Share{X: big.NewInt(2), Y: big.NewInt(96)}
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c.Y.SetInt64(97)
	assert.Equal(t, int64(96), s.Y.Int64())
	assert.False(t, s.Equal(c))

	assert.False(t, Share{}.Equal(Share{}))
	assert.Equal(t, Share{}, Share{}.Clone())
}
