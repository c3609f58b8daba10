package prime

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"p256", "p384", "p521", "secp256k1"}, Names())

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Get(name)
			require.NoError(t, err)
			assert.True(t, p.ProbablyPrime(20))
			assert.True(t, p.BitLen() >= 256)
		})
	}

	secp, err := Get("secp256k1")
	require.NoError(t, err)
	expected, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	assert.Equal(t, 0, secp.Cmp(expected))

	// modifying the returned value must not touch the registry
	secp.SetInt64(0)
	again, err := Get("secp256k1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Cmp(expected))
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("curve25519")
	assert.True(t, errors.Is(err, ErrUnknownModulus))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("p256", big.NewInt(7919))
	})
}

func TestGenerate(t *testing.T) {
	for _, bits := range []int{8, 64, 256, DefaultBits} {
		p, err := Generate(bits)
		require.NoError(t, err)
		assert.Equal(t, bits, p.BitLen())
		assert.True(t, p.ProbablyPrime(20))
	}

	_, err := Generate(7)
	assert.True(t, errors.Is(err, ErrBitSize))
}

func TestGenerateSafe(t *testing.T) {
	p, err := GenerateSafe(64)
	require.NoError(t, err)
	assert.Equal(t, 64, p.BitLen())
	assert.True(t, p.ProbablyPrime(20))

	q := new(big.Int).Rsh(p, 1)
	assert.True(t, q.ProbablyPrime(20))

	_, err = GenerateSafe(4)
	assert.True(t, errors.Is(err, ErrBitSize))
}
