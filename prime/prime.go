package prime

import (
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
	"sort"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// DefaultBits is the bit size used when no modulus preset is chosen.
const DefaultBits = 512

var (
	// ErrBitSize is returned for a prime size too small to be useful.
	ErrBitSize = errors.New("prime: bit size must be at least 8")
	// ErrUnknownModulus is returned when a named modulus is not registered.
	ErrUnknownModulus = errors.New("prime: unknown modulus")
)

// Moduli is a map of registered prime moduli, keyed by name.
var Moduli = make(map[string]*big.Int)

// Register makes a prime modulus available under name.
func Register(name string, p *big.Int) {
	if _, ok := Moduli[name]; ok {
		panic("modulus already registered: " + name)
	}
	Moduli[name] = new(big.Int).Set(p)
}

// Get returns a copy of the modulus registered under name.
func Get(name string) (*big.Int, error) {
	p, ok := Moduli[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModulus, "%q", name)
	}
	return new(big.Int).Set(p), nil
}

// Names lists the registered moduli in sorted order.
func Names() []string {
	names := make([]string, 0, len(Moduli))
	for name := range Moduli {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// The group orders of these curves are large primes.
func init() {
	Register("secp256k1", secp256k1.S256().Params().N)
	Register("p256", elliptic.P256().Params().N)
	Register("p384", elliptic.P384().Params().N)
	Register("p521", elliptic.P521().Params().N)
}

// Generate returns a random prime of exactly bits bits.
func Generate(bits int) (*big.Int, error) {
	if bits < 8 {
		return nil, ErrBitSize
	}
	p, err := rand.Prime(rand.Reader, bits)
	if err != nil {
		return nil, errors.Wrapf(err, "generate %d-bit prime", bits)
	}
	return p, nil
}

// GenerateSafe returns a safe prime p = 2q + 1 of exactly bits bits, where q
// is also prime. This is much slower than Generate for large sizes.
func GenerateSafe(bits int) (*big.Int, error) {
	if bits < 8 {
		return nil, ErrBitSize
	}
	for {
		q, err := rand.Prime(rand.Reader, bits-1)
		if err != nil {
			return nil, errors.Wrapf(err, "generate %d-bit prime", bits-1)
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, big.NewInt(1))
		if p.BitLen() == bits && p.ProbablyPrime(20) {
			return p, nil
		}
	}
}
