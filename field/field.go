package field

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidModulus is returned when the modulus is not a prime >= 5.
	ErrInvalidModulus = errors.New("field: modulus must be a prime of at least 5")
	// ErrNotInvertible is returned when an element has no inverse modulo P.
	ErrNotInvertible = errors.New("field: element is not invertible")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Field is the prime field Z/PZ. It is immutable after construction and
// safe to share between goroutines.
type Field struct {
	p *big.Int
}

// New creates a field for the prime modulus p.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(5)) < 0 {
		return nil, ErrInvalidModulus
	}
	if !p.ProbablyPrime(20) {
		return nil, errors.Wrapf(ErrInvalidModulus, "%s is composite", p.String())
	}
	return &Field{p: new(big.Int).Set(p)}, nil
}

// MustNew is like New but panics on an invalid modulus.
func MustNew(p *big.Int) *Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns a copy of P.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// BitLen returns the bit length of P.
func (f *Field) BitLen() int {
	return f.p.BitLen()
}

// Reduce maps any integer into [0, P-1].
func (f *Field) Reduce(a *big.Int) (res *big.Int) {
	res = new(big.Int).Mod(a, f.p)
	return
}

// Add returns (a + b) mod P.
func (f *Field) Add(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Add(a, b)
	res.Mod(res, f.p)
	return
}

// Sub returns (a - b) mod P.
func (f *Field) Sub(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Sub(a, b)
	res.Mod(res, f.p)
	return
}

// Neg returns -a mod P.
func (f *Field) Neg(a *big.Int) (res *big.Int) {
	res = new(big.Int).Neg(a)
	res.Mod(res, f.p)
	return
}

// Mul returns (a * b) mod P.
func (f *Field) Mul(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Mul(a, b)
	res.Mod(res, f.p)
	return
}

// Pow computes base^exp mod P by square-and-multiply. Exponents here are
// polynomial degrees, so no constant-time guarantees are made.
func (f *Field) Pow(base *big.Int, exp uint) *big.Int {
	res := big.NewInt(1)
	b := f.Reduce(base)
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			res = f.Mul(res, b)
		}
		b = f.Mul(b, b)
	}
	return res
}

// Inverse returns a^-1 mod P. The only non-invertible residue of a prime
// field is zero.
func (f *Field) Inverse(a *big.Int) (*big.Int, error) {
	r := f.Reduce(a)
	if r.Sign() == 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "%s mod P is zero", a.String())
	}
	inv := new(big.Int).ModInverse(r, f.p)
	if inv == nil {
		return nil, errors.Wrapf(ErrNotInvertible, "gcd(%s, P) != 1", a.String())
	}
	return inv, nil
}

// Equal reports whether a and b are congruent mod P.
func (f *Field) Equal(a, b *big.Int) bool {
	return f.Reduce(a).Cmp(f.Reduce(b)) == 0
}

// Random draws a uniform element of [2, P-2] from src. The boundary values
// 0, 1 and P-1 are excluded so that no coefficient is trivial.
func (f *Field) Random(src Source) (*big.Int, error) {
	hi := new(big.Int).Sub(f.p, two)
	n, err := src.Int(two, hi)
	if err != nil {
		return nil, errors.Wrap(err, "draw field element")
	}
	return n, nil
}
