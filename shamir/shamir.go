package shamir

import (
	"math/big"

	"github.com/izouxv/goShamir/field"
	"github.com/pkg/errors"
)

// Split takes a caller-chosen secret and splits it into n shares, with a
// threshold of t, at the points 1..n.
func Split(f *field.Field, secret *big.Int, n, t int, src field.Source) ([]Share, error) {
	if t < 2 {
		return nil, ErrInvalidThreshold
	}
	if n < t || big.NewInt(int64(n)).Cmp(f.Modulus()) >= 0 {
		return nil, errors.Wrapf(ErrInvalidParticipants, "n=%d, t=%d", n, t)
	}
	if src == nil {
		src = field.CryptoSource{}
	}

	poly, err := NewPolynomial(f, secret, t, src)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		shares[i-1] = Share{X: x, Y: poly.Evaluate(x)}
	}
	return shares, nil
}

// Combine reconstructs the secret from shares by Lagrange interpolation.
func Combine(f *field.Field, shares []Share) (*big.Int, error) {
	return NewLagrange(f, len(shares)).Reconstruct(shares)
}

// Outcome records one reconstruction attempt. A failed attempt has Err set
// and no Recovered value; a wrong but completed one has Success false.
type Outcome struct {
	Method    string
	Shares    int
	Recovered *big.Int
	Expected  *big.Int
	Success   bool
	Err       error
}

// Attempt runs r on shares and compares the result with expected.
func Attempt(r Reconstructor, shares []Share, expected *big.Int) Outcome {
	o := Outcome{
		Method:   r.Method(),
		Shares:   len(shares),
		Expected: expected,
	}
	recovered, err := r.Reconstruct(shares)
	if err != nil {
		o.Err = err
		return o
	}
	o.Recovered = recovered
	o.Success = expected != nil && recovered.Cmp(expected) == 0
	return o
}
