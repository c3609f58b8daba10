package shamir

import (
	"math/big"

	"github.com/izouxv/goShamir/field"
	"github.com/pkg/errors"
)

// Polynomial is f(x) = c0 + c1*x + ... + c_{t-1}*x^{t-1} over a prime field,
// with the secret as c0. It is immutable once built.
type Polynomial struct {
	field        *field.Field
	coefficients []*big.Int
}

// NewPolynomial builds a random polynomial of degree threshold-1 whose
// constant term is secret. The remaining coefficients are drawn from src.
func NewPolynomial(f *field.Field, secret *big.Int, threshold int, src field.Source) (*Polynomial, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}

	coefficients := make([]*big.Int, threshold)
	coefficients[0] = f.Reduce(secret)
	for i := 1; i < threshold; i++ {
		c, err := f.Random(src)
		if err != nil {
			return nil, errors.Wrapf(err, "coefficient %d", i)
		}
		coefficients[i] = c
	}

	return &Polynomial{field: f, coefficients: coefficients}, nil
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Evaluate computes f(x) mod P with Horner's method:
// ((c_{t-1}*x + c_{t-2})*x + ... + c1)*x + c0.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	result := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = p.field.Mul(result, x)
		result = p.field.Add(result, p.coefficients[i])
	}
	return result
}

func (p *Polynomial) secret() *big.Int {
	return new(big.Int).Set(p.coefficients[0])
}
