package shamir

import (
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/field"
	"github.com/pkg/errors"
)

const (
	MethodLinearSystem = "linear-system"
	MethodLagrange     = "lagrange"
)

// Reconstructor recovers the constant term of the polynomial through a set
// of shares.
//
// A subset smaller than the threshold fits a lower-degree polynomial and
// yields a wrong secret without an error, unless the reconstructor is strict.
type Reconstructor interface {
	Method() string
	Reconstruct(shares []Share) (*big.Int, error)
}

// ReconstructorOption configures a reconstructor.
type ReconstructorOption func(*options)

type options struct {
	strict bool
}

// WithStrict rejects subsets smaller than the threshold with
// ErrInsufficientShares.
func WithStrict() ReconstructorOption {
	return func(o *options) {
		o.strict = true
	}
}

func buildOptions(opts []ReconstructorOption) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// checkShares validates the subset shape shared by both methods and returns
// the x coordinates reduced mod P.
func checkShares(f *field.Field, threshold int, o options, shares []Share) ([]*big.Int, error) {
	if len(shares) == 0 {
		return nil, ErrInsufficientShares
	}
	if o.strict && len(shares) < threshold {
		return nil, errors.Wrapf(ErrInsufficientShares, "need %d, got %d", threshold, len(shares))
	}

	xs := make([]*big.Int, len(shares))
	seen := make(map[string]int, len(shares))
	for i, s := range shares {
		if s.X == nil || s.Y == nil {
			return nil, errors.Wrapf(ErrInvalidShare, "share %d is missing a coordinate", i)
		}
		xs[i] = f.Reduce(s.X)
		key := xs[i].String()
		if j, ok := seen[key]; ok {
			return nil, errors.Wrapf(ErrDuplicatePoint, "shares %d and %d both have x=%s", j, i, key)
		}
		seen[key] = i
	}
	return xs, nil
}

// LinearSystem solves the Vandermonde system V·c = y for the coefficients c
// by Gauss-Jordan elimination over the field and returns c0. It requires
// at most threshold shares.
type LinearSystem struct {
	field     *field.Field
	threshold int
	opts      options
}

var _ Reconstructor = LinearSystem{}

func NewLinearSystem(f *field.Field, threshold int, opts ...ReconstructorOption) LinearSystem {
	return LinearSystem{field: f, threshold: threshold, opts: buildOptions(opts)}
}

func (LinearSystem) Method() string { return MethodLinearSystem }

func (r LinearSystem) Reconstruct(shares []Share) (*big.Int, error) {
	if len(shares) > r.threshold {
		return nil, errors.Wrapf(ErrArgument, "linear system takes exactly %d shares, got %d", r.threshold, len(shares))
	}
	xs, err := checkShares(r.field, r.threshold, r.opts, shares)
	if err != nil {
		if errors.Is(err, ErrDuplicatePoint) {
			return nil, fmt.Errorf("%w: %w", ErrSingularMatrix, err)
		}
		return nil, err
	}

	f := r.field
	k := len(shares)

	// augmented matrix [V | y], row i = [1, x_i, x_i^2, ..., x_i^{k-1}, y_i]
	m := make([][]*big.Int, k)
	for i := range m {
		m[i] = make([]*big.Int, k+1)
		for j := 0; j < k; j++ {
			m[i][j] = f.Pow(xs[i], uint(j))
		}
		m[i][k] = f.Reduce(shares[i].Y)
	}

	for col := 0; col < k; col++ {
		pivot := -1
		for row := col; row < k; row++ {
			if m[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return nil, errors.Wrapf(ErrSingularMatrix, "no pivot in column %d", col)
		}
		m[col], m[pivot] = m[pivot], m[col]

		inv, err := f.Inverse(m[col][col])
		if err != nil {
			return nil, errors.Wrap(err, "normalize pivot")
		}
		for j := col; j <= k; j++ {
			m[col][j] = f.Mul(m[col][j], inv)
		}

		for row := 0; row < k; row++ {
			if row == col || m[row][col].Sign() == 0 {
				continue
			}
			factor := m[row][col]
			for j := col; j <= k; j++ {
				m[row][j] = f.Sub(m[row][j], f.Mul(factor, m[col][j]))
			}
		}
	}

	return m[0][k], nil
}

// Lagrange interpolates the shares at x = 0:
//
//	secret = Σ y_i · Π_{j≠i} (0 - x_j) / (x_i - x_j)
//
// Any number of shares is accepted; extra shares on the same polynomial do
// not change the result.
type Lagrange struct {
	field     *field.Field
	threshold int
	opts      options
}

var _ Reconstructor = Lagrange{}

func NewLagrange(f *field.Field, threshold int, opts ...ReconstructorOption) Lagrange {
	return Lagrange{field: f, threshold: threshold, opts: buildOptions(opts)}
}

func (Lagrange) Method() string { return MethodLagrange }

func (r Lagrange) Reconstruct(shares []Share) (*big.Int, error) {
	return r.Interpolate(shares, big.NewInt(0))
}

// Interpolate evaluates the polynomial through shares at the point at.
func (r Lagrange) Interpolate(shares []Share, at *big.Int) (*big.Int, error) {
	xs, err := checkShares(r.field, r.threshold, r.opts, shares)
	if err != nil {
		return nil, err
	}

	f := r.field
	result := big.NewInt(0)
	for i := range xs {
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j := range xs {
			if i == j {
				continue
			}
			num = f.Mul(num, f.Sub(at, xs[j]))
			den = f.Mul(den, f.Sub(xs[i], xs[j]))
		}

		inv, err := f.Inverse(den)
		if err != nil {
			return nil, errors.Wrapf(err, "basis coefficient %d", i)
		}
		basis := f.Mul(num, inv)
		result = f.Add(result, f.Mul(shares[i].Y, basis))
	}
	return result, nil
}

// VerifyShares interpolates through the first threshold shares and checks
// that every remaining share lies on the same polynomial.
func VerifyShares(f *field.Field, threshold int, shares []Share) error {
	if len(shares) < threshold {
		return errors.Wrapf(ErrInsufficientShares, "need %d, got %d", threshold, len(shares))
	}
	r := NewLagrange(f, threshold)
	if _, err := checkShares(f, threshold, r.opts, shares); err != nil {
		return err
	}

	base := shares[:threshold]
	for i := threshold; i < len(shares); i++ {
		expected, err := r.Interpolate(base, shares[i].X)
		if err != nil {
			return err
		}
		if !f.Equal(expected, shares[i].Y) {
			return errors.Wrapf(ErrInconsistentShares, "share at x=%s is off the polynomial", shares[i].X.String())
		}
	}
	return nil
}
