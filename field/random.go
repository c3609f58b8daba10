package field

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// ErrEmptyRange is returned when a Source is asked for a range with hi < lo.
var ErrEmptyRange = errors.New("field: empty sampling range")

// Source supplies uniformly random integers in an inclusive range.
type Source interface {
	Int(lo, hi *big.Int) (*big.Int, error)
}

// CryptoSource draws from a cryptographically secure reader.
// The zero value reads from crypto/rand.Reader.
type CryptoSource struct {
	Reader io.Reader
}

var _ Source = CryptoSource{}

// Int returns a uniform integer in [lo, hi].
func (s CryptoSource) Int(lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) < 0 {
		return nil, errors.Wrapf(ErrEmptyRange, "[%s, %s]", lo.String(), hi.String())
	}
	reader := s.Reader
	if reader == nil {
		reader = rand.Reader
	}

	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)
	n, err := rand.Int(reader, span)
	if err != nil {
		return nil, errors.Wrap(err, "read random integer")
	}
	return n.Add(n, lo), nil
}
