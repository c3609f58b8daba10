package shamir

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// Share represents a share of a secret: the polynomial evaluated at X.
type Share struct {
	X *big.Int
	Y *big.Int
}

// shareRLP is the wire layout of a share.
type shareRLP struct {
	X *big.Int
	Y *big.Int
}

// MarshalBinary encodes the share as an RLP list [X, Y].
func (s Share) MarshalBinary() ([]byte, error) {
	if s.X == nil || s.Y == nil {
		return nil, errors.Wrap(ErrInvalidShare, "missing coordinate")
	}
	data, err := rlp.EncodeToBytes(&shareRLP{X: s.X, Y: s.Y})
	if err != nil {
		return nil, errors.Wrap(err, "encode share")
	}
	return data, nil
}

// UnmarshalBinary decodes a share produced by MarshalBinary.
func (s *Share) UnmarshalBinary(data []byte) error {
	var w shareRLP
	if err := rlp.DecodeBytes(data, &w); err != nil {
		return errors.Wrapf(ErrInvalidShare, "decode: %v", err)
	}
	if w.X == nil || w.X.Sign() == 0 {
		return errors.Wrap(ErrInvalidShare, "x must be non-zero")
	}
	if w.Y == nil {
		w.Y = new(big.Int)
	}
	s.X, s.Y = w.X, w.Y
	return nil
}

// String renders the share as "x:y" in 0x-prefixed hex.
func (s Share) String() string {
	if s.X == nil || s.Y == nil {
		return "<empty>"
	}
	return hexutil.EncodeBig(s.X) + ":" + hexutil.EncodeBig(s.Y)
}

// Clone creates a deep copy of the share.
func (s Share) Clone() Share {
	c := Share{}
	if s.X != nil {
		c.X = new(big.Int).Set(s.X)
	}
	if s.Y != nil {
		c.Y = new(big.Int).Set(s.Y)
	}
	return c
}

// Equal checks if two shares have the same coordinates.
func (s Share) Equal(other Share) bool {
	if s.X == nil || s.Y == nil || other.X == nil || other.Y == nil {
		return false
	}
	return s.X.Cmp(other.X) == 0 && s.Y.Cmp(other.Y) == 0
}
