package shamir

import (
	"math/big"

	"github.com/pkg/errors"
)

// Participant holds exactly one share. Each half of the share is written
// once; re-issuing a share is a protocol violation.
type Participant struct {
	index int
	point *big.Int
	value *big.Int
}

// NewParticipant creates a participant with no share yet.
func NewParticipant(index int) *Participant {
	return &Participant{index: index}
}

// Index is the participant's position in the dealer's distribution order.
func (p *Participant) Index() int {
	return p.index
}

// ReceivePoint sets the public evaluation point of the share.
func (p *Participant) ReceivePoint(point *big.Int) error {
	if point == nil {
		return errors.Wrap(ErrArgument, "nil point")
	}
	if p.point != nil {
		return errors.Wrapf(ErrState, "participant %d already has point %s", p.index, p.point.String())
	}
	p.point = new(big.Int).Set(point)
	return nil
}

// ReceiveValue sets the polynomial value of the share.
func (p *Participant) ReceiveValue(value *big.Int) error {
	if value == nil {
		return errors.Wrap(ErrArgument, "nil value")
	}
	if p.value != nil {
		return errors.Wrapf(ErrState, "participant %d already has a value", p.index)
	}
	p.value = new(big.Int).Set(value)
	return nil
}

// HasShare reports whether both halves of the share were received.
func (p *Participant) HasShare() bool {
	return p.point != nil && p.value != nil
}

// Share returns a copy of the participant's share.
func (p *Participant) Share() (Share, error) {
	if !p.HasShare() {
		return Share{}, errors.Wrapf(ErrState, "participant %d has no complete share", p.index)
	}
	return Share{X: new(big.Int).Set(p.point), Y: new(big.Int).Set(p.value)}, nil
}
