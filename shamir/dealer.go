package shamir

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/utils"
	"github.com/pkg/errors"
)

const commitmentTag = "shamir/secret"

// DealerState tracks which dealer operations are legal.
type DealerState int

const (
	Uninitialized DealerState = iota
	PointsAssigned
	PolynomialReady
	SharesComputed
	Finalized
)

func (s DealerState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case PointsAssigned:
		return "points-assigned"
	case PolynomialReady:
		return "polynomial-ready"
	case SharesComputed:
		return "shares-computed"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Dealer owns the secret and its polynomial and issues one share per
// participant. It is not safe for concurrent use.
type Dealer struct {
	id           uuid.UUID
	field        *field.Field
	source       field.Source
	threshold    int
	participants int

	state  DealerState
	points []*big.Int
	poly   *Polynomial
	secret *big.Int
	shares []Share
}

// DealerOption configures a Dealer.
type DealerOption func(*Dealer)

// WithSource sets the randomness used for the secret and the coefficients.
func WithSource(src field.Source) DealerOption {
	return func(d *Dealer) {
		d.source = src
	}
}

// NewDealer creates a dealer for a threshold-of-participants scheme over f.
func NewDealer(f *field.Field, threshold, participants int, opts ...DealerOption) (*Dealer, error) {
	if f == nil {
		return nil, errors.Wrap(ErrArgument, "nil field")
	}
	if threshold < 2 {
		return nil, ErrInvalidThreshold
	}
	if participants < threshold {
		return nil, errors.Wrapf(ErrInvalidParticipants, "%d participants for threshold %d", participants, threshold)
	}
	// points 1..N must stay distinct and non-zero mod P
	if big.NewInt(int64(participants)).Cmp(f.Modulus()) >= 0 {
		return nil, errors.Wrapf(ErrInvalidParticipants, "%d participants do not fit below the modulus", participants)
	}

	d := &Dealer{
		id:           uuid.New(),
		field:        f,
		source:       field.CryptoSource{},
		threshold:    threshold,
		participants: participants,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Dealer) ID() uuid.UUID       { return d.id }
func (d *Dealer) Field() *field.Field { return d.field }
func (d *Dealer) State() DealerState  { return d.state }
func (d *Dealer) Threshold() int      { return d.threshold }
func (d *Dealer) Participants() int   { return d.participants }

func (d *Dealer) expect(op string, states ...DealerState) error {
	for _, s := range states {
		if d.state == s {
			return nil
		}
	}
	return errors.Wrapf(ErrState, "%s: dealer is %s", op, d.state)
}

// SetPoints assigns the public evaluation points 1..N.
func (d *Dealer) SetPoints() error {
	if err := d.expect("set points", Uninitialized); err != nil {
		return err
	}
	d.points = make([]*big.Int, d.participants)
	for i := range d.points {
		d.points[i] = big.NewInt(int64(i + 1))
	}
	d.state = PointsAssigned
	return nil
}

// Points returns a copy of the evaluation points.
func (d *Dealer) Points() []*big.Int {
	points := make([]*big.Int, len(d.points))
	for i, p := range d.points {
		points[i] = new(big.Int).Set(p)
	}
	return points
}

// SetSecretAndPolynomial draws the secret from [2, P-2] and builds the
// polynomial that embeds it.
func (d *Dealer) SetSecretAndPolynomial() error {
	if err := d.expect("set secret", PointsAssigned); err != nil {
		return err
	}
	secret, err := d.field.Random(d.source)
	if err != nil {
		return errors.Wrap(err, "draw secret")
	}
	poly, err := NewPolynomial(d.field, secret, d.threshold, d.source)
	if err != nil {
		return errors.Wrap(err, "build polynomial")
	}
	d.secret = poly.secret()
	d.poly = poly
	d.state = PolynomialReady
	return nil
}

// ComputeShares evaluates the polynomial at every assigned point.
func (d *Dealer) ComputeShares() error {
	if err := d.expect("compute shares", PolynomialReady); err != nil {
		return err
	}
	d.shares = make([]Share, len(d.points))
	for i, x := range d.points {
		d.shares[i] = Share{X: new(big.Int).Set(x), Y: d.poly.Evaluate(x)}
	}
	d.state = SharesComputed
	return nil
}

// Share returns a copy of the share at index.
func (d *Dealer) Share(index int) (Share, error) {
	if err := d.expect("get share", SharesComputed, Finalized); err != nil {
		return Share{}, err
	}
	if index < 0 || index >= len(d.shares) {
		return Share{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, have %d shares", index, len(d.shares))
	}
	return d.shares[index].Clone(), nil
}

// Distribute hands share i to participants[i], point first, and finalizes
// the dealer.
func (d *Dealer) Distribute(participants []*Participant) error {
	if err := d.expect("distribute", SharesComputed); err != nil {
		return err
	}
	if len(participants) != len(d.shares) {
		return errors.Wrapf(ErrArgument, "%d participants for %d shares", len(participants), len(d.shares))
	}
	seen := make(map[*Participant]struct{}, len(participants))
	for i, p := range participants {
		if p == nil {
			return errors.Wrapf(ErrArgument, "participant %d is nil", i)
		}
		if _, ok := seen[p]; ok {
			return errors.Wrapf(ErrArgument, "participant %d appears twice", p.index)
		}
		seen[p] = struct{}{}
		if p.point != nil || p.value != nil {
			return errors.Wrapf(ErrState, "participant %d already holds a share", p.index)
		}
	}
	for i, p := range participants {
		if err := p.ReceivePoint(d.shares[i].X); err != nil {
			return err
		}
	}
	for i, p := range participants {
		if err := p.ReceiveValue(d.shares[i].Y); err != nil {
			return err
		}
	}
	d.state = Finalized
	return nil
}

// Secret returns the dealer's secret. It exists for verification only and
// must never be handed to a reconstructor.
func (d *Dealer) Secret() (*big.Int, error) {
	if d.secret == nil {
		return nil, errors.Wrapf(ErrState, "get secret: dealer is %s", d.state)
	}
	return new(big.Int).Set(d.secret), nil
}

// Commitment is the SHA3-256 digest of the secret at the field's byte width.
func (d *Dealer) Commitment() ([]byte, error) {
	secret, err := d.Secret()
	if err != nil {
		return nil, err
	}
	return utils.HashBigInt(commitmentTag, secret, d.field.Modulus())
}

// VerifySecret reports whether candidate matches the committed secret.
func (d *Dealer) VerifySecret(candidate *big.Int) (bool, error) {
	commitment, err := d.Commitment()
	if err != nil {
		return false, err
	}
	return VerifyCommitment(d.field, commitment, candidate)
}

// VerifyCommitment checks a candidate secret against a dealer commitment
// without access to the dealer.
func VerifyCommitment(f *field.Field, commitment []byte, candidate *big.Int) (bool, error) {
	if candidate == nil {
		return false, errors.Wrap(ErrArgument, "nil candidate")
	}
	digest, err := utils.HashBigInt(commitmentTag, f.Reduce(candidate), f.Modulus())
	if err != nil {
		return false, err
	}
	return utils.EqualDigest(commitment, digest), nil
}
