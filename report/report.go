package report

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/izouxv/goShamir/shamir"
	"go.uber.org/zap"
)

// Reporter turns dealer events and reconstruction outcomes into log lines.
type Reporter struct {
	logger *zap.Logger
}

// New creates a reporter. A nil logger discards everything.
func New(logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{logger: logger}
}

// SecretGenerated logs the dealer parameters and its secret commitment.
// The secret itself is never logged here.
func (r *Reporter) SecretGenerated(d *shamir.Dealer) {
	fields := []zap.Field{
		zap.Stringer("dealer", d.ID()),
		zap.Int("threshold", d.Threshold()),
		zap.Int("participants", d.Participants()),
		zap.Int("modulus_bits", d.Field().BitLen()),
	}
	if commitment, err := d.Commitment(); err == nil {
		fields = append(fields, zap.String("commitment", hex.EncodeToString(commitment)))
	}
	r.logger.Info("secret generated", fields...)
}

// SharesDistributed logs that every participant received a share.
func (r *Reporter) SharesDistributed(d *shamir.Dealer) {
	r.logger.Info("shares distributed",
		zap.Stringer("dealer", d.ID()),
		zap.Stringer("state", d.State()),
		zap.Int("participants", d.Participants()),
	)
}

// Reconstruction logs one outcome. A failed reconstruction and a wrong key
// are reported at different levels.
func (r *Reporter) Reconstruction(dealer uuid.UUID, o shamir.Outcome) {
	fields := []zap.Field{
		zap.Stringer("dealer", dealer),
		zap.String("method", o.Method),
		zap.Int("shares", o.Shares),
		zap.Bool("success", o.Success),
	}
	if o.Expected != nil {
		fields = append(fields, zap.Stringer("expected", o.Expected))
	}

	switch {
	case o.Err != nil:
		r.logger.Error("reconstruction failed", append(fields, zap.Error(o.Err))...)
	case o.Success:
		r.logger.Info("key assembly completed successfully", append(fields, zap.Stringer("received", o.Recovered))...)
	default:
		r.logger.Warn("the resulting key is different from the generated one", append(fields, zap.Stringer("received", o.Recovered))...)
	}
}
