package cmd

import (
	"math/big"

	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/prime"
	"github.com/izouxv/goShamir/report"
	"github.com/izouxv/goShamir/shamir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Deal a secret and reconstruct it with T and T-1 shares",
		Args:  NoExtraArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := report.NewLogger("shamir", cfg.LogLevel, cfg.LogEncoding)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return Run(cfg, logger)
		},
	}

	runCmd.Flags().Int("bits", prime.DefaultBits, "bit size of the generated prime modulus")
	runCmd.Flags().IntP("threshold", "t", 6, "shares required to reconstruct")
	runCmd.Flags().IntP("participants", "n", 12, "shares issued")
	runCmd.Flags().String("modulus", "", "named modulus instead of a generated prime (see `shamir moduli`)")
	runCmd.Flags().Bool("safe", false, "generate a safe prime")
	runCmd.Flags().Int("rounds", 1, "verification rounds, each with a fresh dealer")
	return runCmd
}

// Run deals cfg.Rounds secrets and tries to recover each one with both
// methods, first from T randomly chosen participants and then from T-1.
// It fails if any T-share reconstruction misses the secret.
func Run(cfg Config, logger *zap.Logger) error {
	p, err := resolveModulus(cfg)
	if err != nil {
		return err
	}
	f, err := field.New(p)
	if err != nil {
		return err
	}
	logger.Info("modulus ready", zap.Int("bits", p.BitLen()), zap.String("preset", cfg.Modulus))

	reporter := report.New(logger)
	src := field.CryptoSource{}

	var failed int
	for round := 0; round < cfg.Rounds; round++ {
		n, err := runRound(cfg, f, src, reporter)
		if err != nil {
			return errors.Wrapf(err, "round %d", round)
		}
		failed += n
	}
	if failed > 0 {
		return errors.Errorf("%d reconstructions with %d shares did not recover the secret", failed, cfg.Threshold)
	}
	return nil
}

func resolveModulus(cfg Config) (*big.Int, error) {
	switch {
	case cfg.Modulus != "":
		return prime.Get(cfg.Modulus)
	case cfg.Safe:
		return prime.GenerateSafe(cfg.Bits)
	default:
		return prime.Generate(cfg.Bits)
	}
}

func runRound(cfg Config, f *field.Field, src field.Source, reporter *report.Reporter) (failed int, err error) {
	dealer, err := shamir.NewDealer(f, cfg.Threshold, cfg.Participants, shamir.WithSource(src))
	if err != nil {
		return 0, err
	}
	participants := make([]*shamir.Participant, cfg.Participants)
	for i := range participants {
		participants[i] = shamir.NewParticipant(i)
	}

	if err = dealer.SetPoints(); err != nil {
		return 0, err
	}
	if err = dealer.SetSecretAndPolynomial(); err != nil {
		return 0, err
	}
	reporter.SecretGenerated(dealer)
	if err = dealer.ComputeShares(); err != nil {
		return 0, err
	}
	if err = dealer.Distribute(participants); err != nil {
		return 0, err
	}
	reporter.SharesDistributed(dealer)

	secret, err := dealer.Secret()
	if err != nil {
		return 0, err
	}

	for _, size := range []int{cfg.Threshold, cfg.Threshold - 1} {
		chosen, err := sample(participants, size, src)
		if err != nil {
			return 0, err
		}
		shares := make([]shamir.Share, len(chosen))
		for i, p := range chosen {
			if shares[i], err = p.Share(); err != nil {
				return 0, err
			}
		}

		for _, r := range []shamir.Reconstructor{
			shamir.NewLinearSystem(f, cfg.Threshold),
			shamir.NewLagrange(f, cfg.Threshold),
		} {
			o := shamir.Attempt(r, shares, secret)
			reporter.Reconstruction(dealer.ID(), o)
			if size == cfg.Threshold && !o.Success {
				failed++
			}
		}
	}
	return failed, nil
}

// sample picks k distinct participants uniformly with a partial
// Fisher-Yates shuffle driven by src.
func sample(participants []*shamir.Participant, k int, src field.Source) ([]*shamir.Participant, error) {
	if k < 0 || k > len(participants) {
		return nil, errors.Wrapf(shamir.ErrArgument, "cannot sample %d of %d participants", k, len(participants))
	}
	pool := append([]*shamir.Participant(nil), participants...)
	for i := 0; i < k; i++ {
		j, err := src.Int(big.NewInt(int64(i)), big.NewInt(int64(len(pool)-1)))
		if err != nil {
			return nil, errors.Wrap(err, "sample participant")
		}
		pool[i], pool[j.Int64()] = pool[j.Int64()], pool[i]
	}
	return pool[:k], nil
}
