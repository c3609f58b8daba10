package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/shamir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := Config{Threshold: 3, Participants: 5, Modulus: "p256", Rounds: 2}

	require.NoError(t, Run(cfg, zap.New(core)))

	// modulus + per round: 2 dealer events and 2 sizes x 2 methods
	assert.Equal(t, 1+2*(2+4), logs.Len())
	assert.Equal(t, 4, logs.FilterMessage("key assembly completed successfully").Len())
	assert.Equal(t, 4, logs.FilterMessage("the resulting key is different from the generated one").Len())
	assert.Equal(t, 0, logs.FilterMessage("reconstruction failed").Len())
}

func TestRunGeneratedModulus(t *testing.T) {
	cfg := Config{Threshold: 2, Participants: 3, Bits: 64, Rounds: 1}
	require.NoError(t, Run(cfg, zap.NewNop()))

	cfg.Safe = true
	require.NoError(t, Run(cfg, zap.NewNop()))
}

func TestRunErrors(t *testing.T) {
	_, err := resolveModulus(Config{Modulus: "nope"})
	assert.Error(t, err)

	err = Run(Config{Threshold: 1, Participants: 3, Modulus: "p256", Rounds: 1}, zap.NewNop())
	assert.True(t, errors.Is(err, shamir.ErrInvalidThreshold))
}

func TestSample(t *testing.T) {
	participants := make([]*shamir.Participant, 6)
	for i := range participants {
		participants[i] = shamir.NewParticipant(i)
	}

	for k := 0; k <= len(participants); k++ {
		chosen, err := sample(participants, k, field.CryptoSource{})
		require.NoError(t, err)
		require.Len(t, chosen, k)

		seen := make(map[int]bool)
		for _, p := range chosen {
			assert.False(t, seen[p.Index()], "participant %d sampled twice", p.Index())
			seen[p.Index()] = true
		}
	}

	for i, p := range participants {
		assert.Equal(t, i, p.Index(), "input order must be preserved")
	}

	_, err := sample(participants, 7, field.CryptoSource{})
	assert.True(t, errors.Is(err, shamir.ErrArgument))
}

func TestRootModuli(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"moduli"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "secp256k1")
	assert.Contains(t, out.String(), "521 bits")
}

func TestRootExtraArgs(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"moduli", "extra"})
	assert.Error(t, root.Execute())
}

func TestConfigSources(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "shamir.yaml")
	require.NoError(t, os.WriteFile(file, []byte("threshold: 4\nparticipants: 9\nmodulus: p384\n"), 0o600))
	t.Setenv("SHAMIR_ROUNDS", "3")

	v := viper.New()
	cmd := newRunCmd(v)
	cmd.Flags().String("config", "", "")
	require.NoError(t, cmd.ParseFlags([]string{"--config", file, "-n", "10"}))
	require.NoError(t, initConfig(cmd, v))

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Threshold)
	assert.Equal(t, 10, cfg.Participants, "flags override the config file")
	assert.Equal(t, "p384", cfg.Modulus)
	assert.Equal(t, 3, cfg.Rounds)
	assert.Equal(t, 512, cfg.Bits)
}

func TestLoadConfigValidation(t *testing.T) {
	v := viper.New()
	v.Set("bits", 4)
	v.Set("rounds", 1)
	_, err := loadConfig(v)
	assert.Error(t, err)

	v.Set("bits", 64)
	v.Set("rounds", 0)
	_, err = loadConfig(v)
	assert.Error(t, err)
}
