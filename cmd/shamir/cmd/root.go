package cmd

import (
	"fmt"
	"strings"

	"github.com/izouxv/goShamir/prime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SHAMIR"

// Config holds the demo parameters after flags, environment and config
// file have been merged.
type Config struct {
	Bits         int    `mapstructure:"bits"`
	Threshold    int    `mapstructure:"threshold"`
	Participants int    `mapstructure:"participants"`
	Modulus      string `mapstructure:"modulus"`
	Safe         bool   `mapstructure:"safe"`
	Rounds       int    `mapstructure:"rounds"`
	LogLevel     string `mapstructure:"log-level"`
	LogEncoding  string `mapstructure:"log-encoding"`
}

// NewRootCmd creates the root command. It is called once in main.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "shamir",
		Short:         "Threshold secret sharing over a prime field",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          NoExtraArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().String("log-encoding", "console", "log encoding: console or json")

	rootCmd.AddCommand(newRunCmd(v), newModuliCmd())
	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", file)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	if cfg.Modulus == "" && cfg.Bits < 8 {
		return cfg, errors.Errorf("bits must be at least 8, got %d", cfg.Bits)
	}
	if cfg.Rounds < 1 {
		return cfg, errors.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	return cfg, nil
}

func newModuliCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moduli",
		Short: "List the named prime moduli",
		Args:  NoExtraArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range prime.Names() {
				p, err := prime.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d bits\n", name, p.BitLen())
			}
			return nil
		},
	}
}

// NoExtraArgs rejects positional arguments.
func NoExtraArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown args `%v`", args)
	}
	return nil
}
