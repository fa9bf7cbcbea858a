// Package app implements the flaggen commands.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flaggen/flaggen/internal/charset"
	"github.com/flaggen/flaggen/internal/config"
	"github.com/flaggen/flaggen/internal/flagfmt"
	"github.com/flaggen/flaggen/internal/logger"
	"github.com/flaggen/flaggen/internal/metrics"
	"github.com/flaggen/flaggen/internal/output"
)

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Every call returns independent state.
func NewRootCmd() *cobra.Command {
	var (
		v          = viper.New()
		m          = metrics.New()
		cfg        config.Config
		configFile string
		envFile    string
	)

	rootCmd := &cobra.Command{
		Use:   "flaggen",
		Short: "flaggen generates random CTF style flags",
		Long: `flaggen generates random flags such as CTF{a1b2c3d4}.

The token part is sampled from a charset and rendered into a template using
the markers {prefix}, {token} and {suffix}. With --unique every flag of a batch
is distinct; if that is impossible within ten attempts per flag nothing is
written and an ERROR line is printed instead.`,
		Example: `  flaggen -n 5
  flaggen -n 100 -l 12 -c hex --unique -o flags.txt
  flaggen -c words -l 16 --prefix FLAG --no-braces
  flaggen --template '{prefix}-{token}' -f json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(v, configFile, envFile); err != nil {
				return err
			}

			return logger.Init(cfg.Log, m.Registry)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd.Context(), cmd.OutOrStdout(), &cfg, m)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: flaggen.{toml,yaml,json} in . or $HOME/.config/flaggen)")
	pf.StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded into the environment if present")
	pf.String("log-level", "warn", "log level (trace, debug, info, warn, error)")

	f := rootCmd.Flags()
	f.IntP("number", "n", 10, "number of flags to generate")                                              //nolint:mnd
	f.IntP("length", "l", 8, "length of the token part")                                                  //nolint:mnd
	f.StringP("charset", "c", string(charset.Alnum), "token charset ("+strings.Join(charset.Names(), "|")+")")
	f.String("prefix", "CTF", "prefix substituted for {prefix}")
	f.String("suffix", "", "suffix substituted for {suffix}")
	f.String("template", flagfmt.DefaultTemplate, "flag template using {prefix}, {token} and {suffix}")
	f.StringP("output", "o", "", "write flags to this file instead of stdout")
	f.StringP("format", "f", string(output.Text), "output format ("+strings.Join(output.Formats(), "|")+")")
	f.Bool("unique", false, "ensure generated flags are unique")
	f.Bool("no-braces", false, "drop the braces around the token if the template is the default")
	f.String("metrics-file", "", "write Prometheus metrics to this file (node exporter textfile format)")

	bindFlags(v, rootCmd)

	rootCmd.AddCommand(newConfigCmd(&cfg), newVersionCmd())

	return rootCmd
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{ //nolint:gochecknoglobals
	"number":       "generator.number",
	"length":       "generator.length",
	"charset":      "generator.charset",
	"prefix":       "generator.prefix",
	"suffix":       "generator.suffix",
	"template":     "generator.template",
	"unique":       "generator.unique",
	"no-braces":    "generator.no_braces",
	"output":       "output.path",
	"format":       "output.format",
	"metrics-file": "metrics.file",
	"log-level":    "log.level",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}

		if flag == nil {
			panic(fmt.Sprintf("flag %s is not defined", name))
		}

		// only fails for a nil flag
		_ = v.BindPFlag(key, flag)
	}
}
