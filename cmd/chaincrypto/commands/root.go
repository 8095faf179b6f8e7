package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/ledgerkit/chaincrypto/config"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
	"github.com/ledgerkit/chaincrypto/libs/cli"
	chainflags "github.com/ledgerkit/chaincrypto/libs/cli/flags"
	"github.com/ledgerkit/chaincrypto/libs/log"
)

var (
	config = cfg.DefaultConfig()
	logger = log.NewLogger(os.Stderr)
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", config.LogLevel, "log level")
	cmd.PersistentFlags().String("key_type", config.KeyType,
		fmt.Sprintf("key type (one of %s)", keytypes.SupportedKeyTypesStr()))
}

// ParseConfig retrieves the default environment configuration and
// overrides it with the config file, environment variables and flags
// loaded into viper.
func ParseConfig(*cobra.Command) (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	err := viper.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	conf.SetRoot(viper.GetString(cli.HomeFlag))
	if err := conf.ValidateBasic(); err != nil {
		return nil, errors.Wrap(err, "error in config file")
	}
	return conf, nil
}

// RootCmd is the root command for chaincrypto.
var RootCmd = &cobra.Command{
	Use:   "chaincrypto",
	Short: "Generate, encode and inspect ledger signing keys",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		conf, err := ParseConfig(cmd)
		if err != nil {
			return err
		}
		config = conf

		// keys and signatures go to stdout, logs to stderr
		w := cmd.ErrOrStderr()
		switch {
		case config.LogFormat == cfg.LogFormatJSON:
			logger = log.NewJSONLogger(w)
		case !config.LogColors:
			logger = log.NewLoggerWithColor(w, false)
		default:
			logger = log.NewLogger(w)
		}

		logger, err = chainflags.ParseLogLevel(config.LogLevel, logger, cfg.DefaultLogLevel)
		if err != nil {
			return err
		}
		logger = logger.With("module", "main")

		if viper.GetBool(cli.TraceFlag) || config.Trace {
			logger = log.NewTracingLogger(logger)
		}

		return nil
	},
}
