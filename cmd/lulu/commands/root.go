package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
	"github.com/retznutz/lulu-client/pkg/luluclient"
)

// Viper keys shared by flags, environment and the config file.
const (
	keyConfig  = "config"
	keyAPIKey  = "api-key"
	keySandbox = "sandbox"
	keyBaseURL = "base-url"
	keyOutput  = "output"
	keyVerbose = "verbose"
	keyTimeout = "timeout"

	configDirName  = ".lulu"
	configFileName = "config.yml"
	envPrefix      = "LULU"
)

// NewRootCommand builds the lulu command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lulu",
		Short: "Lulu print API CLI",
		Long: `A command-line interface for the Lulu print-on-demand API.

It manages projects, browses the product catalog, places and tracks orders,
quotes shipping and inspects print jobs. Credentials come from flags, LULU_*
environment variables, a .env file or $HOME/.lulu/config.yml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(keyConfig, "c", "", "config file (default is $HOME/.lulu/config.yml)")
	flags.String(keyAPIKey, "", "Lulu API key")
	flags.Bool(keySandbox, true, "use the sandbox environment")
	flags.String(keyBaseURL, "", "override the API root of the selected environment")
	flags.StringP(keyOutput, "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP(keyVerbose, "v", false, "verbose output")
	flags.Duration(keyTimeout, constants.DefaultHTTPTimeout, "HTTP timeout")

	for _, key := range []string{keyConfig, keyAPIKey, keySandbox, keyBaseURL, keyOutput, keyVerbose, keyTimeout} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigureCommand())
	rootCmd.AddCommand(NewProjectsCommand())
	rootCmd.AddCommand(NewProductsCommand())
	rootCmd.AddCommand(NewOrdersCommand())
	rootCmd.AddCommand(NewShippingCommand())
	rootCmd.AddCommand(NewAccountCommand())
	rootCmd.AddCommand(NewPrintCommand())

	return rootCmd
}

func initConfig() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgFile := viper.GetString(keyConfig)
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, configDirName))
		}

		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else if viper.GetBool(keyVerbose) {
		newLogger().WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}

	return nil
}

// newLogger returns the CLI logger on stderr, at debug level under --verbose.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)

	if viper.GetBool(keyVerbose) {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// buildConfig assembles a lulu.Config from flags, environment and file.
func buildConfig() (*lulu.Config, error) {
	apiKey := strings.TrimSpace(viper.GetString(keyAPIKey))
	if apiKey == "" {
		return nil, constants.ErrNoAPIKey
	}

	config := lulu.NewConfig(apiKey)
	config.Production = !viper.GetBool(keySandbox)

	if timeout := viper.GetDuration(keyTimeout); timeout > 0 {
		config.Timeout = timeout
	}

	if baseURL := strings.TrimSpace(viper.GetString(keyBaseURL)); baseURL != "" {
		config.SandboxBaseURL = baseURL
		config.ProductionBaseURL = baseURL
	}

	if viper.GetBool(keyVerbose) {
		config.Logger = lulu.NewLogrusLogger(newLogger())
	}

	return config, nil
}

// CreateClient builds a client from the effective CLI configuration.
func CreateClient(ctx context.Context) (lulu.Client, error) {
	config, err := buildConfig()
	if err != nil {
		return nil, err
	}

	var opts []luluclient.Option

	if config.Logger != nil {
		chain := lulu.NewInterceptorChain().
			OnRequest(lulu.RequestLogger(config.Logger)).
			OnResponse(lulu.ResponseLogger(config.Logger))
		opts = append(opts, luluclient.WithInterceptors(chain))
	}

	client, err := luluclient.New(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// withClient runs fn with a fresh client and closes it afterwards.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, client lulu.Client) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	defer func() { _ = client.Close() }()

	return fn(ctx, client)
}

// parseDate reads a YYYY-MM-DD flag value.
func parseDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	parsed, err := time.Parse(constants.DateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidDate, value)
	}

	return &parsed, nil
}
