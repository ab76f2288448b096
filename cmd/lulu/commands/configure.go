package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/retznutz/lulu-client/internal/constants"
)

// fileConfig is the on-disk shape of the config file.
type fileConfig struct {
	APIKey  string `yaml:"api-key"`
	Sandbox bool   `yaml:"sandbox"`
	BaseURL string `yaml:"base-url,omitempty"`
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Store API credentials",
		Long: `Prompt for a Lulu API key and save it, together with the environment
selection, to the config file. Pass --api-key to skip the prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString(keyAPIKey)
			if !cmd.Flags().Changed(keyAPIKey) {
				var err error

				apiKey, err = promptAPIKey(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = writeFileConfig(path, fileConfig{
				APIKey:  apiKey,
				Sandbox: viper.GetBool(keySandbox),
				BaseURL: viper.GetString(keyBaseURL),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)

			return nil
		},
	}
}

// promptAPIKey reads the key without echo when in is a terminal, else one line of in.
func promptAPIKey(in io.Reader, prompt io.Writer) (string, error) {
	_, _ = io.WriteString(prompt, "API key: ")

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		raw, err := term.ReadPassword(int(file.Fd()))
		_, _ = io.WriteString(prompt, "\n")

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return line, nil
}

func configFilePath() (string, error) {
	if path := viper.GetString(keyConfig); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

func writeFileConfig(path string, config fileConfig) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
