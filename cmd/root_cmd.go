package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charkit/pwgen/internal/conf"
	"github.com/charkit/pwgen/internal/observability"
)

var configFile = ""

const rootUsage = `Generates cryptographically random passwords.

The charset specification language is a subset of the character set language
for regular expressions. Only characters and ranges are allowed. Literal
hyphens and backslashes must be escaped. Other characters must not be
escaped. An initial caret may be used to invert the character set with
respect to typeable ASCII characters.`

var rootCmd = cobra.Command{
	Use:  "pwgen",
	Long: rootUsage,
	Run: func(cmd *cobra.Command, args []string) {
		execWithConfig(cmd, generate)
	},
}

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd.AddCommand(&versionCmd)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "the env file to use")
	rootCmd.Flags().StringP("charset", "c", "", "charset specification to draw password characters from")
	rootCmd.Flags().IntP("length", "l", 24, "length of each generated password")
	rootCmd.Flags().IntP("count", "n", 1, "number of passwords to generate")
	rootCmd.Flags().Bool("hash", false, "print a bcrypt hash next to each password")

	return &rootCmd
}

func execWithConfig(cmd *cobra.Command, fn func(config *conf.GlobalConfiguration)) {
	config, err := conf.LoadGlobal(configFile)
	if err != nil {
		logrus.WithError(err).Fatal("unable to load config")
	}

	if err := observability.ConfigureLogging(&config.Logging); err != nil {
		logrus.WithError(err).Fatal("unable to configure logging")
	}

	applyFlagOverrides(cmd, config)

	// flags may have replaced validated values
	if err := config.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	fn(config)
}

func applyFlagOverrides(cmd *cobra.Command, config *conf.GlobalConfiguration) {
	flags := cmd.Flags()

	if flags.Changed("charset") {
		config.Password.Charset, _ = flags.GetString("charset")
	}
	if flags.Changed("length") {
		config.Password.Length, _ = flags.GetInt("length")
	}
	if flags.Changed("count") {
		config.Password.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("hash") {
		config.Password.Hash, _ = flags.GetBool("hash")
	}
}
