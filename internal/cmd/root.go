package cmd

import (
	"fmt"
	"os"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/namelens/avail/internal/config"
	"github.com/namelens/avail/internal/httpclient"
	"github.com/namelens/avail/internal/observability"
)

var (
	cfgFile     string
	verbose     bool
	listCatalog bool

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionText())
	httpclient.SetVersion(version)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "avail <target>",
	Short: "Check whether a handle is free across social, dev, package and web platforms",
	Long: `avail checks a single handle against a catalog of platforms and prints,
grouped by category, whether it looks available (Y), taken (N) or could not
be determined (?).

HTTP checkers treat an error status as "available". DNS checkers treat a
name that does not resolve as "available". The exit code is 1 when any
checker could not reach a verdict.`,
	Example: `  avail octocat
  avail --workers 8 --output table octocat
  avail --dns-server 1.1.1.1 example
  avail --list`,
	Args:          validateArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/avail/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	rootCmd.Flags().BoolVar(&listCatalog, "list", false, "print the catalog grouped by category and exit")
	rootCmd.Flags().Int("workers", 1, "number of checks to run at once")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (e.g. 5s)")
	rootCmd.Flags().String("dns-server", "", "query this nameserver instead of the system resolver")
	rootCmd.Flags().StringP("output", "o", "console", "output format: console, table")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().String("catalog", "", "YAML file with extra catalog entries")
	rootCmd.Flags().StringSlice("skip", nil, "catalog entries to leave out (category/name, comma-separated)")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("http.timeout", rootCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("dns.server", rootCmd.Flags().Lookup("dns-server"))
	_ = viper.BindPFlag("output.format", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("catalog.file", rootCmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("catalog.skip", rootCmd.Flags().Lookup("skip"))
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if listCatalog {
		return cobra.NoArgs(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	logger := observability.InitCLILogger(config.AppName, verbose, "")

	config.SetDefaults(viper.GetViper())
	config.ConfigureEnv(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		for _, dir := range config.SearchPaths() {
			viper.AddConfigPath(dir)
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file", zap.String("path", viper.ConfigFileUsed()))
	} else {
		// It's OK if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Debug("No config file found, using defaults and environment variables")
		} else if cfgFile != "" {
			if _, statErr := os.Stat(cfgFile); statErr != nil {
				ExitWithCode(logger, foundry.ExitFileNotFound, fmt.Sprintf("Config file %s not found", cfgFile), statErr)
			}
			ExitWithCode(logger, foundry.ExitConfigInvalid, "Error reading config file", err)
		} else {
			logger.Warn("Error reading config file", zap.Error(err))
		}
	}
}
