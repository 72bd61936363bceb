package observability

import (
	"fmt"
	"os"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
)

// CLILogger is used for CLI commands (SIMPLE profile). It writes to stderr so
// the report on stdout stays clean.
var CLILogger *logging.Logger

// InitCLILogger initializes the CLI logger with SIMPLE profile. Verbose wins
// over level.
func InitCLILogger(serviceName string, verbose bool, level string) *logging.Logger {
	config := &logging.LoggerConfig{
		Profile:      logging.ProfileSimple,
		DefaultLevel: ParseLogLevel(level),
		Service:      serviceName,
		Environment:  "production",
		Sinks: []logging.SinkConfig{
			{
				Type:   "console",
				Format: "console",
				Console: &logging.ConsoleSinkConfig{
					Stream:   "stderr",
					Colorize: false,
				},
			},
		},
	}

	logger, err := logging.New(config)
	if err != nil {
		exitWithCodeStderr(foundry.ExitConfigInvalid, "Failed to initialize CLI logger", err)
	}

	if verbose {
		logger.SetLevel(logging.DEBUG)
	}

	CLILogger = logger
	return logger
}

// ParseLogLevel converts a config log level to a logging severity string.
// Unknown or empty values fall back to WARN so probes stay quiet by default.
func ParseLogLevel(levelStr string) string {
	switch levelStr {
	case "trace":
		return "TRACE"
	case "debug":
		return "DEBUG"
	case "info":
		return "INFO"
	case "error":
		return "ERROR"
	default:
		return "WARN"
	}
}

// exitWithCodeStderr exits with a semantic exit code, writing to stderr.
// This is a local helper for logger initialization failures before CLI logger is available.
func exitWithCodeStderr(exitCode foundry.ExitCode, msg string, err error) {
	info, ok := foundry.GetExitCodeInfo(exitCode)
	if !ok {
		fmt.Fprintf(os.Stderr, "FATAL: %s: %v (exit code: %d)\n", msg, err, exitCode)
		os.Exit(int(exitCode))
	}

	fmt.Fprintf(os.Stderr, "FATAL: %s: %v\n", msg, err)
	fmt.Fprintf(os.Stderr, "Exit Code: %d (%s) - %s\n", info.Code, info.Name, info.Description)

	os.Exit(info.Code)
}
