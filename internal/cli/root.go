package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/logger"
)

const app = "gapscan"

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "gapscan compares a PDF resume against a job description with an LLM",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	debug   bool
	logJSON bool
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "json format for logging")
}

func newLogger() *zap.Logger {
	l, err := logger.New(logJSON, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating a logger: %v\n", err)
		return zap.NewNop()
	}
	return l
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
