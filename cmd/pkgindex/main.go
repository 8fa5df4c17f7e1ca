// Command pkgindex resolves short package names to fully-qualified import
// paths using a persisted index of the configured source roots.  It is the
// process boundary an editor integration calls into: the editor supplies a
// name, pkgindex prints the resolved path (or the candidate set) for the
// editor to splice into the buffer.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pkgindex:", err)
		var coded *exitCodeError
		if errors.As(err, &coded) {
			os.Exit(coded.code)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "pkgindex",
		Short:         "resolve package names to import paths",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringArray("root", nil, "source root to scan (repeatable)")
	cmd.PersistentFlags().String("index_file", "", "persisted index location (default: .pkgindex under the first root)")
	cmd.PersistentFlags().Bool("exec_scanner", false, "scan with the external helper process instead of in-process")
	cmd.PersistentFlags().StringArray("exclude", nil, "glob pattern for directories to skip (repeatable)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	v.SetEnvPrefix("PKGINDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cobra.CheckErr(v.BindPFlags(cmd.PersistentFlags()))

	cmd.AddCommand(
		newResolveCmd(v),
		newReloadCmd(v),
		newDumpCmd(v),
	)

	return cmd
}

// newLogger builds the process logger.  Console formatting is used on a TTY,
// structured JSON otherwise.
func newLogger(v *viper.Viper) zerolog.Logger {
	level := zerolog.InfoLevel
	if v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}
