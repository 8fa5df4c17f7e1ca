package scanner

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/amenzhinsky/go-memexec"
	"github.com/rs/zerolog"

	"pkgindex/pkg/index"
	"pkgindex/pkg/procutil"
)

//go:embed scanpkgs.sh
var scanScript []byte

// NewExecScanner constructs the external-process scanner implementation.
func NewExecScanner(logger zerolog.Logger, opts ...Option) *ExecScanner {
	s := &ExecScanner{logger: logger}
	for _, opt := range opts {
		opt(&s.options)
	}
	return s
}

// ExecScanner implements index.Scanner by staging an embedded shell helper to
// a temp file and running it with the roots as arguments.  The helper writes
// definition records to stdout; diagnostics go to stderr, so they can never
// corrupt the record stream.
type ExecScanner struct {
	logger  zerolog.Logger
	options options
}

// Scan implements the index.Scanner interface.  The staged helper executable
// is released on every exit path, including helper failure.
func (s *ExecScanner) Scan(ctx context.Context, roots []string) ([]index.Record, error) {
	exe, err := memexec.New(scanScript)
	if err != nil {
		return nil, fmt.Errorf("staging scan helper: %w", err)
	}
	defer exe.Close()

	var args []string
	for _, pattern := range s.options.excludes {
		args = append(args, "-exclude", pattern)
	}
	args = append(args, roots...)

	var stdout, stderr bytes.Buffer
	cmd := exe.CommandContext(ctx, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	s.logDiagnostics(&stderr)

	if exitCode := procutil.CmdExitCode(cmd, err); exitCode != 0 {
		return nil, fmt.Errorf("scan helper exited %d: %v", exitCode, err)
	}

	recs, err := index.ReadRecords(&stdout)
	if err != nil {
		return nil, fmt.Errorf("scan helper output: %w", err)
	}
	return recs, nil
}

func (s *ExecScanner) logDiagnostics(stderr *bytes.Buffer) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		s.logger.Debug().Str("helper", "scanpkgs").Msg(scanner.Text())
	}
}
