package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgindex/pkg/resolver"
)

// exitCodeAmbiguous distinguishes "caller must choose" from failure; the
// candidate set is printed one per line for the caller to present.
const exitCodeAmbiguous = 3

func newResolveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME",
		Short: "print the import path for a package name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(v)
			r, err := newResolver(v, logger)
			if err != nil {
				return err
			}

			name := args[0]
			path, err := r.Resolve(cmd.Context(), name)
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			var ambiguous *resolver.AmbiguousImportError
			if errors.As(err, &ambiguous) {
				for _, candidate := range ambiguous.Candidates {
					fmt.Fprintln(cmd.OutOrStdout(), candidate)
				}
				return &exitCodeError{code: exitCodeAmbiguous, err: err}
			}
			return err
		},
	}
}

// exitCodeError carries a specific process exit code through cobra.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }
