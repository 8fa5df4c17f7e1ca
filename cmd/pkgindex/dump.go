package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgindex/pkg/index"
)

func newDumpCmd(v *viper.Viper) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print the loaded index as definition records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(v)
			builder := newBuilder(v, logger)

			ix, err := builder.Load(cmd.Context())
			if err != nil {
				return err
			}
			if debug {
				spew.Fdump(cmd.ErrOrStderr(), ix)
			}
			return index.WriteRecords(cmd.OutOrStdout(), ix.Records())
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "spew-dump internal index state to stderr")

	return cmd
}
