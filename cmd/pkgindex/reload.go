package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newReloadCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "clear the persisted index and rebuild it from the configured roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(v)
			builder := newBuilder(v, logger)

			ix, err := builder.Build(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info().
				Int("names", ix.Len()).
				Str("file", builder.IndexFile()).
				Msg("index rebuilt")
			return nil
		},
	}
}
