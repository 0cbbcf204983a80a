package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate configurations whenever a fragment changes",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	if err := gen.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
