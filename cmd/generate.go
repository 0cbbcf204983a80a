package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var generateCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [flags]",
		Short: "Render and install runtime configuration files",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	cmd.Flags().String("arch", "", "target architecture (default: host)")
	cmd.Flags().Bool("all", false, "generate every supported architecture")
	return cmd
}()

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	arches, err := archesFromFlags(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	results, err := gen.GenerateAll(ctx, arches)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ARCH\tPATH\tDIGEST\tSTATUS")
	for _, res := range results {
		status := "unchanged"
		if res.Changed {
			status = "written"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Arch, res.Path, shortDigest(res.Digest), status)
	}
	w.Flush() //nolint:errcheck,gosec
	return nil
}
