package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cocoonstack/hvconf/options"
	"github.com/cocoonstack/hvconf/runtimeconfig"
)

var showCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [flags]",
		Short: "Show the resolved option table or rendered configuration",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	cmd.Flags().String("arch", "", "target architecture (default: host)")
	cmd.Flags().Bool("all", false, "show every supported architecture")
	cmd.Flags().String("format", "text", "output format: text or toml")
	return cmd
}()

func runShow(cmd *cobra.Command, _ []string) error {
	arches, err := archesFromFlags(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, a := range arches {
			opts, err := options.ForArch(a)
			if err != nil {
				return err
			}
			vals := opts.Values()
			for _, key := range options.Keys() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", a, key, vals[key])
			}
		}
		w.Flush() //nolint:errcheck,gosec
		return nil

	case "toml":
		frags, err := runtimeconfig.LoadFragments(conf.FragmentDir)
		if err != nil {
			return err
		}
		for _, a := range arches {
			rendered, err := runtimeconfig.Render(a, frags)
			if err != nil {
				return err
			}
			os.Stdout.Write(rendered.Data) //nolint:errcheck,gosec
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q (want text or toml)", format)
	}
}
