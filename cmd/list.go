package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List generated configurations",
	RunE:    runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	m, err := gen.Manifest(ctx)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	if len(m.Generations) == 0 {
		fmt.Println("No configurations generated.")
		return nil
	}

	keys := make([]string, 0, len(m.Generations))
	for k := range m.Generations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ARCH\tDIGEST\tFRAGMENTS\tGENERATED\tPATH")
	for _, k := range keys {
		e := m.Generations[k]
		frags := "-"
		if len(e.Fragments) > 0 {
			frags = strings.Join(e.Fragments, ",")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Arch,
			shortDigest(e.Digest),
			frags,
			e.GeneratedAt.Local().Format(time.DateTime),
			e.Path,
		)
	}
	w.Flush() //nolint:errcheck,gosec
	return nil
}
