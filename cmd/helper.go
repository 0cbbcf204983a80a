package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cocoonstack/hvconf/arch"
	"github.com/cocoonstack/hvconf/runtimeconfig"
)

// newGenerator initializes the generator from the resolved config.
func newGenerator() (*runtimeconfig.Generator, error) {
	gen, err := runtimeconfig.NewGenerator(conf)
	if err != nil {
		return nil, fmt.Errorf("init generator: %w", err)
	}
	return gen, nil
}

// archesFromFlags resolves --arch / --all into a concrete list.
// With neither flag set, defaults to the host architecture.
func archesFromFlags(cmd *cobra.Command) ([]arch.Architecture, error) {
	all, _ := cmd.Flags().GetBool("all")
	if all {
		return arch.Supported(), nil
	}
	raw, _ := cmd.Flags().GetString("arch")
	if raw == "" {
		raw = arch.Host().String()
	}
	a, err := arch.Parse(raw)
	if err != nil {
		return nil, err
	}
	return []arch.Architecture{a}, nil
}

// archesFromArgs parses positional architecture args, defaulting to all.
func archesFromArgs(args []string) ([]arch.Architecture, error) {
	if len(args) == 0 {
		return arch.Supported(), nil
	}
	out := make([]arch.Architecture, 0, len(args))
	for _, raw := range args {
		a, err := arch.Parse(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// shortDigest trims "sha256:<64 hex>" for table display.
func shortDigest(d string) string {
	if i := strings.IndexByte(d, ':'); i >= 0 && len(d) > i+13 {
		return d[:i+13]
	}
	return d
}
