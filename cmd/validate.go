package cmd

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"

	"github.com/cocoonstack/hvconf/options"
	"github.com/cocoonstack/hvconf/runtimeconfig"
)

var validateCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [ARCH...]",
		Short: "Validate option tables and fragments (default: all architectures)",
		RunE:  runValidate,
	}
	cmd.Flags().Bool("binaries", false, "also check that hypervisor binaries resolve on PATH")
	return cmd
}()

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	arches, err := archesFromArgs(args)
	if err != nil {
		return err
	}
	checkBinaries, _ := cmd.Flags().GetBool("binaries")

	frags, err := runtimeconfig.LoadFragments(conf.FragmentDir)
	if err != nil {
		return err
	}

	logger := log.WithFunc("cmd.validate")
	var failures []string
	for _, a := range arches {
		opts, err := options.ForArch(a)
		if err != nil {
			return err
		}
		if err := opts.Validate(); err != nil {
			failures = append(failures, err.Error())
			continue
		}
		// Fragments must apply cleanly on top of the defaults.
		if _, err := runtimeconfig.Render(a, frags); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", a, err))
			continue
		}
		logger.Infof(ctx, "%s: ok (%s)", a, strings.Join(opts.Hypervisors(), ", "))

		if checkBinaries {
			reportMissingBinaries(ctx, opts)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("validation failed:\n  %s", strings.Join(failures, "\n  "))
	}
	return nil
}

// reportMissingBinaries warns for each configured command absent from
// PATH. Missing binaries are expected on hosts that only run a subset of
// backends, so this never fails validation.
func reportMissingBinaries(ctx context.Context, opts options.Options) {
	logger := log.WithFunc("cmd.validate")
	for _, h := range opts.Hypervisors() {
		cmd, err := opts.Command(h)
		if err != nil || cmd == "" {
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			logger.Warnf(ctx, "%s/%s: %s not found on PATH", opts.Arch, h, cmd)
		}
	}
}
