package options

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cocoonstack/hvconf/arch"
)

// cmdPattern matches a bare executable name: letters, digits, dot, dash,
// underscore, plus. Commands are later invoked as executables, so shell
// metacharacters, path separators, and whitespace are all rejected.
var cmdPattern = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)

// Validate checks the record's internal consistency. Every table shipped
// by this package must pass; the same checks run against override results
// before a configuration is rendered.
func (o Options) Validate() error {
	if !o.Arch.IsValid() {
		return fmt.Errorf("invalid architecture %q", o.Arch)
	}
	if o.MachineType == "" {
		return fmt.Errorf("%s: machine type must not be empty", o.Arch)
	}
	if o.QEMUCmd == "" {
		return fmt.Errorf("%s: QEMU command must not be empty", o.Arch)
	}

	for name, cmd := range o.commands() {
		if cmd == "" {
			continue
		}
		if !cmdPattern.MatchString(cmd) {
			return fmt.Errorf("%s: %s command %q is not a bare executable name", o.Arch, name, cmd)
		}
	}

	// Jailer and acrnctl are companions: meaningless without their
	// primary, broken without the companion.
	if (o.FCCmd == "") != (o.FCJailerCmd == "") {
		return fmt.Errorf("%s: firecracker and jailer commands must be set together", o.Arch)
	}
	if (o.ACRNCmd == "") != (o.ACRNCtlCmd == "") {
		return fmt.Errorf("%s: acrn and acrnctl commands must be set together", o.Arch)
	}

	// Confidential-computing variants exist only on amd64.
	if o.Arch != arch.AMD64 {
		if o.TDXCPUFeatures != "" || o.QEMUTDXCmd != "" || o.QEMUSNPCmd != "" || o.CLHSNPCmd != "" || o.ACRNCmd != "" {
			return fmt.Errorf("%s: confidential-computing and ACRN options are amd64-only", o.Arch)
		}
	}
	if o.QEMUTDXCmd != "" && o.TDXCPUFeatures == "" {
		return fmt.Errorf("%s: TDX command set but TDX CPU features empty", o.Arch)
	}

	if strings.ContainsAny(o.KernelParams, ";&|$`") {
		return fmt.Errorf("%s: kernel params contain shell metacharacters", o.Arch)
	}

	return nil
}

// ValidateAll runs Validate over every shipped table.
func ValidateAll() error {
	for _, a := range arch.Supported() {
		opts, err := ForArch(a)
		if err != nil {
			return err
		}
		if err := opts.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) commands() map[string]string {
	return map[string]string{
		"qemu":        o.QEMUCmd,
		"qemu-tdx":    o.QEMUTDXCmd,
		"qemu-snp":    o.QEMUSNPCmd,
		"firecracker": o.FCCmd,
		"jailer":      o.FCJailerCmd,
		"acrn":        o.ACRNCmd,
		"acrnctl":     o.ACRNCtlCmd,
		"clh":         o.CLHCmd,
		"clh-snp":     o.CLHSNPCmd,
		"stratovirt":  o.StratoVirtCmd,
	}
}
