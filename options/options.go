package options

import (
	"fmt"

	"github.com/cocoonstack/hvconf/arch"
)

// Hypervisor backend names, used as section names in the generated
// runtime configuration.
const (
	HypervisorQEMU        = "qemu"
	HypervisorQEMUTDX     = "qemu-tdx"
	HypervisorQEMUSNP     = "qemu-snp"
	HypervisorFirecracker = "firecracker"
	HypervisorACRN        = "acrn"
	HypervisorCLH         = "clh"
	HypervisorCLHSNP      = "clh-snp"
	HypervisorStratoVirt  = "stratovirt"
)

// Options is the per-architecture build configuration record: the default
// machine type, guest kernel parameters, CPU feature toggles, and the
// executable names of every hypervisor backend the architecture supports.
//
// Every architecture carries the identical key set. A hypervisor the
// architecture does not support has an empty command string and is omitted
// from the generated configuration.
type Options struct {
	// Arch is the architecture this record belongs to.
	Arch arch.Architecture

	// MachineType is the default VM chipset/board model (e.g. "q35").
	MachineType string
	// KernelParams are additional guest kernel boot parameters.
	KernelParams string
	// MachineAccelerators are hypervisor acceleration flags appended to
	// the machine definition.
	MachineAccelerators string
	// CPUFeatures are CPU feature toggles for standard VMs.
	CPUFeatures string
	// TDXCPUFeatures are CPU feature toggles for TDX confidential VMs.
	// Only set on architectures with TDX support.
	TDXCPUFeatures string

	// Hypervisor executable names. Bare binary names, resolved via PATH
	// by the runtime; never paths or shell fragments.
	QEMUCmd       string
	QEMUTDXCmd    string
	QEMUSNPCmd    string
	FCCmd         string
	FCJailerCmd   string
	ACRNCmd       string
	ACRNCtlCmd    string
	CLHCmd        string
	CLHSNPCmd     string
	StratoVirtCmd string

	// DefStaticResourceMgmtCLH is the default for cloud-hypervisor's
	// static resource management (no CPU/memory hotplug).
	DefStaticResourceMgmtCLH bool
}

// tables maps each supported architecture to its option record.
// Populated from the per-arch files in this package.
var tables = map[arch.Architecture]Options{
	arch.AMD64:   amd64Options,
	arch.ARM64:   arm64Options,
	arch.PPC64LE: ppc64leOptions,
	arch.S390X:   s390xOptions,
}

// ForArch returns a copy of the option table for the given architecture.
func ForArch(a arch.Architecture) (Options, error) {
	opts, ok := tables[a]
	if !ok {
		return Options{}, fmt.Errorf("no option table for architecture %q", a)
	}
	return opts, nil
}

// Hypervisors returns the backends this architecture supports, in the
// fixed section order of the generated configuration. A backend is
// supported iff its primary command is non-empty.
func (o Options) Hypervisors() []string {
	candidates := []struct {
		name string
		cmd  string
	}{
		{HypervisorQEMU, o.QEMUCmd},
		{HypervisorQEMUTDX, o.QEMUTDXCmd},
		{HypervisorQEMUSNP, o.QEMUSNPCmd},
		{HypervisorFirecracker, o.FCCmd},
		{HypervisorACRN, o.ACRNCmd},
		{HypervisorCLH, o.CLHCmd},
		{HypervisorCLHSNP, o.CLHSNPCmd},
		{HypervisorStratoVirt, o.StratoVirtCmd},
	}
	var out []string
	for _, c := range candidates {
		if c.cmd != "" {
			out = append(out, c.name)
		}
	}
	return out
}

// Command returns the primary executable name for the named backend.
func (o Options) Command(hypervisor string) (string, error) {
	switch hypervisor {
	case HypervisorQEMU:
		return o.QEMUCmd, nil
	case HypervisorQEMUTDX:
		return o.QEMUTDXCmd, nil
	case HypervisorQEMUSNP:
		return o.QEMUSNPCmd, nil
	case HypervisorFirecracker:
		return o.FCCmd, nil
	case HypervisorACRN:
		return o.ACRNCmd, nil
	case HypervisorCLH:
		return o.CLHCmd, nil
	case HypervisorCLHSNP:
		return o.CLHSNPCmd, nil
	case HypervisorStratoVirt:
		return o.StratoVirtCmd, nil
	default:
		return "", fmt.Errorf("unknown hypervisor %q", hypervisor)
	}
}

// Keys returns the fixed key set of the record, identical across all
// architectures. Order matches the original options files.
func Keys() []string {
	return []string{
		"MACHINETYPE",
		"KERNELPARAMS",
		"MACHINEACCELERATORS",
		"CPUFEATURES",
		"TDXCPUFEATURES",
		"QEMUCMD",
		"QEMUTDXCMD",
		"QEMUSNPCMD",
		"FCCMD",
		"FCJAILERCMD",
		"ACRNCMD",
		"ACRNCTLCMD",
		"CLHCMD",
		"CLHSNPCMD",
		"STRATOVIRTCMD",
		"DEFSTATICRESOURCEMGMT_CLH",
	}
}

// Values returns the record as a key → literal map using the original
// option-file key names. Every key from Keys() is present; unsupported
// entries map to the empty string, booleans to "true"/"false".
func (o Options) Values() map[string]string {
	return map[string]string{
		"MACHINETYPE":               o.MachineType,
		"KERNELPARAMS":              o.KernelParams,
		"MACHINEACCELERATORS":       o.MachineAccelerators,
		"CPUFEATURES":               o.CPUFeatures,
		"TDXCPUFEATURES":            o.TDXCPUFeatures,
		"QEMUCMD":                   o.QEMUCmd,
		"QEMUTDXCMD":                o.QEMUTDXCmd,
		"QEMUSNPCMD":                o.QEMUSNPCmd,
		"FCCMD":                     o.FCCmd,
		"FCJAILERCMD":               o.FCJailerCmd,
		"ACRNCMD":                   o.ACRNCmd,
		"ACRNCTLCMD":                o.ACRNCtlCmd,
		"CLHCMD":                    o.CLHCmd,
		"CLHSNPCMD":                 o.CLHSNPCmd,
		"STRATOVIRTCMD":             o.StratoVirtCmd,
		"DEFSTATICRESOURCEMGMT_CLH": fmt.Sprintf("%t", o.DefStaticResourceMgmtCLH),
	}
}
