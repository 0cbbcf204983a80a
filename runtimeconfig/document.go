// Package runtimeconfig renders per-architecture hypervisor option tables,
// plus drop-in override fragments, into the runtime's configuration file.
package runtimeconfig

import (
	"github.com/cocoonstack/hvconf/arch"
	"github.com/cocoonstack/hvconf/options"
)

// VM sizing defaults written into every hypervisor section. Overridable
// per hypervisor via fragments.
const (
	DefaultVCPUs     = 1
	DefaultMemoryMiB = 2048
)

// Document is the generated runtime configuration. Field order is the
// serialization order, so rendering is deterministic.
type Document struct {
	Runtime    RuntimeSection     `toml:"runtime"`
	Hypervisor HypervisorSections `toml:"hypervisor"`
}

// RuntimeSection identifies what the document was generated for.
type RuntimeSection struct {
	Arch      string `toml:"arch"`
	Generator string `toml:"generator"`
}

// HypervisorSections holds one section per hypervisor backend the
// architecture supports. Nil sections are omitted from the output.
type HypervisorSections struct {
	QEMU        *HypervisorSection `toml:"qemu,omitempty"`
	QEMUTDX     *HypervisorSection `toml:"qemu-tdx,omitempty"`
	QEMUSNP     *HypervisorSection `toml:"qemu-snp,omitempty"`
	Firecracker *HypervisorSection `toml:"firecracker,omitempty"`
	ACRN        *HypervisorSection `toml:"acrn,omitempty"`
	CLH         *HypervisorSection `toml:"clh,omitempty"`
	CLHSNP      *HypervisorSection `toml:"clh-snp,omitempty"`
	StratoVirt  *HypervisorSection `toml:"stratovirt,omitempty"`
}

// HypervisorSection configures a single backend.
type HypervisorSection struct {
	Path                string `toml:"path"`
	JailerPath          string `toml:"jailer_path,omitempty"`
	CtlPath             string `toml:"ctl_path,omitempty"`
	MachineType         string `toml:"machine_type,omitempty"`
	MachineAccelerators string `toml:"machine_accelerators,omitempty"`
	CPUFeatures         string `toml:"cpu_features,omitempty"`
	KernelParams        string `toml:"kernel_params,omitempty"`
	DefaultVCPUs        int    `toml:"default_vcpus"`
	DefaultMemoryMiB    int64  `toml:"default_memory"`
	ConfidentialGuest   bool   `toml:"confidential_guest,omitempty"`
	StaticResourceMgmt  *bool  `toml:"static_resource_mgmt,omitempty"`
}

// section returns the pointer slot for the named hypervisor.
func (h *HypervisorSections) section(name string) **HypervisorSection {
	switch name {
	case options.HypervisorQEMU:
		return &h.QEMU
	case options.HypervisorQEMUTDX:
		return &h.QEMUTDX
	case options.HypervisorQEMUSNP:
		return &h.QEMUSNP
	case options.HypervisorFirecracker:
		return &h.Firecracker
	case options.HypervisorACRN:
		return &h.ACRN
	case options.HypervisorCLH:
		return &h.CLH
	case options.HypervisorCLHSNP:
		return &h.CLHSNP
	case options.HypervisorStratoVirt:
		return &h.StratoVirt
	default:
		return nil
	}
}

// NewDocument builds the default document for the given option table.
// Only hypervisors the architecture supports get a section.
func NewDocument(o options.Options) *Document {
	doc := &Document{
		Runtime: RuntimeSection{
			Arch:      o.Arch.String(),
			Generator: "hvconf",
		},
	}

	base := func(path string) *HypervisorSection {
		return &HypervisorSection{
			Path:             path,
			KernelParams:     o.KernelParams,
			DefaultVCPUs:     DefaultVCPUs,
			DefaultMemoryMiB: DefaultMemoryMiB,
		}
	}

	if o.QEMUCmd != "" {
		s := base(o.QEMUCmd)
		s.MachineType = o.MachineType
		s.MachineAccelerators = o.MachineAccelerators
		s.CPUFeatures = o.CPUFeatures
		doc.Hypervisor.QEMU = s
	}
	if o.QEMUTDXCmd != "" {
		s := base(o.QEMUTDXCmd)
		s.MachineType = o.MachineType
		s.MachineAccelerators = o.MachineAccelerators
		s.CPUFeatures = o.TDXCPUFeatures
		s.ConfidentialGuest = true
		doc.Hypervisor.QEMUTDX = s
	}
	if o.QEMUSNPCmd != "" {
		s := base(o.QEMUSNPCmd)
		s.MachineType = o.MachineType
		s.MachineAccelerators = o.MachineAccelerators
		s.CPUFeatures = o.CPUFeatures
		s.ConfidentialGuest = true
		doc.Hypervisor.QEMUSNP = s
	}
	if o.FCCmd != "" {
		s := base(o.FCCmd)
		s.JailerPath = o.FCJailerCmd
		doc.Hypervisor.Firecracker = s
	}
	if o.ACRNCmd != "" {
		s := base(o.ACRNCmd)
		s.CtlPath = o.ACRNCtlCmd
		doc.Hypervisor.ACRN = s
	}
	if o.CLHCmd != "" {
		s := base(o.CLHCmd)
		srm := o.DefStaticResourceMgmtCLH
		s.StaticResourceMgmt = &srm
		doc.Hypervisor.CLH = s
	}
	if o.CLHSNPCmd != "" {
		s := base(o.CLHSNPCmd)
		srm := o.DefStaticResourceMgmtCLH
		s.StaticResourceMgmt = &srm
		s.ConfidentialGuest = true
		doc.Hypervisor.CLHSNP = s
	}
	if o.StratoVirtCmd != "" {
		doc.Hypervisor.StratoVirt = base(o.StratoVirtCmd)
	}

	return doc
}

// NewDocumentForArch is NewDocument over the shipped table for a.
func NewDocumentForArch(a arch.Architecture) (*Document, error) {
	o, err := options.ForArch(a)
	if err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return NewDocument(o), nil
}
