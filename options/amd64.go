package options

import "github.com/cocoonstack/hvconf/arch"

// amd64 is the only architecture with confidential-computing variants
// (TDX, SNP) and ACRN support.
var amd64Options = Options{
	Arch: arch.AMD64,

	MachineType:         "q35",
	KernelParams:        "",
	MachineAccelerators: "",
	CPUFeatures:         "pmu=off",
	// Verbatim, including the leading "-": the runtime splices this
	// string into the QEMU -cpu argument as-is.
	TDXCPUFeatures: "-vmx-rdseed-exit,pmu=off",

	QEMUCmd:     "qemu-system-x86_64",
	QEMUTDXCmd:  "qemu-system-x86_64-tdx-experimental",
	QEMUSNPCmd:  "qemu-system-x86_64-snp-experimental",
	FCCmd:       "firecracker",
	FCJailerCmd: "jailer",
	ACRNCmd:     "acrn-dm",
	ACRNCtlCmd:  "acrnctl",
	CLHCmd:      "cloud-hypervisor",
	// Mainline cloud-hypervisor handles SEV-SNP; no separate build.
	CLHSNPCmd:     "cloud-hypervisor",
	StratoVirtCmd: "stratovirt",

	DefStaticResourceMgmtCLH: false,
}
