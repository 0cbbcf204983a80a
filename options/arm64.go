package options

import "github.com/cocoonstack/hvconf/arch"

var arm64Options = Options{
	Arch: arch.ARM64,

	MachineType:         "virt",
	KernelParams:        "",
	MachineAccelerators: "",
	CPUFeatures:         "pmu=off",
	TDXCPUFeatures:      "",

	QEMUCmd:       "qemu-system-aarch64",
	QEMUTDXCmd:    "",
	QEMUSNPCmd:    "",
	FCCmd:         "firecracker",
	FCJailerCmd:   "jailer",
	ACRNCmd:       "",
	ACRNCtlCmd:    "",
	CLHCmd:        "cloud-hypervisor",
	CLHSNPCmd:     "",
	StratoVirtCmd: "stratovirt",

	DefStaticResourceMgmtCLH: false,
}
