package options

import "github.com/cocoonstack/hvconf/arch"

var ppc64leOptions = Options{
	Arch: arch.PPC64LE,

	MachineType:  "pseries",
	KernelParams: "console=hvc0 mitigations=off",
	// Spectre/Meltdown machine capabilities: guests do their own
	// mitigation, the host caps stay off for performance.
	MachineAccelerators: "cap-cfpc=broken,cap-sbbc=broken,cap-ibs=broken,cap-large-decr=off,cap-ccf-assist=off",
	CPUFeatures:         "",
	TDXCPUFeatures:      "",

	QEMUCmd:       "qemu-system-ppc64",
	QEMUTDXCmd:    "",
	QEMUSNPCmd:    "",
	FCCmd:         "",
	FCJailerCmd:   "",
	ACRNCmd:       "",
	ACRNCtlCmd:    "",
	CLHCmd:        "",
	CLHSNPCmd:     "",
	StratoVirtCmd: "",

	DefStaticResourceMgmtCLH: false,
}
