package options

import "github.com/cocoonstack/hvconf/arch"

var s390xOptions = Options{
	Arch: arch.S390X,

	MachineType:         "s390-ccw-virtio",
	KernelParams:        "",
	MachineAccelerators: "",
	CPUFeatures:         "",
	TDXCPUFeatures:      "",

	QEMUCmd:       "qemu-system-s390x",
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
