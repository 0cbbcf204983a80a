package options

import (
	"testing"

	"github.com/cocoonstack/hvconf/arch"
)

func TestValidateAll_ShippedTables(t *testing.T) {
	if err := ValidateAll(); err != nil {
		t.Fatalf("shipped tables must validate: %v", err)
	}
}

func TestValidate_RejectsShellMetacharacters(t *testing.T) {
	bad := []string{
		"qemu; rm -rf /",
		"qemu$(id)",
		"qemu|cat",
		"qemu system",
		"/usr/bin/qemu",
		"../qemu",
	}
	for _, cmd := range bad {
		o, _ := ForArch(arch.AMD64)
		o.QEMUCmd = cmd
		if err := o.Validate(); err == nil {
			t.Errorf("QEMUCmd = %q: expected validation error", cmd)
		}
	}
}

func TestValidate_EmptyMachineType(t *testing.T) {
	o, _ := ForArch(arch.AMD64)
	o.MachineType = ""
	if err := o.Validate(); err == nil {
		t.Error("expected error for empty machine type")
	}
}

func TestValidate_EmptyQEMUCmd(t *testing.T) {
	o, _ := ForArch(arch.S390X)
	o.QEMUCmd = ""
	if err := o.Validate(); err == nil {
		t.Error("expected error for empty QEMU command")
	}
}

func TestValidate_JailerRequiresFirecracker(t *testing.T) {
	o, _ := ForArch(arch.ARM64)
	o.FCCmd = ""
	if err := o.Validate(); err == nil {
		t.Error("expected error: jailer set without firecracker")
	}
}

func TestValidate_ConfidentialComputingIsAMD64Only(t *testing.T) {
	o, _ := ForArch(arch.ARM64)
	o.QEMUTDXCmd = "qemu-system-aarch64-tdx"
	o.TDXCPUFeatures = "pmu=off"
	if err := o.Validate(); err == nil {
		t.Error("expected error: TDX options on arm64")
	}
}

func TestValidate_TDXCommandNeedsFeatures(t *testing.T) {
	o, _ := ForArch(arch.AMD64)
	o.TDXCPUFeatures = ""
	if err := o.Validate(); err == nil {
		t.Error("expected error: TDX command without TDX CPU features")
	}
}

func TestValidate_KernelParamsMetacharacters(t *testing.T) {
	o, _ := ForArch(arch.AMD64)
	o.KernelParams = "quiet; reboot"
	if err := o.Validate(); err == nil {
		t.Error("expected error for kernel params with metacharacters")
	}
}
