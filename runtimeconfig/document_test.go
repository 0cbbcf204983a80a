package runtimeconfig

import (
	"testing"

	"github.com/cocoonstack/hvconf/arch"
	"github.com/cocoonstack/hvconf/options"
)

func TestNewDocument_CompanionBinaries(t *testing.T) {
	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)

	if doc.Hypervisor.Firecracker.JailerPath != "jailer" {
		t.Errorf("jailer_path = %q", doc.Hypervisor.Firecracker.JailerPath)
	}
	if doc.Hypervisor.ACRN.CtlPath != "acrnctl" {
		t.Errorf("ctl_path = %q", doc.Hypervisor.ACRN.CtlPath)
	}
}

func TestNewDocument_ConfidentialGuestFlags(t *testing.T) {
	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)

	for name, s := range map[string]*HypervisorSection{
		"qemu-tdx": doc.Hypervisor.QEMUTDX,
		"qemu-snp": doc.Hypervisor.QEMUSNP,
		"clh-snp":  doc.Hypervisor.CLHSNP,
	} {
		if s == nil {
			t.Errorf("%s section missing", name)
			continue
		}
		if !s.ConfidentialGuest {
			t.Errorf("%s must set confidential_guest", name)
		}
	}
	if doc.Hypervisor.QEMU.ConfidentialGuest {
		t.Error("plain qemu must not set confidential_guest")
	}
}

func TestNewDocument_TDXUsesTDXCPUFeatures(t *testing.T) {
	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)
	if doc.Hypervisor.QEMUTDX.CPUFeatures != "-vmx-rdseed-exit,pmu=off" {
		t.Errorf("qemu-tdx cpu_features = %q", doc.Hypervisor.QEMUTDX.CPUFeatures)
	}
	if doc.Hypervisor.QEMUSNP.CPUFeatures != "pmu=off" {
		t.Errorf("qemu-snp cpu_features = %q", doc.Hypervisor.QEMUSNP.CPUFeatures)
	}
}

func TestNewDocument_SizingDefaults(t *testing.T) {
	o, _ := options.ForArch(arch.ARM64)
	doc := NewDocument(o)
	if doc.Hypervisor.QEMU.DefaultVCPUs != DefaultVCPUs {
		t.Errorf("default_vcpus = %d", doc.Hypervisor.QEMU.DefaultVCPUs)
	}
	if doc.Hypervisor.QEMU.DefaultMemoryMiB != DefaultMemoryMiB {
		t.Errorf("default_memory = %d", doc.Hypervisor.QEMU.DefaultMemoryMiB)
	}
}

func TestNewDocument_PPC64LEAccelerators(t *testing.T) {
	o, _ := options.ForArch(arch.PPC64LE)
	doc := NewDocument(o)
	if doc.Hypervisor.QEMU.MachineAccelerators == "" {
		t.Error("ppc64le qemu section must carry machine accelerators")
	}
	if doc.Hypervisor.QEMU.KernelParams != "console=hvc0 mitigations=off" {
		t.Errorf("kernel_params = %q", doc.Hypervisor.QEMU.KernelParams)
	}
}
