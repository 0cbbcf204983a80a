package runtimeconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cocoonstack/hvconf/arch"
	"github.com/cocoonstack/hvconf/options"
)

func writeFragment(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFragments_MissingDir(t *testing.T) {
	frags, err := LoadFragments(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir must not error: %v", err)
	}
	if len(frags) != 0 {
		t.Errorf("expected no fragments, got %d", len(frags))
	}
}

func TestLoadFragments_LexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "50-b.toml", "[hypervisor.qemu]\nkernel_params = 'b'\n")
	writeFragment(t, dir, "10-a.toml", "[hypervisor.qemu]\nkernel_params = 'a'\n")
	writeFragment(t, dir, "ignored.conf", "not toml")

	frags, err := LoadFragments(dir)
	if err != nil {
		t.Fatalf("LoadFragments: %v", err)
	}
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[0].Name != "10-a.toml" || frags[1].Name != "50-b.toml" {
		t.Errorf("order = %s, %s", frags[0].Name, frags[1].Name)
	}
}

func TestLoadFragments_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "bad.toml", "[hypervisor.qemu\n")
	if _, err := LoadFragments(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApply_LastFragmentWins(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "10-a.toml", "[hypervisor.qemu]\nkernel_params = 'quiet'\n")
	writeFragment(t, dir, "50-b.toml", "[hypervisor.qemu]\nkernel_params = 'debug'\n")
	frags, err := LoadFragments(dir)
	if err != nil {
		t.Fatal(err)
	}

	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)
	for _, f := range frags {
		if err := f.Apply(doc); err != nil {
			t.Fatalf("Apply(%s): %v", f.Name, err)
		}
	}
	if doc.Hypervisor.QEMU.KernelParams != "debug" {
		t.Errorf("kernel_params = %q, want debug", doc.Hypervisor.QEMU.KernelParams)
	}
}

func TestApply_HumanMemorySize(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "mem.toml", "[hypervisor.qemu]\ndefault_memory = '4G'\n")
	frags, _ := LoadFragments(dir)

	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)
	if err := frags[0].Apply(doc); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.Hypervisor.QEMU.DefaultMemoryMiB != 4096 {
		t.Errorf("default_memory = %d MiB, want 4096", doc.Hypervisor.QEMU.DefaultMemoryMiB)
	}
}

func TestApply_InvalidMemorySize(t *testing.T) {
	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)
	bad := "lots"
	f := &Fragment{
		Name:       "mem.toml",
		Hypervisor: map[string]HypervisorOverride{"qemu": {DefaultMemory: &bad}},
	}
	if err := f.Apply(doc); err == nil {
		t.Fatal("expected error for unparseable memory size")
	}
}

func TestApply_UnknownHypervisor(t *testing.T) {
	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)
	f := &Fragment{
		Name:       "xen.toml",
		Hypervisor: map[string]HypervisorOverride{"xen": {}},
	}
	if err := f.Apply(doc); err == nil {
		t.Fatal("expected error for unknown hypervisor")
	}
}

func TestApply_UnsupportedOnArch(t *testing.T) {
	o, _ := options.ForArch(arch.S390X)
	doc := NewDocument(o)
	params := "quiet"
	f := &Fragment{
		Name:       "fc.toml",
		Hypervisor: map[string]HypervisorOverride{"firecracker": {KernelParams: &params}},
	}
	if err := f.Apply(doc); err == nil {
		t.Fatal("expected error: firecracker is not supported on s390x")
	}
}

func TestApply_RejectsShellMetacharacterPath(t *testing.T) {
	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)
	bad := "qemu; true"
	f := &Fragment{
		Name:       "p.toml",
		Hypervisor: map[string]HypervisorOverride{"qemu": {Path: &bad}},
	}
	if err := f.Apply(doc); err == nil {
		t.Fatal("expected error for path with shell metacharacters")
	}
}

func TestApply_AbsolutePathAllowed(t *testing.T) {
	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)
	p := "/usr/local/bin/qemu-system-x86_64"
	f := &Fragment{
		Name:       "p.toml",
		Hypervisor: map[string]HypervisorOverride{"qemu": {Path: &p}},
	}
	if err := f.Apply(doc); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.Hypervisor.QEMU.Path != p {
		t.Errorf("path = %q", doc.Hypervisor.QEMU.Path)
	}
}

func TestApply_VCPUBounds(t *testing.T) {
	o, _ := options.ForArch(arch.AMD64)
	doc := NewDocument(o)
	zero := 0
	f := &Fragment{
		Name:       "cpu.toml",
		Hypervisor: map[string]HypervisorOverride{"qemu": {DefaultVCPUs: &zero}},
	}
	if err := f.Apply(doc); err == nil {
		t.Fatal("expected error for default_vcpus = 0")
	}
}
