package arch

import "testing"

func TestParse_CanonicalValues(t *testing.T) {
	for _, a := range Supported() {
		got, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a, err)
		}
		if got != a {
			t.Errorf("Parse(%q) = %q", a, got)
		}
	}
}

func TestParse_Aliases(t *testing.T) {
	cases := map[string]Architecture{
		"x86_64":      AMD64,
		"X86-64":      AMD64,
		"aarch64":     ARM64,
		"  arm64 ":    ARM64,
		"ppc64el":     PPC64LE,
		"powerpc64le": PPC64LE,
		"S390X":       S390X,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParse_Unsupported(t *testing.T) {
	for _, in := range []string{"", "riscv64", "mips", "i686"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !AMD64.IsValid() {
		t.Error("amd64 should be valid")
	}
	if Architecture("riscv64").IsValid() {
		t.Error("riscv64 should not be valid")
	}
}
