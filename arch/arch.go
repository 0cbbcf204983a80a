package arch

import (
	"fmt"
	"runtime"
	"strings"
)

// Architecture is a guest/host CPU architecture in GOARCH spelling.
type Architecture string

const (
	AMD64   Architecture = "amd64"
	ARM64   Architecture = "arm64"
	PPC64LE Architecture = "ppc64le"
	S390X   Architecture = "s390x"
)

// Supported returns the architectures hvconf carries option tables for.
func Supported() []Architecture {
	return []Architecture{AMD64, ARM64, PPC64LE, S390X}
}

// IsValid reports whether a is a supported architecture value.
func (a Architecture) IsValid() bool {
	switch a {
	case AMD64, ARM64, PPC64LE, S390X:
		return true
	default:
		return false
	}
}

// String returns the architecture as string.
func (a Architecture) String() string {
	return string(a)
}

// Host returns the architecture of the running process.
func Host() Architecture {
	return Architecture(runtime.GOARCH)
}

// Parse returns the canonical Architecture for the provided string,
// accepting common aliases (x86_64, aarch64, ppc64el, ...).
func Parse(value string) (Architecture, error) {
	if a := Normalize(value); a != "" {
		return a, nil
	}
	return "", fmt.Errorf("unsupported architecture %q (supported: %s)", value, supportedList())
}

// Normalize maps a possibly ambiguous string into a canonical Architecture.
// Returns "" when the string cannot be normalized.
func Normalize(value string) Architecture {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(AMD64), "x86_64", "x86-64":
		return AMD64
	case string(ARM64), "aarch64":
		return ARM64
	case string(PPC64LE), "ppc64el", "powerpc64le":
		return PPC64LE
	case string(S390X):
		return S390X
	default:
		return ""
	}
}

func supportedList() string {
	all := Supported()
	out := make([]string, 0, len(all))
	for _, a := range all {
		out = append(out, a.String())
	}
	return strings.Join(out, ", ")
}
