package runtimeconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	units "github.com/docker/go-units"
	toml "github.com/pelletier/go-toml/v2"
)

// pathPattern is the fragment-side relaxation of the bare-name rule:
// absolute paths to binaries are allowed, shell metacharacters and
// whitespace still are not.
var pathPattern = regexp.MustCompile(`^[A-Za-z0-9._+/-]+$`)

// Fragment is a drop-in override file. Only the fields a fragment sets
// are applied; everything else keeps its default.
//
//	[hypervisor.qemu]
//	kernel_params = "quiet"
//	default_memory = "4G"
type Fragment struct {
	Name       string                        `toml:"-"`
	Hypervisor map[string]HypervisorOverride `toml:"hypervisor"`
}

// HypervisorOverride mirrors HypervisorSection with optional fields.
// DefaultMemory accepts human-readable sizes ("4G", "512M") and is
// normalized to MiB.
type HypervisorOverride struct {
	Path                *string `toml:"path"`
	JailerPath          *string `toml:"jailer_path"`
	CtlPath             *string `toml:"ctl_path"`
	MachineType         *string `toml:"machine_type"`
	MachineAccelerators *string `toml:"machine_accelerators"`
	CPUFeatures         *string `toml:"cpu_features"`
	KernelParams        *string `toml:"kernel_params"`
	DefaultVCPUs        *int    `toml:"default_vcpus"`
	DefaultMemory       *string `toml:"default_memory"`
	StaticResourceMgmt  *bool   `toml:"static_resource_mgmt"`
}

// LoadFragments reads every *.toml file in dir, sorted by filename.
// A missing dir yields no fragments.
func LoadFragments(dir string) ([]*Fragment, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read fragment dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".toml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	frags := make([]*Fragment, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fragment %s: %w", path, err)
		}
		frag := &Fragment{Name: name}
		if err := toml.Unmarshal(data, frag); err != nil {
			return nil, fmt.Errorf("parse fragment %s: %w", path, err)
		}
		frags = append(frags, frag)
	}
	return frags, nil
}

// Apply merges the fragment into doc. Overriding a hypervisor the
// architecture does not support is an error: a silently dropped override
// is worse than a loud one.
func (f *Fragment) Apply(doc *Document) error {
	for name, ov := range f.Hypervisor {
		slot := doc.Hypervisor.section(name)
		if slot == nil {
			return fmt.Errorf("fragment %s: unknown hypervisor %q", f.Name, name)
		}
		section := *slot
		if section == nil {
			return fmt.Errorf("fragment %s: hypervisor %q not supported on %s", f.Name, name, doc.Runtime.Arch)
		}
		if err := ov.apply(section); err != nil {
			return fmt.Errorf("fragment %s: hypervisor %q: %w", f.Name, name, err)
		}
	}
	return nil
}

func (ov HypervisorOverride) apply(s *HypervisorSection) error {
	setPath := func(dst *string, field string, v *string) error {
		if v == nil {
			return nil
		}
		if *v == "" || !pathPattern.MatchString(*v) {
			return fmt.Errorf("invalid %s %q", field, *v)
		}
		*dst = *v
		return nil
	}

	if err := setPath(&s.Path, "path", ov.Path); err != nil {
		return err
	}
	if err := setPath(&s.JailerPath, "jailer_path", ov.JailerPath); err != nil {
		return err
	}
	if err := setPath(&s.CtlPath, "ctl_path", ov.CtlPath); err != nil {
		return err
	}
	if ov.MachineType != nil {
		if *ov.MachineType == "" {
			return fmt.Errorf("machine_type must not be empty")
		}
		s.MachineType = *ov.MachineType
	}
	if ov.MachineAccelerators != nil {
		s.MachineAccelerators = *ov.MachineAccelerators
	}
	if ov.CPUFeatures != nil {
		s.CPUFeatures = *ov.CPUFeatures
	}
	if ov.KernelParams != nil {
		if strings.ContainsAny(*ov.KernelParams, ";&|$`") {
			return fmt.Errorf("kernel_params %q contain shell metacharacters", *ov.KernelParams)
		}
		s.KernelParams = *ov.KernelParams
	}
	if ov.DefaultVCPUs != nil {
		if *ov.DefaultVCPUs < 1 {
			return fmt.Errorf("default_vcpus must be >= 1, got %d", *ov.DefaultVCPUs)
		}
		s.DefaultVCPUs = *ov.DefaultVCPUs
	}
	if ov.DefaultMemory != nil {
		bytes, err := units.RAMInBytes(*ov.DefaultMemory)
		if err != nil {
			return fmt.Errorf("invalid default_memory %q: %w", *ov.DefaultMemory, err)
		}
		mib := bytes >> 20
		if mib < 1 {
			return fmt.Errorf("default_memory %q is below 1 MiB", *ov.DefaultMemory)
		}
		s.DefaultMemoryMiB = mib
	}
	if ov.StaticResourceMgmt != nil {
		v := *ov.StaticResourceMgmt
		s.StaticResourceMgmt = &v
	}
	return nil
}
