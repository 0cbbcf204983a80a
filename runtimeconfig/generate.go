package runtimeconfig

import (
	"context"
	"fmt"
	"os"
	"time"

	godigest "github.com/opencontainers/go-digest"
	"github.com/projecteru2/core/log"
	"golang.org/x/sync/errgroup"

	"github.com/cocoonstack/hvconf/arch"
	"github.com/cocoonstack/hvconf/config"
	"github.com/cocoonstack/hvconf/lock"
	"github.com/cocoonstack/hvconf/lock/flock"
	"github.com/cocoonstack/hvconf/storage"
	storejson "github.com/cocoonstack/hvconf/storage/json"
	"github.com/cocoonstack/hvconf/utils"
)

const configPerm = 0o644

// Result reports the outcome of generating one architecture's file.
type Result struct {
	Arch    arch.Architecture
	Path    string
	Digest  string
	Changed bool
}

// Generator renders and installs runtime configuration files. Installs
// run under a cross-process flock so concurrent invocations cannot
// interleave writes.
type Generator struct {
	conf   *config.Config
	store  storage.Store[Manifest]
	locker lock.Locker
}

// NewGenerator creates a Generator.
func NewGenerator(conf *config.Config) (*Generator, error) {
	if conf == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if err := conf.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("ensure dirs: %w", err)
	}
	locker := flock.New(conf.GenerateLock())
	store := storejson.New[Manifest](conf.ManifestFile(), locker)
	return &Generator{conf: conf, store: store, locker: locker}, nil
}

// Generate renders and installs the configuration for one architecture.
func (g *Generator) Generate(ctx context.Context, a arch.Architecture) (*Result, error) {
	results, err := g.GenerateAll(ctx, []arch.Architecture{a})
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// GenerateAll renders every requested architecture concurrently, then
// installs all files and manifest entries under a single lock. Results
// come back in the order of arches.
func (g *Generator) GenerateAll(ctx context.Context, arches []arch.Architecture) ([]*Result, error) {
	if len(arches) == 0 {
		return nil, fmt.Errorf("no architectures requested")
	}

	// Fragments are shared input: read once, apply everywhere.
	frags, err := LoadFragments(g.conf.FragmentDir)
	if err != nil {
		return nil, err
	}

	// Render phase is pure, safe to parallelize.
	rendered := make([]*Rendered, len(arches))
	var eg errgroup.Group
	for i, a := range arches {
		eg.Go(func() error {
			r, err := Render(a, frags)
			if err != nil {
				return fmt.Errorf("render %s: %w", a, err)
			}
			rendered[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Install phase: one locked manifest transaction for all files.
	logger := log.WithFunc("runtimeconfig.generate")
	results := make([]*Result, len(arches))
	err = g.store.With(ctx, func(m *Manifest) error {
		for i, r := range rendered {
			path := g.conf.ConfigPath(r.Arch)
			res := &Result{
				Arch:   r.Arch,
				Path:   path,
				Digest: r.Digest.String(),
			}
			results[i] = res

			// The manifest alone is not trusted: the installed file
			// may have been deleted or edited since the last run, so
			// the skip also requires the on-disk content to match.
			prev := m.Generations[r.Arch.String()]
			if prev != nil && prev.Digest == res.Digest && fileMatches(path, r.Digest) {
				logger.Debugf(ctx, "%s unchanged (%s), skipping write", r.Arch, r.Digest.Encoded()[:12])
				continue
			}

			if err := utils.WriteFileAtomic(path, r.Data, configPerm); err != nil {
				return fmt.Errorf("install %s: %w", path, err)
			}
			m.Generations[r.Arch.String()] = &Entry{
				ID:          utils.UUIDv5(r.Arch.String() + ":" + res.Digest),
				Arch:        r.Arch,
				Digest:      res.Digest,
				Path:        path,
				Fragments:   r.Fragments,
				GeneratedAt: time.Now().UTC(),
			}
			res.Changed = true
			logger.Infof(ctx, "generated %s: %s", path, r.Digest.Encoded()[:12])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// fileMatches reports whether the file at path exists with exactly the
// expected content.
func fileMatches(path string, digest godigest.Digest) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return godigest.FromBytes(data) == digest
}

// Manifest returns a copy of the current generation manifest.
func (g *Generator) Manifest(ctx context.Context) (*Manifest, error) {
	out := &Manifest{}
	out.Init()
	err := g.store.View(ctx, func(m *Manifest) error {
		for k, e := range m.Generations {
			if e == nil {
				continue
			}
			cp := *e
			out.Generations[k] = &cp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
