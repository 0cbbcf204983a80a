package runtimeconfig

import (
	"bytes"
	"fmt"

	godigest "github.com/opencontainers/go-digest"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/cocoonstack/hvconf/arch"
)

// header is static on purpose: no timestamps, no hostnames. Regenerating
// from unchanged inputs must be byte-identical.
const header = "# WARNING: this file is generated by hvconf. Edits will be overwritten.\n# Place overrides in the fragment directory instead.\n\n"

// Rendered is the serialized configuration for one architecture.
type Rendered struct {
	Arch      arch.Architecture
	Data      []byte
	Digest    godigest.Digest
	Fragments []string
}

// Render builds the document for a, applies fragments in order, and
// serializes it. Serialization follows struct field order, so equal
// inputs always produce equal bytes.
func Render(a arch.Architecture, frags []*Fragment) (*Rendered, error) {
	doc, err := NewDocumentForArch(a)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(frags))
	for _, f := range frags {
		if err := f.Apply(doc); err != nil {
			return nil, err
		}
		names = append(names, f.Name)
	}

	body, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal configuration for %s: %w", a, err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(body)
	data := buf.Bytes()

	return &Rendered{
		Arch:      a,
		Data:      data,
		Digest:    godigest.FromBytes(data),
		Fragments: names,
	}, nil
}
