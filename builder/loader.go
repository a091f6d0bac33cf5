// This file implements YAML loading of network specs.

package builder

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/redackistan/metro/core"
)

// Load reads a YAML network spec from r and validates it.
func Load(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("builder: read spec: %w", err)
	}

	var spec Spec
	if err = yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	normalize(&spec)
	if err = spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// LoadFile reads and validates a YAML network spec from disk.
func LoadFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("builder: open spec: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// normalize canonicalizes every station identifier in the spec.
func normalize(s *Spec) {
	for li := range s.Lines {
		for si, id := range s.Lines[li].Stations {
			s.Lines[li].Stations[si] = core.NormalizeID(id)
		}
	}
	s.Memberships = normalizeKeys(s.Memberships)
	s.Codes = normalizeKeys(s.Codes)
}

func normalizeKeys[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for id, v := range m {
		out[core.NormalizeID(id)] = v
	}

	return out
}
