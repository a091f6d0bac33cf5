// This file declares the Spec types, sentinel errors, and validation.

package builder

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/redackistan/metro/core"
)

// Sentinel errors for spec loading and validation.
var (
	// ErrInvalidSpec indicates the spec failed structural validation.
	ErrInvalidSpec = errors.New("builder: invalid network spec")

	// ErrUnknownLine indicates a line name outside the closed line set.
	ErrUnknownLine = errors.New("builder: unknown line")
)

// LineSpec is one line's ordered station sequence. Consecutive stations
// become bidirectional connections in the built network.
type LineSpec struct {
	Name     core.Line `yaml:"name" validate:"required"`
	Stations []string  `yaml:"stations" validate:"min=2,dive,required"`
}

// Spec is a declarative description of a metro network.
//
// Memberships may list stations that appear in no line sequence; such
// stations exist in the tables but not in the graph (the city's light
// rail stops are the canonical example).
type Spec struct {
	Lines       []LineSpec             `yaml:"lines" validate:"min=1,dive"`
	Memberships map[string][]core.Line `yaml:"memberships" validate:"required,min=1"`
	Codes       map[string][]string    `yaml:"codes"`
}

// Validate checks the spec structurally: required fields, minimum
// lengths, known line names, and membership coverage of every station
// referenced by a line sequence.
func (s *Spec) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	for _, line := range s.Lines {
		if !core.KnownLine(line.Name) {
			return fmt.Errorf("%w: %q", ErrUnknownLine, line.Name)
		}
		for _, id := range line.Stations {
			if len(s.Memberships[core.NormalizeID(id)]) == 0 {
				return fmt.Errorf("%w: station %q has no line membership", ErrInvalidSpec, id)
			}
		}
	}
	for id, lines := range s.Memberships {
		for _, l := range lines {
			if !core.KnownLine(l) {
				return fmt.Errorf("%w: %q at station %q", ErrUnknownLine, l, id)
			}
		}
	}

	return nil
}

// Build assembles the spec into a core.Network: one AddConnections call
// per line sequence, then the membership and code tables. The spec is
// validated first.
func (s *Spec) Build() (*core.Network, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	n := core.NewNetwork()
	for _, line := range s.Lines {
		n.AddConnections(line.Stations)
	}
	for id, lines := range s.Memberships {
		n.SetLines(id, lines)
	}
	for id, codes := range s.Codes {
		n.SetCodes(id, codes)
	}

	return n, nil
}
