// Package sigfile loads root-signature description files. A file is TOML
// with [[table]] blocks holding nested [[table.clause]] entries; loading
// flattens each table into its clause elements immediately followed by the
// table element, so the emitted stream always satisfies the metadata
// builder's ownership contract.
package sigfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"rootsig/internal/rootsig"
)

// Signature is one loaded root signature: a name and its ordered
// root-element stream.
type Signature struct {
	Name     string
	Elements []rootsig.RootElement
}

type clauseSchema struct {
	Kind     string   `toml:"kind"`
	Register int64    `toml:"register"`
	Space    int64    `toml:"space"`
	Count    *int64   `toml:"count"`
	Offset   *int64   `toml:"offset"`
	Flags    []string `toml:"flags"`
}

type tableSchema struct {
	Visibility string         `toml:"visibility"`
	Clauses    []clauseSchema `toml:"clause"`
}

type fileSchema struct {
	Name   string        `toml:"name"`
	Tables []tableSchema `toml:"table"`
}

// Load reads and decodes a signature file. The signature name defaults to
// the file's base name without extension.
func Load(path string) (*Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sig, err := Parse(data, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sig, nil
}

// Parse decodes a signature description from raw TOML.
func Parse(data []byte, name string) (*Signature, error) {
	var cfg fileSchema
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if cfg.Name != "" {
		name = cfg.Name
	}

	sig := &Signature{Name: name}
	for ti, table := range cfg.Tables {
		visibility, err := parseVisibility(table.Visibility)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", ti, err)
		}
		for ci, clause := range table.Clauses {
			element, err := buildClause(clause)
			if err != nil {
				return nil, fmt.Errorf("table %d clause %d: %w", ti, ci, err)
			}
			sig.Elements = append(sig.Elements, element)
		}
		numClauses, err := safecast.Conv[uint32](len(table.Clauses))
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", ti, err)
		}
		sig.Elements = append(sig.Elements, rootsig.DescriptorTable{
			NumClauses: numClauses,
			Visibility: visibility,
		})
	}
	return sig, nil
}

func buildClause(c clauseSchema) (rootsig.DescriptorTableClause, error) {
	var clause rootsig.DescriptorTableClause

	kind, err := parseClauseKind(c.Kind)
	if err != nil {
		return clause, err
	}
	register, err := safecast.Conv[uint32](c.Register)
	if err != nil {
		return clause, fmt.Errorf("register: %w", err)
	}
	space, err := safecast.Conv[uint32](c.Space)
	if err != nil {
		return clause, fmt.Errorf("space: %w", err)
	}

	count := uint32(1)
	if c.Count != nil {
		count, err = safecast.Conv[uint32](*c.Count)
		if err != nil {
			return clause, fmt.Errorf("count: %w", err)
		}
	}
	offset := rootsig.OffsetAppend
	if c.Offset != nil {
		offset, err = safecast.Conv[uint32](*c.Offset)
		if err != nil {
			return clause, fmt.Errorf("offset: %w", err)
		}
	}
	flags, err := parseFlags(c.Flags)
	if err != nil {
		return clause, err
	}

	clause = rootsig.DescriptorTableClause{
		Kind:           kind,
		Reg:            rootsig.Register{Kind: kind.RegisterKind(), Number: register},
		NumDescriptors: count,
		Space:          space,
		Offset:         offset,
		Flags:          flags,
	}
	return clause, nil
}

func parseClauseKind(s string) (rootsig.ClauseKind, error) {
	switch s {
	case "CBV":
		return rootsig.ClauseCBuffer, nil
	case "SRV":
		return rootsig.ClauseSRV, nil
	case "UAV":
		return rootsig.ClauseUAV, nil
	case "Sampler":
		return rootsig.ClauseSampler, nil
	case "":
		return 0, fmt.Errorf("missing kind")
	}
	return 0, fmt.Errorf("unknown kind %q (want CBV, SRV, UAV or Sampler)", s)
}

func parseVisibility(s string) (rootsig.ShaderVisibility, error) {
	switch s {
	case "", "All":
		return rootsig.VisibilityAll, nil
	case "Vertex":
		return rootsig.VisibilityVertex, nil
	case "Hull":
		return rootsig.VisibilityHull, nil
	case "Domain":
		return rootsig.VisibilityDomain, nil
	case "Geometry":
		return rootsig.VisibilityGeometry, nil
	case "Pixel":
		return rootsig.VisibilityPixel, nil
	case "Amplification":
		return rootsig.VisibilityAmplification, nil
	case "Mesh":
		return rootsig.VisibilityMesh, nil
	}
	return 0, fmt.Errorf("unknown visibility %q", s)
}

func parseFlags(names []string) (rootsig.DescriptorRangeFlags, error) {
	var flags rootsig.DescriptorRangeFlags
	for _, name := range names {
		switch name {
		case "DescriptorsVolatile":
			flags |= rootsig.DescriptorsVolatile
		case "DataVolatile":
			flags |= rootsig.DataVolatile
		case "DataStaticWhileSetAtExecute":
			flags |= rootsig.DataStaticWhileSetAtExecute
		case "DataStatic":
			flags |= rootsig.DataStatic
		case "DescriptorsStaticKeepingBufferBoundsChecks":
			flags |= rootsig.DescriptorsStaticKeepingBufferBoundsChecks
		default:
			return 0, fmt.Errorf("unknown flag %q", name)
		}
	}
	return flags, nil
}
