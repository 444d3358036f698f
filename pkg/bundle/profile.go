package bundle

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/plistkit/pkg/types"
)

// A profile lists the targets of a bundle layout other than the default
// iOS backup one:
//
//	targets:
//	  - file: Info.plist
//	    names: {product: "Product Version", build: "Build Version"}
//	    aliases:
//	      - {product: ProductVersion, build: BuildVersion}
//	  - label: Manifest.plist/Lockdown
//	    file: Manifest.plist
//	    key_path: [Lockdown]
//	    names: {product: ProductVersion, build: BuildVersion}
//	    read_order:
//	      - {product: "Product Version", build: "Build Version"}
//	      - {product: ProductVersion, build: BuildVersion}
type profileFile struct {
	Targets []profileTarget `yaml:"targets"`
}

type profileTarget struct {
	Label     string         `yaml:"label"`
	File      string         `yaml:"file"`
	KeyPath   []string       `yaml:"key_path"`
	Names     profileNames   `yaml:"names"`
	Aliases   []profileNames `yaml:"aliases"`
	ReadOrder []profileNames `yaml:"read_order"`
}

type profileNames struct {
	Product string `yaml:"product"`
	Build   string `yaml:"build"`
}

func (n profileNames) keyNames() types.KeyNames {
	return types.KeyNames{Product: n.Product, Build: n.Build}
}

// LoadProfile reads targets from a YAML profile.
func LoadProfile(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.IOError("read profile", path, err)
	}
	targets, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return targets, nil
}

// ParseProfile decodes a YAML profile. Unknown fields are rejected.
func ParseProfile(data []byte) ([]Target, error) {
	var pf profileFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(pf.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined")
	}

	out := make([]Target, 0, len(pf.Targets))
	for i, pt := range pf.Targets {
		if pt.File == "" {
			return nil, fmt.Errorf("target %d: file is required", i)
		}
		if pt.Names.Product == "" || pt.Names.Build == "" {
			return nil, fmt.Errorf("target %d (%s): names.product and names.build are required", i, pt.File)
		}
		for j, seg := range pt.KeyPath {
			if seg == "" {
				return nil, fmt.Errorf("target %d (%s): key_path segment %d is empty", i, pt.File, j)
			}
		}
		t := Target{
			Label:   pt.Label,
			File:    pt.File,
			KeyPath: pt.KeyPath,
			Names:   pt.Names.keyNames(),
		}
		for _, a := range pt.Aliases {
			t.Aliases = append(t.Aliases, a.keyNames())
		}
		for _, r := range pt.ReadOrder {
			t.ReadOrder = append(t.ReadOrder, r.keyNames())
		}
		out = append(out, t)
	}
	return out, nil
}
