package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// catalogDump is the YAML shape printed by --show-catalog: everything the
// rewriter fixed at startup, for inspecting why a token did or did not match.
type catalogDump struct {
	Hostname string   `yaml:"hostname"`
	Home     string   `yaml:"home"`
	Cwd      string   `yaml:"cwd"`
	Pattern  string   `yaml:"pattern"`
	Prefixes []string `yaml:"prefixes"`
}

func writeCatalogDump(w io.Writer, r *Rewriter, c *Catalog) error {
	dump := catalogDump{
		Hostname: r.hostname,
		Home:     r.home,
		Cwd:      r.cwd,
		Pattern:  r.re.String(),
		Prefixes: c.Prefixes,
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}
