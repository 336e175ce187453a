// SPDX-License-Identifier: MIT

// Package config loads YAML run files: solver settings plus a structured
// node list. A handful of scenarios ship embedded in the binary.
package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rewardroute/core"
	"github.com/katalvlaran/rewardroute/solver"
)

//go:embed scenarios/*.yaml
var scenarioFS embed.FS

// ErrNoNodes indicates a run file without any node.
var ErrNoNodes = errors.New("config: no nodes defined")

// Node is one graph node as written in a run file.
type Node struct {
	Name   string   `yaml:"name"`
	Reward int      `yaml:"reward"`
	Links  []string `yaml:"links"`
}

// File is a parsed run file.
type File struct {
	solver.Config `yaml:",inline"`

	// Symmetric rejects one-way links when true.
	Symmetric bool `yaml:"symmetric,omitempty"`

	Nodes []Node `yaml:"nodes"`
}

// Parse decodes a run file. Unknown keys are rejected; missing solver keys
// keep solver.DefaultConfig values.
func Parse(data []byte) (*File, error) {
	f := &File{Config: solver.DefaultConfig()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoNodes
		}
		return nil, fmt.Errorf("parse run file: %w", err)
	}
	if len(f.Nodes) == 0 {
		return nil, ErrNoNodes
	}
	if err := f.Config.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Load reads and parses a run file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run file: %w", err)
	}

	return Parse(data)
}

// LoadScenario parses an embedded scenario by name.
func LoadScenario(name string) (*File, error) {
	data, err := scenarioFS.ReadFile("scenarios/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario %q not found (available: %s): %w",
			name, strings.Join(ListScenarios(), ", "), err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}

	return f, nil
}

// ListScenarios returns the names of all embedded scenarios, sorted.
func ListScenarios() []string {
	entries, _ := scenarioFS.ReadDir("scenarios")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)

	return names
}

// Graph builds the core.Graph described by the node list.
func (f *File) Graph() (*core.Graph, error) {
	b := core.NewBuilder()
	for _, n := range f.Nodes {
		b.AddNode(n.Name, n.Reward, n.Links...)
	}
	var opts []core.GraphOption
	if f.Symmetric {
		opts = append(opts, core.WithSymmetricEdges())
	}

	return b.Build(opts...)
}
