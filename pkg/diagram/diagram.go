// Package diagram holds the PlantUML sources describing the Jenkins VPN infrastructure.
package diagram

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Extension is the file extension of every emitted diagram.
const Extension = ".puml"

//go:embed puml/*.puml
var sources embed.FS

// Diagram is a single PlantUML document and the text used to present it.
type Diagram struct {
	Name    string // File stem, also the @startuml identifier.
	Title   string
	Summary string
	Source  string
}

// Filename returns the name the diagram is written under.
func (d Diagram) Filename() string { return d.Name + Extension }

//go:embed diagrams.yml
var catalogData []byte

var catalog *struct {
	Diagrams []struct {
		Name    string `yaml:"name"`
		Title   string `yaml:"title"`
		Summary string `yaml:"summary"`
	} `yaml:"diagrams"`
}

var all = load()

func load() []Diagram {
	if err := yaml.Unmarshal(catalogData, &catalog); err != nil {
		panic(fmt.Sprintf("diagram: parse diagrams.yml: %v", err))
	}
	diagrams := make([]Diagram, 0, len(catalog.Diagrams))
	for _, e := range catalog.Diagrams {
		b, err := sources.ReadFile("puml/" + e.Name + Extension)
		if err != nil {
			// Only reachable if the embed pattern and diagrams.yml disagree.
			panic(fmt.Sprintf("diagram: missing embedded source for %s: %v", e.Name, err))
		}
		diagrams = append(diagrams, Diagram{
			Name:    e.Name,
			Title:   e.Title,
			Summary: e.Summary,
			Source:  string(b),
		})
	}
	return diagrams
}

// All returns the diagrams in emission order. The slice is a copy.
func All() []Diagram {
	out := make([]Diagram, len(all))
	copy(out, all)
	return out
}
