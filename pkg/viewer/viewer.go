// Package viewer renders the static HTML page that lists the emitted diagrams.
//
// The page does not render PlantUML itself. It names each .puml file and points
// the reader at tools that can.
package viewer

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/learningmyway/archdiagrams/pkg/diagram"
)

const (
	// Filename is the name the viewer is written under.
	Filename = "viewer.html"

	// TimestampLayout formats the generation time as YYYY-MM-DD HH:MM:SS.
	TimestampLayout = "2006-01-02 15:04:05"
)

//go:embed viewer.html.tmpl
var pageSource string

var page = template.Must(template.New(Filename).Parse(pageSource))

type pageData struct {
	Diagrams    []diagram.Diagram
	GeneratedAt string
}

// Render writes the viewer page for diagrams, stamped with generatedAt in local time.
func Render(w io.Writer, diagrams []diagram.Diagram, generatedAt time.Time) error {
	data := pageData{
		Diagrams:    diagrams,
		GeneratedAt: FormatTimestamp(generatedAt),
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("render %s: %w", Filename, err)
	}
	return nil
}

// FormatTimestamp formats t the way the viewer footer shows it.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
