// Package emit writes the architecture diagrams and their viewer page to disk.
package emit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/learningmyway/archdiagrams/pkg/diagram"
	"github.com/learningmyway/archdiagrams/pkg/viewer"
)

// OutputDir is the directory, relative to the filesystem root, that receives every artifact.
const OutputDir = "output"

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

var (
	generated = color.New(color.FgGreen)
	heading   = color.New(color.Bold)
)

// Emitter writes the fixed set of artifacts into OutputDir on a billy filesystem.
type Emitter struct {
	fs  billy.Filesystem
	now func() time.Time
	out io.Writer
}

// Option customizes an Emitter during construction.
type Option func(*Emitter)

// WithClock overrides the clock used to stamp the viewer page.
func WithClock(clock func() time.Time) Option {
	return func(e *Emitter) {
		e.now = clock
	}
}

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(e *Emitter) {
		e.out = w
	}
}

// New builds an Emitter writing to fsys.
func New(fsys billy.Filesystem, opts ...Option) *Emitter {
	e := &Emitter{
		fs:  fsys,
		now: time.Now,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result describes a run.
type Result struct {
	Dir         string
	Files       []string // Written files, in order, relative to Dir.

	// GeneratedAt is the clock reading stamped into the viewer footer. Callers
	// use it to tell which run produced the page.
	GeneratedAt time.Time
}

// Run ensures OutputDir exists and writes every diagram followed by the viewer.
// The first failure stops the run; files already written are left in place.
func (e *Emitter) Run(ctx context.Context) (Result, error) {
	res := Result{Dir: OutputDir}

	fmt.Fprintln(e.out, "🎨 Generating Architecture Diagrams...")
	fmt.Fprintln(e.out)

	if err := e.fs.MkdirAll(OutputDir, dirPerm); err != nil {
		return res, fmt.Errorf("create output directory %s: %w", OutputDir, err)
	}

	diagrams := diagram.All()
	for _, d := range diagrams {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := e.write(d.Filename(), []byte(d.Source)); err != nil {
			return res, err
		}
		res.Files = append(res.Files, d.Filename())
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.GeneratedAt = e.now()
	var page bytes.Buffer
	if err := viewer.Render(&page, diagrams, res.GeneratedAt); err != nil {
		return res, err
	}
	if err := e.write(viewer.Filename, page.Bytes()); err != nil {
		return res, err
	}
	res.Files = append(res.Files, viewer.Filename)

	e.summarize(res)
	return res, nil
}

func (e *Emitter) write(name string, data []byte) error {
	path := e.fs.Join(OutputDir, name)
	if err := util.WriteFile(e.fs, path, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	generated.Fprintf(e.out, "  ✅ Generated %s\n", name)
	return nil
}

func (e *Emitter) summarize(res Result) {
	fmt.Fprintln(e.out)
	heading.Fprintln(e.out, "✨ All diagrams generated!")
	fmt.Fprintln(e.out)
	fmt.Fprintf(e.out, "📁 Output directory: %s/\n", res.Dir)
	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, "Generated files:")
	for _, f := range res.Files {
		fmt.Fprintf(e.out, "  - %s\n", f)
	}
}
