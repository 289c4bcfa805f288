package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Phase is a stage of a batch run
type Phase string

const (
	PhaseReading    Phase = "Reading"
	PhaseParsing    Phase = "Parsing"
	PhaseGenerating Phase = "Generating"
)

// BatchPhases is the phase order of a batch run
var BatchPhases = []Phase{PhaseReading, PhaseParsing, PhaseGenerating}

// unit is what a phase counts, shown next to the rate
func (p Phase) unit() string {
	switch p {
	case PhaseReading:
		return "files"
	case PhaseParsing:
		return "rows"
	case PhaseGenerating:
		return "outputs"
	}
	return "it"
}

// Step is the bar of one phase
type Step struct {
	bar   *progressbar.ProgressBar
	phase Phase
}

func newStep(phase Phase, total int, w io.Writer) *Step {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
		progressbar.OptionSetItsString(phase.unit()),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
	return &Step{bar: bar, phase: phase}
}

// Phase returns the phase this step tracks
func (s *Step) Phase() Phase { return s.phase }

func (s *Step) Add(n int) error { return s.bar.Add(n) }

func (s *Step) Increment() error { return s.bar.Add(1) }

// Set jumps to n, e.g. after a single call processed every row
func (s *Step) Set(n int) error { return s.bar.Set(n) }

// SetTotal changes the expected count once it is known
func (s *Step) SetTotal(total int) { s.bar.ChangeMax(total) }

// Describe shows what the phase is working on, e.g. the exporter name
func (s *Step) Describe(what string) {
	s.bar.Describe(fmt.Sprintf("[%s] %s", s.phase, what))
}

func (s *Step) finish() { _ = s.bar.Finish() }

// Pipeline walks a batch run through its phases, one bar at a time
type Pipeline struct {
	phases []Phase
	next   int
	active *Step
	out    io.Writer
	quiet  bool
}

// NewPipeline tracks phases on stdout
func NewPipeline(phases []Phase) *Pipeline {
	return NewPipelineWithOutput(phases, os.Stdout)
}

// NewPipelineWithOutput tracks phases on out
func NewPipelineWithOutput(phases []Phase, out io.Writer) *Pipeline {
	return &Pipeline{phases: phases, out: out}
}

// Disable keeps the pipeline working but silent; tests and the server use it
func (p *Pipeline) Disable() {
	p.quiet = true
}

// NextPhase closes the active bar and opens one for the next phase.
// It returns nil once every phase has been started.
func (p *Pipeline) NextPhase(total int) *Step {
	p.Finish()
	if p.next >= len(p.phases) {
		return nil
	}

	w := p.out
	if p.quiet {
		w = io.Discard
	}
	p.active = newStep(p.phases[p.next], total, w)
	p.next++
	return p.active
}

// Current returns the active phase, or "" before the first phase and after Finish
func (p *Pipeline) Current() Phase {
	if p.active == nil {
		return ""
	}
	return p.active.phase
}

// Finish closes the active bar
func (p *Pipeline) Finish() {
	if p.active != nil {
		p.active.finish()
		p.active = nil
	}
}

// PrintSummary prints a closing line unless the pipeline is silent
func (p *Pipeline) PrintSummary(message string) {
	if !p.quiet {
		fmt.Fprintln(p.out, message)
	}
}
