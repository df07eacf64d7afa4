package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StepStatus is the state of one batch item.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepDone
	StepFailed
)

// BatchStep is one fragment being rasterized.
type BatchStep struct {
	Label  string
	Status StepStatus
	Out    string
	Err    error
}

// RunStepFunc performs step index and returns the written output path.
type RunStepFunc func(index int) (string, error)

type stepDoneMsg struct {
	index int
	out   string
	err   error
}

// BatchModel renders batch progress: steps run one at a time, with a
// spinner on the active one.
type BatchModel struct {
	steps   []BatchStep
	run     RunStepFunc
	spinner spinner.Model
	styles  *StyleSet

	current int
	done    bool
	err     error
}

// NewBatch creates a batch progress model over the given step labels.
func NewBatch(labels []string, run RunStepFunc, styles *StyleSet) BatchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Theme.Accent)

	steps := make([]BatchStep, len(labels))
	for i, label := range labels {
		steps[i] = BatchStep{Label: label}
	}
	if len(steps) > 0 {
		steps[0].Status = StepRunning
	}

	return BatchModel{
		steps:   steps,
		run:     run,
		spinner: sp,
		styles:  styles,
	}
}

// Err returns the first step failure, or nil when all steps succeeded.
func (m BatchModel) Err() error { return m.err }

func (m BatchModel) Init() tea.Cmd {
	if len(m.steps) == 0 {
		return tea.Quit
	}
	return tea.Batch(m.spinner.Tick, m.startStep(0))
}

func (m BatchModel) startStep(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.run(index)
		return stepDoneMsg{index: index, out: out, err: err}
	}
}

func (m BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			m.done = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepDoneMsg:
		step := &m.steps[msg.index]
		step.Out = msg.out
		if msg.err != nil {
			step.Status = StepFailed
			step.Err = msg.err
			m.err = msg.err
			m.done = true
			return m, tea.Quit
		}
		step.Status = StepDone

		m.current = msg.index + 1
		if m.current >= len(m.steps) {
			m.done = true
			return m, tea.Quit
		}
		m.steps[m.current].Status = StepRunning
		return m, m.startStep(m.current)
	}

	return m, nil
}

func (m BatchModel) View() string {
	var out string
	for _, step := range m.steps {
		switch step.Status {
		case StepDone:
			out += fmt.Sprintf("  %s %s %s\n",
				m.styles.SuccessTxt.Render("✓"),
				m.styles.PrimaryTxt.Render(step.Label),
				m.styles.DimTxt.Render("→ "+step.Out))
		case StepFailed:
			out += fmt.Sprintf("  %s %s %s\n",
				m.styles.ErrorTxt.Render("✗"),
				m.styles.PrimaryTxt.Render(step.Label),
				m.styles.ErrorTxt.Render(step.Err.Error()))
		case StepRunning:
			out += fmt.Sprintf("  %s %s\n",
				m.spinner.View(),
				m.styles.AccentTxt.Render(step.Label))
		default:
			out += fmt.Sprintf("    %s\n", m.styles.DimTxt.Render(step.Label))
		}
	}
	return out
}
