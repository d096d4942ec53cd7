// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/meikai-waitlist/opaque"
	"github.com/danielhkuo/meikai-waitlist/submission"
)

const (
	headline = "Be part of the next web."
	tagline  = "Join the waitlist and get early access to Meikai's first release."

	labelIdle    = "Join Waitlist"
	labelLoading = "Joining..."
)

// Options configures the form.
type Options struct {
	Context  context.Context
	Sender   opaque.Sender
	Endpoint string
	Now      func() time.Time
}

// relaySettledMsg ends a relay call started by Update.
type relaySettledMsg struct {
	err error
}

// Model is the waitlist form. The controller holds the form state; Model
// only maps keys onto it and renders it.
type Model struct {
	ctx  context.Context
	ctrl *submission.Controller

	// task is the in-flight relay call, if any.
	task *submission.Task

	input   textinput.Model
	spinner spinner.Model
	styles  styles
}

type styles struct {
	headline lipgloss.Style
	tagline  lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		headline: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		tagline:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")).
			Padding(0, 2),
		disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("238")).
			Padding(0, 2),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// New builds the form in the Idle state with the input focused.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	var ctrlOpts []submission.Option
	if opts.Now != nil {
		ctrlOpts = append(ctrlOpts, submission.WithClock(opts.Now))
	}

	ti := textinput.New()
	ti.Placeholder = "Enter your email"
	ti.CharLimit = 254
	ti.Width = 40
	ti.Focus()

	return Model{
		ctx:     ctx,
		ctrl:    submission.NewController(opts.Sender, opts.Endpoint, ctrlOpts...),
		input:   ti,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  defaultStyles(),
	}
}

// State returns the current form state.
func (m Model) State() submission.State {
	return m.ctrl.State()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case relaySettledMsg:
		m.task = nil
		m.input.SetValue(m.ctrl.State().Email)
		return m, m.input.Focus()

	case spinner.TickMsg:
		if m.ctrl.State().Status != submission.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.task != nil {
			m.task.Cancel()
		}
		return m, tea.Quit

	case "enter":
		// The control is disabled while a call is in flight.
		if m.ctrl.State().Status == submission.Loading {
			return m, nil
		}
		task := m.ctrl.Submit(m.ctx)

		// Validation failures, and calls that already finished, are settled
		// now. Nothing to wait for.
		select {
		case <-task.Done():
			m.input.SetValue(m.ctrl.State().Email)
			return m, nil
		default:
		}

		m.task = task
		m.input.Blur()
		return m, tea.Batch(waitCmd(task), m.spinner.Tick)
	}

	if m.ctrl.State().Status == submission.Loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetEmail(m.input.Value())
	return m, cmd
}

func (m Model) View() string {
	state := m.ctrl.State()
	var b strings.Builder

	b.WriteString(m.styles.headline.Render(headline))
	b.WriteString("\n")
	b.WriteString(m.styles.tagline.Render(tagline))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if state.Status == submission.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.styles.disabled.Render(labelLoading))
	} else {
		b.WriteString(m.styles.button.Render(labelIdle))
	}
	b.WriteString("\n")

	switch state.Status {
	case submission.Success:
		b.WriteString("\n")
		b.WriteString(m.styles.success.Render(state.Message))
		b.WriteString("\n")
	case submission.Error:
		b.WriteString("\n")
		b.WriteString(m.styles.failure.Render(state.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("enter submit • esc quit"))
	b.WriteString("\n")

	return b.String()
}

// waitCmd blocks until task settles. The controller has already applied
// the outcome by then.
func waitCmd(task *submission.Task) tea.Cmd {
	return func() tea.Msg {
		return relaySettledMsg{err: task.Wait()}
	}
}

// Run shows the form until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Sender == nil {
		return fmt.Errorf("tui requires a sender")
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run form: %w", err)
	}
	return nil
}
