package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/punch/internal/application"
	"github.com/bnema/punch/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const weekLabelLayout = "Jan 2"

type fetchProgressMsg application.Progress

type fetchDoneMsg struct {
	err error
}

// fetchSpinnerModel tracks the timesheet fetch stage by stage.
type fetchSpinnerModel struct {
	spinner  spinner.Model
	progress application.Progress
	fetch    tea.Cmd
	err      error
	done     bool
}

func newFetchSpinnerModel(clientID domain.ClientID, fetch tea.Cmd) fetchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	progress := application.Progress{Stage: application.StageProjects, ClientID: clientID}

	return fetchSpinnerModel{
		spinner:  s,
		progress: progress,
		fetch:    fetch,
	}
}

func (m fetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m fetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchProgressMsg:
		m.progress = application.Progress(msg)
		return m, nil
	case fetchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), progressLabel(m.progress))
}

func progressLabel(progress application.Progress) string {
	switch progress.Stage {
	case application.StageEntries:
		return fmt.Sprintf("Fetching time entries of %s for the week of %s...",
			count(progress.Projects, "project", "projects"), progress.Window.Start.Format(weekLabelLayout))
	case application.StageMerge:
		return fmt.Sprintf("Merging %s into sessions...", count(progress.Entries, "time entry", "time entries"))
	default:
		return fmt.Sprintf("Fetching projects of client %d...", progress.ClientID)
	}
}

func count(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// runFetchSpinner shows the fetch progress on output while fetch runs.
func runFetchSpinner(ctx context.Context, output io.Writer, clientID domain.ClientID, fetch func(context.Context, func(application.Progress)) error) error {
	var p *tea.Program
	fetchCmd := func() tea.Msg {
		return fetchDoneMsg{err: fetch(ctx, func(progress application.Progress) {
			p.Send(fetchProgressMsg(progress))
		})}
	}

	p = tea.NewProgram(
		newFetchSpinnerModel(clientID, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(fetchSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
