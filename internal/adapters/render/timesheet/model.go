package timesheet

import (
	"errors"
	"io"

	"github.com/bnema/punch/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	sheet  application.Timesheet
	opts   RenderOptions
	styles styles
	output string
}

func newModel(sheet application.Timesheet, opts RenderOptions) model {
	return model{
		sheet:  sheet,
		opts:   opts,
		styles: newStyles(opts.Color),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.sheet, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render formats the timesheet as the weekly punch table.
func Render(sheet application.Timesheet, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(sheet, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
