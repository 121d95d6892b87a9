package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skillscout/internal/model"
)

var (
	viewerHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(0, 1)

	jobTitleStyle = lipgloss.NewStyle().
			Bold(true)

	jobSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	jobURLStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
)

type viewerModel struct {
	run      model.ScanRun
	viewport viewport.Model
	ready    bool
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	header := viewerHeaderStyle.Render(fmt.Sprintf("Run %s — %d jobs", m.run.ID[:8], m.run.JobCount))
	status := statusBarStyle.Render("↑/↓ scroll  q quit")
	return header + "\n" + m.viewport.View() + "\n" + status
}

// renderPostings formats the ranked posting list for the viewport.
func renderPostings(postings []model.JobPosting) string {
	if len(postings) == 0 {
		return jobSubtitleStyle.Render("  no postings recorded for this run")
	}

	var b strings.Builder
	for i, p := range postings {
		date := "no date"
		if p.PostedAt != nil {
			date = p.PostedAt.Local().Format("2006-01-02")
		}
		b.WriteString(fmt.Sprintf("%3d. %s\n", i+1, jobTitleStyle.Render(p.Title)))
		b.WriteString("     " + jobSubtitleStyle.Render(
			fmt.Sprintf("%s · %s · %s · %s · %s", p.Company, p.Location, p.Skill, p.Source, date)) + "\n")
		b.WriteString("     " + jobURLStyle.Render(p.URL) + "\n\n")
	}
	return b.String()
}

// RunViewer shows the postings of one stored run in a scrollable view.
func RunViewer(run model.ScanRun, postings []model.JobPosting) error {
	m := viewerModel{run: run}
	m.viewport = viewport.New(80, 24)
	m.viewport.SetContent(renderPostings(postings))
	m.ready = true

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
