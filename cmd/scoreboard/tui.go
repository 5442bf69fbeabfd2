package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type scoreboardRow struct {
	Rank         int                 `json:"rank"`
	TeamID       string              `json:"teamId"`
	TeamName     string              `json:"teamName"`
	School       string              `json:"school"`
	TotalScore   int                 `json:"totalScore"`
	TotalPenalty int                 `json:"totalPenalty"`
	Problems     map[string]struct { // keyed by problem id
		Status string `json:"status"`
		Score  int    `json:"score"`
	} `json:"problems"`
}

type scoreboardMsg []scoreboardRow
type errMsg struct{ err error }
type tickMsg time.Time

type model struct {
	url      string
	interval time.Duration

	loadSpinner spinner.Model
	rows        []scoreboardRow
	problemIDs  []string
	fetchedAt   time.Time
	err         error
	loaded      bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498db"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	wrongStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
)

func initialModel(url string, interval time.Duration) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	return model{
		url:         url,
		interval:    interval,
		loadSpinner: s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadSpinner.Tick, fetchScoreboard(m.url))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, fetchScoreboard(m.url)
		}
	case scoreboardMsg:
		m.rows = msg
		m.problemIDs = collectProblemIDs(msg)
		m.fetchedAt = time.Now()
		m.err = nil
		m.loaded = true
		return m, tick(m.interval)
	case errMsg:
		m.err = msg.err
		return m, tick(m.interval)
	case tickMsg:
		return m, fetchScoreboard(m.url)
	default:
		var cmd tea.Cmd
		m.loadSpinner, cmd = m.loadSpinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	s := titleStyle.Render("Scoreboard") + "\n\n"

	if !m.loaded {
		if m.err != nil {
			return s + errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
		}
		return s + m.loadSpinner.View() + " loading...\n"
	}

	header := fmt.Sprintf("%-4s %-8s %-24s %6s %8s", "#", "ID", "Team", "Score", "Penalty")
	for _, id := range m.problemIDs {
		header += fmt.Sprintf("  %4s", id)
	}
	s += headerStyle.Render(header) + "\n"

	for _, row := range m.rows {
		line := fmt.Sprintf("%-4d %-8s %-24s %6d %8d",
			row.Rank, row.TeamID, truncate(row.TeamName, 24),
			row.TotalScore, row.TotalPenalty)
		s += line
		for _, id := range m.problemIDs {
			cell := "   ."
			if p, ok := row.Problems[id]; ok {
				switch p.Status {
				case "correct":
					cell = solvedStyle.Render(fmt.Sprintf("%4d", p.Score))
				case "partial":
					cell = fmt.Sprintf("%4d", p.Score)
				case "wrong":
					cell = wrongStyle.Render("   x")
				}
			}
			s += "  " + cell
		}
		s += "\n"
	}

	s += "\n"
	if m.err != nil {
		s += errStyle.Render(fmt.Sprintf("last fetch failed: %v", m.err)) + "\n"
	}
	s += fmt.Sprintf("updated %s · r to refresh · q to quit\n",
		m.fetchedAt.Format("15:04:05"))
	return s
}

func fetchScoreboard(url string) tea.Cmd {
	return func() tea.Msg {
		resp, err := http.Get(url + "/scoreboard")
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()

		var envelope struct {
			Status string          `json:"status"`
			Data   json.RawMessage `json:"data"`
			ErrMsg string          `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return errMsg{err}
		}
		if envelope.Status != "success" {
			return errMsg{fmt.Errorf("backend error: %s", envelope.ErrMsg)}
		}

		var rows []scoreboardRow
		if err := json.Unmarshal(envelope.Data, &rows); err != nil {
			return errMsg{err}
		}
		return scoreboardMsg(rows)
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func collectProblemIDs(rows []scoreboardRow) []string {
	seen := map[string]bool{}
	var ids []string
	for _, row := range rows {
		for id := range row.Problems {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Strings(ids)
	return ids
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
