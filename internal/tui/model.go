package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mjlc31/EASYDAY/internal/engine"
	"github.com/Mjlc31/EASYDAY/internal/storage"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	user  *storage.User
	tasks []storage.Task

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	user  *storage.User
	tasks []storage.Task
	err   error
}

type toggledMsg struct {
	id  int64
	res *engine.ToggleResult
	err error
}

type movedMsg struct {
	id   int64
	next engine.Quadrant
	err  error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		u, err := m.svc.TouchLogin(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TaskRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{user: u, tasks: tasks}
	}
}

func (m boardModel) toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ToggleTask(m.ctx, id)
		return toggledMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) moveCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		next, err := m.svc.CycleQuadrant(m.ctx, id)
		return movedMsg{id: id, next: next, err: err}
	}
}

// visible returns tasks grouped in matrix order: Q1..Q4, each newest
// first (the repo already lists newest first).
func (m boardModel) visible() []storage.Task {
	var out []storage.Task
	for _, q := range engine.Quadrants {
		for _, t := range m.tasks {
			if t.Quadrant == string(q) {
				out = append(out, t)
			}
		}
	}
	return out
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.tasks = msg.tasks
		if n := len(m.visible()); m.selected >= n && n > 0 {
			m.selected = n - 1
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.Completing {
			m.lastLog = fmt.Sprintf("Done #%d: +%d XP", msg.id, msg.res.Award.XPGained)
			if msg.res.Award.LevelUp() {
				m.lastLog += " " + ui.BadgeLevelUp
			}
		} else {
			m.lastLog = fmt.Sprintf("Unchecked #%d: -%d XP", msg.id, msg.res.XPDeducted)
		}
		return m, m.loadCmd()
	case movedMsg:
		if msg.err != nil {
			m.lastLog = "Move failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Moved #%d to %s", msg.id, msg.next)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.visible())-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			vis := m.visible()
			if m.selected < len(vis) {
				return m, m.toggleCmd(vis[m.selected].ID)
			}
			return m, nil
		case "m":
			vis := m.visible()
			if m.selected < len(vis) {
				return m, m.moveCmd(vis[m.selected].ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return "Loading…"
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}

	var b strings.Builder

	if m.user != nil {
		header := fmt.Sprintf("%s  Level %d %s  %d XP  %s %d",
			ui.Heading(ui.IconMatrix, "EasyDay"),
			m.user.Level, ui.Muted.Render("("+engine.LevelTitle(m.user.Level)+")"),
			m.user.XP,
			ui.IconFire, m.user.Streak)
		b.WriteString(header + "\n\n")
	}

	vis := m.visible()
	for _, q := range engine.Quadrants {
		var lines []string
		for _, t := range vis {
			if t.Quadrant != string(q) {
				continue
			}
			line := fmt.Sprintf("%s #%d %s", ui.CheckMark(t.Completed), t.ID, t.Title)
			if idxOf(vis, t.ID) == m.selected {
				line = ui.SelectedRow.Render(line)
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			lines = []string{ui.Dim.Render("(empty)")}
		}
		panel := ui.Panel.Render(ui.QuadrantTag(string(q)) + " " + ui.PanelTitle.Render(q.Title()) + "\n" + strings.Join(lines, "\n"))
		b.WriteString(panel + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Dim.Render("↑/↓ move · enter toggle · m move quadrant · r refresh · q quit") + "\n")
	return b.String()
}

func idxOf(tasks []storage.Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
