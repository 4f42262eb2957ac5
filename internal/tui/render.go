package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/prodgarden/internal/config"
	"github.com/akyairhashvil/prodgarden/internal/timer"
)

const groundGlyph = "·"

func (m MainModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	switch m.screen {
	case ScreenGarden:
		b.WriteString(m.renderGarden())
	case ScreenProjects:
		b.WriteString(m.renderProjects())
	default:
		b.WriteString(m.renderTimer())
	}
	b.WriteString("\n")
	if m.mode != inputNone {
		b.WriteString(m.renderInput())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return CurrentTheme.Base.Render(b.String())
}

func (m MainModel) renderHeader() string {
	var tabs []string
	for i, title := range screenTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if Screen(i) == m.screen {
			tabs = append(tabs, CurrentTheme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, CurrentTheme.Tab.Render(label))
		}
	}
	total, avail := m.deps.Ledger.Points()
	pts := CurrentTheme.Highlight.Render(fmt.Sprintf("%d/%d pts", avail, total))
	title := CurrentTheme.Header.Render("prodgarden") + CurrentTheme.Dim.Render(" v"+versionLabel())
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, ""), "  ", pts)
}

func (m MainModel) renderTimer() string {
	s := m.deps.Timer.State()
	clockStyle := CurrentTheme.Clock
	if s.Mode == timer.ModePomodoro && s.Phase == timer.PhaseBreak && s.RunState != timer.Stopped {
		clockStyle = CurrentTheme.Break
	}

	var b strings.Builder
	b.WriteString(clockStyle.Render(m.deps.Timer.DisplayTime()))
	b.WriteString("  ")
	b.WriteString(CurrentTheme.Dim.Render(FormatTimerStatus(s)))
	b.WriteString("\n")
	if s.Mode != timer.ModeStopwatch {
		b.WriteString(m.progress.ViewAs(progressFraction(s)))
		b.WriteString("\n")
	}

	set := m.deps.Timer.Settings()
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("work %s  break %s  countdown %s",
		timer.FormatClock(set.WorkSeconds), timer.FormatClock(set.BreakSeconds), timer.FormatClock(set.TimerSeconds))))
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("pending minutes %d", s.ProductiveMinutes)))
	b.WriteString("\n")

	if name := m.activeProjectName(); name != "" {
		b.WriteString("tracking " + CurrentTheme.Focused.Render(name) + "\n")
	}
	if m.data.Notes != "" {
		b.WriteString("\n" + truncateLabel(m.data.Notes, m.width-4) + "\n")
	}
	return b.String()
}

func (m MainModel) activeProjectName() string {
	id := m.deps.Tracker.ActiveProject()
	if id == 0 {
		return ""
	}
	for _, p := range m.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func (m MainModel) renderGarden() string {
	if m.garden == nil {
		return CurrentTheme.Dim.Render("No gardens yet. Press g to create one.") + "\n"
	}
	var b strings.Builder
	catalog := m.garden.Grid.Catalog()
	b.WriteString(CurrentTheme.Focused.Render(m.garden.Name))
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  %s  %dx%d", m.garden.Vegetation, m.garden.Grid.Rows(), m.garden.Grid.Cols())))
	b.WriteString("\n\n")

	for r, row := range m.garden.Grid.Cells() {
		for c, idx := range row {
			glyph := groundGlyph
			style := CurrentTheme.Ground
			if idx != 0 {
				glyph = fmt.Sprint(idx)
				style = CurrentTheme.Object
			}
			if r == m.cursorRow && c == m.cursorCol {
				style = CurrentTheme.Cursor
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for i, obj := range catalog {
		if i == 0 {
			continue
		}
		label := fmt.Sprintf("%d %s (%d)", i, obj.Name, obj.Cost)
		if i == m.object {
			b.WriteString(CurrentTheme.Focused.Render("> " + label))
		} else {
			b.WriteString(CurrentTheme.Dim.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m MainModel) renderProjects() string {
	var footer string
	if m.lastReport != "" {
		footer = "\n" + CurrentTheme.Dim.Render("Last report: "+m.lastReport) + "\n"
	}
	if len(m.projects) == 0 {
		return CurrentTheme.Dim.Render("No projects yet. Press a to add one.") + "\n" + footer
	}
	active := m.deps.Tracker.ActiveProject()
	nameWidth := config.MaxProjectNameLength
	if m.width > 0 && m.width-30 < nameWidth {
		nameWidth = max(m.width-30, config.MinStatusWidth)
	}
	var b strings.Builder
	for i, p := range m.projects {
		marker := "  "
		if p.ID == active {
			marker = "* "
		}
		line := fmt.Sprintf("%s%-*s %8s  %s", marker, nameWidth, truncateLabel(p.Name, nameWidth), FormatMinutes(p.TimeTracked), p.Status)
		if i == m.projectCursor {
			b.WriteString(CurrentTheme.Focused.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString(footer)
	return b.String()
}

func (m MainModel) renderInput() string {
	prompt := map[inputMode]string{
		inputCountdown: "Countdown",
		inputWork:      "Work phase",
		inputBreak:     "Break phase",
		inputNotes:     "Notes",
		inputProject:   "New project",
		inputGarden:    "New garden",
	}[m.mode]
	out := CurrentTheme.Input.Render(prompt + ": " + m.input.View())
	if m.inputErr != nil {
		out += "\n" + CurrentTheme.Error.Render(m.inputErr.Error())
	}
	return out
}

func (m MainModel) renderStatus() string {
	width := m.width - 4
	if width < config.MinStatusWidth {
		width = config.MinStatusWidth
	}
	if m.err != nil {
		return CurrentTheme.Error.Render(truncateLabel("Error: "+m.err.Error(), width))
	}
	return CurrentTheme.Dim.Render(truncateLabel(m.status, width))
}

func (m MainModel) renderHelp() string {
	bindings := m.keys.HelpFor(m.screen)
	if m.help.ShowAll {
		return m.help.FullHelpView(chunkBindings(bindings, 4))
	}
	return m.help.ShortHelpView(bindings)
}

func chunkBindings(bindings []key.Binding, size int) [][]key.Binding {
	var out [][]key.Binding
	for len(bindings) > size {
		out = append(out, bindings[:size])
		bindings = bindings[size:]
	}
	if len(bindings) > 0 {
		out = append(out, bindings)
	}
	return out
}
