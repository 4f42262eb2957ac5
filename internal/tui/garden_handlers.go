package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/prodgarden/internal/config"
	"github.com/akyairhashvil/prodgarden/internal/garden"
	"github.com/akyairhashvil/prodgarden/internal/points"
	"github.com/akyairhashvil/prodgarden/internal/util"
)

func (m *MainModel) refreshGardens() {
	names, err := m.deps.Library.List()
	if err != nil {
		m.setError("list gardens", err)
		return
	}
	m.gardens = names
}

// openInitialGarden reopens the last garden used, falling back to the
// first one on disk.
func (m *MainModel) openInitialGarden() {
	if len(m.gardens) == 0 {
		return
	}
	name := m.gardens[0]
	if m.deps.Prefs != nil {
		last := m.deps.Prefs.Get().LastGarden
		for _, g := range m.gardens {
			if g == last {
				name = last
				break
			}
		}
	}
	m.openGarden(name)
}

func (m *MainModel) openGarden(name string) bool {
	g, err := m.deps.Library.Open(name)
	if err != nil {
		m.setError("open garden", err)
		return false
	}
	m.garden = g
	m.cursorRow, m.cursorCol = 0, 0
	m.object = 0
	if len(g.Grid.Catalog()) > 1 {
		m.object = 1
	}
	if m.deps.Prefs != nil {
		m.deps.Prefs.SetLastGarden(name)
	}
	return true
}

func (m MainModel) handleGardenMove(msg tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	if m.garden == nil {
		return m, nil, false
	}
	switch msg.String() {
	case "up", "k":
		m.cursorRow--
	case "down", "j":
		m.cursorRow++
	case "left", "h":
		m.cursorCol--
	case "right", "l":
		m.cursorCol++
	default:
		return m, nil, false
	}
	m.cursorRow = util.Clamp(m.cursorRow, 0, m.garden.Grid.Rows()-1)
	m.cursorCol = util.Clamp(m.cursorCol, 0, m.garden.Grid.Cols()-1)
	return m, nil, true
}

func (m MainModel) handleCycleObject(msg tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	if m.garden == nil {
		return m, nil, false
	}
	n := len(m.garden.Grid.Catalog())
	if n < 2 {
		return m, nil, true
	}
	step := 1
	if msg.String() == "[" {
		step = -1
	}
	// Index 0 is the ground and is reached through the clear key instead.
	m.object = util.Wrap(m.object-1+step, n-1) + 1
	obj := m.garden.Grid.Catalog()[m.object]
	m.setStatus(fmt.Sprintf("Selected %s (%d pts)", obj.Name, obj.Cost))
	return m, nil, true
}

func (m MainModel) handleBuy(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	return m.place(m.object), nil, true
}

func (m MainModel) handleClearCell(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	return m.place(0), nil, true
}

// place buys idx for the cell under the cursor and writes the new balance
// back to the session file.
func (m MainModel) place(idx int) MainModel {
	if m.garden == nil {
		m.setStatus("No garden open. Press g to create one")
		return m
	}
	err := m.garden.Buy(m.deps.Ledger, m.cursorRow, m.cursorCol, idx)
	switch {
	case errors.Is(err, points.ErrInsufficientPoints):
		cost := m.garden.Grid.Catalog()[idx].Cost
		m.setStatus(fmt.Sprintf("Not enough points: need %d, have %d", cost, m.deps.Ledger.Available()))
		return m
	case err != nil:
		m.setError("place object", err)
		return m
	}
	avail := m.deps.Ledger.Available()
	m.data.AvailablePoints = avail
	ok, err := m.deps.Session.UpdateAvailablePoints(avail)
	if err != nil {
		m.setError("update points", err)
		return m
	}
	if !ok {
		if err := m.saveSession(); err != nil {
			m.setError("save session", err)
			return m
		}
	}
	if idx == 0 {
		m.setStatus("Cleared")
	} else {
		m.setStatus(fmt.Sprintf("Placed %s", m.garden.Grid.Catalog()[idx].Name))
	}
	return m
}

func (m MainModel) handleNewGarden(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	next, cmd := m.beginInput(inputGarden, "Garden name", "", config.MaxGardenNameLength)
	return next, cmd, true
}

func (m MainModel) handleNextGarden(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	m.refreshGardens()
	if len(m.gardens) == 0 {
		m.setStatus("No gardens yet")
		return m, nil, true
	}
	i := 0
	if m.garden != nil {
		for j, name := range m.gardens {
			if name == m.garden.Name {
				i = j + 1
				break
			}
		}
	}
	name := m.gardens[util.Wrap(i, len(m.gardens))]
	if m.openGarden(name) {
		m.savePrefs()
		m.setStatus(fmt.Sprintf("Opened %s", name))
	}
	return m, nil, true
}

func (m MainModel) handleCycleVegetation(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	if m.deps.Prefs == nil {
		return m, nil, false
	}
	names := garden.Vegetations()
	current := m.deps.Prefs.Get().Vegetation
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	m.deps.Prefs.SetVegetation(next)
	m.savePrefs()
	m.setStatus(fmt.Sprintf("New gardens use %s", next))
	return m, nil, true
}

func (m MainModel) handleDeleteGarden(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	if m.garden == nil {
		return m, nil, true
	}
	name := m.garden.Name
	if err := m.deps.Library.Delete(name); err != nil {
		m.setError("delete garden", err)
		return m, nil, true
	}
	m.garden = nil
	m.refreshGardens()
	m.openInitialGarden()
	m.setStatus(fmt.Sprintf("Deleted %s", name))
	return m, nil, true
}

func (m MainModel) createGarden(name string) (MainModel, error) {
	vegetation := ""
	if m.deps.Prefs != nil {
		vegetation = m.deps.Prefs.Get().Vegetation
	}
	if vegetation == "" {
		vegetation = config.DefaultVegetation
	}
	g, err := m.deps.Library.Create(name, vegetation)
	if err != nil {
		if errors.Is(err, garden.ErrInvalidName) || errors.Is(err, garden.ErrGardenExists) {
			return m, err
		}
		m.setError("create garden", err)
		return m, nil
	}
	m.refreshGardens()
	if m.openGarden(g.Name) {
		m.savePrefs()
	}
	m.setStatus(fmt.Sprintf("Created %s (%s)", g.Name, vegetation))
	return m, nil
}
