package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func helpKeys(bindings []key.Binding) map[string]string {
	out := make(map[string]string)
	for _, b := range bindings {
		out[b.Help().Key] = b.Help().Desc
	}
	return out
}

func TestHelpForScreen(t *testing.T) {
	r := defaultBindings()
	timerHelp := helpKeys(r.HelpFor(ScreenTimer))
	if timerHelp["s"] != "start" || timerHelp["q"] != "quit" {
		t.Fatalf("timer help missing bindings: %v", timerHelp)
	}
	if _, ok := timerHelp["g"]; ok {
		t.Fatalf("garden binding leaked into timer help")
	}
	if _, ok := timerHelp["1-3"]; ok {
		t.Fatalf("bindings without a description should be hidden")
	}

	projectHelp := helpKeys(r.HelpFor(ScreenProjects))
	if projectHelp["s"] != "status" {
		t.Fatalf("projects s binding = %q", projectHelp["s"])
	}
	first := r.HelpFor(ScreenGarden)[0]
	if first.Help().Key == "q" || first.Help().Key == "tab" {
		t.Fatalf("screen bindings should be listed before global ones")
	}
}

func TestRegistryPriorityAndFallthrough(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("z")),
		Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
			calls = append(calls, "low")
			return m, nil, true
		},
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("z")),
		Priority: 5,
		Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
			calls = append(calls, "high")
			return m, nil, false
		},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("z")),
		Screens: []Screen{ScreenGarden},
		Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
			calls = append(calls, "garden")
			return m, nil, true
		},
	})

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}
	_, _, handled := r.Handle(MainModel{screen: ScreenTimer}, msg)
	if !handled {
		t.Fatalf("expected z to be handled")
	}
	if len(calls) != 2 || calls[0] != "high" || calls[1] != "low" {
		t.Fatalf("unexpected call order %v", calls)
	}

	_, _, handled = r.Handle(MainModel{}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if handled {
		t.Fatalf("unbound key should not be handled")
	}
}
