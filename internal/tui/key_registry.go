package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Screens  []Screen
	Priority int
}

// AppliesTo reports whether the binding is active on screen. A binding
// without screens is global.
func (b KeyBinding) AppliesTo(screen Screen) bool {
	if len(b.Screens) == 0 {
		return true
	}
	for _, s := range b.Screens {
		if s == screen {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.AppliesTo(m.screen) && key.Matches(msg, b.Binding) {
			next, cmd, handled := b.Handler(m, msg)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(screen Screen) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(screen) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor returns the bindings shown in the footer for screen, screen
// specific ones first.
func (r *HandlerRegistry) HelpFor(screen Screen) []key.Binding {
	var local, global []key.Binding
	seen := make(map[string]bool)
	for _, b := range r.BindingsFor(screen) {
		h := b.Binding.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		if len(b.Screens) == 0 {
			global = append(global, b.Binding)
		} else {
			local = append(local, b.Binding)
		}
	}
	return append(local, global...)
}
