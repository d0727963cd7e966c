package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxSeedInput = 64

// seedPrompt is the one-line seed entry field opened with "/".
type seedPrompt struct {
	active bool
	value  []rune
}

// promptResult is what a key press did to the prompt.
type promptResult int

const (
	promptEditing promptResult = iota
	promptSubmit
	promptCancel
)

func (p seedPrompt) open(initial string) seedPrompt {
	p.active = true
	p.value = []rune(initial)
	return p
}

func (p seedPrompt) close() seedPrompt {
	p.active = false
	p.value = nil
	return p
}

// Value returns the typed text.
func (p seedPrompt) Value() string {
	return string(p.value)
}

func (p seedPrompt) update(msg tea.KeyMsg) (seedPrompt, promptResult) {
	switch msg.Type {
	case tea.KeyEnter:
		return p, promptSubmit
	case tea.KeyEsc:
		return p, promptCancel
	case tea.KeyBackspace:
		if len(p.value) > 0 {
			p.value = p.value[:len(p.value)-1]
		}
	case tea.KeyCtrlU:
		p.value = nil
	case tea.KeySpace:
		p = p.insert(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			p = p.insert(r)
		}
	}
	return p, promptEditing
}

func (p seedPrompt) insert(r rune) seedPrompt {
	if len(p.value) >= maxSeedInput {
		return p
	}
	p.value = append(p.value, r)
	return p
}

func (p seedPrompt) view() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	inputStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString(labelStyle.Render("Seed: "))
	b.WriteString(inputStyle.Render(string(p.value) + "▌"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("enter: generate | esc: cancel | empty: clock"))
	return b.String()
}
