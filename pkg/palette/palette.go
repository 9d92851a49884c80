// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package palette is an interactive picker over the copy commands of one file.
package palette

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gitlab.com/tozd/go/errors"
)

// ErrCancelled is returned by Run when the user leaves without choosing.
var ErrCancelled = errors.Base("palette cancelled")

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("255"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	disabledStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	filterStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// 📋 Item is one palette entry
type Item struct {
	Title string // e.g. "Copy as #include"
	Kind  string
	Value string // what would be copied
	Err   error  // set when the command cannot run for this file
}

// model is the Bubble Tea model for the palette
type model struct {
	items    []Item
	visible  []int // indexes into items matching the filter
	filter   string
	cursor   int
	width    int
	chosen   int // index into items, -1 until enter is pressed on a usable entry
	notice   string
	quitting bool
}

// NewModel creates a palette over items.
func NewModel(items []Item) tea.Model {
	m := model{items: items, chosen: -1}
	m.applyFilter()
	return m
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.notice = ""
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.visible) == 0 {
				return m, nil
			}
			idx := m.visible[m.cursor]
			if err := m.items[idx].Err; err != nil {
				m.notice = err.Error()
				return m, nil
			}
			m.chosen = idx
			m.quitting = true
			return m, tea.Quit

		// Navigation
		case tea.KeyDown, tea.KeyCtrlN, tea.KeyCtrlJ, tea.KeyTab:
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case tea.KeyUp, tea.KeyCtrlP, tea.KeyCtrlK, tea.KeyShiftTab:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyHome:
			m.cursor = 0
		case tea.KeyEnd:
			m.cursor = max(len(m.visible)-1, 0)

		// Filtering
		case tea.KeyBackspace:
			if m.filter != "" {
				r := []rune(m.filter)
				m.filter = string(r[:len(r)-1])
				m.applyFilter()
			}
		case tea.KeyCtrlU:
			m.filter = ""
			m.applyFilter()
		case tea.KeyRunes, tea.KeySpace:
			m.filter += string(msg.Runes)
			if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
				m.filter += " "
			}
			m.applyFilter()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	// Ensure cursor stays in bounds
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}

	return m, nil
}

// applyFilter keeps the items whose title contains every word of the filter.
func (m *model) applyFilter() {
	words := strings.Fields(strings.ToLower(m.filter))
	m.visible = nil
	for i, it := range m.items {
		title := strings.ToLower(it.Title + " " + it.Kind)
		match := true
		for _, w := range words {
			if !strings.Contains(title, w) {
				match = false
				break
			}
		}
		if match {
			m.visible = append(m.visible, i)
		}
	}
	m.cursor = 0
}

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(filterStyle.Render("> " + m.filter))
	sb.WriteString("\n")

	if len(m.visible) == 0 {
		sb.WriteString("No matching commands\n")
	}

	titleWidth := 0
	for _, idx := range m.visible {
		titleWidth = max(titleWidth, lipgloss.Width(m.items[idx].Title))
	}

	for row, idx := range m.visible {
		sb.WriteString(m.renderItem(m.items[idx], titleWidth, row == m.cursor))
		sb.WriteString("\n")
	}

	if m.notice != "" {
		sb.WriteString(noticeStyle.Render("⚠️  " + m.notice))
		sb.WriteString("\n")
	}

	position := fmt.Sprintf("%d/%d", min(m.cursor+1, len(m.visible)), len(m.visible))
	help := "type:filter  ↑/↓:nav  enter:copy  esc:cancel"
	bar := statusBarStyle
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	sb.WriteString(bar.Render(fmt.Sprintf("%s | %s", position, help)))

	return sb.String()
}

// renderItem renders a single palette line
func (m model) renderItem(it Item, titleWidth int, selected bool) string {
	title := it.Title + strings.Repeat(" ", titleWidth-lipgloss.Width(it.Title))

	var line string
	if it.Err != nil {
		line = disabledStyle.Render(title)
	} else {
		line = titleStyle.Render(title) + "  " + valueStyle.Render(truncate(it.Value, m.valueWidth(titleWidth)))
	}

	if selected {
		return selectedStyle.Render("▶ ") + line
	}
	return "  " + line
}

func (m model) valueWidth(titleWidth int) int {
	if m.width == 0 {
		return 0
	}
	return max(m.width-titleWidth-4, 8)
}

// truncate shortens s to width runes; width 0 means no limit.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// Chosen returns the item picked in a finished model.
func Chosen(m tea.Model) (Item, bool) {
	pm, ok := m.(model)
	if !ok || pm.chosen < 0 {
		return Item{}, false
	}
	return pm.items[pm.chosen], true
}

// 🎯 Run shows the palette on the terminal and returns the chosen item
func Run(ctx context.Context, items []Item, in io.Reader, out io.Writer) (Item, error) {
	p := tea.NewProgram(NewModel(items),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return Item{}, errors.Errorf("running palette: %w", err)
	}
	it, ok := Chosen(final)
	if !ok {
		return Item{}, ErrCancelled
	}
	return it, nil
}
