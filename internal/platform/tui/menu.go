package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/core"
	"github.com/vovakirdan/tui-quoridor/internal/registry"
)

// MenuItem is one playable setup: a variant and an optional preset.
type MenuItem struct {
	GameID string
	Title  string
	Preset config.Preset // Empty keeps the loaded settings
	Setup  string
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
	menuSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)

// presetVariant returns the variant a preset is played on.
func presetVariant(p config.Preset) string {
	if p == config.PresetFour {
		return "quoridor4"
	}
	return "quoridor"
}

// MenuItems lists the loaded settings first, then every preset whose
// variant is registered.
func MenuItems(settings config.QuoridorConfig) []MenuItem {
	titles := make(map[string]string)
	for _, g := range registry.List() {
		titles[g.ID] = g.Title
	}

	var items []MenuItem
	if title, ok := titles["quoridor"]; ok {
		items = append(items, MenuItem{
			GameID: "quoridor",
			Title:  title,
			Setup: fmt.Sprintf("%dx%d board, %d players, %d walls each",
				settings.Board.Size, settings.Board.Size, settings.PlayerCount(), settings.Players.WallsEach),
		})
	}
	for _, p := range config.Presets() {
		id := presetVariant(p)
		title, ok := titles[id]
		if !ok {
			continue
		}
		items = append(items, MenuItem{GameID: id, Title: title, Preset: p, Setup: p.Description()})
	}
	return items
}

// MenuModel is the Bubble Tea model for the setup picker.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a new menu model.
func NewMenuModel(settings config.QuoridorConfig, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  MenuItems(settings),
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	m.table = m.createTable()
	return m
}

func (m MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 22},
		{Title: "Preset", Width: 10},
		{Title: "Setup", Width: 38},
	}
	rows := make([]table.Row, len(m.items))
	for i, item := range m.items {
		preset := string(item.Preset)
		if preset == "" {
			preset = "config"
		}
		rows[i] = table.Row{item.Title, preset, item.Setup}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.items) {
				selected := m.items[cursor]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("Q U O R I D O R"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuSubtitleStyle.Render("Choose a setup"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No games registered", m.width))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Preset config.Preset
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(settings config.QuoridorConfig, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(settings, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{
		GameID: m.Selected().GameID,
		Preset: m.Selected().Preset,
		Config: m.Config(),
	}, nil
}
