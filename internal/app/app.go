package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/rotabar/internal/config"
	"github.com/henri123lemoine/rotabar/internal/debug"
	"github.com/henri123lemoine/rotabar/internal/tab"
	"github.com/henri123lemoine/rotabar/internal/tabbar"
	"github.com/henri123lemoine/rotabar/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateJump
	StateHelp
)

// toastDuration is how long the selection toast stays up.
const toastDuration = 1500 * time.Millisecond

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config

	// Tab bar
	bar tabbar.Model

	// State
	state State

	// Jump flow
	jumpInput  textinput.Model
	matches    fuzzy.Matches
	jumpCursor int

	// Toast
	toast   string
	toastID int

	// UI
	width  int
	height int
	keys   KeyMap
	help   help.Model

	// Exit behavior
	shouldQuit bool
}

// New creates a new Model from cfg. It fails if the configured tabs cannot
// form a tab bar.
func New(cfg *config.Config) (Model, error) {
	keys := KeyMapFromConfig(&cfg.Keys)

	bar, err := tabbar.New(tabsFromConfig(cfg.EffectiveTabs()),
		tabbar.WithSelection(cfg.UI.InitialSelection),
		tabbar.WithTheme(cfg.Theme()),
		tabbar.WithKeyMap(keys.Bar),
		tabbar.WithAnimation(cfg.UI.Animate),
		tabbar.WithPageDots(cfg.UI.ShowPageDots),
		tabbar.WithMarginX(cfg.UI.MarginX),
	)
	if err != nil {
		return Model{}, err
	}
	bar.Subscribe(func(c tabbar.SelectionChange) {
		debug.Event("selection changed", "from", c.From, "to", c.To, "tab", c.TabID)
	})

	jumpInput := textinput.New()
	jumpInput.Placeholder = "tab name..."
	jumpInput.CharLimit = 50

	return Model{
		config:    cfg,
		bar:       bar,
		state:     StateBrowse,
		jumpInput: jumpInput,
		keys:      keys,
		help:      help.New(),
	}, nil
}

// tabsFromConfig builds tabs in config order. Unknown icon names fall back
// to the triangle icon; Validate reports them.
func tabsFromConfig(tcs []config.TabConfig) []tab.Tab {
	tabs := make([]tab.Tab, 0, len(tcs))
	for _, tc := range tcs {
		icon, ok := tab.LookupIcon(tc.Icon)
		if !ok {
			icon, _ = tab.LookupIcon("triangle")
		}
		body, scroll := tc.Content, tc.Scroll
		tabs = append(tabs, tab.New(tc.ID, icon, tc.Label, func() tab.Content {
			if scroll {
				return tab.NewScroll(body)
			}
			return tab.Text(body)
		}))
	}
	return tabs
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.bar.Init()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tabbar.SelectionChangedMsg:
		m.toast = m.bar.Active().Label()
		m.toastID++
		id := m.toastID
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return ToastExpiredMsg{ID: id}
		})

	case ToastExpiredMsg:
		if msg.ID == m.toastID {
			m.toast = ""
		}
		return m, nil

	case tea.MouseMsg:
		if m.state != StateBrowse {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	return m, cmd
}

// handleKeyPress routes key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateJump:
		return m.handleJumpKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

// handleBrowseKeys handles key presses while browsing tabs.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		m.state = StateJump
		m.jumpInput.Reset()
		m.jumpInput.Focus()
		m.jumpCursor = 0
		m.applyJumpFilter()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	return m, cmd
}

// handleHelpKeys closes the help overlay on any key.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.state = StateBrowse
	return m, nil
}

// handleJumpKeys handles key presses in jump mode.
func (m Model) handleJumpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = StateBrowse
		m.jumpInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.state = StateBrowse
		m.jumpInput.Blur()
		if len(m.matches) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(tabbar.TapMsg{Index: m.matches[m.jumpCursor].Index})
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		if m.jumpCursor > 0 {
			m.jumpCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.jumpCursor < len(m.matches)-1 {
			m.jumpCursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	m.applyJumpFilter()
	return m, cmd
}

// tabSource implements fuzzy.Source over tab labels.
type tabSource []tab.Tab

func (s tabSource) String(i int) string {
	return s[i].Label()
}

func (s tabSource) Len() int {
	return len(s)
}

// applyJumpFilter matches tab labels against the jump input. An empty query
// lists every tab in bar order.
func (m *Model) applyJumpFilter() {
	tabs := m.bar.Tabs()
	query := m.jumpInput.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, len(tabs))
		for i, t := range tabs {
			m.matches[i] = fuzzy.Match{Str: t.Label(), Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(query, tabSource(tabs))
	}

	// Ensure cursor is in bounds
	if m.jumpCursor >= len(m.matches) {
		m.jumpCursor = len(m.matches) - 1
	}
	if m.jumpCursor < 0 {
		m.jumpCursor = 0
	}
}

// View renders the UI.
func (m Model) View() string {
	width, height := max(m.width, tabbar.MinWidth), max(m.height, tabbar.MinHeight)
	view := m.bar.View()

	if m.toast != "" {
		toast := ui.ToastStyle.Render(m.toast)
		x := max(width-lipgloss.Width(toast)-1, 0)
		view = ui.OverlayAt(view, toast, x, 1, width, height)
	}

	switch m.state {
	case StateHelp:
		body := ui.TitleStyle.Render("Keys") + "\n\n" + m.help.FullHelpView(m.keys.FullHelp())
		view = ui.Popup(view, body, width, height)
	case StateJump:
		view = ui.Popup(view, m.renderJump(), width, height)
	}

	return m.bar.Scan(view)
}

func (m Model) renderJump() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Jump to tab"))
	b.WriteString("\n\n")
	b.WriteString(ui.InputStyle.Render(m.jumpInput.View()))
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString("\n")
		b.WriteString(ui.HelpStyle.Render("no matching tabs"))
		return b.String()
	}
	for i, match := range m.matches {
		b.WriteString("\n")
		if i == m.jumpCursor {
			b.WriteString(ui.SymbolCursor + " ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(highlightMatch(match))
	}
	return b.String()
}

// highlightMatch renders a label with its matched characters emphasized.
func highlightMatch(match fuzzy.Match) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}
	var b strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(ui.MatchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Selection returns the index of the selected tab.
func (m Model) Selection() int {
	return m.bar.Selection()
}

// Close releases the tab bar's resources.
func (m Model) Close() {
	m.bar.Close()
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}
