package tabbar

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"

	"github.com/henri123lemoine/rotabar/internal/debug"
	"github.com/henri123lemoine/rotabar/internal/tab"
	"github.com/henri123lemoine/rotabar/internal/ui"
)

var (
	ErrNoTabs              = errors.New("tab bar needs at least one tab")
	ErrDuplicateTabID      = errors.New("duplicate tab id")
	ErrSelectionOutOfRange = errors.New("selection out of range")
)

// MinWidth is the narrowest area the bar lays itself out in.
const MinWidth = 20

// MinHeight fits the bar, its shadow and one content row.
var MinHeight = ui.BarRows + ui.ShadowRows + 1

// Option configures a Model.
type Option func(*Model)

// WithSelection sets the initial selection.
func WithSelection(i int) Option {
	return func(m *Model) { m.selection = i }
}

// WithTheme sets the palette.
func WithTheme(t ui.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithKeyMap sets the key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithAnimation turns the rotation animation on or off.
func WithAnimation(on bool) Option {
	return func(m *Model) { m.animate = on }
}

// WithPageDots shows or hides the page indicator above the bar.
func WithPageDots(on bool) Option {
	return func(m *Model) { m.showDots = on }
}

// WithMarginX sets the horizontal inset of the bar.
func WithMarginX(cells int) Option {
	return func(m *Model) {
		if cells >= 0 {
			m.marginX = cells
		}
	}
}

// WithZoneManager routes taps through a shared zone manager. The caller
// owns it, and Close leaves it running.
func WithZoneManager(z *zone.Manager) Option {
	return func(m *Model) { m.zones = z }
}

type subscriber struct {
	id int
	fn func(SelectionChange)
}

// subscribers are notified in subscription order.
type subscribers struct {
	next int
	list []subscriber
}

// Model is the rotated tab bar: a paged content area with a floating bar of
// tab items overlaid at its bottom edge.
type Model struct {
	tabs      []tab.Tab
	selection int

	// Paged container
	pages paginator.Model

	// Bar
	theme    ui.Theme
	keys     KeyMap
	marginX  int
	showDots bool

	// Rotation animation
	animate   bool
	animating bool
	spring    harmonica.Spring
	rotors    []rotor

	// Input routing
	id         int
	zones      *zone.Manager
	ownZones   bool
	zonePrefix string
	subs       *subscribers

	width  int
	height int
}

// New creates a tab bar over tabs. tabs must be non-empty with unique ids,
// and the initial selection must index into it.
func New(tabs []tab.Tab, opts ...Option) (Model, error) {
	if len(tabs) == 0 {
		return Model{}, ErrNoTabs
	}
	seen := make(map[int]bool, len(tabs))
	for _, t := range tabs {
		if seen[t.ID()] {
			return Model{}, fmt.Errorf("%w: %d", ErrDuplicateTabID, t.ID())
		}
		seen[t.ID()] = true
	}

	m := Model{
		tabs:       append([]tab.Tab(nil), tabs...),
		theme:      ui.DefaultTheme(),
		keys:       DefaultKeyMap(),
		marginX:    ui.DefaultMarginX,
		showDots:   true,
		animate:    true,
		spring:     newSpring(),
		id:         nextID(),
		subs:       &subscribers{},
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.selection < 0 || m.selection >= len(m.tabs) {
		return Model{}, fmt.Errorf("initial selection %d of %d tabs: %w", m.selection, len(m.tabs), ErrSelectionOutOfRange)
	}

	if m.zones == nil {
		m.zones = zone.New()
		m.ownZones = true
	}
	m.zonePrefix = m.zones.NewPrefix()

	m.pages = paginator.New()
	m.pages.Type = paginator.Dots
	m.pages.PerPage = 1
	m.pages.ActiveDot = ui.DotActiveStyle.Foreground(m.theme.Accent).Render(ui.SymbolDotActive)
	m.pages.InactiveDot = ui.DotInactiveStyle.Foreground(m.theme.Inactive).Render(ui.SymbolDotInactive)
	m.pages.KeyMap = m.keys.paginatorKeys()
	m.pages.SetTotalPages(len(m.tabs))
	m.pages.Page = m.selection

	m.rotors = make([]rotor, len(m.tabs))
	for i := range m.rotors {
		m.rotors[i].target = float64(m.theme.StyleFor(i == m.selection).Rotation)
		m.rotors[i].snap()
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the index of the selected tab.
func (m Model) Selection() int {
	return m.selection
}

// Tabs returns the tabs in bar order.
func (m Model) Tabs() []tab.Tab {
	return append([]tab.Tab(nil), m.tabs...)
}

// Active returns the selected tab.
func (m Model) Active() tab.Tab {
	return m.tabs[m.selection]
}

// KeyMap returns the key bindings.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Angle returns the displayed rotation of the icon at index i.
func (m Model) Angle(i int) float64 {
	return m.rotors[i].angle
}

// Animating reports whether an icon is still turning.
func (m Model) Animating() bool {
	return m.animating
}

// SetSize sets the area the bar draws in.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Subscribe registers fn to be called after every selection change. The
// returned func removes it.
func (m *Model) Subscribe(fn func(SelectionChange)) (unsubscribe func()) {
	id := m.subs.next
	m.subs.next++
	m.subs.list = append(m.subs.list, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range m.subs.list {
			if s.id == id {
				m.subs.list = append(m.subs.list[:i:i], m.subs.list[i+1:]...)
				return
			}
		}
	}
}

// SetSelection selects the tab at index i. An out-of-range index is
// rejected and leaves the selection untouched. The returned command drives
// the rotation animation, if any.
func (m *Model) SetSelection(i int) (tea.Cmd, error) {
	if i < 0 || i >= len(m.tabs) {
		return nil, fmt.Errorf("select %d of %d tabs: %w", i, len(m.tabs), ErrSelectionOutOfRange)
	}
	if i == m.selection {
		return nil, nil
	}

	change := SelectionChange{From: m.selection, To: i, TabID: m.tabs[i].ID()}
	m.selection = i
	m.pages.Page = i

	for idx := range m.rotors {
		m.rotors[idx].target = float64(m.theme.StyleFor(idx == i).Rotation)
	}

	for _, s := range m.subs.list {
		s.fn(change)
	}

	return m.startAnimation(), nil
}

func (m *Model) startAnimation() tea.Cmd {
	if !m.animate {
		for i := range m.rotors {
			m.rotors[i].snap()
		}
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	return frame(m.id)
}

// selectFromInput selects i in response to a tap, key or swipe and reports
// the change as a message.
func (m *Model) selectFromInput(i int) tea.Cmd {
	from := m.selection
	anim, err := m.SetSelection(i)
	if err != nil {
		debug.Log("ignoring selection: %v", err)
		return nil
	}
	if from == m.selection {
		return nil
	}
	change := SelectionChange{From: from, To: m.selection, TabID: m.tabs[m.selection].ID()}
	return tea.Batch(anim, func() tea.Msg {
		return SelectionChangedMsg{SelectionChange: change}
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		if msg.id != m.id || !m.animating {
			return m, nil
		}
		if step(m.spring, m.rotors) {
			return m, frame(m.id)
		}
		m.animating = false
		return m, nil

	case TapMsg:
		return m, m.selectFromInput(msg.Index)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, m.forward(msg)
}

// handleKeyPress handles bar keys first, then the paged container's.
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	n := len(m.tabs)
	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.selectFromInput((m.selection + 1) % n)
	case key.Matches(msg, m.keys.Prev):
		return m, m.selectFromInput((m.selection + n - 1) % n)
	case key.Matches(msg, m.keys.Jump):
		if d, err := strconv.Atoi(msg.String()); err == nil && d >= 1 && d <= n {
			return m, m.selectFromInput(d - 1)
		}
		return m, nil
	case key.Matches(msg, m.keys.PageNext, m.keys.PagePrev):
		var cmd tea.Cmd
		m.pages, cmd = m.pages.Update(msg)
		return m, tea.Batch(cmd, m.selectFromInput(m.pages.Page))
	}
	return m, m.forward(msg)
}

// handleMouse routes clicks to items and horizontal wheel to the pages.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelRight:
		m.pages.NextPage()
		return m, m.selectFromInput(m.pages.Page)
	case tea.MouseButtonWheelLeft:
		m.pages.PrevPage()
		return m, m.selectFromInput(m.pages.Page)
	}

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		for i := range m.tabs {
			if z := m.zones.Get(m.zoneID(i)); z != nil && z.InBounds(msg) {
				return m, m.selectFromInput(i)
			}
		}
		return m, nil
	}

	return m, m.forward(msg)
}

// forward passes msg to the selected tab's content if it takes input.
func (m Model) forward(msg tea.Msg) tea.Cmd {
	if c, ok := m.tabs[m.selection].Content().(tab.Interactive); ok {
		return c.Update(msg)
	}
	return nil
}

func (m Model) zoneID(i int) string {
	return m.zonePrefix + "tab-" + strconv.Itoa(i)
}

// View renders the selected page with the bar overlaid at its bottom edge.
func (m Model) View() string {
	width, height := max(m.width, MinWidth), max(m.height, MinHeight)

	items := make([]ui.ItemParams, len(m.tabs))
	for i, t := range m.tabs {
		items[i] = ui.ItemParams{
			Icon:   t.Icon(),
			Label:  t.Label(),
			Active: i == m.selection,
			Angle:  m.rotors[i].angle,
		}
	}

	bar := ui.RenderBar(ui.BarParams{
		Items:   items,
		Width:   width,
		MarginX: m.marginX,
		Theme:   m.theme,
		Mark: func(i int, rendered string) string {
			return m.zones.Mark(m.zoneID(i), rendered)
		},
	})

	var dots string
	if m.showDots && len(m.tabs) > 1 {
		dots = m.pages.View()
	}

	content := m.Active().Content().Render(width, height)
	return ui.Compose(content, bar, dots, width, height, m.marginX)
}

// Close stops the zone manager the bar created for itself. A manager passed
// with WithZoneManager is left to its owner.
func (m Model) Close() {
	if m.ownZones {
		m.zones.Close()
	}
}

// Scan resolves click zones in the root view. The program's top-level View
// must pass its output through Scan for taps to reach the bar.
func (m Model) Scan(view string) string {
	return m.zones.Scan(view)
}
