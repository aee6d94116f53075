// Package menu models the right-click popup menu: a root list with
// cascading theme and scroll-mode submenus.
package menu

import (
	"github.com/Faultbox/terrainscroll/internal/engine/theme"
	"github.com/Faultbox/terrainscroll/internal/game/world"
)

// ActionKind identifies what a menu item does.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSetTheme
	ActionSetMode
	ActionReset
	ActionQuit
)

// Action is the result of clicking a leaf item.
type Action struct {
	Kind  ActionKind
	Theme theme.ID
	Mode  world.Mode
}

// Apply performs the action on the view state.
// It reports whether the application should quit.
func (a Action) Apply(s *world.State) (quit bool) {
	switch a.Kind {
	case ActionSetTheme:
		s.SetTheme(a.Theme)
	case ActionSetMode:
		s.SetMode(a.Mode)
	case ActionReset:
		s.Reset()
	case ActionQuit:
		return true
	}
	return false
}

type entry struct {
	label  string
	action Action
	sub    []entry
}

func (e entry) isActive(th theme.ID, mode world.Mode) bool {
	switch e.action.Kind {
	case ActionSetTheme:
		return e.action.Theme == th
	case ActionSetMode:
		return e.action.Mode == mode
	}
	return false
}

func rootEntries() []entry {
	themes := make([]entry, 0, len(theme.All()))
	for _, id := range theme.All() {
		themes = append(themes, entry{
			label:  id.Label(),
			action: Action{Kind: ActionSetTheme, Theme: id},
		})
	}

	modes := []entry{
		{label: world.Manual.Label(), action: Action{Kind: ActionSetMode, Mode: world.Manual}},
		{label: world.Auto.Label(), action: Action{Kind: ActionSetMode, Mode: world.Auto}},
	}

	return []entry{
		{label: "Color theme", sub: themes},
		{label: "Scroll mode", sub: modes},
		{label: "Reset", action: Action{Kind: ActionReset}},
		{label: "Quit", action: Action{Kind: ActionQuit}},
	}
}

// Metrics sizes the menu in window coordinates.
type Metrics struct {
	CharWidth  float32
	LineHeight float32
	Padding    float32
}

// DefaultMetrics fits the 7x13 bitmap font at the given scale.
func DefaultMetrics(scale float32) Metrics {
	return Metrics{
		CharWidth:  7 * scale,
		LineHeight: 13 * scale,
		Padding:    5 * scale,
	}
}

func (m Metrics) itemHeight() float32 {
	return m.LineHeight + 2*m.Padding
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Item is one laid-out row of a panel.
type Item struct {
	Rect    Rect
	Label   string
	Hovered bool
	Active  bool // Current theme or mode
	HasSub  bool
}

// Panel is one laid-out menu column.
type Panel struct {
	Rect  Rect
	Items []Item
}

// Menu is the popup state. The zero value is not usable; call New.
type Menu struct {
	metrics Metrics
	root    []entry

	open     bool
	x, y     float32
	screenW  float32
	screenH  float32
	hover    int // Root row under the pointer, -1 for none
	sub      int // Root row whose submenu is shown, -1 for none
	subHover int
}

// New creates a closed menu.
func New(m Metrics) *Menu {
	return &Menu{
		metrics:  m,
		root:     rootEntries(),
		hover:    -1,
		sub:      -1,
		subHover: -1,
	}
}

// Open shows the root panel at (x, y), shifted to stay on a screen of the given size.
func (m *Menu) Open(x, y, screenW, screenH float32) {
	m.open = true
	m.x, m.y = x, y
	m.screenW, m.screenH = screenW, screenH
	m.hover, m.sub, m.subHover = -1, -1, -1
}

// Close hides the menu.
func (m *Menu) Close() {
	m.open = false
	m.hover, m.sub, m.subHover = -1, -1, -1
}

// IsOpen reports whether the menu is showing.
func (m *Menu) IsOpen() bool {
	return m.open
}

func (m *Menu) panelWidth(entries []entry) float32 {
	chars := 0
	for _, e := range entries {
		n := len(e.label) + 2 // room for the active marker
		if e.sub != nil {
			n += 2
		}
		chars = max(chars, n)
	}
	return float32(chars)*m.metrics.CharWidth + 2*m.metrics.Padding
}

func (m *Menu) rootRect() Rect {
	w := m.panelWidth(m.root)
	h := float32(len(m.root)) * m.metrics.itemHeight()
	return clampRect(Rect{m.x, m.y, w, h}, m.screenW, m.screenH)
}

func (m *Menu) subRect() Rect {
	rr := m.rootRect()
	entries := m.root[m.sub].sub
	w := m.panelWidth(entries)
	h := float32(len(entries)) * m.metrics.itemHeight()

	r := Rect{rr.X + rr.W, rr.Y + float32(m.sub)*m.metrics.itemHeight(), w, h}
	if m.screenW > 0 && r.X+r.W > m.screenW {
		r.X = rr.X - w
	}
	return clampRect(r, m.screenW, m.screenH)
}

func clampRect(r Rect, screenW, screenH float32) Rect {
	if screenW > 0 && r.X+r.W > screenW {
		r.X = screenW - r.W
	}
	if screenH > 0 && r.Y+r.H > screenH {
		r.Y = screenH - r.H
	}
	r.X = max(r.X, 0)
	r.Y = max(r.Y, 0)
	return r
}

func (m *Menu) rowAt(r Rect, n int, x, y float32) int {
	if !r.Contains(x, y) {
		return -1
	}
	row := int((y - r.Y) / m.metrics.itemHeight())
	if row >= n {
		return -1
	}
	return row
}

// Hover updates highlighting for a pointer at (x, y). Hovering a root row
// with a submenu opens it; the open submenu stays while the pointer is in it.
func (m *Menu) Hover(x, y float32) {
	if !m.open {
		return
	}

	if m.sub >= 0 {
		entries := m.root[m.sub].sub
		if row := m.rowAt(m.subRect(), len(entries), x, y); row >= 0 {
			m.subHover = row
			return
		}
		m.subHover = -1
	}

	row := m.rowAt(m.rootRect(), len(m.root), x, y)
	m.hover = row
	if row < 0 {
		return
	}
	if m.root[row].sub != nil {
		if m.sub != row {
			m.sub = row
			m.subHover = -1
		}
	} else {
		m.sub = -1
		m.subHover = -1
	}
}

// Click handles a button release at (x, y). A leaf item returns its action
// and closes the menu. A click outside the menu closes it with no action.
func (m *Menu) Click(x, y float32) (Action, bool) {
	if !m.open {
		return Action{}, false
	}
	m.Hover(x, y)

	if m.sub >= 0 && m.subHover >= 0 {
		a := m.root[m.sub].sub[m.subHover].action
		m.Close()
		return a, true
	}

	if m.hover >= 0 {
		e := m.root[m.hover]
		if e.sub != nil {
			// Parent rows only cascade.
			return Action{}, false
		}
		m.Close()
		return e.action, true
	}

	m.Close()
	return Action{}, false
}

// Panels lays out the visible panels, marking the active theme and mode.
func (m *Menu) Panels(active theme.ID, mode world.Mode) []Panel {
	if !m.open {
		return nil
	}

	panels := []Panel{m.layout(m.rootRect(), m.root, m.hover, active, mode)}
	if m.sub >= 0 {
		panels = append(panels, m.layout(m.subRect(), m.root[m.sub].sub, m.subHover, active, mode))
	}
	return panels
}

func (m *Menu) layout(r Rect, entries []entry, hover int, active theme.ID, mode world.Mode) Panel {
	ih := m.metrics.itemHeight()
	p := Panel{Rect: r, Items: make([]Item, len(entries))}
	for i, e := range entries {
		p.Items[i] = Item{
			Rect:    Rect{r.X, r.Y + float32(i)*ih, r.W, ih},
			Label:   e.label,
			Hovered: i == hover || (e.sub != nil && i == m.sub),
			Active:  e.isActive(active, mode),
			HasSub:  e.sub != nil,
		}
	}
	return p
}
