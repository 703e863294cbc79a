package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dgilligan/folio/internal/cli/formatter"
	"github.com/dgilligan/folio/internal/domain"
	"github.com/dgilligan/folio/internal/modal"
)

// pageCard is a selectable card and the lines it occupies in the page.
type pageCard struct {
	kind  modal.Kind
	role  domain.Role
	cert  domain.Certificate
	top   int
	lines int
}

// pageView renders the whole portfolio in a scrollable viewport. Roles and
// certificates with an image are cards that take focus and open a dialog.
type pageView struct {
	state *SharedState
	vp    viewport.Model
	cards []pageCard
	focus int
}

func newPageView(state *SharedState) *pageView {
	vp := viewport.New(0, 0)
	vp.KeyMap = pageKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	v := &pageView{state: state, vp: vp, focus: -1}
	v.resize()
	return v
}

func (v *pageView) Init() tea.Cmd { return nil }

func (v *pageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case themeChangedMsg:
		v.rebuild()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.moveFocus(1)
			return v, nil
		case "shift+tab":
			v.moveFocus(-1)
			return v, nil
		case "enter":
			return v, v.openFocused()
		}
		if v.state.ScrollFrozen {
			return v, nil
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd

	case tea.MouseMsg:
		if v.state.ScrollFrozen {
			return v, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := v.cardAt(msg.Y); i >= 0 {
				v.setFocus(i)
				return v, v.openFocused()
			}
			return v, nil
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *pageView) View() string {
	return v.vp.View()
}

func (v *pageView) ID() ViewID    { return ViewPage }
func (v *pageView) Title() string { return "" }
func (v *pageView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next card")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// Focused returns the focused card index, or -1.
func (v *pageView) Focused() int { return v.focus }

func (v *pageView) resize() {
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.rebuild()
}

func (v *pageView) moveFocus(delta int) {
	n := len(v.cards)
	if n == 0 {
		return
	}
	next := v.focus + delta
	if v.focus < 0 && delta < 0 {
		next = n - 1
	}
	v.setFocus(((next % n) + n) % n)
}

func (v *pageView) setFocus(i int) {
	v.focus = i
	v.rebuild()
	c := v.cards[i]
	if c.top < v.vp.YOffset || c.top+c.lines > v.vp.YOffset+v.vp.Height {
		v.vp.SetYOffset(c.top)
	}
}

// openFocused hands the focused card to the modal controller.
func (v *pageView) openFocused() tea.Cmd {
	if v.focus < 0 || v.focus >= len(v.cards) {
		return nil
	}
	c := v.cards[v.focus]
	switch c.kind {
	case modal.KindRole:
		v.state.Modals.SelectRole(c.role)
	case modal.KindCertificate:
		if !v.state.Modals.SelectCert(c.cert) {
			return setStatus("No image for " + c.cert.Title)
		}
	}
	return nil
}

// cardAt maps a screen row to the card drawn there, or -1.
func (v *pageView) cardAt(screenY int) int {
	row := screenY - headerLines
	if row < 0 || row >= v.vp.Height {
		return -1
	}
	line := v.vp.YOffset + row
	for i, c := range v.cards {
		if line >= c.top && line < c.top+c.lines {
			return i
		}
	}
	return -1
}

// rebuild re-renders the page content and card positions, keeping the
// scroll offset.
func (v *pageView) rebuild() {
	p := v.state.Palette
	feed := v.state.App.Feed
	w := v.state.ContentWidth()

	var b pageBuilder
	v.cards = v.cards[:0]
	card := func(c pageCard, block string) {
		c.top = b.add(block, 0)
		c.lines = lipgloss.Height(block)
		v.cards = append(v.cards, c)
	}
	focused := func() bool { return len(v.cards) == v.focus }

	b.add(formatter.FormatHero(p, feed.Profile, w), 1)
	if len(feed.Profile.About) > 0 {
		b.add(formatter.FormatAbout(p, feed.Profile, w), 1)
	}

	if len(feed.Roles) > 0 {
		b.add(p.Header("Work experience"), 1)
		for _, r := range feed.Roles {
			card(pageCard{kind: modal.KindRole, role: r}, formatter.RoleCard(p, r, focused(), w))
		}
	}
	b.add(formatter.FormatPartTime(p, feed.PreviousPartTime, w), 1)
	b.add(formatter.FormatContactSection(p, feed.Profile, w, "press c to write a message"), 1)
	b.add(formatter.FormatQualifications(p, feed.Qualifications, w), 1)

	if len(feed.Certificates) > 0 {
		b.add(p.Header("Certificates"), 1)
		for _, c := range feed.Certificates {
			if !c.HasImage() {
				b.add(formatter.CertificateCard(p, c, false, w), 0)
				continue
			}
			card(pageCard{kind: modal.KindCertificate, cert: c}, formatter.CertificateCard(p, c, focused(), w))
		}
	}
	b.add(formatter.FormatErpSystems(p, feed.ErpSystems, w), 1)

	offset := v.vp.YOffset
	v.vp.SetContent(b.String())
	v.vp.SetYOffset(offset)
}

// pageBuilder joins blocks and tracks the line each block starts on.
type pageBuilder struct {
	sb    strings.Builder
	lines int
}

// add appends block after gap blank lines and returns its first line. Empty
// blocks are skipped and return -1.
func (b *pageBuilder) add(block string, gap int) int {
	if block == "" {
		return -1
	}
	start := 0
	if b.lines > 0 {
		b.sb.WriteString(strings.Repeat("\n", gap+1))
		start = b.lines + gap
	}
	b.sb.WriteString(block)
	b.lines = start + lipgloss.Height(block)
	return start
}

func (b *pageBuilder) String() string { return b.sb.String() }

// pageKeyMap restricts viewport scrolling to arrow, page and vi keys so the
// letter shortcuts stay free.
func pageKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}
