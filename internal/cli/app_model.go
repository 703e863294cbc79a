package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dgilligan/folio/internal/cli/formatter"
	"github.com/dgilligan/folio/internal/modal"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack with the page at the bottom and draws the
// role and certificate dialogs over it.
type appModel struct {
	state     *SharedState
	viewStack []View
	status    string
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)
	return appModel{
		state:     state,
		viewStack: []View{newPageView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case statusMsg:
		m.status = msg.text
		return m, nil

	case themeChangedMsg:
		return m, m.broadcast(msg)
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// broadcast sends msg to every view on the stack.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// The contact form receives every key, including q and t.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "t":
		t := m.state.App.Theme.Toggle()
		m.status = "Theme: " + t.String()
		return m, themeChanged
	}

	// An open dialog traps the remaining keys.
	if m.state.Modals.AnyOpen() {
		switch msg.String() {
		case "esc", "x":
			m.state.Modals.CloseTop()
		}
		return m, nil
	}

	if msg.String() == "c" {
		m.status = ""
		return m, startContactWizard(m.state)
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state.Modals.AnyOpen() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			bounds, ok := m.modalBounds()
			if ok {
				m.state.Modals.Click(modal.HitTest(msg.X, msg.Y, bounds))
			}
		}
		return m, nil
	}
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	content := ""
	if v := m.activeView(); v != nil && v.ID() != ViewPage {
		content = v.View()
	} else if box, ok := m.renderModal(); ok {
		content = m.placeOverlay(box)
	} else if v != nil {
		content = v.View()
	}
	sections = append(sections, content)
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	p := m.state.Palette
	prof := m.state.App.Feed.Profile
	title := p.NameStyle(prof.DisplayName())
	if prof.Tagline != "" {
		title += " " + p.Faint("· "+prof.Tagline)
	}
	if v := m.activeView(); v != nil && v.Title() != "" {
		title += " " + p.Faint("› "+v.Title())
	}
	badge := p.ThemeBadge(m.state.App.Theme.Current())
	gap := max(m.state.Width-lipgloss.Width(title)-lipgloss.Width(badge), 2)
	header := title + strings.Repeat(" ", gap) + badge

	sep := p.Faint(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	p := m.state.Palette
	var hints []string
	switch {
	case m.state.Modals.AnyOpen() && !m.contactOpen():
		hints = append(hints, p.Faint("esc/x: close"), p.Faint("t: theme"), p.Faint("q: quit"))
		if m.state.Modals.Top() == modal.KindCertificate {
			if _, ok := m.state.Modals.ActiveRole(); ok {
				hints = append(hints, p.Faint("(role open beneath)"))
			}
		}
	default:
		if v := m.activeView(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, p.Faint(b.Help().Key+": "+b.Help().Desc))
			}
		}
	}

	sep := p.Faint(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + p.Text(m.status) + "\n" + strings.Join(hints, "  ")
}

// modalWidth is the outer width of a dialog box.
func (m *appModel) modalWidth() int {
	return max(min(m.state.Width-4, 76), 24)
}

// renderModal renders the top dialog box, if any.
func (m *appModel) renderModal() (string, bool) {
	p := m.state.Palette
	w := m.modalWidth()
	inner := w - 8
	switch m.state.Modals.Top() {
	case modal.KindCertificate:
		c, _ := m.state.Modals.ActiveCert()
		return p.ModalBox(c.Title, formatter.FormatCertificateDetail(p, c), w), true
	case modal.KindRole:
		r, _ := m.state.Modals.ActiveRole()
		return p.ModalBox(r.Title, formatter.FormatRoleDetail(p, r, inner), w), true
	}
	return "", false
}

// placeOverlay centers box in the content area over a shaded backdrop.
func (m *appModel) placeOverlay(box string) string {
	p := m.state.Palette
	return lipgloss.Place(m.state.Width, m.state.ContentHeight(), lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(p.Shade),
	)
}

// modalBounds returns the screen rectangle of the top dialog, matching
// the centering done by placeOverlay.
func (m *appModel) modalBounds() (modal.Bounds, bool) {
	box, ok := m.renderModal()
	if !ok {
		return modal.Bounds{}, false
	}
	return modal.Center(0, headerLines, m.state.Width, m.state.ContentHeight(),
		lipgloss.Width(box), lipgloss.Height(box)), true
}

func (m *appModel) contactOpen() bool {
	v := m.activeView()
	return v != nil && v.ID() == ViewContact
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewContact
}
