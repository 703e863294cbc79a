package cli

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dgilligan/folio/internal/contact"
	"github.com/dgilligan/folio/internal/modal"
	"github.com/dgilligan/folio/internal/preference"
	"github.com/dgilligan/folio/internal/teatest"
	"github.com/dgilligan/folio/internal/testutil"
	"github.com/dgilligan/folio/internal/theme"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// testApp wires an App over the test feed, an in-memory store and a
// recording navigator. The returned recorder sees every contact submission.
func testApp(t *testing.T) (*App, *contact.RecordingNavigator) {
	t.Helper()
	store := preference.NewMemoryStore()
	rec := &contact.RecordingNavigator{}
	return &App{
		Feed:    testutil.NewTestFeed(),
		Store:   store,
		Signal:  theme.StaticSignal(false),
		Theme:   theme.New(store, theme.StaticSignal(false)),
		Contact: contact.NewAdapter(rec, nil),
	}, rec
}

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at the given terminal size
// and drains Init().
func NewTestDriver(t *testing.T, app *App, w, h int) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(w, h))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ModalBounds returns where the top modal is drawn.
func (d *TestDriver) ModalBounds() (modal.Bounds, bool) {
	m := d.appModel()
	return m.modalBounds()
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Page returns the page view at the bottom of the stack.
func (d *TestDriver) Page() *pageView {
	return d.appModel().viewStack[0].(*pageView)
}

// Status returns the status line text.
func (d *TestDriver) Status() string {
	return d.appModel().status
}

// IsQuitting reports whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// ClickCard clicks the first row of card i at the current scroll offset.
func (d *TestDriver) ClickCard(i int) {
	d.T.Helper()
	p := d.Page()
	d.Click(4, headerLines+p.cards[i].top-p.vp.YOffset)
}

func wheelDown(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
}
