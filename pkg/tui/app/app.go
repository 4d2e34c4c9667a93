// Package teaui hosts the Bubble Tea program for the movement logger.
package teaui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	appsvc "tableflip.dev/movimientos/pkg/app"
	"tableflip.dev/movimientos/pkg/movement"
	"tableflip.dev/movimientos/pkg/store"
	"tableflip.dev/movimientos/pkg/tui/theme"
)

// gridColumns is how many type buttons fit on one row of the home screen.
const gridColumns = 4

// field is the focused control of the comment form.
type field int

const (
	fieldComment field = iota
	fieldCart
	fieldZone
)

// Options tune a Run.
type Options struct {
	// Watch refreshes the screens when another process changes the store.
	Watch bool
}

// Model contains UI state. Domain state lives in the wrapped App; the model
// only keeps cursors and text inputs.
type Model struct {
	app   *appsvc.App
	ctx   context.Context
	theme theme.Theme
	watch bool

	homeCursor    int
	manageCursor  int
	historyCursor int

	focus       field
	comment     textinput.Model
	typeName    textinput.Model
	editName    textinput.Model
	editComment textinput.Model
	editFocus   int
	day         textinput.Model

	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "> "
	return ti
}

// New creates a UI model over a. The caller should have refreshed a once.
func New(a *appsvc.App) Model {
	m := Model{
		app:         a,
		ctx:         context.Background(),
		theme:       theme.Default(),
		comment:     newInput("Comentario (opcional)", 256),
		typeName:    newInput("Nombre del botón", 64),
		editName:    newInput("Movimiento", 64),
		editComment: newInput("Comentario", 256),
		day:         newInput("AAAA-MM-DD", 10),
	}
	m.day.SetValue(a.PDFDay())
	m.syncFocus()
	return m
}

// messages
type refreshMsg struct{}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Init loads initial data and, when enabled, starts watching the store.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{func() tea.Msg { return refreshMsg{} }}
	if m.watch {
		cmds = append(cmds, startWatchCmd(m.ctx, m.app.Persistence))
	}
	return tea.Batch(cmds...)
}

func startWatchCmd(parent context.Context, p store.Persistence) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// reload re-reads the cache and, on the pdf screen, the preview.
func (m *Model) reload() {
	_ = m.app.Refresh(m.ctx)
	if m.app.Screen() == appsvc.ScreenPDF {
		_ = m.app.LoadPreview(m.ctx)
	}
	m.clampCursors()
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case refreshMsg:
		m.reload()
	case watchStartedMsg:
		if msg.err != nil {
			m.app.Log.Warn().Err(msg.err).Msg("watch disabled")
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.app.Log.Debug().Str("table", msg.event.Table).Msg("store changed")
		m.reload()
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.stopWatch()
		return tea.Quit
	case "f1":
		return m.navigate(appsvc.ScreenHome)
	case "f2":
		return m.navigate(appsvc.ScreenManage)
	case "f3":
		return m.navigate(appsvc.ScreenHistory)
	case "f4":
		return m.navigate(appsvc.ScreenPDF)
	case "esc":
		if m.app.Notice().Text != "" {
			m.app.DismissNotice()
			return nil
		}
		switch m.app.Screen() {
		case appsvc.ScreenComment:
			m.app.CancelComment()
		case appsvc.ScreenEdit:
			m.app.CancelEdit()
		case appsvc.ScreenHome:
		default:
			m.app.Navigate(appsvc.ScreenHome)
		}
		m.syncFocus()
		return nil
	}

	switch m.app.Screen() {
	case appsvc.ScreenHome:
		return m.homeKey(msg)
	case appsvc.ScreenComment:
		return m.commentKey(msg)
	case appsvc.ScreenManage:
		return m.manageKey(msg)
	case appsvc.ScreenHistory:
		return m.historyKey(msg)
	case appsvc.ScreenEdit:
		return m.editKey(msg)
	case appsvc.ScreenPDF:
		return m.pdfKey(msg)
	}
	return nil
}

func (m *Model) navigate(to appsvc.Screen) tea.Cmd {
	m.app.Navigate(to)
	if m.app.Screen() == appsvc.ScreenPDF {
		_ = m.app.LoadPreview(m.ctx)
	}
	m.syncFocus()
	return nil
}

// syncFocus points keyboard input at the text field of the current screen.
func (m *Model) syncFocus() {
	for _, in := range []*textinput.Model{&m.comment, &m.typeName, &m.editName, &m.editComment, &m.day} {
		in.Blur()
	}
	switch m.app.Screen() {
	case appsvc.ScreenComment:
		if m.focus == fieldComment {
			m.comment.Focus()
		}
	case appsvc.ScreenManage:
		m.typeName.Focus()
	case appsvc.ScreenEdit:
		if m.editFocus == 0 {
			m.editName.Focus()
		} else {
			m.editComment.Focus()
		}
	case appsvc.ScreenPDF:
		m.day.Focus()
	}
}

func (m *Model) clampCursors() {
	clamp := func(c, n int) int {
		if c >= n {
			c = n - 1
		}
		if c < 0 {
			c = 0
		}
		return c
	}
	m.homeCursor = clamp(m.homeCursor, len(m.app.Types()))
	m.manageCursor = clamp(m.manageCursor, len(m.app.Types()))
	m.historyCursor = clamp(m.historyCursor, len(m.app.Movements()))
}

func (m *Model) homeKey(msg tea.KeyMsg) tea.Cmd {
	types := m.app.Types()
	switch msg.String() {
	case "q":
		m.stopWatch()
		return tea.Quit
	case "left", "h":
		m.homeCursor--
	case "right", "l":
		m.homeCursor++
	case "up", "k":
		m.homeCursor -= gridColumns
	case "down", "j":
		m.homeCursor += gridColumns
	case "enter", " ":
		if len(types) == 0 {
			return nil
		}
		m.app.SelectType(types[m.homeCursor])
		m.focus = fieldComment
		m.comment.Reset()
		m.syncFocus()
		return textinput.Blink
	}
	if m.homeCursor < 0 {
		m.homeCursor = 0
	}
	m.clampCursors()
	return nil
}

func (m *Model) commentFields() []field {
	if sel, ok := m.app.Selected(); ok && sel.RequiresCartZone() {
		return []field{fieldCart, fieldZone, fieldComment}
	}
	return []field{fieldComment}
}

func (m *Model) commentKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab":
		fields := m.commentFields()
		step := 1
		if msg.String() == "shift+tab" {
			step = len(fields) - 1
		}
		for i, f := range fields {
			if f == m.focus {
				m.focus = fields[(i+step)%len(fields)]
				break
			}
		}
		m.syncFocus()
		return nil
	case "enter":
		m.app.SetComment(m.comment.Value())
		if err := m.app.CreateMovement(m.ctx); err != nil {
			return nil
		}
		m.comment.Reset()
		m.focus = fieldComment
		m.clampCursors()
		m.syncFocus()
		return nil
	}

	switch m.focus {
	case fieldCart:
		m.stepNumber(msg.String(), m.app.Cart(), movement.CartMax, m.app.SetCart)
		return nil
	case fieldZone:
		m.stepNumber(msg.String(), m.app.Zone(), movement.ZoneMax, m.app.SetZone)
		return nil
	}

	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	m.app.SetComment(m.comment.Value())
	return cmd
}

// stepNumber moves a cart or zone choice through unset, 1..max and back.
func (m *Model) stepNumber(key string, cur, max int, set func(int) error) {
	switch key {
	case "right", "l", "+", "up", "k":
		cur++
	case "left", "h", "-", "down", "j":
		cur--
	case "backspace", "delete", "0":
		cur = 0
	default:
		return
	}
	if cur > max {
		cur = 0
	}
	if cur < 0 {
		cur = max
	}
	_ = set(cur)
}

func (m *Model) manageKey(msg tea.KeyMsg) tea.Cmd {
	types := m.app.Types()
	switch msg.String() {
	case "enter":
		if err := m.app.CreateType(m.ctx, m.typeName.Value()); err == nil {
			m.typeName.Reset()
		}
		m.clampCursors()
		return nil
	case "up":
		if m.manageCursor > 0 {
			m.manageCursor--
		}
		return nil
	case "down":
		if m.manageCursor < len(types)-1 {
			m.manageCursor++
		}
		return nil
	case "ctrl+d", "delete":
		if len(types) > 0 {
			_ = m.app.DeleteType(m.ctx, types[m.manageCursor].ID)
			m.clampCursors()
		}
		return nil
	}
	var cmd tea.Cmd
	m.typeName, cmd = m.typeName.Update(msg)
	return cmd
}

func (m *Model) historyKey(msg tea.KeyMsg) tea.Cmd {
	rows := m.app.Movements()
	switch msg.String() {
	case "q":
		m.stopWatch()
		return tea.Quit
	case "up", "k":
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case "down", "j":
		if m.historyCursor < len(rows)-1 {
			m.historyCursor++
		}
	case "enter", "e":
		if len(rows) == 0 {
			return nil
		}
		m.app.OpenEdit(rows[m.historyCursor])
		m.editName.SetValue(m.app.EditName())
		m.editName.CursorEnd()
		m.editComment.SetValue(m.app.EditComment())
		m.editComment.CursorEnd()
		m.editFocus = 0
		m.syncFocus()
		return textinput.Blink
	case "d", "x", "delete":
		if len(rows) > 0 {
			_ = m.app.DeleteMovement(m.ctx, rows[m.historyCursor].ID)
			m.clampCursors()
		}
	}
	return nil
}

func (m *Model) editKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.editFocus = 1 - m.editFocus
		m.syncFocus()
		return nil
	case "enter":
		m.app.SetEditName(m.editName.Value())
		m.app.SetEditComment(m.editComment.Value())
		_ = m.app.SaveEdit(m.ctx)
		m.clampCursors()
		m.syncFocus()
		return nil
	}

	var cmd tea.Cmd
	if m.editFocus == 0 {
		m.editName, cmd = m.editName.Update(msg)
	} else {
		m.editComment, cmd = m.editComment.Update(msg)
	}
	return cmd
}

func (m *Model) pdfKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		if err := m.app.SetPDFDay(m.day.Value()); err != nil {
			m.app.Reject("Día inválido, usa AAAA-MM-DD")
			return nil
		}
		_, _ = m.app.ExportDay(m.ctx, m.app.PDFDay())
		return nil
	}

	var cmd tea.Cmd
	m.day, cmd = m.day.Update(msg)
	if day := m.day.Value(); day != m.app.PDFDay() {
		if err := m.app.SetPDFDay(day); err == nil {
			_ = m.app.LoadPreview(m.ctx)
		}
	}
	return cmd
}

// Run launches the Bubble Tea UI over a.
func Run(a *appsvc.App, opts Options) error {
	m := New(a)
	m.watch = opts.Watch
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
