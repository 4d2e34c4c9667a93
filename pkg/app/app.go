// Package app is the application state machine behind every screen: it owns
// the in-memory cache of types and recent movements, the fields of whichever
// form is active, and it mediates every store mutation and screen change.
//
// An App is driven by one user at a time and is not safe for concurrent use.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tableflip.dev/movimientos/pkg/movement"
	"tableflip.dev/movimientos/pkg/store"
	"tableflip.dev/movimientos/pkg/timeutil"
)

const (
	// HistoryLimit bounds the cached movement window shown in history.
	HistoryLimit = 80
	// HomeRecent is how many cached movements the home screen lists.
	HomeRecent = 20
	// PreviewLimit is how many rows the PDF screen previews.
	PreviewLimit = 30
)

// ErrInvalidInput marks values the UI would never produce, such as a cart
// outside 1–26 or a malformed day-key.
var ErrInvalidInput = errors.New("app: invalid input")

// Exporter saves a day report and returns where it was written.
type Exporter interface {
	ExportDay(ctx context.Context, dayKey string) (string, error)
}

// Notice is a dismissible message for the user. Error notices report a
// failed operation whose effects were not applied.
type Notice struct {
	Text  string
	Error bool
}

// App holds the current screen, the cached data and the active form fields.
type App struct {
	Persistence store.Persistence
	Exporter    Exporter
	Now         func() time.Time
	Log         zerolog.Logger

	screen    Screen
	types     []movement.Type
	movements []movement.Movement

	selected *movement.Type
	comment  string
	cart     int
	zone     int

	editID      int64
	editName    string
	editComment string

	pdfDay       string
	preview      []movement.Movement
	previewTotal int

	notice Notice
}

// New returns an App on the home screen with the PDF day set to today. Call
// Refresh to fill the cache.
func New(p store.Persistence, e Exporter) *App {
	return &App{
		Persistence: p,
		Exporter:    e,
		Now:         time.Now,
		Log:         log.With().Str("component", "app").Logger(),
		pdfDay:      timeutil.DayKey(time.Now()),
	}
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) fire(kind EventKind) bool {
	next := Next(a.screen, Event{Kind: kind})
	if next == a.screen {
		return false
	}
	a.screen = next
	return true
}

// fail records err as an error notice and returns it. In-memory state is not
// touched, so the user can retry.
func (a *App) fail(msg string, err error) error {
	a.Log.Error().Err(err).Str("screen", a.screen.String()).Msg(msg)
	a.notice = Notice{Text: fmt.Sprintf("%s: %v", msg, err), Error: true}
	return err
}

func (a *App) inform(format string, args ...interface{}) {
	a.notice = Notice{Text: fmt.Sprintf(format, args...)}
}

// Reject shows text as an error notice for input the UI refused before it
// reached the store.
func (a *App) Reject(text string) {
	a.Log.Debug().Str("screen", a.screen.String()).Msg(text)
	a.notice = Notice{Text: text, Error: true}
}

// Screen returns the current screen.
func (a *App) Screen() Screen { return a.screen }

// Navigate follows a top-bar link. Only home, manage, history and pdf are
// reachable this way.
func (a *App) Navigate(to Screen) {
	a.screen = Next(a.screen, Navigate(to))
}

// Types returns the cached types ordered by name.
func (a *App) Types() []movement.Type { return a.types }

// Movements returns the cached history window, newest first.
func (a *App) Movements() []movement.Movement { return a.movements }

// Recent returns at most n of the newest cached movements.
func (a *App) Recent(n int) []movement.Movement {
	if n < len(a.movements) {
		return a.movements[:n]
	}
	return a.movements
}

// TypeNamed finds a cached type by exact name, then by trimmed
// case-insensitive name.
func (a *App) TypeNamed(name string) (movement.Type, bool) {
	for _, t := range a.types {
		if t.Name == name {
			return t, true
		}
	}
	trimmed := strings.TrimSpace(name)
	for _, t := range a.types {
		if strings.EqualFold(strings.TrimSpace(t.Name), trimmed) {
			return t, true
		}
	}
	return movement.Type{}, false
}

// Notice returns the pending message, if any.
func (a *App) Notice() Notice { return a.notice }

// DismissNotice clears the pending message.
func (a *App) DismissNotice() { a.notice = Notice{} }

// Refresh re-reads every type and the newest HistoryLimit movements. The
// cache is replaced only when both reads succeed.
func (a *App) Refresh(ctx context.Context) error {
	types, err := a.Persistence.Types(ctx)
	if err != nil {
		return a.fail("No se pudieron leer los botones", err)
	}
	movements, err := a.Persistence.RecentMovements(ctx, HistoryLimit)
	if err != nil {
		return a.fail("No se pudieron leer los movimientos", err)
	}
	a.types, a.movements = types, movements
	return nil
}

// CreateType adds a type named by the trimmed name. Blank names and names
// already stored are ignored without error.
func (a *App) CreateType(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	_, exists, err := a.Persistence.TypeByName(ctx, trimmed)
	if err != nil {
		return a.fail("No se pudo crear el botón", err)
	}
	if exists {
		return nil
	}
	t := movement.Type{
		Name:      trimmed,
		CreatedAt: timeutil.FormatTimestamp(a.now()),
		CartZone:  movement.IsCartZoneType(trimmed),
	}
	if _, err := a.Persistence.AddType(ctx, t); err != nil {
		return a.fail("No se pudo crear el botón", err)
	}
	a.inform("Botón creado: %s", trimmed)
	return a.Refresh(ctx)
}

// DeleteType removes a type. Movements that reference it are kept; their
// name snapshot still describes them.
func (a *App) DeleteType(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	if err := a.Persistence.DeleteType(ctx, id); err != nil {
		return a.fail("No se pudo borrar el botón", err)
	}
	return a.Refresh(ctx)
}

// SelectType opens the comment form for t with blank comment, cart and zone.
// It only applies on the home screen.
func (a *App) SelectType(t movement.Type) {
	if !a.fire(EventSelectType) {
		return
	}
	a.selected = &t
	a.resetComment()
}

// Selected returns the type whose comment form is open.
func (a *App) Selected() (movement.Type, bool) {
	if a.selected == nil {
		return movement.Type{}, false
	}
	return *a.selected, true
}

// SetComment sets the free-text comment of the open form.
func (a *App) SetComment(s string) { a.comment = s }

// Comment returns the free-text comment of the open form.
func (a *App) Comment() string { return a.comment }

// SetCart sets the cart number; 0 clears it.
func (a *App) SetCart(n int) error {
	if !movement.ValidCart(n) {
		return fmt.Errorf("%w: cart %d outside %d-%d", ErrInvalidInput, n, movement.CartMin, movement.CartMax)
	}
	a.cart = n
	return nil
}

// SetZone sets the zone number; 0 clears it.
func (a *App) SetZone(n int) error {
	if !movement.ValidZone(n) {
		return fmt.Errorf("%w: zone %d outside %d-%d", ErrInvalidInput, n, movement.ZoneMin, movement.ZoneMax)
	}
	a.zone = n
	return nil
}

// Cart returns the selected cart, 0 when unset.
func (a *App) Cart() int { return a.cart }

// Zone returns the selected zone, 0 when unset.
func (a *App) Zone() int { return a.zone }

// CancelComment discards the open form and returns home.
func (a *App) CancelComment() {
	a.selected = nil
	a.resetComment()
	a.fire(EventCancelComment)
}

func (a *App) resetComment() {
	a.comment = ""
	a.cart = 0
	a.zone = 0
}

// CreateMovement stores a movement for the selected type, stamped with the
// current time. Cart and zone are folded into the comment for types that
// collect them. Without a persisted selected type it does nothing.
func (a *App) CreateMovement(ctx context.Context) error {
	if a.selected == nil || a.selected.ID == 0 {
		return nil
	}
	stamp := timeutil.StampAt(a.now())

	comment := strings.TrimSpace(a.comment)
	if a.selected.RequiresCartZone() {
		comment = movement.ComposeComment(a.comment, a.cart, a.zone)
	}

	m := movement.Movement{
		MovementTypeID: a.selected.ID,
		MovementName:   a.selected.Name,
		Comment:        comment,
		Ts:             stamp.Ts,
		HHMMSS:         stamp.HHMMSS,
		DayKey:         stamp.DayKey,
	}
	if _, err := a.Persistence.AddMovement(ctx, m); err != nil {
		return a.fail("No se pudo guardar el movimiento", err)
	}

	a.selected = nil
	a.resetComment()
	a.inform("Movimiento guardado %s", stamp.HHMMSS)
	err := a.Refresh(ctx)
	a.fire(EventMovementSaved)
	return err
}

// DeleteMovement removes a movement immediately.
func (a *App) DeleteMovement(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	if err := a.Persistence.DeleteMovement(ctx, id); err != nil {
		return a.fail("No se pudo eliminar el movimiento", err)
	}
	return a.Refresh(ctx)
}

// OpenEdit loads m into the edit form. It only applies on the history screen.
func (a *App) OpenEdit(m movement.Movement) {
	if !a.fire(EventOpenEdit) {
		return
	}
	a.editID = m.ID
	a.editName = m.MovementName
	a.editComment = m.Comment
}

// EditID returns the id being edited, 0 when no edit is open.
func (a *App) EditID() int64 { return a.editID }

// EditName returns the name field of the edit form.
func (a *App) EditName() string { return a.editName }

// EditComment returns the comment field of the edit form.
func (a *App) EditComment() string { return a.editComment }

// SetEditName sets the name field of the edit form.
func (a *App) SetEditName(s string) { a.editName = s }

// SetEditComment sets the comment field of the edit form.
func (a *App) SetEditComment(s string) { a.editComment = s }

// SaveEdit writes the edited name and comment, both trimmed. An empty name
// becomes movement.EditFallbackName. Timestamps are never changed.
func (a *App) SaveEdit(ctx context.Context) error {
	if a.editID == 0 {
		return nil
	}
	name := movement.EditedName(a.editName)
	comment := strings.TrimSpace(a.editComment)
	if err := a.Persistence.UpdateMovement(ctx, a.editID, movement.Patch{MovementName: &name, Comment: &comment}); err != nil {
		return a.fail("No se pudo guardar la edición", err)
	}
	a.clearEdit()
	err := a.Refresh(ctx)
	a.fire(EventEditSaved)
	return err
}

// CancelEdit discards the edit form and returns to history.
func (a *App) CancelEdit() {
	a.clearEdit()
	a.fire(EventCancelEdit)
}

func (a *App) clearEdit() {
	a.editID = 0
	a.editName = ""
	a.editComment = ""
}

// PDFDay returns the day chosen for export.
func (a *App) PDFDay() string { return a.pdfDay }

// SetPDFDay chooses the export day. The preview is cleared until the next
// LoadPreview.
func (a *App) SetPDFDay(dayKey string) error {
	if !timeutil.ValidDayKey(dayKey) {
		return fmt.Errorf("%w: day %q is not YYYY-MM-DD", ErrInvalidInput, dayKey)
	}
	if dayKey != a.pdfDay {
		a.preview, a.previewTotal = nil, 0
	}
	a.pdfDay = dayKey
	return nil
}

// LoadPreview reads the movements of the chosen day, in creation order, and
// keeps the first PreviewLimit of them.
func (a *App) LoadPreview(ctx context.Context) error {
	rows, err := a.Persistence.MovementsForDay(ctx, a.pdfDay)
	if err != nil {
		return a.fail("No se pudo leer el día", err)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	a.previewTotal = len(rows)
	if len(rows) > PreviewLimit {
		rows = rows[:PreviewLimit]
	}
	a.preview = rows
	return nil
}

// Preview returns the previewed rows and the total found for the day.
func (a *App) Preview() ([]movement.Movement, int) {
	return a.preview, a.previewTotal
}

// ExportDay saves the report for dayKey. It changes nothing but the notice.
func (a *App) ExportDay(ctx context.Context, dayKey string) (string, error) {
	if !timeutil.ValidDayKey(dayKey) {
		return "", fmt.Errorf("%w: day %q is not YYYY-MM-DD", ErrInvalidInput, dayKey)
	}
	if a.Exporter == nil {
		return "", a.fail("No se pudo exportar", errors.New("no exporter configured"))
	}
	path, err := a.Exporter.ExportDay(ctx, dayKey)
	if err != nil {
		return "", a.fail("No se pudo exportar", err)
	}
	a.inform("PDF guardado en %s", path)
	return path, nil
}
