package app

import (
	"fmt"
	"strings"
)

// Screen is the view currently shown. Screens are flat; none nests in another.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenComment
	ScreenManage
	ScreenHistory
	ScreenEdit
	ScreenPDF
)

var screenNames = map[Screen]string{
	ScreenHome:    "home",
	ScreenComment: "comment",
	ScreenManage:  "manage",
	ScreenHistory: "history",
	ScreenEdit:    "edit",
	ScreenPDF:     "pdf",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// Navigable reports whether s can be reached directly from the top bar.
func (s Screen) Navigable() bool {
	switch s {
	case ScreenHome, ScreenManage, ScreenHistory, ScreenPDF:
		return true
	}
	return false
}

// ParseScreen resolves a screen name as printed by String.
func ParseScreen(name string) (Screen, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range screenNames {
		if n == name {
			return s, nil
		}
	}
	return ScreenHome, fmt.Errorf("%w: unknown screen %q", ErrInvalidInput, name)
}

// EventKind names a user action that may change the screen.
type EventKind int

const (
	EventNavigate EventKind = iota
	EventSelectType
	EventCancelComment
	EventMovementSaved
	EventOpenEdit
	EventCancelEdit
	EventEditSaved
)

// Event is a user action. To is only read for EventNavigate.
type Event struct {
	Kind EventKind
	To   Screen
}

// Navigate builds the top-bar navigation event.
func Navigate(to Screen) Event {
	return Event{Kind: EventNavigate, To: to}
}

// Next returns the screen that follows from after ev. Pairs with no defined
// transition leave the screen unchanged.
func Next(from Screen, ev Event) Screen {
	switch ev.Kind {
	case EventNavigate:
		if ev.To.Navigable() {
			return ev.To
		}
	case EventSelectType:
		if from == ScreenHome {
			return ScreenComment
		}
	case EventCancelComment, EventMovementSaved:
		if from == ScreenComment {
			return ScreenHome
		}
	case EventOpenEdit:
		if from == ScreenHistory {
			return ScreenEdit
		}
	case EventCancelEdit, EventEditSaved:
		if from == ScreenEdit {
			return ScreenHistory
		}
	}
	return from
}
