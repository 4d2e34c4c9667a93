// Package movement holds the two persisted record kinds of the logger and the
// rules that apply to them.
package movement

import "fmt"

// Type is a user-defined movement button. Names are unique among stored
// types; uniqueness is checked by the application before insert.
type Type struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	// CartZone marks types that collect a cart and zone. Records written
	// before the flag existed rely on the name match in RequiresCartZone.
	CartZone bool `json:"cartZone,omitempty"`
}

// RequiresCartZone reports whether movements of this type capture a cart and
// zone pair.
func (t Type) RequiresCartZone() bool {
	return t.CartZone || IsCartZoneType(t.Name)
}

func (t Type) String() string {
	return t.Name
}

// Movement is one logged warehouse event. Name is a snapshot of the type name
// at creation time, so later type changes never rewrite history. Ts, HHMMSS
// and DayKey are fixed at creation.
type Movement struct {
	ID             int64  `json:"id,omitempty"`
	MovementTypeID int64  `json:"movementTypeId"`
	MovementName   string `json:"movementName"`
	Comment        string `json:"comment"`
	Ts             string `json:"ts"`
	HHMMSS         string `json:"hhmmss"`
	DayKey         string `json:"dayKey"`
}

func (m Movement) String() string {
	if m.Comment == "" {
		return fmt.Sprintf("%s %s", m.HHMMSS, m.MovementName)
	}
	return fmt.Sprintf("%s %s: %s", m.HHMMSS, m.MovementName, m.Comment)
}

// Patch is a partial update of a Movement. Nil fields are left untouched.
type Patch struct {
	MovementName *string
	Comment      *string
}

// Apply writes the set fields of p onto m.
func (p Patch) Apply(m *Movement) {
	if p.MovementName != nil {
		m.MovementName = *p.MovementName
	}
	if p.Comment != nil {
		m.Comment = *p.Comment
	}
}
