package domain

import "time"

// ClickEvent as seen by the read side. ID is the store's own record identity
// (bigserial); the records carry no other attributes.
type ClickEvent struct {
	ID        int64
	ClickTime time.Time
}
