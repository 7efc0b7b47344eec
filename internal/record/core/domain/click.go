package domain

import "time"

// ClickEvent is one button-click occurrence. ClickTime is assigned by the
// server at record creation, never taken from the client.
type ClickEvent struct {
	ClickTime time.Time
}
