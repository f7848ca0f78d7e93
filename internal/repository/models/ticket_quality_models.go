package models

import "time"

// Rating is a single category rating recorded against a ticket, as read from
// storage. CreatedAt carries the calendar date only (midnight UTC).
type Rating struct {
	TicketID  int64
	Category  string
	Rating    int
	Weight    float64
	CreatedAt time.Time
}
