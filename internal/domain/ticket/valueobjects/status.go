package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in-progress"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

func (s TicketStatus) IsClosed() bool {
	return s == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	st := TicketStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
