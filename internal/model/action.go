package model

// DateLayout is the wire and storage format for action dates.
const DateLayout = "2006-01-02"

// Action is a single sustainability action entry. The field order here is
// the order persisted to disk and returned over HTTP.
type Action struct {
	ID     int    `json:"id"`
	Action string `json:"action"`
	Date   string `json:"date"`
	Points int    `json:"points"`
}
