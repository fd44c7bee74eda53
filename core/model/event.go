package model

// AllDay is the time value used for events without a concrete start or end.
const AllDay = "All Day"

// CalendarEvent is a fetched meeting. Events are ephemeral: they carry no
// identity across runs.
type CalendarEvent struct {
	Title     string `json:"title"`
	Date      Date   `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location,omitempty"`
	Attendees int    `json:"attendees"`
}
