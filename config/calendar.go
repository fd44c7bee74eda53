package config

import "fmt"

// CalendarConfig holds the Google Calendar settings.
type CalendarConfig struct {
	// CalendarID selects the calendar to read; "primary" is the user's own.
	CalendarID string `json:"calendar_id"`
	// CredentialsFile is the OAuth client secrets JSON downloaded from the
	// Google Cloud console.
	CredentialsFile string `json:"credentials_file"`
	// TokenFile caches the user's OAuth token between runs.
	TokenFile string `json:"token_file"`
	// Days is the default fetch window: positive for upcoming days, negative
	// for past full days.
	Days int `json:"days"`
}

// SetDefaults applies sane defaults.
func (c *CalendarConfig) SetDefaults() {
	if c.CalendarID == "" {
		c.CalendarID = "primary"
	}
	if c.TokenFile == "" {
		c.TokenFile = ".workspace/calendar_token.json"
	}
	if c.Days == 0 {
		c.Days = 7
	}
}

// Validate checks mandatory fields.
func (c CalendarConfig) Validate() error {
	if c.CredentialsFile == "" {
		return fmt.Errorf("calendar credentials_file is required")
	}
	return nil
}
