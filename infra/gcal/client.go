// Package gcal reads meetings from the Google Calendar API. OAuth tokens are
// cached on disk so only the first run needs a browser round-trip.
package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/planweave/planweave/config"
	"github.com/planweave/planweave/core/model"
	"github.com/planweave/planweave/infra/logger"
)

// Client reads events from one calendar.
type Client struct {
	srv        *calendar.Service
	calendarID string
	log        logger.Logger
}

// NewClient builds an authenticated calendar client. It requires a cached
// token; run Authorize first when none exists.
func NewClient(ctx context.Context, cfg config.CalendarConfig) (*Client, error) {
	oauthCfg, err := oauthConfig(cfg)
	if err != nil {
		return nil, err
	}
	tok, err := tokenFromFile(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("no cached calendar token (%w); run 'planweave calendar auth' first", err)
	}
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}
	return &Client{srv: srv, calendarID: cfg.CalendarID, log: logger.New("gcal-client")}, nil
}

// Authorize runs the manual OAuth flow: it prints the consent URL, reads the
// authorization code from stdin and caches the token for later runs.
func Authorize(ctx context.Context, cfg config.CalendarConfig) error {
	oauthCfg, err := oauthConfig(cfg)
	if err != nil {
		return err
	}
	url := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following URL in your browser, then paste the code here:\n%s\n> ", url)
	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}
	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	return saveToken(cfg.TokenFile, tok)
}

func oauthConfig(cfg config.CalendarConfig) (*oauth2.Config, error) {
	b, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	oauthCfg, err := google.ConfigFromJSON(b, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}
	return oauthCfg, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tok := &oauth2.Token{}
	if err := json.Unmarshal(b, tok); err != nil {
		return nil, fmt.Errorf("decode token file %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// ListEvents fetches events for a day window relative to now. Positive days
// cover today through the Nth upcoming day; negative days cover the last N
// full calendar days up to yesterday; zero is invalid. With fullDay set the
// window is today from midnight to midnight regardless of the current time.
func (c *Client) ListEvents(ctx context.Context, days int, fullDay bool) ([]model.CalendarEvent, error) {
	timeMin, timeMax, err := window(time.Now(), days, fullDay)
	if err != nil {
		return nil, err
	}

	var events []model.CalendarEvent
	pageToken := ""
	for {
		call := c.srv.Events.List(c.calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(250).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		for _, item := range res.Items {
			events = append(events, convert(item))
		}
		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	c.log.Infof("fetched %d events", len(events))
	return events, nil
}

func window(now time.Time, days int, fullDay bool) (time.Time, time.Time, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case fullDay:
		return startOfDay, startOfDay.AddDate(0, 0, 1), nil
	case days > 0:
		return now, startOfDay.AddDate(0, 0, days), nil
	case days < 0:
		return startOfDay.AddDate(0, 0, days), startOfDay, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("days must not be zero")
	}
}

func convert(item *calendar.Event) model.CalendarEvent {
	ev := model.CalendarEvent{
		Title:     item.Summary,
		Location:  item.Location,
		Attendees: len(item.Attendees),
		StartTime: model.AllDay,
		EndTime:   model.AllDay,
	}
	if ev.Title == "" {
		ev.Title = "No Title"
	}
	if item.Start != nil && item.Start.DateTime != "" {
		if start, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
			ev.Date = model.DateOf(start)
			ev.StartTime = start.Format("15:04")
		}
		if item.End != nil && item.End.DateTime != "" {
			if end, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
				ev.EndTime = end.Format("15:04")
			}
		}
	} else if item.Start != nil && item.Start.Date != "" {
		if d, err := model.ParseDate(item.Start.Date); err == nil {
			ev.Date = d
		}
	}
	return ev
}
