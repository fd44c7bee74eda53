// Package jira fetches issues from the Jira Cloud search API and converts
// them into the planner's boundary records. Everything network-related lives
// here; the engine only ever sees the resulting slice.
package jira

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/planweave/planweave/config"
	"github.com/planweave/planweave/core/model"
	"github.com/planweave/planweave/infra/logger"
)

const searchPath = "/rest/api/3/search/jql"

// requestedFields keeps search payloads small: only what normalization needs.
var requestedFields = []string{
	"summary", "duedate", "assignee", "priority", "status", "issuetype",
	"parent", "project", "timeoriginalestimate", "fixVersions",
	fieldStartDate, fieldCustomers, fieldHealth,
}

// Client talks to one Jira instance.
type Client struct {
	http      *resty.Client
	log       logger.Logger
	queryFile string
	pageSize  int
}

// NewClient builds a client from configuration. Credentials fall back to the
// JIRA_EMAIL and JIRA_API_KEY environment variables.
func NewClient(cfg config.JiraConfig) (*Client, error) {
	email := cfg.Email
	if email == "" {
		email = os.Getenv("JIRA_EMAIL")
	}
	token := cfg.APIToken
	if token == "" {
		token = os.Getenv("JIRA_API_KEY")
	}
	if email == "" || token == "" {
		return nil, fmt.Errorf("jira credentials missing: set jira.email/jira.api_token or JIRA_EMAIL/JIRA_API_KEY")
	}

	http := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetBasicAuth(email, token).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		http:      http,
		log:       logger.New("jira-client"),
		queryFile: cfg.QueryFile,
		pageSize:  cfg.PageSize,
	}, nil
}

// Query reads the configured JQL query file.
func (c *Client) Query() (string, error) {
	b, err := os.ReadFile(c.queryFile)
	if err != nil {
		return "", fmt.Errorf("read query file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// FetchIssues runs the configured query and pages through all results.
func (c *Client) FetchIssues(ctx context.Context) ([]model.RawIssue, error) {
	jql, err := c.Query()
	if err != nil {
		return nil, err
	}

	var raws []model.RawIssue
	pageToken := ""
	for {
		req := searchRequest{
			JQL:           jql,
			Fields:        requestedFields,
			MaxResults:    c.pageSize,
			NextPageToken: pageToken,
		}
		var page searchResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(req).
			SetResult(&page).
			Post(searchPath)
		if err != nil {
			return nil, fmt.Errorf("jira search: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("jira search: %s: %s", resp.Status(), resp.String())
		}

		for _, is := range page.Issues {
			raws = append(raws, is.toRawIssue())
		}
		if page.IsLast || page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	c.log.Infof("fetched %d issues", len(raws))
	return raws, nil
}
