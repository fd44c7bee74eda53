package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/planweave/planweave/config"
)

func writeQueryFile(t *testing.T, jql string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.jql")
	if err := os.WriteFile(path, []byte(jql+"\n"), 0o600); err != nil {
		t.Fatalf("write query file: %v", err)
	}
	return path
}

func newTestClient(t *testing.T, baseURL, queryFile string) *Client {
	t.Helper()
	c, err := NewClient(config.JiraConfig{
		BaseURL:        baseURL,
		Email:          "planner@example.com",
		APIToken:       "secret",
		QueryFile:      queryFile,
		TimeoutSeconds: 5,
		PageSize:       2,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewClientRequiresCredentials(t *testing.T) {
	t.Setenv("JIRA_EMAIL", "")
	t.Setenv("JIRA_API_KEY", "")
	if _, err := NewClient(config.JiraConfig{BaseURL: "https://x", QueryFile: "q"}); err == nil {
		t.Fatalf("expected missing credential error")
	}
}

func TestNewClientCredentialsFromEnv(t *testing.T) {
	t.Setenv("JIRA_EMAIL", "env@example.com")
	t.Setenv("JIRA_API_KEY", "env-token")
	if _, err := NewClient(config.JiraConfig{BaseURL: "https://x", QueryFile: "q"}); err != nil {
		t.Fatalf("env credentials rejected: %v", err)
	}
}

func TestFetchIssuesPaginatesAndMaps(t *testing.T) {
	pages := []searchResponse{
		{
			Issues: []issue{
				{
					Key: "PW-1",
					Fields: issueFields{
						Summary:   "Charger rollout",
						DueDate:   "2024-05-10",
						StartDate: "2024-05-01T00:00:00.000+0200",
						Assignee:  &namedUser{DisplayName: "Alice Anderson"},
						Priority:  &named{Name: "P1"},
						Status:    &named{Name: "In Progress"},
						IssueType: &issueType{Name: "Task"},
						Project:   &keyed{Key: "PW"},
						Customers: []valued{{Value: "JCB UK"}, {Value: "Goupil"}},
						Health:    &valued{Value: "On track"},

						TimeOriginalEstimate: 7200,
						FixVersions: []fixVersion{
							{Name: "v2.4", ReleaseDate: "2024-05-15"},
						},
					},
				},
				{Key: "PW-2"},
			},
			NextPageToken: "tok-2",
		},
		{
			Issues: []issue{{Key: "PW-3"}},
			IsLast: true,
		},
	}

	var calls int
	var lastAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != searchPath {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		lastAuth = r.Header.Get("Authorization")

		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.JQL != "project = PW" {
			t.Errorf("jql = %q", req.JQL)
		}
		if req.MaxResults != 2 {
			t.Errorf("maxResults = %d", req.MaxResults)
		}
		if calls == 1 && req.NextPageToken != "tok-2" {
			t.Errorf("page token not forwarded: %q", req.NextPageToken)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pages[calls])
		calls++
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, writeQueryFile(t, "project = PW"))
	raws, err := c.FetchIssues(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if lastAuth == "" {
		t.Fatalf("basic auth header missing")
	}
	if len(raws) != 3 {
		t.Fatalf("issues = %d, want 3", len(raws))
	}

	first := raws[0]
	if first.Key != "PW-1" || first.Project != "PW" || first.Assignee != "Alice Anderson" {
		t.Fatalf("mapped issue = %+v", first)
	}
	if first.StartDate != "2024-05-01" {
		t.Fatalf("start date not truncated: %q", first.StartDate)
	}
	if first.DueDate != "2024-05-10" || first.Priority != "P1" || first.Health != "On track" {
		t.Fatalf("mapped issue = %+v", first)
	}
	if len(first.Customers) != 2 || first.Customers[0] != "JCB UK" {
		t.Fatalf("customers = %v", first.Customers)
	}
	if first.EstimatedSeconds != 7200 {
		t.Fatalf("estimate = %d", first.EstimatedSeconds)
	}
	if len(first.FixVersions) != 1 || first.FixVersions[0].ReleaseDate != "2024-05-15" {
		t.Fatalf("fix versions = %v", first.FixVersions)
	}
}

func TestFetchIssuesSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorMessages":["bad jql"]}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, writeQueryFile(t, "bogus ("))
	if _, err := c.FetchIssues(context.Background()); err == nil {
		t.Fatalf("expected error on 400 response")
	}
}

func TestQueryTrimsWhitespace(t *testing.T) {
	c := newTestClient(t, "https://x", writeQueryFile(t, "  project = PW  "))
	jql, err := c.Query()
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if jql != "project = PW" {
		t.Fatalf("jql = %q", jql)
	}
}
