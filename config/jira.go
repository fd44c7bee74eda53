package config

import "fmt"

// JiraConfig holds the tracker connection settings. Credentials may be left
// empty here and supplied via the JIRA_EMAIL / JIRA_API_KEY environment
// variables instead.
type JiraConfig struct {
	// BaseURL is the instance root, e.g. https://company.atlassian.net.
	BaseURL string `json:"base_url"`
	Email   string `json:"email"`
	// APIToken authenticates together with Email using basic auth.
	APIToken string `json:"api_token"`
	// QueryFile is the path of the file holding the JQL query. The same file
	// feeds the customer extraction for calendar matching.
	QueryFile string `json:"query_file"`
	// BrowseURL prefixes issue keys when rendering links.
	BrowseURL      string `json:"browse_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	// PageSize bounds results per search request.
	PageSize int `json:"page_size"`
}

// SetDefaults applies sane defaults.
func (c *JiraConfig) SetDefaults() {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	if c.PageSize <= 0 {
		c.PageSize = 100
	}
	if c.BrowseURL == "" && c.BaseURL != "" {
		c.BrowseURL = c.BaseURL + "/browse/"
	}
}

// Validate checks mandatory fields.
func (c JiraConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("jira base_url is required")
	}
	if c.QueryFile == "" {
		return fmt.Errorf("jira query_file is required")
	}
	return nil
}
