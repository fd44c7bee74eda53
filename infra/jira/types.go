package jira

import (
	"strings"

	"github.com/planweave/planweave/core/model"
)

// Custom field ids of the tracker instance. Adjust these when pointing the
// planner at a different Jira site.
const (
	fieldStartDate = "customfield_10015"
	fieldCustomers = "customfield_10080"
	fieldHealth    = "customfield_10001"
)

type searchRequest struct {
	JQL           string   `json:"jql"`
	Fields        []string `json:"fields"`
	MaxResults    int      `json:"maxResults,omitempty"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

type searchResponse struct {
	Issues        []issue `json:"issues"`
	NextPageToken string  `json:"nextPageToken"`
	IsLast        bool    `json:"isLast"`
}

type issue struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Summary   string     `json:"summary"`
	DueDate   string     `json:"duedate"`
	Assignee  *namedUser `json:"assignee"`
	Priority  *named     `json:"priority"`
	Status    *named     `json:"status"`
	IssueType *issueType `json:"issuetype"`
	Parent    *parentRef `json:"parent"`
	Project   *keyed     `json:"project"`

	TimeOriginalEstimate int64        `json:"timeoriginalestimate"`
	FixVersions          []fixVersion `json:"fixVersions"`

	StartDate string   `json:"customfield_10015"`
	Customers []valued `json:"customfield_10080"`
	Health    *valued  `json:"customfield_10001"`
}

type named struct {
	Name string `json:"name"`
}

type namedUser struct {
	DisplayName string `json:"displayName"`
}

type issueType struct {
	Name    string `json:"name"`
	Subtask bool   `json:"subtask"`
}

type parentRef struct {
	Key string `json:"key"`
}

type keyed struct {
	Key string `json:"key"`
}

type valued struct {
	Value string `json:"value"`
}

type fixVersion struct {
	Name        string `json:"name"`
	ReleaseDate string `json:"releaseDate"`
}

// toRawIssue flattens the wire shape into the normalizer's boundary record.
func (i issue) toRawIssue() model.RawIssue {
	raw := model.RawIssue{
		Key:              i.Key,
		Summary:          i.Fields.Summary,
		DueDate:          i.Fields.DueDate,
		StartDate:        strings.SplitN(i.Fields.StartDate, "T", 2)[0],
		EstimatedSeconds: i.Fields.TimeOriginalEstimate,
	}
	if i.Fields.Project != nil {
		raw.Project = i.Fields.Project.Key
	}
	if i.Fields.Assignee != nil {
		raw.Assignee = i.Fields.Assignee.DisplayName
	}
	if i.Fields.Priority != nil {
		raw.Priority = i.Fields.Priority.Name
	}
	if i.Fields.Status != nil {
		raw.Status = i.Fields.Status.Name
	}
	if i.Fields.IssueType != nil {
		raw.IssueType = i.Fields.IssueType.Name
	}
	if i.Fields.Parent != nil {
		raw.ParentKey = i.Fields.Parent.Key
	}
	if i.Fields.Health != nil {
		raw.Health = i.Fields.Health.Value
	}
	for _, c := range i.Fields.Customers {
		if c.Value != "" {
			raw.Customers = append(raw.Customers, c.Value)
		}
	}
	for _, fv := range i.Fields.FixVersions {
		raw.FixVersions = append(raw.FixVersions, model.FixVersion{
			Name:        fv.Name,
			ReleaseDate: fv.ReleaseDate,
		})
	}
	return raw
}
