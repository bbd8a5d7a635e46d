package models

// SubjectType is the category of the object a notification refers to,
// as reported by the notifications API.
type SubjectType string

const (
	SubjectTypePullRequest SubjectType = "PullRequest"
	SubjectTypeIssue       SubjectType = "Issue"
	SubjectTypeDiscussion  SubjectType = "Discussion"
	SubjectTypeRelease     SubjectType = "Release"
	SubjectTypeInvitation  SubjectType = "RepositoryInvitation"
	SubjectTypeCommit      SubjectType = "Commit"
	SubjectTypeCheckSuite  SubjectType = "CheckSuite"
)

// Thread is one notification thread as returned by the notifications
// endpoint. Fields are carried verbatim from the API response.
type Thread struct {
	ID         string     `json:"id"`
	Unread     bool       `json:"unread"`
	Reason     string     `json:"reason"`
	UpdatedAt  string     `json:"updated_at"`
	URL        string     `json:"url"`
	Repository Repository `json:"repository"`
	Subject    Subject    `json:"subject"`
}

// Repository identifies the repository a thread belongs to.
type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// Subject describes the object the notification is about.
type Subject struct {
	Title string      `json:"title"`
	URL   string      `json:"url"`
	Type  SubjectType `json:"type"`
}
