package github

import (
	"fmt"

	"github.com/ryo246912/gh-notifications/internal/models"
)

// MockSource implements NotificationSource for testing
type MockSource struct {
	// Control test behavior
	Threads      []models.Thread
	ThreadsError error

	// Track method calls
	ListNotificationsCalled bool
}

// ListNotifications mocks the notifications API call
func (m *MockSource) ListNotifications() ([]models.Thread, error) {
	m.ListNotificationsCalled = true
	return m.Threads, m.ThreadsError
}

// Reset clears all tracking data for fresh test
func (m *MockSource) Reset() {
	m.ListNotificationsCalled = false
}

// CreateTestThreads builds threads cycling through the canonical subject
// types, all in the same repository.
func CreateTestThreads(count int) []models.Thread {
	subjectTypes := []models.SubjectType{
		models.SubjectTypePullRequest,
		models.SubjectTypeIssue,
		models.SubjectTypeDiscussion,
		models.SubjectTypeRelease,
		models.SubjectTypeInvitation,
		models.SubjectTypeCommit,
		models.SubjectTypeCheckSuite,
	}

	threads := make([]models.Thread, count)
	for i := 0; i < count; i++ {
		threads[i] = models.Thread{
			ID:        fmt.Sprintf("%d", i+1),
			Unread:    true,
			Reason:    "subscribed",
			UpdatedAt: "2024-01-01T12:00:00Z",
			URL:       fmt.Sprintf("https://api.github.com/notifications/threads/%d", i+1),
			Repository: models.Repository{
				Name:     "demo",
				FullName: "octo/demo",
			},
			Subject: models.Subject{
				Title: fmt.Sprintf("Test thread #%d", i+1),
				URL:   fmt.Sprintf("https://api.github.com/repos/octo/demo/issues/%d", i+1),
				Type:  subjectTypes[i%len(subjectTypes)],
			},
		}
	}
	return threads
}

// NewAPIError builds an error for testing error conditions
func NewAPIError(message string) error {
	return fmt.Errorf("API error: %s", message)
}
