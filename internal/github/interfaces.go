package github

import (
	"github.com/ryo246912/gh-notifications/internal/models"
)

// NotificationSource defines the interface for notification thread retrieval
type NotificationSource interface {
	ListNotifications() ([]models.Thread, error)
}

// Ensure Client implements NotificationSource interface
var _ NotificationSource = (*Client)(nil)
