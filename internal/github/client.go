package github

import (
	"fmt"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/ryo246912/gh-notifications/internal/models"
)

// Client wraps the GitHub REST API client provided by go-gh. Auth, host
// selection, and HTTP debugging are inherited from the gh configuration.
type Client struct {
	rest api.RESTClient
}

func NewClient() (*Client, error) {
	restClient, err := api.DefaultRESTClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{
		rest: *restClient,
	}, nil
}

// ListNotifications fetches the current user's notification threads in the
// order the API returns them. One request, no pagination.
func (c *Client) ListNotifications() ([]models.Thread, error) {
	var threads []models.Thread
	if err := c.rest.Get("notifications", &threads); err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return threads, nil
}
