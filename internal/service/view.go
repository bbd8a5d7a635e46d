package service

import (
	"github.com/ryo246912/gh-notifications/internal/filter"
	"github.com/ryo246912/gh-notifications/internal/github"
	"github.com/ryo246912/gh-notifications/internal/models"
	"github.com/ryo246912/gh-notifications/internal/ui"
)

// tableHeaders is the fixed column order of the view table.
var tableHeaders = []string{"REPOSITORY", "TYPE", "TITLE"}

// ViewOptions holds the filter criteria parsed from the command line.
type ViewOptions struct {
	Repo string
	Type string
}

// ViewService contains the view workflow logic
type ViewService struct {
	source   github.NotificationSource
	renderer ui.TableRenderer
}

// NewViewService creates a new service instance
func NewViewService(source github.NotificationSource, renderer ui.TableRenderer) *ViewService {
	return &ViewService{
		source:   source,
		renderer: renderer,
	}
}

// ProcessView handles the complete workflow: validate the criteria, fetch
// the thread list, filter it, and render the result as a table.
func (s *ViewService) ProcessView(opts ViewOptions) error {
	threads, err := s.FilteredThreads(opts)
	if err != nil {
		return err
	}
	return s.Tabulate(threads)
}

// FilteredThreads fetches the notification list and narrows it by the
// criteria in opts. Both criteria are validated before the fetch, so bad
// input never produces a network call. The subject-type filter runs first,
// then the repository filter; the API's ordering is preserved.
func (s *ViewService) FilteredThreads(opts ViewOptions) ([]models.Thread, error) {
	byType, err := filter.ByType(opts.Type)
	if err != nil {
		return nil, err
	}
	byRepo, err := filter.ByRepository(opts.Repo)
	if err != nil {
		return nil, err
	}

	threads, err := s.source.ListNotifications()
	if err != nil {
		return nil, err
	}

	return filter.Apply(threads, byType, byRepo), nil
}

// Tabulate projects each thread to a (repository, type, title) row and
// hands the rows to the renderer. No truncation, sorting, or deduplication
// happens here.
func (s *ViewService) Tabulate(threads []models.Thread) error {
	rows := make([][]string, 0, len(threads))
	for _, thread := range threads {
		rows = append(rows, []string{
			thread.Repository.FullName,
			string(thread.Subject.Type),
			thread.Subject.Title,
		})
	}
	return s.renderer.Render(tableHeaders, rows)
}
