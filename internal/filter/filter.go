// Package filter builds the predicates that narrow a notification thread
// list down to a repository and/or subject type.
package filter

import (
	"regexp"
	"strings"

	"github.com/ryo246912/gh-notifications/internal/models"
)

// Predicate reports whether a notification thread should be kept.
type Predicate func(models.Thread) bool

// typeAliases maps each accepted alias, lowercased, to its canonical
// subject type. Every type has a one-letter, singular, and plural form.
var typeAliases = map[string]models.SubjectType{
	"p":           models.SubjectTypePullRequest,
	"pull":        models.SubjectTypePullRequest,
	"pulls":       models.SubjectTypePullRequest,
	"i":           models.SubjectTypeIssue,
	"issue":       models.SubjectTypeIssue,
	"issues":      models.SubjectTypeIssue,
	"d":           models.SubjectTypeDiscussion,
	"discussion":  models.SubjectTypeDiscussion,
	"discussions": models.SubjectTypeDiscussion,
	"r":           models.SubjectTypeRelease,
	"release":     models.SubjectTypeRelease,
	"releases":    models.SubjectTypeRelease,
	"v":           models.SubjectTypeInvitation,
	"invite":      models.SubjectTypeInvitation,
	"invites":     models.SubjectTypeInvitation,
	"c":           models.SubjectTypeCommit,
	"commit":      models.SubjectTypeCommit,
	"commits":     models.SubjectTypeCommit,
	"k":           models.SubjectTypeCheckSuite,
	"check":       models.SubjectTypeCheckSuite,
	"checks":      models.SubjectTypeCheckSuite,
}

var (
	fullNamePattern = regexp.MustCompile(`(?i)^[a-z0-9_.-]+/[a-z0-9_.-]+$`)
	bareNamePattern = regexp.MustCompile(`(?i)^[a-z0-9_.-]+$`)
)

// matchAll keeps every thread. Used when a criterion is unset.
func matchAll(models.Thread) bool { return true }

// ByType resolves a user-supplied type alias to a predicate over the
// thread's subject type. The alias is matched case-insensitively; an empty
// alias keeps everything. The returned predicate compares the canonical
// type name exactly.
func ByType(alias string) (Predicate, error) {
	if alias == "" {
		return matchAll, nil
	}

	canonical, ok := typeAliases[strings.ToLower(alias)]
	if !ok {
		return nil, &UnknownTypeError{Alias: alias}
	}

	return func(t models.Thread) bool {
		return t.Subject.Type == canonical
	}, nil
}

// ByRepository resolves a user-supplied repository token to a predicate.
// A token shaped like OWNER/NAME is compared against the thread's full
// name, a bare token against its short name; both comparisons are exact
// and case-sensitive. An empty token keeps everything. Tokens matching
// neither shape are rejected.
func ByRepository(token string) (Predicate, error) {
	switch {
	case token == "":
		return matchAll, nil
	case fullNamePattern.MatchString(token):
		return func(t models.Thread) bool {
			return t.Repository.FullName == token
		}, nil
	case bareNamePattern.MatchString(token):
		return func(t models.Thread) bool {
			return t.Repository.Name == token
		}, nil
	default:
		return nil, &InvalidRepositoryError{Token: token}
	}
}

// Apply returns the threads that pass every predicate, preserving the
// input order.
func Apply(threads []models.Thread, preds ...Predicate) []models.Thread {
	kept := make([]models.Thread, 0, len(threads))
	for _, thread := range threads {
		pass := true
		for _, pred := range preds {
			if !pred(thread) {
				pass = false
				break
			}
		}
		if pass {
			kept = append(kept, thread)
		}
	}
	return kept
}
