package filter

import (
	"errors"
	"strings"
	"testing"

	"github.com/ryo246912/gh-notifications/internal/models"
)

func threadOfType(subjectType models.SubjectType) models.Thread {
	return models.Thread{
		Subject: models.Subject{
			Title: "some title",
			Type:  subjectType,
		},
	}
}

func threadInRepo(name, fullName string) models.Thread {
	return models.Thread{
		Repository: models.Repository{
			Name:     name,
			FullName: fullName,
		},
	}
}

func TestByType_AliasResolution(t *testing.T) {
	tests := []struct {
		aliases   []string
		canonical models.SubjectType
	}{
		{
			aliases:   []string{"p", "pull", "pulls"},
			canonical: models.SubjectTypePullRequest,
		},
		{
			aliases:   []string{"i", "issue", "issues"},
			canonical: models.SubjectTypeIssue,
		},
		{
			aliases:   []string{"d", "discussion", "discussions"},
			canonical: models.SubjectTypeDiscussion,
		},
		{
			aliases:   []string{"r", "release", "releases"},
			canonical: models.SubjectTypeRelease,
		},
		{
			aliases:   []string{"v", "invite", "invites"},
			canonical: models.SubjectTypeInvitation,
		},
		{
			aliases:   []string{"c", "commit", "commits"},
			canonical: models.SubjectTypeCommit,
		},
		{
			aliases:   []string{"k", "check", "checks"},
			canonical: models.SubjectTypeCheckSuite,
		},
	}

	allTypes := []models.SubjectType{
		models.SubjectTypePullRequest,
		models.SubjectTypeIssue,
		models.SubjectTypeDiscussion,
		models.SubjectTypeRelease,
		models.SubjectTypeInvitation,
		models.SubjectTypeCommit,
		models.SubjectTypeCheckSuite,
	}

	for _, tt := range tests {
		for _, alias := range tt.aliases {
			// Every alias must behave the same regardless of case.
			for _, form := range []string{alias, strings.ToUpper(alias)} {
				t.Run(form, func(t *testing.T) {
					pred, err := ByType(form)
					if err != nil {
						t.Fatalf("ByType(%q) returned error: %v", form, err)
					}
					for _, subjectType := range allTypes {
						got := pred(threadOfType(subjectType))
						want := subjectType == tt.canonical
						if got != want {
							t.Errorf("ByType(%q) on %q = %v, want %v", form, subjectType, got, want)
						}
					}
				})
			}
		}
	}
}

func TestByType_MixedCaseAlias(t *testing.T) {
	pred, err := ByType("PuLLs")
	if err != nil {
		t.Fatalf("ByType(\"PuLLs\") returned error: %v", err)
	}
	if !pred(threadOfType(models.SubjectTypePullRequest)) {
		t.Error("mixed-case alias dropped a pull request thread")
	}
	if pred(threadOfType(models.SubjectTypeIssue)) {
		t.Error("mixed-case alias kept an issue thread")
	}
}

func TestByType_EmptyAliasKeepsEverything(t *testing.T) {
	pred, err := ByType("")
	if err != nil {
		t.Fatalf("ByType(\"\") returned error: %v", err)
	}

	for _, subjectType := range []models.SubjectType{
		models.SubjectTypePullRequest,
		models.SubjectTypeIssue,
		models.SubjectTypeCheckSuite,
	} {
		if !pred(threadOfType(subjectType)) {
			t.Errorf("empty alias dropped thread of type %q", subjectType)
		}
	}
}

func TestByType_UnknownAlias(t *testing.T) {
	for _, alias := range []string{"x", "pr", "pullz", "pull request", "ISSUEZ"} {
		t.Run(alias, func(t *testing.T) {
			pred, err := ByType(alias)
			if pred != nil {
				t.Errorf("ByType(%q) returned a predicate, want nil", alias)
			}

			var unknownType *UnknownTypeError
			if !errors.As(err, &unknownType) {
				t.Fatalf("ByType(%q) error = %v, want *UnknownTypeError", alias, err)
			}
			if unknownType.Alias != alias {
				t.Errorf("error alias = %q, want %q", unknownType.Alias, alias)
			}
			if !strings.Contains(err.Error(), alias) {
				t.Errorf("error message %q should echo the alias %q", err.Error(), alias)
			}
		})
	}
}

func TestByRepository_FullName(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		thread   models.Thread
		expected bool
	}{
		{
			name:     "exact full name match",
			token:    "octo/demo",
			thread:   threadInRepo("demo", "octo/demo"),
			expected: true,
		},
		{
			name:     "different owner",
			token:    "octo/demo",
			thread:   threadInRepo("demo", "cat/demo"),
			expected: false,
		},
		{
			name:     "comparison is case-sensitive",
			token:    "Octo/Demo",
			thread:   threadInRepo("demo", "octo/demo"),
			expected: false,
		},
		{
			name:     "uppercase token matches uppercase full name",
			token:    "Octo/Demo",
			thread:   threadInRepo("Demo", "Octo/Demo"),
			expected: true,
		},
		{
			name:     "no substring match",
			token:    "octo/demo",
			thread:   threadInRepo("demo2", "octo/demo2"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := ByRepository(tt.token)
			if err != nil {
				t.Fatalf("ByRepository(%q) returned error: %v", tt.token, err)
			}
			if got := pred(tt.thread); got != tt.expected {
				t.Errorf("ByRepository(%q) on %q = %v, want %v",
					tt.token, tt.thread.Repository.FullName, got, tt.expected)
			}
		})
	}
}

func TestByRepository_BareName(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		thread   models.Thread
		expected bool
	}{
		{
			name:     "exact short name match",
			token:    "demo",
			thread:   threadInRepo("demo", "octo/demo"),
			expected: true,
		},
		{
			name:     "bare token ignores full name",
			token:    "octo",
			thread:   threadInRepo("demo", "octo/demo"),
			expected: false,
		},
		{
			name:     "no substring match",
			token:    "demo",
			thread:   threadInRepo("demo2", "octo/demo2"),
			expected: false,
		},
		{
			name:     "comparison is case-sensitive",
			token:    "Demo",
			thread:   threadInRepo("demo", "octo/demo"),
			expected: false,
		},
		{
			name:     "dots and dashes are valid name characters",
			token:    "my-repo.v2",
			thread:   threadInRepo("my-repo.v2", "octo/my-repo.v2"),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := ByRepository(tt.token)
			if err != nil {
				t.Fatalf("ByRepository(%q) returned error: %v", tt.token, err)
			}
			if got := pred(tt.thread); got != tt.expected {
				t.Errorf("ByRepository(%q) on name %q = %v, want %v",
					tt.token, tt.thread.Repository.Name, got, tt.expected)
			}
		})
	}
}

func TestByRepository_EmptyTokenKeepsEverything(t *testing.T) {
	pred, err := ByRepository("")
	if err != nil {
		t.Fatalf("ByRepository(\"\") returned error: %v", err)
	}
	if !pred(threadInRepo("demo", "octo/demo")) {
		t.Error("empty token dropped a thread")
	}
}

func TestByRepository_InvalidToken(t *testing.T) {
	for _, token := range []string{
		"owner/",
		"/name",
		"a/b/c",
		"bad/name/format",
		"   ",
		"owner /name",
		"owner/name!",
	} {
		t.Run(token, func(t *testing.T) {
			pred, err := ByRepository(token)
			if pred != nil {
				t.Errorf("ByRepository(%q) returned a predicate, want nil", token)
			}

			var invalidRepo *InvalidRepositoryError
			if !errors.As(err, &invalidRepo) {
				t.Fatalf("ByRepository(%q) error = %v, want *InvalidRepositoryError", token, err)
			}
			if invalidRepo.Token != token {
				t.Errorf("error token = %q, want %q", invalidRepo.Token, token)
			}
			if !strings.Contains(err.Error(), token) {
				t.Errorf("error message %q should echo the token %q", err.Error(), token)
			}
		})
	}
}

func TestApply(t *testing.T) {
	threads := []models.Thread{
		{
			Repository: models.Repository{Name: "demo", FullName: "octo/demo"},
			Subject:    models.Subject{Title: "first", Type: models.SubjectTypeIssue},
		},
		{
			Repository: models.Repository{Name: "demo", FullName: "octo/demo"},
			Subject:    models.Subject{Title: "second", Type: models.SubjectTypePullRequest},
		},
		{
			Repository: models.Repository{Name: "other", FullName: "octo/other"},
			Subject:    models.Subject{Title: "third", Type: models.SubjectTypePullRequest},
		},
	}

	byType, err := ByType("pulls")
	if err != nil {
		t.Fatalf("ByType(\"pulls\") returned error: %v", err)
	}
	byRepo, err := ByRepository("octo/demo")
	if err != nil {
		t.Fatalf("ByRepository(\"octo/demo\") returned error: %v", err)
	}

	got := Apply(threads, byType, byRepo)
	if len(got) != 1 {
		t.Fatalf("Apply kept %d threads, want 1", len(got))
	}
	if got[0].Subject.Title != "second" {
		t.Errorf("kept thread title = %q, want %q", got[0].Subject.Title, "second")
	}
}

func TestApply_NoPredicatesKeepsOrder(t *testing.T) {
	threads := []models.Thread{
		{Subject: models.Subject{Title: "a"}},
		{Subject: models.Subject{Title: "b"}},
		{Subject: models.Subject{Title: "c"}},
	}

	got := Apply(threads)
	if len(got) != len(threads) {
		t.Fatalf("Apply kept %d threads, want %d", len(got), len(threads))
	}
	for i := range threads {
		if got[i].Subject.Title != threads[i].Subject.Title {
			t.Errorf("thread %d title = %q, want %q (order must be preserved)",
				i, got[i].Subject.Title, threads[i].Subject.Title)
		}
	}
}
