package filter

import "fmt"

// UnknownTypeError is returned when a type alias matches no known
// notification subject type.
type UnknownTypeError struct {
	Alias string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown notification type %q (expected one of: pull, issue, discussion, release, invite, commit, check)", e.Alias)
}

// InvalidRepositoryError is returned when a repository token is neither a
// bare name nor an OWNER/NAME pair.
type InvalidRepositoryError struct {
	Token string
}

func (e *InvalidRepositoryError) Error() string {
	return fmt.Sprintf("invalid repository %q (expected NAME or OWNER/NAME)", e.Token)
}
