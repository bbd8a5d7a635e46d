package cmd

import (
	"github.com/spf13/cobra"
)

// TODO: implement via DELETE /notifications/threads/{thread_id}; needs the
// notifications scope on the token.
func newDoneCmd() *cobra.Command {
	var repo, subjectType string

	cmd := &cobra.Command{
		Use:   "done [THREAD_IDS...]",
		Short: "Mark notification threads as done",
		Long: `Mark the given notification threads as done.

This command is not implemented yet and always exits with an error.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return &NotImplementedError{Command: "done"}
		},
	}

	addFilterFlags(cmd, &repo, &subjectType)

	return cmd
}
