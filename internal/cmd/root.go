// Package cmd assembles the notifications command tree.
package cmd

import (
	"github.com/ryo246912/gh-notifications/internal/github"
	"github.com/ryo246912/gh-notifications/internal/ui"
	"github.com/spf13/cobra"
)

// Factory supplies the external collaborators to the command handlers.
// Construction is deferred so that help output and input validation never
// touch gh configuration or the terminal.
type Factory struct {
	Source   func() (github.NotificationSource, error)
	Renderer func() ui.TableRenderer
}

// DefaultFactory wires the real GitHub client and terminal table.
func DefaultFactory() *Factory {
	return &Factory{
		Source: func() (github.NotificationSource, error) {
			return github.NewClient()
		},
		Renderer: func() ui.TableRenderer {
			return ui.NewTable()
		},
	}
}

// NewRootCmd builds the root command with the view and done subcommands
// attached. A bare invocation prints the general usage and reports failure;
// an unrecognized first argument does the same with an explicit error.
func NewRootCmd(f *Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Display GitHub notification threads",
		Long:  "Work with the notification threads of the authenticated GitHub user.",
		Example: `  # list unread notification threads
  $ gh notifications view

  # only pull request threads from one repository
  $ gh notifications view --repo cli/cli --type pulls`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			if len(args) == 0 {
				return ErrSilent
			}
			return &UnknownCommandError{Name: args[0]}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		// A flag-looking token the root does not know gets the same
		// treatment as an unknown command: general usage, then the failure.
		if !c.HasParent() {
			if helpErr := c.Help(); helpErr != nil {
				return helpErr
			}
		}
		return &FlagError{err: err}
	})

	cmd.AddCommand(newViewCmd(f))
	cmd.AddCommand(newDoneCmd())

	return cmd
}

// addFilterFlags registers the criteria flags shared by view and done.
// Interspersed parsing is off: the first positional argument stops flag
// parsing and the rest pass through to the handler verbatim.
func addFilterFlags(cmd *cobra.Command, repo, subjectType *string) {
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(repo, "repo", "r", "", "Filter by repository (NAME or OWNER/NAME)")
	cmd.Flags().StringVarP(subjectType, "type", "t", "", "Filter by subject type (pull, issue, discussion, release, invite, commit, check)")
}
