package cmd

import (
	"github.com/ryo246912/gh-notifications/internal/service"
	"github.com/spf13/cobra"
)

func newViewCmd(f *Factory) *cobra.Command {
	var opts service.ViewOptions

	cmd := &cobra.Command{
		Use:   "view",
		Short: "List notification threads",
		Long: `List the unread notification threads of the authenticated user as a table
of repository, subject type, and title. Threads keep the order the API
returns them in.`,
		Example: `  # every unread thread
  $ gh notifications view

  # threads from a single repository, by short or full name
  $ gh notifications view --repo demo
  $ gh notifications view --repo octo/demo

  # only issue threads
  $ gh notifications view --type issues`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := f.Source()
			if err != nil {
				return err
			}
			return service.NewViewService(source, f.Renderer()).ProcessView(opts)
		},
	}

	addFilterFlags(cmd, &opts.Repo, &opts.Type)

	return cmd
}
