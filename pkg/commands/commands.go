package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dopamine/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dopamine",
		Short: base.Wrap80("A four week habit plan on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addCheck(topLevel)
	addTask(topLevel)
	addJournal(topLevel)
	addRate(topLevel)
	addComplete(topLevel)
	addReport(topLevel)
	addBadges(topLevel)
	addSchedule(topLevel)
	addSweep(topLevel)
	addFocus(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addPlan(topLevel)
	addVersion(topLevel)
}
