package cli

import (
	"github.com/spf13/cobra"

	"dispatchctl/internal/store"
)

// StoreOpener defers opening the metrics database until a command actually
// runs, after the --db flag has been parsed.
type StoreOpener func() (*store.Store, error)

func NewRootCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "dispatchctl",
		Short: "Priority job dispatcher with retry and run metrics",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "dispatcher.db", "path to the metrics database")

	open := func() (*store.Store, error) { return store.NewStore(dbPath) }

	configCmd := NewConfigRootCmd()
	configCmd.AddCommand(NewConfigGetCmd(open), NewConfigSetCmd(open), NewConfigListCmd(open))

	cmd.AddCommand(
		NewRunCmd(open),
		NewRunsCmd(open),
		NewAttemptsCmd(open),
		NewResetCmd(open),
		configCmd,
	)
	return cmd
}
