package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewResetCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all recorded runs and attempts (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.ResetRuns(context.Background()); err != nil {
				return fmt.Errorf("failed to clear runs: %w", err)
			}
			fmt.Println("Runs and attempts cleared.")
			return nil
		},
	}
}
