package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewConfigSetCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Args:  cobra.ExactArgs(2),
		Short: "Set a default config value",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open()
			if err != nil {
				return err
			}
			defer st.Close()

			key, value := args[0], args[1]
			if err := st.SetConfig(context.Background(), key, value); err != nil {
				return fmt.Errorf("failed to set config: %w", err)
			}
			fmt.Println("Updated:", key, "=", value)
			return nil
		},
	}
}
