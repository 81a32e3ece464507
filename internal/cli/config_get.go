package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewConfigGetCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Args:  cobra.ExactArgs(1),
		Short: "Get a default config value",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open()
			if err != nil {
				return err
			}
			defer st.Close()

			val, err := st.GetConfig(context.Background(), args[0])
			if err != nil {
				return err
			}
			if val == "" {
				fmt.Println("(not set)")
			} else {
				fmt.Println(val)
			}
			return nil
		},
	}
}
