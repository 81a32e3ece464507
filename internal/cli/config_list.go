package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func NewConfigListCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all config values",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open()
			if err != nil {
				return err
			}
			defer st.Close()

			all, err := st.AllConfig(context.Background())
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				fmt.Printf("%s = %s\n", k, all[k])
			}
			return nil
		},
	}
}
