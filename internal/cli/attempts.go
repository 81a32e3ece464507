package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewAttemptsCmd(open StoreOpener) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "attempts",
		Short: "List the per-attempt records of a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runID == "" {
				return fmt.Errorf("--run is required")
			}

			st, err := open()
			if err != nil {
				return err
			}
			defer st.Close()

			attempts, err := st.ListAttempts(context.Background(), runID)
			if err != nil {
				return err
			}

			if len(attempts) == 0 {
				fmt.Println("No attempts found for run", runID)
				return nil
			}

			for _, j := range attempts {
				line := fmt.Sprintf("job %d | prio=%d att=%d | %-7s | wait=%dms service=%dms turn=%dms",
					j.ExtID, j.Priority, j.Attempt, j.Status,
					j.WaitMs, j.ServiceMs, j.TurnaroundMs)
				if j.FailReason != "" {
					line += " | " + j.FailReason
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "run ID to inspect")
	return cmd
}
