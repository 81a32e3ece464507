package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func NewRunsCmd(open StoreOpener) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open()
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			for _, r := range runs {
				fmt.Printf("%s | %s | jobs=%s success=%d failed=%d | wait=%.2fms service=%.2fms turn=%.2fms | %.2f jobs/s\n",
					r.ID,
					humanize.Time(time.UnixMilli(r.StartedAt)),
					humanize.Comma(int64(r.TotalJobs)),
					r.SuccessJobs, r.FailedJobs,
					r.AvgWaitMs, r.AvgServiceMs, r.AvgTurnaroundMs,
					r.ThroughputPerS)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "max runs to list (0 = all)")
	return cmd
}
