package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"dispatchctl/internal/engine"
	"dispatchctl/internal/model"
	"dispatchctl/internal/retry"
	"dispatchctl/internal/sim"
	"dispatchctl/internal/telemetry"
)

func NewRunCmd(open StoreOpener) *cobra.Command {
	var (
		jobs        int
		maxRetries  int
		meanMs      int
		stddevMs    int
		seed        uint64
		rateLimit   float64
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Dispatch a batch of simulated jobs and record the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Input validation happens here; the engine assumes clean inputs.
			if jobs < 0 {
				return fmt.Errorf("invalid job count: %d", jobs)
			}
			if maxRetries < 0 {
				return fmt.Errorf("invalid max retries: %d", maxRetries)
			}
			if meanMs < 0 || stddevMs < 0 {
				return fmt.Errorf("invalid service time parameters: mean=%dms stddev=%dms", meanMs, stddevMs)
			}
			if rateLimit < 0 {
				return fmt.Errorf("invalid rate limit: %f", rateLimit)
			}

			st, err := open()
			if err != nil {
				return err
			}
			defer st.Close()

			if !cmd.Flags().Changed("max-retries") {
				maxRetries = st.MustGetInt("max_retries", maxRetries)
			}
			policy := retry.Policy{
				Base:  time.Duration(st.MustGetInt("backoff_base_ms", 100)) * time.Millisecond,
				Cap:   time.Duration(st.MustGetInt("backoff_cap_ms", 30000)) * time.Millisecond,
				Boost: 1,
			}

			var src engine.Source
			if cmd.Flags().Changed("seed") {
				src = sim.NewSeeded(time.Duration(meanMs)*time.Millisecond, time.Duration(stddevMs)*time.Millisecond, seed)
			} else {
				src = sim.New(time.Duration(meanMs)*time.Millisecond, time.Duration(stddevMs)*time.Millisecond)
			}

			rec := st.NewRunRecorder()
			d := engine.New(src, rec, &engine.Printer{Out: cmd.OutOrStdout()})
			d.Policy = policy
			if rateLimit > 0 {
				d.Limiter = rate.NewLimiter(rate.Limit(rateLimit), 1)
			}

			if metricsAddr != "" {
				go func() {
					if err := http.ListenAndServe(metricsAddr, telemetry.Handler()); err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), "metrics listener:", err)
					}
				}()
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)
			defer signal.Stop(sigCh)
			go func() {
				<-sigCh
				cancel()
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "Dispatching %d jobs, max_retries=%d, mean=%dms, stddev=%dms\n",
				jobs, maxRetries, meanMs, stddevMs)

			specs := make([]model.JobSpec, jobs)
			for i := range specs {
				specs[i] = model.JobSpec{ExtID: i + 1, MaxRetries: maxRetries}
			}

			if _, err := d.Run(ctx, specs); err != nil {
				return fmt.Errorf("run aborted: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nRun %s recorded.\n", rec.RunID)
			return nil
		},
	}

	cmd.Flags().IntVar(&jobs, "jobs", 12, "number of jobs to dispatch")
	cmd.Flags().IntVar(&maxRetries, "max-retries", 2, "retry limit per job (default from config)")
	cmd.Flags().IntVar(&meanMs, "mean-ms", 300, "mean simulated service time")
	cmd.Flags().IntVar(&stddevMs, "stddev-ms", 100, "service time standard deviation")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed for a reproducible run")
	cmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "max dispatches per second (0 = unlimited)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address during the run")
	return cmd
}
