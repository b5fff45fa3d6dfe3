package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockround/internal/app"
	"github.com/abhisek/mockround/internal/interview"
	"github.com/abhisek/mockround/internal/metrics"
	"github.com/abhisek/mockround/internal/screen"
	"github.com/abhisek/mockround/internal/screens/briefing"
	ivscreen "github.com/abhisek/mockround/internal/screens/interview"
	"github.com/abhisek/mockround/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	addSessionFlags(playCmd)
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address during the interview")
		c.Flags().Bool("no-archive", false, "Do not save the report to the history database")
	}
}

// runPlay wires settings, catalog, metrics and archive into the TUI.
func runPlay(cmd *cobra.Command) error {
	f, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applySessionFlags(cmd, &f); err != nil {
		return err
	}
	if cmd.Flags().Changed("metrics-addr") {
		f.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
	}

	logger, closeLog, err := newLogger(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	var opts []interview.Option
	if f.MetricsAddr != "" {
		rec := metrics.NewRecorder()
		srv, err := metrics.Listen(f.MetricsAddr, rec)
		if err != nil {
			warn("metrics disabled: %v", err)
		} else {
			go func() {
				if err := srv.Serve(); err != nil {
					logger.Error("metrics server stopped", "error", err)
				}
			}()
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()
			logger.Info("serving metrics", "addr", srv.Addr())
			opts = append(opts, interview.WithObserver(rec))
		}
	}

	e, cat, err := newEngine(cmd, f, logger, opts...)
	if err != nil {
		return err
	}

	var screenOpts []ivscreen.Option
	archived := make(chan error, 1)
	archiving := false
	noArchive, _ := cmd.Flags().GetBool("no-archive")
	if !noArchive {
		st, err := openStore(f)
		if err != nil {
			warn("history disabled: %v", err)
		} else {
			defer st.Close()
			archiving = true
			screenOpts = append(screenOpts, ivscreen.WithFinish(archiver(cmd.Context(), st.Results(), archived)))
		}
	}

	setup := briefing.Setup{
		Candidate: e.Candidate(),
		Job:       e.Job(),
		Config:    e.Config(),
		Questions: cat.Len(),
	}
	root := briefing.New(setup, func() screen.Screen {
		return ivscreen.New(e, screenOpts...)
	})
	if err := app.Run(root); err != nil {
		return err
	}

	// A session that never ended has nothing to archive.
	if archiving && e.Phase() != interview.PhaseInProgress && e.Phase() != interview.PhaseNotStarted {
		if err := awaitArchive(archived, archiveWait); err != nil {
			warn("report not saved: %v", err)
		} else {
			fmt.Printf("Report saved. View it with: mockround history show %s\n", e.SessionID())
		}
	}
	return nil
}

// archiveWait bounds how long play waits for an in-flight save after
// the TUI exits.
const archiveWait = 5 * time.Second

var errArchiveTimeout = errors.New("timed out waiting for the archive")

// awaitArchive waits for the archiver's outcome.
func awaitArchive(done <-chan error, wait time.Duration) error {
	select {
	case err := <-done:
		return err
	case <-time.After(wait):
		return errArchiveTimeout
	}
}

// archiver saves the finished report and reports the outcome on done.
func archiver(ctx context.Context, repo store.ResultRepo, done chan<- error) func(interview.InterviewResult) {
	if ctx == nil {
		ctx = context.Background()
	}
	return func(r interview.InterviewResult) {
		done <- repo.Save(ctx, r, time.Now())
	}
}
