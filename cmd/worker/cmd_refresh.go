package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/portfolio-showcase/portfolio-api/internal/bootstrap"
	cronjob "github.com/portfolio-showcase/portfolio-api/internal/portfolio/cron"
)

const defaultRefreshSchedule = "0 */10 * * * *"

var refreshSchedule string

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload the portfolio on a schedule until interrupted",
	Long: `Runs the scheduled refresher in the foreground. The schedule comes from
--schedule, then REFRESH_SCHEDULE, then every ten minutes.`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().StringVar(&refreshSchedule, "schedule", "", "six-field cron spec (seconds first)")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	schedule := refreshSchedule
	if schedule == "" {
		schedule = cfg.Portfolio.RefreshSchedule
	}
	if schedule == "" {
		schedule = defaultRefreshSchedule
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	refresher, err := cronjob.NewRefresher(app.Loader, schedule, logger)
	if err != nil {
		return err
	}

	refresher.Run()
	refresher.Start()
	logger.Info("refreshing", zap.String("schedule", schedule))

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	refresher.Stop(stopCtx)
	return nil
}
