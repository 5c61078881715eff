package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portfolio-showcase/portfolio-api/internal/bootstrap"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/repository"
)

var loadFromMirror bool

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Run one load cycle and print the normalized collections",
	Long: `Fetches projects and certificates from Firestore, normalizes them and
prints the result as JSON. With --from-mirror the last Redis snapshot is
printed instead and Firestore is not contacted.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVar(&loadFromMirror, "from-mirror", false, "print the last mirrored snapshot instead of fetching")
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if loadFromMirror {
		rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		if rdb == nil {
			return errors.New("REDIS_ADDR is not set, the snapshot mirror is disabled")
		}
		defer rdb.Close()

		snap, err := repository.NewSnapshotRepository(rdb).Get(ctx)
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), snap)
	}

	app, err := bootstrap.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	collections, err := app.Loader.Load(ctx)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), collections)
}
