package main

import (
	"fmt"
	"math/rand"
	"time"

	"shopchat/internal/config"
	"shopchat/internal/logger"
	"shopchat/internal/repository"
	"shopchat/internal/service"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		count int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty products table with generated products",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.New(cfg.Logging)
			for _, w := range cfg.Warnings {
				log.Warn().Msg(w)
			}

			repo, err := repository.NewRepository(cfg.Database.Driver, cfg.GetDSN(), cfg.Database.MaxConnections, cfg.Database.MaxIdleConnections)
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx := cmd.Context()
			if err := repo.Migrate(ctx); err != nil {
				return err
			}

			if !cmd.Flags().Changed("count") {
				count = cfg.Catalog.SeedCount
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			inserted, err := service.NewCatalogSeeder(repo, rand.New(rand.NewSource(seed)), log).SeedIfEmpty(ctx, count)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d products\n", inserted)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 105, "number of products to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}
