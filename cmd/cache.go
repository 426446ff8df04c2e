package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var cacheWarmSeller string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the warehouse fetch cache",
}

var cacheWarmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Pre-fetch product catalogs (and optionally one seller's reviews) into the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx, "fetch")
		if err != nil {
			return err
		}
		defer env.Close()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			rows, err := env.Fetcher.FetchCatalogProducts(gctx)
			if err != nil {
				return eris.Wrap(err, "warm catalog products")
			}
			zap.L().Info("catalog products cached", zap.Int("rows", len(rows)))
			return nil
		})
		g.Go(func() error {
			rows, err := env.Fetcher.FetchFlashProducts(gctx)
			if err != nil {
				return eris.Wrap(err, "warm flash products")
			}
			zap.L().Info("flash products cached", zap.Int("rows", len(rows)))
			return nil
		})
		if cacheWarmSeller != "" {
			g.Go(func() error {
				rows, err := env.Fetcher.FetchReviews(gctx, cacheWarmSeller)
				if err != nil {
					return eris.Wrapf(err, "warm reviews for %s", cacheWarmSeller)
				}
				zap.L().Info("seller reviews cached",
					zap.String("seller", cacheWarmSeller),
					zap.Int("rows", len(rows)),
				)
				return nil
			})
		}
		return g.Wait()
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx, "fetch")
		if err != nil {
			return err
		}
		defer env.Close()

		n, err := env.Cache.PurgeExpired(ctx)
		if err != nil {
			return eris.Wrap(err, "purge cache")
		}
		fmt.Printf("purged %d expired entries\n", n)
		return nil
	},
}

func init() {
	cacheWarmCmd.Flags().StringVar(&cacheWarmSeller, "seller", "", "also warm this seller's reviews")
	cacheCmd.AddCommand(cacheWarmCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
