package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grip-data/review-insights/internal/export"
)

var bucketsXLSXPath string

var bucketsCmd = &cobra.Command{
	Use:   "buckets <seller>",
	Short: "Group a seller's reviews into merchandising categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sellerName := args[0]

		env, err := initEnv(ctx, "fetch")
		if err != nil {
			return err
		}
		defer env.Close()

		buckets, err := env.Service.BuildCategoryBuckets(ctx, sellerName)
		if err != nil {
			return eris.Wrapf(err, "build buckets for %s", sellerName)
		}
		if len(buckets) == 0 {
			fmt.Printf("no categorized reviews for seller %q\n", sellerName)
			return nil
		}

		for _, bucket := range buckets {
			fmt.Printf("📦 %s (%d)\n", bucket.Category, len(bucket.Entries))
			for _, e := range bucket.Entries {
				fmt.Printf("  - [%s] %s | %s | ⭐ %.1f | %.0f원\n",
					e.ProductKind.Label(), e.DisplayName, e.ReviewerName, e.Rating, e.CostPrice)
				fmt.Printf("    %s\n", e.Text)
			}
		}

		if bucketsXLSXPath != "" {
			if err := export.WriteBuckets(bucketsXLSXPath, buckets); err != nil {
				return err
			}
			zap.L().Info("buckets exported",
				zap.String("path", bucketsXLSXPath),
				zap.Int("buckets", len(buckets)),
			)
		}

		return nil
	},
}

func init() {
	bucketsCmd.Flags().StringVar(&bucketsXLSXPath, "xlsx", "", "also write buckets to an xlsx workbook")
	rootCmd.AddCommand(bucketsCmd)
}
