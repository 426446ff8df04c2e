package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var photosCmd = &cobra.Command{
	Use:   "photos <seller>",
	Short: "List a seller's photo reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sellerName := args[0]

		env, err := initEnv(ctx, "fetch")
		if err != nil {
			return err
		}
		defer env.Close()

		entries, err := env.Service.BuildPhotoGallery(ctx, sellerName)
		if err != nil {
			return eris.Wrapf(err, "build photo gallery for %s", sellerName)
		}
		if len(entries) == 0 {
			fmt.Printf("no photo reviews for seller %q\n", sellerName)
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s (⭐ %.1f, product %s)\n", e.ReviewerName, e.Rating, e.ProductID)
			for _, u := range e.ImageURLs {
				fmt.Printf("  %s\n", u)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(photosCmd)
}
