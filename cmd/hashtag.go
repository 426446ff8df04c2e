package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/grip-data/review-insights/internal/review"
)

var hashtagPromptFile string

var hashtagCmd = &cobra.Command{
	Use:   "hashtag <seller>",
	Short: "Generate seller hashtags from sampled reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sellerName := args[0]

		template := ""
		if hashtagPromptFile != "" {
			data, err := os.ReadFile(hashtagPromptFile)
			if err != nil {
				return eris.Wrapf(err, "read prompt file %s", hashtagPromptFile)
			}
			template = string(data)
		}

		env, err := initEnv(ctx, "hashtag")
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.Service.BuildSample(ctx, sellerName, template)
		if err != nil {
			return eris.Wrapf(err, "generate hashtags for %s", sellerName)
		}
		if len(result.Reviews) == 0 {
			fmt.Printf("seller %q has no reviews; nothing to summarize\n", sellerName)
			return nil
		}

		fmt.Println("💫 해시태그")
		fmt.Println(result.Summary)
		fmt.Printf("\n🔎 샘플 리뷰 (%d건)\n", len(result.Reviews))
		for i, r := range result.Reviews {
			fmt.Printf("%d. [%d자] %s — %s\n", i+1, r.TextLength, review.CleanText(r.Text), r.ReviewerName)
		}
		return nil
	},
}

func init() {
	hashtagCmd.Flags().StringVar(&hashtagPromptFile, "prompt-file", "", "prompt template file ({reviews} placeholder)")
	rootCmd.AddCommand(hashtagCmd)
}
