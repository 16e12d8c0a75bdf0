package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"internship-assistant/internal/talent"
)

var recreate bool

var reindexCmd = &cobra.Command{
	Use:       "reindex <seekers|posts|all>",
	Short:     "Rebuild the semantic index from the relational store",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{talent.TargetSeekers, talent.TargetPosts, talent.TargetAll},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.uc.Reindex(ctx, talent.ReindexInput{Target: args[0], Recreate: recreate})
		if err != nil {
			a.l.Errorf(ctx, "indexer.reindex: %v", err)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d seekers and %d posts.\n", out.Seekers, out.Posts)
		return nil
	},
}

func init() {
	reindexCmd.Flags().BoolVar(&recreate, "recreate", false, "drop the collection before indexing")
}
