package commands

import (
	"fmt"

	"devfeed/internal/core/memo"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

func newCacheKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache-key <source> <operation> [params-json]",
		Short: "Print the cache key an upstream call is stored under",
		Long: `Print the cache key an upstream call is stored under.

Params are the JSON filter the call was made with; field order does not matter.

  devfeed cache-key github repositories '{"minStars":5,"language":"go"}'`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params any
			if len(args) == 3 {
				if err := sonic.ConfigStd.UnmarshalFromString(args[2], &params); err != nil {
					return fmt.Errorf("params are not valid json: %w", err)
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), memo.Key(args[0], args[1], params))
			return err
		},
	}
}
