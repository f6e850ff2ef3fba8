package commands

import (
	"fmt"
	"io"
	"strings"

	"devfeed/internal/platform/net/http/bind"
	"devfeed/internal/services/api/portfolio/domain"

	"github.com/spf13/cobra"
)

func newActivityCmd() *cobra.Command {
	var (
		tags  []string
		after string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the merged activity timeline, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := domain.ActivityInput{
				Tags:  tags,
				After: after,
				Limit: intFlag(cmd, "limit", limit),
			}
			if err := bind.Validate(in); err != nil {
				return err
			}
			items, err := getService().AllActivity(cmd.Context(), in)
			if err != nil {
				return err
			}
			return output(cmd, items, func(w io.Writer) {
				fmt.Fprintln(w, "DATE\tTYPE\tTITLE\tTAGS")
				for _, a := range items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Date, a.Type, a.Title, strings.Join(a.Tags, ","))
				}
			})
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Keep activities sharing at least one tag")
	cmd.Flags().StringVar(&after, "after", "", "Keep activities dated strictly after this timestamp")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of activities")
	return cmd
}
