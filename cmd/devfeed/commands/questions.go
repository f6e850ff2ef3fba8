package commands

import (
	"fmt"
	"io"

	"devfeed/internal/platform/net/http/bind"
	"devfeed/internal/services/api/portfolio/domain"

	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	var (
		tag      string
		answered bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List Stack Overflow questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := domain.QuestionFilter{
				Tag:   tag,
				Limit: intFlag(cmd, "limit", limit),
			}
			if cmd.Flags().Changed("answered") {
				f.Answered = &answered
			}
			if err := bind.Validate(f); err != nil {
				return err
			}
			qs, err := getService().Questions(cmd.Context(), f)
			if err != nil {
				return err
			}
			return output(cmd, qs, func(w io.Writer) {
				fmt.Fprintln(w, "CREATED\tSCORE\tANSWERED\tTITLE")
				for _, q := range qs {
					fmt.Fprintf(w, "%s\t%d\t%t\t%s\n", q.CreatedDate, q.Score, q.Answered, q.Title)
				}
			})
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Keep questions carrying this tag")
	cmd.Flags().BoolVar(&answered, "answered", false, "Keep only answered (or with =false, unanswered) questions")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of questions")
	return cmd
}
