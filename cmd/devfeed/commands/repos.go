package commands

import (
	"fmt"
	"io"

	"devfeed/internal/platform/net/http/bind"
	"devfeed/internal/services/api/portfolio/domain"

	"github.com/spf13/cobra"
)

func newReposCmd() *cobra.Command {
	var (
		language string
		minStars int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List GitHub repositories with their language breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := domain.RepoFilter{
				Language: language,
				MinStars: intFlag(cmd, "min-stars", minStars),
				Limit:    intFlag(cmd, "limit", limit),
			}
			if err := bind.Validate(f); err != nil {
				return err
			}
			repos, err := getService().Repositories(cmd.Context(), f)
			if err != nil {
				return err
			}
			return output(cmd, repos, func(w io.Writer) {
				fmt.Fprintln(w, "NAME\tSTARS\tFORKS\tUPDATED\tLANGUAGES")
				for _, r := range repos {
					fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", r.Name, r.Stars, r.Forks, r.LastUpdated, languages(r.Languages))
				}
			})
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Keep repositories using this language")
	cmd.Flags().IntVar(&minStars, "min-stars", 0, "Keep repositories with at least this many stars")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of repositories")
	return cmd
}

func languages(ls []domain.Language) string {
	out := ""
	for i, l := range ls {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s:%.1f%%", l.Name, l.Percentage)
	}
	return out
}
