package commands

import (
	"fmt"
	"io"

	"devfeed/internal/platform/net/http/bind"
	"devfeed/internal/services/api/portfolio/domain"

	"github.com/spf13/cobra"
)

func newPostsCmd() *cobra.Command {
	var (
		tag   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List dev.to posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := domain.PostFilter{
				Tag:   tag,
				Limit: intFlag(cmd, "limit", limit),
			}
			if err := bind.Validate(f); err != nil {
				return err
			}
			posts, err := getService().Posts(cmd.Context(), f)
			if err != nil {
				return err
			}
			return output(cmd, posts, func(w io.Writer) {
				fmt.Fprintln(w, "PUBLISHED\tTITLE\tLINK")
				for _, p := range posts {
					fmt.Fprintf(w, "%s\t%s\t%s\n", p.PublishDate, p.Title, p.Link)
				}
			})
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Keep posts carrying this tag")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of posts")
	return cmd
}
