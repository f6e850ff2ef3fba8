package commands

import (
	"fmt"
	"io"

	"devfeed/internal/core/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Info()
			return output(cmd, info, func(w io.Writer) {
				fmt.Fprintln(w, info.String())
			})
		},
	}
}
