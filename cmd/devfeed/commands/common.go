package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"devfeed/internal/modkit"
	"devfeed/internal/platform/config"
	"devfeed/internal/services/api"
	portfolio "devfeed/internal/services/api/portfolio/module"
	portfoliosvc "devfeed/internal/services/api/portfolio/service"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// getService wires the portfolio service the same way the API does
// one CLI run shares one cache so repeated lookups within a command are free
func getService() portfoliosvc.Service {
	cfg := config.New()
	deps := modkit.Deps{Cfg: cfg, Cache: api.CacheFromConfig(cfg, nil)}
	return portfolio.NewWith(deps, portfolio.FromConfig(cfg)).Service()
}

// intFlag returns a pointer to the flag value only when the user set it
func intFlag(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

// output renders v as json or hands a tab writer to text
func output(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	case "text", "":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		text(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q, want text or json", outputFormat)
	}
}
