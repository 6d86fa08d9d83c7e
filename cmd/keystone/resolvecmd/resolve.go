package resolvecmd

import (
	"fmt"

	"keystone/appadapter"
	"keystone/buildcfg"
	"keystone/cmd/keystone/cmdutil"
	"keystone/cmd/keystone/ui"
	"keystone/graphics"
	"keystone/platform"

	"github.com/spf13/cobra"
)

// Cmd returns the "keystone resolve" command.
func Cmd() *cobra.Command {
	var (
		flags  cmdutil.BuildFlags
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve build metadata and show the selected implementations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rb, err := flags.Resolve()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asYAML {
				data, err := buildcfg.Marshal(rb.Metadata)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			plat, err := platform.Select(rb.Config)
			if err != nil {
				return err
			}
			var adapter string
			if k, err := appadapter.Select(rb.Config, false); err != nil {
				adapter = ui.Failure(err)
			} else if rb.Config.DualMode() {
				vr, _ := appadapter.Select(rb.Config, true)
				adapter = ui.Adapters(k.String(), vr.String()) + " (decided at startup)"
			} else {
				adapter = k.String()
			}

			var summary ui.Summary
			summary.
				Add("Source", rb.Source).
				Add("Build", rb.Config.String()).
				Add("Platform", plat).
				Add("Graphics", graphics.New(rb.Config).Name()).
				Add("Adapter", adapter)
			fmt.Fprint(out, summary.String())
			return nil
		},
	}
	flags.Bind(cmd)
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the resolved metadata as yaml")
	return cmd
}
