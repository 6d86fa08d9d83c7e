package profilescmd

import (
	"fmt"

	"keystone/appadapter"
	"keystone/buildcfg"
	"keystone/cmd/keystone/ui"
	"keystone/graphics"
	"keystone/platform"

	"github.com/spf13/cobra"
)

// Cmd returns the "keystone profiles" command.
func Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List supported builds and what each resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := Rows()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.ProfileTable(rows))
			return nil
		},
	}
}

// Rows resolves every profile into a table row.
func Rows() ([][]string, error) {
	var rows [][]string
	for _, p := range buildcfg.Profiles() {
		cfg, err := p.Config()
		if err != nil {
			return nil, err
		}
		plat, err := platform.Select(cfg)
		if err != nil {
			return nil, err
		}
		adapter, err := appadapter.Select(cfg, false)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.Name, err)
		}
		adapterCol := ui.Adapters(adapter.String(), "")
		if cfg.DualMode() {
			vr, err := appadapter.Select(cfg, true)
			if err != nil {
				return nil, fmt.Errorf("profile %s: %w", p.Name, err)
			}
			adapterCol = ui.Adapters(adapter.String(), vr.String())
		}
		rows = append(rows, []string{p.Name, cfg.String(), plat, graphics.New(cfg).Name(), adapterCol})
	}
	return rows, nil
}
