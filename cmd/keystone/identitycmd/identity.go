package identitycmd

import (
	"fmt"

	"keystone"
	"keystone/cmd/keystone/ui"
	"keystone/identity"

	"github.com/spf13/cobra"
)

// Cmd returns the "keystone identity" command.
func Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity",
		Short: "Probe this device's identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := identity.Collect(identity.Default())
			out := cmd.OutOrStdout()

			var summary ui.Summary
			summary.
				Add("UUID", ui.Value(id.UUID)).
				Add("Fingerprint", ui.Value(id.Fingerprint)).
				Add("Description", id.Description).
				Add("OS Version", id.OSVersion)
			fmt.Fprint(out, summary.String())
			if err != nil {
				for _, e := range unjoin(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning(e))
				}
			}
			return nil
		},
	}
}

// unjoin splits the error Collect returns into one error per probe.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		if _, single := err.(*keystone.IdentitySourceError); !single {
			return j.Unwrap()
		}
	}
	return []error{err}
}
