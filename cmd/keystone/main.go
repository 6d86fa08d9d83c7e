package main

import (
	"fmt"
	"os"

	"keystone/buildcfg"
	"keystone/cmd/keystone/bootcmd"
	"keystone/cmd/keystone/identitycmd"
	"keystone/cmd/keystone/profilescmd"
	"keystone/cmd/keystone/resolvecmd"
	"keystone/cmd/keystone/ui"
	"keystone/internal/logging"

	"github.com/spf13/cobra"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	var (
		debug         bool
		noInteraction bool
	)
	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "keystone",
		Short:         "Resolve build variants into platform, graphics and app adapter",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildcfg.RuntimeFromEnv()
			if err != nil {
				return err
			}
			level := rt.LogLevel
			if debug {
				level = logging.LevelDebug
			}
			if err := logging.Configure(level); err != nil {
				return err
			}
			ui.ConfigureOutput(cmd.OutOrStdout(), noInteraction)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&noInteraction, "no-interaction", false, "Disable color and terminal detection")

	root.AddCommand(profilescmd.Cmd())
	root.AddCommand(resolvecmd.Cmd())
	root.AddCommand(identitycmd.Cmd())
	root.AddCommand(bootcmd.Cmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
