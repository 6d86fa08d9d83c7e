package bootcmd

import (
	"fmt"

	"keystone/bootstrap"
	"keystone/buildcfg"
	"keystone/cmd/keystone/cmdutil"
	"keystone/cmd/keystone/ui"
	"keystone/internal/logging"
	"keystone/platform"

	"github.com/spf13/cobra"
)

// Cmd returns the "keystone boot" command.
func Cmd() *cobra.Command {
	var (
		flags cmdutil.BuildFlags
		vr    bool
	)

	cmd := &cobra.Command{
		Use:   "boot",
		Short: "Construct the platform, graphics and app adapter for a build",
		Long: `Run the startup sequence for a build and report what it produced.

On builds that can run either in VR or windowed, --vr (or KEYSTONE_VR_MODE)
decides which way the platform starts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rb, err := flags.Resolve()
			if err != nil {
				return err
			}
			rt, err := buildcfg.RuntimeFromEnv()
			if err != nil {
				return err
			}
			preferVR := rt.VRMode
			if cmd.Flags().Changed("vr") {
				preferVR = vr
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Banner(rb.Config.String(), rb.Source))

			steps := ui.NewStepOutput(out)
			defer steps.Close()

			app, err := bootstrap.New(bootstrap.Startup{
				Config: rb.Config,
				Logger: logging.Component("bootstrap"),
				Tracer: steps.Tracer("keystone/cmd"),
				PlatformOptions: []platform.Option{
					platform.WithVRDetector(func() bool { return preferVR }),
					platform.WithLogger(logging.Component("platform")),
				},
			}).Run(cmd.Context())
			if err != nil {
				return err
			}

			var summary ui.Summary
			summary.
				Add("Platform", app.Platform.Name()).
				Add("Subplatform", ui.Value(app.Platform.Subplatform())).
				Add("VR mode", ui.YesNo(app.Platform.VRMode())).
				Add("Touch screen", ui.YesNo(app.Platform.HasTouchScreen())).
				Add("Graphics", app.Graphics.Name()).
				Add("Adapter", app.Adapter.Kind().String()).
				Add("Windowed", ui.YesNo(app.Adapter.Windowed()))
			fmt.Fprintln(out)
			fmt.Fprint(out, summary.String())
			return nil
		},
	}
	flags.Bind(cmd)
	cmd.Flags().BoolVar(&vr, "vr", false, "Start dual-mode builds in VR")
	return cmd
}
