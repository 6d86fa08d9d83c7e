package cmdutil

import (
	"fmt"
	"strings"

	"keystone"
	"keystone/buildcfg"

	"github.com/spf13/cobra"
)

// BuildFlags choose where build metadata comes from.
type BuildFlags struct {
	Profile string
	Config  string
}

func (f *BuildFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Profile, "profile", "", "Named build profile (see 'keystone profiles')")
	cmd.Flags().StringVar(&f.Config, "config", "", "Build metadata file (default "+buildcfg.DefaultPath()+" when present)")
	cmd.MarkFlagsMutuallyExclusive("profile", "config")
}

// ResolvedBuild is a build config together with where it came from.
type ResolvedBuild struct {
	Config   keystone.BuildConfig
	Metadata buildcfg.Metadata
	Source   string
}

// Resolve loads metadata from the profile, the file, the default file or the
// binary itself, in that order, then applies KEYSTONE_* overrides.
func (f *BuildFlags) Resolve() (ResolvedBuild, error) {
	var (
		m      buildcfg.Metadata
		source string
	)
	switch {
	case strings.TrimSpace(f.Profile) != "":
		p, ok := buildcfg.LookupProfile(strings.TrimSpace(f.Profile))
		if !ok {
			return ResolvedBuild{}, fmt.Errorf("unknown profile %q", f.Profile)
		}
		m, source = p.Metadata, "profile "+p.Name
	case strings.TrimSpace(f.Config) != "":
		loaded, err := buildcfg.Load(f.Config)
		if err != nil {
			return ResolvedBuild{}, err
		}
		m, source = loaded, f.Config
	default:
		loaded, ok, err := buildcfg.LoadDefault()
		if err != nil {
			return ResolvedBuild{}, err
		}
		if ok {
			m, source = loaded, buildcfg.DefaultPath()
		} else {
			m, source = buildcfg.Linked(), "binary"
		}
	}

	m, err := buildcfg.FromEnv(m)
	if err != nil {
		return ResolvedBuild{}, err
	}
	cfg, err := buildcfg.Resolve(m)
	if err != nil {
		return ResolvedBuild{}, err
	}
	return ResolvedBuild{Config: cfg, Metadata: m, Source: source}, nil
}
