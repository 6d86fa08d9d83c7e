// Package buildcfg turns build metadata into a keystone.BuildConfig.
//
// Metadata comes from one of three places:
//   - link-time variables set with -ldflags -X (Current)
//   - a yaml file naming a profile and overrides (Load)
//   - KEYSTONE_* environment variables layered on top (FromEnv)
//
// Resolve is the single pure mapping from metadata to a config. Every named
// profile resolves; metadata that cannot describe a real build is rejected
// with a *keystone.ConfigError.
package buildcfg
