package buildcfg

import (
	"fmt"
	"sort"

	"keystone"
)

// Profile is a named supported build.
type Profile struct {
	Name     string
	Summary  string
	Metadata Metadata
}

// Config resolves the profile's metadata.
func (p Profile) Config() (keystone.BuildConfig, error) {
	cfg, err := Resolve(p.Metadata)
	if err != nil {
		return keystone.BuildConfig{}, fmt.Errorf("resolve profile %q: %w", p.Name, err)
	}
	return cfg, nil
}

var profiles = map[string]Profile{
	"android":           {Summary: "Android, no storefront", Metadata: Metadata{OS: "android"}},
	"android-google":    {Summary: "Android, Google Play", Metadata: Metadata{OS: "android", Variant: VariantGoogle}},
	"android-amazon":    {Summary: "Android, Amazon Appstore", Metadata: Metadata{OS: "android", Variant: VariantAmazon}},
	"android-cardboard": {Summary: "Android, Cardboard VR", Metadata: Metadata{OS: "android", Variant: VariantCardboard}},
	"android-test":      {Summary: "Android test build", Metadata: Metadata{OS: "android", Test: true}},

	"mac":          {Summary: "macOS, SDL window", Metadata: Metadata{OS: "darwin", SDL: true}},
	"mac-xcode":    {Summary: "macOS, Xcode app", Metadata: Metadata{OS: "darwin", Xcode: true}},
	"mac-headless": {Summary: "macOS server", Metadata: Metadata{OS: "darwin", Headless: true}},
	"ios-tvos":     {Summary: "iOS and tvOS", Metadata: Metadata{OS: "ios", Xcode: true}},

	"windows":          {Summary: "Windows, SDL window", Metadata: Metadata{OS: "windows", SDL: true}},
	"windows-oculus":   {Summary: "Windows, Oculus Rift or SDL window", Metadata: Metadata{OS: "windows", Variant: VariantOculus, SDL: true}},
	"windows-headless": {Summary: "Windows server", Metadata: Metadata{OS: "windows", Headless: true}},

	"linux":               {Summary: "Linux, SDL window", Metadata: Metadata{OS: "linux", SDL: true}},
	"linux-headless":      {Summary: "Linux server", Metadata: Metadata{OS: "linux", Headless: true}},
	"linux-test":          {Summary: "Linux test build, SDL window", Metadata: Metadata{OS: "linux", SDL: true, Test: true}},
	"linux-headless-test": {Summary: "Linux headless test build", Metadata: Metadata{OS: "linux", Headless: true, Test: true}},

	"other":          {Summary: "Other OS, SDL window", Metadata: Metadata{OS: "freebsd", SDL: true}},
	"other-headless": {Summary: "Other OS server", Metadata: Metadata{OS: "freebsd", Headless: true}},
}

// Profiles returns every supported build, sorted by name.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for name, p := range profiles {
		p.Name = name
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupProfile returns the named profile.
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, false
	}
	p.Name = name
	return p, true
}
