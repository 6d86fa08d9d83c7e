package buildcfg

import (
	"runtime"
	"strconv"

	"keystone"
)

// Set with -ldflags "-X keystone/buildcfg.buildVariant=oculus" and friends.
var (
	buildOS       string
	buildVariant  string
	buildHeadless string
	buildSDL      = "true"
	buildXcode    string
	buildTest     string
)

// Linked returns the metadata baked into the binary at link time. The OS
// defaults to runtime.GOOS.
func Linked() Metadata {
	goos := buildOS
	if goos == "" {
		goos = runtime.GOOS
	}
	return Metadata{
		OS:       goos,
		Variant:  buildVariant,
		Headless: linkBool(buildHeadless),
		SDL:      linkBool(buildSDL),
		Xcode:    linkBool(buildXcode),
		Test:     linkBool(buildTest),
	}
}

// Current resolves the metadata baked into the binary.
func Current() (keystone.BuildConfig, error) {
	return Resolve(Linked())
}

func linkBool(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}
