package keystone

import (
	"errors"
	"fmt"
)

// ErrIdentityUnavailable indicates a required identity source could not
// produce a trustworthy value. No substitute value is ever returned with it.
var ErrIdentityUnavailable = errors.New("identity source unavailable")

// ConfigError indicates a build configuration that cannot describe a real
// build.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return "build config: " + e.Field + ": " + e.Message
	}
	return "build config: " + e.Message
}

// ConfigurationExhaustionError means no selection rule matched the build.
// The process must not start with a partially resolved object graph.
type ConfigurationExhaustionError struct {
	Component string
	Config    BuildConfig
}

func (e *ConfigurationExhaustionError) Error() string {
	return fmt.Sprintf("no %s implementation for build %s", e.Component, e.Config)
}

// InitializationContractError means a platform implementation was handed out
// without its shared initialization having taken effect.
type InitializationContractError struct {
	Platform string
}

func (e *InitializationContractError) Error() string {
	return fmt.Sprintf("platform %s did not complete post-construction init", e.Platform)
}

// IdentitySourceError reports which identity source failed and why.
// It matches ErrIdentityUnavailable with errors.Is.
type IdentitySourceError struct {
	Source string
	Err    error
}

func (e *IdentitySourceError) Error() string {
	if e.Err == nil {
		return e.Source + ": " + ErrIdentityUnavailable.Error()
	}
	return e.Source + ": " + ErrIdentityUnavailable.Error() + ": " + e.Err.Error()
}

func (e *IdentitySourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIdentityUnavailable}
	}
	return []error{ErrIdentityUnavailable, e.Err}
}
