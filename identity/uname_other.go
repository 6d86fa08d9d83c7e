//go:build !linux && !darwin

package identity

import "errors"

func unameRelease() (string, error) {
	return "", errors.New("uname: not supported on this platform")
}
