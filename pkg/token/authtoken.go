package token

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupportedPlatform is returned when no conventional agent
// authtoken location is known for the current operating system and no
// override was supplied.
var ErrUnsupportedPlatform = errors.New("no default authtoken path for this platform")

// DefaultAgentTokenPath returns the platform's conventional location of
// the node agent's authtoken.secret file.
func DefaultAgentTokenPath() (string, error) {
	switch runtime.GOOS {
	case "linux":
		return "/var/lib/latticed/authtoken.secret", nil
	case "darwin":
		return "/Library/Application Support/Lattice/authtoken.secret", nil
	case "windows":
		return `C:\ProgramData\Lattice\authtoken.secret`, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
}

// AgentTokenPath returns the override when non-empty, else the platform
// default.
func AgentTokenPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return DefaultAgentTokenPath()
}
