package procutil

import (
	"os"
	"strings"
)

// EnvVar names an environment variable consulted for a process default.
type EnvVar string

// LookupBoolEnv reads a boolean toggle from the environment, falling back to
// defaultValue when unset or unrecognized.
func LookupBoolEnv(name EnvVar, defaultValue bool) bool {
	if val, ok := os.LookupEnv(string(name)); ok {
		switch strings.ToLower(val) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
	}
	return defaultValue
}
