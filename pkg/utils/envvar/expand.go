// Package envvar provides utilities for working with environment variables.
package envvar

import (
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// placeholderPattern matches ${VAR_NAME} and ${VAR_NAME:-default} placeholders
// in configuration values. Groups: 1 = variable name, 2 = optional default.
var placeholderPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// defaultMarker is the delimiter for the default value syntax.
const defaultMarker = ":-"

// Expand replaces ${VAR_NAME} and ${VAR_NAME:-default} placeholders in value
// with the corresponding environment variable. Unset variables fall back to
// the default when one is given and to an empty string otherwise. Bare $VAR
// references without braces are left untouched.
func Expand(value string) string {
	if value == "" {
		return value
	}

	return placeholderPattern.ReplaceAllStringFunc(value, expandMatch)
}

func expandMatch(match string) string {
	groups := placeholderPattern.FindStringSubmatch(match)
	name := groups[1]

	if envValue, exists := os.LookupEnv(name); exists {
		return envValue
	}

	if len(groups) > 2 && groups[2] != "" {
		return groups[2]
	}

	// ${VAR:-} declares an explicit empty default, so it expands silently.
	if strings.Contains(match, defaultMarker) {
		return ""
	}

	logrus.WithField("variable", name).Warn("environment variable not set")

	return ""
}
