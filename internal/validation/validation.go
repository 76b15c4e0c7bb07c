package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var targetNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// TargetName validates a config target name. Names are lowercase
// slugs so they stay unambiguous on the command line.
func TargetName(name string) error {
	if !targetNameRegex.MatchString(name) {
		return fmt.Errorf("invalid target name (use lowercase letters, digits and dashes): %s", name)
	}
	return nil
}

// Suffix validates a temp-file suffix. It must start with a dot and
// must not contain path separators, so path+suffix stays in the same
// directory as the target.
func Suffix(suffix string) error {
	if !strings.HasPrefix(suffix, ".") {
		return fmt.Errorf("suffix must start with a dot: %s", suffix)
	}
	if strings.ContainsAny(suffix, `/\`) {
		return fmt.Errorf("suffix must not contain path separators: %s", suffix)
	}
	return nil
}

// Required checks for empty strings
func Required(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// PositiveInt checks that an integer value is greater than zero
func PositiveInt(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
