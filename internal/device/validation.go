package device

import (
	"fmt"
	"strings"
)

// maxNameLength bounds device names; names key the room index and appear
// verbatim in rendered descriptions.
const maxNameLength = 100

// ValidateName checks that a name is usable as a device identity.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return nil
}
