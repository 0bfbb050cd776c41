// internal/regiment/errors.go
package regiment

import (
	"fmt"
	"strings"
)

// UnknownUnitError reports a synthesis request for a unit ID absent from the
// unit table. The existing regiment slot is left untouched.
type UnknownUnitError struct {
	UnitID string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit ID %q", e.UnitID)
}

// NotReadyError reports that synthesis was requested before every template
// table was loaded.
type NotReadyError struct {
	Missing []string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("templates not ready, missing: %s", strings.Join(e.Missing, ", "))
}
