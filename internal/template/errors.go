// internal/template/errors.go
package template

import "fmt"

// LoadError reports a missing, unreadable, or malformed template file.
// A LoadError from Load leaves the store fully unloaded.
type LoadError struct {
	Table string // table name, one of TableNames
	Path  string // file or directory that failed
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s template from %s: %v", e.Table, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
