// internal/template/localization.go
package template

import (
	"encoding/json"
	"fmt"
	"os"
)

// locTerm is one entry of the game's localization table.
type locTerm struct {
	Key         string `json:"Key"`
	Translation string `json:"Translation"`
}

// loadLocalization reads English.json into a flat map resolved by exact key.
// Earlier game versions shipped prefix-filtered arrays; the full flat map is
// the current shape.
func loadLocalization(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Table: TableLocalization, Path: path, Err: err}
	}
	var wrapper struct {
		Terms []locTerm `json:"Terms"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, &LoadError{Table: TableLocalization, Path: path, Err: err}
	}
	if wrapper.Terms == nil {
		return nil, &LoadError{Table: TableLocalization, Path: path, Err: fmt.Errorf("missing Terms key")}
	}

	loc := make(map[string]string, len(wrapper.Terms))
	for _, term := range wrapper.Terms {
		loc[term.Key] = term.Translation
	}
	return loc, nil
}

// resolve looks up key in the localization table, returning fallback for
// unknown keys. No exception path: lookups never fail.
func resolve(loc map[string]string, key, fallback string) string {
	if text, ok := loc[key]; ok {
		return text
	}
	return fallback
}
