// internal/savefile/savefile.go

// Package savefile reads and writes the save document. Writes go through a
// temp file in the destination directory followed by an atomic rename, so a
// failed write never leaves a partially written save behind.
package savefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
)

// Load reads a save document from path.
func Load(path string) (*core.SaveDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save file %s: %w", path, err)
	}

	var doc core.SaveDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing save file %s: %w", path, err)
	}

	normalize(&doc)
	return &doc, nil
}

// normalize fills in list scaffolding so the rest of the editor can index
// without nil checks. Null divisions become empty ones and every division
// carries four regiment slots.
func normalize(doc *core.SaveDocument) {
	army := &doc.PlayerSaveData.ArmySaveData
	if army.Divisions == nil {
		army.Divisions = []*core.Division{}
	}
	if army.ReserveRegiments == nil {
		army.ReserveRegiments = []*core.Regiment{}
	}
	if army.ReserveOfficers == nil {
		army.ReserveOfficers = []*core.Officer{}
	}
	for i, div := range army.Divisions {
		if div == nil {
			army.Divisions[i] = core.NewDivision()
			continue
		}
		for len(div.Regiments) < core.RegimentsPerDivision {
			div.Regiments = append(div.Regiments, nil)
		}
	}
}

// Write serializes the document to path atomically: full write to a temp
// file in the same directory, then rename over the destination. The temp
// file is removed on any failure.
func Write(path string, doc *core.SaveDocument) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".moc-save-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if err := writeDocument(tmp, doc); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing save file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing save file %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing save file %s: %w", path, err)
	}
	return nil
}

func writeDocument(f *os.File, doc *core.SaveDocument) error {
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Keep non-ASCII and angle brackets verbatim, matching the game's own
	// output.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return f.Sync()
}
