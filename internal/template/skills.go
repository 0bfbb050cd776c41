// internal/template/skills.go
package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// questDef is the subset of a quest definition the skill table needs: the
// first tooltip header is the skill's localization key.
type questDef struct {
	Tooltips []struct {
		Header string `json:"Header"`
	} `json:"Tooltips"`
}

// loadSkills derives the skill table by intersecting quest definitions with
// the skill-ID set. Officer skills are implemented as quests in the game
// data, so a skill's display text lives in its quest's first tooltip header.
func loadSkills(questsDir, skillsDir string, loc map[string]string) (map[string]string, error) {
	quests, err := loadQuests(questsDir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		return nil, &LoadError{Table: TableSkills, Path: skillsDir, Err: err}
	}

	skills := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		skillID := strings.TrimSuffix(entry.Name(), ".json")
		quest, ok := quests[skillID]
		if !ok || len(quest.Tooltips) == 0 {
			continue
		}
		key := quest.Tooltips[0].Header
		skills[skillID] = resolve(loc, key, key)
	}
	return skills, nil
}

func loadQuests(dir string) (map[string]questDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Table: TableSkills, Path: dir, Err: err}
	}

	quests := make(map[string]questDef)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Table: TableSkills, Path: path, Err: err}
		}
		var quest questDef
		if err := json.Unmarshal(raw, &quest); err != nil {
			return nil, &LoadError{Table: TableSkills, Path: path, Err: err}
		}
		quests[strings.TrimSuffix(entry.Name(), ".json")] = quest
	}
	return quests, nil
}
