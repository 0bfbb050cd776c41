// pkg/core/officer.go
package core

// Officer is a commanding officer attached to a division or the reserve pool.
// Name and LastName are assigned at creation and never mutated by the editor.
type Officer struct {
	Name                 string       `json:"Name"`
	LastName             string       `json:"LastName"`
	Level                int          `json:"Level"`
	Experience           int          `json:"Experience"`
	SkillPointsAvailable int          `json:"SkillPointsAvailable"`
	SkillSaves           []string     `json:"SkillSaves"`
	Uniform              int          `json:"Uniform"`
	Head                 int          `json:"Head"`
	Hat                  int          `json:"Hat"`
	Hair                 int          `json:"Hair"`
	StatsTracker         StatsTracker `json:"StatsTracker"`
}

// NewOfficer returns the blank officer template: level 1, no skill points,
// no skills assigned.
func NewOfficer() *Officer {
	return &Officer{
		Name:       "New",
		LastName:   "Officer",
		Level:      1,
		SkillSaves: []string{},
	}
}

// SetLevel replaces the officer's level.
func (o *Officer) SetLevel(level int) {
	o.Level = level
}

// SetSkillPoints replaces the unspent skill point count.
func (o *Officer) SetSkillPoints(points int) {
	o.SkillPointsAvailable = points
}

// SetSkills replaces the assigned skill list wholesale. Callers filter out
// blank selections before assignment.
func (o *Officer) SetSkills(skills []string) {
	o.SkillSaves = skills
}
