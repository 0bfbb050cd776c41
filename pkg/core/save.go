// pkg/core/save.go
package core

// RegimentsPerDivision is the fixed number of regiment slots in a division.
const RegimentsPerDivision = 4

// SaveDocument is the root of a save file. The editor holds exactly one
// document in memory between load and save.
type SaveDocument struct {
	PlayerSaveData PlayerSaveData `json:"PlayerSaveData"`
}

// PlayerSaveData holds player resources and the army.
type PlayerSaveData struct {
	Cash         int          `json:"Cash"`
	Food         int          `json:"Food"`
	Ammo         int          `json:"Ammo"`
	Manpower     int          `json:"Manpower"`
	ArmySaveData ArmySaveData `json:"ArmySaveData"`
}

// ArmySaveData holds the divisions and the reserve pools.
type ArmySaveData struct {
	Divisions        []*Division `json:"Divisions"`
	ReserveRegiments []*Regiment `json:"ReserveRegiments"`
	ReserveOfficers  []*Officer  `json:"ReserveOfficers"`
}

// Division is a group of up to four regiment slots plus one officer slot.
// Empty slots are null in the save file.
type Division struct {
	OfficerSave *Officer    `json:"OfficerSave"`
	Regiments   []*Regiment `json:"Regiments"`
}

// NewDivision returns an empty division with all slots vacant.
func NewDivision() *Division {
	return &Division{
		Regiments: make([]*Regiment, RegimentsPerDivision),
	}
}
