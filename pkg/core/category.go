// pkg/core/category.go
package core

// Category groups raw unit types into the four supply classes.
type Category string

const (
	CategoryInfantry  Category = "INFANTRY"
	CategoryCavalry   Category = "CAVALRY"
	CategoryArtillery Category = "ARTILLERY"
	CategorySupply    Category = "SUPPLY"
)

// rawTypeCategories maps every RawUnitType the game ships to its category.
var rawTypeCategories = map[string]Category{
	"RECRUIT_INFANTRY":      CategoryInfantry,
	"LINE_INFANTRY":         CategoryInfantry,
	"LIGHT_INFANTRY":        CategoryInfantry,
	"HEAVY_LINE_INFANTRY":   CategoryInfantry,
	"RECRUIT_LIGHT_CAVALRY": CategoryCavalry,
	"LIGHT_CAVALRY":         CategoryCavalry,
	"HEAVY_CAVALRY":         CategoryCavalry,
	"RECRUIT_ARTILLERY":     CategoryArtillery,
	"LIGHT_ARTILLERY":       CategoryArtillery,
	"ARTILLERY":             CategoryArtillery,
	"SUPPLY_CARAVAN":        CategorySupply,
}

// CategoryForRawType resolves a RawUnitType tag to its category.
func CategoryForRawType(raw string) (Category, bool) {
	c, ok := rawTypeCategories[raw]
	return c, ok
}
