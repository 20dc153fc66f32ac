package masterdata

// SpellSchool identifies one of the two fixed spell schools.
type SpellSchool string

const (
	SchoolMage   SpellSchool = "mage"
	SchoolPriest SpellSchool = "priest"
)

// SpellDefinition is one authored spell from the spell master data.
type SpellDefinition struct {
	ID     string      `json:"id"`
	Name   string      `json:"name,omitempty"`
	School SpellSchool `json:"school"`
	Tier   int         `json:"tier"`
}
