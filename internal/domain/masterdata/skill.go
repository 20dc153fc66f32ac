package masterdata

import "encoding/json"

// SkillDefinition is one authored skill from the skill master data. It is
// read-only input to the effect compilers; ownership stays with the
// master-data layer.
type SkillDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`     // "passive" or "active"
	Category    string   `json:"category,omitempty"` // authoring section, e.g. "attack"
	Effects     []Effect `json:"effects"`
}

// Effect is one declarative instruction attached to a skill. Payload carries
// the loosely typed parameter blob; Type is the fallback effect-type tag used
// when the payload omits an explicit one.
type Effect struct {
	Type    string          `json:"type,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
