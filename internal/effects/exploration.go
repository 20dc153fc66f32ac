package effects

import (
	"github.com/epika-dev/epika-core/internal/domain/masterdata"
)

// ExplorationModifier scales exploration time, optionally restricted to one
// dungeon by id and/or name. An entry with neither scope applies globally.
type ExplorationModifier struct {
	Multiplier  float64
	DungeonID   string
	DungeonName string
}

func (m ExplorationModifier) matches(dungeonID, dungeonName string) bool {
	if m.DungeonID != "" && m.DungeonID != dungeonID {
		return false
	}
	if m.DungeonName != "" && m.DungeonName != dungeonName {
		return false
	}
	return true
}

// ExplorationModifiers is the ordered list of scoped entries produced by
// one compile pass. The neutral value is the empty list.
type ExplorationModifiers struct {
	entries []ExplorationModifier
}

// Entries returns a copy of the scoped entries in contribution order.
func (e *ExplorationModifiers) Entries() []ExplorationModifier {
	return append([]ExplorationModifier(nil), e.entries...)
}

// Multiplier returns the product of every entry matching the dungeon, or
// 1.0 when none match.
func (e *ExplorationModifiers) Multiplier(dungeonID, dungeonName string) float64 {
	product := 1.0
	for _, entry := range e.entries {
		if entry.matches(dungeonID, dungeonName) {
			product *= entry.Multiplier
		}
	}
	return product
}

// CompileExplorationModifiers runs an independent pass over the skill list.
// Only explorationTimeMultiplier contributes; an entry whose multiplier is
// exactly 1.0 is dropped as a no-op.
func CompileExplorationModifiers(skills []*masterdata.SkillDefinition) (*ExplorationModifiers, error) {
	modifiers := &ExplorationModifiers{}

	err := forEachDecodedEffect(skills, func(p *DecodedEffectPayload, _ HandlerContext) error {
		if p.Type != TypeExplorationTimeMultiplier {
			return nil
		}
		multiplier := p.Values[MultiplierKey]
		if multiplier == 1 {
			return nil
		}
		modifiers.entries = append(modifiers.entries, ExplorationModifier{
			Multiplier:  multiplier,
			DungeonID:   p.ParamOr(ParamDungeonID, ""),
			DungeonName: p.ParamOr(ParamDungeonName, ""),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return modifiers, nil
}
