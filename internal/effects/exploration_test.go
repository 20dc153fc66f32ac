package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
)

func TestCompileExplorationModifiers(t *testing.T) {
	skills := []*masterdata.SkillDefinition{
		testSkill("pathfinder",
			`{"effectType":"explorationTimeMultiplier","value":{"multiplier":0.8}}`),
		testSkill("cartographer",
			`{"effectType":"explorationTimeMultiplier","parameters":{"dungeonId":"d-1"},"value":{"multiplier":0.5}}`),
		testSkill("local-guide",
			`{"effectType":"explorationTimeMultiplier","parameters":{"dungeonName":"Mines"},"value":{"multiplier":0.9}}`),
		testSkill("no-op",
			`{"effectType":"explorationTimeMultiplier","value":{"multiplier":1}}`),
	}

	modifiers, err := CompileExplorationModifiers(skills)
	require.NoError(t, err)

	// the exact-1.0 entry is dropped
	assert.Len(t, modifiers.Entries(), 3)

	// unscoped entry applies everywhere
	assert.InDelta(t, 0.8, modifiers.Multiplier("elsewhere", "Elsewhere"), 1e-9)
	// id-scoped stacks with the global entry
	assert.InDelta(t, 0.4, modifiers.Multiplier("d-1", "Caverns"), 1e-9)
	// name-scoped stacks with the global entry
	assert.InDelta(t, 0.72, modifiers.Multiplier("d-2", "Mines"), 1e-9)
	// everything matching stacks
	assert.InDelta(t, 0.36, modifiers.Multiplier("d-1", "Mines"), 1e-9)
}

func TestExplorationModifiers_EmptyYieldsOne(t *testing.T) {
	modifiers, err := CompileExplorationModifiers(nil)
	require.NoError(t, err)
	assert.Empty(t, modifiers.Entries())
	assert.Equal(t, 1.0, modifiers.Multiplier("any", "Any"))
}

func TestExplorationModifiers_EntriesReturnsACopy(t *testing.T) {
	modifiers := &ExplorationModifiers{entries: []ExplorationModifier{{Multiplier: 0.5}}}

	entries := modifiers.Entries()
	entries[0].Multiplier = 99

	assert.Equal(t, 0.5, modifiers.Entries()[0].Multiplier)
}
