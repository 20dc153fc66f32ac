package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

func compile(t *testing.T, skills ...*masterdata.SkillDefinition) *ActorEffectBundle {
	t.Helper()
	bundle, err := CompileActorEffects(skills)
	require.NoError(t, err)
	return bundle
}

func TestDamageHandlers_UnknownDamageTypeIsConfigurationError(t *testing.T) {
	skill := testSkill("typo",
		`{"effectType":"damageDealtPercent","parameters":{"damageType":"psychic"},"value":{"valuePercent":10}}`)

	_, err := CompileActorEffects([]*masterdata.SkillDefinition{skill})
	require.Error(t, err)
	assert.True(t, apperr.IsConfiguration(err))
	assert.Contains(t, err.Error(), "psychic")
	assert.Contains(t, err.Error(), "typo")
}

func TestDamageHandlers_CategoryAndRaceShareTheMultiplierMap(t *testing.T) {
	bundle := compile(t,
		testSkill("slayer-a",
			`{"effectType":"categoryDamageMultiplier","parameters":{"category":"dragon"},"value":{"multiplier":1.5}}`),
		testSkill("slayer-b",
			`{"effectType":"raceDamageMultiplier","parameters":{"race":"dragon"},"value":{"multiplier":2}}`),
	)

	assert.InDelta(t, 3.0, bundle.Damage.CategoryMultipliers["dragon"], 1e-9)
}

func TestSpellHandlers_ChargeFolding(t *testing.T) {
	bundle := compile(t,
		testSkill("scholar",
			`{"effectType":"spellCharges","value":{"bonusCharges":2,"multiplier":1.5}}`),
		testSkill("sage",
			`{"effectType":"spellCharges","value":{"bonusCharges":1,"multiplier":2}}`),
		testSkill("pyromancer",
			`{"effectType":"spellCharges","parameters":{"spellId":"fireball"},"value":{"flatCharges":3}}`),
	)

	assert.Equal(t, 3.0, bundle.Spell.DefaultCharges.BonusCharges)
	assert.InDelta(t, 3.0, bundle.Spell.DefaultCharges.Multiplier, 1e-9)

	perSpell, ok := bundle.Spell.PerSpellCharges["fireball"]
	require.True(t, ok)
	assert.Equal(t, 3.0, perSpell.FlatCharges)
	assert.Equal(t, 1.0, perSpell.Multiplier)
}

func TestSpellHandlers_PerSpellDamageMultipliers(t *testing.T) {
	bundle := compile(t,
		testSkill("focus-a",
			`{"effectType":"spellDamageMultiplier","value":{"multiplier":2,"spellIds":["fireball","meteor"]}}`),
		testSkill("focus-b",
			`{"effectType":"spellDamageMultiplier","value":{"multiplier":1.5,"spellIds":["fireball"]}}`),
	)

	assert.InDelta(t, 3.0, bundle.Spell.DealtMultipliers["fireball"], 1e-9)
	assert.Equal(t, 2.0, bundle.Spell.DealtMultipliers["meteor"])
}

func TestStatusHandlers_ResistanceRecombinesPerStatus(t *testing.T) {
	bundle := compile(t,
		testSkill("iron-will",
			`{"effectType":"statusResistancePercent","parameters":{"statusId":"poison"},"value":{"valuePercent":50}}`),
		testSkill("antidote",
			`{"effectType":"statusResistanceMultiplier","parameters":{"statusId":"poison"},"value":{"multiplier":2}}`),
	)

	assert.InDelta(t, 3.0, bundle.Status.Resistance["poison"], 1e-9)
	_, present := bundle.Status.Resistance["sleep"]
	assert.False(t, present)
}

func TestStatusHandlers_TimedBuffTrigger(t *testing.T) {
	bundle := compile(t,
		testSkill("crescendo",
			`{"effectType":"timedBuffTrigger","familyId":"crescendo-fam","parameters":{"mode":"every","scope":"party"},"value":{"triggerTurn":3,"attackPercent":20}}`),
		testSkill("opening-move",
			`{"effectType":"timedBuffTrigger","value":{"triggerTurn":1}}`),
	)

	require.Len(t, bundle.Status.BuffTriggers, 2)

	first := bundle.Status.BuffTriggers[0]
	assert.Equal(t, "crescendo-fam", first.FamilyID)
	assert.Equal(t, 3, first.TriggerTurn)
	assert.Equal(t, "every", first.Mode)
	assert.Equal(t, ScopeParty, first.Scope)
	assert.Equal(t, map[string]float64{"attackPercent": 20}, first.Modifiers)

	second := bundle.Status.BuffTriggers[1]
	assert.Equal(t, string(TypeTimedBuffTrigger), second.FamilyID)
	assert.Equal(t, "exact", second.Mode)
	assert.Equal(t, ScopeSelf, second.Scope)
	assert.Empty(t, second.Modifiers)
}

func TestResurrectionHandlers_IntervalsAndRetreat(t *testing.T) {
	bundle := compile(t,
		testSkill("sacrifice-a", `{"effectType":"sacrificeInterval","value":{"turns":5}}`),
		testSkill("sacrifice-b", `{"effectType":"sacrificeInterval","value":{"turns":3}}`),
		testSkill("sacrifice-c", `{"effectType":"sacrificeInterval","value":{"turns":8}}`),
		testSkill("coward", `{"effectType":"retreatAtTurn","value":{"turn":10}}`),
		testSkill("escape-artist", `{"effectType":"retreatAtTurn","value":{"turn":6,"chance":40}}`),
		testSkill("lucky", `{"effectType":"retreatAtTurn","value":{"chance":70}}`),
	)

	assert.Equal(t, 3, bundle.Resurrection.SacrificeIntervalTurns)
	// earliest turn and best chance win independently
	assert.Equal(t, 6, bundle.Resurrection.RetreatTurn)
	assert.Equal(t, 70.0, bundle.Resurrection.RetreatChance)
}

func TestResurrectionHandlers_ActiveTriggersAppend(t *testing.T) {
	bundle := compile(t,
		testSkill("guardian-angel", `{"effectType":"resurrectionActive","value":{"chance":25}}`),
		testSkill("undying", `{"effectType":"resurrectionActive","value":{"chance":10,"hpPercent":50}}`),
	)

	require.Len(t, bundle.Resurrection.Active, 2)
	assert.Equal(t, 100.0, bundle.Resurrection.Active[0].HPPercent)
	assert.Equal(t, 50.0, bundle.Resurrection.Active[1].HPPercent)
}

func TestMiscHandlers_RowProfileOverridesStanceAndUnionsAptitudes(t *testing.T) {
	bundle := compile(t,
		testSkill("vanguard",
			`{"effectType":"rowProfile","parameters":{"stance":"front"},"value":{"aptitudes":["melee"]}}`),
		testSkill("skirmisher",
			`{"effectType":"rowProfile","parameters":{"stance":"back"},"value":{"aptitudes":["ranged"]}}`),
	)

	assert.Equal(t, "back", bundle.Misc.Row.Stance)
	assert.True(t, bundle.Misc.Row.MeleeAptitude)
	assert.True(t, bundle.Misc.Row.RangedAptitude)
}

func TestMiscHandlers_AbsorptionKeepsMaxPerPart(t *testing.T) {
	bundle := compile(t,
		testSkill("leech-a", `{"effectType":"absorption","value":{"percent":10,"capPercent":50}}`),
		testSkill("leech-b", `{"effectType":"absorption","value":{"percent":25}}`),
	)

	assert.Equal(t, 25.0, bundle.Misc.AbsorptionPercent)
	assert.Equal(t, 50.0, bundle.Misc.AbsorptionCapPercent)
}

func TestMiscHandlers_PartyAttackFlags(t *testing.T) {
	bundle := compile(t,
		testSkill("berserk", `{"effectType":"partyAttackFlag","value":{"hostile":1}}`),
		testSkill("bodyguard", `{"effectType":"partyAttackFlag","value":{"protect":true}}`),
	)

	assert.True(t, bundle.Misc.PartyHostile)
	assert.True(t, bundle.Misc.PartyProtective)
	assert.False(t, bundle.Misc.PartyVampiric)
}

func TestMiscHandlers_EquipmentMultipliersStackPerCategoryAndStat(t *testing.T) {
	bundle := compile(t,
		testSkill("smith-a",
			`{"effectType":"equipmentStatMultiplier","parameters":{"category":"sword","stat":"attack"},"value":{"multiplier":1.2}}`),
		testSkill("smith-b",
			`{"effectType":"equipmentStatMultiplier","parameters":{"category":"sword","stat":"attack"},"value":{"multiplier":1.5}}`),
		testSkill("smith-c",
			`{"effectType":"equipmentStatMultiplier","parameters":{"category":"shield","stat":"defense"},"value":{"multiplier":2}}`),
	)

	assert.InDelta(t, 1.8, bundle.Misc.EquipmentMultipliers["sword"]["attack"], 1e-9)
	assert.Equal(t, 2.0, bundle.Misc.EquipmentMultipliers["shield"]["defense"])
}

func TestMiscHandlers_RunawayTriggersAreLastWriteWins(t *testing.T) {
	bundle := compile(t,
		testSkill("unstable", `{"effectType":"magicRunaway","value":{"chance":5}}`),
		testSkill("volatile", `{"effectType":"magicRunaway","value":{"chance":15,"threshold":30}}`),
	)

	require.NotNil(t, bundle.Misc.MagicRunaway)
	assert.Equal(t, 15.0, bundle.Misc.MagicRunaway.Chance)
	assert.Equal(t, 30.0, bundle.Misc.MagicRunaway.Threshold)
	assert.Equal(t, "volatile", bundle.Misc.MagicRunaway.SkillID)
	assert.Nil(t, bundle.Misc.DamageRunaway)
}

func TestMiscHandlers_DegradationRepairFolding(t *testing.T) {
	bundle := compile(t,
		testSkill("tinker-a",
			`{"effectType":"degradationRepair","value":{"minPercent":10,"bonusPercent":5}}`),
		testSkill("tinker-b",
			`{"effectType":"degradationRepair","value":{"minPercent":20,"bonusPercent":5,"autoRepair":true}}`),
	)

	repair := bundle.Misc.DegradationRepair
	assert.Equal(t, 20.0, repair.MinPercent)
	assert.Equal(t, 10.0, repair.BonusPercent)
	assert.True(t, repair.AutoRepair)
}
