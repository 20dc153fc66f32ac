package effects

import (
	"fmt"

	apperr "github.com/epika-dev/epika-core/internal/errors"
)

// HandlerContext carries the provenance of the effect being folded, for
// error messages and for reaction/trigger display names.
type HandlerContext struct {
	SkillID     string
	SkillName   string
	EffectIndex int
}

// actorHandler folds one validated payload into the accumulator.
type actorHandler func(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error

// actorHandlers maps every effect type to exactly one handler. Tags the
// combat-modifier compiler does not consume (reward, exploration, spellbook,
// base-stat) are registered as deliberate no-ops so the exhaustiveness
// invariant holds for the full tag set.
var actorHandlers = buildActorHandlers()

func buildActorHandlers() map[EffectType]actorHandler {
	handlers := map[EffectType]actorHandler{
		// damage
		TypeDamageDealtPercent:            applyDamageDealtPercent,
		TypeDamageDealtMultiplier:         applyDamageDealtMultiplier,
		TypeDamageTakenPercent:            applyDamageTakenPercent,
		TypeDamageTakenMultiplier:         applyDamageTakenMultiplier,
		TypeCategoryDamageMultiplier:      applyCategoryDamageMultiplier,
		TypeRaceDamageMultiplier:          applyRaceDamageMultiplier,
		TypeCriticalDamagePercent:         applyCriticalDamagePercent,
		TypeCriticalDamageMultiplier:      applyCriticalDamageMultiplier,
		TypeCriticalDamageTakenMultiplier: applyCriticalDamageTakenMultiplier,
		TypePenetrationTakenMultiplier:    applyPenetrationTakenMultiplier,
		TypeMartialBonusPercent:           applyMartialBonusPercent,
		TypeMartialBonusMultiplier:        applyMartialBonusMultiplier,
		TypeHitThresholdMultiplier:        applyHitThresholdMultiplier,
		TypeMinHitScale:                   applyMinHitScale,

		// spell
		TypeSpellPowerPercent:          applySpellPowerPercent,
		TypeSpellPowerMultiplier:       applySpellPowerMultiplier,
		TypeSpellDamageMultiplier:      applySpellDamageMultiplier,
		TypeSpellDamageTakenMultiplier: applySpellDamageTakenMultiplier,
		TypeSpellCharges:               applySpellCharges,
		TypeBreathCharges:              applyBreathCharges,

		// combat
		TypeProcMultiplier:           applyProcMultiplier,
		TypeProcRate:                 applyProcRate,
		TypeExtraAction:              applyExtraAction,
		TypeNextTurnExtraAction:      applyNextTurnExtraAction,
		TypeActionOrderMultiplier:    applyActionOrderMultiplier,
		TypeActionOrderShuffle:       applyActionOrderShuffle,
		TypeCounterEvasionMultiplier: applyCounterEvasionMultiplier,
		TypeReaction:                 applyReaction,
		TypeParry:                    applyParry,
		TypeShieldBlock:              applyShieldBlock,
		TypeBarrier:                  applyBarrier,
		TypeGuardBarrier:             applyGuardBarrier,
		TypeSpecialAttack:            applySpecialAttack,
		TypeEnemyActionDebuff:        applyEnemyActionDebuff,
		TypeFirstStrike:              applyFirstStrike,

		// status
		TypeStatusResistancePercent:    applyStatusResistancePercent,
		TypeStatusResistanceMultiplier: applyStatusResistanceMultiplier,
		TypeStatusInfliction:           applyStatusInfliction,
		TypeBerserkChance:              applyBerserkChance,
		TypeTimedBuffTrigger:           applyTimedBuffTrigger,

		// resurrection
		TypeRescueCapability:     applyRescueCapability,
		TypeRescueModifier:       applyRescueModifier,
		TypeResurrectionActive:   applyResurrectionActive,
		TypeForcedResurrection:   applyForcedResurrection,
		TypeVitalizeResurrection: applyVitalizeResurrection,
		TypeNecromancerInterval:  applyNecromancerInterval,
		TypeSacrificeInterval:    applySacrificeInterval,
		TypeRetreatAtTurn:        applyRetreatAtTurn,

		// misc
		TypeRowProfile:              applyRowProfile,
		TypeEndOfTurnHealingPercent: applyEndOfTurnHealingPercent,
		TypeEndOfTurnSelfHPPercent:  applyEndOfTurnSelfHPPercent,
		TypeDodgeCapMax:             applyDodgeCapMax,
		TypeAbsorption:              applyAbsorption,
		TypePartyAttackFlag:         applyPartyAttackFlag,
		TypeAntiHealing:             applyAntiHealing,
		TypeEquipmentStatMultiplier: applyEquipmentStatMultiplier,
		TypeDegradationRepair:       applyDegradationRepair,
		TypeMagicRunaway:            applyMagicRunaway,
		TypeDamageRunaway:           applyDamageRunaway,
		TypeHostileTarget:           applyHostileTarget,
		TypeProtectTarget:           applyProtectTarget,
	}

	// handled by the sibling compilers, not the combat-modifier compiler
	for _, t := range []EffectType{
		TypeExperiencePercent, TypeExperienceMultiplier,
		TypeGoldPercent, TypeGoldMultiplier,
		TypeItemDropPercent, TypeItemDropMultiplier,
		TypeTitleDropPercent, TypeTitleDropMultiplier,
		TypeExplorationTimeMultiplier,
		TypeSpellAccess, TypeSpellTierUnlock,
	} {
		handlers[t] = applyNoop
	}

	// resolved during base-stat computation, before modifier compilation
	for _, t := range []EffectType{
		TypeStatAdditive, TypeStatMultiplier, TypeStatLevelMultiplier,
		TypeAttackCountAdditive, TypeAttackCountMultiplier,
		TypeAdditionalDamage, TypeAdditionalDamageMultiplier,
		TypeCriticalRatePercent, TypeCriticalRateCap,
		TypeHitRatePercent, TypeEvasionPercent, TypeInitiativePercent,
		TypeMaxHPPercent, TypeMaxMPPercent,
		TypeAttackPowerModifier, TypeAttackPowerMultiplier,
	} {
		handlers[t] = applyNoop
	}

	return handlers
}

// init asserts the startup invariant: every tag of the closed set has
// exactly one registered handler.
func init() {
	for t := range effectSchemas {
		if _, ok := actorHandlers[t]; !ok {
			panic(fmt.Sprintf("effects: no actor handler registered for effect type %q", t))
		}
	}
	for t := range actorHandlers {
		if _, ok := effectSchemas[t]; !ok {
			panic(fmt.Sprintf("effects: actor handler registered for unknown effect type %q", t))
		}
	}
}

// dispatchActorEffect routes one validated payload to its handler. A tag
// with no registered handler is a fatal configuration error, never a silent
// skip.
func dispatchActorEffect(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	handler, ok := actorHandlers[p.Type]
	if !ok {
		return apperr.Configurationf(
			"skill %s effect %d: no handler registered for effect type %q",
			hctx.SkillID, hctx.EffectIndex, p.Type).
			WithMeta("skill_id", hctx.SkillID).
			WithMeta("effect_index", hctx.EffectIndex).
			WithMeta("effect_type", string(p.Type))
	}
	return handler(p, acc, hctx)
}

// applyNoop is the registered handler for tags this compiler deliberately
// ignores.
func applyNoop(_ *DecodedEffectPayload, _ *ActorEffectsAccumulator, _ HandlerContext) error {
	return nil
}
