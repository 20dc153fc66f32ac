package effects

import (
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

func applyProcMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	procID := p.Parameters[ParamProcID]
	if current, ok := acc.combat.procMultipliers[procID]; ok {
		acc.combat.procMultipliers[procID] = current * p.Values[MultiplierKey]
	} else {
		acc.combat.procMultipliers[procID] = p.Values[MultiplierKey]
	}
	return nil
}

func applyProcRate(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	procID := p.Parameters[ParamProcID]
	if current, ok := acc.combat.procRates[procID]; ok {
		acc.combat.procRates[procID] = current * p.Values[RateKey]
	} else {
		acc.combat.procRates[procID] = p.Values[RateKey]
	}
	return nil
}

func applyExtraAction(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	chance := p.ValueOr(ChanceKey, p.ValueOr(ProcChanceKey, 0))
	count := int(p.Values[CountKey])
	if chance <= 0 || count <= 0 {
		return apperr.Configurationf(
			"skill %s effect %d: extraAction requires positive chance and count (chance=%g count=%d)",
			hctx.SkillID, hctx.EffectIndex, chance, count).
			WithMeta("skill_id", hctx.SkillID).
			WithMeta("effect_index", hctx.EffectIndex)
	}
	acc.combat.extraActions = append(acc.combat.extraActions, ExtraAction{Chance: chance, Count: count})
	return nil
}

func applyNextTurnExtraAction(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	count := int(p.Values[CountKey])
	if count <= 0 {
		return apperr.Configurationf(
			"skill %s effect %d: nextTurnExtraAction requires a positive count (count=%d)",
			hctx.SkillID, hctx.EffectIndex, count).
			WithMeta("skill_id", hctx.SkillID).
			WithMeta("effect_index", hctx.EffectIndex)
	}
	acc.combat.nextTurnExtraActions += count
	return nil
}

func applyActionOrderMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.combat.actionOrderMultiplier *= p.Values[MultiplierKey]
	return nil
}

func applyActionOrderShuffle(_ *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.combat.actionOrderShuffle = true
	return nil
}

func applyCounterEvasionMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.combat.counterEvasionMultiplier *= p.Values[MultiplierKey]
	return nil
}

func parseReactionTrigger(s string) ReactionTrigger {
	switch ReactionTrigger(s) {
	case TriggerOnEvade, TriggerOnGuard, TriggerOnAllyHit:
		return ReactionTrigger(s)
	}
	return TriggerOnHit
}

func parseReactionTarget(s string) ReactionTarget {
	switch ReactionTarget(s) {
	case TargetRandom, TargetAll:
		return ReactionTarget(s)
	}
	// unrecognized targets strike back at the attacker
	return TargetAttacker
}

// applyReaction builds a reaction record only for the recognized
// counterAttack action; other declared actions are resolved elsewhere.
func applyReaction(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	if ReactionKind(p.Parameters[ParamAction]) != ReactionCounterAttack {
		return nil
	}
	acc.combat.reactions = append(acc.combat.reactions, Reaction{
		Kind:    ReactionCounterAttack,
		Trigger: parseReactionTrigger(p.ParamOr(ParamTrigger, "")),
		Target:  parseReactionTarget(p.ParamOr(ParamTarget, "")),
		Chance:  p.ValueOr(ChanceKey, 100),
		Name:    hctx.SkillName,
	})
	return nil
}

func applyParry(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.combat.parryEnabled = true
	acc.combat.parryBonusPercent = maxFloat(acc.combat.parryBonusPercent, p.ValueOr(BonusPercentKey, 0))
	return nil
}

func applyShieldBlock(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.combat.shieldBlockEnabled = true
	acc.combat.shieldBlockBonusPercent = maxFloat(acc.combat.shieldBlockBonusPercent, p.ValueOr(BonusPercentKey, 0))
	return nil
}

// Barrier charges are a best-of guarantee per damage type, never a sum.
func applyBarrier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	dt, err := damageTypeFor(p, hctx)
	if err != nil {
		return err
	}
	acc.combat.raiseBarrier(acc.combat.barrierCharges, dt, int(p.Values[ChargesKey]))
	return nil
}

func applyGuardBarrier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	dt, err := damageTypeFor(p, hctx)
	if err != nil {
		return err
	}
	acc.combat.raiseBarrier(acc.combat.guardBarrierCharges, dt, int(p.Values[ChargesKey]))
	return nil
}

func applySpecialAttack(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.combat.specialAttacks = append(acc.combat.specialAttacks, SpecialAttack{
		Kind:   p.Parameters[ParamKind],
		Chance: p.ValueOr(ChanceKey, 100),
	})
	return nil
}

func applyEnemyActionDebuff(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.combat.enemyActionDebuffs = append(acc.combat.enemyActionDebuffs, EnemyActionDebuff{
		Debuff: p.Parameters[ParamDebuff],
		Chance: p.ValueOr(ChanceKey, 100),
	})
	return nil
}

func applyFirstStrike(_ *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.combat.firstStrike = true
	return nil
}
