package effects

import (
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

func parseDamageType(s string) (DamageType, bool) {
	switch DamageType(s) {
	case DamagePhysical, DamageMagical, DamageBreath:
		return DamageType(s), true
	}
	return "", false
}

func damageTypeFor(p *DecodedEffectPayload, hctx HandlerContext) (DamageType, error) {
	raw, _ := p.Param(ParamDamageType)
	dt, ok := parseDamageType(raw)
	if !ok {
		return "", apperr.Configurationf(
			"skill %s effect %d: %s has unknown damage type %q",
			hctx.SkillID, hctx.EffectIndex, p.Type, raw).
			WithMeta("skill_id", hctx.SkillID).
			WithMeta("effect_index", hctx.EffectIndex).
			WithMeta("effect_type", string(p.Type))
	}
	return dt, nil
}

func applyDamageDealtPercent(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	dt, err := damageTypeFor(p, hctx)
	if err != nil {
		return err
	}
	acc.damage.dealt[dt].addPercent(p.Values[ValuePercentKey])
	return nil
}

func applyDamageDealtMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	dt, err := damageTypeFor(p, hctx)
	if err != nil {
		return err
	}
	acc.damage.dealt[dt].applyMultiplier(p.Values[MultiplierKey])
	return nil
}

func applyDamageTakenPercent(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	dt, err := damageTypeFor(p, hctx)
	if err != nil {
		return err
	}
	acc.damage.taken[dt].addPercent(p.Values[ValuePercentKey])
	return nil
}

func applyDamageTakenMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	dt, err := damageTypeFor(p, hctx)
	if err != nil {
		return err
	}
	acc.damage.taken[dt].applyMultiplier(p.Values[MultiplierKey])
	return nil
}

func applyCategoryDamageMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.multiplyCategory(p.Parameters[ParamCategory], p.Values[MultiplierKey])
	return nil
}

// Race-targeted multipliers share the category map; race tags never collide
// with enemy category tags in the authored data.
func applyRaceDamageMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.multiplyCategory(p.Parameters[ParamRace], p.Values[MultiplierKey])
	return nil
}

func applyCriticalDamagePercent(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.criticalDamagePercent += p.Values[ValuePercentKey]
	return nil
}

func applyCriticalDamageMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.criticalDamageMultiplier *= p.Values[MultiplierKey]
	return nil
}

func applyCriticalDamageTakenMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.criticalDamageTakenMultiplier *= p.Values[MultiplierKey]
	return nil
}

func applyPenetrationTakenMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.penetrationTakenMultiplier *= p.Values[MultiplierKey]
	return nil
}

func applyMartialBonusPercent(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.martialBonusPercent += p.Values[ValuePercentKey]
	return nil
}

func applyMartialBonusMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.martialBonusMultiplier *= p.Values[MultiplierKey]
	return nil
}

func applyHitThresholdMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.hitThresholds = append(acc.damage.hitThresholds, HitThresholdModifier{
		Threshold:  p.ValueOr(ThresholdKey, 0),
		Multiplier: p.Values[MultiplierKey],
	})
	return nil
}

// minHitScale is a best-of guarantee, not a stacking bonus: the lowest
// contribution across skills wins.
func applyMinHitScale(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.damage.minHitScale = minFloat(acc.damage.minHitScale, p.Values[ScaleKey])
	return nil
}
