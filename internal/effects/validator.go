package effects

import (
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

// ValidateDecodedPayload checks a decoded payload against the registry
// schema for its tag, then applies the per-type disjunctive rules that a
// flat required-key list cannot express. It runs before dispatch for every
// effect in every compiler, so handlers may assume required fields exist.
func ValidateDecodedPayload(p *DecodedEffectPayload, skillID string, effectIndex int) error {
	schema, ok := SchemaFor(p.Type)
	if !ok {
		return apperr.Configurationf("skill %s effect %d: unknown effect type %q", skillID, effectIndex, p.Type).
			WithMeta("skill_id", skillID).
			WithMeta("effect_index", effectIndex)
	}

	for _, key := range schema.RequiredParams {
		if v, present := p.Parameters[key]; !present || v == "" {
			return missingKeyError(p, skillID, effectIndex, key, "parameter")
		}
	}
	for _, key := range schema.RequiredValues {
		if _, present := p.Values[key]; !present {
			return missingKeyError(p, skillID, effectIndex, key, "value")
		}
	}
	for _, key := range schema.RequiredStringArrays {
		if len(p.StringArrayValues[key]) == 0 {
			return missingKeyError(p, skillID, effectIndex, key, "value")
		}
	}

	return validateDisjunctive(p, skillID, effectIndex)
}

// validateDisjunctive applies the "at least one of" rules.
func validateDisjunctive(p *DecodedEffectPayload, skillID string, effectIndex int) error {
	switch p.Type {
	case TypeExtraAction:
		if !p.HasValue(ChanceKey, ProcChanceKey) {
			return disjunctiveError(p, skillID, effectIndex, ChanceKey, ProcChanceKey)
		}
	case TypePartyAttackFlag:
		if !p.HasValue(HostileKey, ProtectKey, VampiricKey) {
			return disjunctiveError(p, skillID, effectIndex, HostileKey, ProtectKey, VampiricKey)
		}
	case TypeSpellCharges:
		if !p.HasValue(BonusChargesKey, FlatChargesKey, MultiplierKey, MinChargesKey, MaxChargesKey, TierCapKey, ValuePercentKey) {
			return disjunctiveError(p, skillID, effectIndex,
				BonusChargesKey, FlatChargesKey, MultiplierKey, MinChargesKey, MaxChargesKey, TierCapKey, ValuePercentKey)
		}
	case TypeAbsorption:
		if !p.HasValue(PercentKey, CapPercentKey) {
			return disjunctiveError(p, skillID, effectIndex, PercentKey, CapPercentKey)
		}
	case TypeRetreatAtTurn:
		if !p.HasValue(TurnKey, ChanceKey) {
			return disjunctiveError(p, skillID, effectIndex, TurnKey, ChanceKey)
		}
	case TypeSpellAccess:
		if _, ok := p.StringValues[ParamSpellID]; !ok && len(p.StringArrayValues[SpellIDsKey]) == 0 {
			return apperr.Configurationf(
				"skill %s effect %d: %s requires %q or %q",
				skillID, effectIndex, p.Type, ParamSpellID, SpellIDsKey).
				WithMeta("skill_id", skillID).
				WithMeta("effect_index", effectIndex).
				WithMeta("effect_type", string(p.Type))
		}
	}
	return nil
}

func missingKeyError(p *DecodedEffectPayload, skillID string, effectIndex int, key, kind string) error {
	return apperr.Configurationf(
		"skill %s effect %d: %s is missing required %s %q",
		skillID, effectIndex, p.Type, kind, key).
		WithMeta("skill_id", skillID).
		WithMeta("effect_index", effectIndex).
		WithMeta("effect_type", string(p.Type)).
		WithMeta("missing_key", key)
}

func disjunctiveError(p *DecodedEffectPayload, skillID string, effectIndex int, keys ...string) error {
	return apperr.Configurationf(
		"skill %s effect %d: %s requires at least one of %v",
		skillID, effectIndex, p.Type, keys).
		WithMeta("skill_id", skillID).
		WithMeta("effect_index", effectIndex).
		WithMeta("effect_type", string(p.Type))
}
