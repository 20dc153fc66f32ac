package effects

func applySpellPowerPercent(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.spell.powerPercent += p.Values[ValuePercentKey]
	return nil
}

func applySpellPowerMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.spell.powerMultiplier *= p.Values[MultiplierKey]
	return nil
}

func applySpellDamageMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	multiplier := p.Values[MultiplierKey]
	for _, spellID := range p.StringArray(SpellIDsKey) {
		acc.spell.multiplyDealt(spellID, multiplier)
	}
	return nil
}

func applySpellDamageTakenMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	multiplier := p.Values[MultiplierKey]
	for _, spellID := range p.StringArray(SpellIDsKey) {
		acc.spell.multiplyTaken(spellID, multiplier)
	}
	return nil
}

// applySpellCharges folds charge tuning into the default modifier, or into
// the per-spell modifier when the payload names a spell id.
func applySpellCharges(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	if spellID, ok := p.Param(ParamSpellID); ok && spellID != "" {
		mod, present := acc.spell.perSpellCharges[spellID]
		if !present {
			mod = neutralSpellChargeModifier()
		}
		mod.fold(p)
		acc.spell.perSpellCharges[spellID] = mod
		return nil
	}
	acc.spell.defaultCharges.fold(p)
	return nil
}

func applyBreathCharges(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.spell.breathCharges += p.Values[CountKey]
	return nil
}
