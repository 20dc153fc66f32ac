package effects

// applyRowProfile overrides the base stance and unions aptitude flags.
// Aptitudes granted by earlier skills are never removed.
func applyRowProfile(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.misc.row.Stance = p.Parameters[ParamStance]
	for _, aptitude := range p.StringArray(AptitudesKey) {
		switch aptitude {
		case "melee":
			acc.misc.row.MeleeAptitude = true
		case "ranged":
			acc.misc.row.RangedAptitude = true
		}
	}
	return nil
}

func applyEndOfTurnHealingPercent(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.misc.endOfTurnHealingPercent = maxFloat(acc.misc.endOfTurnHealingPercent, p.Values[ValuePercentKey])
	return nil
}

func applyEndOfTurnSelfHPPercent(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.misc.endOfTurnSelfHPPercent += p.Values[ValuePercentKey]
	return nil
}

func applyDodgeCapMax(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.misc.dodgeCapMax = maxFloat(acc.misc.dodgeCapMax, p.Values[CapKey])
	return nil
}

func applyAbsorption(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	if percent, ok := p.Value(PercentKey); ok {
		acc.misc.absorptionPercent = maxFloat(acc.misc.absorptionPercent, percent)
	}
	if capPercent, ok := p.Value(CapPercentKey); ok {
		acc.misc.absorptionCapPercent = maxFloat(acc.misc.absorptionCapPercent, capPercent)
	}
	return nil
}

func applyPartyAttackFlag(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	if p.ValueOr(HostileKey, 0) > 0 {
		acc.misc.partyHostile = true
	}
	if p.ValueOr(ProtectKey, 0) > 0 {
		acc.misc.partyProtective = true
	}
	if p.ValueOr(VampiricKey, 0) > 0 {
		acc.misc.partyVampiric = true
	}
	return nil
}

func applyAntiHealing(_ *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.misc.antiHealing = true
	return nil
}

func applyEquipmentStatMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.misc.multiplyEquipment(p.Parameters[ParamCategory], p.Parameters[ParamStat], p.Values[MultiplierKey])
	return nil
}

func applyDegradationRepair(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	repair := &acc.misc.degradationRepair
	repair.MinPercent = maxFloat(repair.MinPercent, p.ValueOr(MinPercentKey, 0))
	repair.MaxPercent = maxFloat(repair.MaxPercent, p.ValueOr(MaxPercentKey, 0))
	repair.BonusPercent += p.ValueOr(BonusPercentKey, 0)
	if p.ValueOr(AutoRepairKey, 0) > 0 {
		repair.AutoRepair = true
	}
	return nil
}

// Runaway triggers are single-slot: the last contributing skill wins.
func applyMagicRunaway(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	acc.misc.magicRunaway = &RunawayTrigger{
		Chance:    p.Values[ChanceKey],
		Threshold: p.ValueOr(ThresholdKey, 0),
		SkillID:   hctx.SkillID,
	}
	return nil
}

func applyDamageRunaway(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	acc.misc.damageRunaway = &RunawayTrigger{
		Chance:    p.Values[ChanceKey],
		Threshold: p.ValueOr(ThresholdKey, 0),
		SkillID:   hctx.SkillID,
	}
	return nil
}

func applyHostileTarget(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	for _, id := range p.StringArray(TargetIDsKey) {
		acc.misc.hostileTargets[id] = struct{}{}
	}
	return nil
}

func applyProtectTarget(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	for _, id := range p.StringArray(TargetIDsKey) {
		acc.misc.protectTargets[id] = struct{}{}
	}
	return nil
}
