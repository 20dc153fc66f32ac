package effects

func applyStatusResistancePercent(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.status.resistanceFor(p.Parameters[ParamStatusID]).addPercent(p.Values[ValuePercentKey])
	return nil
}

func applyStatusResistanceMultiplier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.status.resistanceFor(p.Parameters[ParamStatusID]).applyMultiplier(p.Values[MultiplierKey])
	return nil
}

func applyStatusInfliction(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.status.inflictions = append(acc.status.inflictions, StatusInfliction{
		StatusID: p.Parameters[ParamStatusID],
		Chance:   p.Values[ChanceKey],
	})
	return nil
}

func applyBerserkChance(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.status.berserkChance = maxFloat(acc.status.berserkChance, p.Values[ChanceKey])
	return nil
}

func parseTimedBuffScope(s string) TimedBuffScope {
	if TimedBuffScope(s) == ScopeParty {
		return ScopeParty
	}
	return ScopeSelf
}

// applyTimedBuffTrigger appends a distinct trigger record per occurrence.
// The family id falls back to the effect-type tag when the payload omits
// one; merging across identical family ids belongs to the battle engine.
func applyTimedBuffTrigger(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	familyID := p.FamilyID
	if familyID == "" {
		familyID = string(p.Type)
	}

	modifiers := make(map[string]float64, len(p.Values))
	for key, value := range p.Values {
		if key == TriggerTurnKey {
			continue
		}
		modifiers[key] = value
	}

	acc.status.buffTriggers = append(acc.status.buffTriggers, TimedBuffTrigger{
		FamilyID:    familyID,
		TriggerTurn: int(p.Values[TriggerTurnKey]),
		Mode:        p.ParamOr(ParamMode, "exact"),
		Scope:       parseTimedBuffScope(p.ParamOr(ParamScope, "")),
		Modifiers:   modifiers,
	})
	return nil
}
