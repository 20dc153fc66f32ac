package effects

func applyRescueCapability(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.resurrection.rescueCapabilities = append(acc.resurrection.rescueCapabilities, RescueCapability{
		Trigger: p.ParamOr(ParamTrigger, ""),
		Chance:  p.ValueOr(ChanceKey, 100),
	})
	return nil
}

func applyRescueModifier(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.resurrection.rescueChanceBonus += p.Values[ChancePercentKey]
	return nil
}

func applyResurrectionActive(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.resurrection.active = append(acc.resurrection.active, ResurrectionTrigger{
		Chance:    p.Values[ChanceKey],
		HPPercent: p.ValueOr(HPPercentKey, 100),
	})
	return nil
}

// Forced resurrection is a single slot: a later contributing skill silently
// overwrites an earlier one. Worth product-level clarification whether two
// such skills on one character is legal authored data.
func applyForcedResurrection(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	acc.resurrection.forced = &ForcedResurrection{
		HPPercent: p.Values[HPPercentKey],
		Turns:     int(p.ValueOr(TurnsKey, 0)),
		SkillID:   hctx.SkillID,
	}
	return nil
}

// Single slot, last write wins, same as forced resurrection.
func applyVitalizeResurrection(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, hctx HandlerContext) error {
	acc.resurrection.vitalize = &VitalizeResurrection{
		HPPercent: p.Values[HPPercentKey],
		SkillID:   hctx.SkillID,
	}
	return nil
}

func applyNecromancerInterval(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	acc.resurrection.necromancerIntervalTurns = int(p.Values[TurnsKey])
	return nil
}

// The shortest sacrifice interval across contributing skills wins.
func applySacrificeInterval(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	turns := int(p.Values[TurnsKey])
	if acc.resurrection.sacrificeIntervalTurns == 0 || turns < acc.resurrection.sacrificeIntervalTurns {
		acc.resurrection.sacrificeIntervalTurns = turns
	}
	return nil
}

// Earliest retreat turn and best retreat chance each win independently.
func applyRetreatAtTurn(p *DecodedEffectPayload, acc *ActorEffectsAccumulator, _ HandlerContext) error {
	if turn, ok := p.Value(TurnKey); ok {
		t := int(turn)
		if acc.resurrection.retreatTurn == 0 || t < acc.resurrection.retreatTurn {
			acc.resurrection.retreatTurn = t
		}
	}
	if chance, ok := p.Value(ChanceKey); ok {
		acc.resurrection.retreatChance = maxFloat(acc.resurrection.retreatChance, chance)
	}
	return nil
}
