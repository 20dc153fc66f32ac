package effects

import "sort"

// ActorEffectBundle is the immutable combat modifier profile produced by
// finalizing an accumulator. The battle engine consumes it read-only; an
// empty skill list produces the neutral bundle (multipliers 1, percents 0,
// empty lists).
type ActorEffectBundle struct {
	Damage       DamageModifiers
	Spell        SpellModifiers
	Combat       CombatModifiers
	Status       StatusModifiers
	Resurrection ResurrectionModifiers
	Misc         MiscModifiers
}

// DamageModifiers carries the per-channel combined multipliers plus the
// critical/martial/penetration tuning.
type DamageModifiers struct {
	Dealt                         map[DamageType]float64
	Taken                         map[DamageType]float64
	CategoryMultipliers           map[string]float64
	CriticalDamagePercent         float64
	CriticalDamageMultiplier      float64
	CriticalDamageTakenMultiplier float64
	PenetrationTakenMultiplier    float64
	MartialBonusPercent           float64
	MartialBonusMultiplier        float64
	HitThresholds                 []HitThresholdModifier
	MinHitScale                   float64
}

// SpellModifiers carries spell power and charge tuning.
type SpellModifiers struct {
	PowerPercent      float64
	PowerMultiplier   float64
	DealtMultipliers  map[string]float64
	TakenMultipliers  map[string]float64
	DefaultCharges    SpellChargeModifier
	PerSpellCharges   map[string]SpellChargeModifier
	BreathExtraCharges float64
}

// CombatModifiers carries action economy, reactions and barriers.
type CombatModifiers struct {
	ProcMultipliers          map[string]float64
	ProcRates                map[string]float64
	ExtraActions             []ExtraAction
	NextTurnExtraActions     int
	ActionOrderMultiplier    float64
	ActionOrderShuffle       bool
	CounterEvasionMultiplier float64
	Reactions                []Reaction
	ParryEnabled             bool
	ParryBonusPercent        float64
	ShieldBlockEnabled       bool
	ShieldBlockBonusPercent  float64
	BarrierCharges           map[DamageType]int
	GuardBarrierCharges      map[DamageType]int
	SpecialAttacks           []SpecialAttack
	EnemyActionDebuffs       []EnemyActionDebuff
	FirstStrike              bool
}

// StatusModifiers carries status resistance and infliction.
type StatusModifiers struct {
	Resistance    map[string]float64 // combined per status id
	Inflictions   []StatusInfliction
	BerserkChance float64
	BuffTriggers  []TimedBuffTrigger
}

// ResurrectionModifiers carries revival and retreat behavior.
type ResurrectionModifiers struct {
	RescueCapabilities       []RescueCapability
	RescueChanceBonusPercent float64
	Active                   []ResurrectionTrigger
	Forced                   *ForcedResurrection
	Vitalize                 *VitalizeResurrection
	NecromancerIntervalTurns int
	SacrificeIntervalTurns   int
	RetreatTurn              int
	RetreatChance            float64
}

// MiscModifiers carries everything that does not belong to another domain.
type MiscModifiers struct {
	Row                     RowProfile
	HealingGiven            float64
	HealingReceived         float64
	EndOfTurnHealingPercent float64
	EndOfTurnSelfHPPercent  float64
	DodgeCapMax             float64
	AbsorptionPercent       float64
	AbsorptionCapPercent    float64
	PartyHostile            bool
	PartyProtective         bool
	PartyVampiric           bool
	AntiHealing             bool
	EquipmentMultipliers    map[string]map[string]float64
	DegradationRepair       DegradationRepair
	MagicRunaway            *RunawayTrigger
	DamageRunaway           *RunawayTrigger
	HostileTargets          []string
	ProtectTargets          []string
}

// Finalize converts the accumulator into the immutable bundle. All
// invariants were enforced during decode/validate/dispatch; no validation
// happens here.
func (a *ActorEffectsAccumulator) Finalize() *ActorEffectBundle {
	bundle := &ActorEffectBundle{
		Damage: DamageModifiers{
			Dealt:                         make(map[DamageType]float64, len(damageTypes)),
			Taken:                         make(map[DamageType]float64, len(damageTypes)),
			CategoryMultipliers:           copyFloatMap(a.damage.categoryMultipliers),
			CriticalDamagePercent:         a.damage.criticalDamagePercent,
			CriticalDamageMultiplier:      a.damage.criticalDamageMultiplier,
			CriticalDamageTakenMultiplier: a.damage.criticalDamageTakenMultiplier,
			PenetrationTakenMultiplier:    a.damage.penetrationTakenMultiplier,
			MartialBonusPercent:           a.damage.martialBonusPercent,
			MartialBonusMultiplier:        a.damage.martialBonusMultiplier,
			HitThresholds:                 append([]HitThresholdModifier(nil), a.damage.hitThresholds...),
			MinHitScale:                   a.damage.minHitScale,
		},
		Spell: SpellModifiers{
			PowerPercent:       a.spell.powerPercent,
			PowerMultiplier:    a.spell.powerMultiplier,
			DealtMultipliers:   copyFloatMap(a.spell.dealtMultipliers),
			TakenMultipliers:   copyFloatMap(a.spell.takenMultipliers),
			DefaultCharges:     a.spell.defaultCharges,
			PerSpellCharges:    copyChargeMap(a.spell.perSpellCharges),
			BreathExtraCharges: a.spell.breathCharges,
		},
		Combat: CombatModifiers{
			ProcMultipliers:          copyFloatMap(a.combat.procMultipliers),
			ProcRates:                copyFloatMap(a.combat.procRates),
			ExtraActions:             append([]ExtraAction(nil), a.combat.extraActions...),
			NextTurnExtraActions:     a.combat.nextTurnExtraActions,
			ActionOrderMultiplier:    a.combat.actionOrderMultiplier,
			ActionOrderShuffle:       a.combat.actionOrderShuffle,
			CounterEvasionMultiplier: a.combat.counterEvasionMultiplier,
			Reactions:                append([]Reaction(nil), a.combat.reactions...),
			ParryEnabled:             a.combat.parryEnabled,
			ParryBonusPercent:        a.combat.parryBonusPercent,
			ShieldBlockEnabled:       a.combat.shieldBlockEnabled,
			ShieldBlockBonusPercent:  a.combat.shieldBlockBonusPercent,
			BarrierCharges:           copyChargesByType(a.combat.barrierCharges),
			GuardBarrierCharges:      copyChargesByType(a.combat.guardBarrierCharges),
			SpecialAttacks:           append([]SpecialAttack(nil), a.combat.specialAttacks...),
			EnemyActionDebuffs:       append([]EnemyActionDebuff(nil), a.combat.enemyActionDebuffs...),
			FirstStrike:              a.combat.firstStrike,
		},
		Status: StatusModifiers{
			Resistance:    make(map[string]float64, len(a.status.resistance)),
			Inflictions:   append([]StatusInfliction(nil), a.status.inflictions...),
			BerserkChance: a.status.berserkChance,
			BuffTriggers:  append([]TimedBuffTrigger(nil), a.status.buffTriggers...),
		},
		Resurrection: ResurrectionModifiers{
			RescueCapabilities:       append([]RescueCapability(nil), a.resurrection.rescueCapabilities...),
			RescueChanceBonusPercent: a.resurrection.rescueChanceBonus,
			Active:                   append([]ResurrectionTrigger(nil), a.resurrection.active...),
			Forced:                   a.resurrection.forced,
			Vitalize:                 a.resurrection.vitalize,
			NecromancerIntervalTurns: a.resurrection.necromancerIntervalTurns,
			SacrificeIntervalTurns:   a.resurrection.sacrificeIntervalTurns,
			RetreatTurn:              a.resurrection.retreatTurn,
			RetreatChance:            a.resurrection.retreatChance,
		},
		Misc: MiscModifiers{
			Row: a.misc.row,
			// healing scales are fixed today; no effect type modifies them
			HealingGiven:            1,
			HealingReceived:         1,
			EndOfTurnHealingPercent: a.misc.endOfTurnHealingPercent,
			EndOfTurnSelfHPPercent:  a.misc.endOfTurnSelfHPPercent,
			DodgeCapMax:             a.misc.dodgeCapMax,
			AbsorptionPercent:       a.misc.absorptionPercent,
			AbsorptionCapPercent:    a.misc.absorptionCapPercent,
			PartyHostile:            a.misc.partyHostile,
			PartyProtective:         a.misc.partyProtective,
			PartyVampiric:           a.misc.partyVampiric,
			AntiHealing:             a.misc.antiHealing,
			EquipmentMultipliers:    copyEquipmentMap(a.misc.equipmentMultipliers),
			DegradationRepair:       a.misc.degradationRepair,
			MagicRunaway:            a.misc.magicRunaway,
			DamageRunaway:           a.misc.damageRunaway,
			HostileTargets:          sortedKeys(a.misc.hostileTargets),
			ProtectTargets:          sortedKeys(a.misc.protectTargets),
		},
	}

	for _, dt := range damageTypes {
		bundle.Damage.Dealt[dt] = a.damage.dealt[dt].combined()
		bundle.Damage.Taken[dt] = a.damage.taken[dt].combined()
	}
	for statusID, r := range a.status.resistance {
		bundle.Status.Resistance[statusID] = r.combined()
	}

	return bundle
}

func copyFloatMap(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyChargeMap(src map[string]SpellChargeModifier) map[string]SpellChargeModifier {
	dst := make(map[string]SpellChargeModifier, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyChargesByType(src map[DamageType]int) map[DamageType]int {
	dst := make(map[DamageType]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyEquipmentMap(src map[string]map[string]float64) map[string]map[string]float64 {
	dst := make(map[string]map[string]float64, len(src))
	for category, stats := range src {
		dst[category] = copyFloatMap(stats)
	}
	return dst
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
