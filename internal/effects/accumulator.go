package effects

// DamageType identifies one of the three damage channels.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagical  DamageType = "magical"
	DamageBreath   DamageType = "breath"
)

// damageTypes lists the channels in stable order for deterministic output.
var damageTypes = []DamageType{DamagePhysical, DamageMagical, DamageBreath}

// rate tracks a percent sum and a multiplier product that recombine at
// bundle-build time as max(0, 1+percent/100) * multiplier.
type rate struct {
	percent    float64
	multiplier float64
}

func newRate() *rate {
	return &rate{multiplier: 1}
}

func (r *rate) addPercent(p float64)      { r.percent += p }
func (r *rate) applyMultiplier(m float64) { r.multiplier *= m }

// combined recombines the pair, clamping the percent component at zero.
func (r *rate) combined() float64 {
	m := 1 + r.percent/100
	if m < 0 {
		m = 0
	}
	return m * r.multiplier
}

// HitThresholdModifier scales damage when a hit roll clears a threshold.
type HitThresholdModifier struct {
	Threshold  float64
	Multiplier float64
}

// SpellChargeModifier tunes spell charge computation, either as the default
// for all spells or for a single spell id.
type SpellChargeModifier struct {
	BonusCharges float64 // sum
	FlatCharges  float64 // sum
	Multiplier   float64 // product, defaults 1
	MinCharges   float64 // max
	MaxCharges   float64 // max
	TierCap      float64 // max
	Percent      float64 // sum
}

func neutralSpellChargeModifier() SpellChargeModifier {
	return SpellChargeModifier{Multiplier: 1}
}

func (m *SpellChargeModifier) fold(p *DecodedEffectPayload) {
	m.BonusCharges += p.ValueOr(BonusChargesKey, 0)
	m.FlatCharges += p.ValueOr(FlatChargesKey, 0)
	m.Multiplier *= p.ValueOr(MultiplierKey, 1)
	m.MinCharges = maxFloat(m.MinCharges, p.ValueOr(MinChargesKey, 0))
	m.MaxCharges = maxFloat(m.MaxCharges, p.ValueOr(MaxChargesKey, 0))
	m.TierCap = maxFloat(m.TierCap, p.ValueOr(TierCapKey, 0))
	m.Percent += p.ValueOr(ValuePercentKey, 0)
}

// ExtraAction grants additional actions with a trigger chance.
type ExtraAction struct {
	Chance float64
	Count  int
}

// ReactionKind enumerates the recognized reaction actions.
type ReactionKind string

const ReactionCounterAttack ReactionKind = "counterAttack"

// ReactionTrigger enumerates when a reaction fires.
type ReactionTrigger string

const (
	TriggerOnHit     ReactionTrigger = "onHit"
	TriggerOnEvade   ReactionTrigger = "onEvade"
	TriggerOnGuard   ReactionTrigger = "onGuard"
	TriggerOnAllyHit ReactionTrigger = "onAllyHit"
)

// ReactionTarget enumerates who a reaction strikes back at.
type ReactionTarget string

const (
	TargetAttacker ReactionTarget = "attacker"
	TargetRandom   ReactionTarget = "random"
	TargetAll      ReactionTarget = "all"
)

// Reaction is a triggered counter behavior, e.g. counter-attack on hit.
type Reaction struct {
	Kind    ReactionKind
	Trigger ReactionTrigger
	Target  ReactionTarget
	Chance  float64
	Name    string // display name, from the contributing skill
}

// SpecialAttack is an attack replacement rolled per turn.
type SpecialAttack struct {
	Kind   string
	Chance float64
}

// EnemyActionDebuff reduces enemy action economy when it procs.
type EnemyActionDebuff struct {
	Debuff string
	Chance float64
}

// StatusInfliction applies a status on hit.
type StatusInfliction struct {
	StatusID string
	Chance   float64
}

// TimedBuffScope says who a timed buff trigger covers.
type TimedBuffScope string

const (
	ScopeSelf  TimedBuffScope = "self"
	ScopeParty TimedBuffScope = "party"
)

// TimedBuffTrigger is a turn-based amplifier registered under a family id.
// The battle engine owns merging behavior across identical family ids; here
// every occurrence appends a distinct record.
type TimedBuffTrigger struct {
	FamilyID    string
	TriggerTurn int
	Mode        string // e.g. "exact", "every", "from"
	Scope       TimedBuffScope
	Modifiers   map[string]float64
}

// RescueCapability lets the actor pull allies out of danger.
type RescueCapability struct {
	Trigger string
	Chance  float64
}

// ResurrectionTrigger revives the actor when it fires.
type ResurrectionTrigger struct {
	Chance    float64
	HPPercent float64
}

// ForcedResurrection is the single-slot forced revive configuration.
// Last contributing skill wins.
type ForcedResurrection struct {
	HPPercent float64
	Turns     int
	SkillID   string
}

// VitalizeResurrection is the single-slot vitalize revive configuration.
// Last contributing skill wins.
type VitalizeResurrection struct {
	HPPercent float64
	SkillID   string
}

// RunawayTrigger fires an uncontrolled burst when the chance lands.
type RunawayTrigger struct {
	Chance    float64
	Threshold float64
	SkillID   string
}

// RowProfile carries the actor's stance and rank aptitudes. Later skills may
// override the base stance and add aptitudes, never remove them.
type RowProfile struct {
	Stance         string
	MeleeAptitude  bool
	RangedAptitude bool
}

// DegradationRepair tunes equipment degradation recovery.
type DegradationRepair struct {
	MinPercent   float64 // max across skills
	MaxPercent   float64 // max across skills
	BonusPercent float64 // sum
	AutoRepair   bool
}

// ActorEffectsAccumulator is the mutable aggregation state one actor-compile
// pass folds every effect into. Built fresh per compilation; finalized into
// an immutable ActorEffectBundle.
type ActorEffectsAccumulator struct {
	damage       damageAccumulator
	spell        spellAccumulator
	combat       combatAccumulator
	status       statusAccumulator
	resurrection resurrectionAccumulator
	misc         miscAccumulator
}

type damageAccumulator struct {
	dealt                         map[DamageType]*rate
	taken                         map[DamageType]*rate
	categoryMultipliers           map[string]float64
	criticalDamagePercent         float64
	criticalDamageMultiplier      float64
	criticalDamageTakenMultiplier float64
	penetrationTakenMultiplier    float64
	martialBonusPercent           float64
	martialBonusMultiplier        float64
	hitThresholds                 []HitThresholdModifier
	minHitScale                   float64
}

type spellAccumulator struct {
	powerPercent     float64
	powerMultiplier  float64
	dealtMultipliers map[string]float64
	takenMultipliers map[string]float64
	defaultCharges   SpellChargeModifier
	perSpellCharges  map[string]SpellChargeModifier
	breathCharges    float64
}

type combatAccumulator struct {
	procMultipliers          map[string]float64
	procRates                map[string]float64
	extraActions             []ExtraAction
	nextTurnExtraActions     int
	actionOrderMultiplier    float64
	actionOrderShuffle       bool
	counterEvasionMultiplier float64
	reactions                []Reaction
	parryEnabled             bool
	parryBonusPercent        float64
	shieldBlockEnabled       bool
	shieldBlockBonusPercent  float64
	barrierCharges           map[DamageType]int
	guardBarrierCharges      map[DamageType]int
	specialAttacks           []SpecialAttack
	enemyActionDebuffs       []EnemyActionDebuff
	firstStrike              bool
}

type statusAccumulator struct {
	resistance    map[string]*rate
	inflictions   []StatusInfliction
	berserkChance float64
	buffTriggers  []TimedBuffTrigger
}

type resurrectionAccumulator struct {
	rescueCapabilities       []RescueCapability
	rescueChanceBonus        float64
	active                   []ResurrectionTrigger
	forced                   *ForcedResurrection
	vitalize                 *VitalizeResurrection
	necromancerIntervalTurns int
	sacrificeIntervalTurns   int
	retreatTurn              int
	retreatChance            float64
}

type miscAccumulator struct {
	row                     RowProfile
	endOfTurnHealingPercent float64
	endOfTurnSelfHPPercent  float64
	dodgeCapMax             float64
	absorptionPercent       float64
	absorptionCapPercent    float64
	partyHostile            bool
	partyProtective         bool
	partyVampiric           bool
	antiHealing             bool
	equipmentMultipliers    map[string]map[string]float64
	degradationRepair       DegradationRepair
	magicRunaway            *RunawayTrigger
	damageRunaway           *RunawayTrigger
	hostileTargets          map[string]struct{}
	protectTargets          map[string]struct{}
}

// NewActorEffectsAccumulator builds the neutral accumulator: multipliers 1,
// percents 0, everything else empty.
func NewActorEffectsAccumulator() *ActorEffectsAccumulator {
	acc := &ActorEffectsAccumulator{
		damage: damageAccumulator{
			dealt:                         map[DamageType]*rate{},
			taken:                         map[DamageType]*rate{},
			categoryMultipliers:           map[string]float64{},
			criticalDamageMultiplier:      1,
			criticalDamageTakenMultiplier: 1,
			penetrationTakenMultiplier:    1,
			martialBonusMultiplier:        1,
			minHitScale:                   1,
		},
		spell: spellAccumulator{
			powerMultiplier:  1,
			dealtMultipliers: map[string]float64{},
			takenMultipliers: map[string]float64{},
			defaultCharges:   neutralSpellChargeModifier(),
			perSpellCharges:  map[string]SpellChargeModifier{},
		},
		combat: combatAccumulator{
			procMultipliers:          map[string]float64{},
			procRates:                map[string]float64{},
			actionOrderMultiplier:    1,
			counterEvasionMultiplier: 1,
			barrierCharges:           map[DamageType]int{},
			guardBarrierCharges:      map[DamageType]int{},
		},
		status: statusAccumulator{
			resistance: map[string]*rate{},
		},
		misc: miscAccumulator{
			equipmentMultipliers: map[string]map[string]float64{},
			hostileTargets:       map[string]struct{}{},
			protectTargets:       map[string]struct{}{},
		},
	}
	for _, dt := range damageTypes {
		acc.damage.dealt[dt] = newRate()
		acc.damage.taken[dt] = newRate()
	}
	return acc
}

func (a *damageAccumulator) multiplyCategory(category string, multiplier float64) {
	if current, ok := a.categoryMultipliers[category]; ok {
		a.categoryMultipliers[category] = current * multiplier
	} else {
		a.categoryMultipliers[category] = multiplier
	}
}

func (a *statusAccumulator) resistanceFor(statusID string) *rate {
	r, ok := a.resistance[statusID]
	if !ok {
		r = newRate()
		a.resistance[statusID] = r
	}
	return r
}

func (a *spellAccumulator) multiplyDealt(spellID string, multiplier float64) {
	if current, ok := a.dealtMultipliers[spellID]; ok {
		a.dealtMultipliers[spellID] = current * multiplier
	} else {
		a.dealtMultipliers[spellID] = multiplier
	}
}

func (a *spellAccumulator) multiplyTaken(spellID string, multiplier float64) {
	if current, ok := a.takenMultipliers[spellID]; ok {
		a.takenMultipliers[spellID] = current * multiplier
	} else {
		a.takenMultipliers[spellID] = multiplier
	}
}

func (a *combatAccumulator) raiseBarrier(charges map[DamageType]int, dt DamageType, count int) {
	if count > charges[dt] {
		charges[dt] = count
	}
}

func (a *miscAccumulator) multiplyEquipment(category, stat string, multiplier float64) {
	stats, ok := a.equipmentMultipliers[category]
	if !ok {
		stats = map[string]float64{}
		a.equipmentMultipliers[category] = stats
	}
	if current, ok := stats[stat]; ok {
		stats[stat] = current * multiplier
	} else {
		stats[stat] = multiplier
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
