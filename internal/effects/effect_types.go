package effects

// EffectType is one tag of the closed effect-type set. Every authored effect
// resolves to exactly one tag; a tag outside this set is a configuration
// error at decode time.
type EffectType string

// Damage domain
const (
	TypeDamageDealtPercent            EffectType = "damageDealtPercent"
	TypeDamageDealtMultiplier         EffectType = "damageDealtMultiplier"
	TypeDamageTakenPercent            EffectType = "damageTakenPercent"
	TypeDamageTakenMultiplier         EffectType = "damageTakenMultiplier"
	TypeCategoryDamageMultiplier      EffectType = "categoryDamageMultiplier"
	TypeRaceDamageMultiplier          EffectType = "raceDamageMultiplier"
	TypeCriticalDamagePercent         EffectType = "criticalDamagePercent"
	TypeCriticalDamageMultiplier      EffectType = "criticalDamageMultiplier"
	TypeCriticalDamageTakenMultiplier EffectType = "criticalDamageTakenMultiplier"
	TypePenetrationTakenMultiplier    EffectType = "penetrationTakenMultiplier"
	TypeMartialBonusPercent           EffectType = "martialBonusPercent"
	TypeMartialBonusMultiplier        EffectType = "martialBonusMultiplier"
	TypeHitThresholdMultiplier        EffectType = "hitThresholdMultiplier"
	TypeMinHitScale                   EffectType = "minHitScale"
)

// Spell domain
const (
	TypeSpellPowerPercent          EffectType = "spellPowerPercent"
	TypeSpellPowerMultiplier       EffectType = "spellPowerMultiplier"
	TypeSpellDamageMultiplier      EffectType = "spellDamageMultiplier"
	TypeSpellDamageTakenMultiplier EffectType = "spellDamageTakenMultiplier"
	TypeSpellCharges               EffectType = "spellCharges"
	TypeBreathCharges              EffectType = "breathCharges"
)

// Combat domain
const (
	TypeProcMultiplier           EffectType = "procMultiplier"
	TypeProcRate                 EffectType = "procRate"
	TypeExtraAction              EffectType = "extraAction"
	TypeNextTurnExtraAction      EffectType = "nextTurnExtraAction"
	TypeActionOrderMultiplier    EffectType = "actionOrderMultiplier"
	TypeActionOrderShuffle       EffectType = "actionOrderShuffle"
	TypeCounterEvasionMultiplier EffectType = "counterEvasionMultiplier"
	TypeReaction                 EffectType = "reaction"
	TypeParry                    EffectType = "parry"
	TypeShieldBlock              EffectType = "shieldBlock"
	TypeBarrier                  EffectType = "barrier"
	TypeGuardBarrier             EffectType = "guardBarrier"
	TypeSpecialAttack            EffectType = "specialAttack"
	TypeEnemyActionDebuff        EffectType = "enemyActionDebuff"
	TypeFirstStrike              EffectType = "firstStrike"
)

// Status domain
const (
	TypeStatusResistancePercent    EffectType = "statusResistancePercent"
	TypeStatusResistanceMultiplier EffectType = "statusResistanceMultiplier"
	TypeStatusInfliction           EffectType = "statusInfliction"
	TypeBerserkChance              EffectType = "berserkChance"
	TypeTimedBuffTrigger           EffectType = "timedBuffTrigger"
)

// Resurrection domain
const (
	TypeRescueCapability     EffectType = "rescueCapability"
	TypeRescueModifier       EffectType = "rescueModifier"
	TypeResurrectionActive   EffectType = "resurrectionActive"
	TypeForcedResurrection   EffectType = "forcedResurrection"
	TypeVitalizeResurrection EffectType = "vitalizeResurrection"
	TypeNecromancerInterval  EffectType = "necromancerInterval"
	TypeSacrificeInterval    EffectType = "sacrificeInterval"
	TypeRetreatAtTurn        EffectType = "retreatAtTurn"
)

// Misc domain
const (
	TypeRowProfile              EffectType = "rowProfile"
	TypeEndOfTurnHealingPercent EffectType = "endOfTurnHealingPercent"
	TypeEndOfTurnSelfHPPercent  EffectType = "endOfTurnSelfHPPercent"
	TypeDodgeCapMax             EffectType = "dodgeCapMax"
	TypeAbsorption              EffectType = "absorption"
	TypePartyAttackFlag         EffectType = "partyAttackFlag"
	TypeAntiHealing             EffectType = "antiHealing"
	TypeEquipmentStatMultiplier EffectType = "equipmentStatMultiplier"
	TypeDegradationRepair       EffectType = "degradationRepair"
	TypeMagicRunaway            EffectType = "magicRunaway"
	TypeDamageRunaway           EffectType = "damageRunaway"
	TypeHostileTarget           EffectType = "hostileTarget"
	TypeProtectTarget           EffectType = "protectTarget"
)

// Reward domain (relevant only to the reward component compiler)
const (
	TypeExperiencePercent    EffectType = "experiencePercent"
	TypeExperienceMultiplier EffectType = "experienceMultiplier"
	TypeGoldPercent          EffectType = "goldPercent"
	TypeGoldMultiplier       EffectType = "goldMultiplier"
	TypeItemDropPercent      EffectType = "itemDropPercent"
	TypeItemDropMultiplier   EffectType = "itemDropMultiplier"
	TypeTitleDropPercent     EffectType = "titleDropPercent"
	TypeTitleDropMultiplier  EffectType = "titleDropMultiplier"
)

// Exploration and spellbook domains
const (
	TypeExplorationTimeMultiplier EffectType = "explorationTimeMultiplier"
	TypeSpellAccess               EffectType = "spellAccess"
	TypeSpellTierUnlock           EffectType = "spellTierUnlock"
)

// Base-stat effects. These are fully resolved during character base-stat
// computation, before battle-modifier compilation; the actor compiler
// registers them as deliberate no-ops so the registry stays exhaustive.
const (
	TypeStatAdditive               EffectType = "statAdditive"
	TypeStatMultiplier             EffectType = "statMultiplier"
	TypeStatLevelMultiplier        EffectType = "statLevelMultiplier"
	TypeAttackCountAdditive        EffectType = "attackCountAdditive"
	TypeAttackCountMultiplier      EffectType = "attackCountMultiplier"
	TypeAdditionalDamage           EffectType = "additionalDamage"
	TypeAdditionalDamageMultiplier EffectType = "additionalDamageMultiplier"
	TypeCriticalRatePercent        EffectType = "criticalRatePercent"
	TypeCriticalRateCap            EffectType = "criticalRateCap"
	TypeHitRatePercent             EffectType = "hitRatePercent"
	TypeEvasionPercent             EffectType = "evasionPercent"
	TypeInitiativePercent          EffectType = "initiativePercent"
	TypeMaxHPPercent               EffectType = "maxHPPercent"
	TypeMaxMPPercent               EffectType = "maxMPPercent"
	TypeAttackPowerModifier        EffectType = "attackPowerModifier"
	TypeAttackPowerMultiplier      EffectType = "attackPowerMultiplier"
)

// Schema declares the flat required keys for one effect type. Disjunctive
// rules that cannot be expressed as flat requirements live in the validator.
type Schema struct {
	RequiredParams       []string
	RequiredValues       []string
	RequiredStringArrays []string
}

// Common payload keys.
const (
	ParamDamageType  = "damageType"
	ParamCategory    = "category"
	ParamRace        = "race"
	ParamStatusID    = "statusId"
	ParamProcID      = "procId"
	ParamAction      = "action"
	ParamTrigger     = "trigger"
	ParamTarget      = "target"
	ParamKind        = "kind"
	ParamDebuff      = "debuff"
	ParamStance      = "stance"
	ParamScope       = "scope"
	ParamMode        = "mode"
	ParamStat        = "stat"
	ParamSchool      = "school"
	ParamSpellID     = "spellId"
	ParamDungeonID   = "dungeonId"
	ParamDungeonName = "dungeonName"

	ValuePercentKey   = "valuePercent"
	MultiplierKey     = "multiplier"
	ChanceKey         = "chance"
	ProcChanceKey     = "procChance"
	CountKey          = "count"
	ChargesKey        = "charges"
	RateKey           = "rate"
	ScaleKey          = "scale"
	ThresholdKey      = "threshold"
	TurnKey           = "turn"
	TurnsKey          = "turns"
	TierKey           = "tier"
	CapKey            = "cap"
	PercentKey        = "percent"
	CapPercentKey     = "capPercent"
	HPPercentKey      = "hpPercent"
	TriggerTurnKey    = "triggerTurn"
	ChancePercentKey  = "chancePercent"
	BonusPercentKey   = "bonusPercent"
	MinPercentKey     = "minPercent"
	MaxPercentKey     = "maxPercent"
	AutoRepairKey     = "autoRepair"
	HostileKey        = "hostile"
	ProtectKey        = "protect"
	VampiricKey       = "vampiric"
	BonusChargesKey   = "bonusCharges"
	FlatChargesKey    = "flatCharges"
	MinChargesKey     = "minCharges"
	MaxChargesKey     = "maxCharges"
	TierCapKey        = "tierCap"
	AdditiveKey       = "additive"
	PerLevelKey       = "perLevel"
	SpellIDsKey       = "spellIds"
	TargetIDsKey      = "targetIds"
	AptitudesKey      = "aptitudes"
)

// effectSchemas declares the registry schema for every effect type. A tag
// absent from this map is not part of the closed set.
var effectSchemas = map[EffectType]Schema{
	TypeDamageDealtPercent:            {RequiredParams: []string{ParamDamageType}, RequiredValues: []string{ValuePercentKey}},
	TypeDamageDealtMultiplier:         {RequiredParams: []string{ParamDamageType}, RequiredValues: []string{MultiplierKey}},
	TypeDamageTakenPercent:            {RequiredParams: []string{ParamDamageType}, RequiredValues: []string{ValuePercentKey}},
	TypeDamageTakenMultiplier:         {RequiredParams: []string{ParamDamageType}, RequiredValues: []string{MultiplierKey}},
	TypeCategoryDamageMultiplier:      {RequiredParams: []string{ParamCategory}, RequiredValues: []string{MultiplierKey}},
	TypeRaceDamageMultiplier:          {RequiredParams: []string{ParamRace}, RequiredValues: []string{MultiplierKey}},
	TypeCriticalDamagePercent:         {RequiredValues: []string{ValuePercentKey}},
	TypeCriticalDamageMultiplier:      {RequiredValues: []string{MultiplierKey}},
	TypeCriticalDamageTakenMultiplier: {RequiredValues: []string{MultiplierKey}},
	TypePenetrationTakenMultiplier:    {RequiredValues: []string{MultiplierKey}},
	TypeMartialBonusPercent:           {RequiredValues: []string{ValuePercentKey}},
	TypeMartialBonusMultiplier:        {RequiredValues: []string{MultiplierKey}},
	TypeHitThresholdMultiplier:        {RequiredValues: []string{MultiplierKey}},
	TypeMinHitScale:                   {RequiredValues: []string{ScaleKey}},

	TypeSpellPowerPercent:          {RequiredValues: []string{ValuePercentKey}},
	TypeSpellPowerMultiplier:       {RequiredValues: []string{MultiplierKey}},
	TypeSpellDamageMultiplier:      {RequiredValues: []string{MultiplierKey}, RequiredStringArrays: []string{SpellIDsKey}},
	TypeSpellDamageTakenMultiplier: {RequiredValues: []string{MultiplierKey}, RequiredStringArrays: []string{SpellIDsKey}},
	TypeSpellCharges:               {}, // disjunctive rule in validator
	TypeBreathCharges:              {RequiredValues: []string{CountKey}},

	TypeProcMultiplier:           {RequiredParams: []string{ParamProcID}, RequiredValues: []string{MultiplierKey}},
	TypeProcRate:                 {RequiredParams: []string{ParamProcID}, RequiredValues: []string{RateKey}},
	TypeExtraAction:              {RequiredValues: []string{CountKey}}, // chance keys in validator
	TypeNextTurnExtraAction:      {RequiredValues: []string{CountKey}},
	TypeActionOrderMultiplier:    {RequiredValues: []string{MultiplierKey}},
	TypeActionOrderShuffle:       {},
	TypeCounterEvasionMultiplier: {RequiredValues: []string{MultiplierKey}},
	TypeReaction:                 {RequiredParams: []string{ParamAction}},
	TypeParry:                    {},
	TypeShieldBlock:              {},
	TypeBarrier:                  {RequiredParams: []string{ParamDamageType}, RequiredValues: []string{ChargesKey}},
	TypeGuardBarrier:             {RequiredParams: []string{ParamDamageType}, RequiredValues: []string{ChargesKey}},
	TypeSpecialAttack:            {RequiredParams: []string{ParamKind}},
	TypeEnemyActionDebuff:        {RequiredParams: []string{ParamDebuff}},
	TypeFirstStrike:              {},

	TypeStatusResistancePercent:    {RequiredParams: []string{ParamStatusID}, RequiredValues: []string{ValuePercentKey}},
	TypeStatusResistanceMultiplier: {RequiredParams: []string{ParamStatusID}, RequiredValues: []string{MultiplierKey}},
	TypeStatusInfliction:           {RequiredParams: []string{ParamStatusID}, RequiredValues: []string{ChanceKey}},
	TypeBerserkChance:              {RequiredValues: []string{ChanceKey}},
	TypeTimedBuffTrigger:           {RequiredValues: []string{TriggerTurnKey}},

	TypeRescueCapability:     {},
	TypeRescueModifier:       {RequiredValues: []string{ChancePercentKey}},
	TypeResurrectionActive:   {RequiredValues: []string{ChanceKey}},
	TypeForcedResurrection:   {RequiredValues: []string{HPPercentKey}},
	TypeVitalizeResurrection: {RequiredValues: []string{HPPercentKey}},
	TypeNecromancerInterval:  {RequiredValues: []string{TurnsKey}},
	TypeSacrificeInterval:    {RequiredValues: []string{TurnsKey}},
	TypeRetreatAtTurn:        {}, // disjunctive rule in validator

	TypeRowProfile:              {RequiredParams: []string{ParamStance}},
	TypeEndOfTurnHealingPercent: {RequiredValues: []string{ValuePercentKey}},
	TypeEndOfTurnSelfHPPercent:  {RequiredValues: []string{ValuePercentKey}},
	TypeDodgeCapMax:             {RequiredValues: []string{CapKey}},
	TypeAbsorption:              {}, // disjunctive rule in validator
	TypePartyAttackFlag:         {}, // disjunctive rule in validator
	TypeAntiHealing:             {},
	TypeEquipmentStatMultiplier: {RequiredParams: []string{ParamCategory, ParamStat}, RequiredValues: []string{MultiplierKey}},
	TypeDegradationRepair:       {},
	TypeMagicRunaway:            {RequiredValues: []string{ChanceKey}},
	TypeDamageRunaway:           {RequiredValues: []string{ChanceKey}},
	TypeHostileTarget:           {RequiredStringArrays: []string{TargetIDsKey}},
	TypeProtectTarget:           {RequiredStringArrays: []string{TargetIDsKey}},

	TypeExperiencePercent:    {RequiredValues: []string{ValuePercentKey}},
	TypeExperienceMultiplier: {RequiredValues: []string{MultiplierKey}},
	TypeGoldPercent:          {RequiredValues: []string{ValuePercentKey}},
	TypeGoldMultiplier:       {RequiredValues: []string{MultiplierKey}},
	TypeItemDropPercent:      {RequiredValues: []string{ValuePercentKey}},
	TypeItemDropMultiplier:   {RequiredValues: []string{MultiplierKey}},
	TypeTitleDropPercent:     {RequiredValues: []string{ValuePercentKey}},
	TypeTitleDropMultiplier:  {RequiredValues: []string{MultiplierKey}},

	TypeExplorationTimeMultiplier: {RequiredValues: []string{MultiplierKey}},
	TypeSpellAccess:               {}, // disjunctive rule in validator
	TypeSpellTierUnlock:           {RequiredParams: []string{ParamSchool}, RequiredValues: []string{TierKey}},

	TypeStatAdditive:               {RequiredParams: []string{ParamStat}, RequiredValues: []string{AdditiveKey}},
	TypeStatMultiplier:             {RequiredParams: []string{ParamStat}, RequiredValues: []string{MultiplierKey}},
	TypeStatLevelMultiplier:        {RequiredParams: []string{ParamStat}, RequiredValues: []string{PerLevelKey}},
	TypeAttackCountAdditive:        {RequiredValues: []string{CountKey}},
	TypeAttackCountMultiplier:      {RequiredValues: []string{MultiplierKey}},
	TypeAdditionalDamage:           {RequiredValues: []string{AdditiveKey}},
	TypeAdditionalDamageMultiplier: {RequiredValues: []string{MultiplierKey}},
	TypeCriticalRatePercent:        {RequiredValues: []string{ValuePercentKey}},
	TypeCriticalRateCap:            {RequiredValues: []string{CapKey}},
	TypeHitRatePercent:             {RequiredValues: []string{ValuePercentKey}},
	TypeEvasionPercent:             {RequiredValues: []string{ValuePercentKey}},
	TypeInitiativePercent:          {RequiredValues: []string{ValuePercentKey}},
	TypeMaxHPPercent:               {RequiredValues: []string{ValuePercentKey}},
	TypeMaxMPPercent:               {RequiredValues: []string{ValuePercentKey}},
	TypeAttackPowerModifier:        {RequiredValues: []string{AdditiveKey}},
	TypeAttackPowerMultiplier:      {RequiredValues: []string{MultiplierKey}},
}

// IsKnown reports whether the tag belongs to the closed effect-type set.
func (t EffectType) IsKnown() bool {
	_, ok := effectSchemas[t]
	return ok
}

// SchemaFor returns the declared requirement schema for a tag.
func SchemaFor(t EffectType) (Schema, bool) {
	s, ok := effectSchemas[t]
	return s, ok
}

// AllEffectTypes returns every tag of the closed set. Order is unspecified.
func AllEffectTypes() []EffectType {
	types := make([]EffectType, 0, len(effectSchemas))
	for t := range effectSchemas {
		types = append(types, t)
	}
	return types
}
