package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/epika-dev/epika-core/internal/errors"
)

func decodedPayload(t EffectType) *DecodedEffectPayload {
	return &DecodedEffectPayload{
		Type:              t,
		Parameters:        map[string]string{},
		Values:            map[string]float64{},
		StringValues:      map[string]string{},
		StringArrayValues: map[string][]string{},
	}
}

func TestValidateDecodedPayload_MissingRequiredKeys(t *testing.T) {
	tests := []struct {
		name       string
		payload    *DecodedEffectPayload
		missingKey string
	}{
		{
			name:       "missing parameter",
			payload:    decodedPayload(TypeDamageDealtPercent),
			missingKey: ParamDamageType,
		},
		{
			name: "blank parameter counts as missing",
			payload: func() *DecodedEffectPayload {
				p := decodedPayload(TypeDamageDealtPercent)
				p.Parameters[ParamDamageType] = ""
				p.Values[ValuePercentKey] = 10
				return p
			}(),
			missingKey: ParamDamageType,
		},
		{
			name: "missing numeric value",
			payload: func() *DecodedEffectPayload {
				p := decodedPayload(TypeDamageDealtPercent)
				p.Parameters[ParamDamageType] = "physical"
				return p
			}(),
			missingKey: ValuePercentKey,
		},
		{
			name:       "missing string array",
			payload:    decodedPayload(TypeProtectTarget),
			missingKey: TargetIDsKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDecodedPayload(tt.payload, "skill-v", 2)
			require.Error(t, err)
			assert.True(t, apperr.IsConfiguration(err))
			assert.Contains(t, err.Error(), "skill-v")
			assert.Contains(t, err.Error(), tt.missingKey)
			assert.Equal(t, tt.missingKey, apperr.GetMeta(err)["missing_key"])
		})
	}
}

func TestValidateDecodedPayload_AcceptsCompletePayload(t *testing.T) {
	p := decodedPayload(TypeStatusInfliction)
	p.Parameters[ParamStatusID] = "poison"
	p.Values[ChanceKey] = 35

	require.NoError(t, ValidateDecodedPayload(p, "skill-v", 0))
}

func TestValidateDecodedPayload_DisjunctiveRules(t *testing.T) {
	tests := []struct {
		name    string
		tag     EffectType
		satisfy func(p *DecodedEffectPayload)
	}{
		{
			name: "extraAction accepts procChance",
			tag:  TypeExtraAction,
			satisfy: func(p *DecodedEffectPayload) {
				p.Values[CountKey] = 1
				p.Values[ProcChanceKey] = 25
			},
		},
		{
			name: "partyAttackFlag accepts vampiric alone",
			tag:  TypePartyAttackFlag,
			satisfy: func(p *DecodedEffectPayload) {
				p.Values[VampiricKey] = 1
			},
		},
		{
			name: "spellCharges accepts tierCap alone",
			tag:  TypeSpellCharges,
			satisfy: func(p *DecodedEffectPayload) {
				p.Values[TierCapKey] = 4
			},
		},
		{
			name: "absorption accepts capPercent alone",
			tag:  TypeAbsorption,
			satisfy: func(p *DecodedEffectPayload) {
				p.Values[CapPercentKey] = 30
			},
		},
		{
			name: "retreatAtTurn accepts chance alone",
			tag:  TypeRetreatAtTurn,
			satisfy: func(p *DecodedEffectPayload) {
				p.Values[ChanceKey] = 50
			},
		},
		{
			name: "spellAccess accepts single spell id",
			tag:  TypeSpellAccess,
			satisfy: func(p *DecodedEffectPayload) {
				p.StringValues[ParamSpellID] = "fireball"
			},
		},
		{
			name: "spellAccess accepts spell id array",
			tag:  TypeSpellAccess,
			satisfy: func(p *DecodedEffectPayload) {
				p.StringArrayValues[SpellIDsKey] = []string{"fireball"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// unsatisfied first: the bare payload must be rejected
			bare := decodedPayload(tt.tag)
			if tt.tag == TypeExtraAction {
				bare.Values[CountKey] = 1 // flat requirement, not part of the disjunction
			}
			err := ValidateDecodedPayload(bare, "skill-d", 0)
			require.Error(t, err)
			assert.True(t, apperr.IsConfiguration(err))

			p := decodedPayload(tt.tag)
			tt.satisfy(p)
			require.NoError(t, ValidateDecodedPayload(p, "skill-d", 0))
		})
	}
}

func TestValidateDecodedPayload_UnknownTag(t *testing.T) {
	err := ValidateDecodedPayload(decodedPayload("noSuchTag"), "skill-v", 0)
	require.Error(t, err)
	assert.True(t, apperr.IsConfiguration(err))
	assert.Contains(t, err.Error(), "noSuchTag")
}
