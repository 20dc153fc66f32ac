package effects

import (
	"encoding/json"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

// DecodedEffectPayload is the typed view of one effect's payload blob.
// A key appears in at most one of the three value maps; entries that fail
// classification are degraded to absent rather than erroring, so the
// validator stays the single place that detects missing required fields.
type DecodedEffectPayload struct {
	Type              EffectType
	FamilyID          string
	Parameters        map[string]string
	Values            map[string]float64
	StringValues      map[string]string
	StringArrayValues map[string][]string
}

// Param returns the named parameter and whether it was present.
func (p *DecodedEffectPayload) Param(key string) (string, bool) {
	v, ok := p.Parameters[key]
	return v, ok
}

// ParamOr returns the named parameter or a fallback when absent or blank.
func (p *DecodedEffectPayload) ParamOr(key, fallback string) string {
	if v, ok := p.Parameters[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Value returns the named numeric value and whether it was present.
func (p *DecodedEffectPayload) Value(key string) (float64, bool) {
	v, ok := p.Values[key]
	return v, ok
}

// ValueOr returns the named numeric value or a fallback when absent.
func (p *DecodedEffectPayload) ValueOr(key string, fallback float64) float64 {
	if v, ok := p.Values[key]; ok {
		return v
	}
	return fallback
}

// StringValue returns the named string value and whether it was present.
func (p *DecodedEffectPayload) StringValue(key string) (string, bool) {
	v, ok := p.StringValues[key]
	return v, ok
}

// StringArray returns the named string-array value, nil when absent.
func (p *DecodedEffectPayload) StringArray(key string) []string {
	return p.StringArrayValues[key]
}

// HasValue reports whether a numeric value is present under any of the keys.
func (p *DecodedEffectPayload) HasValue(keys ...string) bool {
	for _, key := range keys {
		if _, ok := p.Values[key]; ok {
			return true
		}
	}
	return false
}

// rawEffectPayload is the JSON form of an authored payload blob.
type rawEffectPayload struct {
	EffectType string            `json:"effectType"`
	FamilyID   string            `json:"familyId"`
	Parameters map[string]string `json:"parameters"`
	Value      map[string]any    `json:"value"`
}

// DecodeEffectPayload parses one effect's payload blob. A missing blob
// returns (nil, nil): effects with implicit, type-only semantics are legal.
// The resolved tag comes from the payload's effectType field, falling back
// to the effect's stored type tag; a blank or unknown resolved tag is a
// configuration error carrying the skill id.
func DecodeEffectPayload(effect masterdata.Effect, skillID string) (*DecodedEffectPayload, error) {
	if len(effect.Payload) == 0 {
		return nil, nil
	}

	var raw rawEffectPayload
	if err := json.Unmarshal(effect.Payload, &raw); err != nil {
		return nil, apperr.Configurationf("skill %s: malformed effect payload: %v", skillID, err).
			WithMeta("skill_id", skillID)
	}

	tag := raw.EffectType
	if tag == "" {
		tag = effect.Type
	}
	if tag == "" {
		return nil, apperr.Configurationf("skill %s: effect payload resolves to a blank effect type", skillID).
			WithMeta("skill_id", skillID)
	}

	effectType := EffectType(tag)
	if !effectType.IsKnown() {
		return nil, apperr.Configurationf("skill %s: unknown effect type %q", skillID, tag).
			WithMeta("skill_id", skillID).
			WithMeta("effect_type", tag)
	}

	decoded := &DecodedEffectPayload{
		Type:              effectType,
		FamilyID:          raw.FamilyID,
		Parameters:        raw.Parameters,
		Values:            make(map[string]float64),
		StringValues:      make(map[string]string),
		StringArrayValues: make(map[string][]string),
	}
	if decoded.Parameters == nil {
		decoded.Parameters = map[string]string{}
	}

	for key, entry := range raw.Value {
		switch v := entry.(type) {
		case float64:
			decoded.Values[key] = v
		case string:
			decoded.StringValues[key] = v
		case []any:
			arr, ok := stringSlice(v)
			if !ok {
				continue // partially typed entry degrades to absent
			}
			decoded.StringArrayValues[key] = arr
		case bool:
			// boolean-ish flags travel as 0/1 numbers
			if v {
				decoded.Values[key] = 1
			} else {
				decoded.Values[key] = 0
			}
		}
	}

	return decoded, nil
}

func stringSlice(entries []any) ([]string, bool) {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
