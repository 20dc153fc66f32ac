// Package effects compiles declarative skill-effect records into the
// immutable modifier bundles the battle engine and the reward and
// exploration calculators consume.
//
// A compilation pass is a pure, synchronous fold: skills in list order, each
// skill's effects in stored order, each payload decoded, validated against
// the closed effect-type registry, and dispatched to the handler that folds
// it into the accumulator. The first configuration error aborts the whole
// pass; compiling the same ordered skill list twice yields identical output.
package effects

import (
	"github.com/epika-dev/epika-core/internal/domain/masterdata"
)

// CompileActorEffects folds every effect of every skill into a fresh
// accumulator and finalizes it into the actor's combat modifier bundle.
// An empty or nil skill list yields the neutral bundle.
func CompileActorEffects(skills []*masterdata.SkillDefinition) (*ActorEffectBundle, error) {
	acc := NewActorEffectsAccumulator()

	err := forEachDecodedEffect(skills, func(p *DecodedEffectPayload, hctx HandlerContext) error {
		return dispatchActorEffect(p, acc, hctx)
	})
	if err != nil {
		return nil, err
	}

	return acc.Finalize(), nil
}

// forEachDecodedEffect runs the shared decode+validate pass all four
// compilers use, invoking fn for every effect that carries a payload.
// Effects without a payload blob are legal and skipped.
func forEachDecodedEffect(skills []*masterdata.SkillDefinition, fn func(p *DecodedEffectPayload, hctx HandlerContext) error) error {
	for _, skill := range skills {
		if skill == nil {
			continue
		}
		for i, effect := range skill.Effects {
			decoded, err := DecodeEffectPayload(effect, skill.ID)
			if err != nil {
				return err
			}
			if decoded == nil {
				continue
			}
			if err := ValidateDecodedPayload(decoded, skill.ID, i); err != nil {
				return err
			}
			hctx := HandlerContext{SkillID: skill.ID, SkillName: skill.Name, EffectIndex: i}
			if err := fn(decoded, hctx); err != nil {
				return err
			}
		}
	}
	return nil
}
