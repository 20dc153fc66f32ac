package effects

import (
	"sort"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
)

// Spellbook is what the skill list says about spell access: explicitly
// learned ids, explicitly forgotten ids, and the highest unlocked tier per
// school. Forgetting always wins over learning and tier unlocks.
type Spellbook struct {
	Learned     map[string]struct{}
	Forgotten   map[string]struct{}
	TierUnlocks map[masterdata.SpellSchool]int
}

// NewSpellbook returns the empty spellbook.
func NewSpellbook() *Spellbook {
	return &Spellbook{
		Learned:     map[string]struct{}{},
		Forgotten:   map[string]struct{}{},
		TierUnlocks: map[masterdata.SpellSchool]int{},
	}
}

// SpellLoadout is the castable-spell list per school, each filtered to
// allowed ids and sorted by (tier ascending, id ascending).
type SpellLoadout struct {
	MageSpells   []string
	PriestSpells []string
}

// CompileSpellbook runs an independent pass over the skill list, consuming
// only spellAccess and spellTierUnlock.
func CompileSpellbook(skills []*masterdata.SkillDefinition) (*Spellbook, error) {
	book := NewSpellbook()

	err := forEachDecodedEffect(skills, func(p *DecodedEffectPayload, _ HandlerContext) error {
		switch p.Type {
		case TypeSpellAccess:
			action := p.ParamOr(ParamAction, "learn")
			for _, spellID := range spellAccessIDs(p) {
				if action == "forget" {
					book.Forgotten[spellID] = struct{}{}
				} else {
					book.Learned[spellID] = struct{}{}
				}
			}
		case TypeSpellTierUnlock:
			school := masterdata.SpellSchool(p.Parameters[ParamSchool])
			tier := int(p.Values[TierKey])
			if tier > book.TierUnlocks[school] {
				book.TierUnlocks[school] = tier
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

func spellAccessIDs(p *DecodedEffectPayload) []string {
	if ids := p.StringArray(SpellIDsKey); len(ids) > 0 {
		return ids
	}
	if id, ok := p.StringValue(ParamSpellID); ok && id != "" {
		return []string{id}
	}
	return nil
}

// ResolveLoadout computes the castable-spell lists as a pure function of
// the spellbook and the full spell catalog. Allowed ids are every spell at
// or below its school's unlocked tier, plus explicitly learned ids, minus
// forgotten ids; forgetting beats both unlock paths.
func ResolveLoadout(book *Spellbook, catalog []*masterdata.SpellDefinition) *SpellLoadout {
	loadout := &SpellLoadout{}
	if book == nil {
		return loadout
	}

	allowed := make([]*masterdata.SpellDefinition, 0, len(catalog))
	for _, spell := range catalog {
		if spell == nil {
			continue
		}
		if _, forgotten := book.Forgotten[spell.ID]; forgotten {
			continue
		}
		if _, learned := book.Learned[spell.ID]; learned {
			allowed = append(allowed, spell)
			continue
		}
		if spell.Tier <= book.TierUnlocks[spell.School] {
			allowed = append(allowed, spell)
		}
	}

	sort.Slice(allowed, func(i, j int) bool {
		if allowed[i].Tier != allowed[j].Tier {
			return allowed[i].Tier < allowed[j].Tier
		}
		return allowed[i].ID < allowed[j].ID
	})

	for _, spell := range allowed {
		switch spell.School {
		case masterdata.SchoolMage:
			loadout.MageSpells = append(loadout.MageSpells, spell.ID)
		case masterdata.SchoolPriest:
			loadout.PriestSpells = append(loadout.PriestSpells, spell.ID)
		}
	}

	return loadout
}
