package effects

import (
	"github.com/epika-dev/epika-core/internal/domain/masterdata"
)

// RewardCategory identifies one reward scaling channel.
type RewardCategory string

const (
	RewardExperience RewardCategory = "experience"
	RewardGold       RewardCategory = "gold"
	RewardItemDrop   RewardCategory = "itemDrop"
	RewardTitleDrop  RewardCategory = "titleDrop"
)

// RewardComponent is one category's multiplier product and bonus-fraction
// sum. Percent contributions arrive divided by 100.
type RewardComponent struct {
	Multiplier float64
	BonusSum   float64
}

// Scale combines the component, clamping both parts at zero so a deeply
// negative bonus sum can never produce a negative reward.
func (c RewardComponent) Scale() float64 {
	multiplier := c.Multiplier
	if multiplier < 0 {
		multiplier = 0
	}
	bonus := 1 + c.BonusSum
	if bonus < 0 {
		bonus = 0
	}
	return multiplier * bonus
}

// RewardComponents is the immutable reward scaling output of one compile
// pass. The neutral value has all multipliers 1 and all sums 0.
type RewardComponents struct {
	Experience RewardComponent
	Gold       RewardComponent
	ItemDrop   RewardComponent
	TitleDrop  RewardComponent
}

// Component returns the component for a category.
func (r *RewardComponents) Component(category RewardCategory) RewardComponent {
	switch category {
	case RewardGold:
		return r.Gold
	case RewardItemDrop:
		return r.ItemDrop
	case RewardTitleDrop:
		return r.TitleDrop
	default:
		return r.Experience
	}
}

// Scale returns the final reward scale for a category.
func (r *RewardComponents) Scale(category RewardCategory) float64 {
	return r.Component(category).Scale()
}

// CompileRewardComponents runs an independent pass over the skill list.
// Only the eight reward tags contribute; every other tag of the closed set
// is decoded and validated, then ignored.
func CompileRewardComponents(skills []*masterdata.SkillDefinition) (*RewardComponents, error) {
	rewards := &RewardComponents{
		Experience: RewardComponent{Multiplier: 1},
		Gold:       RewardComponent{Multiplier: 1},
		ItemDrop:   RewardComponent{Multiplier: 1},
		TitleDrop:  RewardComponent{Multiplier: 1},
	}

	err := forEachDecodedEffect(skills, func(p *DecodedEffectPayload, _ HandlerContext) error {
		switch p.Type {
		case TypeExperiencePercent:
			rewards.Experience.BonusSum += p.Values[ValuePercentKey] / 100
		case TypeExperienceMultiplier:
			rewards.Experience.Multiplier *= p.Values[MultiplierKey]
		case TypeGoldPercent:
			rewards.Gold.BonusSum += p.Values[ValuePercentKey] / 100
		case TypeGoldMultiplier:
			rewards.Gold.Multiplier *= p.Values[MultiplierKey]
		case TypeItemDropPercent:
			rewards.ItemDrop.BonusSum += p.Values[ValuePercentKey] / 100
		case TypeItemDropMultiplier:
			rewards.ItemDrop.Multiplier *= p.Values[MultiplierKey]
		case TypeTitleDropPercent:
			rewards.TitleDrop.BonusSum += p.Values[ValuePercentKey] / 100
		case TypeTitleDropMultiplier:
			rewards.TitleDrop.Multiplier *= p.Values[MultiplierKey]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rewards, nil
}
