package character

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	apperr "github.com/epika-dev/epika-core/internal/errors"
	mockmasterdata "github.com/epika-dev/epika-core/internal/repositories/masterdata/mock"
)

type fixedUUID string

func (u fixedUUID) New() string { return string(u) }

func snapshotSkills() []*masterdata.SkillDefinition {
	return []*masterdata.SkillDefinition{
		{
			ID:   "skill-1",
			Name: "Power Strike",
			Effects: []masterdata.Effect{
				{Payload: json.RawMessage(`{"effectType":"damageDealtPercent","parameters":{"damageType":"physical"},"value":{"valuePercent":50}}`)},
				{Payload: json.RawMessage(`{"effectType":"goldMultiplier","value":{"multiplier":2}}`)},
			},
		},
		{
			ID:   "skill-2",
			Name: "Arcane Studies",
			Effects: []masterdata.Effect{
				{Payload: json.RawMessage(`{"effectType":"spellTierUnlock","parameters":{"school":"mage"},"value":{"tier":3}}`)},
			},
		},
	}
}

func snapshotCatalog() []*masterdata.SpellDefinition {
	return []*masterdata.SpellDefinition{
		{ID: "fireball", School: masterdata.SchoolMage, Tier: 3},
		{ID: "meteor", School: masterdata.SchoolMage, Tier: 7},
		{ID: "heal", School: masterdata.SchoolPriest, Tier: 1},
	}
}

func TestNewService_RequiresRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewService(&ServiceConfig{})
	})
}

func TestBuildSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockmasterdata.NewMockRepository(ctrl)
	svc := NewService(&ServiceConfig{
		Repository:    repo,
		UUIDGenerator: fixedUUID("snap-id"),
	})

	skillIDs := []string{"skill-1", "skill-2"}
	repo.EXPECT().ListSkills(gomock.Any(), skillIDs).Return(snapshotSkills(), nil)
	repo.EXPECT().ListSpells(gomock.Any()).Return(snapshotCatalog(), nil)

	snapshot, err := svc.BuildSnapshot(context.Background(), &BuildSnapshotInput{
		CharacterID: "char-1",
		SkillIDs:    skillIDs,
	})
	require.NoError(t, err)

	assert.Equal(t, "snap-id", snapshot.ID)
	assert.Equal(t, "char-1", snapshot.CharacterID)
	assert.InDelta(t, 1.5, snapshot.Effects.Damage.Dealt["physical"], 1e-9)
	assert.Equal(t, 2.0, snapshot.Rewards.Gold.Multiplier)
	assert.Equal(t, 1.0, snapshot.Exploration.Multiplier("any", "Any"))
	assert.Equal(t, 3, snapshot.Spellbook.TierUnlocks[masterdata.SchoolMage])
	assert.Equal(t, []string{"fireball"}, snapshot.Loadout.MageSpells)
	assert.Empty(t, snapshot.Loadout.PriestSpells)
}

func TestBuildSnapshot_InputValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockmasterdata.NewMockRepository(ctrl)
	svc := NewService(&ServiceConfig{Repository: repo})

	tests := []struct {
		name  string
		input *BuildSnapshotInput
	}{
		{"nil input", nil},
		{"missing character id", &BuildSnapshotInput{SkillIDs: []string{"skill-1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BuildSnapshot(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, apperr.CodeInvalidArgument, apperr.GetCode(err))
		})
	}
}

func TestBuildSnapshot_RepositoryErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockmasterdata.NewMockRepository(ctrl)
	svc := NewService(&ServiceConfig{Repository: repo})

	repo.EXPECT().ListSkills(gomock.Any(), gomock.Any()).
		Return(nil, apperr.NotFoundf("skill skill-9 not found"))

	_, err := svc.BuildSnapshot(context.Background(), &BuildSnapshotInput{
		CharacterID: "char-1",
		SkillIDs:    []string{"skill-9"},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestBuildSnapshot_ConfigurationErrorPropagatesUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockmasterdata.NewMockRepository(ctrl)
	svc := NewService(&ServiceConfig{Repository: repo})

	broken := []*masterdata.SkillDefinition{
		{
			ID: "broken",
			Effects: []masterdata.Effect{
				{Payload: json.RawMessage(`{"effectType":"notARealEffect"}`)},
			},
		},
	}
	repo.EXPECT().ListSkills(gomock.Any(), gomock.Any()).Return(broken, nil)

	_, err := svc.BuildSnapshot(context.Background(), &BuildSnapshotInput{
		CharacterID: "char-1",
		SkillIDs:    []string{"broken"},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConfiguration(err))
	assert.Contains(t, err.Error(), "broken")
}

func TestBuildSnapshot_EmptySkillListYieldsNeutralSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockmasterdata.NewMockRepository(ctrl)
	svc := NewService(&ServiceConfig{Repository: repo})

	repo.EXPECT().ListSkills(gomock.Any(), gomock.Nil()).Return(nil, nil)
	repo.EXPECT().ListSpells(gomock.Any()).Return(snapshotCatalog(), nil)

	snapshot, err := svc.BuildSnapshot(context.Background(), &BuildSnapshotInput{CharacterID: "char-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, 1.0, snapshot.Effects.Damage.Dealt["physical"])
	assert.Empty(t, snapshot.Loadout.MageSpells)
}
