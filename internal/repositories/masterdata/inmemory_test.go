package masterdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	skills := []*masterdata.SkillDefinition{
		{ID: "skill-1", Name: "Power Strike"},
		{ID: "skill-2", Name: "Guard"},
		nil, // tolerated
	}
	spells := []*masterdata.SpellDefinition{
		{ID: "fireball", School: masterdata.SchoolMage, Tier: 3},
	}

	repo := NewInMemory(skills, spells)

	t.Run("get skill", func(t *testing.T) {
		skill, err := repo.GetSkill(ctx, "skill-1")
		require.NoError(t, err)
		assert.Equal(t, "Power Strike", skill.Name)
	})

	t.Run("missing skill is not found", func(t *testing.T) {
		_, err := repo.GetSkill(ctx, "nope")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("list skills preserves id order", func(t *testing.T) {
		listed, err := repo.ListSkills(ctx, []string{"skill-2", "skill-1"})
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "skill-2", listed[0].ID)
		assert.Equal(t, "skill-1", listed[1].ID)
	})

	t.Run("list skills fails on any missing id", func(t *testing.T) {
		_, err := repo.ListSkills(ctx, []string{"skill-1", "nope"})
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("list spells returns a copy", func(t *testing.T) {
		listed, err := repo.ListSpells(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		listed[0] = nil
		again, err := repo.ListSpells(ctx)
		require.NoError(t, err)
		assert.NotNil(t, again[0])
	})
}
