package masterdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epika-dev/epika-core/internal/testutils"
)

// Requires a local Redis; skipped otherwise.
func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	ctx := context.Background()

	skillPath, spellPath := writeTestMasters(t)
	repo := NewRedis(client, NewFileSource(skillPath, spellPath))

	// first read populates the cache from the files
	skill, err := repo.GetSkill(ctx, "skill-1")
	require.NoError(t, err)
	assert.Equal(t, "Power Strike", skill.Name)

	cached, err := client.Exists(ctx, "masterdata:skill:skill-1").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached)

	// second read is served from the cache and matches
	again, err := repo.GetSkill(ctx, "skill-1")
	require.NoError(t, err)
	assert.Equal(t, skill, again)

	spells, err := repo.ListSpells(ctx)
	require.NoError(t, err)
	assert.Len(t, spells, 2)
}
