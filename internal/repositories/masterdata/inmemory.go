package masterdata

import (
	"context"
	"sync"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

// inMemoryRepo holds master data in maps. Used by tests and offline
// tooling; safe for concurrent readers after construction.
type inMemoryRepo struct {
	mu     sync.RWMutex
	skills map[string]*masterdata.SkillDefinition
	spells []*masterdata.SpellDefinition
}

// NewInMemory creates an in-memory repository pre-populated with the given
// definitions.
func NewInMemory(skills []*masterdata.SkillDefinition, spells []*masterdata.SpellDefinition) Repository {
	repo := &inMemoryRepo{
		skills: make(map[string]*masterdata.SkillDefinition, len(skills)),
		spells: append([]*masterdata.SpellDefinition(nil), spells...),
	}
	for _, skill := range skills {
		if skill != nil {
			repo.skills[skill.ID] = skill
		}
	}
	return repo
}

// GetSkill retrieves one skill definition by id.
func (r *inMemoryRepo) GetSkill(_ context.Context, id string) (*masterdata.SkillDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skill, ok := r.skills[id]
	if !ok {
		return nil, apperr.NotFoundf("skill %s not found", id)
	}
	return skill, nil
}

// ListSkills retrieves skill definitions preserving the order of ids.
func (r *inMemoryRepo) ListSkills(ctx context.Context, ids []string) ([]*masterdata.SkillDefinition, error) {
	skills := make([]*masterdata.SkillDefinition, 0, len(ids))
	for _, id := range ids {
		skill, err := r.GetSkill(ctx, id)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

// ListSpells retrieves the full spell catalog.
func (r *inMemoryRepo) ListSpells(_ context.Context) ([]*masterdata.SpellDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*masterdata.SpellDefinition(nil), r.spells...), nil
}
