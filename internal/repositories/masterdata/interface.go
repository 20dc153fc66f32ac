package masterdata

//go:generate mockgen -destination=mock/mock.go -package=mockmasterdata -source=interface.go

import (
	"context"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
)

// Repository supplies authored master data to the compilers. The effect
// compilation core treats it as a synchronous, read-only input; every
// implementation must be safe for concurrent readers.
type Repository interface {
	// GetSkill retrieves one skill definition by id
	GetSkill(ctx context.Context, id string) (*masterdata.SkillDefinition, error)

	// ListSkills retrieves skill definitions preserving the order of ids
	ListSkills(ctx context.Context, ids []string) ([]*masterdata.SkillDefinition, error)

	// ListSpells retrieves the full spell catalog
	ListSpells(ctx context.Context) ([]*masterdata.SpellDefinition, error)
}

// Source is the backing store the caching repository reads through to,
// typically the bundled master-data files.
type Source interface {
	// LoadSkill loads one skill definition from the authored data
	LoadSkill(ctx context.Context, id string) (*masterdata.SkillDefinition, error)

	// LoadSpells loads the full spell catalog from the authored data
	LoadSpells(ctx context.Context) ([]*masterdata.SpellDefinition, error)
}
