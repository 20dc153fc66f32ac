package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"

	"github.com/epika-dev/epika-core/internal/effects"
	apperr "github.com/epika-dev/epika-core/internal/errors"
	"github.com/epika-dev/epika-core/internal/repositories/masterdata"
	"github.com/epika-dev/epika-core/internal/uuid"
)

// Service assembles immutable runtime snapshots from a character's skill
// list by running the four effect compilers over the authored master data.
type Service interface {
	// BuildSnapshot compiles the character's skills into a runtime snapshot
	BuildSnapshot(ctx context.Context, input *BuildSnapshotInput) (*Snapshot, error)
}

// BuildSnapshotInput identifies the character and its ordered skill list.
// Skill order matters: last-write-wins fields follow list order.
type BuildSnapshotInput struct {
	CharacterID string
	SkillIDs    []string
}

// Snapshot is the immutable compilation result embedded into a runtime
// character. Safe for concurrent read-only consumption.
type Snapshot struct {
	ID          string
	CharacterID string
	Effects     *effects.ActorEffectBundle
	Rewards     *effects.RewardComponents
	Exploration *effects.ExplorationModifiers
	Spellbook   *effects.Spellbook
	Loadout     *effects.SpellLoadout
}

// service implements the Service interface
type service struct {
	repository    masterdata.Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    masterdata.Repository // Required
	UUIDGenerator uuid.Generator        // Optional
}

// NewService creates a new character snapshot service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// BuildSnapshot compiles the character's skills into a runtime snapshot.
// Configuration errors from the compilers propagate unchanged; the caller
// surfaces them to a developer-facing channel.
func (s *service) BuildSnapshot(ctx context.Context, input *BuildSnapshotInput) (*Snapshot, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.CharacterID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	skills, err := s.repository.ListSkills(ctx, input.SkillIDs)
	if err != nil {
		return nil, err
	}

	bundle, err := effects.CompileActorEffects(skills)
	if err != nil {
		return nil, err
	}
	rewards, err := effects.CompileRewardComponents(skills)
	if err != nil {
		return nil, err
	}
	exploration, err := effects.CompileExplorationModifiers(skills)
	if err != nil {
		return nil, err
	}
	book, err := effects.CompileSpellbook(skills)
	if err != nil {
		return nil, err
	}

	catalog, err := s.repository.ListSpells(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		ID:          s.uuidGenerator.New(),
		CharacterID: input.CharacterID,
		Effects:     bundle,
		Rewards:     rewards,
		Exploration: exploration,
		Spellbook:   book,
		Loadout:     effects.ResolveLoadout(book, catalog),
	}, nil
}
