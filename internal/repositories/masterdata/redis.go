package masterdata

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

const (
	skillKeyPrefix = "masterdata:skill:"
	spellsKey      = "masterdata:spells"
)

// redisRepo is a read-through cache over a Source. Cache misses populate
// Redis lazily; concurrent misses for the same key collapse into a single
// in-flight load via singleflight.
type redisRepo struct {
	client redis.UniversalClient
	source Source
	group  singleflight.Group
}

// NewRedis creates a Redis-backed read-through repository.
func NewRedis(client redis.UniversalClient, source Source) Repository {
	if client == nil {
		panic("redis client is required")
	}
	if source == nil {
		panic("master data source is required")
	}
	return &redisRepo{
		client: client,
		source: source,
	}
}

// GetSkill retrieves one skill definition, populating the cache on miss.
func (r *redisRepo) GetSkill(ctx context.Context, id string) (*masterdata.SkillDefinition, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("skill id is required")
	}

	key := skillKeyPrefix + id
	data, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var skill masterdata.SkillDefinition
		if unmarshalErr := json.Unmarshal([]byte(data), &skill); unmarshalErr != nil {
			return nil, apperr.Wrapf(unmarshalErr, "failed to unmarshal cached skill %s", id)
		}
		return &skill, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, apperr.Wrapf(err, "failed to read skill %s from cache", id)
	}

	result, err, _ := r.group.Do(key, func() (any, error) {
		skill, loadErr := r.source.LoadSkill(ctx, id)
		if loadErr != nil {
			return nil, loadErr
		}

		encoded, marshalErr := json.Marshal(skill)
		if marshalErr != nil {
			return nil, apperr.Wrapf(marshalErr, "failed to marshal skill %s", id)
		}
		if setErr := r.client.Set(ctx, key, string(encoded), 0).Err(); setErr != nil {
			return nil, apperr.Wrapf(setErr, "failed to cache skill %s", id)
		}
		return skill, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*masterdata.SkillDefinition), nil
}

// ListSkills retrieves skill definitions preserving the order of ids.
func (r *redisRepo) ListSkills(ctx context.Context, ids []string) ([]*masterdata.SkillDefinition, error) {
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

// ListSpells retrieves the full spell catalog, populating the cache on miss.
func (r *redisRepo) ListSpells(ctx context.Context) ([]*masterdata.SpellDefinition, error) {
	data, err := r.client.Get(ctx, spellsKey).Result()
	if err == nil {
		var spells []*masterdata.SpellDefinition
		if unmarshalErr := json.Unmarshal([]byte(data), &spells); unmarshalErr != nil {
			return nil, apperr.Wrap(unmarshalErr, "failed to unmarshal cached spell catalog")
		}
		return spells, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, apperr.Wrap(err, "failed to read spell catalog from cache")
	}

	result, err, _ := r.group.Do(spellsKey, func() (any, error) {
		spells, loadErr := r.source.LoadSpells(ctx)
		if loadErr != nil {
			return nil, loadErr
		}

		encoded, marshalErr := json.Marshal(spells)
		if marshalErr != nil {
			return nil, apperr.Wrap(marshalErr, "failed to marshal spell catalog")
		}
		if setErr := r.client.Set(ctx, spellsKey, string(encoded), 0).Err(); setErr != nil {
			return nil, apperr.Wrap(setErr, "failed to cache spell catalog")
		}
		return spells, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*masterdata.SpellDefinition), nil
}
