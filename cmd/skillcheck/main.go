// skillcheck sweeps the authored skill master, compiles every skill on its
// own and the full list together, and reports configuration errors. Run it
// after editing master data to catch malformed payloads before they reach a
// battle.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/epika-dev/epika-core/internal/config"
	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	"github.com/epika-dev/epika-core/internal/effects"
	repo "github.com/epika-dev/epika-core/internal/repositories/masterdata"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	source := repo.NewFileSource(cfg.MasterData.SkillMasterPath, cfg.MasterData.SpellMasterPath)

	ctx := context.Background()
	repository := buildRepository(ctx, cfg, source)

	ids, err := source.SkillIDs()
	if err != nil {
		log.Fatalf("Failed to load skill master: %v", err)
	}
	sort.Strings(ids)
	log.Printf("Checking %d skills from %s", len(ids), cfg.MasterData.SkillMasterPath)

	failures := 0
	skills := make([]*masterdata.SkillDefinition, 0, len(ids))
	for _, id := range ids {
		skill, getErr := repository.GetSkill(ctx, id)
		if getErr != nil {
			log.Printf("FAIL %s: %v", id, getErr)
			failures++
			continue
		}
		skills = append(skills, skill)

		if _, compileErr := effects.CompileActorEffects([]*masterdata.SkillDefinition{skill}); compileErr != nil {
			log.Printf("FAIL %s: %v", id, compileErr)
			failures++
		}
	}

	// the full list exercises cross-skill accumulation paths too
	if _, err := effects.CompileActorEffects(skills); err != nil {
		log.Printf("FAIL combined compile: %v", err)
		failures++
	}
	if _, err := effects.CompileRewardComponents(skills); err != nil {
		log.Printf("FAIL reward compile: %v", err)
		failures++
	}
	if _, err := effects.CompileExplorationModifiers(skills); err != nil {
		log.Printf("FAIL exploration compile: %v", err)
		failures++
	}
	if _, err := effects.CompileSpellbook(skills); err != nil {
		log.Printf("FAIL spellbook compile: %v", err)
		failures++
	}

	if failures > 0 {
		fmt.Printf("%d configuration error(s) found\n", failures)
		os.Exit(1)
	}
	fmt.Printf("All %d skills compile cleanly\n", len(ids))
}

// buildRepository prefers the Redis read-through cache when REDIS_CACHE is
// set, mirroring the server wiring; otherwise it serves straight from the
// authored files.
func buildRepository(ctx context.Context, cfg *config.Config, source repo.Source) repo.Repository {
	if os.Getenv("REDIS_CACHE") == "" {
		return newSourceRepository(source)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return newSourceRepository(source)
	}

	log.Printf("Using Redis cache at %s", cfg.Redis.Addr)
	return repo.NewRedis(client, source)
}

// sourceRepository adapts a Source directly to the Repository interface for
// cache-less runs.
type sourceRepository struct {
	source repo.Source
}

func newSourceRepository(source repo.Source) repo.Repository {
	return &sourceRepository{source: source}
}

func (r *sourceRepository) GetSkill(ctx context.Context, id string) (*masterdata.SkillDefinition, error) {
	return r.source.LoadSkill(ctx, id)
}

func (r *sourceRepository) ListSkills(ctx context.Context, ids []string) ([]*masterdata.SkillDefinition, error) {
	skills := make([]*masterdata.SkillDefinition, 0, len(ids))
	for _, id := range ids {
		skill, err := r.source.LoadSkill(ctx, id)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func (r *sourceRepository) ListSpells(ctx context.Context) ([]*masterdata.SpellDefinition, error) {
	return r.source.LoadSpells(ctx)
}
