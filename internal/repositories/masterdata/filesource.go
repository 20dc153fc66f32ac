package masterdata

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	apperr "github.com/epika-dev/epika-core/internal/errors"
)

// FileSource loads authored master data from the bundled JSON files. The
// skill master maps skill id to definition; each effect entry is kept as
// the raw payload blob with its "type" field doubling as the fallback tag.
type FileSource struct {
	skillPath string
	spellPath string

	once   sync.Once
	skills map[string]*masterdata.SkillDefinition
	spells []*masterdata.SpellDefinition
	err    error
}

// NewFileSource creates a Source reading the authored JSON files. Files are
// parsed once, on first load.
func NewFileSource(skillPath, spellPath string) *FileSource {
	return &FileSource{
		skillPath: skillPath,
		spellPath: spellPath,
	}
}

type fileSkill struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Effects []json.RawMessage `json:"effects"`
}

func (s *FileSource) load() {
	s.skills = map[string]*masterdata.SkillDefinition{}

	raw, err := os.ReadFile(s.skillPath)
	if err != nil {
		s.err = apperr.Wrapf(err, "failed to read skill master %s", s.skillPath)
		return
	}

	var fileSkills map[string]fileSkill
	if err := json.Unmarshal(raw, &fileSkills); err != nil {
		s.err = apperr.Wrapf(err, "failed to parse skill master %s", s.skillPath)
		return
	}

	for id, fs := range fileSkills {
		skill := &masterdata.SkillDefinition{
			ID:   id,
			Name: fs.Name,
			Type: fs.Type,
		}
		if fs.ID != "" {
			skill.ID = fs.ID
		}
		for _, payload := range fs.Effects {
			var header struct {
				Type string `json:"type"`
			}
			// fallback tag only; a malformed blob surfaces at decode time
			_ = json.Unmarshal(payload, &header)
			skill.Effects = append(skill.Effects, masterdata.Effect{
				Type:    header.Type,
				Payload: payload,
			})
		}
		s.skills[skill.ID] = skill
	}

	if s.spellPath == "" {
		return
	}
	raw, err = os.ReadFile(s.spellPath)
	if err != nil {
		s.err = apperr.Wrapf(err, "failed to read spell master %s", s.spellPath)
		return
	}
	if err := json.Unmarshal(raw, &s.spells); err != nil {
		s.err = apperr.Wrapf(err, "failed to parse spell master %s", s.spellPath)
	}
}

// LoadSkill loads one skill definition from the authored data.
func (s *FileSource) LoadSkill(_ context.Context, id string) (*masterdata.SkillDefinition, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}

	skill, ok := s.skills[id]
	if !ok {
		return nil, apperr.NotFoundf("skill %s not found in %s", id, s.skillPath)
	}
	return skill, nil
}

// LoadSpells loads the full spell catalog from the authored data.
func (s *FileSource) LoadSpells(_ context.Context) ([]*masterdata.SpellDefinition, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}
	return append([]*masterdata.SpellDefinition(nil), s.spells...), nil
}

// SkillIDs returns every skill id in the authored data, for tooling that
// sweeps the whole master.
func (s *FileSource) SkillIDs() ([]string, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}

	ids := make([]string, 0, len(s.skills))
	for id := range s.skills {
		ids = append(ids, id)
	}
	return ids, nil
}
