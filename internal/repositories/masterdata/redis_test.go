package masterdata

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/epika-dev/epika-core/internal/domain/masterdata"
	apperr "github.com/epika-dev/epika-core/internal/errors"
	mockmasterdata "github.com/epika-dev/epika-core/internal/repositories/masterdata/mock"
)

type redisRepoSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	redisMock redismock.ClientMock
	source    *mockmasterdata.MockSource
	repo      Repository

	skill  *masterdata.SkillDefinition
	spells []*masterdata.SpellDefinition
}

func (s *redisRepoSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	client, redisMock := redismock.NewClientMock()
	s.redisMock = redisMock
	s.source = mockmasterdata.NewMockSource(s.ctrl)
	s.repo = NewRedis(client, s.source)

	s.skill = &masterdata.SkillDefinition{
		ID:   "skill-1",
		Name: "Power Strike",
		Effects: []masterdata.Effect{
			{Payload: json.RawMessage(`{"effectType":"firstStrike"}`)},
		},
	}
	s.spells = []*masterdata.SpellDefinition{
		{ID: "fireball", School: masterdata.SchoolMage, Tier: 3},
		{ID: "heal", School: masterdata.SchoolPriest, Tier: 1},
	}
}

func (s *redisRepoSuite) TearDownTest() {
	s.NoError(s.redisMock.ExpectationsWereMet())
	s.ctrl.Finish()
}

func (s *redisRepoSuite) TestGetSkill_CacheHit() {
	encoded, err := json.Marshal(s.skill)
	s.Require().NoError(err)
	s.redisMock.ExpectGet("masterdata:skill:skill-1").SetVal(string(encoded))

	skill, err := s.repo.GetSkill(s.ctx, "skill-1")
	s.Require().NoError(err)
	s.Equal(s.skill, skill)
}

func (s *redisRepoSuite) TestGetSkill_CacheMissPopulates() {
	encoded, err := json.Marshal(s.skill)
	s.Require().NoError(err)

	s.redisMock.ExpectGet("masterdata:skill:skill-1").RedisNil()
	s.source.EXPECT().LoadSkill(gomock.Any(), "skill-1").Return(s.skill, nil)
	s.redisMock.ExpectSet("masterdata:skill:skill-1", string(encoded), 0).SetVal("OK")

	skill, err := s.repo.GetSkill(s.ctx, "skill-1")
	s.Require().NoError(err)
	s.Equal(s.skill, skill)
}

func (s *redisRepoSuite) TestGetSkill_EmptyID() {
	_, err := s.repo.GetSkill(s.ctx, "")
	s.Require().Error(err)
	s.Equal(apperr.CodeInvalidArgument, apperr.GetCode(err))
}

func (s *redisRepoSuite) TestGetSkill_SourceErrorPropagates() {
	s.redisMock.ExpectGet("masterdata:skill:missing").RedisNil()
	s.source.EXPECT().LoadSkill(gomock.Any(), "missing").
		Return(nil, apperr.NotFoundf("skill missing not found"))

	_, err := s.repo.GetSkill(s.ctx, "missing")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *redisRepoSuite) TestGetSkill_CorruptCacheEntry() {
	s.redisMock.ExpectGet("masterdata:skill:skill-1").SetVal("{not json")

	_, err := s.repo.GetSkill(s.ctx, "skill-1")
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to unmarshal cached skill skill-1")
}

func (s *redisRepoSuite) TestListSkills_PreservesIDOrder() {
	other := &masterdata.SkillDefinition{ID: "skill-2", Name: "Guard"}
	encodedOther, err := json.Marshal(other)
	s.Require().NoError(err)
	encoded, err := json.Marshal(s.skill)
	s.Require().NoError(err)

	s.redisMock.ExpectGet("masterdata:skill:skill-2").SetVal(string(encodedOther))
	s.redisMock.ExpectGet("masterdata:skill:skill-1").SetVal(string(encoded))

	skills, err := s.repo.ListSkills(s.ctx, []string{"skill-2", "skill-1"})
	s.Require().NoError(err)
	s.Require().Len(skills, 2)
	s.Equal("skill-2", skills[0].ID)
	s.Equal("skill-1", skills[1].ID)
}

func (s *redisRepoSuite) TestListSpells_CacheMissPopulates() {
	encoded, err := json.Marshal(s.spells)
	s.Require().NoError(err)

	s.redisMock.ExpectGet("masterdata:spells").RedisNil()
	s.source.EXPECT().LoadSpells(gomock.Any()).Return(s.spells, nil)
	s.redisMock.ExpectSet("masterdata:spells", string(encoded), 0).SetVal("OK")

	spells, err := s.repo.ListSpells(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.spells, spells)
}

func (s *redisRepoSuite) TestListSpells_CacheHit() {
	encoded, err := json.Marshal(s.spells)
	s.Require().NoError(err)
	s.redisMock.ExpectGet("masterdata:spells").SetVal(string(encoded))

	spells, err := s.repo.ListSpells(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.spells, spells)
}

func TestRedisRepoSuite(t *testing.T) {
	suite.Run(t, new(redisRepoSuite))
}

func TestNewRedis_PanicsOnMissingDependencies(t *testing.T) {
	client, _ := redismock.NewClientMock()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for nil source")
		}
	}()
	NewRedis(client, nil)
}
