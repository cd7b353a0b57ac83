package content_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/pkg/clock"
	content "github.com/KirkDiggler/rpg-codex/internal/repositories/content"
	"github.com/KirkDiggler/rpg-codex/internal/testutils"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    content.Repository
	cleanup func()
	clock   clock.Clock
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = &fixedClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}

	repo, err := content.NewRedis(&content.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestPutAndGet() {
	trait := testutils.NewTestTrait("trait-salt-blood")

	_, err := s.repo.Put(s.ctx, content.PutInput{Record: trait})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, content.GetInput{
		Category: codex.CategoryTraits,
		ID:       "trait-salt-blood",
	})
	s.Require().NoError(err)
	s.Assert().Equal("trait-salt-blood", output.Record.ID)
	s.Require().NotNil(output.Record.Mechanics.Trait)
	s.Assert().Equal(trait.Mechanics.Trait.RulesText, output.Record.Mechanics.Trait.RulesText)
}

func (s *RedisRepositoryTestSuite) TestPutValidation() {
	_, err := s.repo.Put(s.ctx, content.PutInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, content.PutInput{Record: &codex.Record{}})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, content.PutInput{Record: &codex.Record{
		ID:         "spell-x",
		RecordType: codex.RecordType("spell"),
	}})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPutOverwrites() {
	trait := testutils.NewTestTrait("trait-salt-blood")
	_, err := s.repo.Put(s.ctx, content.PutInput{Record: trait})
	s.Require().NoError(err)

	trait.Name = "Salt Blood, Revised"
	_, err = s.repo.Put(s.ctx, content.PutInput{Record: trait})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, content.GetInput{
		Category: codex.CategoryTraits,
		ID:       "trait-salt-blood",
	})
	s.Require().NoError(err)
	s.Assert().Equal("Salt Blood, Revised", output.Record.Name)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, content.GetInput{
		Category: codex.CategoryTraits,
		ID:       "trait-unwritten",
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByCategory() {
	for _, id := range []string{"trait-c", "trait-a", "trait-b"} {
		_, err := s.repo.Put(s.ctx, content.PutInput{Record: testutils.NewTestTrait(id)})
		s.Require().NoError(err)
	}
	_, err := s.repo.Put(s.ctx, content.PutInput{Record: testutils.NewTestRace("race-tettari")})
	s.Require().NoError(err)

	output, err := s.repo.ListByCategory(s.ctx, content.ListByCategoryInput{
		Category: codex.CategoryTraits,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 3)

	// Sorted by ID for deterministic listings
	s.Assert().Equal("trait-a", output.Records[0].ID)
	s.Assert().Equal("trait-b", output.Records[1].ID)
	s.Assert().Equal("trait-c", output.Records[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListUnknownCategory() {
	_, err := s.repo.ListByCategory(s.ctx, content.ListByCategoryInput{
		Category: codex.Category("spells"),
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, content.PutInput{Record: testutils.NewTestTrait("trait-salt-blood")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, content.DeleteInput{
		Category: codex.CategoryTraits,
		ID:       "trait-salt-blood",
	})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, content.GetInput{
		Category: codex.CategoryTraits,
		ID:       "trait-salt-blood",
	})
	s.Assert().True(errors.IsNotFound(err))

	output, err := s.repo.ListByCategory(s.ctx, content.ListByCategoryInput{
		Category: codex.CategoryTraits,
	})
	s.Require().NoError(err)
	s.Assert().Empty(output.Records)
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, content.DeleteInput{
		Category: codex.CategoryTraits,
		ID:       "trait-unwritten",
	})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestManifest() {
	_, err := s.repo.GetManifest(s.ctx, content.GetManifestInput{})
	s.Assert().True(errors.IsNotFound(err))

	put, err := s.repo.PutManifest(s.ctx, content.PutManifestInput{
		Manifest: &content.Manifest{
			RecordCounts: map[string]int{"traits": 3, "races": 1},
		},
	})
	s.Require().NoError(err)
	// PublishedAt is stamped from the clock when unset
	s.Assert().Equal(s.clock.Now(), put.Manifest.PublishedAt)

	output, err := s.repo.GetManifest(s.ctx, content.GetManifestInput{})
	s.Require().NoError(err)
	s.Assert().Equal(3, output.Manifest.RecordCounts["traits"])
	s.Assert().True(output.Manifest.PublishedAt.Equal(s.clock.Now()))
}
