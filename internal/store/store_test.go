package store_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/store"
)

type StoreTestSuite struct {
	suite.Suite
	store *store.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = store.New()
}

func (s *StoreTestSuite) record(id string, rt codex.RecordType) *codex.Record {
	return &codex.Record{ID: id, RecordType: rt, Name: id, Summary: "summary"}
}

func (s *StoreTestSuite) TestAddAndGet() {
	rec := s.record("race-tettari", codex.RecordTypeRace)
	s.Require().NoError(s.store.Add(codex.CategoryRaces, rec))

	got, err := s.store.Get(codex.CategoryRaces, "race-tettari")
	s.Require().NoError(err)
	s.Assert().Same(rec, got)
	s.Assert().Equal(1, s.store.Len())
}

func (s *StoreTestSuite) TestAddValidation() {
	s.Run("nil record", func() {
		err := s.store.Add(codex.CategoryRaces, nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("empty id", func() {
		err := s.store.Add(codex.CategoryRaces, &codex.Record{})
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown category", func() {
		err := s.store.Add(codex.Category("spells"), s.record("spell-x", codex.RecordTypeAbility))
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *StoreTestSuite) TestDuplicateIDWithinCategory() {
	s.Require().NoError(s.store.Add(codex.CategoryTraits, s.record("trait-keen-senses", codex.RecordTypeTrait)))

	err := s.store.Add(codex.CategoryTraits, s.record("trait-keen-senses", codex.RecordTypeTrait))
	s.Require().Error(err)
	s.Assert().True(errors.IsAlreadyExists(err))

	// Store unchanged after the failed insert
	s.Assert().Equal(1, s.store.Len())
	s.Assert().Len(s.store.AllOf(codex.CategoryTraits), 1)
}

func (s *StoreTestSuite) TestDuplicateIDAcrossCategories() {
	// IDs are unique globally, not just per bucket
	s.Require().NoError(s.store.Add(codex.CategoryTraits, s.record("shared-id", codex.RecordTypeTrait)))

	err := s.store.Add(codex.CategoryAbilities, s.record("shared-id", codex.RecordTypeAbility))
	s.Require().Error(err)
	s.Assert().True(errors.IsAlreadyExists(err))
	s.Assert().Equal("traits", errors.GetMeta(err)["category"])
	s.Assert().Empty(s.store.AllOf(codex.CategoryAbilities))
}

func (s *StoreTestSuite) TestGetNotFound() {
	_, err := s.store.Get(codex.CategoryRaces, "race-missing")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.store.Get(codex.Category("spells"), "any")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestAllOfPreservesInsertionOrder() {
	ids := []string{"ability-c", "ability-a", "ability-b"}
	for _, id := range ids {
		s.Require().NoError(s.store.Add(codex.CategoryAbilities, s.record(id, codex.RecordTypeAbility)))
	}

	records := s.store.AllOf(codex.CategoryAbilities)
	s.Require().Len(records, 3)
	for i, id := range ids {
		s.Assert().Equal(id, records[i].ID)
	}
}

func (s *StoreTestSuite) TestFreeze() {
	s.Require().NoError(s.store.Add(codex.CategoryRaces, s.record("race-tettari", codex.RecordTypeRace)))
	s.Assert().False(s.store.Frozen())

	s.store.Freeze()
	s.Assert().True(s.store.Frozen())

	err := s.store.Add(codex.CategoryRaces, s.record("race-later", codex.RecordTypeRace))
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	// Reads still work after freeze
	_, err = s.store.Get(codex.CategoryRaces, "race-tettari")
	s.Assert().NoError(err)
}

func (s *StoreTestSuite) TestCategories() {
	cats := s.store.Categories()
	s.Require().Len(cats, 8)
	s.Assert().Equal(codex.CategoryRaces, cats[0])
	s.Assert().Equal(codex.CategoryProfessions, cats[7])
}
