package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/resolver"
	"github.com/KirkDiggler/rpg-codex/internal/store"
)

type ResolverTestSuite struct {
	suite.Suite
	store    *store.Store
	resolver *resolver.Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.store = store.New()

	trait := &codex.Record{
		ID:         "trait-tettari-survivor",
		RecordType: codex.RecordTypeTrait,
		Name:       "Survivor",
		Summary:    "Hard to kill.",
		Mechanics:  codex.Mechanics{Trait: &codex.TraitMechanics{RulesText: "Advantage on survival checks."}},
	}
	s.Require().NoError(s.store.Add(codex.CategoryTraits, trait))

	class := &codex.Record{
		ID:         "class-warden",
		RecordType: codex.RecordTypeClass,
		Name:       "Warden",
		Summary:    "Keeper of the old borders.",
		Mechanics: codex.Mechanics{
			Class: &codex.ClassMechanics{StartingAbilities: []string{"ability-brand-of-the-oath"}},
		},
	}
	s.Require().NoError(s.store.Add(codex.CategoryClasses, class))

	r, err := resolver.New(&resolver.Config{Store: s.store})
	s.Require().NoError(err)
	s.resolver = r
}

func (s *ResolverTestSuite) TestNewValidatesConfig() {
	_, err := resolver.New(nil)
	s.Assert().Error(err)

	_, err = resolver.New(&resolver.Config{})
	s.Assert().Error(err)
}

func (s *ResolverTestSuite) TestResolve() {
	results := s.resolver.Resolve(
		[]string{"trait-tettari-survivor", "trait-tettari-survivr"},
		codex.CategoryTraits,
	)

	s.Require().Len(results, 2)
	s.Assert().Equal(resolver.Resolution{ID: "trait-tettari-survivor", Found: true}, results[0])
	s.Assert().Equal(resolver.Resolution{ID: "trait-tettari-survivr", Found: false}, results[1])
}

func (s *ResolverTestSuite) TestResolveWrongCategory() {
	// The trait exists, but not where the reference claims it does
	results := s.resolver.Resolve([]string{"trait-tettari-survivor"}, codex.CategoryAbilities)
	s.Require().Len(results, 1)
	s.Assert().False(results[0].Found)
}

func (s *ResolverTestSuite) TestCheckGrantedBy() {
	newAbility := func(id string, grantedBy *codex.GrantedBy) *codex.Record {
		return &codex.Record{
			ID:         id,
			RecordType: codex.RecordTypeAbility,
			Mechanics: codex.Mechanics{
				Ability: &codex.AbilityMechanics{RulesText: "text", GrantedBy: grantedBy},
			},
		}
	}

	s.Run("no grantedBy declared", func() {
		result := s.resolver.CheckGrantedBy(newAbility("ability-unbound", nil))
		s.Assert().False(result.Checked)
	})

	s.Run("source found and back-linked", func() {
		result := s.resolver.CheckGrantedBy(newAbility(
			"ability-brand-of-the-oath",
			&codex.GrantedBy{Type: codex.RecordTypeClass, ID: "class-warden"},
		))
		s.Assert().True(result.Checked)
		s.Assert().True(result.SourceFound)
		s.Assert().True(result.HasBackLink)
		s.Assert().True(result.BackLinked)
	})

	s.Run("source found but not back-linked", func() {
		result := s.resolver.CheckGrantedBy(newAbility(
			"ability-mark-prey",
			&codex.GrantedBy{Type: codex.RecordTypeClass, ID: "class-warden"},
		))
		s.Assert().True(result.SourceFound)
		s.Assert().True(result.HasBackLink)
		s.Assert().False(result.BackLinked)
	})

	s.Run("source missing", func() {
		result := s.resolver.CheckGrantedBy(newAbility(
			"ability-mark-prey",
			&codex.GrantedBy{Type: codex.RecordTypeRace, ID: "race-unwritten"},
		))
		s.Assert().True(result.Checked)
		s.Assert().False(result.SourceFound)
	})

	s.Run("source type without back-link field", func() {
		result := s.resolver.CheckGrantedBy(newAbility(
			"ability-mark-prey",
			&codex.GrantedBy{Type: codex.RecordTypeTrait, ID: "trait-tettari-survivor"},
		))
		s.Assert().True(result.SourceFound)
		s.Assert().False(result.HasBackLink)
	})

	s.Run("invalid source type", func() {
		result := s.resolver.CheckGrantedBy(newAbility(
			"ability-mark-prey",
			&codex.GrantedBy{Type: codex.RecordTypeProfession, ID: "profession-smith"},
		))
		s.Assert().True(result.Checked)
		s.Assert().False(result.SourceFound)
	})
}
