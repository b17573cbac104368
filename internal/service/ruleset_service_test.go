package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
	"docreview/internal/service"
	"docreview/mocks"
)

func newRulesetService() (service.RulesetService, *mocks.MockRulesetRepo, *mocks.MockSectionRepo) {
	repo := new(mocks.MockRulesetRepo)
	sectionRepo := new(mocks.MockSectionRepo)
	return service.NewRulesetService(repo, sectionRepo), repo, sectionRepo
}

func TestRulesetService_Create_AssignsSequenceFromListOrder(t *testing.T) {
	svc, repo, sectionRepo := newRulesetService()

	secA := uuid.New()
	secB := uuid.New()
	sectionRepo.On("GetByID", mock.Anything, secA).Return(&domain.Section{ID: secA}, nil)
	sectionRepo.On("GetByID", mock.Anything, secB).Return(&domain.Section{ID: secB}, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Ruleset"),
		mock.MatchedBy(func(entries []domain.RulesetEntry) bool {
			return len(entries) == 2 &&
				entries[0].SectionID == secA && entries[0].SequenceOrder == 1 &&
				entries[1].SectionID == secB && entries[1].SequenceOrder == 2
		})).Return(nil)
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&domain.Ruleset{Name: "Export pack"}, nil)
	repo.On("ListEntries", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return([]domain.RulesetEntry{}, nil)

	_, err := svc.Create(context.Background(), service.CreateRulesetInput{
		Name: "Export pack",
		Entries: []service.RulesetEntryInput{
			{SectionID: secA, AIInstructions: "check totals"},
			{SectionID: secB},
		},
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRulesetService_Create_UnknownSection(t *testing.T) {
	svc, repo, sectionRepo := newRulesetService()

	secA := uuid.New()
	sectionRepo.On("GetByID", mock.Anything, secA).Return(nil, domain.ErrSectionNotFound)

	_, err := svc.Create(context.Background(), service.CreateRulesetInput{
		Name:    "Export pack",
		Entries: []service.RulesetEntryInput{{SectionID: secA}},
	})

	assert.ErrorIs(t, err, domain.ErrSectionNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRulesetService_Update_ReplacesEntriesWholesale(t *testing.T) {
	svc, repo, sectionRepo := newRulesetService()

	rulesetID := uuid.New()
	secA := uuid.New()
	sectionRepo.On("GetByID", mock.Anything, secA).Return(&domain.Section{ID: secA}, nil)

	repo.On("GetByID", mock.Anything, rulesetID).
		Return(&domain.Ruleset{ID: rulesetID, Name: "Export pack"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Ruleset")).Return(nil)
	repo.On("ReplaceEntries", mock.Anything, rulesetID,
		mock.MatchedBy(func(entries []domain.RulesetEntry) bool {
			return len(entries) == 1 && entries[0].SequenceOrder == 1
		})).Return(nil)
	repo.On("ListEntries", mock.Anything, rulesetID).Return([]domain.RulesetEntry{}, nil)

	_, err := svc.Update(context.Background(), rulesetID, service.UpdateRulesetInput{
		Entries: []service.RulesetEntryInput{{SectionID: secA}},
	})

	assert.NoError(t, err)
	repo.AssertCalled(t, "ReplaceEntries", mock.Anything, rulesetID, mock.Anything)
}

func TestRulesetService_Update_NilEntriesKeepsExisting(t *testing.T) {
	svc, repo, _ := newRulesetService()

	rulesetID := uuid.New()
	name := "Renamed pack"

	repo.On("GetByID", mock.Anything, rulesetID).
		Return(&domain.Ruleset{ID: rulesetID, Name: "Export pack"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Ruleset) bool {
		return r.Name == "Renamed pack"
	})).Return(nil)
	repo.On("ListEntries", mock.Anything, rulesetID).Return([]domain.RulesetEntry{}, nil)

	_, err := svc.Update(context.Background(), rulesetID, service.UpdateRulesetInput{Name: &name})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "ReplaceEntries", mock.Anything, mock.Anything, mock.Anything)
}

func TestRulesetService_Update_MissingRuleset(t *testing.T) {
	svc, repo, _ := newRulesetService()

	rulesetID := uuid.New()
	repo.On("GetByID", mock.Anything, rulesetID).Return(nil, domain.ErrRulesetNotFound)

	_, err := svc.Update(context.Background(), rulesetID, service.UpdateRulesetInput{})

	assert.ErrorIs(t, err, domain.ErrRulesetNotFound)
}
