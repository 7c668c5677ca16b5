package chargen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/wcg-tools/osf-chargen/internal/auth"
	mockauth "github.com/wcg-tools/osf-chargen/internal/auth/mock"
	"github.com/wcg-tools/osf-chargen/internal/catalog"
	chargenClient "github.com/wcg-tools/osf-chargen/internal/clients/chargen"
	mockchargen "github.com/wcg-tools/osf-chargen/internal/clients/chargen/mock"
	mockdice "github.com/wcg-tools/osf-chargen/internal/dice/mock"
	"github.com/wcg-tools/osf-chargen/internal/domain/attributes"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/request"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
	"github.com/wcg-tools/osf-chargen/internal/repositories/wizard_sessions"
	"github.com/wcg-tools/osf-chargen/internal/services/chargen"
	mockuuid "github.com/wcg-tools/osf-chargen/internal/uuid/mock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	client  *mockchargen.MockClient
	tokens  *mockauth.MockTokenSource
	uuidGen *mockuuid.MockGenerator
	roller  *mockdice.ManualMockRoller
	repo    wizard_sessions.Repository
	svc     chargen.Service
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mockchargen.NewMockClient(s.ctrl)
	s.tokens = mockauth.NewMockTokenSource(s.ctrl)
	s.uuidGen = mockuuid.NewMockGenerator(s.ctrl)
	s.roller = mockdice.NewManualMockRoller()
	s.repo = wizard_sessions.NewInMemoryRepository(nil)
	s.ctx = context.Background()

	s.svc = chargen.NewService(&chargen.ServiceConfig{
		Repository:    s.repo,
		Client:        s.client,
		Tokens:        s.tokens,
		Roller:        s.roller,
		UUIDGenerator: s.uuidGen,
	})
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) start(id string, mode character.Mode, level int) *chargen.WizardState {
	s.uuidGen.EXPECT().New().Return(id)
	state, err := s.svc.Start(s.ctx, "user-1", mode, level)
	s.Require().NoError(err)
	return state
}

// seed stores a session positioned at the given step
func (s *ServiceTestSuite) seed(id string, d *character.Draft, step wizard.StepID) {
	d.ID = id
	d.OwnerID = "user-1"
	session := &wizard.Session{ID: id, OwnerID: "user-1", Draft: d}
	for i, st := range session.Steps() {
		if st == step {
			session.Cursor = i
		}
	}
	s.Require().NoError(s.repo.Create(s.ctx, session))
}

func (s *ServiceTestSuite) assignedDraft(mode character.Mode, level int, species character.Species, values []int) *character.Draft {
	d, err := character.NewDraft(mode, level)
	s.Require().NoError(err)
	s.Require().NoError(d.SelectSpecies(species))

	e, err := attributes.NewEngine(values)
	s.Require().NoError(err)
	e.AutoAssign()
	e.Store(d)
	return d
}

func (s *ServiceTestSuite) commonerReadyToSubmit(sheet character.SheetType) *character.Draft {
	d := s.assignedDraft(character.ModeZero, 0, character.SpeciesDwarf, []int{2, 1, 0, 0, 0, -1, -2})
	s.Require().NoError(d.SelectProfession("Farmer"))
	s.Require().NoError(d.SetSpeciesStrength(character.AttributeSTR))
	s.Require().NoError(d.SetSpeciesWeakness(character.AttributeLUC))
	s.Require().NoError(d.SetName("Brom Ironfoot"))
	s.Require().NoError(d.SetSheetType(sheet))
	return d
}

func (s *ServiceTestSuite) TestStartBeginsOnSpeciesWithNextDisabled() {
	state := s.start("s1", character.ModeZero, 0)

	s.Equal(wizard.StepSpecies, state.Current)
	s.Equal([]wizard.StepID{wizard.StepSpecies, wizard.StepProfession, wizard.StepAttributes, wizard.StepCreate}, state.Steps)
	s.False(state.CanNext)
	s.False(state.CanPrevious)
	s.Equal("s1", state.Draft().ID)
	s.Equal("user-1", state.Draft().OwnerID)
}

func (s *ServiceTestSuite) TestStartRejectsBadLevel() {
	_, err := s.svc.Start(s.ctx, "user-1", character.ModeTraditional, 0)
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestStartDiscardsPreviousWizard() {
	s.start("s1", character.ModeZero, 0)
	s.start("s2", character.ModeTraditional, 3)

	_, err := s.svc.Get(s.ctx, "s1")
	s.True(dnderr.IsNotFound(err))

	state, err := s.svc.Get(s.ctx, "s2")
	s.Require().NoError(err)
	s.Equal(3, state.Draft().Level)
}

func (s *ServiceTestSuite) TestActionOnInactiveStepFails() {
	s.start("s1", character.ModeTraditional, 1)

	_, err := s.svc.SelectClass(s.ctx, "s1", character.ClassWarrior)
	s.True(dnderr.Is(err, dnderr.CodeFailedPrecondition))
}

func (s *ServiceTestSuite) TestNextRequiresEligibleStep() {
	s.start("s1", character.ModeTraditional, 1)

	state, err := s.svc.Next(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(wizard.StepSpecies, state.Current)

	state, err = s.svc.SelectSpecies(s.ctx, "s1", character.SpeciesElf)
	s.Require().NoError(err)
	s.True(state.CanNext)

	state, err = s.svc.Next(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(wizard.StepClass, state.Current)
	s.False(state.CanNext)
	s.True(state.CanPrevious)
}

func (s *ServiceTestSuite) TestPreviousRecomputesGate() {
	s.start("s1", character.ModeTraditional, 1)
	_, err := s.svc.SelectSpecies(s.ctx, "s1", character.SpeciesElf)
	s.Require().NoError(err)
	_, err = s.svc.Next(s.ctx, "s1")
	s.Require().NoError(err)

	state, err := s.svc.Previous(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(wizard.StepSpecies, state.Current)
	s.True(state.CanNext)
}

func (s *ServiceTestSuite) TestProfessionsLoadOnMount() {
	s.start("s1", character.ModeZero, 0)
	professions := &rulebook.ProfessionsCatalog{Professions: []rulebook.Profession{
		{Name: "Farmer", RangeStart: 1, RangeEnd: 30},
		{Name: "Miner", RangeStart: 31, RangeEnd: 60},
		{Name: "Scribe", RangeStart: 61, RangeEnd: 100},
	}}
	s.client.EXPECT().GenerateProfessions(gomock.Any()).Return(professions, nil)

	_, err := s.svc.SelectSpecies(s.ctx, "s1", character.SpeciesHuman)
	s.Require().NoError(err)
	state, err := s.svc.Next(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(wizard.StepProfession, state.Current)
	s.False(state.CanNext)

	state, err = s.svc.WaitCatalogs(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(catalog.StatusReady, state.Catalog)
	s.Equal(professions, state.Professions)
	s.False(state.CanNext)

	_, err = s.svc.SelectProfession(s.ctx, "s1", "Blacksmith")
	s.True(dnderr.IsInvalidArgument(err))

	state, err = s.svc.SelectProfession(s.ctx, "s1", "Miner")
	s.Require().NoError(err)
	s.True(state.CanNext)

	// the generated list sticks to the session across navigation
	_, err = s.svc.Previous(s.ctx, "s1")
	s.Require().NoError(err)
	state, err = s.svc.Next(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(professions.Names(), state.Professions.Names())
	s.True(state.CanNext)
}

func (s *ServiceTestSuite) TestCatalogFailureBlocksUntilRetried() {
	d, err := character.NewDraft(character.ModeZero, 0)
	s.Require().NoError(err)
	s.Require().NoError(d.SelectSpecies(character.SpeciesHuman))
	s.seed("s1", d, wizard.StepProfession)

	professions := &rulebook.ProfessionsCatalog{Professions: []rulebook.Profession{{Name: "Farmer", RangeStart: 1, RangeEnd: 100}}}
	gomock.InOrder(
		s.client.EXPECT().GenerateProfessions(gomock.Any()).
			Return(nil, dnderr.New(dnderr.CodeCatalogUnavailable, "down")),
		s.client.EXPECT().GenerateProfessions(gomock.Any()).Return(professions, nil),
	)

	_, err = s.svc.Get(s.ctx, "s1")
	s.Require().NoError(err)
	state, err := s.svc.WaitCatalogs(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(catalog.StatusError, state.Catalog)
	s.Error(state.CatalogErr)
	s.False(state.CanNext)

	// a plain refresh does not refetch
	state, err = s.svc.Get(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(catalog.StatusError, state.Catalog)

	_, err = s.svc.RetryCatalog(s.ctx, "s1")
	s.Require().NoError(err)
	state, err = s.svc.WaitCatalogs(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(catalog.StatusReady, state.Catalog)
}

func (s *ServiceTestSuite) TestZeroModeRollsAttributesOnMount() {
	d, err := character.NewDraft(character.ModeZero, 0)
	s.Require().NoError(err)
	s.Require().NoError(d.SelectSpecies(character.SpeciesDwarf))
	s.Require().NoError(d.SelectProfession("Farmer"))
	s.seed("s1", d, wizard.StepProfession)
	s.Require().NoError(s.repo.Update(s.ctx, func() *wizard.Session {
		sess, err := s.repo.Get(s.ctx, "s1")
		s.Require().NoError(err)
		sess.Professions = &rulebook.ProfessionsCatalog{Professions: []rulebook.Profession{{Name: "Farmer"}}}
		sess.NextEnabled = true
		return sess
	}()))

	s.roller.SetRolls([]int{3, 1, 2, 2, 1, 3, 2, 1, 1, 2, 3, 3, 2, 2})

	state, err := s.svc.Next(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(wizard.StepAttributes, state.Current)
	s.Equal(14, s.roller.Used())
	s.Equal(map[string]int{"STR": 2, "COR": 0, "STA": -2, "PER": 1, "INT": -1, "PRS": 0, "LUC": 0},
		state.Draft().AttributeScores.Values())
	s.False(state.CanNext)

	state, err = s.svc.SetStrength(s.ctx, "s1", character.AttributeSTA)
	s.Require().NoError(err)
	s.False(state.CanNext)

	_, err = s.svc.SetWeakness(s.ctx, "s1", character.AttributeSTR)
	s.True(dnderr.IsInvalidArgument(err))

	state, err = s.svc.SetWeakness(s.ctx, "s1", character.AttributePRS)
	s.Require().NoError(err)
	s.True(state.CanNext)

	// remounting keeps the roll
	_, err = s.svc.Get(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(14, s.roller.Used())
}

func (s *ServiceTestSuite) TestTraditionalAttributePlacement() {
	d, err := character.NewDraft(character.ModeTraditional, 1)
	s.Require().NoError(err)
	s.Require().NoError(d.SelectSpecies(character.SpeciesHuman))
	s.Require().NoError(d.SelectClass(character.ClassWarrior))
	s.seed("s1", d, wizard.StepAttributes)

	_, err = s.svc.PlaceAttribute(s.ctx, "s1", 0, character.AttributeSTR)
	s.True(dnderr.Is(err, dnderr.CodeFailedPrecondition))

	state, err := s.svc.SelectArrayType(s.ctx, "s1", character.ArrayHeroic)
	s.Require().NoError(err)
	s.Equal([]int{2, 2, 1, 0, 0, 0, -1}, state.Draft().AttributeBase)
	s.Equal(0, state.Draft().AttributeScores.Assigned())

	for i, a := range character.Attributes {
		state, err = s.svc.PlaceAttribute(s.ctx, "s1", i, a)
		s.Require().NoError(err)
	}
	s.True(state.Draft().AttributeScores.AllAssigned())

	// dropping onto a filled slot is ignored
	state, err = s.svc.PlaceAttribute(s.ctx, "s1", 0, character.AttributeLUC)
	s.Require().NoError(err)
	s.Equal(-1, *state.Draft().AttributeScores[character.AttributeLUC])

	// humans cannot raise their highest score
	_, err = s.svc.SetStrength(s.ctx, "s1", character.AttributeSTR)
	s.True(dnderr.IsInvalidArgument(err))

	state, err = s.svc.SetStrength(s.ctx, "s1", character.AttributeLUC)
	s.Require().NoError(err)
	s.True(state.CanNext)

	state, err = s.svc.ResetAttributes(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(0, state.Draft().AttributeScores.Assigned())
	s.Empty(state.Draft().SpeciesStrength)
	s.False(state.CanNext)
}

func (s *ServiceTestSuite) TestSkillsStep() {
	d, err := character.NewDraft(character.ModeTraditional, 1)
	s.Require().NoError(err)
	s.Require().NoError(d.SelectSpecies(character.SpeciesElf))
	s.Require().NoError(d.SelectClass(character.ClassRanger))
	s.seed("s1", d, wizard.StepSkills)

	skills := &rulebook.SkillsCatalog{
		ClassSkills:   []rulebook.Skill{{Name: "Tracking"}},
		SpeciesSkills: []rulebook.Skill{{Name: "Archery"}, {Name: "Lore"}},
		BonusSkills:   []rulebook.Skill{{Name: "Climbing"}, {Name: "Lore"}},
	}
	s.client.EXPECT().GetSkills(gomock.Any(), character.ClassRanger, character.SpeciesElf).Return(skills, nil)

	_, err = s.svc.Get(s.ctx, "s1")
	s.Require().NoError(err)

	state, err := s.svc.WaitCatalogs(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(skills, state.Skills)

	_, err = s.svc.SelectSpeciesSkill(s.ctx, "s1", "Climbing")
	s.True(dnderr.IsInvalidArgument(err))

	state, err = s.svc.SelectSpeciesSkill(s.ctx, "s1", "Lore")
	s.Require().NoError(err)
	s.False(state.CanNext)

	_, err = s.svc.SetBonusSkills(s.ctx, "s1", []string{"Lore"})
	s.True(dnderr.IsInvalidArgument(err))

	state, err = s.svc.SetBonusSkills(s.ctx, "s1", []string{"Archery"})
	s.Require().NoError(err)
	s.True(state.CanNext)

	// clearing the species skill makes it a bonus candidate again
	state, err = s.svc.ClearSpeciesSkill(s.ctx, "s1")
	s.Require().NoError(err)
	s.False(state.CanNext)
	s.Contains(state.Draft().BonusSkillCandidates(rulebook.SkillNames(skills.CombinedBonusPool())), "Lore")
}

func (s *ServiceTestSuite) TestFeaturesUseCatalogAllowance() {
	d := s.assignedDraft(character.ModeTraditional, 2, character.SpeciesHuman, []int{2, 2, 1, 0, 0, 0, -1})
	s.Require().NoError(d.SelectClass(character.ClassMage))
	s.seed("s1", d, wizard.StepFeatures)

	feats := &rulebook.FeaturesCatalog{
		NumAllowedTier1Features: 1,
		Features: rulebook.FeatureTiers{
			Tier1: []rulebook.Feature{
				{Description: "Arcane Focus", Attributes: []rulebook.FeatureAttribute{{Type: rulebook.FeatureAttrPlus1, Modifier: "INT"}}},
				{Description: "Quick Hands", Attributes: []rulebook.FeatureAttribute{{Type: rulebook.FeatureInit, Modifier: "1"}}},
			},
		},
	}
	s.client.EXPECT().GetFeatures(gomock.Any(), character.ClassMage, 2).Return(feats, nil)

	_, err := s.svc.Get(s.ctx, "s1")
	s.Require().NoError(err)
	state, err := s.svc.WaitCatalogs(s.ctx, "s1")
	s.Require().NoError(err)
	s.False(state.CanNext)

	_, err = s.svc.SetFeatures(s.ctx, "s1", 1, []string{"Fireball"})
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.svc.SetFeatures(s.ctx, "s1", 1, []string{"Arcane Focus", "Quick Hands"})
	s.True(dnderr.IsInvalidArgument(err))

	state, err = s.svc.SetFeatures(s.ctx, "s1", 1, []string{"Arcane Focus"})
	s.Require().NoError(err)
	s.True(state.CanNext)
	s.Equal([]string{"Arcane Focus"}, state.IncompleteFeatures)
}

func (s *ServiceTestSuite) TestFeaturesCountsDistinctPicks() {
	d := s.assignedDraft(character.ModeTraditional, 3, character.SpeciesHuman, []int{2, 2, 1, 0, 0, 0, -1})
	s.Require().NoError(d.SelectClass(character.ClassRogue))
	s.seed("s1", d, wizard.StepFeatures)

	feats := &rulebook.FeaturesCatalog{
		NumAllowedTier1Features: 2,
		Features: rulebook.FeatureTiers{
			Tier1: []rulebook.Feature{{Description: "Backstab"}, {Description: "Quick Hands"}, {Description: "Lockpicking"}},
		},
	}
	s.client.EXPECT().GetFeatures(gomock.Any(), character.ClassRogue, 3).Return(feats, nil)

	_, err := s.svc.Get(s.ctx, "s1")
	s.Require().NoError(err)
	_, err = s.svc.WaitCatalogs(s.ctx, "s1")
	s.Require().NoError(err)

	state, err := s.svc.SetFeatures(s.ctx, "s1", 1, []string{"Backstab", "Backstab", " ", "Quick Hands"})
	s.Require().NoError(err)
	s.Equal([]string{"Backstab", "Quick Hands"}, state.Draft().Tier1Features)
	s.True(state.CanNext)

	_, err = s.svc.SetFeatures(s.ctx, "s1", 1, []string{"Backstab", "Quick Hands", "Lockpicking"})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestQuickGearOnClassStep() {
	d, err := character.NewDraft(character.ModeTraditional, 1)
	s.Require().NoError(err)
	s.Require().NoError(d.SelectSpecies(character.SpeciesHuman))
	s.seed("s1", d, wizard.StepClass)

	state, err := s.svc.SelectClass(s.ctx, "s1", character.ClassSkald)
	s.Require().NoError(err)
	s.Require().NotNil(state.Draft().UseQuickGear)
	s.False(*state.Draft().UseQuickGear)

	state, err = s.svc.SetQuickGear(s.ctx, "s1", true)
	s.Require().NoError(err)
	s.True(*state.Draft().UseQuickGear)
}

func (s *ServiceTestSuite) TestCreateStepNameThenSheet() {
	d := s.commonerReadyToSubmit(character.SheetPDF)
	d.CharName = ""
	d.SheetType = ""
	s.seed("s1", d, wizard.StepCreate)

	_, err := s.svc.SetSheetType(s.ctx, "s1", character.SheetPDF)
	s.True(dnderr.Is(err, dnderr.CodeFailedPrecondition))

	state, err := s.svc.SetName(s.ctx, "s1", "  Brom  ")
	s.Require().NoError(err)
	s.Equal("Brom", state.Draft().CharName)
	s.False(state.CanSubmit)

	state, err = s.svc.SetSheetType(s.ctx, "s1", character.SheetXLSX)
	s.Require().NoError(err)
	s.True(state.CanSubmit)
	s.True(state.IsTerminal)
}

func (s *ServiceTestSuite) TestSubmitPDF() {
	s.seed("s1", s.commonerReadyToSubmit(character.SheetPDF), wizard.StepCreate)

	s.client.EXPECT().CreatePDF(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *request.CreateCharacterRequest) (*chargenClient.PDFResult, error) {
			s.Equal("Brom Ironfoot", req.CharacterName)
			s.Equal("Farmer", req.Profession)
			s.Equal("LUC", req.SpeciesWeakness)
			return &chargenClient.PDFResult{FileName: "Brom_Ironfoot.pdf", Data: []byte("%PDF")}, nil
		})

	result, err := s.svc.Submit(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(character.SheetPDF, result.SheetType)
	s.Equal("Brom_Ironfoot.pdf", result.FileName)
	s.Equal([]byte("%PDF"), result.Data)
	s.Empty(result.Path)

	_, err = s.svc.Get(s.ctx, "s1")
	s.True(dnderr.Is(err, dnderr.CodeFailedPrecondition), "completed wizards are closed")
}

func (s *ServiceTestSuite) TestSubmitXLSX() {
	s.seed("s1", s.commonerReadyToSubmit(character.SheetXLSX), wizard.StepCreate)

	result, err := s.svc.Submit(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal("Brom_Ironfoot.xlsx", result.FileName)
	s.NotEmpty(result.Data)
}

func (s *ServiceTestSuite) TestSubmitGoogleSheetsAuthFailureKeepsDraft() {
	s.seed("s1", s.commonerReadyToSubmit(character.SheetGoogleSheets), wizard.StepCreate)

	s.tokens.EXPECT().Token(gomock.Any(), "user-1", auth.SpreadsheetsScope).
		Return(nil, errors.New("consent denied"))

	_, err := s.svc.Submit(s.ctx, "s1")
	s.True(dnderr.Is(err, dnderr.CodeUnauthenticated))

	state, err := s.svc.Get(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal("Brom Ironfoot", state.Draft().CharName)
	s.True(state.CanSubmit)
}

func (s *ServiceTestSuite) TestSubmitGoogleSheets() {
	s.seed("s1", s.commonerReadyToSubmit(character.SheetGoogleSheets), wizard.StepCreate)

	token := &auth.Token{Type: "Bearer", AccessToken: "abc"}
	s.tokens.EXPECT().Token(gomock.Any(), "user-1", auth.SpreadsheetsScope).Return(token, nil)
	s.client.EXPECT().CreateGoogleSheet(gomock.Any(), token, gomock.Any()).Return(nil)

	result, err := s.svc.Submit(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(character.SheetGoogleSheets, result.SheetType)
	s.Empty(result.Data)
}

func (s *ServiceTestSuite) TestSubmitServerFailureKeepsDraft() {
	s.seed("s1", s.commonerReadyToSubmit(character.SheetPDF), wizard.StepCreate)

	s.client.EXPECT().CreatePDF(gomock.Any(), gomock.Any()).
		Return(nil, dnderr.New(dnderr.CodeSubmissionFailed, "boom"))

	_, err := s.svc.Submit(s.ctx, "s1")
	s.True(dnderr.Is(err, dnderr.CodeSubmissionFailed))

	state, err := s.svc.Get(s.ctx, "s1")
	s.Require().NoError(err)
	s.False(state.Session.Completed)
}

func (s *ServiceTestSuite) TestSubmitBeforeCreateStepFails() {
	s.seed("s1", s.commonerReadyToSubmit(character.SheetPDF), wizard.StepAttributes)

	_, err := s.svc.Submit(s.ctx, "s1")
	s.True(dnderr.Is(err, dnderr.CodeFailedPrecondition))
}
