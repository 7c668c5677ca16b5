package chargen

//go:generate mockgen -destination=mock/mock_service.go -package=mockchargensvc -source=service.go

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/wcg-tools/osf-chargen/internal/auth"
	"github.com/wcg-tools/osf-chargen/internal/catalog"
	chargenClient "github.com/wcg-tools/osf-chargen/internal/clients/chargen"
	"github.com/wcg-tools/osf-chargen/internal/dice"
	"github.com/wcg-tools/osf-chargen/internal/domain/attributes"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
	"github.com/wcg-tools/osf-chargen/internal/repositories/wizard_sessions"
	"github.com/wcg-tools/osf-chargen/internal/sheets"
	"github.com/wcg-tools/osf-chargen/internal/uuid"
)

// DefaultCatalogTimeout bounds each catalog fetch
const DefaultCatalogTimeout = 10 * time.Second

// Service drives one character creation wizard per user
type Service interface {
	// Start discards the owner's previous wizard and begins a new one
	Start(ctx context.Context, ownerID string, mode character.Mode, level int) (*WizardState, error)

	// Get returns the current state, re-evaluating the active step
	Get(ctx context.Context, sessionID string) (*WizardState, error)

	// Previous and Next move the step cursor
	Previous(ctx context.Context, sessionID string) (*WizardState, error)
	Next(ctx context.Context, sessionID string) (*WizardState, error)

	SelectSpecies(ctx context.Context, sessionID string, species character.Species) (*WizardState, error)
	SelectProfession(ctx context.Context, sessionID string, profession string) (*WizardState, error)
	SelectClass(ctx context.Context, sessionID string, class character.CharClass) (*WizardState, error)

	SelectSpeciesSkill(ctx context.Context, sessionID string, skill string) (*WizardState, error)
	ClearSpeciesSkill(ctx context.Context, sessionID string) (*WizardState, error)
	SetBonusSkills(ctx context.Context, sessionID string, skills []string) (*WizardState, error)

	SelectArrayType(ctx context.Context, sessionID string, arrayType character.ArrayType) (*WizardState, error)
	// PlaceAttribute moves a pool value into an empty slot. Invalid drops change nothing.
	PlaceAttribute(ctx context.Context, sessionID string, poolIndex int, attr character.Attribute) (*WizardState, error)
	ResetAttributes(ctx context.Context, sessionID string) (*WizardState, error)
	SetStrength(ctx context.Context, sessionID string, attr character.Attribute) (*WizardState, error)
	SetWeakness(ctx context.Context, sessionID string, attr character.Attribute) (*WizardState, error)

	SetFeatures(ctx context.Context, sessionID string, tier int, features []string) (*WizardState, error)
	SetQuickGear(ctx context.Context, sessionID string, use bool) (*WizardState, error)
	SetName(ctx context.Context, sessionID string, name string) (*WizardState, error)
	SetSheetType(ctx context.Context, sessionID string, sheetType character.SheetType) (*WizardState, error)

	// Catalog access for the session's current choices
	Professions(ctx context.Context, sessionID string) (catalog.State[*rulebook.ProfessionsCatalog], error)
	Skills(ctx context.Context, sessionID string) (catalog.State[*rulebook.SkillsCatalog], error)
	Features(ctx context.Context, sessionID string) (catalog.State[*rulebook.FeaturesCatalog], error)

	// RetryCatalog refetches the active step's catalog after a failure
	RetryCatalog(ctx context.Context, sessionID string) (*WizardState, error)

	// WaitCatalogs blocks until in-flight catalog loads settle, then returns the refreshed state
	WaitCatalogs(ctx context.Context, sessionID string) (*WizardState, error)

	// Submit sends the finished draft to the chosen sheet sink. The draft is kept on failure.
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

// WizardState is what a host needs to render the active step
type WizardState struct {
	Session     *wizard.Session
	Steps       []wizard.StepID
	Current     wizard.StepID
	CanPrevious bool
	CanNext     bool
	IsTerminal  bool
	CanSubmit   bool

	// Catalog is the status of the active step's catalog; idle for steps without one
	Catalog    catalog.Status
	CatalogErr error

	Professions *rulebook.ProfessionsCatalog
	Skills      *rulebook.SkillsCatalog
	Features    *rulebook.FeaturesCatalog

	// IncompleteFeatures are selected features the player must finish by hand
	IncompleteFeatures []string
}

// Draft is a shortcut to the session's draft
func (w *WizardState) Draft() *character.Draft {
	return w.Session.Draft
}

// SubmitResult describes the delivered sheet
type SubmitResult struct {
	SheetType character.SheetType
	FileName  string
	// Data is empty for Google Sheets, which are written server side
	Data []byte
	// Path is set when a local copy was written
	Path               string
	IncompleteFeatures []string
}

type service struct {
	repository   wizard_sessions.Repository
	client       chargenClient.Client
	tokens       auth.TokenSource
	sampler      *attributes.Sampler
	uuidGen      uuid.Generator
	pdfSaver     *sheets.PDFSaver
	xlsxExporter *sheets.XLSXExporter
	timeout      time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionCatalogs
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository     wizard_sessions.Repository // Required
	Client         chargenClient.Client       // Required
	Tokens         auth.TokenSource           // Optional, Google Sheets submission fails without it
	Roller         dice.Roller                // Optional, defaults to random
	UUIDGenerator  uuid.Generator             // Optional
	PDFSaver       *sheets.PDFSaver           // Optional
	XLSXExporter   *sheets.XLSXExporter       // Optional
	CatalogTimeout time.Duration
}

// NewService creates a new chargen service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Client == nil {
		panic("chargen client is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	xlsxExporter := cfg.XLSXExporter
	if xlsxExporter == nil {
		xlsxExporter = sheets.NewXLSXExporter("")
	}
	timeout := cfg.CatalogTimeout
	if timeout == 0 {
		timeout = DefaultCatalogTimeout
	}

	return &service{
		repository:   cfg.Repository,
		client:       cfg.Client,
		tokens:       cfg.Tokens,
		sampler:      attributes.NewSampler(roller),
		uuidGen:      uuidGen,
		pdfSaver:     cfg.PDFSaver,
		xlsxExporter: xlsxExporter,
		timeout:      timeout,
		sessions:     make(map[string]*sessionCatalogs),
	}
}

func (s *service) Start(ctx context.Context, ownerID string, mode character.Mode, level int) (*WizardState, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	draft, err := character.NewDraft(mode, level)
	if err != nil {
		return nil, err
	}

	previous, err := s.repository.GetByOwner(ctx, ownerID)
	switch {
	case err == nil:
		if err := s.repository.Delete(ctx, previous.ID); err != nil && !dnderr.IsNotFound(err) {
			return nil, dnderr.Wrap(err, "failed to discard previous wizard").
				WithMeta("session_id", previous.ID)
		}
		s.forget(previous.ID)
		log.Printf("Discarded wizard %s for owner %s", previous.ID, ownerID)
	case !dnderr.IsNotFound(err):
		return nil, dnderr.Wrap(err, "failed to look up previous wizard").
			WithMeta("owner_id", ownerID)
	}

	id := s.uuidGen.New()
	draft.ID = id
	draft.OwnerID = ownerID

	session := &wizard.Session{
		ID:      id,
		OwnerID: ownerID,
		Draft:   draft,
	}

	cats := s.catalogsFor(id)
	cats.mu.Lock()
	defer cats.mu.Unlock()

	ctrl, err := wizard.NewController(session.Steps(), s.evaluator(session, cats))
	if err != nil {
		return nil, err
	}
	if err := s.mount(ctx, session, cats, ctrl.CurrentStep()); err != nil {
		return nil, err
	}
	ctrl.Refresh()
	session.Save(ctrl)

	if err := s.repository.Create(ctx, session); err != nil {
		return nil, dnderr.Wrap(err, "failed to save wizard").WithMeta("session_id", id)
	}

	log.Printf("Started %s wizard %s at level %d for owner %s", mode, id, level, ownerID)
	return s.state(session, ctrl, cats), nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*WizardState, error) {
	return s.apply(ctx, sessionID, "", func(*wizard.Session, *sessionCatalogs) error {
		return nil
	})
}

func (s *service) Previous(ctx context.Context, sessionID string) (*WizardState, error) {
	return s.navigate(ctx, sessionID, (*wizard.Controller).Previous)
}

func (s *service) Next(ctx context.Context, sessionID string) (*WizardState, error) {
	return s.navigate(ctx, sessionID, (*wizard.Controller).Next)
}

func (s *service) navigate(ctx context.Context, sessionID string, move func(*wizard.Controller) bool) (*WizardState, error) {
	session, cats, unlock, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	ctrl, err := session.Controller(s.evaluator(session, cats))
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to restore wizard").WithMeta("session_id", sessionID)
	}

	from := ctrl.CurrentStep()
	if !move(ctrl) {
		return s.state(session, ctrl, cats), nil
	}

	cats.unmount(from)
	if err := s.mount(ctx, session, cats, ctrl.CurrentStep()); err != nil {
		return nil, err
	}
	ctrl.Refresh()

	return s.save(ctx, session, ctrl, cats)
}

// apply runs one step action. An empty step accepts any active step.
func (s *service) apply(ctx context.Context, sessionID string, step wizard.StepID, fn func(*wizard.Session, *sessionCatalogs) error) (*WizardState, error) {
	session, cats, unlock, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	ctrl, err := session.Controller(s.evaluator(session, cats))
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to restore wizard").WithMeta("session_id", sessionID)
	}

	if step != "" && ctrl.CurrentStep() != step {
		return nil, dnderr.FailedPreconditionf("the %s step is not active", step.Title()).
			WithMeta("session_id", sessionID).
			WithMeta("current_step", string(ctrl.CurrentStep()))
	}

	// a restarted process has no loaders, so remount quietly
	if err := s.mount(ctx, session, cats, ctrl.CurrentStep()); err != nil {
		return nil, err
	}

	if err := fn(session, cats); err != nil {
		return nil, err
	}

	ctrl.Refresh()
	return s.save(ctx, session, ctrl, cats)
}

func (s *service) load(ctx context.Context, sessionID string) (*wizard.Session, *sessionCatalogs, func(), error) {
	if sessionID == "" {
		return nil, nil, nil, dnderr.InvalidArgument("session ID is required")
	}

	cats := s.catalogsFor(sessionID)
	cats.mu.Lock()

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		cats.mu.Unlock()
		return nil, nil, nil, err
	}
	if session.Completed {
		cats.mu.Unlock()
		return nil, nil, nil, dnderr.FailedPreconditionf("this character has already been created").
			WithMeta("session_id", sessionID)
	}

	return session, cats, cats.mu.Unlock, nil
}

func (s *service) save(ctx context.Context, session *wizard.Session, ctrl *wizard.Controller, cats *sessionCatalogs) (*WizardState, error) {
	session.Save(ctrl)
	if err := s.repository.Update(ctx, session); err != nil {
		return nil, dnderr.Wrap(err, "failed to save wizard").WithMeta("session_id", session.ID)
	}
	return s.state(session, ctrl, cats), nil
}

// mount runs the side effects of showing a step: starting its catalog load
// and rolling zero mode attributes
func (s *service) mount(ctx context.Context, session *wizard.Session, cats *sessionCatalogs, step wizard.StepID) error {
	d := session.Draft
	switch step {
	case wizard.StepProfession:
		if session.Professions == nil {
			cats.ensureProfessions(ctx, s.client)
		}
	case wizard.StepSkills:
		cats.ensureSkills(ctx, s.client, d)
	case wizard.StepFeatures:
		cats.ensureFeatures(ctx, s.client, d)
	case wizard.StepAttributes:
		if d.Mode == character.ModeZero && len(d.AttributeBase) == 0 {
			if _, err := attributes.Generate(d, s.sampler); err != nil {
				return dnderr.Wrap(err, "failed to roll attributes").WithMeta("session_id", session.ID)
			}
		}
	}
	return nil
}

// evaluator answers the eligibility question for the mounted step against
// whatever catalogs have arrived so far
func (s *service) evaluator(session *wizard.Session, cats *sessionCatalogs) wizard.Evaluator {
	return func(step wizard.StepID) bool {
		cats.sync(session)
		ready, featuresCatalog := cats.readiness(session, step)
		return wizard.Eligible(step, session.Draft, wizard.Context{
			CatalogReady: ready,
			Features:     featuresCatalog,
		})
	}
}

func (s *service) state(session *wizard.Session, ctrl *wizard.Controller, cats *sessionCatalogs) *WizardState {
	cats.sync(session)
	current := ctrl.CurrentStep()

	st := &WizardState{
		Session:     session,
		Steps:       ctrl.Steps(),
		Current:     current,
		CanPrevious: ctrl.CanPrevious(),
		CanNext:     ctrl.CanNext(),
		IsTerminal:  ctrl.IsTerminal(),
		CanSubmit:   ctrl.IsTerminal() && wizard.CanSubmit(session.Draft),
		Catalog:     catalog.StatusIdle,
		Professions: session.Professions,
	}

	d := session.Draft
	if skills := cats.skills.State(skillsKey(d)); skills.Ready() {
		st.Skills = skills.Data
	}
	if feats := cats.features.State(featuresKey(d)); feats.Ready() {
		st.Features = feats.Data
		st.IncompleteFeatures = incompleteFeatures(feats.Data, d)
	}

	switch current {
	case wizard.StepProfession:
		if session.Professions != nil {
			st.Catalog = catalog.StatusReady
		} else {
			ps := cats.professions.State(professionsKey)
			st.Catalog, st.CatalogErr = ps.Status, ps.Err
		}
	case wizard.StepSkills:
		ss := cats.skills.State(skillsKey(d))
		st.Catalog, st.CatalogErr = ss.Status, ss.Err
	case wizard.StepFeatures:
		fs := cats.features.State(featuresKey(d))
		st.Catalog, st.CatalogErr = fs.Status, fs.Err
	}

	return st
}

func (s *service) catalogsFor(sessionID string) *sessionCatalogs {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, ok := s.sessions[sessionID]
	if !ok {
		cats = newSessionCatalogs(s.timeout)
		s.sessions[sessionID] = cats
	}
	return cats
}

func (s *service) forget(sessionID string) {
	s.mu.Lock()
	cats, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if ok {
		cats.unmountAll()
	}
}

func (s *service) RetryCatalog(ctx context.Context, sessionID string) (*WizardState, error) {
	return s.apply(ctx, sessionID, "", func(session *wizard.Session, cats *sessionCatalogs) error {
		d := session.Draft
		switch session.CurrentStep() {
		case wizard.StepProfession:
			if session.Professions == nil {
				cats.loadProfessions(ctx, s.client)
			}
		case wizard.StepSkills:
			cats.loadSkills(ctx, s.client, d)
		case wizard.StepFeatures:
			cats.loadFeatures(ctx, s.client, d)
		default:
			return dnderr.FailedPreconditionf("the %s step has no catalog", session.CurrentStep().Title())
		}
		return nil
	})
}

func (s *service) WaitCatalogs(ctx context.Context, sessionID string) (*WizardState, error) {
	cats := s.catalogsFor(sessionID)
	if err := cats.wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeCatalogUnavailable, "timed out waiting for catalogs")
		}
		return nil, err
	}
	return s.Get(ctx, sessionID)
}
