package chargen

import (
	"context"
	"errors"
	"strconv"

	"github.com/wcg-tools/osf-chargen/internal/catalog"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
	chargenService "github.com/wcg-tools/osf-chargen/internal/services/chargen"
)

// Outcome is the state to render after an interaction
type Outcome struct {
	State *chargenService.WizardState
	// Pending is set after the first half of an attribute placement
	Pending *int
}

// Dispatch applies one component interaction to the wizard
func (h *Handler) Dispatch(ctx context.Context, userID string, id CustomID, values []string) (*Outcome, error) {
	current, err := h.authorize(ctx, userID, id.SessionID)
	if err != nil {
		return nil, err
	}

	svc, sid := h.service, id.SessionID
	var state *chargenService.WizardState

	switch id.Action {
	case ActionPrevious:
		state, err = svc.Previous(ctx, sid)
	case ActionNext:
		state, err = svc.Next(ctx, sid)
	case ActionRefresh:
		state = current
	case ActionRetry:
		state, err = svc.RetryCatalog(ctx, sid)
	case ActionSpecies:
		state, err = svc.SelectSpecies(ctx, sid, character.Species(first(values)))
	case ActionProfession:
		state, err = svc.SelectProfession(ctx, sid, first(values))
	case ActionClass:
		state, err = svc.SelectClass(ctx, sid, character.CharClass(first(values)))
	case ActionQuickGear:
		state, err = svc.SetQuickGear(ctx, sid, id.Arg == "on")
	case ActionSpeciesSkill:
		if len(values) == 0 {
			state, err = svc.ClearSpeciesSkill(ctx, sid)
		} else {
			state, err = svc.SelectSpeciesSkill(ctx, sid, values[0])
		}
	case ActionBonusSkills:
		state, err = svc.SetBonusSkills(ctx, sid, values)
	case ActionArray:
		state, err = svc.SelectArrayType(ctx, sid, character.ArrayType(first(values)))
	case ActionPick:
		idx, convErr := strconv.Atoi(first(values))
		if convErr != nil {
			return nil, dnderr.InvalidArgumentf("bad attribute pick %q", first(values))
		}
		return &Outcome{State: current, Pending: &idx}, nil
	case ActionPlace:
		idx, convErr := strconv.Atoi(id.Arg)
		if convErr != nil {
			return nil, dnderr.InvalidArgumentf("bad attribute pick %q", id.Arg)
		}
		state, err = svc.PlaceAttribute(ctx, sid, idx, character.Attribute(first(values)))
	case ActionResetAttrs:
		state, err = svc.ResetAttributes(ctx, sid)
	case ActionStrength:
		state, err = svc.SetStrength(ctx, sid, character.Attribute(first(values)))
	case ActionWeakness:
		state, err = svc.SetWeakness(ctx, sid, character.Attribute(first(values)))
	case ActionTier1, ActionTier2:
		tier := 1
		if id.Action == ActionTier2 {
			tier = 2
		}
		keys, keyErr := featureKeys(current.Features, tier, values)
		if keyErr != nil {
			return nil, keyErr
		}
		state, err = svc.SetFeatures(ctx, sid, tier, keys)
	case ActionSheet:
		state, err = svc.SetSheetType(ctx, sid, character.SheetType(first(values)))
	default:
		return nil, dnderr.InvalidArgumentf("unknown action %q", id.Action)
	}
	if err != nil {
		return nil, err
	}

	return &Outcome{State: h.settle(ctx, state)}, nil
}

// authorize loads the wizard and checks it belongs to the user
func (h *Handler) authorize(ctx context.Context, userID, sessionID string) (*chargenService.WizardState, error) {
	state, err := h.service.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Session.OwnerID != userID {
		return nil, dnderr.FailedPreconditionf("this character belongs to someone else").
			WithMeta("session_id", sessionID).
			WithMeta("user_id", userID)
	}
	return state, nil
}

// settle gives a freshly started catalog load a short window to land so the
// user sees options instead of a loading notice
func (h *Handler) settle(ctx context.Context, state *chargenService.WizardState) *chargenService.WizardState {
	if state.Catalog != catalog.StatusLoading || h.catalogWait <= 0 {
		return state
	}

	waitCtx, cancel := context.WithTimeout(ctx, h.catalogWait)
	defer cancel()

	settled, err := h.service.WaitCatalogs(waitCtx, state.Session.ID)
	if err != nil {
		return state
	}
	return settled
}

func featureKeys(cat *rulebook.FeaturesCatalog, tier int, values []string) ([]string, error) {
	if cat == nil {
		return nil, dnderr.FailedPreconditionf("features are still loading")
	}
	list := cat.Features.Tier1
	if tier == 2 {
		list = cat.Features.Tier2
	}

	keys := make([]string, 0, len(values))
	for _, v := range values {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 || idx >= len(list) {
			return nil, dnderr.InvalidArgumentf("unknown feature option %q", v)
		}
		keys = append(keys, list[idx].Description)
	}
	return keys, nil
}

// UserMessage turns a service error into something safe to show the user
func UserMessage(err error) string {
	switch dnderr.GetCode(err) {
	case dnderr.CodeNotFound:
		return "This character wizard has expired. Run /chargen to start again."
	case dnderr.CodeUnauthenticated:
		return "Google Sheets login failed. Your choices are saved; try again or pick another sheet type."
	case dnderr.CodeCatalogUnavailable:
		return "The character server is unavailable right now. Try again in a moment."
	case dnderr.CodeSubmissionFailed:
		return "The character server could not create your sheet. Your choices are saved; try again."
	case dnderr.CodeInvalidArgument, dnderr.CodeFailedPrecondition, dnderr.CodeValidation:
		var appErr *dnderr.Error
		if errors.As(err, &appErr) {
			return appErr.Message
		}
	}
	return "Something went wrong. Please try again."
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
