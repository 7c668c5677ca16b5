package chargen

import (
	"context"
	"slices"

	"github.com/wcg-tools/osf-chargen/internal/catalog"
	"github.com/wcg-tools/osf-chargen/internal/domain/attributes"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

func (s *service) SelectSpecies(ctx context.Context, sessionID string, species character.Species) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepSpecies, func(session *wizard.Session, _ *sessionCatalogs) error {
		return session.Draft.SelectSpecies(species)
	})
}

func (s *service) SelectProfession(ctx context.Context, sessionID string, profession string) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepProfession, func(session *wizard.Session, _ *sessionCatalogs) error {
		if session.Professions == nil {
			return dnderr.FailedPreconditionf("professions are still loading")
		}
		if !session.Professions.Contains(profession) {
			return dnderr.InvalidArgumentf("%q is not one of the generated professions", profession)
		}
		return session.Draft.SelectProfession(profession)
	})
}

func (s *service) SelectClass(ctx context.Context, sessionID string, class character.CharClass) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepClass, func(session *wizard.Session, _ *sessionCatalogs) error {
		return session.Draft.SelectClass(class)
	})
}

func (s *service) SelectSpeciesSkill(ctx context.Context, sessionID string, skill string) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepSkills, func(session *wizard.Session, cats *sessionCatalogs) error {
		skills, err := readySkills(cats, session.Draft)
		if err != nil {
			return err
		}
		if !slices.Contains(rulebook.SkillNames(skills.SpeciesSkills), skill) {
			return dnderr.InvalidArgumentf("%q is not a %s species skill", skill, session.Draft.Species.Name())
		}
		return session.Draft.SelectSpeciesSkill(skill)
	})
}

func (s *service) ClearSpeciesSkill(ctx context.Context, sessionID string) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepSkills, func(session *wizard.Session, _ *sessionCatalogs) error {
		session.Draft.ClearSpeciesSkill()
		return nil
	})
}

func (s *service) SetBonusSkills(ctx context.Context, sessionID string, skills []string) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepSkills, func(session *wizard.Session, cats *sessionCatalogs) error {
		cat, err := readySkills(cats, session.Draft)
		if err != nil {
			return err
		}

		candidates := session.Draft.BonusSkillCandidates(rulebook.SkillNames(cat.CombinedBonusPool()))
		for _, skill := range skills {
			if skill != "" && !slices.Contains(candidates, skill) {
				return dnderr.InvalidArgumentf("%q is not an available bonus skill", skill)
			}
		}

		return session.Draft.SetBonusSkills(skills)
	})
}

func (s *service) SelectArrayType(ctx context.Context, sessionID string, arrayType character.ArrayType) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepAttributes, func(session *wizard.Session, _ *sessionCatalogs) error {
		_, err := attributes.SelectArrayType(session.Draft, arrayType)
		return err
	})
}

func (s *service) PlaceAttribute(ctx context.Context, sessionID string, poolIndex int, attr character.Attribute) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepAttributes, func(session *wizard.Session, _ *sessionCatalogs) error {
		engine, err := attributes.Load(session.Draft)
		if err != nil {
			return err
		}
		if !engine.Place(poolIndex, attr) {
			return nil
		}
		engine.Store(session.Draft)
		session.Draft.ClearSpeciesModifiers()
		return nil
	})
}

func (s *service) ResetAttributes(ctx context.Context, sessionID string) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepAttributes, func(session *wizard.Session, _ *sessionCatalogs) error {
		return attributes.Reset(session.Draft)
	})
}

func (s *service) SetStrength(ctx context.Context, sessionID string, attr character.Attribute) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepAttributes, func(session *wizard.Session, _ *sessionCatalogs) error {
		return session.Draft.SetSpeciesStrength(attr)
	})
}

func (s *service) SetWeakness(ctx context.Context, sessionID string, attr character.Attribute) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepAttributes, func(session *wizard.Session, _ *sessionCatalogs) error {
		return session.Draft.SetSpeciesWeakness(attr)
	})
}

func (s *service) SetFeatures(ctx context.Context, sessionID string, tier int, keys []string) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepFeatures, func(session *wizard.Session, cats *sessionCatalogs) error {
		d := session.Draft
		fs := cats.features.State(featuresKey(d))
		if !fs.Ready() {
			return dnderr.FailedPreconditionf("features are still loading")
		}

		list := fs.Data.Features.Tier1
		if tier == 2 {
			list = fs.Data.Features.Tier2
		}
		keys = character.NormalizeKeys(keys)
		for _, key := range keys {
			if _, ok := rulebook.Find(list, key); !ok {
				return dnderr.InvalidArgumentf("%q is not a tier %d feature", key, tier)
			}
		}

		allowance := wizard.FeatureAllowance(d, fs.Data)
		if len(keys) > allowance.Tier(tier) {
			return dnderr.InvalidArgumentf("you may pick %d tier %d features", allowance.Tier(tier), tier)
		}
		return d.SetFeatures(tier, keys)
	})
}

func (s *service) SetQuickGear(ctx context.Context, sessionID string, use bool) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepClass, func(session *wizard.Session, _ *sessionCatalogs) error {
		return session.Draft.SetUseQuickGear(use)
	})
}

func (s *service) SetName(ctx context.Context, sessionID string, name string) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepCreate, func(session *wizard.Session, _ *sessionCatalogs) error {
		return session.Draft.SetName(name)
	})
}

func (s *service) SetSheetType(ctx context.Context, sessionID string, sheetType character.SheetType) (*WizardState, error) {
	return s.apply(ctx, sessionID, wizard.StepCreate, func(session *wizard.Session, _ *sessionCatalogs) error {
		return session.Draft.SetSheetType(sheetType)
	})
}

func (s *service) Professions(ctx context.Context, sessionID string) (catalog.State[*rulebook.ProfessionsCatalog], error) {
	var out catalog.State[*rulebook.ProfessionsCatalog]
	_, err := s.apply(ctx, sessionID, "", func(session *wizard.Session, cats *sessionCatalogs) error {
		if session.Professions != nil {
			out = catalog.State[*rulebook.ProfessionsCatalog]{Status: catalog.StatusReady, Data: session.Professions}
			return nil
		}
		if !session.Draft.IsCommoner() {
			return dnderr.FailedPreconditionf("only level 0 characters have a profession")
		}
		cats.ensureProfessions(ctx, s.client)
		out = cats.professions.State(professionsKey)
		return nil
	})
	return out, err
}

func (s *service) Skills(ctx context.Context, sessionID string) (catalog.State[*rulebook.SkillsCatalog], error) {
	var out catalog.State[*rulebook.SkillsCatalog]
	_, err := s.apply(ctx, sessionID, "", func(session *wizard.Session, cats *sessionCatalogs) error {
		d := session.Draft
		if d.CharClass == "" || d.Species == "" {
			return dnderr.FailedPreconditionf("select a species and class first")
		}
		cats.ensureSkills(ctx, s.client, d)
		out = cats.skills.State(skillsKey(d))
		return nil
	})
	return out, err
}

func (s *service) Features(ctx context.Context, sessionID string) (catalog.State[*rulebook.FeaturesCatalog], error) {
	var out catalog.State[*rulebook.FeaturesCatalog]
	_, err := s.apply(ctx, sessionID, "", func(session *wizard.Session, cats *sessionCatalogs) error {
		d := session.Draft
		if d.CharClass == "" {
			return dnderr.FailedPreconditionf("select a class first")
		}
		cats.ensureFeatures(ctx, s.client, d)
		out = cats.features.State(featuresKey(d))
		return nil
	})
	return out, err
}

func readySkills(cats *sessionCatalogs, d *character.Draft) (*rulebook.SkillsCatalog, error) {
	ss := cats.skills.State(skillsKey(d))
	if !ss.Ready() {
		return nil, dnderr.FailedPreconditionf("skills are still loading")
	}
	return ss.Data, nil
}
