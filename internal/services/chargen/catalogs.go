package chargen

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wcg-tools/osf-chargen/internal/catalog"
	chargenClient "github.com/wcg-tools/osf-chargen/internal/clients/chargen"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/features"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
)

const professionsKey = "generate"

// sessionCatalogs holds the catalog loaders of one wizard. mu also
// serialises actions on the session.
type sessionCatalogs struct {
	mu          sync.Mutex
	professions *catalog.Loader[*rulebook.ProfessionsCatalog]
	skills      *catalog.Loader[*rulebook.SkillsCatalog]
	features    *catalog.Loader[*rulebook.FeaturesCatalog]
}

func newSessionCatalogs(timeout time.Duration) *sessionCatalogs {
	return &sessionCatalogs{
		professions: catalog.NewLoader[*rulebook.ProfessionsCatalog]("professions", timeout),
		skills:      catalog.NewLoader[*rulebook.SkillsCatalog]("skills", timeout),
		features:    catalog.NewLoader[*rulebook.FeaturesCatalog]("features", timeout),
	}
}

func skillsKey(d *character.Draft) string {
	return fmt.Sprintf("%s/%s", d.CharClass, d.Species)
}

func featuresKey(d *character.Draft) string {
	return fmt.Sprintf("%s/%d", d.CharClass, d.Level)
}

func (c *sessionCatalogs) loadProfessions(ctx context.Context, client chargenClient.Client) {
	c.professions.Load(ctx, professionsKey, client.GenerateProfessions)
}

func (c *sessionCatalogs) loadSkills(ctx context.Context, client chargenClient.Client, d *character.Draft) {
	class, species := d.CharClass, d.Species
	c.skills.Load(ctx, skillsKey(d), func(ctx context.Context) (*rulebook.SkillsCatalog, error) {
		return client.GetSkills(ctx, class, species)
	})
}

func (c *sessionCatalogs) loadFeatures(ctx context.Context, client chargenClient.Client, d *character.Draft) {
	class, level := d.CharClass, d.Level
	c.features.Load(ctx, featuresKey(d), func(ctx context.Context) (*rulebook.FeaturesCatalog, error) {
		return client.GetFeatures(ctx, class, level)
	})
}

// The ensure variants only start a load when nothing is known for the key;
// a failed key stays failed until retried

func (c *sessionCatalogs) ensureProfessions(ctx context.Context, client chargenClient.Client) {
	if c.professions.State(professionsKey).Status == catalog.StatusIdle {
		c.loadProfessions(ctx, client)
	}
}

func (c *sessionCatalogs) ensureSkills(ctx context.Context, client chargenClient.Client, d *character.Draft) {
	if d.CharClass == "" || d.Species == "" {
		return
	}
	if c.skills.State(skillsKey(d)).Status == catalog.StatusIdle {
		c.loadSkills(ctx, client, d)
	}
}

func (c *sessionCatalogs) ensureFeatures(ctx context.Context, client chargenClient.Client, d *character.Draft) {
	if d.CharClass == "" {
		return
	}
	if c.features.State(featuresKey(d)).Status == catalog.StatusIdle {
		c.loadFeatures(ctx, client, d)
	}
}

// sync moves a generated professions list into the session so it survives
// navigation and restarts
func (c *sessionCatalogs) sync(session *wizard.Session) {
	if session.Professions != nil {
		return
	}
	if ps := c.professions.State(professionsKey); ps.Ready() {
		session.Professions = ps.Data
	}
}

func (c *sessionCatalogs) readiness(session *wizard.Session, step wizard.StepID) (bool, *rulebook.FeaturesCatalog) {
	d := session.Draft
	switch step {
	case wizard.StepProfession:
		return session.Professions != nil, nil
	case wizard.StepSkills:
		return c.skills.State(skillsKey(d)).Ready(), nil
	case wizard.StepFeatures:
		fs := c.features.State(featuresKey(d))
		return fs.Ready(), fs.Data
	}
	return true, nil
}

func (c *sessionCatalogs) unmount(step wizard.StepID) {
	switch step {
	case wizard.StepProfession:
		c.professions.Unmount()
	case wizard.StepSkills:
		c.skills.Unmount()
	case wizard.StepFeatures:
		c.features.Unmount()
	}
}

func (c *sessionCatalogs) unmountAll() {
	c.professions.Unmount()
	c.skills.Unmount()
	c.features.Unmount()
}

// wait blocks until every in-flight load settles
func (c *sessionCatalogs) wait(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.professions.Wait(gctx) })
	g.Go(func() error { return c.skills.Wait(gctx) })
	g.Go(func() error { return c.features.Wait(gctx) })
	return g.Wait()
}

func incompleteFeatures(cat *rulebook.FeaturesCatalog, d *character.Draft) []string {
	if cat == nil {
		return nil
	}
	return slices.Concat(
		features.IncompleteSelection(cat.Features.Tier1, d.Tier1Features),
		features.IncompleteSelection(cat.Features.Tier2, d.Tier2Features),
	)
}
