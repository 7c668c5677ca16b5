package chargen

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcg-tools/osf-chargen/internal/catalog"
	"github.com/wcg-tools/osf-chargen/internal/domain/attributes"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
	chargenService "github.com/wcg-tools/osf-chargen/internal/services/chargen"
)

func newState(t *testing.T, mode character.Mode, level int, step wizard.StepID) *chargenService.WizardState {
	t.Helper()
	d, err := character.NewDraft(mode, level)
	require.NoError(t, err)
	d.ID = "s1"
	d.OwnerID = "u1"
	session := &wizard.Session{ID: "s1", OwnerID: "u1", Draft: d}
	return &chargenService.WizardState{
		Session: session,
		Steps:   session.Steps(),
		Current: step,
		Catalog: catalog.StatusIdle,
	}
}

// selects returns every select menu in the view keyed by action
func selects(t *testing.T, view *View) map[string]discordgo.SelectMenu {
	t.Helper()
	out := make(map[string]discordgo.SelectMenu)
	for _, row := range view.Components {
		for _, c := range row.(discordgo.ActionsRow).Components {
			if menu, ok := c.(discordgo.SelectMenu); ok {
				id, ok := ParseCustomID(menu.CustomID)
				require.True(t, ok)
				out[id.Action] = menu
			}
		}
	}
	return out
}

func buttons(t *testing.T, view *View) map[string]discordgo.Button {
	t.Helper()
	out := make(map[string]discordgo.Button)
	for _, row := range view.Components {
		for _, c := range row.(discordgo.ActionsRow).Components {
			if b, ok := c.(discordgo.Button); ok {
				id, ok := ParseCustomID(b.CustomID)
				require.True(t, ok)
				out[id.Action] = b
			}
		}
	}
	return out
}

func optionValues(menu discordgo.SelectMenu) []string {
	out := make([]string, 0, len(menu.Options))
	for _, o := range menu.Options {
		out = append(out, o.Value)
	}
	return out
}

func TestRenderSpeciesStep(t *testing.T) {
	state := newState(t, character.ModeZero, 0, wizard.StepSpecies)
	require.NoError(t, state.Draft().SelectSpecies(character.SpeciesElf))
	state.CanNext = true

	view := Render(state, nil)

	assert.Equal(t, "Create Character: Species", view.Embed.Title)
	menu := selects(t, view)[ActionSpecies]
	assert.Equal(t, []string{"dwarf", "elf", "halfling", "human"}, optionValues(menu))
	assert.True(t, menu.Options[1].Default)
	assert.Contains(t, menu.Options[1].Description, "COR, PER")

	nav := buttons(t, view)
	assert.True(t, nav[ActionPrevious].Disabled)
	assert.False(t, nav[ActionNext].Disabled)
	assert.NotContains(t, nav, ActionSubmit)
}

func TestRenderProgress(t *testing.T) {
	steps := wizard.Steps(character.ModeZero, 0)
	got := progressValue(steps, wizard.StepAttributes)
	assert.Equal(t, "✅ 1. Species\n✅ 2. Profession\n▶️ 3. Attributes\n⏳ 4. Create Character", got)
}

func TestRenderCatalogStatus(t *testing.T) {
	state := newState(t, character.ModeZero, 0, wizard.StepProfession)

	state.Catalog = catalog.StatusLoading
	view := Render(state, nil)
	assert.Contains(t, view.Embed.Description, "Loading")
	assert.Contains(t, buttons(t, view), ActionRefresh)
	assert.Empty(t, selects(t, view))

	state.Catalog = catalog.StatusError
	view = Render(state, nil)
	assert.Contains(t, buttons(t, view), ActionRetry)

	state.Catalog = catalog.StatusReady
	state.Professions = &rulebook.ProfessionsCatalog{Professions: []rulebook.Profession{
		{Name: "Farmer", RangeStart: 1, RangeEnd: 50},
		{Name: "Miner", RangeStart: 51, RangeEnd: 100},
	}}
	view = Render(state, nil)
	menu := selects(t, view)[ActionProfession]
	assert.Equal(t, []string{"Farmer", "Miner"}, optionValues(menu))
	assert.Equal(t, "d100 51-100", menu.Options[1].Description)
}

func TestRenderClassQuickGearToggle(t *testing.T) {
	state := newState(t, character.ModeTraditional, 1, wizard.StepClass)
	assert.NotContains(t, buttons(t, Render(state, nil)), ActionQuickGear)

	require.NoError(t, state.Draft().SelectClass(character.ClassRogue))
	b := buttons(t, Render(state, nil))[ActionQuickGear]
	assert.Equal(t, "Quick Gear: Off", b.Label)
	id, _ := ParseCustomID(b.CustomID)
	assert.Equal(t, "on", id.Arg)
}

func TestRenderSkillsHidesSpeciesSkillFromBonus(t *testing.T) {
	state := newState(t, character.ModeTraditional, 1, wizard.StepSkills)
	d := state.Draft()
	require.NoError(t, d.SelectSpecies(character.SpeciesDwarf))
	require.NoError(t, d.SelectClass(character.ClassWarrior))
	require.NoError(t, d.SelectSpeciesSkill("Mining"))
	state.Skills = &rulebook.SkillsCatalog{
		SpeciesSkills: []rulebook.Skill{{Name: "Mining"}, {Name: "Masonry"}},
		BonusSkills:   []rulebook.Skill{{Name: "Climbing"}},
	}

	menus := selects(t, Render(state, nil))
	assert.Equal(t, []string{"Mining", "Masonry"}, optionValues(menus[ActionSpeciesSkill]))
	assert.Equal(t, 0, *menus[ActionSpeciesSkill].MinValues)
	assert.Equal(t, []string{"Masonry", "Climbing"}, optionValues(menus[ActionBonusSkills]))
	assert.Equal(t, 1, menus[ActionBonusSkills].MaxValues)
}

func TestRenderHumanSkills(t *testing.T) {
	state := newState(t, character.ModeTraditional, 1, wizard.StepSkills)
	d := state.Draft()
	require.NoError(t, d.SelectSpecies(character.SpeciesHuman))
	require.NoError(t, d.SelectClass(character.ClassWarrior))
	state.Skills = &rulebook.SkillsCatalog{
		SpeciesSkills: []rulebook.Skill{{Name: "Haggling"}},
		BonusSkills:   []rulebook.Skill{{Name: "Climbing"}, {Name: "Swimming"}},
	}

	menus := selects(t, Render(state, nil))
	assert.NotContains(t, menus, ActionSpeciesSkill)
	assert.Equal(t, 2, menus[ActionBonusSkills].MaxValues)
	assert.Len(t, menus[ActionBonusSkills].Options, 3)
}

func TestRenderAttributePlacement(t *testing.T) {
	state := newState(t, character.ModeTraditional, 1, wizard.StepAttributes)
	d := state.Draft()
	require.NoError(t, d.SelectSpecies(character.SpeciesHuman))

	menus := selects(t, Render(state, nil))
	assert.Contains(t, menus, ActionArray)
	assert.NotContains(t, menus, ActionPick)

	_, err := attributes.SelectArrayType(d, character.ArrayChallenging)
	require.NoError(t, err)

	menus = selects(t, Render(state, nil))
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6"}, optionValues(menus[ActionPick]))
	assert.Equal(t, "+2", menus[ActionPick].Options[0].Label)
	assert.Contains(t, buttons(t, Render(state, nil)), ActionResetAttrs)

	pending := 0
	menus = selects(t, Render(state, &pending))
	place := menus[ActionPlace]
	assert.Len(t, place.Options, character.NumAttributes)
	id, _ := ParseCustomID(place.CustomID)
	assert.Equal(t, "0", id.Arg)
	assert.NotContains(t, menus, ActionPick)

	// a stale pick falls back to the pool
	e, err := attributes.Load(d)
	require.NoError(t, err)
	require.True(t, e.Place(0, character.AttributeSTR))
	e.Store(d)
	menus = selects(t, Render(state, &pending))
	assert.NotContains(t, menus, ActionPlace)
	assert.Len(t, menus[ActionPick].Options, 6)
}

func TestRenderStrengthAndWeakness(t *testing.T) {
	state := newState(t, character.ModeTraditional, 1, wizard.StepAttributes)
	d := state.Draft()
	require.NoError(t, d.SelectSpecies(character.SpeciesHalfling))
	e, err := attributes.SelectArrayType(d, character.ArrayHeroic)
	require.NoError(t, err)
	e.AutoAssign()
	e.Store(d)

	menus := selects(t, Render(state, nil))
	assert.NotContains(t, menus, ActionPick)
	assert.Equal(t, []string{"LUC", "COR"}, optionValues(menus[ActionStrength]))
	assert.Equal(t, []string{"PER", "STR"}, optionValues(menus[ActionWeakness]))
}

func TestRenderFeatures(t *testing.T) {
	state := newState(t, character.ModeTraditional, 4, wizard.StepFeatures)
	d := state.Draft()
	require.NoError(t, d.SelectSpecies(character.SpeciesHuman))
	require.NoError(t, d.SelectClass(character.ClassMage))
	require.NoError(t, d.SetFeatures(1, []string{"Second"}))

	tier1 := make([]rulebook.Feature, 30)
	for i := range tier1 {
		tier1[i] = rulebook.Feature{Description: "Feature"}
	}
	tier1[1].Description = "Second"
	state.Features = &rulebook.FeaturesCatalog{
		NumAllowedTier1Features: 3,
		NumAllowedTier2Features: 1,
		Features: rulebook.FeatureTiers{
			Tier1: tier1,
			Tier2: []rulebook.Feature{{Description: "Big One"}},
		},
	}

	view := Render(state, nil)
	menus := selects(t, view)
	assert.Len(t, menus[ActionTier1].Options, maxOptions)
	assert.Equal(t, 3, menus[ActionTier1].MaxValues)
	assert.True(t, menus[ActionTier1].Options[1].Default)
	assert.Equal(t, 1, menus[ActionTier2].MaxValues)
	assert.Contains(t, view.Embed.Description, "Tier I: 1 of 3")
}

func TestRenderCreateStep(t *testing.T) {
	state := newState(t, character.ModeZero, 0, wizard.StepCreate)
	state.IsTerminal = true

	view := Render(state, nil)
	assert.NotContains(t, selects(t, view), ActionSheet)
	nav := buttons(t, view)
	assert.Equal(t, "Set Name", nav[ActionName].Label)
	assert.True(t, nav[ActionSubmit].Disabled)
	assert.NotContains(t, nav, ActionNext)

	require.NoError(t, state.Draft().SetName("Brom"))
	state.CanSubmit = true
	view = Render(state, nil)
	assert.Equal(t, []string{"pdf", "googlesheets", "xlsx"}, optionValues(selects(t, view)[ActionSheet]))
	assert.False(t, buttons(t, view)[ActionSubmit].Disabled)
	assert.Contains(t, view.Embed.Fields[1].Value, "Brom")
}

func TestRenderSubmitted(t *testing.T) {
	state := newState(t, character.ModeZero, 0, wizard.StepCreate)
	require.NoError(t, state.Draft().SetName("Brom"))

	view := RenderSubmitted(state, &chargenService.SubmitResult{
		SheetType:          character.SheetPDF,
		FileName:           "Brom.pdf",
		IncompleteFeatures: []string{"Arcane Focus"},
	})
	assert.Equal(t, "Character Created", view.Embed.Title)
	assert.Contains(t, view.Embed.Description, "PDF is attached")
	assert.Empty(t, view.Components)
	assert.Contains(t, view.Embed.Fields[1].Value, "Arcane Focus")
}

func TestNameModal(t *testing.T) {
	data := NameModal("s1", "Brom")
	assert.Equal(t, "chargen:namemodal:s1", data.CustomID)
	input := data.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.TextInput)
	assert.Equal(t, "Brom", input.Value)
	assert.Equal(t, nameInputID, input.CustomID)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
