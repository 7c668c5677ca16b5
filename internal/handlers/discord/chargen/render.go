package chargen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/wcg-tools/osf-chargen/internal/catalog"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
	chargenService "github.com/wcg-tools/osf-chargen/internal/services/chargen"
)

// Discord component limits
const (
	maxOptions    = 25
	maxLabel      = 100
	embedColor    = 0x5865F2
	completeColor = 0x57F287
)

var stepHelp = map[wizard.StepID]string{
	wizard.StepSpecies:    "Choose your species. It decides which attributes you can raise and lower.",
	wizard.StepProfession: "Pick one of the professions rolled for you.",
	wizard.StepClass:      "Choose your class.",
	wizard.StepSkills:     "Pick your skills.",
	wizard.StepAttributes: "Assign your attribute scores, then choose your species strength and weakness.",
	wizard.StepFeatures:   "Pick your class features.",
	wizard.StepCreate:     "Name your character and choose how to receive the sheet.",
}

var sheetLabels = map[character.SheetType]string{
	character.SheetPDF:          "PDF",
	character.SheetGoogleSheets: "Google Sheets",
	character.SheetXLSX:         "Excel workbook",
}

// View is one rendered wizard message
type View struct {
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
}

// Render draws the active step. pending is a pool index picked in the first
// half of an attribute placement, or nil.
func Render(state *chargenService.WizardState, pending *int) *View {
	d := state.Draft()

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Create Character: %s", state.Current.Title()),
		Description: describeStep(state),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Progress", Value: progressValue(state.Steps, state.Current), Inline: true},
			{Name: "Character", Value: summaryValue(d), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s mode, level %d", modeName(d.Mode), d.Level),
		},
	}
	if len(state.IncompleteFeatures) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Finish by hand",
			Value: "These features need a choice on the sheet:\n" + bulletList(state.IncompleteFeatures),
		})
	}

	var rows []discordgo.MessageComponent
	switch state.Current {
	case wizard.StepSpecies:
		rows = speciesRows(state)
	case wizard.StepProfession:
		rows = professionRows(state)
	case wizard.StepClass:
		rows = classRows(state)
	case wizard.StepSkills:
		rows = skillRows(state)
	case wizard.StepAttributes:
		rows = attributeRows(state, pending)
	case wizard.StepFeatures:
		rows = featureRows(state)
	case wizard.StepCreate:
		rows = createRows(state)
	}
	rows = append(rows, navRow(state))

	return &View{Embed: embed, Components: rows}
}

// RenderSubmitted replaces the wizard once the sheet is delivered
func RenderSubmitted(state *chargenService.WizardState, result *chargenService.SubmitResult) *View {
	d := state.Draft()
	desc := fmt.Sprintf("**%s** is ready.", d.CharName)
	switch result.SheetType {
	case character.SheetGoogleSheets:
		desc += " The sheet was created in your Google Drive."
	default:
		desc += fmt.Sprintf(" Your %s is attached below.", sheetLabels[result.SheetType])
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Character Created",
		Description: desc,
		Color:       completeColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Character", Value: summaryValue(d)},
		},
	}
	if len(result.IncompleteFeatures) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Finish by hand",
			Value: bulletList(result.IncompleteFeatures),
		})
	}
	return &View{Embed: embed, Components: []discordgo.MessageComponent{}}
}

// NameModal asks for the character name
func NameModal(sessionID, current string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: NewCustomID(ActionNameModal, sessionID).String(),
		Title:    "Name your character",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  nameInputID,
						Label:     "Character name",
						Style:     discordgo.TextInputShort,
						Value:     current,
						Required:  true,
						MaxLength: 64,
					},
				},
			},
		},
	}
}

const nameInputID = "character_name"

func describeStep(state *chargenService.WizardState) string {
	lines := []string{stepHelp[state.Current]}

	switch state.Catalog {
	case catalog.StatusLoading:
		lines = append(lines, "", "Loading options...")
	case catalog.StatusError:
		lines = append(lines, "", "Could not load the options. Press **Retry** to try again.")
	}

	d := state.Draft()
	switch state.Current {
	case wizard.StepSkills:
		if state.Skills != nil && len(state.Skills.ClassSkills) > 0 {
			lines = append(lines, "", "**Class skills:** "+strings.Join(rulebook.SkillNames(state.Skills.ClassSkills), ", "))
		}
		if d.Species.IsHuman() {
			lines = append(lines, "Humans pick two bonus skills.")
		} else if d.Species != "" {
			lines = append(lines, fmt.Sprintf("%s pick one species skill and one bonus skill.", d.Species.Plural()))
		}
	case wizard.StepAttributes:
		if d.Mode == character.ModeTraditional && !d.ArrayType.Valid() {
			lines = append(lines, "", "Start by choosing an attribute array.")
		}
	case wizard.StepFeatures:
		allowance := wizard.FeatureAllowance(d, state.Features)
		lines = append(lines, fmt.Sprintf("Tier I: %d of %d", len(d.Tier1Features), allowance.Tier1))
		if allowance.Tier2 > 0 {
			lines = append(lines, fmt.Sprintf("Tier II: %d of %d", len(d.Tier2Features), allowance.Tier2))
		}
	}

	return strings.Join(lines, "\n")
}

func progressValue(steps []wizard.StepID, current wizard.StepID) string {
	lines := make([]string, 0, len(steps))
	reached := false
	for i, step := range steps {
		icon := "✅"
		switch {
		case step == current:
			icon = "▶️"
			reached = true
		case reached:
			icon = "⏳"
		}
		lines = append(lines, fmt.Sprintf("%s %d. %s", icon, i+1, step.Title()))
	}
	return strings.Join(lines, "\n")
}

func summaryValue(d *character.Draft) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("**%s:** %s", label, value))
		}
	}

	add("Name", d.CharName)
	if d.Species != "" {
		add("Species", d.Species.Name())
	}
	add("Profession", d.Profession)
	if d.CharClass != "" {
		add("Class", d.CharClass.Name())
	}
	add("Species skill", d.SpeciesSkill)
	add("Bonus skills", strings.Join(d.BonusSkills, ", "))
	if d.AttributeScores != nil && d.AttributeScores.Assigned() > 0 {
		lines = append(lines, attributeBlock(d))
	}
	add("Tier I", strings.Join(d.Tier1Features, ", "))
	add("Tier II", strings.Join(d.Tier2Features, ", "))
	add("Sheet", sheetLabels[d.SheetType])

	if len(lines) == 0 {
		return "Nothing chosen yet"
	}
	return strings.Join(lines, "\n")
}

// attributeBlock renders scores with species modifiers marked
func attributeBlock(d *character.Draft) string {
	var b strings.Builder
	b.WriteString("```\n")
	for _, a := range character.Attributes {
		score := "  -"
		if v := d.AttributeScores[a]; v != nil {
			score = fmt.Sprintf("%+3d", *v)
		}
		mark := ""
		switch a {
		case d.SpeciesStrength:
			mark = " +1"
		case d.SpeciesWeakness:
			mark = " -1"
		}
		fmt.Fprintf(&b, "%s %s%s\n", a, score, mark)
	}
	b.WriteString("```")
	return b.String()
}

func speciesRows(state *chargenService.WizardState) []discordgo.MessageComponent {
	d := state.Draft()
	options := make([]discordgo.SelectMenuOption, 0, len(character.AllSpecies))
	for _, s := range character.AllSpecies {
		options = append(options, discordgo.SelectMenuOption{
			Label:       s.Name(),
			Value:       string(s),
			Description: truncate(speciesBlurb(s), maxLabel),
			Default:     s == d.Species,
		})
	}
	return []discordgo.MessageComponent{
		selectRow(NewCustomID(ActionSpecies, d.ID), "Choose a species", options, 1, 1),
	}
}

func speciesBlurb(s character.Species) string {
	if s.IsHuman() {
		return "Strength: any attribute but your highest"
	}
	info := s.Info()
	return fmt.Sprintf("Strengths: %s. Weaknesses: %s", joinAttributes(info.Strengths), joinAttributes(info.Weaknesses))
}

func professionRows(state *chargenService.WizardState) []discordgo.MessageComponent {
	if state.Professions == nil {
		return nil
	}
	d := state.Draft()
	options := make([]discordgo.SelectMenuOption, 0, len(state.Professions.Professions))
	for _, p := range state.Professions.Professions {
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(p.Name, maxLabel),
			Value:       p.Name,
			Description: fmt.Sprintf("d100 %d-%d", p.RangeStart, p.RangeEnd),
			Default:     p.Name == d.Profession,
		})
	}
	return []discordgo.MessageComponent{
		selectRow(NewCustomID(ActionProfession, d.ID), "Choose a profession", options, 1, 1),
	}
}

func classRows(state *chargenService.WizardState) []discordgo.MessageComponent {
	d := state.Draft()
	options := make([]discordgo.SelectMenuOption, 0, len(character.AllClasses))
	for _, c := range character.AllClasses {
		options = append(options, discordgo.SelectMenuOption{
			Label:   c.Name(),
			Value:   string(c),
			Default: c == d.CharClass,
		})
	}
	rows := []discordgo.MessageComponent{
		selectRow(NewCustomID(ActionClass, d.ID), "Choose a class", options, 1, 1),
	}

	if d.CharClass != "" {
		on := d.UseQuickGear != nil && *d.UseQuickGear
		label, style, next := "Quick Gear: Off", discordgo.SecondaryButton, "on"
		if on {
			label, style, next = "Quick Gear: On", discordgo.SuccessButton, "off"
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    label,
					Style:    style,
					CustomID: NewCustomID(ActionQuickGear, d.ID, next).String(),
				},
			},
		})
	}
	return rows
}

func skillRows(state *chargenService.WizardState) []discordgo.MessageComponent {
	if state.Skills == nil {
		return nil
	}
	d := state.Draft()
	var rows []discordgo.MessageComponent

	if !d.Species.IsHuman() {
		options := namedOptions(rulebook.SkillNames(state.Skills.SpeciesSkills), []string{d.SpeciesSkill})
		if len(options) > 0 {
			rows = append(rows, selectRow(NewCustomID(ActionSpeciesSkill, d.ID), "Choose a species skill", options, 0, 1))
		}
	}

	candidates := d.BonusSkillCandidates(rulebook.SkillNames(state.Skills.CombinedBonusPool()))
	if options := namedOptions(candidates, d.BonusSkills); len(options) > 0 {
		placeholder := "Choose a bonus skill"
		if d.MaxBonusSkills() > 1 {
			placeholder = fmt.Sprintf("Choose %d bonus skills", d.MaxBonusSkills())
		}
		rows = append(rows, selectRow(NewCustomID(ActionBonusSkills, d.ID), placeholder, options, 0, d.MaxBonusSkills()))
	}
	return rows
}

func attributeRows(state *chargenService.WizardState, pending *int) []discordgo.MessageComponent {
	d := state.Draft()
	var rows []discordgo.MessageComponent

	if d.Mode == character.ModeTraditional {
		options := []discordgo.SelectMenuOption{
			{Label: "Challenging", Value: string(character.ArrayChallenging), Description: joinValues(character.ArrayChallenging.Values()), Default: d.ArrayType == character.ArrayChallenging},
			{Label: "Heroic", Value: string(character.ArrayHeroic), Description: joinValues(character.ArrayHeroic.Values()), Default: d.ArrayType == character.ArrayHeroic},
		}
		rows = append(rows, selectRow(NewCustomID(ActionArray, d.ID), "Choose an attribute array", options, 1, 1))
	}

	if len(d.AttributeBase) == 0 {
		return rows
	}

	if !d.AttributeScores.AllAssigned() {
		if pending != nil {
			if row, ok := placeRow(d, *pending); ok {
				rows = append(rows, row)
				return rows
			}
		}
		if row, ok := pickRow(d); ok {
			rows = append(rows, row)
		}
		return rows
	}

	if candidates := d.StrengthCandidates(); len(candidates) > 0 {
		rows = append(rows, selectRow(NewCustomID(ActionStrength, d.ID), "Species strength (+1)",
			attributeOptions(d, candidates, d.SpeciesStrength), 1, 1))
	}
	if candidates := d.WeaknessCandidates(); len(candidates) > 0 {
		rows = append(rows, selectRow(NewCustomID(ActionWeakness, d.ID), "Species weakness (-1)",
			attributeOptions(d, candidates, d.SpeciesWeakness), 1, 1))
	}
	return rows
}

func pickRow(d *character.Draft) (discordgo.MessageComponent, bool) {
	var options []discordgo.SelectMenuOption
	for i, v := range d.AttributeValues {
		if v == nil {
			continue
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf("%+d", *v),
			Value: strconv.Itoa(i),
		})
	}
	if len(options) == 0 {
		return nil, false
	}
	return selectRow(NewCustomID(ActionPick, d.ID), "Pick a value to place", options, 1, 1), true
}

func placeRow(d *character.Draft, poolIndex int) (discordgo.MessageComponent, bool) {
	if poolIndex < 0 || poolIndex >= len(d.AttributeValues) || d.AttributeValues[poolIndex] == nil {
		return nil, false
	}

	var options []discordgo.SelectMenuOption
	for _, a := range character.Attributes {
		if d.AttributeScores[a] != nil {
			continue
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: a.Name(),
			Value: string(a),
		})
	}
	if len(options) == 0 {
		return nil, false
	}
	placeholder := fmt.Sprintf("Place %+d on...", *d.AttributeValues[poolIndex])
	return selectRow(NewCustomID(ActionPlace, d.ID, strconv.Itoa(poolIndex)), placeholder, options, 1, 1), true
}

func attributeOptions(d *character.Draft, attrs []character.Attribute, selected character.Attribute) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(attrs))
	for _, a := range attrs {
		opt := discordgo.SelectMenuOption{
			Label:   a.Name(),
			Value:   string(a),
			Default: a == selected,
		}
		if v := d.AttributeScores[a]; v != nil {
			opt.Description = fmt.Sprintf("Currently %+d", *v)
		}
		options = append(options, opt)
	}
	return options
}

func featureRows(state *chargenService.WizardState) []discordgo.MessageComponent {
	if state.Features == nil {
		return nil
	}
	d := state.Draft()
	allowance := wizard.FeatureAllowance(d, state.Features)

	var rows []discordgo.MessageComponent
	tiers := []struct {
		tier     int
		action   string
		allowed  int
		list     []rulebook.Feature
		selected []string
	}{
		{1, ActionTier1, allowance.Tier1, state.Features.Features.Tier1, d.Tier1Features},
		{2, ActionTier2, allowance.Tier2, state.Features.Features.Tier2, d.Tier2Features},
	}
	for _, t := range tiers {
		if t.allowed == 0 || len(t.list) == 0 {
			continue
		}
		options := featureOptions(t.list, t.selected)
		placeholder := fmt.Sprintf("Choose %d Tier %s features", t.allowed, strings.Repeat("I", t.tier))
		rows = append(rows, selectRow(NewCustomID(t.action, d.ID), placeholder, options, 0, t.allowed))
	}
	return rows
}

// featureOptions keys options by catalog position; descriptions are too long for values
func featureOptions(list []rulebook.Feature, selected []string) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, min(len(list), maxOptions))
	for i, f := range list {
		if i == maxOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:   truncate(f.Description, maxLabel),
			Value:   strconv.Itoa(i),
			Default: contains(selected, f.Description),
		})
	}
	return options
}

func createRows(state *chargenService.WizardState) []discordgo.MessageComponent {
	d := state.Draft()
	label := "Set Name"
	if d.CharName != "" {
		label = "Rename"
	}
	rows := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    label,
					Style:    discordgo.PrimaryButton,
					CustomID: NewCustomID(ActionName, d.ID).String(),
				},
			},
		},
	}

	if d.CharName == "" {
		return rows
	}

	sheets := []character.SheetType{character.SheetPDF, character.SheetGoogleSheets, character.SheetXLSX}
	options := make([]discordgo.SelectMenuOption, 0, len(sheets))
	for _, t := range sheets {
		options = append(options, discordgo.SelectMenuOption{
			Label:   sheetLabels[t],
			Value:   string(t),
			Default: t == d.SheetType,
		})
	}
	rows = append(rows, selectRow(NewCustomID(ActionSheet, d.ID), "Choose a sheet type", options, 1, 1))
	return rows
}

func navRow(state *chargenService.WizardState) discordgo.MessageComponent {
	id := state.Session.ID
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Previous",
			Style:    discordgo.SecondaryButton,
			Disabled: !state.CanPrevious,
			CustomID: NewCustomID(ActionPrevious, id).String(),
		},
	}

	switch state.Catalog {
	case catalog.StatusError:
		buttons = append(buttons, discordgo.Button{
			Label:    "Retry",
			Style:    discordgo.DangerButton,
			CustomID: NewCustomID(ActionRetry, id).String(),
		})
	case catalog.StatusLoading:
		buttons = append(buttons, discordgo.Button{
			Label:    "Refresh",
			Style:    discordgo.SecondaryButton,
			CustomID: NewCustomID(ActionRefresh, id).String(),
		})
	}

	if state.Current == wizard.StepAttributes && len(state.Draft().AttributeBase) > 0 {
		buttons = append(buttons, discordgo.Button{
			Label:    "Reset",
			Style:    discordgo.SecondaryButton,
			CustomID: NewCustomID(ActionResetAttrs, id).String(),
		})
	}

	if state.IsTerminal {
		buttons = append(buttons, discordgo.Button{
			Label:    "Create Character",
			Style:    discordgo.SuccessButton,
			Disabled: !state.CanSubmit,
			CustomID: NewCustomID(ActionSubmit, id).String(),
		})
	} else {
		buttons = append(buttons, discordgo.Button{
			Label:    "Next",
			Style:    discordgo.PrimaryButton,
			Disabled: !state.CanNext,
			CustomID: NewCustomID(ActionNext, id).String(),
		})
	}

	return discordgo.ActionsRow{Components: buttons}
}

func selectRow(id CustomID, placeholder string, options []discordgo.SelectMenuOption, minValues, maxValues int) discordgo.MessageComponent {
	if len(options) > maxOptions {
		options = options[:maxOptions]
	}
	maxValues = max(1, min(maxValues, len(options)))
	minValues = min(minValues, maxValues)

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    id.String(),
				Placeholder: placeholder,
				MinValues:   &minValues,
				MaxValues:   maxValues,
				Options:     options,
			},
		},
	}
}

func namedOptions(names, selected []string) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(names))
	for _, n := range names {
		options = append(options, discordgo.SelectMenuOption{
			Label:   truncate(n, maxLabel),
			Value:   n,
			Default: contains(selected, n),
		})
	}
	return options
}

func modeName(m character.Mode) string {
	if m == character.ModeZero {
		return "Zero-level"
	}
	return "Traditional"
}

func joinAttributes(attrs []character.Attribute) string {
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

func joinValues(values []int) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprintf("%+d", v))
	}
	return strings.Join(out, " ")
}

func bulletList(items []string) string {
	return "• " + strings.Join(items, "\n• ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func contains(list []string, s string) bool {
	return s != "" && slices.Contains(list, s)
}
