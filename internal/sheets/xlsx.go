package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/request"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

const (
	sheetCharacter = "Character"
	sheetFeatures  = "Features"
)

// XLSXResult is a generated workbook
type XLSXResult struct {
	FileName string
	Path     string
	Data     []byte
}

// XLSXExporter renders a creation request into a local workbook, for when
// the backend sheet services are not wanted
type XLSXExporter struct {
	dir string
}

// NewXLSXExporter writes copies under dir; an empty dir keeps workbooks in memory only
func NewXLSXExporter(dir string) *XLSXExporter {
	return &XLSXExporter{dir: dir}
}

// Export builds the workbook. incomplete lists features the player must apply by hand.
func (e *XLSXExporter) Export(req *request.CreateCharacterRequest, incomplete []string) (*XLSXResult, error) {
	if req == nil {
		return nil, dnderr.InvalidArgument("request is required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCharacter); err != nil {
		return nil, wrapXLSX(err)
	}
	if err := writeCharacterSheet(f, req); err != nil {
		return nil, wrapXLSX(err)
	}
	if req.Features != nil {
		if err := writeFeaturesSheet(f, req.Features, incomplete); err != nil {
			return nil, wrapXLSX(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, wrapXLSX(err)
	}

	result := &XLSXResult{
		FileName: SanitizeFileName(req.CharacterName, ".xlsx"),
		Data:     buf.Bytes(),
	}

	if e != nil && e.dir != "" {
		if err := os.MkdirAll(e.dir, 0o755); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to create workbook directory")
		}
		result.Path = filepath.Join(e.dir, result.FileName)
		if err := os.WriteFile(result.Path, result.Data, 0o644); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to save workbook")
		}
	}

	return result, nil
}

func writeCharacterSheet(f *excelize.File, req *request.CreateCharacterRequest) error {
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]any{
		{"Name", req.CharacterName},
		{"Species", titleCase(req.Species)},
		{"Level", req.Level},
	}
	if req.IsCommoner() {
		rows = append(rows, []any{"Profession", req.Profession})
	} else {
		rows = append(rows, []any{"Class", titleCase(req.CharacterClass)})
	}

	row := 1
	for _, r := range rows {
		if err := f.SetSheetRow(sheetCharacter, fmt.Sprintf("A%d", row), &r); err != nil {
			return err
		}
		row++
	}

	row++
	header := []any{"Attribute", "Base", "Score"}
	if err := f.SetSheetRow(sheetCharacter, fmt.Sprintf("A%d", row), &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetCharacter, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), labelStyle); err != nil {
		return err
	}
	row++

	for _, a := range character.Attributes {
		key := string(a)
		values := []any{fmt.Sprintf("%s (%s)", a.Name(), key), req.Attributes[key], req.AttributeWithModifiers(key)}
		if err := f.SetSheetRow(sheetCharacter, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}

	row++
	extra := [][]any{{"Species strength", req.SpeciesStrength}}
	if req.SpeciesWeakness != "" {
		extra = append(extra, []any{"Species weakness", req.SpeciesWeakness})
	}
	if req.SpeciesSkill != "" {
		extra = append(extra, []any{"Species skill", req.SpeciesSkill})
	}
	if len(req.BonusSkills) > 0 {
		extra = append(extra, []any{"Bonus skills", strings.Join(req.BonusSkills, ", ")})
	}
	if req.UseQuickGear != nil {
		extra = append(extra, []any{"Quick gear", *req.UseQuickGear})
	}
	for _, r := range extra {
		if err := f.SetSheetRow(sheetCharacter, fmt.Sprintf("A%d", row), &r); err != nil {
			return err
		}
		row++
	}

	if err := f.SetCellStyle(sheetCharacter, "A1", fmt.Sprintf("A%d", row), labelStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheetCharacter, "A", "A", 20)
}

func writeFeaturesSheet(f *excelize.File, features *request.Features, incomplete []string) error {
	if _, err := f.NewSheet(sheetFeatures); err != nil {
		return err
	}

	header := []any{"Tier", "Feature", "Manual follow-up"}
	if err := f.SetSheetRow(sheetFeatures, "A1", &header); err != nil {
		return err
	}

	flagged := make(map[string]bool, len(incomplete))
	for _, name := range incomplete {
		flagged[name] = true
	}

	row := 2
	for tier, names := range [][]string{features.Tier1, features.Tier2} {
		for _, name := range names {
			followUp := ""
			if flagged[name] {
				followUp = "yes"
			}
			values := []any{strings.Repeat("I", tier+1), name, followUp}
			if err := f.SetSheetRow(sheetFeatures, fmt.Sprintf("A%d", row), &values); err != nil {
				return err
			}
			row++
		}
	}
	return f.SetColWidth(sheetFeatures, "B", "B", 40)
}

var titleCaser = cases.Title(language.English)

func titleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

func wrapXLSX(err error) error {
	return dnderr.WrapWithCode(err, dnderr.CodeSubmissionFailed, "failed to build workbook")
}
