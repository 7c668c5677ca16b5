package sheets_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/wcg-tools/osf-chargen/internal/domain/request"
	"github.com/wcg-tools/osf-chargen/internal/sheets"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "Brom_the_Bold.pdf", sheets.SanitizeFileName("Brom the  Bold", ".pdf"))
	assert.Equal(t, "etc_passwd.pdf", sheets.SanitizeFileName("../etc/passwd", ".pdf"))
	assert.Equal(t, "character.xlsx", sheets.SanitizeFileName("  ", ".xlsx"))
	assert.Equal(t, "sheet.pdf", sheets.SanitizeFileName("sheet.pdf", ".xlsx"))
}

func TestPDFSaver(t *testing.T) {
	dir := t.TempDir()
	saver := sheets.NewPDFSaver(dir)

	path, err := saver.Save(`Brom "the" Bold.pdf`, []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Brom_the_Bold.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)

	path, err = sheets.NewPDFSaver("").Save("x.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestXLSXExporter(t *testing.T) {
	quickGear := true
	req := &request.CreateCharacterRequest{
		CharacterName:   "Aelar",
		CharacterClass:  "RANGER",
		Species:         "ELF",
		Level:           4,
		Attributes:      map[string]int{"STR": 0, "COR": 2, "STA": 1, "PER": 1, "INT": 0, "PRS": -1, "LUC": -2},
		SpeciesStrength: "COR",
		SpeciesWeakness: "STR",
		SpeciesSkill:    "Tracking",
		BonusSkills:     []string{"Climb"},
		UseQuickGear:    &quickGear,
		Features: &request.Features{
			Tier1: []string{"Archer", "Scout", "Tough"},
			Tier2: []string{"Volley"},
		},
	}

	dir := t.TempDir()
	result, err := sheets.NewXLSXExporter(dir).Export(req, []string{"Scout"})
	require.NoError(t, err)
	assert.Equal(t, "Aelar.xlsx", result.FileName)
	assert.FileExists(t, result.Path)

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	require.NoError(t, err)
	defer f.Close()

	class, err := f.GetCellValue("Character", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Ranger", class)

	// STR row: base 0, weakness applied
	label, err := f.GetCellValue("Character", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Strength (STR)", label)
	score, err := f.GetCellValue("Character", "C7")
	require.NoError(t, err)
	assert.Equal(t, "-1", score)

	followUp, err := f.GetCellValue("Features", "C3")
	require.NoError(t, err)
	assert.Equal(t, "yes", followUp)
	tier, err := f.GetCellValue("Features", "A5")
	require.NoError(t, err)
	assert.Equal(t, "II", tier)
}

func TestXLSXExporter_Commoner(t *testing.T) {
	req := &request.CreateCharacterRequest{
		CharacterName:   "Pip",
		Species:         "HALFLING",
		Profession:      "Baker",
		Attributes:      map[string]int{"STR": 0, "COR": 0, "STA": 0, "PER": 0, "INT": 0, "PRS": 0, "LUC": 0},
		SpeciesStrength: "LUC",
		SpeciesWeakness: "PER",
	}

	result, err := sheets.NewXLSXExporter("").Export(req, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Path)

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	require.NoError(t, err)
	defer f.Close()

	profession, err := f.GetCellValue("Character", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Baker", profession)
	idx, err := f.GetSheetIndex("Features")
	require.NoError(t, err)
	assert.Equal(t, -1, idx)

	_, err = sheets.NewXLSXExporter("").Export(nil, nil)
	assert.Error(t, err)
}
