package sheets

import (
	"log"
	"os"
	"path/filepath"

	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// PDFSaver keeps a copy of each generated PDF on disk
type PDFSaver struct {
	dir string
}

// NewPDFSaver writes under dir; an empty dir disables saving
func NewPDFSaver(dir string) *PDFSaver {
	return &PDFSaver{dir: dir}
}

// Save writes data under the sanitised file name and returns the path.
// With no directory configured it returns "" and writes nothing.
func (s *PDFSaver) Save(fileName string, data []byte) (string, error) {
	if s == nil || s.dir == "" {
		return "", nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to create PDF directory")
	}

	path := filepath.Join(s.dir, SanitizeFileName(fileName, ".pdf"))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to save PDF")
	}

	log.Printf("Saved character PDF to %s", path)
	return path, nil
}
