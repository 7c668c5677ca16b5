package chargen

//go:generate mockgen -destination=mock/mock_client.go -package=mockchargen -source=interface.go

import (
	"context"

	"github.com/wcg-tools/osf-chargen/internal/auth"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/request"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
)

// PDFResult is a generated character sheet document
type PDFResult struct {
	FileName string
	Data     []byte
}

// Client talks to the character generator backend
type Client interface {
	GenerateProfessions(ctx context.Context) (*rulebook.ProfessionsCatalog, error)
	GetSkills(ctx context.Context, class character.CharClass, species character.Species) (*rulebook.SkillsCatalog, error)
	GetFeatures(ctx context.Context, class character.CharClass, level int) (*rulebook.FeaturesCatalog, error)
	CreateGoogleSheet(ctx context.Context, token *auth.Token, req *request.CreateCharacterRequest) error
	CreatePDF(ctx context.Context, req *request.CreateCharacterRequest) (*PDFResult, error)
}
