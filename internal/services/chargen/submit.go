package chargen

import (
	"context"
	"log"

	"github.com/wcg-tools/osf-chargen/internal/auth"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/request"
	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

func (s *service) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	session, cats, unlock, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	d := session.Draft
	if session.CurrentStep() != wizard.StepCreate {
		return nil, dnderr.FailedPreconditionf("finish every step before creating the character").
			WithMeta("session_id", sessionID)
	}
	if !wizard.CanSubmit(d) {
		return nil, dnderr.FailedPreconditionf("name the character and choose a sheet type").
			WithMeta("session_id", sessionID)
	}

	req, err := request.FromDraft(d).Build()
	if err != nil {
		return nil, dnderr.Wrap(err, "character is not ready").WithMeta("session_id", sessionID)
	}

	var incomplete []string
	if fs := cats.features.State(featuresKey(d)); fs.Ready() {
		incomplete = incompleteFeatures(fs.Data, d)
	}

	result, err := s.deliver(ctx, session, req, incomplete)
	if err != nil {
		log.Printf("Failed to create %s sheet for wizard %s: %v", d.SheetType, sessionID, err)
		return nil, err
	}
	result.IncompleteFeatures = incomplete

	session.Completed = true
	if err := s.repository.Update(ctx, session); err != nil {
		// the sheet exists already, so report it anyway
		log.Printf("Failed to mark wizard %s completed: %v", sessionID, err)
	}
	cats.unmountAll()

	log.Printf("Created %s sheet %q for wizard %s", d.SheetType, result.FileName, sessionID)
	return result, nil
}

func (s *service) deliver(ctx context.Context, session *wizard.Session, req *request.CreateCharacterRequest, incomplete []string) (*SubmitResult, error) {
	d := session.Draft

	switch d.SheetType {
	case character.SheetPDF:
		pdf, err := s.client.CreatePDF(ctx, req)
		if err != nil {
			return nil, err
		}
		path, err := s.pdfSaver.Save(pdf.FileName, pdf.Data)
		if err != nil {
			return nil, err
		}
		return &SubmitResult{
			SheetType: d.SheetType,
			FileName:  pdf.FileName,
			Data:      pdf.Data,
			Path:      path,
		}, nil

	case character.SheetGoogleSheets:
		if s.tokens == nil {
			return nil, dnderr.New(dnderr.CodeUnauthenticated, "spreadsheet login is not configured")
		}
		token, err := s.tokens.Token(ctx, session.OwnerID, auth.SpreadsheetsScope)
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeUnauthenticated, "spreadsheet login failed")
		}
		if err := s.client.CreateGoogleSheet(ctx, token, req); err != nil {
			return nil, err
		}
		return &SubmitResult{SheetType: d.SheetType, FileName: req.CharacterName}, nil

	case character.SheetXLSX:
		xlsx, err := s.xlsxExporter.Export(req, incomplete)
		if err != nil {
			return nil, err
		}
		return &SubmitResult{
			SheetType: d.SheetType,
			FileName:  xlsx.FileName,
			Data:      xlsx.Data,
			Path:      xlsx.Path,
		}, nil
	}

	return nil, dnderr.InvalidArgumentf("unknown sheet type %q", d.SheetType)
}
