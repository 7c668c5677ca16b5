package chargen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wcg-tools/osf-chargen/internal/auth"
	"github.com/wcg-tools/osf-chargen/internal/clients/chargen"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/request"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client chargen.Client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.ctx = context.Background()

	client, err := chargen.New(&chargen.Config{
		BaseURL:    s.server.URL + "/chargen",
		HTTPClient: s.server.Client(),
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestNew_Validation() {
	_, err := chargen.New(nil)
	s.Error(err)

	_, err = chargen.New(&chargen.Config{})
	s.Error(err)
}

func (s *ClientTestSuite) TestGenerateProfessions() {
	s.mux.HandleFunc("GET /chargen/api/v1/professions/generate", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"professions":[{"name":"Baker","rangeStart":1,"rangeEnd":3},{"name":"Miner","rangeStart":40,"rangeEnd":44},{"name":"Scribe","rangeStart":80,"rangeEnd":81}]}`))
	})

	catalog, err := s.client.GenerateProfessions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Baker", "Miner", "Scribe"}, catalog.Names())
	s.Equal(40, catalog.Professions[1].RangeStart)
}

func (s *ClientTestSuite) TestGetSkills_Query() {
	s.mux.HandleFunc("GET /chargen/api/v1/skills", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("RANGER", r.URL.Query().Get("charClass"))
		s.Equal("ELF", r.URL.Query().Get("species"))
		_, _ = w.Write([]byte(`{"classSkills":[{"name":"Survival","attributes":["PER"]}],"speciesSkills":[{"name":"Tracking","attributes":["PER","INT"]}],"bonusSkills":[{"name":"Climb","attributes":["STR"]}]}`))
	})

	skills, err := s.client.GetSkills(s.ctx, character.ClassRanger, character.SpeciesElf)
	s.Require().NoError(err)
	s.Equal("Tracking", skills.SpeciesSkills[0].Name)
	s.Equal([]string{"PER", "INT"}, skills.SpeciesSkills[0].Attributes)
}

func (s *ClientTestSuite) TestGetFeatures() {
	s.mux.HandleFunc("GET /chargen/api/v1/features", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("MAGE", r.URL.Query().Get("charClass"))
		s.Equal("4", r.URL.Query().Get("level"))
		_, _ = w.Write([]byte(`{"numAllowedTier1Features":3,"numAllowedTier2Features":1,"features":{"tier1":[{"description":"Arcane Focus","attributes":[{"type":"SKILL","modifier":"Any"}]}],"tier2":[]}}`))
	})

	features, err := s.client.GetFeatures(s.ctx, character.ClassMage, 4)
	s.Require().NoError(err)
	s.Equal(3, features.NumAllowedTier1Features)
	s.Equal("SKILL", string(features.Features.Tier1[0].Attributes[0].Type))
}

func (s *ClientTestSuite) TestCatalogErrors() {
	s.mux.HandleFunc("GET /chargen/api/v1/features", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	s.mux.HandleFunc("GET /chargen/api/v1/skills", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := s.client.GetFeatures(s.ctx, character.ClassMage, 2)
	s.True(dnderr.Is(err, dnderr.CodeCatalogUnavailable))
	s.Equal(http.StatusInternalServerError, dnderr.GetMeta(err)["status"])

	_, err = s.client.GetSkills(s.ctx, character.ClassMage, character.SpeciesHuman)
	s.True(dnderr.Is(err, dnderr.CodeCatalogUnavailable))
}

func (s *ClientTestSuite) TestCreateGoogleSheet() {
	var got request.CreateCharacterRequest
	s.mux.HandleFunc("POST /chargen/api/v1/createcharacter/googlesheets", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer tok", r.Header.Get("Authorization"))
		s.NoError(json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	req := &request.CreateCharacterRequest{CharacterName: "Brom", Species: "DWARF", Level: 0, Profession: "Miner"}
	err := s.client.CreateGoogleSheet(s.ctx, &auth.Token{AccessToken: "tok"}, req)
	s.Require().NoError(err)
	s.Equal("Miner", got.Profession)
}

func (s *ClientTestSuite) TestCreateGoogleSheet_AuthErrors() {
	s.mux.HandleFunc("POST /chargen/api/v1/createcharacter/googlesheets", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	req := &request.CreateCharacterRequest{CharacterName: "Brom"}

	err := s.client.CreateGoogleSheet(s.ctx, nil, req)
	s.True(dnderr.Is(err, dnderr.CodeUnauthenticated))

	err = s.client.CreateGoogleSheet(s.ctx, &auth.Token{AccessToken: "expired"}, req)
	s.True(dnderr.Is(err, dnderr.CodeUnauthenticated))
}

func (s *ClientTestSuite) TestCreatePDF() {
	s.mux.HandleFunc("POST /chargen/api/v1/createcharacter/pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="Brom.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.7"))
	})

	result, err := s.client.CreatePDF(s.ctx, &request.CreateCharacterRequest{CharacterName: "Brom"})
	s.Require().NoError(err)
	s.Equal("Brom.pdf", result.FileName)
	s.Equal([]byte("%PDF-1.7"), result.Data)
}

func (s *ClientTestSuite) TestCreatePDF_Failure() {
	s.mux.HandleFunc("POST /chargen/api/v1/createcharacter/pdf", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := s.client.CreatePDF(s.ctx, &request.CreateCharacterRequest{})
	s.True(dnderr.Is(err, dnderr.CodeSubmissionFailed))
}

func (s *ClientTestSuite) TestCreatePDF_DefaultFileName() {
	s.mux.HandleFunc("POST /chargen/api/v1/createcharacter/pdf", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF"))
	})

	result, err := s.client.CreatePDF(s.ctx, &request.CreateCharacterRequest{})
	s.Require().NoError(err)
	s.Equal("character.pdf", result.FileName)
}
