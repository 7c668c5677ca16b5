package chargen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wcg-tools/osf-chargen/internal/auth"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/request"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

const (
	pathProfessions  = "api/v1/professions/generate"
	pathSkills       = "api/v1/skills"
	pathFeatures     = "api/v1/features"
	pathGoogleSheets = "api/v1/createcharacter/googlesheets"
	pathPDF          = "api/v1/createcharacter/pdf"

	defaultPDFName = "character.pdf"
)

var tracer = otel.Tracer("github.com/wcg-tools/osf-chargen/internal/clients/chargen")

type client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Config configures the backend client
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a backend client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}
	if cfg.BaseURL == "" {
		return nil, dnderr.InvalidArgument("base URL is required")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid base URL")
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		baseURL:    base,
		httpClient: httpClient,
	}, nil
}

func (c *client) GenerateProfessions(ctx context.Context) (*rulebook.ProfessionsCatalog, error) {
	var out rulebook.ProfessionsCatalog
	if err := c.getJSON(ctx, pathProfessions, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetSkills(ctx context.Context, class character.CharClass, species character.Species) (*rulebook.SkillsCatalog, error) {
	query := url.Values{}
	query.Set("charClass", class.Upper())
	query.Set("species", species.Upper())

	var out rulebook.SkillsCatalog
	if err := c.getJSON(ctx, pathSkills, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetFeatures(ctx context.Context, class character.CharClass, level int) (*rulebook.FeaturesCatalog, error) {
	query := url.Values{}
	query.Set("charClass", class.Upper())
	query.Set("level", strconv.Itoa(level))

	var out rulebook.FeaturesCatalog
	if err := c.getJSON(ctx, pathFeatures, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) CreateGoogleSheet(ctx context.Context, token *auth.Token, req *request.CreateCharacterRequest) error {
	if token == nil || token.AccessToken == "" {
		return dnderr.New(dnderr.CodeUnauthenticated, "a spreadsheet access token is required")
	}

	ctx, span := tracer.Start(ctx, "chargen.CreateGoogleSheet", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	resp, err := c.post(ctx, pathGoogleSheets, req, map[string]string{"Authorization": token.Header()})
	if err != nil {
		return recordErr(span, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return recordErr(span, dnderr.Newf(dnderr.CodeUnauthenticated, "spreadsheet access was refused (%d)", resp.StatusCode))
	}
	if err := checkStatus(resp, dnderr.CodeSubmissionFailed); err != nil {
		return recordErr(span, err)
	}

	log.Printf("Created Google sheet for %s", req.CharacterName)
	return nil
}

func (c *client) CreatePDF(ctx context.Context, req *request.CreateCharacterRequest) (*PDFResult, error) {
	ctx, span := tracer.Start(ctx, "chargen.CreatePDF", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	resp, err := c.post(ctx, pathPDF, req, nil)
	if err != nil {
		return nil, recordErr(span, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, dnderr.CodeSubmissionFailed); err != nil {
		return nil, recordErr(span, err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, recordErr(span, dnderr.WrapWithCode(err, dnderr.CodeSubmissionFailed, "failed to read PDF"))
	}

	name := fileName(resp.Header.Get("Content-Disposition"))
	span.SetAttributes(attribute.String("chargen.pdf.file_name", name), attribute.Int("chargen.pdf.bytes", len(data)))

	return &PDFResult{FileName: name, Data: data}, nil
}

func (c *client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	ctx, span := tracer.Start(ctx, "chargen.GET "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	endpoint := c.resolve(path, query)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return recordErr(span, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to build request"))
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return recordErr(span, dnderr.WrapWithCode(err, dnderr.CodeCatalogUnavailable, "catalog request failed").
			WithMeta("path", path))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if err := checkStatus(resp, dnderr.CodeCatalogUnavailable); err != nil {
		return recordErr(span, err)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return recordErr(span, dnderr.WrapWithCode(err, dnderr.CodeCatalogUnavailable, "failed to decode catalog").
			WithMeta("path", path))
	}
	return nil
}

func (c *client) post(ctx context.Context, path string, body any, headers map[string]string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to encode request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path, nil), bytes.NewReader(payload))
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeSubmissionFailed, "character creation request failed").
			WithMeta("path", path)
	}
	return resp, nil
}

func (c *client) resolve(path string, query url.Values) string {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func checkStatus(resp *http.Response, code dnderr.Code) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return dnderr.Newf(code, "backend returned %d", resp.StatusCode).
		WithMeta("status", resp.StatusCode).
		WithMeta("body", strings.TrimSpace(string(body)))
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// fileName pulls the filename out of a Content-Disposition header
func fileName(disposition string) string {
	if disposition == "" {
		return defaultPDFName
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		log.Printf("Ignoring unparseable Content-Disposition %q: %v", disposition, err)
		return defaultPDFName
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return defaultPDFName
}

