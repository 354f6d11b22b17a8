package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shrawan-shakya/shakya-gallery-sub000/catalog"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

var ErrArtworkNotFound = errors.New("artwork not found")

// ContentError is a non-2xx answer from the content repository
type ContentError struct {
	Status int
	Body   string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("sanity api error: status %d: %s", e.Status, e.Body)
}

// SanityClient reads published documents through the Sanity HTTP query API
type SanityClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// SanityOptions configure a SanityClient
type SanityOptions struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	// BaseURL overrides the host derived from ProjectID (tests)
	BaseURL    string
	HTTPClient *http.Client
}

// NewSanityClient creates a new Sanity query client
func NewSanityClient(opts SanityOptions) *SanityClient {
	host := "api.sanity.io"
	if opts.UseCDN {
		host = "apicdn.sanity.io"
	}
	base := opts.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", opts.ProjectID, host)
	}
	apiVersion := strings.TrimPrefix(opts.APIVersion, "v")

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &SanityClient{
		baseURL:    fmt.Sprintf("%s/v%s/data/query/%s", strings.TrimRight(base, "/"), apiVersion, opts.Dataset),
		token:      opts.Token,
		httpClient: httpClient,
	}
}

type sanityResponse struct {
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

// Query runs a GROQ query and decodes the "result" member into out.
// Parameters are sent JSON-encoded as $name query arguments.
func (s *SanityClient) Query(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.token))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.Log.Warnf("[sanity] api returned status %d", resp.StatusCode)
		return &ContentError{Status: resp.StatusCode, Body: string(body)}
	}

	var envelope sanityResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	utils.Log.Debugf("[sanity] query served in %dms", envelope.MS)

	if len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}

var _ catalog.ContentQuerier = (*SanityClient)(nil)

const categoriesQuery = `*[_type == "category" && !(_id in path("drafts.**"))] | order(type asc, title asc) { title, type }`

const artworkBySlugQuery = `*[_type == "artwork" && slug.current == $slug && !(_id in path("drafts.**"))][0] ` + catalog.ArtworkProjection

// FetchCategories returns every published category ordered by type and title
func FetchCategories(ctx context.Context, q catalog.ContentQuerier) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := q.Query(ctx, categoriesQuery, nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// FetchArtworkBySlug returns ErrArtworkNotFound when no published artwork has the slug
func FetchArtworkBySlug(ctx context.Context, q catalog.ContentQuerier, slug string) (*models.Artwork, error) {
	var artwork *models.Artwork
	if err := q.Query(ctx, artworkBySlugQuery, map[string]any{"slug": slug}, &artwork); err != nil {
		return nil, err
	}
	if artwork == nil {
		return nil, ErrArtworkNotFound
	}
	return artwork, nil
}
