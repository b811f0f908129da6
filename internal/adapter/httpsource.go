package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dusk-indust/pedigree/internal/model"
)

// Compile-time interface check.
var _ Source = (*HTTPSource)(nil)

// HTTPSource implements Source against a JSON tree-export endpoint:
// GET <base>/tree?root=<id>&generations=<n> returns a treePayload.
type HTTPSource struct {
	base  string
	token string
	http  *http.Client
}

// SourceOption configures an HTTPSource.
type SourceOption func(*HTTPSource)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) SourceOption {
	return func(s *HTTPSource) {
		s.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(hc *http.Client) SourceOption {
	return func(s *HTTPSource) {
		s.http = hc
	}
}

// WithToken sets a bearer token sent on every request.
func WithToken(token string) SourceOption {
	return func(s *HTTPSource) {
		s.token = token
	}
}

// NewHTTPSource creates an HTTPSource for the given base URL.
func NewHTTPSource(baseURL string, opts ...SourceOption) *HTTPSource {
	s := &HTTPSource{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the source for provenance metadata.
func (s *HTTPSource) Name() string {
	return "remote:" + s.base
}

// --- Wire payloads ---

// treePayload is the remote endpoint's response shape.
type treePayload struct {
	Persons []personPayload `json:"persons"`
	Unions  []unionPayload  `json:"unions"`
}

// personPayload is one remote individual record.
type personPayload struct {
	ID         string   `json:"id"`
	GivenName  string   `json:"givenName"`
	Surname    string   `json:"surname"`
	Gender     string   `json:"gender"`
	BirthDate  string   `json:"birthDate,omitempty"`
	BirthPlace string   `json:"birthPlace,omitempty"`
	DeathDate  string   `json:"deathDate,omitempty"`
	DeathPlace string   `json:"deathPlace,omitempty"`
	ChildOf    string   `json:"childOf,omitempty"`
	SpouseIn   []string `json:"spouseIn,omitempty"`
	Restricted bool     `json:"restricted,omitempty"`
}

// unionPayload is one remote family/union record.
type unionPayload struct {
	ID          string   `json:"id"`
	Partner1    string   `json:"partner1,omitempty"`
	Partner2    string   `json:"partner2,omitempty"`
	ChildIDs    []string `json:"children,omitempty"`
	MarriedDate string   `json:"marriedDate,omitempty"`
}

// APIError represents a non-success response from the remote source.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("adapter: remote returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Fetch retrieves and normalizes the family tree around rootID.
func (s *HTTPSource) Fetch(ctx context.Context, rootID string, generations int) (*model.FamilyModel, error) {
	q := url.Values{}
	q.Set("root", rootID)
	q.Set("generations", strconv.Itoa(generations))
	endpoint := s.base + "/tree?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("adapter: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adapter: fetch tree: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload treePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("adapter: decode tree: %w", err)
	}

	return s.normalize(&payload), nil
}

// normalize converts the remote payload into the normalized family model.
func (s *HTTPSource) normalize(payload *treePayload) *model.FamilyModel {
	m := &model.FamilyModel{
		Provenance: model.Provenance{
			Source:    s.Name(),
			CreatedAt: time.Now().UTC(),
		},
	}

	for _, p := range payload.Persons {
		if p.ID == "" {
			continue
		}
		if p.Restricted {
			// Placeholder so pointers referencing this record still resolve.
			m.Profiles = append(m.Profiles, model.Profile{ID: p.ID, Restricted: true})
			continue
		}
		m.Profiles = append(m.Profiles, model.Profile{
			ID:               p.ID,
			GivenName:        p.GivenName,
			Surname:          p.Surname,
			Sex:              normalizeGender(p.Gender),
			FamilyAsChild:    p.ChildOf,
			FamiliesAsSpouse: p.SpouseIn,
			Birth:            normalizeEvent(p.BirthDate, p.BirthPlace),
			Death:            normalizeEvent(p.DeathDate, p.DeathPlace),
		})
	}

	for _, u := range payload.Unions {
		if u.ID == "" {
			continue
		}
		m.Families = append(m.Families, model.Family{
			ID:        u.ID,
			HusbandID: u.Partner1,
			WifeID:    u.Partner2,
			ChildIDs:  u.ChildIDs,
			Marriage:  normalizeEvent(u.MarriedDate, ""),
		})
	}

	return m
}

// normalizeGender maps the remote gender vocabulary onto the model enum.
func normalizeGender(g string) model.Sex {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "":
		return ""
	case "male", "m":
		return model.SexMale
	case "female", "f":
		return model.SexFemale
	case "other", "nonbinary", "x":
		return model.SexOther
	default:
		return model.SexUnspecified
	}
}

// normalizeEvent converts an ISO-style "YYYY-MM-DD" (or bare "YYYY") date
// plus place into a life event. Unparseable dates are kept as text.
func normalizeEvent(date, place string) *model.LifeEvent {
	if date == "" && place == "" {
		return nil
	}
	ev := &model.LifeEvent{Place: place}
	if date == "" {
		return ev
	}

	d := &model.DateInfo{}
	parts := strings.SplitN(date, "-", 3)
	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		d.Text = date
	} else {
		d.Year = year
		if len(parts) > 1 {
			d.Month, _ = strconv.Atoi(parts[1])
		}
		if len(parts) > 2 {
			d.Day, _ = strconv.Atoi(parts[2])
		}
	}
	ev.Date = d
	return ev
}
