package bdfare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/babuas25/tf-sub001/internal/domain"
	"github.com/babuas25/tf-sub001/internal/infrastructure/retry"
)

// searchPath is the distribution API's shopping endpoint.
const searchPath = "/v1/air-shopping"

// Client talks to the distribution API over HTTP. Transient failures
// (network errors, 5xx answers) are retried with backoff; client-side
// rejections (4xx) are permanent and returned immediately.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retryCfg   retry.Config
	log        zerolog.Logger
}

// NewClient creates a Client for the given base URL and API key.
func NewClient(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
		log:        log,
	}
}

// searchRequest is the shopping request payload.
type searchRequest struct {
	OriginDest       []originDest     `json:"originDest"`
	Pax              []paxRequest     `json:"pax"`
	ShoppingCriteria shoppingCriteria `json:"shoppingCriteria"`
}

type originDest struct {
	OriginDepRequest   pointRequest `json:"originDepRequest"`
	DestArrivalRequest struct {
		IATACode string `json:"iataCode"`
	} `json:"destArrivalRequest"`
}

type pointRequest struct {
	IATACode string `json:"iataCode"`
	Date     string `json:"date"`
}

type paxRequest struct {
	PaxID string `json:"paxId"`
	PTC   string `json:"ptc"`
}

type shoppingCriteria struct {
	TripType          string `json:"tripType"`
	TravelPreferences struct {
		CabinCode string `json:"cabinCode"`
	} `json:"travelPreferences"`
	ReturnUpsellInfo bool `json:"returnUPSellInfo"`
}

// apiEnvelope is the outermost wrapper of every API answer.
type apiEnvelope struct {
	Message  string    `json:"message"`
	Response *Response `json:"response"`
}

// Search sends a shopping request built from the criteria and returns the
// deserialized raw response. Errors are wrapped in
// domain.ErrUpstreamUnavailable so callers can map them uniformly.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) (*Response, error) {
	payload := buildSearchRequest(criteria)

	resp, err := retry.DoWithResult(ctx, func() (*Response, error) {
		return c.doSearch(ctx, payload)
	}, c.retryCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return resp, nil
}

// doSearch performs one request attempt.
func (c *Client) doSearch(ctx context.Context, payload searchRequest) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 500 {
		return nil, fmt.Errorf("upstream returned %d", res.StatusCode)
	}
	if res.StatusCode != http.StatusOK {
		return nil, retry.NewPermanent(fmt.Errorf("upstream returned %d", res.StatusCode))
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("decode response: %w", err))
	}
	if envelope.Response == nil {
		return nil, retry.NewPermanent(fmt.Errorf("empty response body: %s", envelope.Message))
	}

	c.log.Debug().
		Str("trace_id", envelope.Response.TraceID).
		Int("raw_offers", RawOfferCount(envelope.Response)).
		Msg("Search response received")

	return envelope.Response, nil
}

// buildSearchRequest maps the domain criteria onto the API's request shape.
func buildSearchRequest(criteria domain.SearchCriteria) searchRequest {
	var dests []originDest

	out := originDest{
		OriginDepRequest: pointRequest{IATACode: criteria.Origin, Date: criteria.DepartureDate},
	}
	out.DestArrivalRequest.IATACode = criteria.Destination
	dests = append(dests, out)

	if criteria.TripType == domain.TripReturn {
		back := originDest{
			OriginDepRequest: pointRequest{IATACode: criteria.Destination, Date: criteria.ReturnDate},
		}
		back.DestArrivalRequest.IATACode = criteria.Origin
		dests = append(dests, back)
	}

	var pax []paxRequest
	id := 1
	addPax := func(count int, ptc string) {
		for i := 0; i < count; i++ {
			pax = append(pax, paxRequest{PaxID: fmt.Sprintf("PAX%d", id), PTC: ptc})
			id++
		}
	}
	addPax(criteria.Adults, "ADT")
	addPax(criteria.Children, "CHD")
	addPax(criteria.Infants, "INF")

	sc := shoppingCriteria{
		TripType:         string(criteria.TripType),
		ReturnUpsellInfo: true,
	}
	sc.TravelPreferences.CabinCode = criteria.CabinClass

	return searchRequest{
		OriginDest:       dests,
		Pax:              pax,
		ShoppingCriteria: sc,
	}
}
