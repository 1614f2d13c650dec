package polygon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

var (
	// ErrSchemaMismatch is returned when a 200 response body does not have
	// the shape of a previous-close payload. Polygon answers unknown tickers
	// with 200 and no results key, so callers treat this as bad user input.
	ErrSchemaMismatch = errors.New("response did not match the previous-close schema")
	// ErrUnauthorized is returned on a 401 response.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError is returned for any status other than 200 or 401.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d %s", e.Code, http.StatusText(e.Code))
}

// TransportError wraps a failure to get any response at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "performing request: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// TickerResponse is the decoded body of /v2/aggs/ticker/{ticker}/prev.
type TickerResponse struct {
	Results []PriceInfo
	Ticker  string
}

// PriceInfo is a single aggregate bar. Only the close is kept.
type PriceInfo struct {
	Close float64
}

// StockInfo is a ticker paired with its resolved closing price.
type StockInfo struct {
	Ticker string
	Price  float64
}

// StockInfo resolves the closing price as that of the last result.
// An empty result list yields 0.
func (r TickerResponse) StockInfo() StockInfo {
	var price float64
	for _, res := range r.Results {
		price = res.Close
	}
	return StockInfo{Ticker: r.Ticker, Price: price}
}

// FormatPrice renders p with the fewest digits that round-trip.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// PrevURL renders the previous-close URL for ticker. The ticker is used as
// given apart from path escaping.
func PrevURL(baseURL, ticker, apiKey string) string {
	query := url.Values{}
	query.Set("adjusted", "true")
	query.Set("apiKey", apiKey)
	return fmt.Sprintf("%s/v2/aggs/ticker/%s/prev?%s", baseURL, url.PathEscape(ticker), query.Encode())
}

// PreviousClose fetches the previous trading day's aggregate for ticker.
func (c *Client) PreviousClose(ctx context.Context, ticker string) (*TickerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, PrevURL(c.baseURL, ticker, c.apiKey), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusUnauthorized:
		return nil, ErrUnauthorized

	default:
		return nil, &StatusError{Code: res.StatusCode}
	}

	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
	}

	out, err := decodeTickerResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
	}
	return out, nil
}

// decodeTickerResponse requires the results and ticker keys and a numeric
// close on every result. Anything else in the payload is ignored.
//
//	{
//	  "ticker": "AAPL",
//	  "resultsCount": 1,
//	  "results": [{"T": "AAPL", "c": 150.25, "o": 149.1, "v": 51234567}]
//	}
func decodeTickerResponse(body map[string]any) (*TickerResponse, error) {
	ticker, err := requireValue[string](body, "ticker")
	if err != nil {
		return nil, err
	}
	rawResults, err := requireValue[[]any](body, "results")
	if err != nil {
		return nil, err
	}

	results := make([]PriceInfo, 0, len(rawResults))
	for i, raw := range rawResults {
		bar, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("results[%d]: unexpected type: %T", i, raw)
		}
		c, err := requireValue[float64](bar, "c")
		if err != nil {
			return nil, fmt.Errorf("results[%d]: %w", i, err)
		}
		results = append(results, PriceInfo{Close: c})
	}

	return &TickerResponse{Results: results, Ticker: ticker}, nil
}

// requireValue is a helper to read a mandatory, non-null value of type T.
func requireValue[T any](data map[string]any, key string) (T, error) {
	var zero T
	v, ok := data[key]
	if !ok || v == nil {
		return zero, fmt.Errorf("missing field %q", key)
	}
	if v, ok := v.(T); ok {
		return v, nil
	}
	return zero, fmt.Errorf("field %q: unexpected type: %T", key, v)
}
