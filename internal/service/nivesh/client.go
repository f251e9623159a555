package nivesh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Nivesh/internal/domain/models"
	domrepo "Nivesh/internal/domain/repository"
	domsvc "Nivesh/internal/domain/service"
	xhttp "Nivesh/pkg/http"

	"github.com/go-playground/validator/v10"
)

const (
	opListStocks          = "list_stocks"
	opGetStockDetail      = "get_stock_detail"
	opGetPriceHistory     = "get_price_history"
	opGetPredictions      = "get_predictions"
	opGeneratePredictions = "generate_predictions"
)

// Client is a thin typed transport over the prediction service REST API.
// It never retries; timeouts come from the transport or the caller's context.
type Client struct {
	baseURL  string
	client   *xhttp.Client
	metrics  domrepo.Metrics
	validate *validator.Validate
}

// New builds a client for baseURL. A nil metrics recorder is allowed.
func New(baseURL string, timeout time.Duration, metrics domrepo.Metrics) *Client {
	if metrics == nil {
		metrics = domrepo.NopMetrics{}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		metrics:  metrics,
		validate: validator.New(),
	}
}

// priceData is the wire form of a history row. Close may arrive as a JSON
// number or as a numeric string.
type priceData struct {
	Date  string      `json:"date"`
	Close json.Number `json:"close"`
}

// ListStocks returns one page of listed stocks.
func (c *Client) ListStocks(ctx context.Context, offset, limit int) ([]models.Stock, error) {
	var stocks []models.Stock
	q := map[string][]string{
		"skip":  {strconv.Itoa(offset)},
		"limit": {strconv.Itoa(limit)},
	}
	if err := c.get(ctx, opListStocks, "/api/stocks/", q, &stocks); err != nil {
		return nil, err
	}
	if err := c.validate.Var(stocks, "dive"); err != nil {
		return nil, c.malformed(opListStocks, err)
	}
	return stocks, nil
}

// GetStockDetail returns a stock with its latest price and server-computed changes.
func (c *Client) GetStockDetail(ctx context.Context, ticker string) (*models.StockDetail, error) {
	var detail models.StockDetail
	if err := c.get(ctx, opGetStockDetail, "/api/stocks/"+url.PathEscape(ticker), nil, &detail); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&detail); err != nil {
		return nil, c.malformed(opGetStockDetail, err)
	}
	return &detail, nil
}

// GetPriceHistory returns daily closes for the last days, oldest first as
// delivered by the service.
func (c *Client) GetPriceHistory(ctx context.Context, ticker string, days int) ([]models.PricePoint, error) {
	var rows []priceData
	q := map[string][]string{"days": {strconv.Itoa(days)}}
	if err := c.get(ctx, opGetPriceHistory, "/api/stocks/"+url.PathEscape(ticker)+"/history", q, &rows); err != nil {
		return nil, err
	}

	points := make([]models.PricePoint, 0, len(rows))
	for i, r := range rows {
		v, err := coerceClose(r.Close)
		if err != nil {
			return nil, c.malformed(opGetPriceHistory, fmt.Errorf("row %d: %w", i, err))
		}
		if r.Date == "" {
			return nil, c.malformed(opGetPriceHistory, fmt.Errorf("row %d: missing date", i))
		}
		points = append(points, models.PricePoint{Date: r.Date, Close: v})
	}
	return points, nil
}

// GetPredictions returns the forecasts for ticker, or an error wrapping
// models.ErrNotFound when none were generated yet.
func (c *Client) GetPredictions(ctx context.Context, ticker string) (*models.PredictionSummary, error) {
	var summary models.PredictionSummary
	if err := c.get(ctx, opGetPredictions, "/api/predictions/"+url.PathEscape(ticker), nil, &summary); err != nil {
		return nil, err
	}
	if summary.Ticker == "" {
		summary.Ticker = ticker
	}
	if err := c.validate.Struct(&summary); err != nil {
		return nil, c.malformed(opGetPredictions, err)
	}
	return &summary, nil
}

// GeneratePredictions starts a forecast job for ticker.
func (c *Client) GeneratePredictions(ctx context.Context, ticker string) (*models.GenerationAck, error) {
	var ack models.GenerationAck
	err := c.do(ctx, opGeneratePredictions, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/api/predictions/" + url.PathEscape(ticker) + "/generate",
	}, &ack)
	if err != nil {
		return nil, err
	}
	if ack.Ticker == "" {
		ack.Ticker = ticker
	}
	return &ack, nil
}

func (c *Client) get(ctx context.Context, op, path string, query map[string][]string, dest interface{}) error {
	return c.do(ctx, op, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: query,
	}, dest)
}

func (c *Client) do(ctx context.Context, op string, opts *xhttp.RequestOptions, dest interface{}) error {
	start := time.Now()
	err := c.client.SendAndParse(ctx, opts, dest)
	if err == nil {
		c.metrics.RecordRemoteCall(op, domrepo.OutcomeOK, time.Since(start).Seconds())
		return nil
	}

	rerr := toRemoteError(op, err)
	c.metrics.RecordRemoteCall(op, outcomeOf(rerr), time.Since(start).Seconds())
	return rerr
}

func (c *Client) malformed(op string, err error) error {
	c.metrics.RecordError("malformed_" + op)
	return &models.RemoteError{
		Op:  op,
		Err: fmt.Errorf("%w: %v", models.ErrMalformedResponse, err),
	}
}

func toRemoteError(op string, err error) *models.RemoteError {
	var respErr *xhttp.ResponseError
	if errors.As(err, &respErr) {
		rerr := &models.RemoteError{
			Op:     op,
			Status: respErr.StatusCode,
			Detail: detailOf(respErr.Body),
			Err:    err,
		}
		if respErr.StatusCode == http.StatusNotFound {
			rerr.Err = fmt.Errorf("%w: %v", models.ErrNotFound, err)
		}
		return rerr
	}

	var decErr *xhttp.DecodeError
	if errors.As(err, &decErr) {
		return &models.RemoteError{Op: op, Err: fmt.Errorf("%w: %v", models.ErrMalformedResponse, decErr.Err)}
	}

	return &models.RemoteError{Op: op, Err: err}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return domrepo.OutcomeNotFound
	case errors.Is(err, models.ErrMalformedResponse):
		return domrepo.OutcomeMalformed
	default:
		return domrepo.OutcomeError
	}
}

// detailOf extracts the human message from an error body of the form
// {"detail": "..."}. Validation errors carry a list and are ignored.
func detailOf(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err != nil {
		return ""
	}
	return s
}

func coerceClose(n json.Number) (float64, error) {
	if n == "" {
		return 0, errors.New("missing close")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil {
		return 0, fmt.Errorf("close %q is not numeric", n)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("close %q is not finite", n)
	}
	return v, nil
}

var _ domsvc.MarketAPI = (*Client)(nil)
