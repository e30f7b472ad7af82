// Package remote talks to the record proxy. The proxy owns persistence; this
// client only moves full GradeRecord bodies back and forth. Non-2xx responses
// surface as TransportError with whatever message the proxy sent — there is
// no retry policy here.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/quangdm/cloudscore/internal/metrics"
	"github.com/quangdm/cloudscore/internal/models"
)

type TransportError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: proxy returned %d: %s", e.Op, e.Status, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type listResponse struct {
	Records []models.GradeRecord `json:"records"`
}

// ListRecords fetches every record and flags each as server-backed, so a
// later save knows to PUT instead of POST.
func (c *Client) ListRecords(ctx context.Context) ([]models.GradeRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/records", nil)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: "list records", Err: fmt.Errorf("invalid response body: %w", err)}
	}
	for i := range resp.Records {
		resp.Records[i].ExistsInDatabase = true
	}
	logger.Debug.Printf("Loaded %d records from proxy", len(resp.Records))
	return resp.Records, nil
}

// SaveRecord creates (POST) or updates (PUT) one record. The existence flag
// never crosses the wire: it is excluded from the JSON encoding of the model.
func (c *Client) SaveRecord(ctx context.Context, rec *models.GradeRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return &TransportError{Op: "save record", Err: fmt.Errorf("failed to encode record: %w", err)}
	}

	method := http.MethodPost
	if rec.ExistsInDatabase {
		method = http.MethodPut
	}
	if _, err := c.do(ctx, method, "/records", payload); err != nil {
		return err
	}
	return nil
}

func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/records/"+id, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	op := fmt.Sprintf("%s %s", method, path)

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Keep the metric label cardinality flat: record ids collapse to one path.
	metricPath := path
	if strings.HasPrefix(path, "/records/") {
		metricPath = "/records/{id}"
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	metrics.ProxyRequestDuration.WithLabelValues(metricPath, method, status).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error.Printf("Proxy call failed: %s -> %d %s", op, resp.StatusCode, string(body))
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return body, nil
}
