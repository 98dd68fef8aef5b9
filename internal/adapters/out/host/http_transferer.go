package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"orderledger/internal/core/domain/model/kernel"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// transferRequest is the body posted to the host. Amounts travel as strings
// since they do not fit JSON numbers.
type transferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// HTTPTransferer posts transfers to the ledger host. Any non-2xx answer
// means the transfer did not happen.
type HTTPTransferer struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewHTTPTransferer creates a transferer posting to endpoint. Each transfer
// is abandoned after timeout.
func NewHTTPTransferer(endpoint string, timeout time.Duration, logger *slog.Logger) *HTTPTransferer {
	return &HTTPTransferer{
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger.With("component", "HTTPTransferer"),
	}
}

func (t *HTTPTransferer) Transfer(ctx context.Context, to kernel.AccountID, amount kernel.Amount) error {
	body, err := json.Marshal(transferRequest{
		To:     to.String(),
		Amount: amount.String(),
	})
	if err != nil {
		return fmt.Errorf("encode transfer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("post transfer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("transfer rejected with status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	t.logger.DebugContext(ctx, "transfer settled", "to", to.String(), "amount", amount.String())
	return nil
}
