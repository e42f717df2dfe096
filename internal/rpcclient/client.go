package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/domain"
)

const (
	HeaderPartnerID = "X-Partner-Id"
	HeaderRequestID = "X-Request-Id"
)

type Config struct {
	BaseURL   string
	PartnerID string
	Timeout   time.Duration
}

// Client calls the voucher service with JSON over HTTP: every operation is a
// POST to {BaseURL}/{operation}. It never retries.
type Client struct {
	baseURL   string
	partnerID string
	http      *http.Client
	logger    *zap.Logger
}

func New(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		partnerID: cfg.PartnerID,
		http:      httpClient,
		logger:    logger,
	}
}

type pageFormatList struct {
	PageFormat []domain.PageFormat `json:"pageFormat"`
}

type tokenRequest struct {
	UserToken string `json:"userToken"`
}

type shopOrderID struct {
	ShopOrderID string `json:"shopOrderId"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) RetrievePageFormats(ctx context.Context) ([]domain.PageFormat, error) {
	var out pageFormatList
	if err := c.do(ctx, domain.OpRetrievePageFormats, struct{}{}, &out); err != nil {
		return nil, err
	}
	return out.PageFormat, nil
}

// Authenticate returns nil when the service answers with an empty body.
func (c *Client) Authenticate(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var out *domain.AuthResult
	if err := c.do(ctx, domain.OpAuthenticateUser, creds, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PreviewVoucherPDF(ctx context.Context, req domain.PreviewRequest) (domain.PreviewResult, error) {
	return c.preview(ctx, domain.OpPreviewVoucherPDF, req)
}

func (c *Client) PreviewVoucherPNG(ctx context.Context, req domain.PreviewRequest) (domain.PreviewResult, error) {
	return c.preview(ctx, domain.OpPreviewVoucherPNG, req)
}

func (c *Client) CheckoutPDF(ctx context.Context, order domain.Order) (*domain.CheckoutResponse, error) {
	return c.checkout(ctx, domain.OpCheckoutPDF, order)
}

func (c *Client) CheckoutPNG(ctx context.Context, order domain.Order) (*domain.CheckoutResponse, error) {
	return c.checkout(ctx, domain.OpCheckoutPNG, order)
}

func (c *Client) RetrieveOrder(ctx context.Context, req domain.RetrieveOrderRequest) (*domain.CartResponse, error) {
	var out domain.CartResponse
	if err := c.do(ctx, domain.OpRetrieveOrder, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateShopOrderID(ctx context.Context, token string) (string, error) {
	var out shopOrderID
	if err := c.do(ctx, domain.OpCreateShopOrderID, tokenRequest{UserToken: token}, &out); err != nil {
		return "", err
	}
	if out.ShopOrderID == "" {
		return "", &domain.RemoteServiceError{Op: domain.OpCreateShopOrderID, Status: http.StatusOK, Message: "empty shop order id"}
	}
	return out.ShopOrderID, nil
}

func (c *Client) preview(ctx context.Context, op string, req domain.PreviewRequest) (domain.PreviewResult, error) {
	var out domain.PreviewResult
	if err := c.do(ctx, op, req, &out); err != nil {
		return domain.PreviewResult{}, err
	}
	return out, nil
}

func (c *Client) checkout(ctx context.Context, op string, order domain.Order) (*domain.CheckoutResponse, error) {
	var out domain.CheckoutResponse
	if err := c.do(ctx, op, order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, op string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if c.partnerID != "" {
		req.Header.Set(HeaderPartnerID, c.partnerID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Remote call failed",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Remote call",
		zap.String("op", op),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if err := json.Unmarshal(raw, &eb); err != nil || eb.Message == "" {
			eb.Message = strings.TrimSpace(string(raw))
		}
		if eb.Message == "" && readErr != nil {
			eb.Message = "read error body: " + readErr.Error()
		}
		return &domain.RemoteServiceError{Op: op, Status: resp.StatusCode, Message: eb.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}
