package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/cache"
	"github.com/TemirB/internetmarke/internal/domain"
	"github.com/TemirB/internetmarke/internal/observability"
	"github.com/TemirB/internetmarke/internal/session"
)

const DefaultPageFormatName = "DIN A4 Normalpapier"

type FormatCache interface {
	Load(ctx context.Context, fetch cache.Fetcher) (map[int]domain.PageFormat, error)
	Lookup(ctx context.Context, id int, fetch cache.Fetcher) (domain.PageFormat, error)
}

type Config struct {
	// DefaultPageFormat is the page format name used for PDF checkouts
	// that do not name a page format.
	DefaultPageFormat string
}

// Orchestrator drives the order workflow of a single session.
//
// It enforces the state preconditions of each operation but does not
// serialize independent calls; callers sequence dependent steps.
type Orchestrator struct {
	client  Client
	formats FormatCache
	session *session.Session
	cfg     Config
	logger  *zap.Logger
	metrics observability.Metrics

	mu                  sync.Mutex
	state               State
	defaultPageFormatID int
}

func New(client Client, formats FormatCache, sess *session.Session, cfg Config, logger *zap.Logger, metrics observability.Metrics) *Orchestrator {
	if cfg.DefaultPageFormat == "" {
		cfg.DefaultPageFormat = DefaultPageFormatName
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &Orchestrator{
		client:  client,
		formats: formats,
		session: sess,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		state:   Unauthenticated,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Session() *session.Session { return o.session }

// DefaultPageFormatID is the page format resolved during authentication,
// zero before that.
func (o *Orchestrator) DefaultPageFormatID() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.defaultPageFormatID
}

// Authenticate resolves the default page format and opens the session.
// Rejected credentials are reported as (false, nil) and leave the
// orchestrator in AuthFailed. Errors return it to Unauthenticated.
func (o *Orchestrator) Authenticate(ctx context.Context) (bool, error) {
	o.mu.Lock()
	if o.state != Unauthenticated {
		st := o.state
		o.mu.Unlock()
		return false, fmt.Errorf("%w: authenticate while %s", domain.ErrInvalidState, st)
	}
	o.state = Authenticating
	o.mu.Unlock()

	next := Unauthenticated
	defer func() { o.setState(next) }()

	formats, err := o.formats.Load(ctx, o.fetchPageFormats)
	if err != nil {
		o.logger.Error("Can't load page formats", zap.Error(err))
		return false, err
	}

	defaultID, err := o.resolveDefaultFormat(formats)
	if err != nil {
		o.logger.Error("Default page format missing",
			zap.String("name", o.cfg.DefaultPageFormat),
			zap.Int("formats", len(formats)),
		)
		return false, err
	}

	creds := o.session.Credentials()
	var res *domain.AuthResult
	err = o.call(domain.OpAuthenticateUser, func() (err error) {
		res, err = o.client.Authenticate(ctx, creds)
		return err
	})
	if err != nil {
		o.logger.Error("Authentication call failed", zap.String("user", creds.Username), zap.Error(err))
		return false, err
	}

	if res == nil || res.UserToken == "" {
		next = AuthFailed
		o.logger.Warn("Authentication rejected", zap.String("user", creds.Username))
		return false, nil
	}

	if err := o.session.SetAuthResult(res.UserToken, res.WalletBalance, res.ShowTermsAndConditions, res.InfoMessage); err != nil {
		return false, err
	}

	o.mu.Lock()
	o.defaultPageFormatID = defaultID
	o.mu.Unlock()
	next = Authenticated

	o.logger.Info("User authenticated",
		zap.String("user", creds.Username),
		zap.Int64("wallet_balance", res.WalletBalance),
		zap.Int("default_page_format_id", defaultID),
	)
	return true, nil
}

// PreviewVoucher returns a link to a preview of the voucher.
func (o *Orchestrator) PreviewVoucher(ctx context.Context, req domain.PreviewRequest) (domain.PreviewResult, error) {
	if _, err := o.acquire("previewVoucher", Authenticated); err != nil {
		return domain.PreviewResult{}, err
	}

	ops, err := opsFor(req.OutputFormat)
	if err != nil {
		return domain.PreviewResult{}, err
	}
	if req.Product != nil {
		req.ProductCode = req.Product.Code
	}

	var res domain.PreviewResult
	err = o.call(ops.previewOp, func() (err error) {
		res, err = ops.preview(o.client, ctx, req)
		return err
	})
	if err != nil {
		o.logger.Error("Preview failed",
			zap.Int("product_code", req.ProductCode),
			zap.String("output_format", string(req.OutputFormat)),
			zap.Error(err),
		)
		return domain.PreviewResult{}, err
	}
	return res, nil
}

// GenerateOrderID requests a new shop order id and records it in the session.
func (o *Orchestrator) GenerateOrderID(ctx context.Context) (string, error) {
	token, err := o.acquire("generateOrderId", Authenticated)
	if err != nil {
		return "", err
	}

	var id string
	err = o.call(domain.OpCreateShopOrderID, func() (err error) {
		id, err = o.client.CreateShopOrderID(ctx, token)
		return err
	})
	if err != nil {
		o.logger.Error("Can't create shop order id", zap.Error(err))
		return "", err
	}

	o.session.RecordOrderID(id)
	o.logger.Info("Shop order id created", zap.String("shop_order_id", id))
	return id, nil
}

// Checkout buys the cart. The session token always replaces any token on the
// order; PDF orders without a page format get the default one.
func (o *Orchestrator) Checkout(ctx context.Context, order domain.Order, format domain.OutputFormat) (domain.ShoppingCartResult, error) {
	token, err := o.acquire("checkout", OrderInFlight)
	if err != nil {
		return domain.ShoppingCartResult{}, err
	}
	defer o.setState(Authenticated)

	ops, err := opsFor(format)
	if err != nil {
		return domain.ShoppingCartResult{}, err
	}

	order.UserToken = token
	if format == domain.FormatPDF && order.PageFormatID == 0 {
		order.PageFormatID = o.DefaultPageFormatID()
	}

	var resp *domain.CheckoutResponse
	err = o.call(ops.checkoutOp, func() (err error) {
		resp, err = ops.checkout(o.client, ctx, order)
		if err == nil && resp == nil {
			err = &domain.RemoteServiceError{Op: ops.checkoutOp, Message: "empty response"}
		}
		return err
	})
	if err != nil {
		o.logger.Error("Checkout failed",
			zap.String("shop_order_id", order.ShopOrderID),
			zap.String("output_format", string(format)),
			zap.Error(err),
		)
		return domain.ShoppingCartResult{}, err
	}

	if balance, ok := resp.Balance(); ok {
		o.session.UpdateBalance(balance)
	} else {
		o.logger.Warn("Checkout response carries no wallet balance",
			zap.String("shop_order_id", resp.ShoppingCart.ShopOrderID),
		)
	}

	result := NormalizeCart(resp.CartResponse)
	o.logger.Info("Checkout completed",
		zap.String("shop_order_id", result.OrderID),
		zap.Int("vouchers", len(result.Vouchers)),
		zap.Int64("wallet_balance", o.session.Balance()),
	)
	return result, nil
}

// RetrieveOrder fetches a previously placed order. It has no effect on the
// wallet balance.
func (o *Orchestrator) RetrieveOrder(ctx context.Context, req domain.RetrieveOrderRequest) (domain.ShoppingCartResult, error) {
	token, err := o.acquire("retrieveOrder", Authenticated)
	if err != nil {
		return domain.ShoppingCartResult{}, err
	}
	req.UserToken = token

	var resp *domain.CartResponse
	err = o.call(domain.OpRetrieveOrder, func() (err error) {
		resp, err = o.client.RetrieveOrder(ctx, req)
		if err == nil && resp == nil {
			err = &domain.RemoteServiceError{Op: domain.OpRetrieveOrder, Message: "empty response"}
		}
		return err
	})
	if err != nil {
		o.logger.Error("Can't retrieve order", zap.String("shop_order_id", req.ShopOrderID), zap.Error(err))
		return domain.ShoppingCartResult{}, err
	}

	return NormalizeCart(*resp), nil
}

// PageFormats returns every known page format by id.
func (o *Orchestrator) PageFormats(ctx context.Context) (map[int]domain.PageFormat, error) {
	if _, err := o.acquire("pageFormats", Authenticated); err != nil {
		return nil, err
	}
	return o.formats.Load(ctx, o.fetchPageFormats)
}

// PageFormat returns one page format, reloading the reference list when the
// cached copy has expired.
func (o *Orchestrator) PageFormat(ctx context.Context, id int) (domain.PageFormat, error) {
	if _, err := o.acquire("pageFormat", Authenticated); err != nil {
		return domain.PageFormat{}, err
	}
	return o.formats.Lookup(ctx, id, o.fetchPageFormats)
}

// acquire checks that the session is authenticated and idle, moves to next
// and returns the session token.
func (o *Orchestrator) acquire(op string, next State) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case Authenticated:
	case Unauthenticated, AuthFailed:
		return "", fmt.Errorf("%w: %s", domain.ErrUnauthenticated, op)
	default:
		return "", fmt.Errorf("%w: %s while %s", domain.ErrInvalidState, op, o.state)
	}

	token, err := o.session.RequireToken()
	if err != nil {
		return "", err
	}
	o.state = next
	return token, nil
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) fetchPageFormats(ctx context.Context) ([]domain.PageFormat, error) {
	var formats []domain.PageFormat
	err := o.call(domain.OpRetrievePageFormats, func() (err error) {
		formats, err = o.client.RetrievePageFormats(ctx)
		return err
	})
	return formats, err
}

// resolveDefaultFormat matches the configured name exactly. With several
// matches the lowest id wins.
func (o *Orchestrator) resolveDefaultFormat(formats map[int]domain.PageFormat) (int, error) {
	ids := make([]int, 0, len(formats))
	for id := range formats {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if formats[id].Name == o.cfg.DefaultPageFormat {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrDefaultFormatNotFound, o.cfg.DefaultPageFormat)
}

func (o *Orchestrator) call(op string, fn func() error) error {
	start := time.Now()
	err := fn()
	o.metrics.ObserveRemoteCall(op, convertToMs(start), err == nil)
	return err
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
