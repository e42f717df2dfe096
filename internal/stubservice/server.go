package stubservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/domain"
	"github.com/TemirB/internetmarke/internal/observability"
	"github.com/TemirB/internetmarke/internal/validation"
)

type account struct {
	FixtureUser
}

type placedOrder struct {
	owner string
	cart  domain.CartResponse
}

// Server is an in-memory stand-in for the remote voucher service.
type Server struct {
	router   chi.Router
	logger   *zap.Logger
	metrics  observability.Metrics
	validate *validator.Validate
	baseLink string
	legacy   bool

	mu          sync.Mutex
	formats     []domain.PageFormat
	products    map[int]FixtureProduct
	accounts    map[string]*account
	tokens      map[string]string
	orders      map[string]placedOrder
	issued      map[string]string
	nextOrderID int64
	nextTrackID int64
}

// New builds the stub. baseLink prefixes generated download and preview
// links; metricsHandler, when not nil, is served at /metrics.
func New(fx Fixture, baseLink string, logger *zap.Logger, metrics observability.Metrics, metricsHandler http.Handler) *Server {
	if metrics == nil {
		metrics = observability.Noop{}
	}
	s := &Server{
		logger:      logger,
		metrics:     metrics,
		validate:    validation.New(),
		baseLink:    strings.TrimRight(baseLink, "/"),
		legacy:      fx.LegacyBalanceField,
		products:    make(map[int]FixtureProduct, len(fx.Products)),
		accounts:    make(map[string]*account, len(fx.Users)),
		tokens:      make(map[string]string),
		orders:      make(map[string]placedOrder),
		issued:      make(map[string]string),
		nextOrderID: fx.FirstShopOrderID,
	}
	for _, f := range fx.PageFormats {
		s.formats = append(s.formats, f.toDomain())
	}
	for _, p := range fx.Products {
		s.products[p.Code] = p
	}
	for _, u := range fx.Users {
		s.accounts[u.Username] = &account{FixtureUser: u}
	}

	s.routes(metricsHandler)
	return s
}

func (s *Server) routes(metricsHandler http.Handler) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(ServerTimingApp(s.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Post("/"+domain.OpRetrievePageFormats, s.retrievePageFormats)
	r.Post("/"+domain.OpAuthenticateUser, s.authenticateUser)
	r.Post("/"+domain.OpPreviewVoucherPDF, s.previewVoucher(domain.FormatPDF))
	r.Post("/"+domain.OpPreviewVoucherPNG, s.previewVoucher(domain.FormatPNG))
	r.Post("/"+domain.OpCheckoutPDF, s.checkout(domain.FormatPDF))
	r.Post("/"+domain.OpCheckoutPNG, s.checkout(domain.FormatPNG))
	r.Post("/"+domain.OpRetrieveOrder, s.retrieveOrder)
	r.Post("/"+domain.OpCreateShopOrderID, s.createShopOrderID)

	s.router = r
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("Stub service listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("Error while decoding JSON",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusBadRequest, "bad json")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{msg})
}
