package orchestrator

import (
	"context"

	"github.com/TemirB/internetmarke/internal/domain"
)

//go:generate mockgen -source internal/application/orchestrator/client.go -destination=internal/application/orchestrator/client_mock_test.go -package=orchestrator

// Client is the remote procedure capability of the voucher service.
// Authenticate returns a nil result when the credentials are rejected.
type Client interface {
	RetrievePageFormats(ctx context.Context) ([]domain.PageFormat, error)
	Authenticate(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	PreviewVoucherPDF(ctx context.Context, req domain.PreviewRequest) (domain.PreviewResult, error)
	PreviewVoucherPNG(ctx context.Context, req domain.PreviewRequest) (domain.PreviewResult, error)
	CheckoutPDF(ctx context.Context, order domain.Order) (*domain.CheckoutResponse, error)
	CheckoutPNG(ctx context.Context, order domain.Order) (*domain.CheckoutResponse, error)
	RetrieveOrder(ctx context.Context, req domain.RetrieveOrderRequest) (*domain.CartResponse, error)
	CreateShopOrderID(ctx context.Context, token string) (string, error)
}
