package orchestrator

import (
	"context"
	"fmt"

	"github.com/TemirB/internetmarke/internal/domain"
)

type formatOps struct {
	previewOp  string
	checkoutOp string
	preview    func(Client, context.Context, domain.PreviewRequest) (domain.PreviewResult, error)
	checkout   func(Client, context.Context, domain.Order) (*domain.CheckoutResponse, error)
}

// dispatch must have an entry for every domain.OutputFormats() value.
var dispatch = map[domain.OutputFormat]formatOps{
	domain.FormatPDF: {
		previewOp:  domain.OpPreviewVoucherPDF,
		checkoutOp: domain.OpCheckoutPDF,
		preview:    Client.PreviewVoucherPDF,
		checkout:   Client.CheckoutPDF,
	},
	domain.FormatPNG: {
		previewOp:  domain.OpPreviewVoucherPNG,
		checkoutOp: domain.OpCheckoutPNG,
		preview:    Client.PreviewVoucherPNG,
		checkout:   Client.CheckoutPNG,
	},
}

func opsFor(f domain.OutputFormat) (formatOps, error) {
	ops, ok := dispatch[f]
	if !ok {
		return formatOps{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, f)
	}
	return ops, nil
}
