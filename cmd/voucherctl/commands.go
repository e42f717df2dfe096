package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/application/orchestrator"
	"github.com/TemirB/internetmarke/internal/domain"
	"github.com/TemirB/internetmarke/internal/events"
)

var errUsage = errors.New("invalid usage")

type app struct {
	orch      *orchestrator.Orchestrator
	publisher events.Publisher
	out       io.Writer
	logger    *zap.Logger
	now       func() time.Time
}

// run executes one command against an authenticated orchestrator and prints
// its result as JSON.
func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "formats":
		return a.formats(ctx)
	case "preview":
		return a.preview(ctx, args)
	case "order-id":
		return a.orderID(ctx)
	case "checkout":
		return a.checkout(ctx, args)
	case "retrieve":
		return a.retrieve(ctx, args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) formats(ctx context.Context) error {
	formats, err := a.orch.PageFormats(ctx)
	if err != nil {
		return err
	}
	list := make([]domain.PageFormat, 0, len(formats))
	for _, f := range formats {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return a.print(list)
}

func (a *app) preview(ctx context.Context, args []string) error {
	fs := newFlagSet("preview")
	product := fs.Int("product", 0, "product code")
	layout := fs.String("layout", string(domain.LayoutAddressZone), "voucher layout")
	format := fs.String("format", string(domain.FormatPDF), "output format")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *product <= 0 {
		return fmt.Errorf("%w: -product is required", errUsage)
	}

	of, err := domain.ParseOutputFormat(strings.ToUpper(*format))
	if err != nil {
		return err
	}
	res, err := a.orch.PreviewVoucher(ctx, domain.PreviewRequest{
		ProductCode:   *product,
		VoucherLayout: domain.VoucherLayout(*layout),
		OutputFormat:  of,
	})
	if err != nil {
		return err
	}
	return a.print(res)
}

func (a *app) orderID(ctx context.Context) error {
	id, err := a.orch.GenerateOrderID(ctx)
	if err != nil {
		return err
	}
	return a.print(struct {
		ShopOrderID string `json:"shopOrderId"`
	}{id})
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := newFlagSet("checkout")
	var products intList
	fs.Var(&products, "product", "product code, repeat for every voucher")
	layout := fs.String("layout", string(domain.LayoutAddressZone), "voucher layout")
	format := fs.String("format", string(domain.FormatPDF), "output format")
	total := fs.Int64("total", 0, "cart total in euro cents")
	shopOrderID := fs.String("order-id", "", "shop order id from order-id")
	pageFormat := fs.Int("page-format", 0, "page format id, PDF only")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if len(products) == 0 {
		return fmt.Errorf("%w: at least one -product is required", errUsage)
	}

	of, err := domain.ParseOutputFormat(strings.ToUpper(*format))
	if err != nil {
		return err
	}

	order := domain.Order{
		ShopOrderID:  *shopOrderID,
		PageFormatID: *pageFormat,
		Total:        *total,
	}

	grid := domain.LabelCount{LabelX: 1, LabelY: 1}
	if of == domain.FormatPDF {
		id := order.PageFormatID
		if id == 0 {
			id = a.orch.DefaultPageFormatID()
		}
		pf, err := a.orch.PageFormat(ctx, id)
		if err != nil {
			return err
		}
		grid = pf.Layout.LabelCount
	}
	for i, pos := range labelPositions(len(products), grid) {
		order.Positions = append(order.Positions, domain.Position{
			ProductCode:   products[i],
			VoucherLayout: domain.VoucherLayout(*layout),
			Position:      pos,
		})
	}

	res, err := a.orch.Checkout(ctx, order, of)
	if err != nil {
		return err
	}

	ev := events.NewCheckoutEvent(res, of, a.orch.Session().Balance(), a.now())
	if err := a.publisher.PublishCheckout(ctx, ev); err != nil {
		// The order is already paid for; print it before failing.
		_ = a.print(res)
		return err
	}
	return a.print(res)
}

// labelPositions fills labels row by row, then page by page.
func labelPositions(n int, grid domain.LabelCount) []domain.LabelPosition {
	cols, rows := max(grid.LabelX, 1), max(grid.LabelY, 1)
	perPage := cols * rows

	out := make([]domain.LabelPosition, n)
	for i := range out {
		slot := i % perPage
		out[i] = domain.LabelPosition{
			LabelX: slot%cols + 1,
			LabelY: slot/cols + 1,
			Page:   i/perPage + 1,
		}
	}
	return out
}

func (a *app) retrieve(ctx context.Context, args []string) error {
	fs := newFlagSet("retrieve")
	shopOrderID := fs.String("order-id", "", "shop order id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *shopOrderID == "" {
		return fmt.Errorf("%w: -order-id is required", errUsage)
	}

	res, err := a.orch.RetrieveOrder(ctx, domain.RetrieveOrderRequest{ShopOrderID: *shopOrderID})
	if err != nil {
		return err
	}
	return a.print(res)
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	for _, p := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}
