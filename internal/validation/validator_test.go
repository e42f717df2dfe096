package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TemirB/internetmarke/internal/domain"
)

func TestValidateOrder(t *testing.T) {
	v := New()
	valid := domain.Order{
		ShopOrderID: "1001",
		Positions:   []domain.Position{{ProductCode: 1, VoucherLayout: domain.LayoutAddressZone}},
		Total:       85,
	}

	testCases := []struct {
		name    string
		mutate  func(o *domain.Order)
		wantErr bool
	}{
		{name: "valid", mutate: func(*domain.Order) {}},
		{name: "no shop order id yet", mutate: func(o *domain.Order) { o.ShopOrderID = "" }},
		{name: "no positions", mutate: func(o *domain.Order) { o.Positions = nil }, wantErr: true},
		{name: "bad layout", mutate: func(o *domain.Order) { o.Positions[0].VoucherLayout = "Sideways" }, wantErr: true},
		{name: "zero product code", mutate: func(o *domain.Order) { o.Positions[0].ProductCode = 0 }, wantErr: true},
		{name: "negative total", mutate: func(o *domain.Order) { o.Total = -1 }, wantErr: true},
		{name: "non numeric shop order id", mutate: func(o *domain.Order) { o.ShopOrderID = "abc" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := valid
			o.Positions = append([]domain.Position(nil), valid.Positions...)
			tc.mutate(&o)

			err := v.Struct(o)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRetrieveOrder(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(domain.RetrieveOrderRequest{ShopOrderID: "1001"}))
	require.Error(t, v.Struct(domain.RetrieveOrderRequest{}))
}
