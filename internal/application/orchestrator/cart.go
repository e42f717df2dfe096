package orchestrator

import "github.com/TemirB/internetmarke/internal/domain"

// NormalizeCart turns a raw cart-bearing response into the client-facing
// result. The input is not modified.
func NormalizeCart(resp domain.CartResponse) domain.ShoppingCartResult {
	raw := resp.ShoppingCart.VoucherList.Voucher
	result := domain.ShoppingCartResult{
		OrderID:  resp.ShoppingCart.ShopOrderID,
		Link:     resp.Link,
		Vouchers: make([]domain.Voucher, 0, len(raw)),
	}
	for _, v := range raw {
		result.Vouchers = append(result.Vouchers, domain.Voucher{
			ID:           v.VoucherID,
			TrackingCode: v.TrackID,
		})
	}
	return result
}
