package domain

// Credentials identify the portal user a session is opened for.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is what the remote service returns for accepted credentials.
type AuthResult struct {
	UserToken              string `json:"userToken"`
	WalletBalance          int64  `json:"walletBalance"`
	ShowTermsAndConditions bool   `json:"showTermAndCondition"`
	InfoMessage            string `json:"infoMessage,omitempty"`
}

// Product is a purchasable postage product.
type Product struct {
	Code  int    `json:"productCode"`
	Name  string `json:"name,omitempty"`
	Price int64  `json:"price,omitempty"`
}

// PreviewRequest asks for a preview of a voucher. Product, when set, takes
// precedence over ProductCode.
type PreviewRequest struct {
	Product       *Product      `json:"-"`
	ProductCode   int           `json:"productCode"`
	VoucherLayout VoucherLayout `json:"voucherLayout"`
	OutputFormat  OutputFormat  `json:"-"`
}

type PreviewResult struct {
	Link string `json:"link"`
}

// Order is the shopping cart payload sent on checkout.
type Order struct {
	UserToken          string     `json:"userToken"`
	ShopOrderID        string     `json:"shopOrderId,omitempty" validate:"omitempty,shop_order_id"`
	PageFormatID       int        `json:"pageFormatId,omitempty"`
	Positions          []Position `json:"positions" validate:"required,min=1,dive"`
	Total              int64      `json:"total" validate:"gte=0"`
	CreateManifest     bool       `json:"createManifest,omitempty"`
	CreateShippingList int        `json:"createShippingList,omitempty" validate:"gte=0,lte=2"`
}

type Position struct {
	ProductCode   int           `json:"productCode" validate:"required,gt=0"`
	VoucherLayout VoucherLayout `json:"voucherLayout" validate:"required,voucher_layout"`
	Position      LabelPosition `json:"position"`
}

type LabelPosition struct {
	LabelX int `json:"labelX"`
	LabelY int `json:"labelY"`
	Page   int `json:"page"`
}

// RetrieveOrderRequest re-fetches a previously placed order.
type RetrieveOrderRequest struct {
	UserToken   string `json:"userToken"`
	ShopOrderID string `json:"shopOrderId" validate:"required,shop_order_id"`
}

// CartResponse is the raw cart-bearing reply of checkout and retrieveOrder.
type CartResponse struct {
	Link         string  `json:"link"`
	ShoppingCart RawCart `json:"shoppingCart"`
}

type RawCart struct {
	ShopOrderID string         `json:"shopOrderId"`
	VoucherList RawVoucherList `json:"voucherList"`
}

type RawVoucherList struct {
	Voucher []RawVoucher `json:"voucher"`
}

type RawVoucher struct {
	VoucherID string `json:"voucherId"`
	TrackID   string `json:"trackId,omitempty"`
}

// CheckoutResponse carries the cart plus the wallet balance after the debit.
// The service has been seen spelling the balance field two ways.
type CheckoutResponse struct {
	CartResponse
	WalletBalance       *int64 `json:"walletBalance,omitempty"`
	LegacyWalletBalance *int64 `json:"walletBallance,omitempty"`
}

// Balance returns the authoritative wallet balance, preferring the canonical
// spelling. ok is false when the response carries neither field.
func (r CheckoutResponse) Balance() (balance int64, ok bool) {
	switch {
	case r.WalletBalance != nil:
		return *r.WalletBalance, true
	case r.LegacyWalletBalance != nil:
		return *r.LegacyWalletBalance, true
	default:
		return 0, false
	}
}

// ShoppingCartResult is the client-facing outcome of checkout or retrieveOrder.
type ShoppingCartResult struct {
	OrderID  string    `json:"orderId"`
	Link     string    `json:"link"`
	Vouchers []Voucher `json:"vouchers"`
}

type Voucher struct {
	ID           string `json:"id"`
	TrackingCode string `json:"trackingCode,omitempty"`
}
