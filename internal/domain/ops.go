package domain

// Remote operation names, shared by the transport and metrics.
const (
	OpRetrievePageFormats = "retrievePageFormats"
	OpAuthenticateUser    = "authenticateUser"
	OpPreviewVoucherPDF   = "retrievePreviewVoucherPDF"
	OpPreviewVoucherPNG   = "retrievePreviewVoucherPNG"
	OpCheckoutPDF         = "checkoutShoppingCartPDF"
	OpCheckoutPNG         = "checkoutShoppingCartPNG"
	OpRetrieveOrder       = "retrieveOrder"
	OpCreateShopOrderID   = "createShopOrderId"
)
