package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/TemirB/internetmarke/internal/domain"
)

var shopOrderID = regexp.MustCompile(`^\d{1,20}$`)

// New returns a validator that knows the voucher domain tags
// voucher_layout and shop_order_id.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("voucher_layout", func(fl validator.FieldLevel) bool {
		switch domain.VoucherLayout(fl.Field().String()) {
		case domain.LayoutFrankingZone, domain.LayoutAddressZone:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("shop_order_id", func(fl validator.FieldLevel) bool {
		return shopOrderID.MatchString(fl.Field().String())
	})
	return v
}
