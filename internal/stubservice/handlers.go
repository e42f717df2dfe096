package stubservice

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/domain"
)

func (s *Server) retrievePageFormats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	formats := append([]domain.PageFormat(nil), s.formats...)
	s.mu.Unlock()

	writeJSON(w, struct {
		PageFormat []domain.PageFormat `json:"pageFormat"`
	}{formats})
}

// authenticateUser answers null for unknown credentials, like the real
// service does for a rejected login.
func (s *Server) authenticateUser(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !s.decode(w, r, &creds) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[creds.Username]
	if !ok || acc.Password != creds.Password {
		s.logger.Info("Login rejected", zap.String("user", creds.Username))
		writeJSON(w, nil)
		return
	}

	token := uuid.NewString()
	s.tokens[token] = acc.Username
	writeJSON(w, domain.AuthResult{
		UserToken:              token,
		WalletBalance:          acc.Balance,
		ShowTermsAndConditions: acc.ShowTermAndCondition,
		InfoMessage:            acc.InfoMessage,
	})
}

func (s *Server) previewVoucher(format domain.OutputFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.PreviewRequest
		if !s.decode(w, r, &req) {
			return
		}
		if _, ok := s.products[req.ProductCode]; !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown product %d", req.ProductCode))
			return
		}
		if err := s.validate.Var(string(req.VoucherLayout), "required,voucher_layout"); err != nil {
			writeError(w, http.StatusBadRequest, "invalid voucher layout")
			return
		}

		writeJSON(w, domain.PreviewResult{
			Link: fmt.Sprintf("%s/preview/%d-%s.%s", s.baseLink, req.ProductCode, req.VoucherLayout, strings.ToLower(string(format))),
		})
	}
}

func (s *Server) createShopOrderID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserToken string `json:"userToken"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.tokens[req.UserToken]
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid user token")
		return
	}

	id := s.allocateOrderID()
	s.issued[id] = user
	writeJSON(w, struct {
		ShopOrderID string `json:"shopOrderId"`
	}{id})
}

func (s *Server) checkout(format domain.OutputFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var order domain.Order
		if !s.decode(w, r, &order) {
			return
		}
		if err := s.validate.Struct(order); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		user, ok := s.tokens[order.UserToken]
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid user token")
			return
		}
		if format == domain.FormatPDF && !s.hasPageFormat(order.PageFormatID) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown page format %d", order.PageFormatID))
			return
		}

		var total int64
		for _, p := range order.Positions {
			product, ok := s.products[p.ProductCode]
			if !ok {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown product %d", p.ProductCode))
				return
			}
			total += product.Price
		}
		if total != order.Total {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("total %d does not match cart value %d", order.Total, total))
			return
		}

		shopOrderID := order.ShopOrderID
		switch {
		case shopOrderID == "":
			shopOrderID = s.allocateOrderID()
		case s.issued[shopOrderID] != user:
			writeError(w, http.StatusBadRequest, "unknown shop order id")
			return
		}
		if _, done := s.orders[shopOrderID]; done {
			writeError(w, http.StatusConflict, "order already checked out")
			return
		}

		acc := s.accounts[user]
		if acc.Balance < total {
			writeError(w, http.StatusPaymentRequired, "insufficient wallet balance")
			return
		}
		acc.Balance -= total

		cart := domain.CartResponse{
			Link: fmt.Sprintf("%s/download/%s.%s", s.baseLink, shopOrderID, strings.ToLower(string(format))),
			ShoppingCart: domain.RawCart{
				ShopOrderID: shopOrderID,
				VoucherList: domain.RawVoucherList{Voucher: s.vouchers(order.Positions)},
			},
		}
		s.orders[shopOrderID] = placedOrder{owner: user, cart: cart}

		resp := domain.CheckoutResponse{CartResponse: cart}
		balance := acc.Balance
		if s.legacy {
			resp.LegacyWalletBalance = &balance
		} else {
			resp.WalletBalance = &balance
		}

		s.logger.Info("Cart checked out",
			zap.String("shop_order_id", shopOrderID),
			zap.String("format", string(format)),
			zap.Int64("total", total),
			zap.Int64("wallet_balance", balance),
		)
		writeJSON(w, resp)
	}
}

func (s *Server) retrieveOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.RetrieveOrderRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.tokens[req.UserToken]
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid user token")
		return
	}
	placed, ok := s.orders[req.ShopOrderID]
	if !ok || placed.owner != user {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, placed.cart)
}

// Balance reports the current wallet balance of a user.
func (s *Server) Balance(username string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[username]
	if !ok {
		return 0, false
	}
	return acc.Balance, true
}

// allocateOrderID must be called with s.mu held.
func (s *Server) allocateOrderID() string {
	id := strconv.FormatInt(s.nextOrderID, 10)
	s.nextOrderID++
	return id
}

// vouchers must be called with s.mu held.
func (s *Server) vouchers(positions []domain.Position) []domain.RawVoucher {
	out := make([]domain.RawVoucher, 0, len(positions))
	for _, p := range positions {
		v := domain.RawVoucher{
			VoucherID: strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:20],
		}
		if s.products[p.ProductCode].Tracked {
			s.nextTrackID++
			v.TrackID = fmt.Sprintf("RR%09dDE", s.nextTrackID)
		}
		out = append(out, v)
	}
	return out
}

func (s *Server) hasPageFormat(id int) bool {
	for _, f := range s.formats {
		if f.ID == id {
			return true
		}
	}
	return false
}
