package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/domain"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testEvent() CheckoutEvent {
	res := domain.ShoppingCartResult{
		OrderID:  "1000",
		Link:     "http://stub.local/download/1000.pdf",
		Vouchers: []domain.Voucher{{ID: "A1"}, {ID: "B2", TrackingCode: "RR000000001DE"}},
	}
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	return NewCheckoutEvent(res, domain.FormatPDF, 4915, at)
}

func TestPublishCheckout(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "voucher-checkouts", zap.NewNop())

	ev := testEvent()
	require.NoError(t, p.PublishCheckout(context.Background(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	require.Equal(t, "1000", string(msg.Key))
	require.Equal(t, ev.CheckedOutAt, msg.Time)

	var got CheckoutEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, "PDF", got.OutputFormat)
	require.Equal(t, int64(4915), got.WalletBalance)
	require.Equal(t, ev.Vouchers, got.Vouchers)
	require.Equal(t, time.UTC, ev.CheckedOutAt.Location())

	require.NoError(t, p.Close())
	require.True(t, w.closed)
}

func TestPublishCheckoutError(t *testing.T) {
	boom := errors.New("broker down")
	p := newKafkaPublisher(&fakeWriter{err: boom}, "voucher-checkouts", zap.NewNop())

	err := p.PublishCheckout(context.Background(), testEvent())
	require.ErrorIs(t, err, boom)
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	require.NoError(t, p.PublishCheckout(context.Background(), testEvent()))
	require.NoError(t, p.Close())
}
