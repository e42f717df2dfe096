package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TemirB/internetmarke/internal/domain"
	"github.com/TemirB/internetmarke/internal/observability"
)

func a4() domain.PageFormat {
	return domain.PageFormat{
		ID: 1,
		PageFormatSpec: domain.PageFormatSpec{
			Name:     "DIN A4 Normalpapier",
			PageType: "REGULARPAGE",
			Layout: domain.PageLayout{
				Size:       domain.Dimension{X: 210, Y: 297},
				LabelCount: domain.LabelCount{LabelX: 1, LabelY: 1},
			},
		},
	}
}

func letter() domain.PageFormat {
	return domain.PageFormat{
		ID:             27,
		PageFormatSpec: domain.PageFormatSpec{Name: "Brief DIN lang"},
	}
}

type countingFetcher struct {
	calls   int
	formats []domain.PageFormat
	err     error
}

func (f *countingFetcher) fetch(context.Context) ([]domain.PageFormat, error) {
	f.calls++
	return f.formats, f.err
}

func TestStore(t *testing.T) {
	s := NewStore[string]("PRODUCT", 0, time.Hour)

	require.Equal(t, "PRODUCT_11", s.Key("11"))

	_, err := s.Get("11")
	require.ErrorIs(t, err, domain.ErrNotFound)

	s.Set("11", "Standardbrief")
	s.Set("21", "Kompaktbrief")

	v, err := s.Get("11")
	require.NoError(t, err)
	require.Equal(t, "Standardbrief", v)
	require.Equal(t, 2, s.Len())
	require.Equal(t, map[string]string{"11": "Standardbrief", "21": "Kompaktbrief"}, s.Entries())

	s.Purge()
	require.Equal(t, 0, s.Len())
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore[int]("X", 0, 20*time.Millisecond)
	s.Set("a", 1)

	time.Sleep(60 * time.Millisecond)

	require.Equal(t, 0, s.Len())
	_, err := s.Get("a")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Entries())
}

func TestLoadFetchesOnceWithinTTL(t *testing.T) {
	m := observability.NewInmem(10)
	c := NewPageFormats(time.Hour, m)
	f := &countingFetcher{formats: []domain.PageFormat{a4(), letter()}}

	first, err := c.Load(context.Background(), f.fetch)
	require.NoError(t, err)

	second, err := c.Load(context.Background(), f.fetch)
	require.NoError(t, err)

	require.Equal(t, 1, f.calls)
	require.Equal(t, first, second)
	require.Equal(t, a4(), second[1])

	hits, misses := m.CacheStats()
	require.Equal(t, 1, hits)
	require.Equal(t, 1, misses)
}

func TestLoadRefetchesAfterExpiry(t *testing.T) {
	c := NewPageFormats(20*time.Millisecond, nil)
	f := &countingFetcher{formats: []domain.PageFormat{a4()}}

	_, err := c.Load(context.Background(), f.fetch)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	got, err := c.Load(context.Background(), f.fetch)
	require.NoError(t, err)
	require.Equal(t, 2, f.calls)
	require.Equal(t, map[int]domain.PageFormat{1: a4()}, got)
}

func TestLoadFetchError(t *testing.T) {
	c := NewPageFormats(time.Hour, nil)
	fetchErr := errors.New("remote down")
	f := &countingFetcher{err: fetchErr}

	got, err := c.Load(context.Background(), f.fetch)
	require.ErrorIs(t, err, fetchErr)
	require.Nil(t, got)

	// nothing was cached, so the next call fetches again
	f.err = nil
	f.formats = []domain.PageFormat{a4()}
	_, err = c.Load(context.Background(), f.fetch)
	require.NoError(t, err)
	require.Equal(t, 2, f.calls)
}

func TestGetAndClear(t *testing.T) {
	c := NewPageFormats(time.Hour, nil)

	_, err := c.Get(1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	f := &countingFetcher{formats: []domain.PageFormat{a4(), letter()}}
	_, err = c.Load(context.Background(), f.fetch)
	require.NoError(t, err)

	got, err := c.Get(27)
	require.NoError(t, err)
	require.Equal(t, letter(), got)

	c.Clear()
	_, err = c.Get(27)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.Load(context.Background(), f.fetch)
	require.NoError(t, err)
	require.Equal(t, 2, f.calls)
}

func TestStoredPayloadHasNoID(t *testing.T) {
	c := NewPageFormats(time.Hour, nil)
	f := &countingFetcher{formats: []domain.PageFormat{a4()}}
	_, err := c.Load(context.Background(), f.fetch)
	require.NoError(t, err)

	entries := c.store.Entries()
	require.Equal(t, a4().PageFormatSpec, entries["1"])
}

func TestLookupRecordsOneOutcomePerCall(t *testing.T) {
	m := observability.NewInmem(10)
	c := NewPageFormats(20*time.Millisecond, m)
	f := &countingFetcher{formats: []domain.PageFormat{a4(), letter()}}
	ctx := context.Background()

	got, err := c.Lookup(ctx, 1, f.fetch)
	require.NoError(t, err)
	require.Equal(t, a4(), got)
	got, err = c.Lookup(ctx, 27, f.fetch)
	require.NoError(t, err)
	require.Equal(t, letter(), got)

	hits, misses := m.CacheStats()
	require.Equal(t, 1, hits)
	require.Equal(t, 1, misses)
	require.Equal(t, 1, f.calls)

	time.Sleep(60 * time.Millisecond)

	got, err = c.Lookup(ctx, 27, f.fetch)
	require.NoError(t, err)
	require.Equal(t, letter(), got)

	hits, misses = m.CacheStats()
	require.Equal(t, 1, hits)
	require.Equal(t, 2, misses)
	require.Equal(t, 2, f.calls)

	// the list is fresh again, an unknown id does not refetch
	_, err = c.Lookup(ctx, 999, f.fetch)
	require.ErrorIs(t, err, domain.ErrNotFound)

	hits, misses = m.CacheStats()
	require.Equal(t, 1, hits)
	require.Equal(t, 3, misses)
	require.Equal(t, 2, f.calls)
}
