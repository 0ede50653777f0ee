package testimonials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/storage"
	"folio/models"
)

func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("id-%02d", n), nil
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	}
}

func newTestStore(t *testing.T, mem *storage.Memory) *Store {
	t.Helper()
	return NewStore(context.Background(), mem, WithIDGenerator(sequentialIDs()), WithClock(fixedClock()))
}

func candidate(name string) Candidate {
	return Candidate{Name: name, Role: "Engineer", Review: "Great to work with " + name, Rating: 5}
}

func names(items []Testimonial) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestLoadEmptyStorage(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, storage.NewMemory(nil))
	assert.Empty(t, store.List())
	assert.NotNil(t, store.List())
}

func TestLoadMalformedDataIsEmpty(t *testing.T) {
	t.Parallel()

	mem := storage.NewMemory(map[string]string{models.KeyTestimonials: "[{not json"})
	store := newTestStore(t, mem)
	assert.Empty(t, store.List())
}

func TestLoadUnreadableStorageIsEmpty(t *testing.T) {
	t.Parallel()

	mem := storage.NewMemory(map[string]string{models.KeyTestimonials: "[]"})
	mem.FailReads(true)
	store := newTestStore(t, mem)
	assert.Empty(t, store.Load(context.Background()))
}

func TestSubmitBuildsTestimonial(t *testing.T) {
	t.Parallel()

	mem := storage.NewMemory(nil)
	store := newTestStore(t, mem)

	got, err := store.Submit(context.Background(), Candidate{Name: "  Ada ", Role: " CTO ", Review: " Sharp. ", Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, Testimonial{ID: "id-01", Name: "Ada", Role: "CTO", Review: "Sharp.", Rating: 4, Date: "Oct 19, 2026"}, got)
	assert.Equal(t, []Testimonial{got}, store.List())

	persisted, err := Decode(mem.Snapshot()[models.KeyTestimonials])
	require.NoError(t, err)
	assert.Equal(t, []Testimonial{got}, persisted)
}

func TestFourSubmissionsEvictOldest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := storage.NewMemory(nil)
	store := newTestStore(t, mem)

	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := store.Submit(ctx, candidate(name))
		require.NoError(t, err)
		require.LessOrEqual(t, store.Len(), Capacity)
	}

	assert.Equal(t, []string{"D", "C", "B"}, names(store.List()))

	persisted, err := Decode(mem.Snapshot()[models.KeyTestimonials])
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "B"}, names(persisted))
}

func TestLengthNeverExceedsCapacity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, storage.NewMemory(nil))
	for i := 0; i < 20; i++ {
		_, err := store.Submit(ctx, candidate(fmt.Sprintf("visitor-%d", i)))
		require.NoError(t, err)
		require.LessOrEqual(t, store.Len(), Capacity)
	}
	assert.Equal(t, []string{"visitor-19", "visitor-18", "visitor-17"}, names(store.List()))
}

func TestEmptyNameFailsValidationWithoutMutation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := storage.NewMemory(nil)
	store := newTestStore(t, mem)
	_, err := store.Submit(ctx, candidate("A"))
	require.NoError(t, err)
	before := mem.Snapshot()
	writes := mem.Writes()

	c := candidate("B")
	c.Name = "   "
	_, err = store.Submit(ctx, c)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Field("name"))
	assert.Equal(t, []string{"A"}, names(store.List()))
	assert.Equal(t, before, mem.Snapshot())
	assert.Equal(t, writes, mem.Writes())
}

func TestValidationCoversEveryField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate Candidate
		field     string
	}{
		{"empty role", Candidate{Name: "A", Role: "", Review: "ok", Rating: 3}, "role"},
		{"blank review", Candidate{Name: "A", Role: "Dev", Review: "\n\t", Rating: 3}, "review"},
		{"zero rating", Candidate{Name: "A", Role: "Dev", Review: "ok", Rating: 0}, "rating"},
		{"rating too high", Candidate{Name: "A", Role: "Dev", Review: "ok", Rating: 6}, "rating"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newTestStore(t, storage.NewMemory(nil))
			_, err := store.Submit(context.Background(), tt.candidate)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Field(tt.field), verr.Error())
			assert.Empty(t, store.List())
		})
	}
}

func TestPersistenceFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := storage.NewMemory(nil)
	store := newTestStore(t, mem)
	_, err := store.Submit(ctx, candidate("A"))
	require.NoError(t, err)

	mem.FailWrites(true)
	_, err = store.Submit(ctx, candidate("B"))

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.True(t, errors.Is(err, storage.ErrUnavailable))
	assert.Equal(t, "B", perr.Testimonial.Name)
	assert.Equal(t, []string{"A"}, names(store.List()))

	adopted := store.Adopt(perr.Testimonial)
	assert.Equal(t, []string{"B", "A"}, names(adopted))
	assert.Equal(t, []string{"A"}, func() []string {
		items, err := Decode(mem.Snapshot()[models.KeyTestimonials])
		require.NoError(t, err)
		return names(items)
	}())
}

func TestNilStorageReportsPersistenceError(t *testing.T) {
	t.Parallel()

	store := NewStore(context.Background(), nil)
	_, err := store.Submit(context.Background(), candidate("A"))
	var perr *PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for n := 0; n <= Capacity; n++ {
		n := n
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			mem := storage.NewMemory(nil)
			store := newTestStore(t, mem)
			for i := 0; i < n; i++ {
				_, err := store.Submit(ctx, candidate(fmt.Sprintf("v%d", i)))
				require.NoError(t, err)
			}
			reloaded := NewStore(ctx, mem)
			assert.Equal(t, store.List(), reloaded.List())
		})
	}
}

func TestSubscribersSeeNewCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, storage.NewMemory(nil))
	var seen [][]string
	unsubscribe := store.Subscribe(func(items []Testimonial) {
		seen = append(seen, names(items))
	})

	_, err := store.Submit(ctx, candidate("A"))
	require.NoError(t, err)
	_, err = store.Submit(ctx, Candidate{})
	require.Error(t, err)
	unsubscribe()
	_, err = store.Submit(ctx, candidate("B"))
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"A"}}, seen)
}

func TestListReturnsCopy(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, storage.NewMemory(nil))
	_, err := store.Submit(context.Background(), candidate("A"))
	require.NoError(t, err)

	items := store.List()
	items[0].Name = "mutated"
	assert.Equal(t, "A", store.List()[0].Name)
}

func TestDefaultIDsAreTimeOrdered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(ctx, storage.NewMemory(nil))
	first, err := store.Submit(ctx, candidate("A"))
	require.NoError(t, err)
	second, err := store.Submit(ctx, candidate("B"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Less(t, first.ID, second.ID)
}

func TestLongSubmissionsAreAccepted(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, storage.NewMemory(nil))
	name := strings.Repeat("N", 101)
	review := strings.Repeat("r", 2001)

	got, err := store.Submit(context.Background(), Candidate{Name: name, Role: "Engineer", Review: review, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, review, got.Review)
}
