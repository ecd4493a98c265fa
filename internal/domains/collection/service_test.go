package collection

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

type memCollectionRepo struct {
	entries map[string]*Entry
}

func newMemCollectionRepo() *memCollectionRepo {
	return &memCollectionRepo{entries: make(map[string]*Entry)}
}

func (m *memCollectionRepo) Create(ctx context.Context, entry *Entry) error {
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *memCollectionRepo) GetByID(ctx context.Context, id string) (*Entry, error) {
	if e, ok := m.entries[id]; ok && e.IsActive {
		cp := *e
		return &cp, nil
	}
	return nil, ErrEntryNotFound
}

func (m *memCollectionRepo) List(ctx context.Context, userID string, query ListQuery) ([]Entry, int64, error) {
	var out []Entry
	for _, e := range m.entries {
		if e.UserID != userID || !e.IsActive {
			continue
		}
		if query.Wishlist && !e.IsWishlist {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (m *memCollectionRepo) Update(ctx context.Context, id string, updates UpdateEntryRequest) (*Entry, error) {
	e, ok := m.entries[id]
	if !ok || !e.IsActive {
		return nil, ErrEntryNotFound
	}
	if updates.Name != nil {
		e.Name = *updates.Name
	}
	if updates.Notes != nil {
		e.Notes = *updates.Notes
	}
	cp := *e
	return &cp, nil
}

func (m *memCollectionRepo) ToggleWishlist(ctx context.Context, id string) (bool, error) {
	e, ok := m.entries[id]
	if !ok || !e.IsActive {
		return false, ErrEntryNotFound
	}
	e.IsWishlist = !e.IsWishlist
	return e.IsWishlist, nil
}

func (m *memCollectionRepo) Delete(ctx context.Context, id string) error {
	e, ok := m.entries[id]
	if !ok || !e.IsActive {
		return ErrEntryNotFound
	}
	e.IsActive = false
	return nil
}

func (m *memCollectionRepo) GetStats(ctx context.Context, userID string) (*Stats, error) {
	stats := &Stats{RarityCounts: map[string]int64{}}
	for _, e := range m.entries {
		if e.UserID != userID || !e.IsActive {
			continue
		}
		stats.TotalStones++
		if e.IsWishlist {
			stats.WishlistCount++
		}
	}
	return stats, nil
}

type stubGemRepo struct {
	stones map[string]*gem.Gemstone
}

func (s *stubGemRepo) GetByID(ctx context.Context, id string) (*gem.Gemstone, error) {
	if g, ok := s.stones[id]; ok {
		return g, nil
	}
	return nil, gem.ErrGemstoneNotFound
}

func (s *stubGemRepo) FindByName(ctx context.Context, name string) (*gem.Gemstone, error) {
	return nil, gem.ErrGemstoneNotFound
}

func (s *stubGemRepo) FindManyByNames(ctx context.Context, names []string) ([]gem.Gemstone, error) {
	return nil, nil
}

func (s *stubGemRepo) ListPage(ctx context.Context, offset, limit int) ([]gem.Gemstone, error) {
	return nil, nil
}

func newTestCollectionService(repo CollectionRepository) CollectionService {
	gems := &stubGemRepo{stones: map[string]*gem.Gemstone{
		"gem-1": {ID: "gem-1", StoneName: "Amethyst"},
	}}
	return NewCollectionService(repo, gems, Logger.Nop())
}

func TestSaveGemstone(t *testing.T) {
	repo := newMemCollectionRepo()
	svc := newTestCollectionService(repo)

	entry, err := svc.SaveGemstone(context.Background(), "user-1", "gem-1", CreateEntryRequest{
		Name:     "My first amethyst",
		Locality: "Brazil",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "Amethyst", entry.IdentifiedAs, "identification is denormalized from the reference stone")
	assert.True(t, entry.IsActive)

	_, err = svc.SaveGemstone(context.Background(), "user-1", "missing-gem", CreateEntryRequest{Name: "x"})
	assert.ErrorIs(t, err, gem.ErrGemstoneNotFound)
}

func TestOwnershipEnforced(t *testing.T) {
	repo := newMemCollectionRepo()
	svc := newTestCollectionService(repo)

	entry, err := svc.SaveGemstone(context.Background(), "user-1", "gem-1", CreateEntryRequest{Name: "mine"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "user-2", entry.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Update(context.Background(), "user-2", entry.ID, UpdateEntryRequest{})
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.Delete(context.Background(), "user-2", entry.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.ToggleWishlist(context.Background(), "user-2", entry.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// owner still has full access
	got, err := svc.Get(context.Background(), "user-1", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
}

func TestSoftDelete(t *testing.T) {
	repo := newMemCollectionRepo()
	svc := newTestCollectionService(repo)

	entry, err := svc.SaveGemstone(context.Background(), "user-1", "gem-1", CreateEntryRequest{Name: "mine"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "user-1", entry.ID))

	_, err = svc.Get(context.Background(), "user-1", entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	entries, total, err := svc.List(context.Background(), "user-1", ListQuery{Page: 1, Limit: 20, SortBy: SortRecentlyAdded})
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, total)
}

func TestToggleWishlist(t *testing.T) {
	repo := newMemCollectionRepo()
	svc := newTestCollectionService(repo)

	entry, err := svc.SaveGemstone(context.Background(), "user-1", "gem-1", CreateEntryRequest{Name: "mine"})
	require.NoError(t, err)
	assert.False(t, entry.IsWishlist)

	on, err := svc.ToggleWishlist(context.Background(), "user-1", entry.ID)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := svc.ToggleWishlist(context.Background(), "user-1", entry.ID)
	require.NoError(t, err)
	assert.False(t, off)
}

func TestListWishlistFilters(t *testing.T) {
	repo := newMemCollectionRepo()
	svc := newTestCollectionService(repo)

	first, err := svc.SaveGemstone(context.Background(), "user-1", "gem-1", CreateEntryRequest{Name: "keeper"})
	require.NoError(t, err)
	_, err = svc.SaveGemstone(context.Background(), "user-1", "gem-1", CreateEntryRequest{Name: "wanted", IsWishlist: true})
	require.NoError(t, err)

	all, total, err := svc.List(context.Background(), "user-1", ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.EqualValues(t, 2, total)

	wish, total, err := svc.ListWishlist(context.Background(), "user-1", ListQuery{})
	require.NoError(t, err)
	require.Len(t, wish, 1)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "wanted", wish[0].Name)
	assert.NotEqual(t, first.ID, wish[0].ID)
}

func TestInvalidSortKeyRejected(t *testing.T) {
	svc := newTestCollectionService(newMemCollectionRepo())

	_, _, err := svc.List(context.Background(), "user-1", ListQuery{SortBy: "shiny-first"})
	assert.ErrorIs(t, err, ErrInvalidSort)
}
