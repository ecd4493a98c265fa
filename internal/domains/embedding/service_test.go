package embedding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softmindsol/stone-identifier-be/internal/database/dbtypes"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

type fakeGemRepo struct {
	stones []gem.Gemstone
	err    error
}

func (f *fakeGemRepo) GetByID(ctx context.Context, id string) (*gem.Gemstone, error) {
	for i := range f.stones {
		if f.stones[i].ID == id {
			return &f.stones[i], nil
		}
	}
	return nil, gem.ErrGemstoneNotFound
}

func (f *fakeGemRepo) FindByName(ctx context.Context, name string) (*gem.Gemstone, error) {
	return nil, gem.ErrGemstoneNotFound
}

func (f *fakeGemRepo) FindManyByNames(ctx context.Context, names []string) ([]gem.Gemstone, error) {
	return nil, nil
}

func (f *fakeGemRepo) ListPage(ctx context.Context, offset, limit int) ([]gem.Gemstone, error) {
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.stones) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.stones) {
		end = len(f.stones)
	}
	return f.stones[offset:end], nil
}

type fakeStore struct {
	mu      sync.Mutex
	records map[string]*StoneEmbedding // keyed by stone ID
	saves   int
	creates int
	findErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*StoneEmbedding)}
}

func (f *fakeStore) FindByStoneID(ctx context.Context, stoneID string) (*StoneEmbedding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	if rec, ok := f.records[stoneID]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, ErrEmbeddingNotFound
}

func (f *fakeStore) Create(ctx context.Context, e *StoneEmbedding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	cp := *e
	f.records[e.StoneID] = &cp
	return nil
}

func (f *fakeStore) Save(ctx context.Context, e *StoneEmbedding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	cp := *e
	f.records[e.StoneID] = &cp
	return nil
}

type fakeEmbedder struct {
	mu      sync.Mutex
	calls   int
	failFor map[string]bool // embedding texts that should fail
	block   chan struct{}   // when set, Embed waits until closed
	started chan struct{}   // signals first Embed call
	once    sync.Once
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) (dbtypes.Vector, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if f.block != nil {
		<-f.block
	}
	if f.failFor[text] {
		return nil, errors.New("provider unavailable")
	}
	return dbtypes.Vector{0.1, 0.2, 0.3}, nil
}

func (f *fakeEmbedder) Model() string { return "fake-embedding-model" }

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testStone(id, name, description string) gem.Gemstone {
	g := gem.Gemstone{ID: id, StoneName: name}
	g.Sections.Overview.Description = description
	return g
}

func newTestService(gems gem.GemstoneRepository, store EmbeddingStore, embedder *fakeEmbedder) EmbeddingService {
	return NewEmbeddingService(gems, store, embedder, NewNopPacer(), Logger.Nop())
}

func TestRunBulkGeneration_CreatesMissingEmbeddings(t *testing.T) {
	stones := make([]gem.Gemstone, 0, 25)
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("stone-%02d", i)
		stones = append(stones, testStone(id, "Stone "+id, "a purple quartz variety"))
	}
	gems := &fakeGemRepo{stones: stones}
	store := newFakeStore()
	embedder := &fakeEmbedder{}
	svc := newTestService(gems, store, embedder)

	stats, err := svc.RunBulkGeneration(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, stats.Processed)
	assert.Equal(t, 25, stats.Created)
	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, 0, stats.Errors)
	assert.Equal(t, 0, stats.Skipped)
	assert.Len(t, store.records, 25)

	rec := store.records["stone-00"]
	require.NotNil(t, rec)
	assert.Equal(t, "fake-embedding-model", rec.SourceModel)
	assert.NotEmpty(t, rec.EmbeddingText)
	assert.NotEmpty(t, rec.EmbeddingVector)
}

func TestRunBulkGeneration_EmptyTable(t *testing.T) {
	svc := newTestService(&fakeGemRepo{}, newFakeStore(), &fakeEmbedder{})

	stats, err := svc.RunBulkGeneration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

func TestRunBulkGeneration_NeverTouchesExistingEmbeddings(t *testing.T) {
	gems := &fakeGemRepo{stones: []gem.Gemstone{
		testStone("a", "Amethyst", "purple quartz"),
		testStone("b", "Beryl", "green cyclosilicate"),
	}}
	store := newFakeStore()
	store.records["a"] = &StoneEmbedding{
		ID:              "existing-id",
		StoneID:         "a",
		EmbeddingText:   "old text",
		EmbeddingVector: dbtypes.Vector{9, 9},
	}
	embedder := &fakeEmbedder{}
	svc := newTestService(gems, store, embedder)

	stats, err := svc.RunBulkGeneration(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 0, stats.Updated)
	// the pre-existing record is byte for byte untouched
	assert.Equal(t, "old text", store.records["a"].EmbeddingText)
	assert.Equal(t, dbtypes.Vector{9, 9}, store.records["a"].EmbeddingVector)
	assert.Equal(t, 0, store.saves)
	assert.Equal(t, 1, embedder.callCount())
}

func TestRunBulkGeneration_ProviderFailureDoesNotAbortBatch(t *testing.T) {
	gems := &fakeGemRepo{stones: []gem.Gemstone{
		testStone("a", "Amethyst", "purple quartz"),
		testStone("b", "Beryl", "bad description"),
		testStone("c", "Calcite", "carbonate mineral"),
	}}
	store := newFakeStore()
	embedder := &fakeEmbedder{failFor: map[string]bool{
		"beryl bad description": true,
	}}
	svc := newTestService(gems, store, embedder)

	stats, err := svc.RunBulkGeneration(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Processed)
	assert.Equal(t, 2, stats.Created)
	assert.Equal(t, 1, stats.Errors)
	assert.Contains(t, store.records, "a")
	assert.NotContains(t, store.records, "b")
	assert.Contains(t, store.records, "c")
}

func TestRunBulkGeneration_SkipsStonesWithoutText(t *testing.T) {
	gems := &fakeGemRepo{stones: []gem.Gemstone{
		{ID: "empty"}, // no name, no sections
		testStone("b", "Beryl", "green cyclosilicate"),
	}}
	store := newFakeStore()
	embedder := &fakeEmbedder{}
	svc := newTestService(gems, store, embedder)

	stats, err := svc.RunBulkGeneration(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Errors)
	assert.Equal(t, 1, embedder.callCount())
}

func TestRunBulkGeneration_ListFailurePropagates(t *testing.T) {
	gems := &fakeGemRepo{err: errors.New("connection reset")}
	svc := newTestService(gems, newFakeStore(), &fakeEmbedder{})

	_, err := svc.RunBulkGeneration(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 0")
}

func TestRunBulkGeneration_SingleFlight(t *testing.T) {
	gems := &fakeGemRepo{stones: []gem.Gemstone{
		testStone("a", "Amethyst", "purple quartz"),
	}}
	store := newFakeStore()
	embedder := &fakeEmbedder{
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	svc := newTestService(gems, store, embedder)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstStats Stats
	var firstErr error
	go func() {
		defer wg.Done()
		firstStats, firstErr = svc.RunBulkGeneration(context.Background())
	}()

	// wait until the first run is inside the provider call
	select {
	case <-embedder.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first run never reached the provider")
	}

	secondStats, secondErr := svc.RunBulkGeneration(context.Background())
	require.NoError(t, secondErr)
	assert.Equal(t, Stats{}, secondStats, "concurrent run must return zero stats")

	close(embedder.block)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.Equal(t, 1, firstStats.Created)

	// guard must have reset; a fresh run proceeds normally
	thirdStats, thirdErr := svc.RunBulkGeneration(context.Background())
	require.NoError(t, thirdErr)
	assert.Equal(t, 1, thirdStats.Processed)
}

func TestUpdateEmbedding_CreatesWhenAbsent(t *testing.T) {
	gems := &fakeGemRepo{stones: []gem.Gemstone{
		testStone("a", "Amethyst", "purple quartz"),
	}}
	store := newFakeStore()
	svc := newTestService(gems, store, &fakeEmbedder{})

	result := svc.UpdateEmbedding(context.Background(), "a")
	require.True(t, result.Success)
	assert.Contains(t, result.Message, "Created embedding for Amethyst")
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 0, store.saves)
}

func TestUpdateEmbedding_OverwritesExistingInPlace(t *testing.T) {
	gems := &fakeGemRepo{stones: []gem.Gemstone{
		testStone("a", "Amethyst", "purple quartz"),
	}}
	store := newFakeStore()
	oldTime := time.Now().Add(-24 * time.Hour)
	store.records["a"] = &StoneEmbedding{
		ID:              "keep-this-id",
		StoneID:         "a",
		StoneName:       "Amethyst",
		EmbeddingText:   "stale",
		EmbeddingVector: dbtypes.Vector{9, 9},
		Timestamp:       oldTime,
	}
	svc := newTestService(gems, store, &fakeEmbedder{})

	result := svc.UpdateEmbedding(context.Background(), "a")
	require.True(t, result.Success)
	assert.Contains(t, result.Message, "Updated embedding for Amethyst")

	rec := store.records["a"]
	assert.Equal(t, "keep-this-id", rec.ID, "update must not allocate a new record")
	assert.NotEqual(t, "stale", rec.EmbeddingText)
	assert.Equal(t, dbtypes.Vector{0.1, 0.2, 0.3}, rec.EmbeddingVector)
	assert.True(t, rec.Timestamp.After(oldTime))
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 0, store.creates)
}

func TestUpdateEmbedding_UnknownStone(t *testing.T) {
	embedder := &fakeEmbedder{}
	svc := newTestService(&fakeGemRepo{}, newFakeStore(), embedder)

	result := svc.UpdateEmbedding(context.Background(), "nope")
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "gemstone with ID nope not found")
	assert.Equal(t, 0, embedder.callCount(), "provider must not be called for unknown stones")
}

func TestUpdateEmbedding_NoSearchableText(t *testing.T) {
	gems := &fakeGemRepo{stones: []gem.Gemstone{{ID: "empty"}}}
	embedder := &fakeEmbedder{}
	svc := newTestService(gems, newFakeStore(), embedder)

	result := svc.UpdateEmbedding(context.Background(), "empty")
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "no searchable text")
	assert.Equal(t, 0, embedder.callCount())
}
