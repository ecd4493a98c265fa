package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	runtimeembed "github.com/softmindsol/stone-identifier-be/internal/runtime/embedding"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

const pageSize = 10

const (
	stateIdle    = "idle"
	stateRunning = "running"
	eventStart   = "start"
	eventFinish  = "finish"
)

// EmbeddingService generates and maintains stone embeddings.
type EmbeddingService interface {
	// RunBulkGeneration walks every gemstone and creates embeddings for the
	// ones that lack them. A second call while one is in flight is a no-op
	// returning zero stats. Existing embeddings are never touched; only
	// UpdateEmbedding refreshes them.
	RunBulkGeneration(ctx context.Context) (Stats, error)

	// UpdateEmbedding regenerates the embedding for one gemstone, creating
	// the record when absent. It never returns an error; failures are
	// reported in the result.
	UpdateEmbedding(ctx context.Context, gemstoneID string) UpdateResult
}

type embeddingService struct {
	gems     gem.GemstoneRepository
	store    EmbeddingStore
	embedder runtimeembed.Embedder
	pacer    Pacer
	logger   *Logger.Logger
	// single-flight guard; scoped to this instance so tests can run
	// independent orchestrators
	state *fsm.FSM
}

// NewEmbeddingService creates an embedding service. A nil pacer falls back
// to the production fixed pacing.
func NewEmbeddingService(
	gems gem.GemstoneRepository,
	store EmbeddingStore,
	embedder runtimeembed.Embedder,
	pacer Pacer,
	logger *Logger.Logger,
) EmbeddingService {
	if pacer == nil {
		pacer = NewFixedPacer()
	}
	return &embeddingService{
		gems:     gems,
		store:    store,
		embedder: embedder,
		pacer:    pacer,
		logger:   logger,
		state: fsm.NewFSM(
			stateIdle,
			fsm.Events{
				{Name: eventStart, Src: []string{stateIdle}, Dst: stateRunning},
				{Name: eventFinish, Src: []string{stateRunning}, Dst: stateIdle},
			},
			fsm.Callbacks{},
		),
	}
}

// RunBulkGeneration implements EmbeddingService
func (s *embeddingService) RunBulkGeneration(ctx context.Context) (Stats, error) {
	var stats Stats

	if err := s.state.Event(ctx, eventStart); err != nil {
		s.logger.Warn("embedding generation already in progress, skipping")
		return stats, nil
	}
	// The guard must drop back to idle on every exit path, including an
	// error escaping the paging loop.
	defer func() {
		if err := s.state.Event(context.Background(), eventFinish); err != nil {
			s.logger.Errorf("failed to reset embedding run state: %v", err)
		}
	}()

	s.logger.Info("starting embedding generation for all gemstones")

	offset := 0
	for {
		page, err := s.gems.ListPage(ctx, offset, pageSize)
		if err != nil {
			return stats, fmt.Errorf("failed to list gemstones at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}

		s.logger.Infof("processing gemstones %d to %d", offset+1, offset+len(page))

		for i := range page {
			s.processStone(ctx, &page[i], &stats)
			s.pacer.AfterRecord(ctx)
		}

		offset += pageSize
		s.pacer.AfterPage(ctx)
	}

	s.logger.Infof("embedding generation completed: processed=%d created=%d updated=%d errors=%d skipped=%d",
		stats.Processed, stats.Created, stats.Updated, stats.Errors, stats.Skipped)
	return stats, nil
}

// processStone handles one gemstone within a bulk run. Failures are counted
// and logged, never propagated; one bad record must not abort the batch.
func (s *embeddingService) processStone(ctx context.Context, g *gem.Gemstone, stats *Stats) {
	stats.Processed++

	existing, err := s.store.FindByStoneID(ctx, g.ID)
	if err != nil && !errors.Is(err, ErrEmbeddingNotFound) {
		stats.Errors++
		s.logger.Errorf("error processing gemstone %s: %v", g.StoneName, err)
		return
	}

	text := BuildSearchableText(g)

	// Bulk runs only fill gaps. Refreshing stale embeddings is the
	// single-record path's job.
	if existing != nil {
		return
	}

	if text == "" {
		stats.Skipped++
		s.logger.Warnf("gemstone %s has no searchable text, skipping", g.StoneName)
		return
	}

	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		stats.Errors++
		s.logger.Errorf("error processing gemstone %s: %v", g.StoneName, err)
		return
	}

	rec := &StoneEmbedding{
		ID:              uuid.New().String(),
		StoneID:         g.ID,
		StoneName:       g.StoneName,
		EmbeddingText:   text,
		EmbeddingVector: vector,
		SourceModel:     s.embedder.Model(),
		Timestamp:       time.Now(),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		stats.Errors++
		s.logger.Errorf("error processing gemstone %s: %v", g.StoneName, err)
		return
	}

	stats.Created++
	s.logger.Infof("created embedding for %s with %d dimensions", g.StoneName, len(vector))
}

// UpdateEmbedding implements EmbeddingService
func (s *embeddingService) UpdateEmbedding(ctx context.Context, gemstoneID string) UpdateResult {
	g, err := s.gems.GetByID(ctx, gemstoneID)
	if err != nil {
		if errors.Is(err, gem.ErrGemstoneNotFound) {
			return UpdateResult{Success: false, Message: fmt.Sprintf("gemstone with ID %s not found", gemstoneID)}
		}
		s.logger.Errorf("error loading gemstone %s: %v", gemstoneID, err)
		return UpdateResult{Success: false, Message: fmt.Sprintf("error: %v", err)}
	}

	text := BuildSearchableText(g)
	if text == "" {
		return UpdateResult{Success: false, Message: fmt.Sprintf("gemstone %s has no searchable text", g.StoneName)}
	}

	existing, err := s.store.FindByStoneID(ctx, g.ID)
	if err != nil && !errors.Is(err, ErrEmbeddingNotFound) {
		s.logger.Errorf("error loading embedding for gemstone %s: %v", gemstoneID, err)
		return UpdateResult{Success: false, Message: fmt.Sprintf("error: %v", err)}
	}

	// Always regenerate; there is no stored fingerprint of prior input to
	// compare against.
	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		s.logger.Errorf("error generating embedding for gemstone %s: %v", gemstoneID, err)
		return UpdateResult{Success: false, Message: fmt.Sprintf("error: %v", err)}
	}

	if existing != nil {
		existing.EmbeddingText = text
		existing.EmbeddingVector = vector
		existing.Timestamp = time.Now()
		if err := s.store.Save(ctx, existing); err != nil {
			s.logger.Errorf("error saving embedding for gemstone %s: %v", gemstoneID, err)
			return UpdateResult{Success: false, Message: fmt.Sprintf("error: %v", err)}
		}
		return UpdateResult{
			Success: true,
			Message: fmt.Sprintf("Updated embedding for %s with %d dimensions", g.StoneName, len(vector)),
		}
	}

	rec := &StoneEmbedding{
		ID:              uuid.New().String(),
		StoneID:         g.ID,
		StoneName:       g.StoneName,
		EmbeddingText:   text,
		EmbeddingVector: vector,
		SourceModel:     s.embedder.Model(),
		Timestamp:       time.Now(),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		s.logger.Errorf("error creating embedding for gemstone %s: %v", gemstoneID, err)
		return UpdateResult{Success: false, Message: fmt.Sprintf("error: %v", err)}
	}
	return UpdateResult{
		Success: true,
		Message: fmt.Sprintf("Created embedding for %s with %d dimensions", g.StoneName, len(vector)),
	}
}
