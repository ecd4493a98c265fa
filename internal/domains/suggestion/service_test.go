package suggestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

type memSuggestionRepo struct {
	items map[string]*Suggestion
}

func newMemSuggestionRepo() *memSuggestionRepo {
	return &memSuggestionRepo{items: make(map[string]*Suggestion)}
}

func (m *memSuggestionRepo) Create(ctx context.Context, s *Suggestion) error {
	cp := *s
	m.items[s.ID] = &cp
	return nil
}

func (m *memSuggestionRepo) GetByID(ctx context.Context, id string) (*Suggestion, error) {
	if s, ok := m.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, ErrSuggestionNotFound
}

func (m *memSuggestionRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]Suggestion, int64, error) {
	var out []Suggestion
	for _, s := range m.items {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memSuggestionRepo) ListAll(ctx context.Context, offset, limit int) ([]Suggestion, int64, error) {
	var out []Suggestion
	for _, s := range m.items {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *memSuggestionRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Suggestion, int64, error) {
	var out []Suggestion
	for _, s := range m.items {
		if s.Status == status {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memSuggestionRepo) UpdateStatus(ctx context.Context, id, status string) (*Suggestion, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, ErrSuggestionNotFound
	}
	s.Status = status
	cp := *s
	return &cp, nil
}

type oneStoneRepo struct{}

func (oneStoneRepo) GetByID(ctx context.Context, id string) (*gem.Gemstone, error) {
	if id == "gem-1" {
		return &gem.Gemstone{ID: "gem-1", StoneName: "Amethyst"}, nil
	}
	return nil, gem.ErrGemstoneNotFound
}

func (oneStoneRepo) FindByName(ctx context.Context, name string) (*gem.Gemstone, error) {
	return nil, gem.ErrGemstoneNotFound
}

func (oneStoneRepo) FindManyByNames(ctx context.Context, names []string) ([]gem.Gemstone, error) {
	return nil, nil
}

func (oneStoneRepo) ListPage(ctx context.Context, offset, limit int) ([]gem.Gemstone, error) {
	return nil, nil
}

func TestSubmitStoneFeedback(t *testing.T) {
	repo := newMemSuggestionRepo()
	svc := NewSuggestionService(repo, oneStoneRepo{}, Logger.Nop())

	created, err := svc.SubmitStoneFeedback(context.Background(), "user-1", StoneFeedbackRequest{
		GemstoneID: "gem-1",
		Type:       TypeErrorInContent,
		Message:    "hardness is wrong",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, "gem-1", created.GemstoneID)

	_, err = svc.SubmitStoneFeedback(context.Background(), "user-1", StoneFeedbackRequest{
		GemstoneID: "missing",
		Type:       TypeLikeContent,
		Message:    "great",
	})
	assert.ErrorIs(t, err, gem.ErrGemstoneNotFound, "stone feedback requires an existing gemstone")
}

func TestSubmitAppFeedback(t *testing.T) {
	repo := newMemSuggestionRepo()
	svc := NewSuggestionService(repo, oneStoneRepo{}, Logger.Nop())

	created, err := svc.SubmitAppFeedback(context.Background(), "user-1", AppFeedbackRequest{
		Message: "add dark mode",
		Email:   "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, TypeAppSuggestion, created.Type)
	assert.Equal(t, StatusPending, created.Status)
	assert.Empty(t, created.GemstoneID)
}

func TestStatusLifecycle(t *testing.T) {
	repo := newMemSuggestionRepo()
	svc := NewSuggestionService(repo, oneStoneRepo{}, Logger.Nop())

	created, err := svc.SubmitAppFeedback(context.Background(), "user-1", AppFeedbackRequest{Message: "hi"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(context.Background(), created.ID, StatusReviewed)
	require.NoError(t, err)
	assert.Equal(t, StatusReviewed, updated.Status)

	_, err = svc.SetStatus(context.Background(), created.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	pending, _, err := svc.ListByStatus(context.Background(), StatusPending, 0, 20)
	require.NoError(t, err)
	assert.Empty(t, pending)

	reviewed, _, err := svc.ListByStatus(context.Background(), StatusReviewed, 0, 20)
	require.NoError(t, err)
	assert.Len(t, reviewed, 1)

	_, _, err = svc.ListByStatus(context.Background(), "nonsense", 0, 20)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
