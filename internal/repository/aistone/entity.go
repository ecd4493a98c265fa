package aistone

import (
	"time"

	"github.com/google/uuid"
	"github.com/softmindsol/stone-identifier-be/internal/database/dbtypes"
	"github.com/softmindsol/stone-identifier-be/internal/domains/embedding"
	"gorm.io/gorm"
)

// StoneEmbeddingEntity represents the database entity for a stone embedding
type StoneEmbeddingEntity struct {
	ID              string         `gorm:"primaryKey;type:char(36);not null"`
	StoneID         string         `gorm:"column:stone_id;type:char(36);uniqueIndex;not null"`
	StoneName       string         `gorm:"column:stone_name;type:varchar(191);not null"`
	EmbeddingText   string         `gorm:"column:embedding_text;type:text;not null"`
	EmbeddingVector dbtypes.Vector `gorm:"column:embedding_vector;type:longtext;not null"`
	SourceModel     string         `gorm:"column:source_model;type:varchar(100)"`
	Timestamp       time.Time      `gorm:"column:timestamp"`
	CreatedAt       time.Time      `gorm:"autoCreateTime(3)"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime(3)"`
}

// TableName returns the table name for GORM
func (StoneEmbeddingEntity) TableName() string {
	return "stone_embeddings"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (s *StoneEmbeddingEntity) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// ToDomain converts StoneEmbeddingEntity to domain StoneEmbedding
func (s *StoneEmbeddingEntity) ToDomain() *embedding.StoneEmbedding {
	return &embedding.StoneEmbedding{
		ID:              s.ID,
		StoneID:         s.StoneID,
		StoneName:       s.StoneName,
		EmbeddingText:   s.EmbeddingText,
		EmbeddingVector: s.EmbeddingVector,
		SourceModel:     s.SourceModel,
		Timestamp:       s.Timestamp,
	}
}

// FromDomain converts domain StoneEmbedding to StoneEmbeddingEntity
func (s *StoneEmbeddingEntity) FromDomain(d *embedding.StoneEmbedding) {
	s.ID = d.ID
	s.StoneID = d.StoneID
	s.StoneName = d.StoneName
	s.EmbeddingText = d.EmbeddingText
	s.EmbeddingVector = d.EmbeddingVector
	s.SourceModel = d.SourceModel
	s.Timestamp = d.Timestamp
}

// NewStoneEmbeddingEntityFromDomain creates a new entity from domain StoneEmbedding
func NewStoneEmbeddingEntityFromDomain(d *embedding.StoneEmbedding) *StoneEmbeddingEntity {
	entity := &StoneEmbeddingEntity{}
	entity.FromDomain(d)
	return entity
}
