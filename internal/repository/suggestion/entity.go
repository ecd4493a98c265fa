package suggestion

import (
	"time"

	"github.com/google/uuid"
	"github.com/softmindsol/stone-identifier-be/internal/domains/suggestion"
	"gorm.io/gorm"
)

// SuggestionEntity represents the database entity for user feedback
type SuggestionEntity struct {
	ID         string         `gorm:"primaryKey;type:char(36);not null"`
	UserID     string         `gorm:"column:user_id;type:char(36);index;not null"`
	GemstoneID string         `gorm:"column:gemstone_id;type:char(36);index"`
	Type       string         `gorm:"type:varchar(40);not null"`
	Message    string         `gorm:"type:text;not null"`
	Email      string         `gorm:"type:varchar(191)"`
	Photos     []string       `gorm:"type:json;serializer:json"`
	Status     string         `gorm:"type:varchar(20);index;default:pending"`
	CreatedAt  time.Time      `gorm:"autoCreateTime(3)"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime(3)"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (SuggestionEntity) TableName() string {
	return "suggestions"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (s *SuggestionEntity) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// ToDomain converts SuggestionEntity to domain Suggestion
func (s *SuggestionEntity) ToDomain() *suggestion.Suggestion {
	return &suggestion.Suggestion{
		ID:         s.ID,
		UserID:     s.UserID,
		GemstoneID: s.GemstoneID,
		Type:       s.Type,
		Message:    s.Message,
		Email:      s.Email,
		Photos:     s.Photos,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// FromDomain converts domain Suggestion to SuggestionEntity
func (s *SuggestionEntity) FromDomain(d *suggestion.Suggestion) {
	s.ID = d.ID
	s.UserID = d.UserID
	s.GemstoneID = d.GemstoneID
	s.Type = d.Type
	s.Message = d.Message
	s.Email = d.Email
	s.Photos = d.Photos
	s.Status = d.Status
	s.CreatedAt = d.CreatedAt
	s.UpdatedAt = d.UpdatedAt
}

// NewSuggestionEntityFromDomain creates a new SuggestionEntity from domain Suggestion
func NewSuggestionEntityFromDomain(d *suggestion.Suggestion) *SuggestionEntity {
	entity := &SuggestionEntity{}
	entity.FromDomain(d)
	return entity
}
