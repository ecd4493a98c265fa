package gem

import (
	"time"

	"github.com/google/uuid"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"gorm.io/gorm"
)

// GemstoneEntity represents the database entity for a reference gemstone.
// The display sections are stored as a single JSON document since the API
// always reads them together.
type GemstoneEntity struct {
	ID        string       `gorm:"primaryKey;type:char(36);not null"`
	StoneName string       `gorm:"column:stone_name;type:varchar(191);uniqueIndex;not null"`
	VarietyOf string       `gorm:"column:variety_of;type:varchar(191)"`
	Albums    []string     `gorm:"type:json;serializer:json"`
	KnownAs   []string     `gorm:"column:known_as;type:json;serializer:json"`
	Tags      []gem.Tag    `gorm:"type:json;serializer:json"`
	Sections  gem.Sections `gorm:"type:json;serializer:json"`
	CreatedAt time.Time    `gorm:"autoCreateTime(3)"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime(3)"`
}

// TableName returns the table name for GORM
func (GemstoneEntity) TableName() string {
	return "gemstones"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (g *GemstoneEntity) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

// ToDomain converts GemstoneEntity to domain Gemstone
func (g *GemstoneEntity) ToDomain() *gem.Gemstone {
	return &gem.Gemstone{
		ID:        g.ID,
		StoneName: g.StoneName,
		VarietyOf: g.VarietyOf,
		Albums:    g.Albums,
		KnownAs:   g.KnownAs,
		Tags:      g.Tags,
		Sections:  g.Sections,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// FromDomain converts domain Gemstone to GemstoneEntity
func (g *GemstoneEntity) FromDomain(d *gem.Gemstone) {
	g.ID = d.ID
	g.StoneName = d.StoneName
	g.VarietyOf = d.VarietyOf
	g.Albums = d.Albums
	g.KnownAs = d.KnownAs
	g.Tags = d.Tags
	g.Sections = d.Sections
	g.CreatedAt = d.CreatedAt
	g.UpdatedAt = d.UpdatedAt
}
