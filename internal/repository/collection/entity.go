package collection

import (
	"time"

	"github.com/google/uuid"
	"github.com/softmindsol/stone-identifier-be/internal/domains/collection"
	"gorm.io/gorm"
)

// EntryEntity represents the database entity for a collection entry
type EntryEntity struct {
	ID              string         `gorm:"primaryKey;type:char(36);not null"`
	UserID          string         `gorm:"column:user_id;type:char(36);index;not null"`
	GemstoneID      string         `gorm:"column:gemstone_id;type:char(36);index;not null"`
	Name            string         `gorm:"type:varchar(255);not null"`
	SerialNumber    string         `gorm:"column:serial_number;type:varchar(100)"`
	Photos          []string       `gorm:"type:json;serializer:json"`
	AcquisitionDate *time.Time     `gorm:"column:acquisition_date"`
	AcquisitionCost float64        `gorm:"column:acquisition_cost"`
	Currency        string         `gorm:"type:varchar(8)"`
	Locality        string         `gorm:"type:varchar(255)"`
	StoneType       string         `gorm:"column:stone_type;type:varchar(100)"`
	StoneSize       string         `gorm:"column:stone_size;type:varchar(100)"`
	Notes           string         `gorm:"type:text"`
	IdentifiedAs    string         `gorm:"column:identified_as;type:varchar(191)"`
	Confidence      float64        `gorm:"type:double"`
	Tags            []string       `gorm:"type:json;serializer:json"`
	IsWishlist      bool           `gorm:"column:is_wishlist;default:false"`
	IsActive        bool           `gorm:"column:is_active;default:true"`
	CreatedAt       time.Time      `gorm:"autoCreateTime(3)"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime(3)"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (EntryEntity) TableName() string {
	return "collection_entries"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (e *EntryEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// ToDomain converts EntryEntity to domain Entry
func (e *EntryEntity) ToDomain() *collection.Entry {
	return &collection.Entry{
		ID:              e.ID,
		UserID:          e.UserID,
		GemstoneID:      e.GemstoneID,
		Name:            e.Name,
		SerialNumber:    e.SerialNumber,
		Photos:          e.Photos,
		AcquisitionDate: e.AcquisitionDate,
		AcquisitionCost: e.AcquisitionCost,
		Currency:        e.Currency,
		Locality:        e.Locality,
		StoneType:       e.StoneType,
		StoneSize:       e.StoneSize,
		Notes:           e.Notes,
		IdentifiedAs:    e.IdentifiedAs,
		Confidence:      e.Confidence,
		Tags:            e.Tags,
		IsWishlist:      e.IsWishlist,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// FromDomain converts domain Entry to EntryEntity
func (e *EntryEntity) FromDomain(d *collection.Entry) {
	e.ID = d.ID
	e.UserID = d.UserID
	e.GemstoneID = d.GemstoneID
	e.Name = d.Name
	e.SerialNumber = d.SerialNumber
	e.Photos = d.Photos
	e.AcquisitionDate = d.AcquisitionDate
	e.AcquisitionCost = d.AcquisitionCost
	e.Currency = d.Currency
	e.Locality = d.Locality
	e.StoneType = d.StoneType
	e.StoneSize = d.StoneSize
	e.Notes = d.Notes
	e.IdentifiedAs = d.IdentifiedAs
	e.Confidence = d.Confidence
	e.Tags = d.Tags
	e.IsWishlist = d.IsWishlist
	e.IsActive = d.IsActive
	e.CreatedAt = d.CreatedAt
	e.UpdatedAt = d.UpdatedAt
}

// NewEntryEntityFromDomain creates a new EntryEntity from domain Entry
func NewEntryEntityFromDomain(d *collection.Entry) *EntryEntity {
	entity := &EntryEntity{}
	entity.FromDomain(d)
	return entity
}
