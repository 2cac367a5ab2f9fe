package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

// ListingRecord is the gorm mapping of an advert row, used by the batch
// ingest path. The read side keeps using raw SQL.
type ListingRecord struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Fuente          string    `gorm:"column:fuente"`
	URL             string    `gorm:"column:url;uniqueIndex"`
	Zona            string    `gorm:"column:zona"`
	Titulo          string    `gorm:"column:titulo"`
	Descripcion     string    `gorm:"column:descripcion"`
	Precio          string    `gorm:"column:precio"`
	Caracteristica1 string    `gorm:"column:caracteristica_1"`
	Caracteristica2 string    `gorm:"column:caracteristica_2"`
	Caracteristica3 string    `gorm:"column:caracteristica_3"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (ListingRecord) TableName() string {
	return "anuncios"
}

// UpsertListings writes a batch of advert rows inside the given gorm
// transaction, replacing rows that share a URL.
func UpsertListings(tx *gorm.DB, batch []*models.RawListing) error {
	if len(batch) == 0 {
		return nil
	}

	records := make([]ListingRecord, 0, len(batch))
	for _, l := range batch {
		createdAt := l.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		records = append(records, ListingRecord{
			Fuente:          l.Fuente,
			URL:             l.URL,
			Zona:            l.Zona,
			Titulo:          l.Titulo,
			Descripcion:     l.Descripcion,
			Precio:          l.PrecioTexto,
			Caracteristica1: l.Caracteristica1,
			Caracteristica2: l.Caracteristica2,
			Caracteristica3: l.Caracteristica3,
			CreatedAt:       createdAt,
		})
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		UpdateAll: true,
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to upsert listings: %w", err)
	}

	return nil
}
