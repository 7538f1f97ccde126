package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRecord is the row holding one collection document.
type CollectionRecord struct {
	Name      string         `gorm:"primaryKey;type:text"`
	Document  datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CollectionRecord) TableName() string {
	return "collections"
}

// PostgresDocumentStore keeps one jsonb row per collection.
type PostgresDocumentStore struct {
	db *gorm.DB
}

var _ DocumentStore = (*PostgresDocumentStore)(nil)

func NewPostgresDocumentStore(db *gorm.DB) *PostgresDocumentStore {
	return &PostgresDocumentStore{db: db}
}

func (s *PostgresDocumentStore) LoadDocument(ctx context.Context, name string) ([]byte, error) {
	var rec CollectionRecord
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Document), nil
}

func (s *PostgresDocumentStore) SaveDocument(ctx context.Context, name string, doc []byte) error {
	rec := CollectionRecord{Name: name, Document: datatypes.JSON(doc), UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&rec).Error
}
