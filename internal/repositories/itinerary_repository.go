package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
	"wayfare/pkg/utils"
)

type ItineraryRepository interface {
	Save(ctx context.Context, record *db_models.ItineraryRecord) error
	GetByID(ctx context.Context, id string) (*db_models.ItineraryRecord, error)
	List(ctx context.Context, page int, pageSize int) ([]db_models.ItineraryRecord, error)
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

type itineraryRepository struct {
	db *gorm.DB
}

func (r *itineraryRepository) Save(ctx context.Context, record *db_models.ItineraryRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*db_models.ItineraryRecord, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	var record db_models.ItineraryRecord
	if err := r.db.WithContext(ctx).Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrItineraryNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &record, nil
}

func (r *itineraryRepository) List(ctx context.Context, page int, pageSize int) ([]db_models.ItineraryRecord, error) {
	var records []db_models.ItineraryRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return records, nil
}

// NewDisabledItineraryRepository backs the archive when no database is
// configured. Writes are silently skipped; lookups report the archive as not
// configured.
func NewDisabledItineraryRepository() ItineraryRepository {
	return disabledItineraryRepository{}
}

type disabledItineraryRepository struct{}

func (disabledItineraryRepository) Save(ctx context.Context, record *db_models.ItineraryRecord) error {
	return nil
}

func (disabledItineraryRepository) GetByID(ctx context.Context, id string) (*db_models.ItineraryRecord, error) {
	return nil, utils.ErrArchiveNotConfigured
}

func (disabledItineraryRepository) List(ctx context.Context, page int, pageSize int) ([]db_models.ItineraryRecord, error) {
	return nil, utils.ErrArchiveNotConfigured
}
