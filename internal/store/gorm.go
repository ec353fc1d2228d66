package store

import (
	"context"
	"errors"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requirementCounter is a single-row table backing REQ-NNN assignment.
// The row is locked FOR UPDATE inside the create transaction, so id
// assignment and record insertion form one atomic step.
type requirementCounter struct {
	ID   uint   `gorm:"primaryKey"`
	Next uint64 `gorm:"not null"`
}

func (requirementCounter) TableName() string { return "requirement_counters" }

// GormStore is the durable Store implementation.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&model.Requirement{}, &requirementCounter{})
}

func (s *GormStore) Create(ctx context.Context, req *model.Requirement) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter requirementCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&counter, 1).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = requirementCounter{ID: 1, Next: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		req.ID = FormatID(counter.Next)
		counter.Next++
		if err := tx.Save(&counter).Error; err != nil {
			return err
		}
		return tx.Create(req).Error
	})
}

func (s *GormStore) Get(ctx context.Context, id string) (*model.Requirement, error) {
	var rec model.Requirement
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) List(ctx context.Context) ([]model.Requirement, error) {
	var recs []model.Requirement
	if err := s.db.WithContext(ctx).Order("created_at asc, id asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *GormStore) Update(ctx context.Context, id string, mutate func(*model.Requirement) error) (*model.Requirement, error) {
	var out *model.Requirement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.Requirement
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		createdAt := rec.CreatedAt
		if err := mutate(&rec); err != nil {
			return err
		}
		rec.ID = id
		rec.CreatedAt = createdAt
		rec.UpdatedAt = bump(rec.UpdatedAt)

		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		out = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Requirement{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Store = (*GormStore)(nil)
