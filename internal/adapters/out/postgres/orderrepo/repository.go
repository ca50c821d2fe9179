package orderrepo

import (
	"context"
	"errors"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderStore implements the OrderStore port using GORM.
// Mutating operations rely on row-level locking so that concurrent writers
// never lose each other's updates.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// Put inserts or overwrites the full order record. Overwriting an existing
// id is not an error: the new record replaces the old one entirely.
func (r *GormOrderStore) Put(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Patch merges the non-nil patch fields into the existing record inside a
// transaction, holding a row lock for the read-merge-write cycle. Returns
// false without error when no record exists under the id. A patch fenced on
// a dispatch sequence that has moved on is a no-op and still returns true.
func (r *GormOrderStore) Patch(ctx context.Context, id kernel.UUID, patch order.Patch) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		found = true
		if patch.IsStaleFor(dto.DispatchSeq) {
			return nil
		}

		applyPatch(&dto, patch)
		return tx.Save(&dto).Error
	})

	return found, err
}

// Get retrieves an order by ID.
func (r *GormOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountByStatus returns the number of stored orders per status.
func (r *GormOrderStore) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	type statusCount struct {
		Status int
		Count  int
	}

	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(rows))
	for _, row := range rows {
		counts[order.Status(row.Status)] = row.Count
	}

	return counts, nil
}

// applyPatch merges the non-nil patch fields into the DTO. A pointer to the
// empty string clears a previously recorded error.
func applyPatch(dto *OrderDTO, patch order.Patch) {
	if patch.Status != nil {
		dto.Status = int(*patch.Status)
	}

	if patch.TrackingID != nil {
		trackingID := *patch.TrackingID
		dto.TrackingID = &trackingID
	}

	if patch.LastError != nil {
		if *patch.LastError == "" {
			dto.LastError = nil
		} else {
			lastError := *patch.LastError
			dto.LastError = &lastError
		}
	}

	if patch.DispatchSeq != nil {
		dto.DispatchSeq = *patch.DispatchSeq
	}
}
