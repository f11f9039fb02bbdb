package repository

import (
	"clinic-queue/internal/domain/entity"
	domainRepo "clinic-queue/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository implements the domain repository for one entity kind.
// Associations are never written implicitly: saveAssociations replaces the
// relations the kind owns, and cascade names the many-to-many relations whose
// join rows are dropped together with the entity.
type GormRepository[T any, P entity.Pointer[T]] struct {
	preloads         []string
	cascade          []string
	saveAssociations func(db *gorm.DB, item P) error
}

var _ domainRepo.Repository[entity.Doctor] = (*GormRepository[entity.Doctor, *entity.Doctor])(nil)

func (r *GormRepository[T, P]) query(db *gorm.DB) *gorm.DB {
	for _, relation := range r.preloads {
		db = db.Preload(relation)
	}
	return db
}

func (r *GormRepository[T, P]) GetAll(db *gorm.DB) ([]*T, error) {
	var items []*T
	err := r.query(db).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository[T, P]) GetAllWhere(db *gorm.DB, predicate func(*T) bool) ([]*T, error) {
	items, err := r.GetAll(db)
	if err != nil {
		return nil, err
	}

	matched := make([]*T, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (r *GormRepository[T, P]) GetOne(db *gorm.DB, predicate func(*T) bool) (*T, error) {
	items, err := r.GetAllWhere(db, predicate)
	if err != nil {
		return nil, err
	}

	switch len(items) {
	case 0:
		return nil, nil
	case 1:
		return items[0], nil
	default:
		return nil, domainRepo.ErrMultipleMatches
	}
}

func (r *GormRepository[T, P]) Add(db *gorm.DB, item *T) error {
	return r.AddRange(db, []*T{item})
}

func (r *GormRepository[T, P]) AddRange(db *gorm.DB, items []*T) error {
	for _, item := range items {
		if P(item).GetID() == uuid.Nil {
			P(item).SetID(uuid.New())
		}
		if err := db.Omit(clause.Associations).Create(item).Error; err != nil {
			return err
		}
		if err := r.writeAssociations(db, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *GormRepository[T, P]) Remove(db *gorm.DB, item *T) error {
	return r.RemoveRange(db, []*T{item})
}

func (r *GormRepository[T, P]) RemoveRange(db *gorm.DB, items []*T) error {
	for _, item := range items {
		tx := db
		if len(r.cascade) > 0 {
			tx = tx.Select(r.cascade)
		}
		if err := tx.Delete(item).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormRepository[T, P]) AddOrUpdate(db *gorm.DB, item *T) error {
	return r.AddOrUpdateRange(db, []*T{item})
}

func (r *GormRepository[T, P]) AddOrUpdateRange(db *gorm.DB, items []*T) error {
	for _, item := range items {
		if P(item).GetID() == uuid.Nil {
			if err := r.Add(db, item); err != nil {
				return err
			}
			continue
		}
		if err := db.Omit(clause.Associations).Save(item).Error; err != nil {
			return err
		}
		if err := r.writeAssociations(db, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *GormRepository[T, P]) writeAssociations(db *gorm.DB, item *T) error {
	if r.saveAssociations == nil {
		return nil
	}
	return r.saveAssociations(db, P(item))
}
