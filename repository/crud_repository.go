package repository

import (
	"gorm.io/gorm"
)

// crudRepository holds the persistence operations shared by every resource.
// Each method uses tx when non-nil, otherwise the repository's own handle.
type crudRepository[T any] struct {
	db      *gorm.DB
	pk      string
	preload []string
}

func newCrudRepository[T any](db *gorm.DB, pk string, preload ...string) crudRepository[T] {
	return crudRepository[T]{db: db, pk: pk, preload: preload}
}

func (r *crudRepository[T]) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// query starts a query on T with associations preloaded.
func (r *crudRepository[T]) query(tx *gorm.DB) *gorm.DB {
	var zero T
	db := r.conn(tx).Model(&zero)
	for _, p := range r.preload {
		db = db.Preload(p, func(d *gorm.DB) *gorm.DB { return d.Order("position") })
	}
	return db
}

// findByID returns gorm.ErrRecordNotFound when no row matches.
func (r *crudRepository[T]) findByID(tx *gorm.DB, id uint) (*T, error) {
	var rec T
	if err := r.query(tx).Where(r.pk+" = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *crudRepository[T]) findAll(tx *gorm.DB) ([]T, error) {
	return r.findWhere(tx, "")
}

// findWhere returns rows matching the condition ordered by primary key. An empty condition matches all rows.
func (r *crudRepository[T]) findWhere(tx *gorm.DB, cond string, args ...interface{}) ([]T, error) {
	db := r.query(tx)
	if cond != "" {
		db = db.Where(cond, args...)
	}
	var recs []T
	if err := db.Order(r.pk).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// findPage returns one page of rows matching the condition and the total matching count.
func (r *crudRepository[T]) findPage(tx *gorm.DB, q PageQuery, cond string, args ...interface{}) ([]T, int64, error) {
	var zero T
	countDB := r.conn(tx).Model(&zero)
	if cond != "" {
		countDB = countDB.Where(cond, args...)
	}
	var total int64
	if err := countDB.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db := r.query(tx)
	if cond != "" {
		db = db.Where(cond, args...)
	}
	var recs []T
	if err := paginate(db, q, r.pk).Find(&recs).Error; err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

func (r *crudRepository[T]) countWhere(tx *gorm.DB, cond string, args ...interface{}) (int64, error) {
	var zero T
	db := r.conn(tx).Model(&zero)
	if cond != "" {
		db = db.Where(cond, args...)
	}
	var n int64
	if err := db.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *crudRepository[T]) existsWhere(tx *gorm.DB, cond string, args ...interface{}) (bool, error) {
	n, err := r.countWhere(tx, cond, args...)
	return n > 0, err
}

func (r *crudRepository[T]) existsByID(tx *gorm.DB, id uint) (bool, error) {
	return r.existsWhere(tx, r.pk+" = ?", id)
}

func (r *crudRepository[T]) count(tx *gorm.DB) (int64, error) {
	return r.countWhere(tx, "")
}

// deleteByID removes the row; a missing row is not an error.
func (r *crudRepository[T]) deleteByID(tx *gorm.DB, id uint) error {
	var zero T
	return r.conn(tx).Where(r.pk+" = ?", id).Delete(&zero).Error
}

// deactivate clears the soft-delete flag and records the actor.
func (r *crudRepository[T]) deactivate(tx *gorm.DB, id uint, updatedBy string) error {
	var zero T
	return r.conn(tx).Model(&zero).Where(r.pk+" = ?", id).
		Updates(map[string]interface{}{"is_active": false, "updated_by": updatedBy}).Error
}
