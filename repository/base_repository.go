package repository

import (
	"context"

	"tipapi/config"

	"gorm.io/gorm"
)

// BaseRepository provides transaction management capabilities for database operations.
type BaseRepository interface {
	Begin(ctx context.Context) *gorm.DB
	Conn(ctx context.Context) *gorm.DB
}

type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a new base repository instance with database connection.
func NewBaseRepository() BaseRepository {
	return NewBaseRepositoryWithDB(config.DB)
}

// NewBaseRepositoryWithDB creates a base repository bound to db.
func NewBaseRepositoryWithDB(db *gorm.DB) BaseRepository {
	return &baseRepository{db: db}
}

// Begin starts a transaction carrying ctx.
func (r *baseRepository) Begin(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Begin()
}

// Conn returns a session carrying ctx for non-transactional reads.
func (r *baseRepository) Conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}
