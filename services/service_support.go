package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tipapi/config"
	"tipapi/models"
	"tipapi/pkg/apperrors"
	"tipapi/repository"
	"tipapi/services/dto"
)

// PageSettings bounds caller-supplied page sizes.
type PageSettings struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPageSettings reads page size bounds from config, falling back to 20/100.
func DefaultPageSettings() PageSettings {
	p := PageSettings{DefaultSize: config.Cfg.DefaultPageSize, MaxSize: config.Cfg.MaxPageSize}
	if p.DefaultSize <= 0 {
		p.DefaultSize = 20
	}
	if p.MaxSize < p.DefaultSize {
		p.MaxSize = 100
	}
	return p
}

// resolve turns a caller page request into a repository query.
// Size <= 0 takes the default and sizes above the maximum are clamped.
// A negative page, unknown sort field or unknown direction is a validation error.
func (p PageSettings) resolve(req dto.PageRequest, columns repository.SortColumns) (repository.PageQuery, error) {
	if req.Page < 0 {
		return repository.PageQuery{}, apperrors.Validation(fmt.Sprintf("page must not be negative: %d", req.Page), nil)
	}

	size := req.Size
	if size <= 0 {
		size = p.DefaultSize
	}
	if size > p.MaxSize {
		size = p.MaxSize
	}

	sortBy := strings.TrimSpace(req.SortBy)
	if sortBy == "" {
		sortBy = "id"
	}
	column, ok := columns.Resolve(sortBy)
	if !ok {
		return repository.PageQuery{}, apperrors.Validation(fmt.Sprintf("unsupported sort field: %s", sortBy), nil)
	}

	var desc bool
	switch strings.ToLower(strings.TrimSpace(req.SortDirection)) {
	case "", dto.SortAsc:
	case dto.SortDesc:
		desc = true
	default:
		return repository.PageQuery{}, apperrors.Validation(fmt.Sprintf("unsupported sort direction: %s", req.SortDirection), nil)
	}

	return repository.PageQuery{Page: req.Page, Size: size, SortColumn: column, Desc: desc}, nil
}

// runInTx executes fn in one transaction, committing only when fn succeeds.
func runInTx(ctx context.Context, baseRepo repository.BaseRepository, fn func(tx *gorm.DB) error) error {
	tx := baseRepo.Begin(ctx)
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true
	return nil
}

func actorOrDefault(actor string) string {
	if strings.TrimSpace(actor) == "" {
		return models.DefaultActor
	}
	return actor
}
