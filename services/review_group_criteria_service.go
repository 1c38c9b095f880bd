package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tipapi/models"
	"tipapi/pkg/apperrors"
	"tipapi/pkg/logger"
	"tipapi/pkg/metrics"
	"tipapi/repository"
	"tipapi/services/dto"
	"tipapi/services/mapper"
	"tipapi/utils"
)

const reviewGroupCriteriaResource = "ReviewGroupCriteria"

// ReviewGroupCriteriaService owns the business rules for review group criteria.
type ReviewGroupCriteriaService interface {
	FindByID(ctx context.Context, id uint) (*dto.ReviewGroupCriteriaDTO, error)
	FindAll(ctx context.Context) ([]dto.ReviewGroupCriteriaDTO, error)
	FindAllPaginated(ctx context.Context, req dto.PageRequest) (*dto.Page[dto.ReviewGroupCriteriaDTO], error)
	Create(ctx context.Context, in *dto.ReviewGroupCriteriaDTO, createdBy string) (*dto.ReviewGroupCriteriaDTO, error)
	Update(ctx context.Context, id uint, in *dto.ReviewGroupCriteriaDTO, updatedBy string) (*dto.ReviewGroupCriteriaDTO, error)
	Delete(ctx context.Context, id uint) error
	SoftDelete(ctx context.Context, id uint, updatedBy string) (*dto.ReviewGroupCriteriaDTO, error)

	FindByCriteriaType(ctx context.Context, criteriaType models.GroupCriteriaType) ([]dto.ReviewGroupCriteriaDTO, error)
	FindByCriteriaTypes(ctx context.Context, criteriaTypes []models.GroupCriteriaType) ([]dto.ReviewGroupCriteriaDTO, error)
	CountByCriteriaType(ctx context.Context, criteriaType models.GroupCriteriaType) (int64, error)
	SearchByCriteriaName(ctx context.Context, substring string, req dto.PageRequest) (*dto.Page[dto.ReviewGroupCriteriaDTO], error)
	FindByCriteriaNameContaining(ctx context.Context, substring string) ([]dto.ReviewGroupCriteriaDTO, error)
	ExistsByCriteriaName(ctx context.Context, name string) (bool, error)
	CriteriaTypes() []models.GroupCriteriaType
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type reviewGroupCriteriaService struct {
	baseRepo repository.BaseRepository
	repo     repository.ReviewGroupCriteriaRepository
	metrics  *metrics.Metrics
	paging   PageSettings
}

// NewReviewGroupCriteriaService creates a service backed by the global database connection.
func NewReviewGroupCriteriaService(m *metrics.Metrics) ReviewGroupCriteriaService {
	return &reviewGroupCriteriaService{
		baseRepo: repository.NewBaseRepository(),
		repo:     repository.NewReviewGroupCriteriaRepository(),
		metrics:  m,
		paging:   DefaultPageSettings(),
	}
}

// NewReviewGroupCriteriaServiceWithDeps creates a service with explicit collaborators.
func NewReviewGroupCriteriaServiceWithDeps(
	baseRepo repository.BaseRepository,
	repo repository.ReviewGroupCriteriaRepository,
	m *metrics.Metrics,
	paging PageSettings,
) ReviewGroupCriteriaService {
	return &reviewGroupCriteriaService{
		baseRepo: baseRepo,
		repo:     repo,
		metrics:  m,
		paging:   paging,
	}
}

func (s *reviewGroupCriteriaService) FindByID(ctx context.Context, id uint) (*dto.ReviewGroupCriteriaDTO, error) {
	logger.Infof("Finding ReviewGroupCriteria with ID: %d", id)
	rec, err := s.repo.FindByID(s.baseRepo.Conn(ctx), id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	out := mapper.ReviewGroupCriteriaToTransfer(rec)
	return &out, nil
}

func (s *reviewGroupCriteriaService) FindAll(ctx context.Context) ([]dto.ReviewGroupCriteriaDTO, error) {
	logger.Infof("Finding all ReviewGroupCriteria")
	return s.list(s.repo.FindAll(s.baseRepo.Conn(ctx)))
}

func (s *reviewGroupCriteriaService) FindAllPaginated(ctx context.Context, req dto.PageRequest) (*dto.Page[dto.ReviewGroupCriteriaDTO], error) {
	q, err := s.paging.resolve(req, repository.ReviewGroupCriteriaSortColumns)
	if err != nil {
		return nil, err
	}
	logger.Infof("Finding ReviewGroupCriteria page %d size %d sorted by %s", q.Page, q.Size, q.SortColumn)

	recs, total, err := s.repo.FindAllPaged(s.baseRepo.Conn(ctx), q)
	if err != nil {
		return nil, fmt.Errorf("failed to page review group criteria: %w", err)
	}
	page := dto.NewPage(mapper.ReviewGroupCriteriaListToTransfer(recs), q.Page, q.Size, total)
	return &page, nil
}

func (s *reviewGroupCriteriaService) Create(ctx context.Context, in *dto.ReviewGroupCriteriaDTO, createdBy string) (*dto.ReviewGroupCriteriaDTO, error) {
	if in == nil {
		return nil, apperrors.Validation("review group criteria is required", nil)
	}
	if err := utils.ValidateStruct(in); err != nil {
		return nil, apperrors.Validation("invalid review group criteria", err)
	}
	actor := actorOrDefault(createdBy)
	name := *in.CriteriaName
	logger.Infof("Creating ReviewGroupCriteria: %s by %s", name, actor)

	var rec *models.ReviewGroupCriteria
	err := runInTx(ctx, s.baseRepo, func(tx *gorm.DB) error {
		exists, err := s.repo.ExistsByName(tx, name)
		if err != nil {
			return fmt.Errorf("failed to check criteria name: %w", err)
		}
		if exists {
			return s.nameConflict(name)
		}

		rec = mapper.ReviewGroupCriteriaToRecord(in)
		rec.CreatedBy = actor
		rec.UpdatedBy = actor
		if err := s.repo.Save(tx, rec); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.nameConflict(name)
			}
			return fmt.Errorf("failed to create review group criteria: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementMutation("review_group_criteria", metrics.ActionCreated)
	logger.Infof("Created ReviewGroupCriteria with ID: %d", rec.ID)
	out := mapper.ReviewGroupCriteriaToTransfer(rec)
	return &out, nil
}

func (s *reviewGroupCriteriaService) Update(ctx context.Context, id uint, in *dto.ReviewGroupCriteriaDTO, updatedBy string) (*dto.ReviewGroupCriteriaDTO, error) {
	if in == nil {
		return nil, apperrors.Validation("review group criteria is required", nil)
	}
	if err := utils.ValidateStructPartial(in); err != nil {
		return nil, apperrors.Validation("invalid review group criteria", err)
	}
	actor := actorOrDefault(updatedBy)
	logger.Infof("Updating ReviewGroupCriteria with ID: %d by %s", id, actor)

	var rec *models.ReviewGroupCriteria
	err := runInTx(ctx, s.baseRepo, func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return s.lookupError(id, err)
		}

		if in.CriteriaName != nil && *in.CriteriaName != existing.CriteriaName {
			taken, err := s.repo.ExistsByNameExcludingID(tx, *in.CriteriaName, id)
			if err != nil {
				return fmt.Errorf("failed to check criteria name: %w", err)
			}
			if taken {
				return s.nameConflict(*in.CriteriaName)
			}
		}

		mapper.MergeReviewGroupCriteria(in, existing)
		existing.UpdatedBy = actor
		if err := s.repo.Save(tx, existing); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.nameConflict(existing.CriteriaName)
			}
			return fmt.Errorf("failed to update review group criteria: %w", err)
		}
		rec = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementMutation("review_group_criteria", metrics.ActionUpdated)
	logger.Infof("Updated ReviewGroupCriteria with ID: %d", id)
	out := mapper.ReviewGroupCriteriaToTransfer(rec)
	return &out, nil
}

func (s *reviewGroupCriteriaService) Delete(ctx context.Context, id uint) error {
	logger.Infof("Deleting ReviewGroupCriteria with ID: %d", id)
	err := runInTx(ctx, s.baseRepo, func(tx *gorm.DB) error {
		exists, err := s.repo.ExistsByID(tx, id)
		if err != nil {
			return fmt.Errorf("failed to check review group criteria %d: %w", id, err)
		}
		if !exists {
			return apperrors.NotFound(reviewGroupCriteriaResource, id)
		}
		if err := s.repo.DeleteByID(tx, id); err != nil {
			return fmt.Errorf("failed to delete review group criteria %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.IncrementMutation("review_group_criteria", metrics.ActionDeleted)
	logger.Infof("Deleted ReviewGroupCriteria with ID: %d", id)
	return nil
}

func (s *reviewGroupCriteriaService) SoftDelete(ctx context.Context, id uint, updatedBy string) (*dto.ReviewGroupCriteriaDTO, error) {
	actor := actorOrDefault(updatedBy)
	logger.Infof("Deactivating ReviewGroupCriteria with ID: %d by %s", id, actor)

	var rec *models.ReviewGroupCriteria
	err := runInTx(ctx, s.baseRepo, func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(tx, id); err != nil {
			return s.lookupError(id, err)
		}
		if err := s.repo.Deactivate(tx, id, actor); err != nil {
			return fmt.Errorf("failed to deactivate review group criteria %d: %w", id, err)
		}
		reloaded, err := s.repo.FindByID(tx, id)
		if err != nil {
			return s.lookupError(id, err)
		}
		rec = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementMutation("review_group_criteria", metrics.ActionDeactivated)
	out := mapper.ReviewGroupCriteriaToTransfer(rec)
	return &out, nil
}

func (s *reviewGroupCriteriaService) FindByCriteriaType(ctx context.Context, criteriaType models.GroupCriteriaType) ([]dto.ReviewGroupCriteriaDTO, error) {
	logger.Infof("Finding ReviewGroupCriteria by type: %s", criteriaType)
	return s.list(s.repo.FindByCriteriaType(s.baseRepo.Conn(ctx), criteriaType))
}

func (s *reviewGroupCriteriaService) FindByCriteriaTypes(ctx context.Context, criteriaTypes []models.GroupCriteriaType) ([]dto.ReviewGroupCriteriaDTO, error) {
	logger.Infof("Finding ReviewGroupCriteria by types: %v", criteriaTypes)
	return s.list(s.repo.FindByCriteriaTypes(s.baseRepo.Conn(ctx), criteriaTypes))
}

func (s *reviewGroupCriteriaService) CountByCriteriaType(ctx context.Context, criteriaType models.GroupCriteriaType) (int64, error) {
	n, err := s.repo.CountByCriteriaType(s.baseRepo.Conn(ctx), criteriaType)
	if err != nil {
		return 0, fmt.Errorf("failed to count review group criteria of type %s: %w", criteriaType, err)
	}
	return n, nil
}

func (s *reviewGroupCriteriaService) SearchByCriteriaName(ctx context.Context, substring string, req dto.PageRequest) (*dto.Page[dto.ReviewGroupCriteriaDTO], error) {
	q, err := s.paging.resolve(req, repository.ReviewGroupCriteriaSortColumns)
	if err != nil {
		return nil, err
	}
	logger.Infof("Searching ReviewGroupCriteria by name: %s", substring)

	recs, total, err := s.repo.SearchByName(s.baseRepo.Conn(ctx), substring, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search review group criteria: %w", err)
	}
	page := dto.NewPage(mapper.ReviewGroupCriteriaListToTransfer(recs), q.Page, q.Size, total)
	return &page, nil
}

func (s *reviewGroupCriteriaService) FindByCriteriaNameContaining(ctx context.Context, substring string) ([]dto.ReviewGroupCriteriaDTO, error) {
	logger.Infof("Finding ReviewGroupCriteria with name containing: %s", substring)
	return s.list(s.repo.FindByNameContaining(s.baseRepo.Conn(ctx), substring))
}

func (s *reviewGroupCriteriaService) ExistsByCriteriaName(ctx context.Context, name string) (bool, error) {
	exists, err := s.repo.ExistsByName(s.baseRepo.Conn(ctx), name)
	if err != nil {
		return false, fmt.Errorf("failed to check criteria name: %w", err)
	}
	return exists, nil
}

func (s *reviewGroupCriteriaService) CriteriaTypes() []models.GroupCriteriaType {
	return models.AllGroupCriteriaTypes()
}

func (s *reviewGroupCriteriaService) ExistsByID(ctx context.Context, id uint) (bool, error) {
	exists, err := s.repo.ExistsByID(s.baseRepo.Conn(ctx), id)
	if err != nil {
		return false, fmt.Errorf("failed to check review group criteria %d: %w", id, err)
	}
	return exists, nil
}

func (s *reviewGroupCriteriaService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(s.baseRepo.Conn(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to count review group criteria: %w", err)
	}
	return n, nil
}

func (s *reviewGroupCriteriaService) list(recs []models.ReviewGroupCriteria, err error) ([]dto.ReviewGroupCriteriaDTO, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to query review group criteria: %w", err)
	}
	return mapper.ReviewGroupCriteriaListToTransfer(recs), nil
}

func (s *reviewGroupCriteriaService) lookupError(id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(reviewGroupCriteriaResource, id)
	}
	return fmt.Errorf("failed to load review group criteria %d: %w", id, err)
}

func (s *reviewGroupCriteriaService) nameConflict(name string) error {
	s.metrics.IncrementMutation("review_group_criteria", metrics.ActionConflict)
	return apperrors.Conflict(apperrors.CodeCriteriaExists,
		fmt.Sprintf("%s with name already exists: %s", reviewGroupCriteriaResource, name))
}
