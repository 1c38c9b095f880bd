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

const reviewCycleGroupResource = "ReviewCycleGroup"

// ReviewCycleGroupService owns the business rules for review cycle groups.
type ReviewCycleGroupService interface {
	FindByID(ctx context.Context, id uint) (*dto.ReviewCycleGroupDTO, error)
	FindAll(ctx context.Context) ([]dto.ReviewCycleGroupDTO, error)
	FindAllPaginated(ctx context.Context, req dto.PageRequest) (*dto.Page[dto.ReviewCycleGroupDTO], error)
	Create(ctx context.Context, in *dto.ReviewCycleGroupDTO, createdBy string) (*dto.ReviewCycleGroupDTO, error)
	Update(ctx context.Context, id uint, in *dto.ReviewCycleGroupDTO, updatedBy string) (*dto.ReviewCycleGroupDTO, error)
	Delete(ctx context.Context, id uint) error
	SoftDelete(ctx context.Context, id uint, updatedBy string) (*dto.ReviewCycleGroupDTO, error)

	FindByReviewCycleID(ctx context.Context, reviewCycleID uint) ([]dto.ReviewCycleGroupDTO, error)
	FindByReviewTypeID(ctx context.Context, reviewTypeID uint) ([]dto.ReviewCycleGroupDTO, error)
	FindByReviewConditionID(ctx context.Context, reviewConditionID uint) ([]dto.ReviewCycleGroupDTO, error)
	FindByBooleanState(ctx context.Context, state bool) ([]dto.ReviewCycleGroupDTO, error)
	FindByValueInRange(ctx context.Context, value int64) ([]dto.ReviewCycleGroupDTO, error)
	FindByListOfIdisContaining(ctx context.Context, idi string) ([]dto.ReviewCycleGroupDTO, error)
	SearchByGroupName(ctx context.Context, substring string, req dto.PageRequest) (*dto.Page[dto.ReviewCycleGroupDTO], error)
	FindByGroupNameContaining(ctx context.Context, substring string) ([]dto.ReviewCycleGroupDTO, error)
	CountByReviewCycleID(ctx context.Context, reviewCycleID uint) (int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type reviewCycleGroupService struct {
	baseRepo repository.BaseRepository
	repo     repository.ReviewCycleGroupRepository
	metrics  *metrics.Metrics
	paging   PageSettings
}

// NewReviewCycleGroupService creates a service backed by the global database connection.
func NewReviewCycleGroupService(m *metrics.Metrics) ReviewCycleGroupService {
	return &reviewCycleGroupService{
		baseRepo: repository.NewBaseRepository(),
		repo:     repository.NewReviewCycleGroupRepository(),
		metrics:  m,
		paging:   DefaultPageSettings(),
	}
}

// NewReviewCycleGroupServiceWithDeps creates a service with explicit collaborators.
func NewReviewCycleGroupServiceWithDeps(
	baseRepo repository.BaseRepository,
	repo repository.ReviewCycleGroupRepository,
	m *metrics.Metrics,
	paging PageSettings,
) ReviewCycleGroupService {
	return &reviewCycleGroupService{
		baseRepo: baseRepo,
		repo:     repo,
		metrics:  m,
		paging:   paging,
	}
}

func (s *reviewCycleGroupService) FindByID(ctx context.Context, id uint) (*dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding ReviewCycleGroup with ID: %d", id)
	rec, err := s.repo.FindByID(s.baseRepo.Conn(ctx), id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	out := mapper.ReviewCycleGroupToTransfer(rec)
	return &out, nil
}

func (s *reviewCycleGroupService) FindAll(ctx context.Context) ([]dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding all ReviewCycleGroups")
	return s.list(s.repo.FindAll(s.baseRepo.Conn(ctx)))
}

func (s *reviewCycleGroupService) FindAllPaginated(ctx context.Context, req dto.PageRequest) (*dto.Page[dto.ReviewCycleGroupDTO], error) {
	q, err := s.paging.resolve(req, repository.ReviewCycleGroupSortColumns)
	if err != nil {
		return nil, err
	}
	logger.Infof("Finding ReviewCycleGroups page %d size %d sorted by %s", q.Page, q.Size, q.SortColumn)

	recs, total, err := s.repo.FindAllPaged(s.baseRepo.Conn(ctx), q)
	if err != nil {
		return nil, fmt.Errorf("failed to page review cycle groups: %w", err)
	}
	page := dto.NewPage(mapper.ReviewCycleGroupsToTransfer(recs), q.Page, q.Size, total)
	return &page, nil
}

func (s *reviewCycleGroupService) Create(ctx context.Context, in *dto.ReviewCycleGroupDTO, createdBy string) (*dto.ReviewCycleGroupDTO, error) {
	if in == nil {
		return nil, apperrors.Validation("review cycle group is required", nil)
	}
	if err := utils.ValidateStruct(in); err != nil {
		return nil, apperrors.Validation("invalid review cycle group", err)
	}
	actor := actorOrDefault(createdBy)
	name := *in.ReviewGroupName
	logger.Infof("Creating ReviewCycleGroup: %s by %s", name, actor)

	var rec *models.ReviewCycleGroup
	err := runInTx(ctx, s.baseRepo, func(tx *gorm.DB) error {
		exists, err := s.repo.ExistsByName(tx, name)
		if err != nil {
			return fmt.Errorf("failed to check review group name: %w", err)
		}
		if exists {
			return s.nameConflict(name)
		}

		rec = mapper.ReviewCycleGroupToRecord(in)
		rec.CreatedBy = actor
		rec.UpdatedBy = actor
		if err := s.repo.Save(tx, rec); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.nameConflict(name)
			}
			return fmt.Errorf("failed to create review cycle group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementMutation("review_cycle_group", metrics.ActionCreated)
	logger.Infof("Created ReviewCycleGroup with ID: %d", rec.ID)
	out := mapper.ReviewCycleGroupToTransfer(rec)
	return &out, nil
}

func (s *reviewCycleGroupService) Update(ctx context.Context, id uint, in *dto.ReviewCycleGroupDTO, updatedBy string) (*dto.ReviewCycleGroupDTO, error) {
	if in == nil {
		return nil, apperrors.Validation("review cycle group is required", nil)
	}
	if err := utils.ValidateStructPartial(in); err != nil {
		return nil, apperrors.Validation("invalid review cycle group", err)
	}
	actor := actorOrDefault(updatedBy)
	logger.Infof("Updating ReviewCycleGroup with ID: %d by %s", id, actor)

	var rec *models.ReviewCycleGroup
	err := runInTx(ctx, s.baseRepo, func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return s.lookupError(id, err)
		}

		if in.ReviewGroupName != nil && *in.ReviewGroupName != existing.ReviewGroupName {
			taken, err := s.repo.ExistsByNameExcludingID(tx, *in.ReviewGroupName, id)
			if err != nil {
				return fmt.Errorf("failed to check review group name: %w", err)
			}
			if taken {
				return s.nameConflict(*in.ReviewGroupName)
			}
		}

		mapper.MergeReviewCycleGroup(in, existing)
		existing.UpdatedBy = actor
		if err := s.repo.Save(tx, existing); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.nameConflict(existing.ReviewGroupName)
			}
			return fmt.Errorf("failed to update review cycle group: %w", err)
		}
		rec = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementMutation("review_cycle_group", metrics.ActionUpdated)
	logger.Infof("Updated ReviewCycleGroup with ID: %d", id)
	out := mapper.ReviewCycleGroupToTransfer(rec)
	return &out, nil
}

func (s *reviewCycleGroupService) Delete(ctx context.Context, id uint) error {
	logger.Infof("Deleting ReviewCycleGroup with ID: %d", id)
	err := runInTx(ctx, s.baseRepo, func(tx *gorm.DB) error {
		exists, err := s.repo.ExistsByID(tx, id)
		if err != nil {
			return fmt.Errorf("failed to check review cycle group %d: %w", id, err)
		}
		if !exists {
			return apperrors.NotFound(reviewCycleGroupResource, id)
		}
		if err := s.repo.DeleteByID(tx, id); err != nil {
			return fmt.Errorf("failed to delete review cycle group %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.IncrementMutation("review_cycle_group", metrics.ActionDeleted)
	logger.Infof("Deleted ReviewCycleGroup with ID: %d", id)
	return nil
}

func (s *reviewCycleGroupService) SoftDelete(ctx context.Context, id uint, updatedBy string) (*dto.ReviewCycleGroupDTO, error) {
	actor := actorOrDefault(updatedBy)
	logger.Infof("Deactivating ReviewCycleGroup with ID: %d by %s", id, actor)

	var rec *models.ReviewCycleGroup
	err := runInTx(ctx, s.baseRepo, func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(tx, id); err != nil {
			return s.lookupError(id, err)
		}
		if err := s.repo.Deactivate(tx, id, actor); err != nil {
			return fmt.Errorf("failed to deactivate review cycle group %d: %w", id, err)
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

	s.metrics.IncrementMutation("review_cycle_group", metrics.ActionDeactivated)
	out := mapper.ReviewCycleGroupToTransfer(rec)
	return &out, nil
}

func (s *reviewCycleGroupService) FindByReviewCycleID(ctx context.Context, reviewCycleID uint) ([]dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding ReviewCycleGroups by review cycle ID: %d", reviewCycleID)
	return s.list(s.repo.FindByReviewCycleID(s.baseRepo.Conn(ctx), reviewCycleID))
}

func (s *reviewCycleGroupService) FindByReviewTypeID(ctx context.Context, reviewTypeID uint) ([]dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding ReviewCycleGroups by review type ID: %d", reviewTypeID)
	return s.list(s.repo.FindByReviewTypeID(s.baseRepo.Conn(ctx), reviewTypeID))
}

func (s *reviewCycleGroupService) FindByReviewConditionID(ctx context.Context, reviewConditionID uint) ([]dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding ReviewCycleGroups by review condition ID: %d", reviewConditionID)
	return s.list(s.repo.FindByReviewConditionID(s.baseRepo.Conn(ctx), reviewConditionID))
}

func (s *reviewCycleGroupService) FindByBooleanState(ctx context.Context, state bool) ([]dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding ReviewCycleGroups by boolean state: %t", state)
	return s.list(s.repo.FindByBooleanState(s.baseRepo.Conn(ctx), state))
}

func (s *reviewCycleGroupService) FindByValueInRange(ctx context.Context, value int64) ([]dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding ReviewCycleGroups with value in range: %d", value)
	return s.list(s.repo.FindByValueInRange(s.baseRepo.Conn(ctx), value))
}

func (s *reviewCycleGroupService) FindByListOfIdisContaining(ctx context.Context, idi string) ([]dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding ReviewCycleGroups containing IDI: %s", idi)
	return s.list(s.repo.FindByIdi(s.baseRepo.Conn(ctx), idi))
}

func (s *reviewCycleGroupService) SearchByGroupName(ctx context.Context, substring string, req dto.PageRequest) (*dto.Page[dto.ReviewCycleGroupDTO], error) {
	q, err := s.paging.resolve(req, repository.ReviewCycleGroupSortColumns)
	if err != nil {
		return nil, err
	}
	logger.Infof("Searching ReviewCycleGroups by name: %s", substring)

	recs, total, err := s.repo.SearchByName(s.baseRepo.Conn(ctx), substring, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search review cycle groups: %w", err)
	}
	page := dto.NewPage(mapper.ReviewCycleGroupsToTransfer(recs), q.Page, q.Size, total)
	return &page, nil
}

func (s *reviewCycleGroupService) FindByGroupNameContaining(ctx context.Context, substring string) ([]dto.ReviewCycleGroupDTO, error) {
	logger.Infof("Finding ReviewCycleGroups with name containing: %s", substring)
	return s.list(s.repo.FindByNameContaining(s.baseRepo.Conn(ctx), substring))
}

func (s *reviewCycleGroupService) CountByReviewCycleID(ctx context.Context, reviewCycleID uint) (int64, error) {
	n, err := s.repo.CountByReviewCycleID(s.baseRepo.Conn(ctx), reviewCycleID)
	if err != nil {
		return 0, fmt.Errorf("failed to count review cycle groups for cycle %d: %w", reviewCycleID, err)
	}
	return n, nil
}

func (s *reviewCycleGroupService) ExistsByID(ctx context.Context, id uint) (bool, error) {
	exists, err := s.repo.ExistsByID(s.baseRepo.Conn(ctx), id)
	if err != nil {
		return false, fmt.Errorf("failed to check review cycle group %d: %w", id, err)
	}
	return exists, nil
}

func (s *reviewCycleGroupService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(s.baseRepo.Conn(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to count review cycle groups: %w", err)
	}
	return n, nil
}

func (s *reviewCycleGroupService) list(recs []models.ReviewCycleGroup, err error) ([]dto.ReviewCycleGroupDTO, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to query review cycle groups: %w", err)
	}
	return mapper.ReviewCycleGroupsToTransfer(recs), nil
}

func (s *reviewCycleGroupService) lookupError(id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(reviewCycleGroupResource, id)
	}
	return fmt.Errorf("failed to load review cycle group %d: %w", id, err)
}

func (s *reviewCycleGroupService) nameConflict(name string) error {
	s.metrics.IncrementMutation("review_cycle_group", metrics.ActionConflict)
	return apperrors.Conflict(apperrors.CodeReviewGroupExists,
		fmt.Sprintf("%s with name already exists: %s", reviewCycleGroupResource, name))
}
