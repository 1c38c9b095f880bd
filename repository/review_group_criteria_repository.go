package repository

import (
	"tipapi/config"
	"tipapi/models"

	"gorm.io/gorm"
)

const reviewGroupCriteriaPK = "review_group_criteria_id"

// ReviewGroupCriteriaRepository provides data access operations for review group criteria.
type ReviewGroupCriteriaRepository interface {
	FindByID(tx *gorm.DB, id uint) (*models.ReviewGroupCriteria, error)
	FindAll(tx *gorm.DB) ([]models.ReviewGroupCriteria, error)
	FindAllPaged(tx *gorm.DB, q PageQuery) ([]models.ReviewGroupCriteria, int64, error)
	Save(tx *gorm.DB, criteria *models.ReviewGroupCriteria) error
	DeleteByID(tx *gorm.DB, id uint) error
	Deactivate(tx *gorm.DB, id uint, updatedBy string) error
	ExistsByID(tx *gorm.DB, id uint) (bool, error)
	ExistsByName(tx *gorm.DB, name string) (bool, error)
	ExistsByNameExcludingID(tx *gorm.DB, name string, excludeID uint) (bool, error)
	Count(tx *gorm.DB) (int64, error)

	FindByCriteriaType(tx *gorm.DB, criteriaType models.GroupCriteriaType) ([]models.ReviewGroupCriteria, error)
	FindByCriteriaTypes(tx *gorm.DB, criteriaTypes []models.GroupCriteriaType) ([]models.ReviewGroupCriteria, error)
	CountByCriteriaType(tx *gorm.DB, criteriaType models.GroupCriteriaType) (int64, error)
	FindByNameContaining(tx *gorm.DB, substring string) ([]models.ReviewGroupCriteria, error)
	SearchByName(tx *gorm.DB, substring string, q PageQuery) ([]models.ReviewGroupCriteria, int64, error)
}

type reviewGroupCriteriaRepository struct {
	crudRepository[models.ReviewGroupCriteria]
}

// NewReviewGroupCriteriaRepository creates a new review group criteria repository instance.
func NewReviewGroupCriteriaRepository() ReviewGroupCriteriaRepository {
	return NewReviewGroupCriteriaRepositoryWithDB(config.DB)
}

// NewReviewGroupCriteriaRepositoryWithDB creates a review group criteria repository bound to db.
func NewReviewGroupCriteriaRepositoryWithDB(db *gorm.DB) ReviewGroupCriteriaRepository {
	return &reviewGroupCriteriaRepository{
		crudRepository: newCrudRepository[models.ReviewGroupCriteria](db, reviewGroupCriteriaPK),
	}
}

func (r *reviewGroupCriteriaRepository) FindByID(tx *gorm.DB, id uint) (*models.ReviewGroupCriteria, error) {
	return r.findByID(tx, id)
}

func (r *reviewGroupCriteriaRepository) FindAll(tx *gorm.DB) ([]models.ReviewGroupCriteria, error) {
	return r.findAll(tx)
}

func (r *reviewGroupCriteriaRepository) FindAllPaged(tx *gorm.DB, q PageQuery) ([]models.ReviewGroupCriteria, int64, error) {
	return r.findPage(tx, q, "")
}

// Save inserts the criteria when it has no ID and updates it otherwise.
func (r *reviewGroupCriteriaRepository) Save(tx *gorm.DB, criteria *models.ReviewGroupCriteria) error {
	db := r.conn(tx)
	if criteria.ID == 0 {
		return db.Create(criteria).Error
	}
	return db.Model(criteria).
		Select("*").
		Omit(reviewGroupCriteriaPK, "created_by", "created_dttm").
		Updates(criteria).Error
}

func (r *reviewGroupCriteriaRepository) DeleteByID(tx *gorm.DB, id uint) error {
	return r.deleteByID(tx, id)
}

func (r *reviewGroupCriteriaRepository) Deactivate(tx *gorm.DB, id uint, updatedBy string) error {
	return r.deactivate(tx, id, updatedBy)
}

func (r *reviewGroupCriteriaRepository) ExistsByID(tx *gorm.DB, id uint) (bool, error) {
	return r.existsByID(tx, id)
}

func (r *reviewGroupCriteriaRepository) ExistsByName(tx *gorm.DB, name string) (bool, error) {
	return r.existsWhere(tx, "criteria_name = ?", name)
}

func (r *reviewGroupCriteriaRepository) ExistsByNameExcludingID(tx *gorm.DB, name string, excludeID uint) (bool, error) {
	return r.existsWhere(tx, "criteria_name = ? AND review_group_criteria_id <> ?", name, excludeID)
}

func (r *reviewGroupCriteriaRepository) Count(tx *gorm.DB) (int64, error) {
	return r.count(tx)
}

func (r *reviewGroupCriteriaRepository) FindByCriteriaType(tx *gorm.DB, criteriaType models.GroupCriteriaType) ([]models.ReviewGroupCriteria, error) {
	return r.findWhere(tx, "criteria_type = ?", string(criteriaType))
}

// FindByCriteriaTypes matches any of criteriaTypes. An empty set matches nothing.
func (r *reviewGroupCriteriaRepository) FindByCriteriaTypes(tx *gorm.DB, criteriaTypes []models.GroupCriteriaType) ([]models.ReviewGroupCriteria, error) {
	if len(criteriaTypes) == 0 {
		return []models.ReviewGroupCriteria{}, nil
	}
	values := make([]string, len(criteriaTypes))
	for i, t := range criteriaTypes {
		values[i] = string(t)
	}
	return r.findWhere(tx, "criteria_type IN ?", values)
}

func (r *reviewGroupCriteriaRepository) CountByCriteriaType(tx *gorm.DB, criteriaType models.GroupCriteriaType) (int64, error) {
	return r.countWhere(tx, "criteria_type = ?", string(criteriaType))
}

func (r *reviewGroupCriteriaRepository) FindByNameContaining(tx *gorm.DB, substring string) ([]models.ReviewGroupCriteria, error) {
	return r.findWhere(tx, containsClause("criteria_name"), containsPattern(substring))
}

func (r *reviewGroupCriteriaRepository) SearchByName(tx *gorm.DB, substring string, q PageQuery) ([]models.ReviewGroupCriteria, int64, error) {
	return r.findPage(tx, q, containsClause("criteria_name"), containsPattern(substring))
}
