package repository

import (
	"tipapi/config"
	"tipapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const reviewCycleGroupPK = "review_cycle_group_id"

// ReviewCycleGroupRepository provides data access operations for review cycle groups and their IDI lists.
type ReviewCycleGroupRepository interface {
	FindByID(tx *gorm.DB, id uint) (*models.ReviewCycleGroup, error)
	FindAll(tx *gorm.DB) ([]models.ReviewCycleGroup, error)
	FindAllPaged(tx *gorm.DB, q PageQuery) ([]models.ReviewCycleGroup, int64, error)
	Save(tx *gorm.DB, group *models.ReviewCycleGroup) error
	DeleteByID(tx *gorm.DB, id uint) error
	Deactivate(tx *gorm.DB, id uint, updatedBy string) error
	ExistsByID(tx *gorm.DB, id uint) (bool, error)
	ExistsByName(tx *gorm.DB, name string) (bool, error)
	ExistsByNameExcludingID(tx *gorm.DB, name string, excludeID uint) (bool, error)
	Count(tx *gorm.DB) (int64, error)

	FindByReviewCycleID(tx *gorm.DB, reviewCycleID uint) ([]models.ReviewCycleGroup, error)
	FindByReviewTypeID(tx *gorm.DB, reviewTypeID uint) ([]models.ReviewCycleGroup, error)
	FindByReviewConditionID(tx *gorm.DB, reviewConditionID uint) ([]models.ReviewCycleGroup, error)
	FindByBooleanState(tx *gorm.DB, state bool) ([]models.ReviewCycleGroup, error)
	FindByValueInRange(tx *gorm.DB, value int64) ([]models.ReviewCycleGroup, error)
	FindByIdi(tx *gorm.DB, idi string) ([]models.ReviewCycleGroup, error)
	FindByNameContaining(tx *gorm.DB, substring string) ([]models.ReviewCycleGroup, error)
	SearchByName(tx *gorm.DB, substring string, q PageQuery) ([]models.ReviewCycleGroup, int64, error)
	CountByReviewCycleID(tx *gorm.DB, reviewCycleID uint) (int64, error)
}

type reviewCycleGroupRepository struct {
	crudRepository[models.ReviewCycleGroup]
}

// NewReviewCycleGroupRepository creates a new review cycle group repository instance.
func NewReviewCycleGroupRepository() ReviewCycleGroupRepository {
	return NewReviewCycleGroupRepositoryWithDB(config.DB)
}

// NewReviewCycleGroupRepositoryWithDB creates a review cycle group repository bound to db.
func NewReviewCycleGroupRepositoryWithDB(db *gorm.DB) ReviewCycleGroupRepository {
	return &reviewCycleGroupRepository{
		crudRepository: newCrudRepository[models.ReviewCycleGroup](db, reviewCycleGroupPK, "Idis"),
	}
}

func (r *reviewCycleGroupRepository) FindByID(tx *gorm.DB, id uint) (*models.ReviewCycleGroup, error) {
	return r.findByID(tx, id)
}

func (r *reviewCycleGroupRepository) FindAll(tx *gorm.DB) ([]models.ReviewCycleGroup, error) {
	return r.findAll(tx)
}

func (r *reviewCycleGroupRepository) FindAllPaged(tx *gorm.DB, q PageQuery) ([]models.ReviewCycleGroup, int64, error) {
	return r.findPage(tx, q, "")
}

// Save inserts the group when it has no ID and updates it otherwise. The IDI list is
// replaced wholesale; callers should pass a transaction so both writes commit together.
func (r *reviewCycleGroupRepository) Save(tx *gorm.DB, group *models.ReviewCycleGroup) error {
	db := r.conn(tx)
	values := group.IdiValues()

	if group.ID == 0 {
		if err := db.Omit(clause.Associations).Create(group).Error; err != nil {
			return err
		}
	} else {
		err := db.Model(group).
			Select("*").
			Omit(reviewCycleGroupPK, "created_by", "created_dttm", clause.Associations).
			Updates(group).Error
		if err != nil {
			return err
		}
		if err := db.Where("review_cycle_group_id = ?", group.ID).Delete(&models.ReviewCycleGroupIdi{}).Error; err != nil {
			return err
		}
	}

	group.SetIdiValues(values)
	if len(group.Idis) == 0 {
		return nil
	}
	return db.Create(&group.Idis).Error
}

func (r *reviewCycleGroupRepository) DeleteByID(tx *gorm.DB, id uint) error {
	db := r.conn(tx)
	if err := db.Where("review_cycle_group_id = ?", id).Delete(&models.ReviewCycleGroupIdi{}).Error; err != nil {
		return err
	}
	return r.deleteByID(db, id)
}

func (r *reviewCycleGroupRepository) Deactivate(tx *gorm.DB, id uint, updatedBy string) error {
	return r.deactivate(tx, id, updatedBy)
}

func (r *reviewCycleGroupRepository) ExistsByID(tx *gorm.DB, id uint) (bool, error) {
	return r.existsByID(tx, id)
}

func (r *reviewCycleGroupRepository) ExistsByName(tx *gorm.DB, name string) (bool, error) {
	return r.existsWhere(tx, "review_group_name = ?", name)
}

func (r *reviewCycleGroupRepository) ExistsByNameExcludingID(tx *gorm.DB, name string, excludeID uint) (bool, error) {
	return r.existsWhere(tx, "review_group_name = ? AND review_cycle_group_id <> ?", name, excludeID)
}

func (r *reviewCycleGroupRepository) Count(tx *gorm.DB) (int64, error) {
	return r.count(tx)
}

func (r *reviewCycleGroupRepository) FindByReviewCycleID(tx *gorm.DB, reviewCycleID uint) ([]models.ReviewCycleGroup, error) {
	return r.findWhere(tx, "review_cycle_id = ?", reviewCycleID)
}

func (r *reviewCycleGroupRepository) FindByReviewTypeID(tx *gorm.DB, reviewTypeID uint) ([]models.ReviewCycleGroup, error) {
	return r.findWhere(tx, "review_type_id = ?", reviewTypeID)
}

func (r *reviewCycleGroupRepository) FindByReviewConditionID(tx *gorm.DB, reviewConditionID uint) ([]models.ReviewCycleGroup, error) {
	return r.findWhere(tx, "review_condition_id = ?", reviewConditionID)
}

func (r *reviewCycleGroupRepository) FindByBooleanState(tx *gorm.DB, state bool) ([]models.ReviewCycleGroup, error) {
	return r.findWhere(tx, "boolean_state = ?", state)
}

// FindByValueInRange matches rangeStart <= value <= rangeEnd. Rows with a NULL bound never match.
func (r *reviewCycleGroupRepository) FindByValueInRange(tx *gorm.DB, value int64) ([]models.ReviewCycleGroup, error) {
	return r.findWhere(tx, "range_start <= ? AND range_end >= ?", value, value)
}

func (r *reviewCycleGroupRepository) FindByIdi(tx *gorm.DB, idi string) ([]models.ReviewCycleGroup, error) {
	return r.findWhere(tx,
		"review_cycle_group_id IN (SELECT review_cycle_group_id FROM review_cycle_group_idis WHERE idi_value = ?)", idi)
}

func (r *reviewCycleGroupRepository) FindByNameContaining(tx *gorm.DB, substring string) ([]models.ReviewCycleGroup, error) {
	return r.findWhere(tx, containsClause("review_group_name"), containsPattern(substring))
}

func (r *reviewCycleGroupRepository) SearchByName(tx *gorm.DB, substring string, q PageQuery) ([]models.ReviewCycleGroup, int64, error) {
	return r.findPage(tx, q, containsClause("review_group_name"), containsPattern(substring))
}

func (r *reviewCycleGroupRepository) CountByReviewCycleID(tx *gorm.DB, reviewCycleID uint) (int64, error) {
	return r.countWhere(tx, "review_cycle_id = ?", reviewCycleID)
}
