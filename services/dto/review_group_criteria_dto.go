package dto

import "time"

// ReviewGroupCriteriaDTO is the transfer form of a review group criteria.
type ReviewGroupCriteriaDTO struct {
	ReviewGroupCriteriaID *uint   `json:"reviewGroupCriteriaId,omitempty" example:"1"`
	CriteriaName          *string `json:"criteriaName,omitempty" validate:"required,notblank,max=255" example:"Budget variance"`
	CriteriaType          *string `json:"criteriaType,omitempty" validate:"required,criteriatype" example:"FINANCIAL"`

	CreatedBy   string     `json:"createdBy,omitempty" swaggerignore:"true"`
	UpdatedBy   string     `json:"updatedBy,omitempty" swaggerignore:"true"`
	CreatedDttm *time.Time `json:"createdDttm,omitempty" swaggerignore:"true"`
	UpdatedDttm *time.Time `json:"updatedDttm,omitempty" swaggerignore:"true"`
	IsActive    *bool      `json:"isActive,omitempty" swaggerignore:"true"`
}
