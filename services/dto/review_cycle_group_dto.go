package dto

import "time"

// ReviewCycleGroupDTO is the transfer form of a review cycle group.
// Nil fields are absent: on update they leave the stored value untouched.
// A non-nil empty ListOfIdis clears the list.
type ReviewCycleGroupDTO struct {
	ReviewCycleGroupID *uint    `json:"reviewCycleGroupId,omitempty" example:"1"`
	ReviewGroupName    *string  `json:"reviewGroupName,omitempty" validate:"required,notblank,max=255" example:"Financial Review"`
	ReviewCycleID      *uint    `json:"reviewCycleId,omitempty" validate:"required" example:"1"`
	ReviewTypeID       *uint    `json:"reviewTypeId,omitempty" validate:"required" example:"2"`
	ReviewConditionID  *uint    `json:"reviewConditionId,omitempty" example:"3"`
	RangeStart         *int64   `json:"rangeStart,omitempty" example:"100"`
	RangeEnd           *int64   `json:"rangeEnd,omitempty" example:"500"`
	BooleanState       *bool    `json:"booleanState,omitempty"`
	ListOfIdis         []string `json:"listOfIdis" validate:"omitempty,dive,notblank,max=100"`
	ReviewFrequency    *string  `json:"reviewFrequency,omitempty" validate:"omitempty,max=100" example:"QUARTERLY"`
	ReviewsPerYear     *int     `json:"reviewsPerYear,omitempty" validate:"omitempty,min=0" example:"4"`

	CreatedBy   string     `json:"createdBy,omitempty" swaggerignore:"true"`
	UpdatedBy   string     `json:"updatedBy,omitempty" swaggerignore:"true"`
	CreatedDttm *time.Time `json:"createdDttm,omitempty" swaggerignore:"true"`
	UpdatedDttm *time.Time `json:"updatedDttm,omitempty" swaggerignore:"true"`
	IsActive    *bool      `json:"isActive,omitempty" swaggerignore:"true"`
}
