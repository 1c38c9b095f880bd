// Package mapper converts between persisted records and their transfer form.
// Inbound mapping never sets identifiers or server-managed audit fields.
package mapper

import (
	"time"

	"tipapi/models"
	"tipapi/services/dto"
)

// ReviewCycleGroupToTransfer copies every field, including audit fields.
func ReviewCycleGroupToTransfer(rec *models.ReviewCycleGroup) dto.ReviewCycleGroupDTO {
	return dto.ReviewCycleGroupDTO{
		ReviewCycleGroupID: ptr(rec.ID),
		ReviewGroupName:    ptr(rec.ReviewGroupName),
		ReviewCycleID:      ptr(rec.ReviewCycleID),
		ReviewTypeID:       ptr(rec.ReviewTypeID),
		ReviewConditionID:  clone(rec.ReviewConditionID),
		RangeStart:         clone(rec.RangeStart),
		RangeEnd:           clone(rec.RangeEnd),
		BooleanState:       clone(rec.BooleanState),
		ListOfIdis:         rec.IdiValues(),
		ReviewFrequency:    clone(rec.ReviewFrequency),
		ReviewsPerYear:     clone(rec.ReviewsPerYear),
		CreatedBy:          rec.CreatedBy,
		UpdatedBy:          rec.UpdatedBy,
		CreatedDttm:        timePtr(rec.CreatedAt),
		UpdatedDttm:        timePtr(rec.UpdatedAt),
		IsActive:           ptr(rec.Active()),
	}
}

// ReviewCycleGroupsToTransfer maps a slice, returning an empty slice for no records.
func ReviewCycleGroupsToTransfer(recs []models.ReviewCycleGroup) []dto.ReviewCycleGroupDTO {
	out := make([]dto.ReviewCycleGroupDTO, 0, len(recs))
	for i := range recs {
		out = append(out, ReviewCycleGroupToTransfer(&recs[i]))
	}
	return out
}

// ReviewCycleGroupToRecord builds a new record from t.
func ReviewCycleGroupToRecord(t *dto.ReviewCycleGroupDTO) *models.ReviewCycleGroup {
	rec := &models.ReviewCycleGroup{}
	MergeReviewCycleGroup(t, rec)
	return rec
}

// MergeReviewCycleGroup overwrites rec with every non-nil field of t.
func MergeReviewCycleGroup(t *dto.ReviewCycleGroupDTO, rec *models.ReviewCycleGroup) {
	if t.ReviewGroupName != nil {
		rec.ReviewGroupName = *t.ReviewGroupName
	}
	if t.ReviewCycleID != nil {
		rec.ReviewCycleID = *t.ReviewCycleID
	}
	if t.ReviewTypeID != nil {
		rec.ReviewTypeID = *t.ReviewTypeID
	}
	if t.ReviewConditionID != nil {
		rec.ReviewConditionID = clone(t.ReviewConditionID)
	}
	if t.RangeStart != nil {
		rec.RangeStart = clone(t.RangeStart)
	}
	if t.RangeEnd != nil {
		rec.RangeEnd = clone(t.RangeEnd)
	}
	if t.BooleanState != nil {
		rec.BooleanState = clone(t.BooleanState)
	}
	if t.ListOfIdis != nil {
		rec.SetIdiValues(t.ListOfIdis)
	}
	if t.ReviewFrequency != nil {
		rec.ReviewFrequency = clone(t.ReviewFrequency)
	}
	if t.ReviewsPerYear != nil {
		rec.ReviewsPerYear = clone(t.ReviewsPerYear)
	}
}

// ReviewGroupCriteriaToTransfer copies every field, including audit fields.
func ReviewGroupCriteriaToTransfer(rec *models.ReviewGroupCriteria) dto.ReviewGroupCriteriaDTO {
	return dto.ReviewGroupCriteriaDTO{
		ReviewGroupCriteriaID: ptr(rec.ID),
		CriteriaName:          ptr(rec.CriteriaName),
		CriteriaType:          ptr(string(rec.CriteriaType)),
		CreatedBy:             rec.CreatedBy,
		UpdatedBy:             rec.UpdatedBy,
		CreatedDttm:           timePtr(rec.CreatedAt),
		UpdatedDttm:           timePtr(rec.UpdatedAt),
		IsActive:              ptr(rec.Active()),
	}
}

// ReviewGroupCriteriaListToTransfer maps a slice, returning an empty slice for no records.
func ReviewGroupCriteriaListToTransfer(recs []models.ReviewGroupCriteria) []dto.ReviewGroupCriteriaDTO {
	out := make([]dto.ReviewGroupCriteriaDTO, 0, len(recs))
	for i := range recs {
		out = append(out, ReviewGroupCriteriaToTransfer(&recs[i]))
	}
	return out
}

// ReviewGroupCriteriaToRecord builds a new record from t.
func ReviewGroupCriteriaToRecord(t *dto.ReviewGroupCriteriaDTO) *models.ReviewGroupCriteria {
	rec := &models.ReviewGroupCriteria{}
	MergeReviewGroupCriteria(t, rec)
	return rec
}

// MergeReviewGroupCriteria overwrites rec with every non-nil field of t.
// The type is stored upper-cased; callers validate it beforehand.
func MergeReviewGroupCriteria(t *dto.ReviewGroupCriteriaDTO, rec *models.ReviewGroupCriteria) {
	if t.CriteriaName != nil {
		rec.CriteriaName = *t.CriteriaName
	}
	if t.CriteriaType != nil {
		if ct, err := models.ParseGroupCriteriaType(*t.CriteriaType); err == nil {
			rec.CriteriaType = ct
		} else {
			rec.CriteriaType = models.GroupCriteriaType(*t.CriteriaType)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
