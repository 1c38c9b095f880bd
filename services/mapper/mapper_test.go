package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipapi/models"
	"tipapi/services/dto"
)

func sp(s string) *string { return &s }
func up(u uint) *uint     { return &u }
func ip(i int64) *int64   { return &i }

func storedGroup() *models.ReviewCycleGroup {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := &models.ReviewCycleGroup{
		ID:              42,
		ReviewGroupName: "Financial Review",
		ReviewCycleID:   1,
		ReviewTypeID:    2,
		RangeStart:      ip(100),
		RangeEnd:        ip(500),
		ReviewFrequency: sp("QUARTERLY"),
		AuditFields: models.AuditFields{
			CreatedBy: "alice",
			UpdatedBy: "alice",
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
	rec.SetIdiValues([]string{"IDI001", "IDI002"})
	return rec
}

func TestReviewCycleGroupToTransferCopiesEverything(t *testing.T) {
	out := ReviewCycleGroupToTransfer(storedGroup())

	require.NotNil(t, out.ReviewCycleGroupID)
	assert.Equal(t, uint(42), *out.ReviewCycleGroupID)
	assert.Equal(t, "Financial Review", *out.ReviewGroupName)
	assert.Equal(t, int64(100), *out.RangeStart)
	assert.Equal(t, []string{"IDI001", "IDI002"}, out.ListOfIdis)
	assert.Equal(t, "alice", out.CreatedBy)
	require.NotNil(t, out.CreatedDttm)
	assert.True(t, *out.IsActive)
	assert.Nil(t, out.ReviewConditionID)
	assert.Nil(t, out.BooleanState)
}

func TestReviewCycleGroupToRecordIgnoresServerFields(t *testing.T) {
	now := time.Now()
	in := &dto.ReviewCycleGroupDTO{
		ReviewCycleGroupID: up(99),
		ReviewGroupName:    sp("New"),
		ReviewCycleID:      up(1),
		ReviewTypeID:       up(2),
		ListOfIdis:         []string{"A"},
		CreatedBy:          "mallory",
		CreatedDttm:        &now,
	}

	rec := ReviewCycleGroupToRecord(in)

	assert.Zero(t, rec.ID)
	assert.Empty(t, rec.CreatedBy)
	assert.True(t, rec.CreatedAt.IsZero())
	assert.Equal(t, "New", rec.ReviewGroupName)
	assert.Equal(t, []string{"A"}, rec.IdiValues())
}

func TestMergeReviewCycleGroupOnlyOverwritesPresentFields(t *testing.T) {
	rec := storedGroup()
	MergeReviewCycleGroup(&dto.ReviewCycleGroupDTO{ListOfIdis: []string{"IDI003"}}, rec)

	assert.Equal(t, uint(42), rec.ID)
	assert.Equal(t, "Financial Review", rec.ReviewGroupName)
	assert.Equal(t, []string{"IDI003"}, rec.IdiValues())
	assert.Equal(t, int64(100), *rec.RangeStart)
	assert.Equal(t, "QUARTERLY", *rec.ReviewFrequency)
	assert.Equal(t, "alice", rec.CreatedBy)
}

func TestMergeReviewCycleGroupEmptyListClears(t *testing.T) {
	rec := storedGroup()
	MergeReviewCycleGroup(&dto.ReviewCycleGroupDTO{ListOfIdis: []string{}}, rec)
	assert.Empty(t, rec.IdiValues())

	rec = storedGroup()
	MergeReviewCycleGroup(&dto.ReviewCycleGroupDTO{}, rec)
	assert.Equal(t, []string{"IDI001", "IDI002"}, rec.IdiValues())
}

func TestMergeDoesNotAliasTransferPointers(t *testing.T) {
	rec := storedGroup()
	in := &dto.ReviewCycleGroupDTO{RangeEnd: ip(900)}
	MergeReviewCycleGroup(in, rec)
	*in.RangeEnd = 1
	assert.Equal(t, int64(900), *rec.RangeEnd)
}

func TestReviewGroupCriteriaRoundTrip(t *testing.T) {
	rec := ReviewGroupCriteriaToRecord(&dto.ReviewGroupCriteriaDTO{
		ReviewGroupCriteriaID: up(5),
		CriteriaName:          sp("Uptime"),
		CriteriaType:          sp("performance"),
	})
	assert.Zero(t, rec.ID)
	assert.Equal(t, models.CriteriaPerformance, rec.CriteriaType)

	rec.ID = 5
	out := ReviewGroupCriteriaToTransfer(rec)
	assert.Equal(t, uint(5), *out.ReviewGroupCriteriaID)
	assert.Equal(t, "PERFORMANCE", *out.CriteriaType)
	assert.Nil(t, out.CreatedDttm)

	MergeReviewGroupCriteria(&dto.ReviewGroupCriteriaDTO{CriteriaName: sp("Latency")}, rec)
	assert.Equal(t, "Latency", rec.CriteriaName)
	assert.Equal(t, models.CriteriaPerformance, rec.CriteriaType)
}

func TestSliceMappersReturnEmptySlices(t *testing.T) {
	assert.NotNil(t, ReviewCycleGroupsToTransfer(nil))
	assert.NotNil(t, ReviewGroupCriteriaListToTransfer(nil))
}
