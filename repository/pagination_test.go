package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortColumnsResolve(t *testing.T) {
	col, ok := ReviewCycleGroupSortColumns.Resolve("reviewGroupName")
	assert.True(t, ok)
	assert.Equal(t, "review_group_name", col)

	col, ok = ReviewCycleGroupSortColumns.Resolve("REVIEWGROUPNAME")
	assert.True(t, ok)
	assert.Equal(t, "review_group_name", col)

	_, ok = ReviewCycleGroupSortColumns.Resolve("review_group_name; DROP TABLE x")
	assert.False(t, ok)

	col, ok = ReviewGroupCriteriaSortColumns.Resolve("id")
	assert.True(t, ok)
	assert.Equal(t, "review_group_criteria_id", col)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "100!%", escapeLike("100%"))
	assert.Equal(t, "a!_b", escapeLike("a_b"))
	assert.Equal(t, "wow!!", escapeLike("wow!"))
	assert.Equal(t, "%Mixed CASE%", containsPattern("Mixed CASE"))
	assert.Equal(t, "LOWER(criteria_name) LIKE LOWER(?) ESCAPE '!'", containsClause("criteria_name"))
}
