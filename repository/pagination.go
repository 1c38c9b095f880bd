package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageQuery selects one 0-based page ordered by a whitelisted column.
type PageQuery struct {
	Page       int
	Size       int
	SortColumn string
	Desc       bool
}

// SortColumns maps accepted sort field names to column names.
type SortColumns map[string]string

// Resolve returns the column for field, matching case-insensitively.
func (s SortColumns) Resolve(field string) (string, bool) {
	if col, ok := s[field]; ok {
		return col, true
	}
	for k, col := range s {
		if strings.EqualFold(k, field) {
			return col, true
		}
	}
	return "", false
}

// Fields lists the accepted sort field names.
func (s SortColumns) Fields() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}

// ReviewCycleGroupSortColumns are the sortable ReviewCycleGroup fields.
var ReviewCycleGroupSortColumns = SortColumns{
	"id":                 "review_cycle_group_id",
	"reviewCycleGroupId": "review_cycle_group_id",
	"reviewGroupName":    "review_group_name",
	"reviewCycleId":      "review_cycle_id",
	"reviewTypeId":       "review_type_id",
	"reviewConditionId":  "review_condition_id",
	"rangeStart":         "range_start",
	"rangeEnd":           "range_end",
	"reviewFrequency":    "review_frequency",
	"reviewsPerYear":     "reviews_per_year",
	"createdDttm":        "created_dttm",
	"updatedDttm":        "updated_dttm",
}

// ReviewGroupCriteriaSortColumns are the sortable ReviewGroupCriteria fields.
var ReviewGroupCriteriaSortColumns = SortColumns{
	"id":                    "review_group_criteria_id",
	"reviewGroupCriteriaId": "review_group_criteria_id",
	"criteriaName":          "criteria_name",
	"criteriaType":          "criteria_type",
	"createdDttm":           "created_dttm",
	"updatedDttm":           "updated_dttm",
}

// paginate orders by q.SortColumn, then by pk so pages are stable, and applies offset/limit.
func paginate(db *gorm.DB, q PageQuery, pk string) *gorm.DB {
	col := q.SortColumn
	if col == "" {
		col = pk
	}
	db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: q.Desc})
	if col != pk {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: pk}})
	}
	return db.Offset(q.Page * q.Size).Limit(q.Size)
}

// escapeLike escapes LIKE metacharacters using '!' as the escape character.
func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}

// containsPattern builds a LIKE pattern for a contains match on s.
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

// containsClause matches column against a containsPattern argument, case-insensitively.
// Both sides are folded by the engine's LOWER, which on sqlite folds ASCII letters only.
func containsClause(column string) string {
	return "LOWER(" + column + ") LIKE LOWER(?) ESCAPE '!'"
}
