package models

// ReviewGroupCriteria is a named criterion of a fixed type applied to review groups.
type ReviewGroupCriteria struct {
	ID           uint              `gorm:"column:review_group_criteria_id;primaryKey;autoIncrement"`
	CriteriaName string            `gorm:"column:criteria_name;size:255;not null;uniqueIndex:uk_review_group_criteria_name"`
	CriteriaType GroupCriteriaType `gorm:"column:criteria_type;size:50;not null;index:idx_review_group_criteria_type"`
	AuditFields  `gorm:"embedded"`
}

// TableName returns the database table name for ReviewGroupCriteria model.
func (ReviewGroupCriteria) TableName() string {
	return "review_group_criteria"
}
