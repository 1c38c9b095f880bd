package models

// ReviewCycleGroup groups review cycles sharing a type, an optional numeric range and a set of IDI codes.
type ReviewCycleGroup struct {
	ID                uint                  `gorm:"column:review_cycle_group_id;primaryKey;autoIncrement"`
	ReviewGroupName   string                `gorm:"column:review_group_name;size:255;not null;uniqueIndex:uk_review_cycle_group_name"`
	ReviewCycleID     uint                  `gorm:"column:review_cycle_id;not null;index:idx_review_cycle_group_cycle"`
	ReviewTypeID      uint                  `gorm:"column:review_type_id;not null;index:idx_review_cycle_group_type"`
	ReviewConditionID *uint                 `gorm:"column:review_condition_id"`
	RangeStart        *int64                `gorm:"column:range_start"`
	RangeEnd          *int64                `gorm:"column:range_end"`
	BooleanState      *bool                 `gorm:"column:boolean_state"`
	ReviewFrequency   *string               `gorm:"column:review_frequency;size:100"`
	ReviewsPerYear    *int                  `gorm:"column:reviews_per_year"`
	Idis              []ReviewCycleGroupIdi `gorm:"foreignKey:ReviewCycleGroupID;references:ID;constraint:OnDelete:CASCADE"`
	AuditFields       `gorm:"embedded"`
}

// TableName returns the database table name for ReviewCycleGroup model.
func (ReviewCycleGroup) TableName() string {
	return "review_cycle_group"
}

// IdiValues returns the IDI codes in stored order.
func (g *ReviewCycleGroup) IdiValues() []string {
	values := make([]string, 0, len(g.Idis))
	for _, idi := range g.Idis {
		values = append(values, idi.Value)
	}
	return values
}

// SetIdiValues replaces the IDI codes, keeping the given order.
func (g *ReviewCycleGroup) SetIdiValues(values []string) {
	g.Idis = make([]ReviewCycleGroupIdi, 0, len(values))
	for i, v := range values {
		g.Idis = append(g.Idis, ReviewCycleGroupIdi{ReviewCycleGroupID: g.ID, Value: v, Position: i})
	}
}
