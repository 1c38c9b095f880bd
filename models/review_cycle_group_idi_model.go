package models

// ReviewCycleGroupIdi is one element of a group's ordered IDI list.
type ReviewCycleGroupIdi struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	ReviewCycleGroupID uint   `gorm:"column:review_cycle_group_id;not null;index:idx_rcg_idi_group"`
	Value              string `gorm:"column:idi_value;size:100;not null;index:idx_rcg_idi_value"`
	Position           int    `gorm:"column:position;not null"`
}

// TableName returns the database table name for ReviewCycleGroupIdi model.
func (ReviewCycleGroupIdi) TableName() string {
	return "review_cycle_group_idis"
}
