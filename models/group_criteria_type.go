package models

import (
	"fmt"
	"strings"
)

// GroupCriteriaType classifies a ReviewGroupCriteria.
type GroupCriteriaType string

const (
	CriteriaFinancial    GroupCriteriaType = "FINANCIAL"
	CriteriaOperational  GroupCriteriaType = "OPERATIONAL"
	CriteriaCompliance   GroupCriteriaType = "COMPLIANCE"
	CriteriaTechnical    GroupCriteriaType = "TECHNICAL"
	CriteriaSecurity     GroupCriteriaType = "SECURITY"
	CriteriaPerformance  GroupCriteriaType = "PERFORMANCE"
	CriteriaRiskBased    GroupCriteriaType = "RISK_BASED"
	CriteriaQuality      GroupCriteriaType = "QUALITY"
	CriteriaQuantitative GroupCriteriaType = "QUANTITATIVE"
	CriteriaQualitative  GroupCriteriaType = "QUALITATIVE"
)

var allGroupCriteriaTypes = []GroupCriteriaType{
	CriteriaFinancial,
	CriteriaOperational,
	CriteriaCompliance,
	CriteriaTechnical,
	CriteriaSecurity,
	CriteriaPerformance,
	CriteriaRiskBased,
	CriteriaQuality,
	CriteriaQuantitative,
	CriteriaQualitative,
}

// AllGroupCriteriaTypes returns every type in declaration order.
func AllGroupCriteriaTypes() []GroupCriteriaType {
	out := make([]GroupCriteriaType, len(allGroupCriteriaTypes))
	copy(out, allGroupCriteriaTypes)
	return out
}

// IsValid reports whether t is one of the declared types.
func (t GroupCriteriaType) IsValid() bool {
	for _, v := range allGroupCriteriaTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseGroupCriteriaType accepts a type name in any case.
func ParseGroupCriteriaType(s string) (GroupCriteriaType, error) {
	t := GroupCriteriaType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown criteria type %q", s)
	}
	return t, nil
}
