package controllers

import "tipapi/services/dto"

// ValidationErrorResponse represents a rejected request
type ValidationErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"validation failed: reviewGroupName: must satisfy required"`
	ErrorCode string `json:"errorCode" example:"VALIDATION_FAILED"`
	RequestID string `json:"requestId" example:"5f0c6b8e-3b1a-4c55-9d43-0a8f4f3c2b10"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// NotFoundResponse represents a lookup of a missing record
type NotFoundResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"ReviewCycleGroup not found with id: 42"`
	ErrorCode string `json:"errorCode" example:"RESOURCE_NOT_FOUND"`
	RequestID string `json:"requestId" example:"5f0c6b8e-3b1a-4c55-9d43-0a8f4f3c2b10"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ReviewGroupConflictResponse represents a duplicate group name
type ReviewGroupConflictResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"ReviewCycleGroup with name already exists: Financial Review"`
	ErrorCode string `json:"errorCode" example:"REVIEW_GROUP_EXISTS"`
	RequestID string `json:"requestId" example:"5f0c6b8e-3b1a-4c55-9d43-0a8f4f3c2b10"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// CriteriaConflictResponse represents a duplicate criteria name
type CriteriaConflictResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"ReviewGroupCriteria with name already exists: Budget variance"`
	ErrorCode string `json:"errorCode" example:"CRITERIA_EXISTS"`
	RequestID string `json:"requestId" example:"5f0c6b8e-3b1a-4c55-9d43-0a8f4f3c2b10"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// InternalErrorResponse represents an unexpected failure
type InternalErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"internal server error"`
	ErrorCode string `json:"errorCode" example:"INTERNAL_ERROR"`
	RequestID string `json:"requestId" example:"5f0c6b8e-3b1a-4c55-9d43-0a8f4f3c2b10"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ReviewCycleGroupPageResponse is one page of review cycle groups
type ReviewCycleGroupPageResponse struct {
	Content       []dto.ReviewCycleGroupDTO `json:"content"`
	Page          int                       `json:"page" example:"0"`
	Size          int                       `json:"size" example:"20"`
	TotalElements int64                     `json:"totalElements" example:"42"`
	TotalPages    int                       `json:"totalPages" example:"3"`
}

// ReviewGroupCriteriaPageResponse is one page of review group criteria
type ReviewGroupCriteriaPageResponse struct {
	Content       []dto.ReviewGroupCriteriaDTO `json:"content"`
	Page          int                          `json:"page" example:"0"`
	Size          int                          `json:"size" example:"20"`
	TotalElements int64                        `json:"totalElements" example:"42"`
	TotalPages    int                          `json:"totalPages" example:"3"`
}
