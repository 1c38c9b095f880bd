package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tipapi/models"
	"tipapi/pkg/apperrors"
	"tipapi/services/dto"
)

// UserIDHeader identifies the caller recorded in audit columns.
const UserIDHeader = "X-User-Id"

// actor returns the caller id, or "system" when the header is absent.
func actor(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
		return id
	}
	return models.DefaultActor
}

func pathUint(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.Validation(fmt.Sprintf("invalid %s: %s", name, raw), nil)
	}
	return uint(id), nil
}

func pathInt64(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validation(fmt.Sprintf("invalid %s: %s", name, raw), nil)
	}
	return v, nil
}

func pathBool(c *gin.Context, name string) (bool, error) {
	raw := c.Param(name)
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.Validation(fmt.Sprintf("invalid %s: %s", name, raw), nil)
	}
	return v, nil
}

func bindPageRequest(c *gin.Context) (dto.PageRequest, error) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return dto.PageRequest{}, apperrors.Validation("invalid paging parameters", err)
	}
	return req, nil
}

func bindBody(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return apperrors.Validation("invalid request body", err)
	}
	return nil
}

func parseCriteriaType(raw string) (models.GroupCriteriaType, error) {
	t, err := models.ParseGroupCriteriaType(raw)
	if err != nil {
		return "", apperrors.Validation(err.Error(), nil)
	}
	return t, nil
}

// parseCriteriaTypes splits a comma-separated list, ignoring blank entries.
func parseCriteriaTypes(raw string) ([]models.GroupCriteriaType, error) {
	var out []models.GroupCriteriaType
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := parseCriteriaType(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
