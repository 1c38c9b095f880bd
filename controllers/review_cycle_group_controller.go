package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tipapi/pkg/logger"
	"tipapi/services"
	"tipapi/services/dto"
	"tipapi/utils"
)

var reviewCycleGroupSrv services.ReviewCycleGroupService

// SetReviewCycleGroupService initializes the review cycle group service instance.
func SetReviewCycleGroupService(srv services.ReviewCycleGroupService) {
	reviewCycleGroupSrv = srv
}

// RegisterReviewCycleGroupRoutes mounts the review cycle group endpoints on rg.
func RegisterReviewCycleGroupRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/review-cycle-groups")
	{
		groups.GET("", getAllReviewCycleGroups)
		groups.GET("/paginated", getReviewCycleGroupsPaginated)
		groups.GET("/search", searchReviewCycleGroups)
		groups.GET("/count", countReviewCycleGroups)
		groups.POST("", createReviewCycleGroup)

		// Predicate lookups
		groups.GET("/review-cycle/:reviewCycleId", getReviewCycleGroupsByReviewCycle)
		groups.GET("/review-cycle/:reviewCycleId/count", countReviewCycleGroupsByReviewCycle)
		groups.GET("/review-type/:reviewTypeId", getReviewCycleGroupsByReviewType)
		groups.GET("/review-condition/:reviewConditionId", getReviewCycleGroupsByReviewCondition)
		groups.GET("/boolean-state/:booleanState", getReviewCycleGroupsByBooleanState)
		groups.GET("/range/:value", getReviewCycleGroupsInRange)
		groups.GET("/idi/:idi", getReviewCycleGroupsByIdi)

		groups.GET("/:id", getReviewCycleGroupByID)
		groups.GET("/:id/exists", reviewCycleGroupExists)
		groups.PUT("/:id", updateReviewCycleGroup)
		groups.PATCH("/:id/deactivate", deactivateReviewCycleGroup)
		groups.DELETE("/:id", deleteReviewCycleGroup)
	}
}

// @Summary Create review cycle group
// @Description Creates a review cycle group. Group names are unique.
// @Tags Review Cycle Groups
// @Accept json
// @Produce json
// @Param X-User-Id header string false "Acting user"
// @Param group body dto.ReviewCycleGroupDTO true "Review cycle group"
// @Success 201 {object} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ReviewGroupConflictResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /review-cycle-groups [post]
func createReviewCycleGroup(c *gin.Context) {
	var in dto.ReviewCycleGroupDTO
	if err := bindBody(c, &in); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	created, err := reviewCycleGroupSrv.Create(c.Request.Context(), &in, actor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Successfully created review cycle group: id=%d", *created.ReviewCycleGroupID)
	utils.JSONResponse(c, http.StatusCreated, created)
}

// @Summary Update review cycle group
// @Description Replaces the supplied fields of an existing review cycle group. Absent fields are kept.
// @Tags Review Cycle Groups
// @Accept json
// @Produce json
// @Param id path int true "Review cycle group ID"
// @Param X-User-Id header string false "Acting user"
// @Param group body dto.ReviewCycleGroupDTO true "Review cycle group"
// @Success 200 {object} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Failure 409 {object} ReviewGroupConflictResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /review-cycle-groups/{id} [put]
func updateReviewCycleGroup(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var in dto.ReviewCycleGroupDTO
	if err := bindBody(c, &in); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	updated, err := reviewCycleGroupSrv.Update(c.Request.Context(), id, &in, actor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Successfully updated review cycle group: id=%d", id)
	utils.JSONResponse(c, http.StatusOK, updated)
}

// @Summary Get review cycle group by ID
// @Tags Review Cycle Groups
// @Produce json
// @Param id path int true "Review cycle group ID"
// @Success 200 {object} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Router /review-cycle-groups/{id} [get]
func getReviewCycleGroupByID(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	group, err := reviewCycleGroupSrv.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, group)
}

// @Summary List review cycle groups
// @Tags Review Cycle Groups
// @Produce json
// @Success 200 {array} dto.ReviewCycleGroupDTO
// @Failure 500 {object} InternalErrorResponse
// @Router /review-cycle-groups [get]
func getAllReviewCycleGroups(c *gin.Context) {
	groups, err := reviewCycleGroupSrv.FindAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, groups)
}

// @Summary List review cycle groups one page at a time
// @Description Pages are 0-based. sortBy takes a field name such as reviewGroupName; sortDirection is asc or desc.
// @Tags Review Cycle Groups
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Param sortBy query string false "Sort field" default(id)
// @Param sortDirection query string false "asc or desc" default(asc)
// @Success 200 {object} ReviewCycleGroupPageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/paginated [get]
func getReviewCycleGroupsPaginated(c *gin.Context) {
	req, err := bindPageRequest(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	page, err := reviewCycleGroupSrv.FindAllPaginated(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, page)
}

// @Summary Search review cycle groups by name
// @Description Case-insensitive substring match on the group name.
// @Tags Review Cycle Groups
// @Produce json
// @Param reviewGroupName query string true "Name fragment"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Param sortBy query string false "Sort field" default(id)
// @Param sortDirection query string false "asc or desc" default(asc)
// @Success 200 {object} ReviewCycleGroupPageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/search [get]
func searchReviewCycleGroups(c *gin.Context) {
	req, err := bindPageRequest(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	page, err := reviewCycleGroupSrv.SearchByGroupName(c.Request.Context(), c.Query("reviewGroupName"), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, page)
}

// @Summary Count review cycle groups
// @Tags Review Cycle Groups
// @Produce json
// @Success 200 {integer} int64
// @Router /review-cycle-groups/count [get]
func countReviewCycleGroups(c *gin.Context) {
	count, err := reviewCycleGroupSrv.Count(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, count)
}

// @Summary Check whether a review cycle group exists
// @Tags Review Cycle Groups
// @Produce json
// @Param id path int true "Review cycle group ID"
// @Success 200 {boolean} bool
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/{id}/exists [get]
func reviewCycleGroupExists(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	exists, err := reviewCycleGroupSrv.ExistsByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, exists)
}

// @Summary List groups of a review cycle
// @Tags Review Cycle Groups
// @Produce json
// @Param reviewCycleId path int true "Review cycle ID"
// @Success 200 {array} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/review-cycle/{reviewCycleId} [get]
func getReviewCycleGroupsByReviewCycle(c *gin.Context) {
	cycleID, err := pathUint(c, "reviewCycleId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	groups, err := reviewCycleGroupSrv.FindByReviewCycleID(c.Request.Context(), cycleID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, groups)
}

// @Summary Count groups of a review cycle
// @Tags Review Cycle Groups
// @Produce json
// @Param reviewCycleId path int true "Review cycle ID"
// @Success 200 {integer} int64
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/review-cycle/{reviewCycleId}/count [get]
func countReviewCycleGroupsByReviewCycle(c *gin.Context) {
	cycleID, err := pathUint(c, "reviewCycleId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	count, err := reviewCycleGroupSrv.CountByReviewCycleID(c.Request.Context(), cycleID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, count)
}

// @Summary List groups of a review type
// @Tags Review Cycle Groups
// @Produce json
// @Param reviewTypeId path int true "Review type ID"
// @Success 200 {array} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/review-type/{reviewTypeId} [get]
func getReviewCycleGroupsByReviewType(c *gin.Context) {
	typeID, err := pathUint(c, "reviewTypeId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	groups, err := reviewCycleGroupSrv.FindByReviewTypeID(c.Request.Context(), typeID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, groups)
}

// @Summary List groups of a review condition
// @Tags Review Cycle Groups
// @Produce json
// @Param reviewConditionId path int true "Review condition ID"
// @Success 200 {array} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/review-condition/{reviewConditionId} [get]
func getReviewCycleGroupsByReviewCondition(c *gin.Context) {
	conditionID, err := pathUint(c, "reviewConditionId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	groups, err := reviewCycleGroupSrv.FindByReviewConditionID(c.Request.Context(), conditionID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, groups)
}

// @Summary List groups by boolean state
// @Tags Review Cycle Groups
// @Produce json
// @Param booleanState path bool true "Boolean state"
// @Success 200 {array} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/boolean-state/{booleanState} [get]
func getReviewCycleGroupsByBooleanState(c *gin.Context) {
	state, err := pathBool(c, "booleanState")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	groups, err := reviewCycleGroupSrv.FindByBooleanState(c.Request.Context(), state)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, groups)
}

// @Summary List groups whose range contains a value
// @Description Matches groups with rangeStart <= value <= rangeEnd. Groups missing either bound never match.
// @Tags Review Cycle Groups
// @Produce json
// @Param value path int true "Value"
// @Success 200 {array} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-cycle-groups/range/{value} [get]
func getReviewCycleGroupsInRange(c *gin.Context) {
	value, err := pathInt64(c, "value")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	groups, err := reviewCycleGroupSrv.FindByValueInRange(c.Request.Context(), value)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, groups)
}

// @Summary List groups carrying an IDI
// @Tags Review Cycle Groups
// @Produce json
// @Param idi path string true "IDI value"
// @Success 200 {array} dto.ReviewCycleGroupDTO
// @Router /review-cycle-groups/idi/{idi} [get]
func getReviewCycleGroupsByIdi(c *gin.Context) {
	groups, err := reviewCycleGroupSrv.FindByListOfIdisContaining(c.Request.Context(), c.Param("idi"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, groups)
}

// @Summary Deactivate review cycle group
// @Description Marks the group inactive. The record stays readable.
// @Tags Review Cycle Groups
// @Produce json
// @Param id path int true "Review cycle group ID"
// @Param X-User-Id header string false "Acting user"
// @Success 200 {object} dto.ReviewCycleGroupDTO
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Router /review-cycle-groups/{id}/deactivate [patch]
func deactivateReviewCycleGroup(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	group, err := reviewCycleGroupSrv.SoftDelete(c.Request.Context(), id, actor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Deactivated review cycle group: id=%d", id)
	utils.JSONResponse(c, http.StatusOK, group)
}

// @Summary Delete review cycle group
// @Tags Review Cycle Groups
// @Param id path int true "Review cycle group ID"
// @Success 204 "Deleted"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Router /review-cycle-groups/{id} [delete]
func deleteReviewCycleGroup(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := reviewCycleGroupSrv.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Deleted review cycle group: id=%d", id)
	c.Status(http.StatusNoContent)
}
