package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tipapi/pkg/logger"
	"tipapi/services"
	"tipapi/services/dto"
	"tipapi/utils"
)

var criteriaSrv services.ReviewGroupCriteriaService

// SetReviewGroupCriteriaService initializes the review group criteria service instance.
func SetReviewGroupCriteriaService(srv services.ReviewGroupCriteriaService) {
	criteriaSrv = srv
}

// RegisterReviewGroupCriteriaRoutes mounts the review group criteria endpoints on rg.
func RegisterReviewGroupCriteriaRoutes(rg *gin.RouterGroup) {
	criteria := rg.Group("/review-group-criteria")
	{
		criteria.GET("", getAllCriteria)
		criteria.GET("/paginated", getCriteriaPaginated)
		criteria.GET("/search", searchCriteria)
		criteria.GET("/types", getCriteriaTypes)
		criteria.GET("/by-type/:criteriaType", getCriteriaByType)
		criteria.GET("/by-types", getCriteriaByTypes)
		criteria.GET("/count", countCriteria)
		criteria.GET("/count/by-type/:criteriaType", countCriteriaByType)
		criteria.GET("/exists", criteriaNameExists)
		criteria.GET("/exists/:id", criteriaExists)
		criteria.POST("", createCriteria)

		criteria.GET("/:id", getCriteriaByID)
		criteria.PUT("/:id", updateCriteria)
		criteria.PATCH("/:id/deactivate", deactivateCriteria)
		criteria.DELETE("/:id", deleteCriteria)
	}
}

// @Summary Create review group criteria
// @Description Creates a criteria. Names are unique and the type must be one of the supported criteria types.
// @Tags Review Group Criteria
// @Accept json
// @Produce json
// @Param X-User-Id header string false "Acting user"
// @Param criteria body dto.ReviewGroupCriteriaDTO true "Review group criteria"
// @Success 201 {object} dto.ReviewGroupCriteriaDTO
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} CriteriaConflictResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /review-group-criteria [post]
func createCriteria(c *gin.Context) {
	var in dto.ReviewGroupCriteriaDTO
	if err := bindBody(c, &in); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	created, err := criteriaSrv.Create(c.Request.Context(), &in, actor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Successfully created review group criteria: id=%d", *created.ReviewGroupCriteriaID)
	utils.JSONResponse(c, http.StatusCreated, created)
}

// @Summary Update review group criteria
// @Tags Review Group Criteria
// @Accept json
// @Produce json
// @Param id path int true "Criteria ID"
// @Param X-User-Id header string false "Acting user"
// @Param criteria body dto.ReviewGroupCriteriaDTO true "Review group criteria"
// @Success 200 {object} dto.ReviewGroupCriteriaDTO
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Failure 409 {object} CriteriaConflictResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /review-group-criteria/{id} [put]
func updateCriteria(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var in dto.ReviewGroupCriteriaDTO
	if err := bindBody(c, &in); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	updated, err := criteriaSrv.Update(c.Request.Context(), id, &in, actor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Successfully updated review group criteria: id=%d", id)
	utils.JSONResponse(c, http.StatusOK, updated)
}

// @Summary Get review group criteria by ID
// @Tags Review Group Criteria
// @Produce json
// @Param id path int true "Criteria ID"
// @Success 200 {object} dto.ReviewGroupCriteriaDTO
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Router /review-group-criteria/{id} [get]
func getCriteriaByID(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	criteria, err := criteriaSrv.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, criteria)
}

// @Summary List review group criteria
// @Tags Review Group Criteria
// @Produce json
// @Success 200 {array} dto.ReviewGroupCriteriaDTO
// @Router /review-group-criteria [get]
func getAllCriteria(c *gin.Context) {
	criteria, err := criteriaSrv.FindAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, criteria)
}

// @Summary List review group criteria one page at a time
// @Tags Review Group Criteria
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Param sortBy query string false "Sort field" default(id)
// @Param sortDirection query string false "asc or desc" default(asc)
// @Success 200 {object} ReviewGroupCriteriaPageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-group-criteria/paginated [get]
func getCriteriaPaginated(c *gin.Context) {
	req, err := bindPageRequest(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	page, err := criteriaSrv.FindAllPaginated(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, page)
}

// @Summary Search review group criteria by name
// @Description Case-insensitive substring match on the criteria name.
// @Tags Review Group Criteria
// @Produce json
// @Param criteriaName query string true "Name fragment"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Param sortBy query string false "Sort field" default(id)
// @Param sortDirection query string false "asc or desc" default(asc)
// @Success 200 {object} ReviewGroupCriteriaPageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-group-criteria/search [get]
func searchCriteria(c *gin.Context) {
	req, err := bindPageRequest(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	page, err := criteriaSrv.SearchByCriteriaName(c.Request.Context(), c.Query("criteriaName"), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, page)
}

// @Summary List supported criteria types
// @Tags Review Group Criteria
// @Produce json
// @Success 200 {array} string
// @Router /review-group-criteria/types [get]
func getCriteriaTypes(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, criteriaSrv.CriteriaTypes())
}

// @Summary List criteria of one type
// @Tags Review Group Criteria
// @Produce json
// @Param criteriaType path string true "Criteria type" example(FINANCIAL)
// @Success 200 {array} dto.ReviewGroupCriteriaDTO
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-group-criteria/by-type/{criteriaType} [get]
func getCriteriaByType(c *gin.Context) {
	criteriaType, err := parseCriteriaType(c.Param("criteriaType"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	criteria, err := criteriaSrv.FindByCriteriaType(c.Request.Context(), criteriaType)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, criteria)
}

// @Summary List criteria of several types
// @Tags Review Group Criteria
// @Produce json
// @Param types query string true "Comma-separated criteria types" example(FINANCIAL,OPERATIONAL)
// @Success 200 {array} dto.ReviewGroupCriteriaDTO
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-group-criteria/by-types [get]
func getCriteriaByTypes(c *gin.Context) {
	types, err := parseCriteriaTypes(strings.Join(c.QueryArray("types"), ","))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	criteria, err := criteriaSrv.FindByCriteriaTypes(c.Request.Context(), types)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, criteria)
}

// @Summary Count review group criteria
// @Tags Review Group Criteria
// @Produce json
// @Success 200 {integer} int64
// @Router /review-group-criteria/count [get]
func countCriteria(c *gin.Context) {
	count, err := criteriaSrv.Count(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, count)
}

// @Summary Count criteria of one type
// @Tags Review Group Criteria
// @Produce json
// @Param criteriaType path string true "Criteria type" example(FINANCIAL)
// @Success 200 {integer} int64
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-group-criteria/count/by-type/{criteriaType} [get]
func countCriteriaByType(c *gin.Context) {
	criteriaType, err := parseCriteriaType(c.Param("criteriaType"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	count, err := criteriaSrv.CountByCriteriaType(c.Request.Context(), criteriaType)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, count)
}

// @Summary Check whether a criteria exists
// @Tags Review Group Criteria
// @Produce json
// @Param id path int true "Criteria ID"
// @Success 200 {boolean} bool
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-group-criteria/exists/{id} [get]
func criteriaExists(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	exists, err := criteriaSrv.ExistsByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, exists)
}

// @Summary Check whether a criteria name is taken
// @Tags Review Group Criteria
// @Produce json
// @Param criteriaName query string true "Criteria name"
// @Success 200 {boolean} bool
// @Failure 400 {object} ValidationErrorResponse
// @Router /review-group-criteria/exists [get]
func criteriaNameExists(c *gin.Context) {
	name := c.Query("criteriaName")
	if strings.TrimSpace(name) == "" {
		utils.BadRequest(c, "criteriaName is required")
		return
	}

	exists, err := criteriaSrv.ExistsByCriteriaName(c.Request.Context(), name)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, exists)
}

// @Summary Deactivate review group criteria
// @Tags Review Group Criteria
// @Produce json
// @Param id path int true "Criteria ID"
// @Param X-User-Id header string false "Acting user"
// @Success 200 {object} dto.ReviewGroupCriteriaDTO
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Router /review-group-criteria/{id}/deactivate [patch]
func deactivateCriteria(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	criteria, err := criteriaSrv.SoftDelete(c.Request.Context(), id, actor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Deactivated review group criteria: id=%d", id)
	utils.JSONResponse(c, http.StatusOK, criteria)
}

// @Summary Delete review group criteria
// @Tags Review Group Criteria
// @Param id path int true "Criteria ID"
// @Success 204 "Deleted"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Router /review-group-criteria/{id} [delete]
func deleteCriteria(c *gin.Context) {
	id, err := pathUint(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := criteriaSrv.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Deleted review group criteria: id=%d", id)
	c.Status(http.StatusNoContent)
}
