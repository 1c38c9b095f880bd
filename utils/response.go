package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tipapi/pkg/apperrors"
	"tipapi/pkg/logger"
)

// ErrorBody is the envelope of every error response.
type ErrorBody struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
	RequestID string `json:"requestId,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Error codes for failures raised outside the service layer.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternalError = "INTERNAL_ERROR"
)

// JSONResponse sends a JSON response with the specified HTTP status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ErrorResponse maps err to a status code and writes the error envelope.
// Infrastructure errors are logged in full but reported to the caller opaquely.
func ErrorResponse(c *gin.Context, err error) {
	status, code, message := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("API Error [%s]: %v", RequestID(c), err)
	} else {
		logger.Warnf("API Error [%s]: %v", RequestID(c), err)
	}
	c.AbortWithStatusJSON(status, ErrorBody{
		Success:   false,
		Message:   message,
		ErrorCode: code,
		RequestID: RequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// BadRequest writes a 400 envelope for malformed path or query input.
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, apperrors.Validation(message, nil))
}

func classify(err error) (int, string, string) {
	if appErr, ok := apperrors.As(err); ok {
		switch appErr.Kind {
		case apperrors.KindNotFound:
			return http.StatusNotFound, appErr.Code, appErr.Message
		case apperrors.KindConflict:
			return http.StatusConflict, appErr.Code, appErr.Message
		case apperrors.KindValidation:
			msg := appErr.Message
			if appErr.Err != nil {
				msg += ": " + ValidationMessage(appErr.Err)
			}
			return http.StatusBadRequest, appErr.Code, msg
		}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, apperrors.CodeValidation, ValidationMessage(err)
	}

	return http.StatusInternalServerError, CodeInternalError, "internal server error"
}
