// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/elnet/electronics-network/internal/i18n"
	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

// callerFrom returns the authenticated caller or writes a 401.
func callerFrom(c *gin.Context) (models.Caller, bool) {
	caller, exists := utils.GetCallerFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return models.Caller{}, false
	}
	return caller, true
}

// pathID parses the :id parameter or writes a 400.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyInvalidID), nil)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes and validates the request body or writes a 400.
func bindJSON(c *gin.Context, req interface{}) bool {
	lang := utils.GetLangFromContext(c)

	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

// respondError maps service and domain errors to responses. resource names
// the i18n prefix used for not found messages.
func respondError(c *gin.Context, err error, resource string) {
	lang := utils.GetLangFromContext(c)

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		utils.DomainValidationResponse(c, ve)
		return
	}

	if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAdminAccessDenied))
	case errors.Is(err, services.ErrReferenceNotFound):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyReferenceNotFound), gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrUsernameTaken):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyUserExists))
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"path":       c.FullPath(),
			"request_id": utils.GetRequestIDFromContext(c),
		}).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}
