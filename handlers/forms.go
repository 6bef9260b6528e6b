package handlers

import (
	"errors"
	"net/http"
	"strings"

	"clearbook/services/analytics"
	"clearbook/services/forms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormsHandler accepts site form submissions (contact, quote request) in
// JSON or form-encoded shape and relays them.
type FormsHandler struct {
	relay     forms.RelayService
	analytics analytics.Emitter
	logger    *zap.Logger
}

func NewFormsHandler(relay forms.RelayService, emitter analytics.Emitter, logger *zap.Logger) *FormsHandler {
	return &FormsHandler{relay: relay, analytics: emitter, logger: logger}
}

// Submit handles POST /api/forms/:formName.
func (h *FormsHandler) Submit(c *gin.Context) {
	formName := c.Param("formName")

	data, err := h.parsePayload(c)
	if err != nil {
		h.logger.Error("failed to parse form submission", zap.String("formName", formName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "failed to process submission",
			"fallback": "Please contact us directly at hello@1clickclearance.co.uk",
		})
		return
	}

	h.analytics.TrackFormSubmit(formName, data)

	receipt, err := h.relay.Submit(c.Request.Context(), formName, data)
	if err != nil {
		var validationErr *forms.ValidationFailedError
		if errors.As(err, &validationErr) {
			h.analytics.TrackFormError(formName, "validation failed")
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "submission failed validation",
				"errors": validationErr.Errors,
			})
			return
		}
		h.analytics.TrackFormError(formName, err.Error())
		h.logger.Error("form relay failed", zap.String("formName", formName), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    "submission could not be delivered",
			"fallback": "Please contact us directly at hello@1clickclearance.co.uk",
		})
		return
	}

	h.analytics.TrackFormSuccess(formName, map[string]any{"formName": formName})
	c.JSON(http.StatusOK, receipt)
}

// parsePayload reads a submission as JSON or as form/multipart fields.
// Uploaded files are summarised (name and size), never stored.
func (h *FormsHandler) parsePayload(c *gin.Context) (map[string]any, error) {
	contentType := c.ContentType()

	if strings.Contains(contentType, "application/json") {
		var data map[string]any
		if err := c.ShouldBindJSON(&data); err != nil {
			return nil, err
		}
		return data, nil
	}

	if err := c.Request.ParseMultipartForm(10 << 20); err != nil && !strings.Contains(contentType, "application/x-www-form-urlencoded") {
		return nil, err
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}

	data := make(map[string]any, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) == 1 {
			data[key] = values[0]
		} else {
			data[key] = values
		}
	}
	if c.Request.MultipartForm != nil {
		for field, files := range c.Request.MultipartForm.File {
			names := make([]map[string]any, 0, len(files))
			for _, f := range files {
				names = append(names, map[string]any{"filename": f.Filename, "size": f.Size})
			}
			data[field] = names
		}
	}
	return data, nil
}
