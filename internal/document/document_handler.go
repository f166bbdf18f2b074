package document

import (
	"io"
	"net/http"
	"strconv"

	"foome-hcm/internal/shared/apperror"
	"foome-hcm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("document.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("document request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upload(c *gin.Context) {
	var req UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http upload document validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	// Members can only file documents against themselves; admins may upload
	// on behalf of anyone in the company.
	if !c.GetBool("is_admin") {
		req.EmployeeID = c.GetString("employee_id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("http upload document open file failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "could not read file")
		return
	}
	defer file.Close()

	resp, err := h.service.Upload(
		c.Request.Context(),
		c.GetString("company_id"),
		req,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if !c.GetBool("is_admin") {
		employeeID = c.GetString("employee_id")
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("employee_id"),
		c.GetBool("is_admin"),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSignedURL(c *gin.Context) {
	resp, err := h.service.SignedURL(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("employee_id"),
		c.GetBool("is_admin"),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("employee_id"),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http reject document validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Reject(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("employee_id"),
		c.Param("id"),
		req.Reason,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetExpiring(c *gin.Context) {
	withinDays, _ := strconv.Atoi(c.Query("expiring_within_days"))

	resp, err := h.service.GetExpiring(c.Request.Context(), c.GetString("company_id"), withinDays)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// ServeFile streams a blob referenced by a signed token. The token is the
// whole authorization; no session is required, which is what lets these
// links be handed to a browser download.
func (h *Handler) ServeFile(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "token is required")
		return
	}

	rc, fileName, err := h.service.OpenByToken(c.Request.Context(), token)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Warn("http serve file stream interrupted", zap.Error(err))
	}
}
