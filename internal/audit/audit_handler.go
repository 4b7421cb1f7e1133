package audit

import (
	"net/http"
	"strconv"

	"go-dispatch/internal/shared/apperror"
	"go-dispatch/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	recorder Recorder
	logger   *zap.Logger
}

func NewHandler(recorder Recorder, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("audit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.handler")
	}
	return &Handler{recorder: recorder, logger: l}
}

func (h *Handler) GetAuditLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, apperror.New(
			apperror.CodeInvalidInput,
			"limit must be a positive integer",
			http.StatusBadRequest,
		))
		return
	}

	action := Action(c.Query("action"))
	switch action {
	case "", ActionLoginSuccess, ActionLoginFailed, ActionLogout,
		ActionUserCreated, ActionUserUpdated, ActionPasswordChanged:
	default:
		c.JSON(http.StatusBadRequest, apperror.New(
			apperror.CodeInvalidInput,
			"unknown audit action",
			http.StatusBadRequest,
		))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	entries := h.recorder.Query(ctx, QueryFilter{
		Limit:    limit,
		Action:   action,
		Username: c.Query("username"),
	})
	if entries == nil {
		entries = []Entry{}
	}

	c.JSON(http.StatusOK, entries)
}
