package handlers

import (
	"net/http"

	request "omis_backend/internal/adapter/http/dto/request"
	response "omis_backend/internal/adapter/http/dto/response"
	"omis_backend/internal/usecase"
	"omis_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAssigneePayload = pkg.NewDomainErrorSimple("INVALID_ASSIGNEE_INPUT", "Invalid assignee payload", http.StatusBadRequest)
)

// AssigneeHandler handles HTTP requests for the adviser time ledger:
// assignees with estimated/actual time and watch-only subscribers.

type AssigneeHandler struct {
	usecase usecase.IAssigneeUseCase
}

func NewAssigneeHandler(uc usecase.IAssigneeUseCase) *AssigneeHandler {
	return &AssigneeHandler{usecase: uc}
}

func (h *AssigneeHandler) ListAssignees(c *gin.Context) {
	assignees, err := h.usecase.ListAssignees(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AssigneesFromEntities(assignees))
}

// SetAssignees replaces the order's full assignee set. Which time fields can
// change depends on the order status; violations come back as conflicts.
func (h *AssigneeHandler) SetAssignees(c *gin.Context) {
	var payload request.SetAssigneesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssigneePayload.HTTPStatus, errInvalidAssigneePayload.ToHTTPError())
		return
	}

	assignees, err := h.usecase.SetAssignees(c.Request.Context(), c.Param("id"), payload.ToInputs())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AssigneesFromEntities(assignees))
}

func (h *AssigneeHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.usecase.ListSubscribers(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SubscribersFromEntities(subscribers))
}

func (h *AssigneeHandler) SetSubscribers(c *gin.Context) {
	var payload request.SetSubscribersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssigneePayload.HTTPStatus, errInvalidAssigneePayload.ToHTTPError())
		return
	}

	subscribers, err := h.usecase.SetSubscribers(c.Request.Context(), c.Param("id"), payload.ToAdviserIDs())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SubscribersFromEntities(subscribers))
}
