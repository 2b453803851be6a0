package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "tabletop-reserve/internal/handler/dto/request"
	resdto "tabletop-reserve/internal/handler/dto/response"
	"tabletop-reserve/internal/handler/httperr"
	"tabletop-reserve/internal/usecase/commands"
	"tabletop-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParticipationHandler struct {
	cmds commands.ParticipationCommands
	q    queries.ParticipationQueries
}

func NewParticipationHandler(cmds commands.ParticipationCommands, q queries.ParticipationQueries) *ParticipationHandler {
	return &ParticipationHandler{cmds: cmds, q: q}
}

// @Summary Join a reservation
// @Tags participations
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param id path int true "Reservation ID"
// @Param request body reqdto.JoinReservationRequest false "Join options"
// @Success 201 {object} resdto.ParticipationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/users/{userId}/reservations/{id} [post]
func (h *ParticipationHandler) Join(c *gin.Context) {
	userID, reserveID, ok := h.keys(c)
	if !ok {
		return
	}
	var req reqdto.JoinReservationRequest
	// An empty body joins unconfirmed.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, bindError(err))
		return
	}

	p, err := h.cmds.AddUserToReserve(c.Request.Context(), userID, reserveID, req.Confirmed)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromParticipationRM(p))
}

// @Summary Confirm attendance
// @Tags participations
// @Produce json
// @Param userId path string true "User ID"
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ParticipationResponse
// @Failure 412 {object} httperr.Response
// @Router /api/users/{userId}/reservations/{id}/confirm [patch]
func (h *ParticipationHandler) Confirm(c *gin.Context) {
	userID, reserveID, ok := h.keys(c)
	if !ok {
		return
	}
	p, err := h.cmds.ConfirmReserveForUser(c.Request.Context(), userID, reserveID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromParticipationRM(p))
}

// @Summary Leave a reservation
// @Tags participations
// @Param userId path string true "User ID"
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 412 {object} httperr.Response
// @Router /api/users/{userId}/reservations/{id} [delete]
func (h *ParticipationHandler) Leave(c *gin.Context) {
	userID, reserveID, ok := h.keys(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteReserveFromUser(c.Request.Context(), userID, reserveID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the user's participation in a reservation
// @Tags participations
// @Produce json
// @Param userId path string true "User ID"
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ParticipationResponse
// @Failure 412 {object} httperr.Response
// @Router /api/users/{userId}/reservations/{id} [get]
func (h *ParticipationHandler) Get(c *gin.Context) {
	userID, reserveID, ok := h.keys(c)
	if !ok {
		return
	}
	p, err := h.q.FindReserveFromUser(c.Request.Context(), userID, reserveID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromParticipationRM(p))
}

// @Summary List the user's upcoming reservations
// @Tags participations
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.ReservationResponse
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/users/{userId}/reservations [get]
func (h *ParticipationHandler) ListForUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	list, err := h.q.FindReservesFromUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(list))
}

// @Summary Get a reservation with its participants
// @Tags participations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/participants [get]
func (h *ParticipationHandler) GetWithParticipants(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.FindReserveByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationRM(view))
}

func (h *ParticipationHandler) keys(c *gin.Context) (string, int64, bool) {
	userID, err := parseUserID(c)
	if err != nil {
		httperr.Abort(c, err)
		return "", 0, false
	}
	reserveID, err := parseID(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return "", 0, false
	}
	return userID, reserveID, true
}
