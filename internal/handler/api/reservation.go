package api

import (
	"net/http"
	"time"

	reqdto "tabletop-reserve/internal/handler/dto/request"
	resdto "tabletop-reserve/internal/handler/dto/response"
	"tabletop-reserve/internal/handler/httperr"
	"tabletop-reserve/internal/usecase/commands"
	"tabletop-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	loc  *time.Location
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, loc *time.Location) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Create reservation
// @Description Create a reservation; shop events are announced to the shop's followers
// @Tags reservations
// @Accept json
// @Produce json
// @Param shopId path int true "Shop ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shops/{shopId}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	shopID, err := parseID(c, "shopId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput(), shopID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationRM(view))
}

// @Summary Update reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), req.ToInput(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationRM(view))
}

// @Summary Delete reservation
// @Tags reservations
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Success 204 "No Content"
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	list, err := h.q.GetAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(list))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationRM(view))
}

// @Summary List a table's reservations for one day
// @Tags reservations
// @Produce json
// @Param tableId path int true "Table ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Success 204 "No Content"
// @Router /api/tables/{tableId}/reservations [get]
func (h *ReservationHandler) ListByTableAndDate(c *gin.Context) {
	tableID, err := parseID(c, "tableId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	date, err := parseDate(c, "date", h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	list, err := h.q.GetAllByDate(c.Request.Context(), date, tableID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(list))
}

// @Summary List upcoming shop events, one per event
// @Tags events
// @Produce json
// @Param shopId path int true "Shop ID"
// @Success 200 {array} resdto.ReservationResponse
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/shops/{shopId}/events [get]
func (h *ReservationHandler) ListShopEvents(c *gin.Context) {
	shopID, err := parseID(c, "shopId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	list, err := h.q.FindAllUniqueShopEvents(c.Request.Context(), shopID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(list))
}

// @Summary Players the user recently shared a table with
// @Tags players
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.PlayerResponse
// @Router /api/users/{userId}/players [get]
func (h *ReservationHandler) ListLastPlayers(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	players, err := h.q.GetLastTenPlayers(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlayers(players))
}
