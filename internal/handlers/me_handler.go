package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CampusPayServices/fee-slot-booking/internal/middleware"
	ucbooking "github.com/CampusPayServices/fee-slot-booking/internal/usecase/booking"
)

type MeHandler struct {
	getSessionUC *ucbooking.GetSession
}

func NewMeHandler(getSessionUC *ucbooking.GetSession) *MeHandler {
	return &MeHandler{getSessionUC: getSessionUC}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	sess, err := h.getSessionUC.Execute(c.Request.Context(), sessionID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": sessionView(sess),
	})
}
