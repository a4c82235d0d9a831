package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/CampusPayServices/fee-slot-booking/internal/config"
	"github.com/CampusPayServices/fee-slot-booking/internal/httpresp"
	"github.com/CampusPayServices/fee-slot-booking/internal/middleware"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
	ucbooking "github.com/CampusPayServices/fee-slot-booking/internal/usecase/booking"
)

type AuthHandler struct {
	loginUC  *ucbooking.Login
	logoutUC *ucbooking.Logout
	config   *config.Config
}

func NewAuthHandler(
	loginUC *ucbooking.Login,
	logoutUC *ucbooking.Logout,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		loginUC:  loginUC,
		logoutUC: logoutUC,
		config:   cfg,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email string `json:"email"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sess, err := h.loginUC.Execute(c.Request.Context(), ucbooking.LoginInput{
		Email: req.Email,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	token, err := h.generateToken(sess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	httpresp.Created(c, gin.H{
		"session": sessionView(sess),
		"token":   token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	if err := h.logoutUC.Execute(c.Request.Context(), sessionID); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(sess *models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   sess.ID,
		"email": sess.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
