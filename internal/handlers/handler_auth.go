package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
	"github.com/shiftbooks/backoffice/internal/middleware"
)

// authHandler handles credential login and Google sign-in. Both paths end in
// the same HS256 token the rest of the API trusts.
type authHandler struct {
	userService  ports.UserSvc
	tokenService ports.TokenSvc
}

// registerAuthRoutes sets up the public authentication routes with an IP
// rate limit on the credential endpoint.
func registerAuthRoutes(r *gin.Engine, services *ports.ServiceContainer) {
	h := &authHandler{userService: services.User, tokenService: services.Token}

	// 5 attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
		auth.POST("/google/exchange-code", h.exchangeCodeGoogle)
	}
}

// login godoc
// @Summary Local credential login
// @Description Authenticates with email and password and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.DataResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	token, expiresAt, err := h.tokenService.IssueToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(dto.TokenResponse{Token: token, ExpiresAt: expiresAt}))
}

// exchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for a bearer token
// @Description Trades the OAuth code from the browser for a verified Google identity, provisions the user on first sight, and mints a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.DataResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeCodeGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	uid, email, err := h.tokenService.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "Failed to verify Google sign-in")
		return
	}

	user, err := h.userService.Provision(c.Request.Context(), uid, email)
	if err != nil {
		respondError(c, err, "Failed to provision user")
		return
	}

	token, expiresAt, err := h.tokenService.IssueToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	logger.Info("Google sign-in completed", slog.String("user_id", user.UID))
	c.JSON(http.StatusOK, dto.Wrap(dto.TokenResponse{Token: token, ExpiresAt: expiresAt}))
}

// getMe godoc
// @Summary Current identity
// @Description Returns the caller's resolved local user row.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.DataResponse{data=dto.MeResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func getMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(dto.MeResponse{
		UID:    user.UID,
		Email:  user.Email,
		Role:   string(user.Role),
		Status: string(user.Status),
	}))
}
