package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financebook/internal/errors"
	"financebook/internal/middleware"
	"financebook/internal/models"
	"financebook/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// LoginRequest is the form-encoded login payload of the OAuth2 password flow.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Create a user account
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.RegisterInput true "User registration data"
// @Success     201 {object} models.User "User registered"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Username taken"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.Username, req.Password, req.Surname, req.Prename)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles user login
// @Summary     Login user
// @Description Exchange username and password for a bearer token
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Username"
// @Param       password formData string true "Password"
// @Success     200 {object} models.TokenResponse "Bearer token"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.AttemptLogin(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: middleware.TokenType})
}

// Me returns the authenticated user
// @Summary     Current user
// @Description Get the user the bearer token belongs to
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.User "Current user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrUserNotFound.Code) {
			respondWithError(c, apperrors.ErrUnauthorized)
			return
		}
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
