package httpHandler

import (
	"errors"
	"net/http"

	"mealprep-server/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.UserUseCase
}

func NewAuthHandler(useCase *usecases.UserUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userProfile is the extended user shape for GET /api/auth.
type userProfile struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	DietaryPreference string   `json:"dietary_preference"`
	Allergies         []string `json:"allergies"`
	NutritionalGoal   string   `json:"nutritional_goal"`
	PreferredCuisine  string   `json:"preferred_cuisine"`
	Date              string   `json:"date"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  usecases.ValidationErrors{{Msg: "Invalid request body"}},
		})
		return
	}

	result, err := h.useCase.Register(usecases.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.renderAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User.Public(),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  usecases.ValidationErrors{{Msg: "Invalid request body"}},
		})
		return
	}

	result, err := h.useCase.Login(usecases.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.renderAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User.Public(),
	})
}

// GetCurrentUser handles GET /api/auth (protected).
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.useCase.GetByID(CurrentUserID(c))
	if err != nil {
		if errors.Is(err, usecases.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": userProfile{
			ID:                user.ID,
			Name:              user.Name,
			Email:             user.Email,
			DietaryPreference: user.DietaryPreference,
			Allergies:         user.Allergies,
			NutritionalGoal:   user.NutritionalGoal,
			PreferredCuisine:  user.PreferredCuisine,
			Date:              user.CreatedAt,
		},
	})
}

func (h *AuthHandler) renderAuthError(c *gin.Context, err error) {
	var verrs usecases.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": verrs})
	case errors.Is(err, usecases.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}
