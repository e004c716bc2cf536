package httpHandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mealprep-server/entities"
	"mealprep-server/usecases"
	"mealprep-server/ws"

	"github.com/gin-gonic/gin"
)

type MealPlanHandler struct {
	useCase *usecases.MealPlanUseCase
	feed    *ws.Manager
}

func NewMealPlanHandler(useCase *usecases.MealPlanUseCase, feed *ws.Manager) *MealPlanHandler {
	return &MealPlanHandler{useCase: useCase, feed: feed}
}

type GenerateRequest struct {
	DietaryPreference string   `json:"dietaryPreference"`
	Allergies         []string `json:"allergies"`
	NutritionalGoal   string   `json:"nutritionalGoal"`
	NumberOfMeals     int      `json:"numberOfMeals"`
	PreferredCuisine  string   `json:"preferredCuisine"`
}

// planData is the plan shape every meal endpoint returns.
type planData struct {
	ID                string               `json:"_id"`
	User              entities.PublicUser  `json:"user"`
	DietaryPreference string               `json:"dietary_preference"`
	Allergies         []string             `json:"allergies"`
	NutritionalGoal   string               `json:"nutritional_goal"`
	NumberOfMeals     int                  `json:"number_of_meals"`
	PreferredCuisine  string               `json:"preferred_cuisine"`
	Meals             entities.MealList    `json:"meals"`
	GroceryList       entities.GroceryList `json:"grocery_list"`
	Date              string               `json:"date"`
}

func newPlanData(plan *entities.MealPlan, user *entities.User) planData {
	return planData{
		ID:                plan.ID,
		User:              user.Public(),
		DietaryPreference: plan.DietaryPreference,
		Allergies:         plan.Allergies,
		NutritionalGoal:   plan.NutritionalGoal,
		NumberOfMeals:     plan.NumberOfMeals,
		PreferredCuisine:  plan.PreferredCuisine,
		Meals:             plan.Meals,
		GroceryList:       plan.GroceryList,
		Date:              plan.CreatedAt,
	}
}

type planCreatedEvent struct {
	Type          string `json:"type"` // plan_created
	PlanID        string `json:"plan_id"`
	NumberOfMeals int    `json:"number_of_meals"`
	Date          string `json:"date"`
}

// Generate handles POST /api/meals/generate (protected).
func (h *MealPlanHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}

	plan, user, err := h.useCase.Generate(usecases.GenerateInput{
		UserID:            CurrentUserID(c),
		DietaryPreference: req.DietaryPreference,
		Allergies:         req.Allergies,
		NutritionalGoal:   req.NutritionalGoal,
		NumberOfMeals:     req.NumberOfMeals,
		PreferredCuisine:  req.PreferredCuisine,
	})
	if err != nil {
		h.renderPlanError(c, err)
		return
	}

	h.notifyPlanCreated(plan)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    newPlanData(plan, user),
	})
}

// GetPlan handles GET /api/meals/:id (protected, owner only).
func (h *MealPlanHandler) GetPlan(c *gin.Context) {
	plan, user, err := h.useCase.GetPlan(CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.renderPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    newPlanData(plan, user),
	})
}

// MyPlans handles GET /api/meals/my-plans (protected), newest first.
func (h *MealPlanHandler) MyPlans(c *gin.Context) {
	plans, user, err := h.useCase.ListPlans(CurrentUserID(c))
	if err != nil {
		h.renderPlanError(c, err)
		return
	}

	data := make([]planData, 0, len(plans))
	for i := range plans {
		data = append(data, newPlanData(&plans[i], user))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// notifyPlanCreated pushes a plan_created event to the owner's live feed
// connections, if any.
func (h *MealPlanHandler) notifyPlanCreated(plan *entities.MealPlan) {
	if h.feed == nil {
		return
	}
	payload, _ := json.Marshal(planCreatedEvent{
		Type:          "plan_created",
		PlanID:        plan.ID,
		NumberOfMeals: plan.NumberOfMeals,
		Date:          plan.CreatedAt,
	})
	h.feed.NotifyUser(plan.UserID, payload)
}

func (h *MealPlanHandler) renderPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
	case errors.Is(err, usecases.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meal plan not found"})
	case errors.Is(err, usecases.ErrNotPlanOwner):
		// Wrong owner is a 401 in the public contract, not a 403.
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}
