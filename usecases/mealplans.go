package usecases

import (
	"mealprep-server/entities"
	"mealprep-server/planner"
	"mealprep-server/repositories"
)

type MealPlanUseCase struct {
	plans     repositories.MealPlanRepository
	users     repositories.UserRepository
	generator *planner.Generator
}

func NewMealPlanUseCase(plans repositories.MealPlanRepository, users repositories.UserRepository, generator *planner.Generator) *MealPlanUseCase {
	return &MealPlanUseCase{plans: plans, users: users, generator: generator}
}

type GenerateInput struct {
	UserID            string
	DietaryPreference string
	Allergies         []string
	NutritionalGoal   string
	NumberOfMeals     int
	PreferredCuisine  string
}

// Generate validates the request, runs the generator and persists the plan
// for its owner. Allergies is the only optional field; a zero NumberOfMeals
// counts as missing. Returns the plan together with its owner so handlers
// can shape the response without a second lookup.
func (uc *MealPlanUseCase) Generate(in GenerateInput) (*entities.MealPlan, *entities.User, error) {
	if in.DietaryPreference == "" || in.NutritionalGoal == "" ||
		in.PreferredCuisine == "" || in.NumberOfMeals <= 0 {
		return nil, nil, ErrMissingFields
	}

	user, err := uc.users.GetByID(in.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	result, err := uc.generator.Generate(planner.Request{
		DietaryPreference: in.DietaryPreference,
		Allergies:         in.Allergies,
		NutritionalGoal:   in.NutritionalGoal,
		NumberOfMeals:     in.NumberOfMeals,
		PreferredCuisine:  in.PreferredCuisine,
	})
	if err != nil {
		return nil, nil, ErrMissingFields
	}

	plan := &entities.MealPlan{
		UserID:            user.ID,
		DietaryPreference: in.DietaryPreference,
		Allergies:         entities.StringList(in.Allergies),
		NutritionalGoal:   in.NutritionalGoal,
		NumberOfMeals:     in.NumberOfMeals,
		PreferredCuisine:  in.PreferredCuisine,
		Meals:             result.Meals,
		GroceryList:       result.GroceryList,
	}
	if err := uc.plans.Create(plan); err != nil {
		return nil, nil, err
	}
	return plan, user, nil
}

// GetPlan fetches one plan for the caller. A missing plan is ErrPlanNotFound;
// a plan owned by someone else is ErrNotPlanOwner. Existence is not hidden
// from non-owners.
func (uc *MealPlanUseCase) GetPlan(callerID, planID string) (*entities.MealPlan, *entities.User, error) {
	plan, err := uc.plans.GetByID(planID)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, ErrPlanNotFound
	}
	if plan.UserID != callerID {
		return nil, nil, ErrNotPlanOwner
	}

	user, err := uc.users.GetByID(callerID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	return plan, user, nil
}

// ListPlans returns the caller's plans, newest first.
func (uc *MealPlanUseCase) ListPlans(callerID string) ([]entities.MealPlan, *entities.User, error) {
	user, err := uc.users.GetByID(callerID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	plans, err := uc.plans.GetByUserID(callerID)
	if err != nil {
		return nil, nil, err
	}
	return plans, user, nil
}
