package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// --- Recipes ---

type createRecipeRequest struct {
	Name         string   `json:"name"         validate:"required"`
	Image        string   `json:"image"`
	Ingredients  []string `json:"ingredients"  validate:"required,min=1,dive,required"`
	Instructions string   `json:"instructions" validate:"required"`
	ImageURL     string   `json:"imageUrl"     validate:"omitempty,url"`
	CookingTime  int      `json:"cookingTime"  validate:"gte=0"`
	Nutrition    string   `json:"nutrition"`
	// Optional; must match the token subject when present.
	UserOwner string `json:"userOwner"`
}

type saveRecipeRequest struct {
	RecipeID string `json:"recipeId" validate:"required"`
	// Optional; must match the token subject when present.
	UserID string `json:"userId"`
}

type recipeResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	CookingTime  int      `json:"cookingTime"`
	Nutrition    string   `json:"nutrition,omitempty"`
	UserOwner    string   `json:"userOwner"`
	CreatedAt    string   `json:"createdAt"`
}

type createRecipeResponse struct {
	CreatedRecipe recipeResponse `json:"createdRecipe"`
}

type savedIDsResponse struct {
	SavedRecipes []string `json:"savedRecipes"`
}

type savedRecipesResponse struct {
	SavedRecipes []recipeResponse `json:"savedRecipes"`
}

// --- Meal plans ---

type mealPlanQuery struct {
	TimeFrame      string `query:"timeFrame"      validate:"omitempty,oneof=day"`
	TargetCalories int    `query:"targetCalories" validate:"gte=0,lte=20000"`
}
