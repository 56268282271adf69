package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipess/recipe-api/internal/api/metrics"
	"github.com/recipess/recipe-api/internal/core/ports"
)

// RecipeHandler handles HTTP requests for recipes and saved recipes.
type RecipeHandler struct {
	service ports.RecipeService
}

func NewRecipeHandler(service ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// List handles GET /recipes.
//
// @Summary      List all recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {array}   recipeResponse
// @Failure      500  {object}  errorResponse
// @Router       /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecipeResponses(recipes))
}

// Get handles GET /recipes/:recipeId.
//
// @Summary      Get a recipe by id
// @Tags         recipes
// @Produce      json
// @Param        recipeId  path      string  true  "Recipe id"
// @Success      200       {object}  recipeResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /recipes/{recipeId} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	recipe, err := h.service.Get(c.Request().Context(), c.Param("recipeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Create handles POST /recipes. The owner is the authenticated user.
//
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecipeRequest  true  "Recipe"
// @Success      201   {object}  createRecipeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := matchSubject(subject, req.UserOwner); err != nil {
		return err
	}

	recipe, err := h.service.Create(c.Request().Context(), toCreateRecipeInput(req, subject))
	if err != nil {
		return err
	}

	metrics.RecipesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createRecipeResponse{CreatedRecipe: toRecipeResponse(recipe)})
}

// Save handles PUT /recipes: appends a recipe to the caller's saved list.
//
// @Summary      Save a recipe for the authenticated user
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveRecipeRequest  true  "Recipe to save"
// @Success      201   {object}  savedIDsResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /recipes [put]
func (h *RecipeHandler) Save(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req saveRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := matchSubject(subject, req.UserID); err != nil {
		return err
	}

	saved, err := h.service.Save(c.Request().Context(), subject, req.RecipeID)
	if err != nil {
		return err
	}

	metrics.RecipesSavedTotal.Inc()
	return c.JSON(http.StatusCreated, savedIDsResponse{SavedRecipes: saved})
}

// SavedIDs handles GET /recipes/savedRecipes/ids/:userId.
//
// @Summary      Ids of a user's saved recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id (must be the caller)"
// @Success      200     {object}  savedIDsResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /recipes/savedRecipes/ids/{userId} [get]
func (h *RecipeHandler) SavedIDs(c echo.Context) error {
	ids, err := h.service.SavedIDs(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, savedIDsResponse{SavedRecipes: ids})
}

// SavedRecipes handles GET /recipes/savedRecipes/:userId.
//
// @Summary      A user's saved recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id (must be the caller)"
// @Success      200     {object}  savedRecipesResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /recipes/savedRecipes/{userId} [get]
func (h *RecipeHandler) SavedRecipes(c echo.Context) error {
	recipes, err := h.service.SavedRecipes(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, savedRecipesResponse{SavedRecipes: toRecipeResponses(recipes)})
}
