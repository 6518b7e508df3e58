package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/recipe-service/internal/model"
	"github.com/platewise/recipe-service/internal/service"
	"github.com/platewise/recipe-service/internal/storage"
)

// RecipeHandler serves the /v1/recipes CRUD surface.
type RecipeHandler struct {
	service *service.RecipeService
}

func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.Engine) {
	recipes := router.Group("/v1/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	all, err := h.service.GetAllRecipes(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.service.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(c, http.StatusNotFound, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "Failed to fetch recipe")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id, err := h.service.CreateRecipe(c.Request.Context(), doc)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalid):
			writeError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrAlreadyExists):
			writeError(c, http.StatusConflict, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "Failed to create recipe")
		}
		return
	}

	c.Header("Location", "/v1/recipes/"+id)
	c.Status(http.StatusCreated)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.service.UpdateRecipe(c.Request.Context(), c.Param("id"), doc)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalid):
			writeError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			writeError(c, http.StatusNotFound, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "Failed to update recipe")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	err := h.service.DeleteRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(c, http.StatusNotFound, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "Failed to delete recipe")
		return
	}

	c.Status(http.StatusNoContent)
}
