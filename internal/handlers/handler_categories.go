package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
)

// getCategorySuggestions godoc
// @Summary Category suggestions
// @Description Returns the fixed suggestion sets for expense and income categories. The category field on transactions stays free text; these only seed client pickers.
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategorySuggestionsResponse
// @Security BearerAuth
// @Router /categories [get]
func getCategorySuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategorySuggestionsResponse{
		Expense: domain.ExpenseCategories,
		Income:  domain.IncomeCategories,
	})
}

// registerCategoryRoutes registers the category suggestion route.
func registerCategoryRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", getCategorySuggestions)
}
