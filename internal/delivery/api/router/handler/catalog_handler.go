package handler

import (
	"log/slog"
	"net/http"

	"hostelbites/internal/delivery/api/response"
	"hostelbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves meals and packages
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListMealsQuery filters GET /meals.
type ListMealsQuery struct {
	PageQuery
	Category string  `query:"category"`
	Search   string  `query:"search"`
	MinPrice float64 `query:"minPrice"`
	MaxPrice float64 `query:"maxPrice"`
}

// CreateMealRequest is the body of POST /api/v1/admin/meals.
type CreateMealRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Category         string   `json:"category" validate:"required,max=50"`
	Price            float64  `json:"price" validate:"gte=0"`
	Description      string   `json:"description" validate:"max=2000"`
	Image            string   `json:"image" validate:"omitempty,url"`
	Ingredients      []string `json:"ingredients" validate:"dive,required"`
	DistributorEmail string   `json:"distributorEmail" validate:"omitempty,email"`
}

// CreatePackageRequest is the body of POST /api/v1/admin/packages.
type CreatePackageRequest struct {
	Name     string   `json:"name" validate:"required,max=50"`
	Price    int64    `json:"price" validate:"gt=0"`
	Level    int      `json:"level" validate:"gte=0"`
	Benefits []string `json:"benefits" validate:"dive,required"`
}

// ListMeals returns a filtered page of meals
func (h *CatalogHandler) ListMeals(c echo.Context) error {
	var query ListMealsQuery
	if err := bindAndValidate(c, &query, "Invalid meal query"); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.catalogUC.ListMeals(c.Request().Context(), &usecase.ListMealsInput{
		Category: query.Category,
		Search:   query.Search,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Skip:     query.Skip,
		Limit:    query.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetMeal returns one meal with its likes and reviews
func (h *CatalogHandler) GetMeal(c echo.Context) error {
	meal, err := h.catalogUC.GetMeal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meal)
}

// CreateMeal adds a meal to the catalog
func (h *CatalogHandler) CreateMeal(c echo.Context) error {
	var req CreateMealRequest
	if err := bindAndValidate(c, &req, "Invalid meal input"); err != nil {
		return response.HandleAppError(c, err)
	}

	meal, err := h.catalogUC.CreateMeal(c.Request().Context(), &usecase.CreateMealInput{
		Title:            req.Title,
		Category:         req.Category,
		Price:            req.Price,
		Description:      req.Description,
		Image:            req.Image,
		Ingredients:      req.Ingredients,
		DistributorEmail: req.DistributorEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, meal)
}

// ListPackages returns all subscription tiers
func (h *CatalogHandler) ListPackages(c echo.Context) error {
	packages, err := h.catalogUC.ListPackages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, packages)
}

// GetPackage returns a subscription tier by name
func (h *CatalogHandler) GetPackage(c echo.Context) error {
	pkg, err := h.catalogUC.GetPackage(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pkg)
}

// CreatePackage adds a subscription tier
func (h *CatalogHandler) CreatePackage(c echo.Context) error {
	var req CreatePackageRequest
	if err := bindAndValidate(c, &req, "Invalid package input"); err != nil {
		return response.HandleAppError(c, err)
	}

	pkg, err := h.catalogUC.CreatePackage(c.Request().Context(), &usecase.CreatePackageInput{
		Name:     req.Name,
		Price:    req.Price,
		Level:    req.Level,
		Benefits: req.Benefits,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pkg)
}
