package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financebook/internal/models"
	"financebook/internal/services"
)

// CategoryHandler handles category and category type requests
type CategoryHandler struct {
	categoryService     services.CategoryServicer
	categoryTypeService services.CategoryTypeServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer, categoryTypeService services.CategoryTypeServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, categoryTypeService: categoryTypeService}
}

// ListCategories lists every category of the user
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Category
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListCategoriesByType lists the categories of one type
// @Summary     List categories of a type
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       typeId path int true "Category type ID"
// @Success     200 {array}  models.Category
// @Failure     404 {object} ErrorResponse "Type not found"
// @Router      /categories/by-type/{typeId} [get]
func (h *CategoryHandler) ListCategoriesByType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	typeID, err := parsePathID(c, "typeId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategoriesByType(userID, typeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory returns one category
// @Summary     Get a category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	h.byID(c, func(userID, id uint) (any, error) {
		return h.categoryService.GetCategory(userID, id)
	})
}

// GetCategoryTree returns a category with its nested subtree
// @Summary     Get a category subtree
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /categories/{id}/tree [get]
func (h *CategoryHandler) GetCategoryTree(c *gin.Context) {
	h.byID(c, func(userID, id uint) (any, error) {
		return h.categoryService.GetCategoryTree(userID, id)
	})
}

// GetDescendants lists every category below a category
// @Summary     List descendants
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {array}  models.Category
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /categories/{id}/descendants [get]
func (h *CategoryHandler) GetDescendants(c *gin.Context) {
	h.byID(c, func(userID, id uint) (any, error) {
		return h.categoryService.GetDescendants(userID, id)
	})
}

// CreateCategory creates a category
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body models.CategoryInput true "Category"
// @Success     201 {object} models.Category
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req models.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	category, err := h.categoryService.CreateCategory(userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory renames, re-parents or changes the icon of a category
// @Summary     Update a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                   true "Category ID"
// @Param       request body models.CategoryUpdate true "Changes"
// @Success     200 {object} models.Category
// @Failure     400 {object} ErrorResponse "Invalid input or parent"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req models.CategoryUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	category, err := h.categoryService.UpdateCategory(userID, id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListCategoryTypes lists the user's category types
// @Summary     List category types
// @Tags        category-types
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.CategoryType
// @Router      /category-types [get]
func (h *CategoryHandler) ListCategoryTypes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	types, err := h.categoryTypeService.ListCategoryTypes(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateCategoryType creates a category type
// @Summary     Create a category type
// @Tags        category-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body models.CategoryTypeInput true "Category type"
// @Success     201 {object} models.CategoryType
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /category-types [post]
func (h *CategoryHandler) CreateCategoryType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req models.CategoryTypeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	ct, err := h.categoryTypeService.CreateCategoryType(userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}

// byID runs a read keyed by the :id path parameter and writes its result.
func (h *CategoryHandler) byID(c *gin.Context, read func(userID, id uint) (any, error)) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := read(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
