package controllers

import (
	"errors"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/pkg/resp"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductController struct{ Repo *repository.ProductRepository }

func NewProductController(r *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: r}
}

// GET /products (public: active only)
func (h *ProductController) List(c *gin.Context) {
	out, err := h.Repo.List(true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /products/:id
func (h *ProductController) Detail(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}
	p, err := h.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /admin/products (includes inactive)
func (h *ProductController) ListAll(c *gin.Context) {
	out, err := h.Repo.List(false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/products
func (h *ProductController) Create(c *gin.Context) {
	var req struct {
		Name        string          `json:"name" binding:"required"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price" binding:"required"`
		Category    string          `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p := entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Active:      true,
	}
	if err := h.Repo.Create(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /admin/products/:id
func (h *ProductController) Update(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}
	var req struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Price       *decimal.Decimal `json:"price"`
		Category    *string          `json:"category"`
		Active      *bool            `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := h.Repo.Update(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /admin/products/:id
func (h *ProductController) Delete(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// ---------------- Complements ----------------

// GET /complements
func (h *ProductController) ListComplements(c *gin.Context) {
	out, err := h.Repo.ListComplements()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/complements
func (h *ProductController) CreateComplement(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	comp := entity.Complement{Name: req.Name}
	if err := h.Repo.CreateComplement(&comp); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, comp)
}

// DELETE /admin/complements/:id
func (h *ProductController) DeleteComplement(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}
	if err := h.Repo.DeleteComplement(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
