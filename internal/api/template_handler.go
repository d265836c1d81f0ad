package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvforge/internal/api/middleware"
	"cvforge/internal/entitlement"
	"cvforge/internal/template"
)

// TemplateHandler 暴露静态模板目录与访问权查询。
type TemplateHandler struct {
	entitlements *entitlement.Resolver
}

func NewTemplateHandler(entitlements *entitlement.Resolver) *TemplateHandler {
	return &TemplateHandler{entitlements: entitlements}
}

type templateListItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Colors      template.Colors `json:"colors"`
	Free        bool            `json:"free"`
}

func newTemplateListItem(t template.Template) templateListItem {
	return templateListItem{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Colors:      t.Colors,
		Free:        template.IsFreeTier(t.ID),
	}
}

// GET /v1/templates
// 模板目录是静态注册表，匿名可见。
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	catalog := template.List()
	items := make([]templateListItem, 0, len(catalog))
	for _, t := range catalog {
		items = append(items, newTemplateListItem(t))
	}
	c.JSON(http.StatusOK, items)
}

// GET /v1/templates/:id
// 未知 slug 不报 404：注册表静默回落到默认模板。
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	t := template.Get(c.Param("id"))
	c.JSON(http.StatusOK, newTemplateListItem(t))
}

// GET /v1/templates/:id/access
// 匿名请求也允许：返回 has_access=false 与标价。
func (h *TemplateHandler) CheckTemplateAccess(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	access, err := h.entitlements.CheckAccess(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		Internal(c, "failed to check template access")
		return
	}
	c.JSON(http.StatusOK, access)
}

// GET /v1/templates/owned
// 返回当前身份可用的全部模板 slug（匿名时只有免费模板）。
func (h *TemplateHandler) ListOwnedTemplates(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	owned, err := h.entitlements.ListOwned(c.Request.Context(), userID)
	if err != nil {
		Internal(c, "failed to list owned templates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"template_ids": owned})
}
