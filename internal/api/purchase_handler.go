package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cvforge/internal/purchase"
	"cvforge/internal/template"
)

// PurchaseHandler 暴露购买历史查询与内部补录接口。
type PurchaseHandler struct {
	recorder *purchase.Recorder
}

func NewPurchaseHandler(recorder *purchase.Recorder) *PurchaseHandler {
	return &PurchaseHandler{recorder: recorder}
}

type purchaseItem struct {
	TemplateID    string    `json:"template_id"`
	AmountCents   int64     `json:"amount_cents"`
	TransactionID string    `json:"transaction_id"`
	Manual        bool      `json:"manual"`
	PurchasedAt   time.Time `json:"purchased_at"`
}

// GET /v1/purchases
// 当前用户的购买历史，新到旧。
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	records, err := h.recorder.History(c.Request.Context(), userID)
	if err != nil {
		Internal(c, "failed to list purchases")
		return
	}

	items := make([]purchaseItem, 0, len(records))
	for _, r := range records {
		items = append(items, purchaseItem{
			TemplateID:    r.TemplateID,
			AmountCents:   r.AmountCents,
			TransactionID: r.TransactionID,
			Manual:        purchase.IsSynthetic(r.TransactionID),
			PurchasedAt:   r.PurchasedAt,
		})
	}
	c.JSON(http.StatusOK, items)
}

type grantRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	TemplateID string `json:"template_id" binding:"required"`
}

// POST /internal/v1/grants
// 运营兜底：支付渠道异常时人工放行。写入占位金额与合成交易号，
// 后续 webhook 到达时由 Reconcile 修正。
func (h *PurchaseHandler) GrantTemplate(c *gin.Context) {
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if !template.Exists(req.TemplateID) {
		NotFound(c, "template not found")
		return
	}
	if template.IsFreeTier(req.TemplateID) {
		BadRequest(c, "template is free")
		return
	}

	outcome, err := h.recorder.RecordFallback(c.Request.Context(), req.UserID, req.TemplateID)
	if err != nil {
		Internal(c, "failed to grant template")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"granted":          true,
		"already_recorded": outcome == purchase.OutcomeNoop,
	})
}
