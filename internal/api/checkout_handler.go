package api

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cvforge/internal/api/middleware"
	"cvforge/internal/database"
	"cvforge/internal/entitlement"
	"cvforge/internal/payment"
	"cvforge/internal/purchase"
	"cvforge/internal/template"
)

// CheckoutHandler 负责发起支付、回跳核验与 webhook 入账。
// 购买确认有两条路径（webhook 与回跳核验），两条都汇入同一个
// Recorder，由数据库唯一约束保证重复确认不会产生重复记录。
type CheckoutHandler struct {
	db              *gorm.DB
	provider        payment.Provider
	recorder        *purchase.Recorder
	entitlements    *entitlement.Resolver
	logger          *slog.Logger
	webhookSecret   string
	frontendBaseURL string
}

// NewCheckoutHandler 构造结账处理器。
func NewCheckoutHandler(
	db *gorm.DB,
	provider payment.Provider,
	recorder *purchase.Recorder,
	entitlements *entitlement.Resolver,
	logger *slog.Logger,
	webhookSecret string,
	frontendBaseURL string,
) *CheckoutHandler {
	return &CheckoutHandler{
		db:              db,
		provider:        provider,
		recorder:        recorder,
		entitlements:    entitlements,
		logger:          logger,
		webhookSecret:   webhookSecret,
		frontendBaseURL: strings.TrimRight(strings.TrimSpace(frontendBaseURL), "/"),
	}
}

type createCheckoutRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

// POST /v1/checkout/session
// 为当前用户创建一个付费模板的结账会话。
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c).With(
		slog.Uint64("user_id", uint64(userID)),
		slog.String("template_id", req.TemplateID),
	)

	if !template.Exists(req.TemplateID) {
		NotFound(c, "template not found")
		return
	}
	if template.IsFreeTier(req.TemplateID) {
		BadRequest(c, "template is free")
		return
	}

	access, err := h.entitlements.CheckAccess(ctx, &userID, req.TemplateID)
	if err != nil {
		logger.Error("entitlement check failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}
	if access.HasAccess {
		Conflict(c, "template already purchased")
		return
	}

	t := template.Get(req.TemplateID)
	checkout, err := h.provider.CreateCheckout(ctx, payment.CheckoutRequest{
		UserID:       userID,
		Email:        middleware.UserEmailFromContext(c),
		TemplateID:   t.ID,
		TemplateName: t.Name,
		RedirectURL:  h.frontendBaseURL + "/templates?purchase=pending",
	})
	if err != nil {
		logger.Error("create checkout failed", slog.Any("error", err))
		Internal(c, "failed to create checkout")
		return
	}

	// 会话记录仅用于排查，写失败不影响结账。
	session := database.CheckoutSession{
		UserID:     userID,
		TemplateID: t.ID,
		CheckoutID: checkout.ID,
		Status:     "pending",
	}
	if err := h.db.WithContext(ctx).Create(&session).Error; err != nil {
		logger.Warn("record checkout session failed", slog.Any("error", err))
	}

	logger.Info("checkout session created", slog.String("checkout_id", checkout.ID))
	c.JSON(http.StatusCreated, gin.H{
		"checkout_id": checkout.ID,
		"url":         checkout.URL,
	})
}

// GET /v1/checkout/verify?order_id=...
// 用户支付后回跳时的同步核验：webhook 可能还没到，主动拉取订单
// 并入账，保证用户一回来就能用上模板。
func (h *CheckoutHandler) VerifyOrder(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	orderID := strings.TrimSpace(c.Query("order_id"))
	if orderID == "" {
		BadRequest(c, "order_id is required")
		return
	}

	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c).With(
		slog.Uint64("user_id", uint64(userID)),
		slog.String("order_id", orderID),
	)

	order, err := h.provider.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("fetch order failed", slog.Any("error", err))
		Internal(c, "failed to verify order")
		return
	}

	orderUserID, err := order.CustomData.ParseUserID()
	if err != nil || orderUserID != userID {
		logger.Warn("order does not belong to caller")
		Forbidden(c, "order does not belong to current user")
		return
	}
	if order.CustomData.TemplateID == "" {
		BadRequest(c, "order is missing template data")
		return
	}

	outcome, err := h.recorder.Record(ctx, userID, order.CustomData.TemplateID, order.TotalCents, order.ID)
	if err != nil {
		logger.Error("record purchase failed", slog.Any("error", err))
		Internal(c, "failed to record purchase")
		return
	}

	h.markSessionCompleted(c, order.CustomData.TemplateID, userID)

	logger.Info("order verified",
		slog.String("template_id", order.CustomData.TemplateID),
		slog.Bool("already_recorded", outcome == purchase.OutcomeNoop),
	)
	c.JSON(http.StatusOK, gin.H{
		"template_id": order.CustomData.TemplateID,
		"has_access":  true,
	})
}

// POST /v1/payment/webhook
// 服务商异步通知。签名不合法直接 401，不泄露任何细节。
func (h *CheckoutHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		BadRequest(c, "failed to read body")
		return
	}

	if err := payment.VerifySignature(h.webhookSecret, body, c.GetHeader("X-Signature")); err != nil {
		h.logger.Warn("webhook signature verification failed", slog.Any("error", err))
		Unauthorized(c)
		return
	}

	event, err := payment.ParseWebhook(body)
	if err != nil {
		h.logger.Warn("webhook payload invalid", slog.Any("error", err))
		BadRequest(c, "invalid payload")
		return
	}

	if event.EventName != payment.EventOrderCreated {
		// 其他事件确认收到即可，避免服务商重试。
		c.Status(http.StatusOK)
		return
	}

	logger := h.logger.With(
		slog.String("order_id", event.OrderID),
		slog.String("template_id", event.CustomData.TemplateID),
	)

	userID, err := event.CustomData.ParseUserID()
	if err != nil {
		logger.Warn("webhook custom data invalid", slog.Any("error", err))
		BadRequest(c, "invalid custom data")
		return
	}
	if event.CustomData.TemplateID == "" || event.OrderID == "" {
		BadRequest(c, "incomplete order data")
		return
	}

	ctx := c.Request.Context()
	// Reconcile 会用真实交易号修正可能存在的人工兜底记录。
	outcome, err := h.recorder.Reconcile(ctx, userID, event.CustomData.TemplateID, event.TotalCents, event.OrderID)
	if err != nil {
		logger.Error("reconcile purchase failed", slog.Any("error", err))
		// 返回 5xx 让服务商重试。
		Internal(c, "failed to record purchase")
		return
	}

	h.markSessionCompleted(c, event.CustomData.TemplateID, userID)

	logger.Info("webhook processed",
		slog.Uint64("user_id", uint64(userID)),
		slog.Bool("already_recorded", outcome == purchase.OutcomeNoop),
	)
	c.Status(http.StatusOK)
}

func (h *CheckoutHandler) markSessionCompleted(c *gin.Context, templateID string, userID uint) {
	err := h.db.WithContext(c.Request.Context()).
		Model(&database.CheckoutSession{}).
		Where("user_id = ? AND template_id = ? AND status = ?", userID, templateID, "pending").
		Update("status", "completed").Error
	if err != nil {
		h.logger.Warn("mark checkout session completed failed", slog.Any("error", err))
	}
}
