package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvforge/internal/database"
	"cvforge/internal/document"
	"cvforge/internal/entitlement"
	"cvforge/internal/errcode"
	"cvforge/internal/pdf"
	"cvforge/internal/resume"
	"cvforge/internal/storage"
	"cvforge/internal/tasks"
	"cvforge/internal/template"
)

// PDFTaskHandler 负责消费 PDF 生成任务：
// 读取简历数据，解析模板样式，组装文档并渲染 PDF 上传。
type PDFTaskHandler struct {
	db           *gorm.DB
	storage      *storage.Client
	redisClient  *redis.Client
	entitlements *entitlement.Resolver
	logger       *slog.Logger
}

// NewPDFTaskHandler 创建任务处理器。
func NewPDFTaskHandler(
	db *gorm.DB,
	storage *storage.Client,
	redisClient *redis.Client,
	entitlements *entitlement.Resolver,
	logger *slog.Logger,
) *PDFTaskHandler {
	return &PDFTaskHandler{
		db:           db,
		storage:      storage,
		redisClient:  redisClient,
		entitlements: entitlements,
		logger:       logger,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *PDFTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.PDFGeneratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("resume_id", int(payload.ResumeID)),
	)
	log.Info("Starting PDF generation task...")

	var saved database.SavedResume
	if err := h.db.WithContext(ctx).First(&saved, payload.ResumeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("resume not found, skipping task")
			return nil
		}
		log.Error("query resume failed", slog.Any("error", err))
		return err
	}

	log = log.With(slog.Uint64("user_id", uint64(saved.UserID)))

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		notify := PDFGenerationNotifyMessage{
			Status:        "error",
			ResumeID:      saved.ID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishPDFGenerationNotify(ctx, saved.UserID, notify); err != nil {
			log.Error("publish pdf error notification failed", slog.Any("error", err))
		}
	}()

	data, err := resume.Decode([]byte(saved.Data))
	if err != nil {
		// 数据损坏重试也不会恢复，直接标记失败。
		log.Error("decode resume data failed", slog.Any("error", err))
		if dbErr := h.db.WithContext(ctx).Model(&saved).Update("status", "failed").Error; dbErr != nil {
			log.Error("update resume status failed", slog.Any("error", dbErr))
		}
		notify := PDFGenerationNotifyMessage{
			Status:        "error",
			ResumeID:      saved.ID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  "简历数据无法解析",
		}
		if pubErr := h.publishPDFGenerationNotify(ctx, saved.UserID, notify); pubErr != nil {
			log.Error("publish redis notification failed", slog.Any("error", pubErr))
		}
		return nil
	}

	templateID, warnCode := h.effectiveTemplateID(ctx, saved, log)
	styles := template.Resolve(templateID)
	doc := document.Assemble(data, styles)

	htmlContent, err := renderHTML(doc)
	if err != nil {
		log.Error("render print html failed", slog.Any("error", err))
		return err
	}

	pdfBytes, err := pdf.GeneratePDFFromHTML(htmlContent)
	if err != nil {
		log.Error("generate pdf failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("generated-resumes/%d/%s.pdf", saved.UserID, uuid.NewString())
	pdfReader := bytes.NewReader(pdfBytes)
	if _, err := h.storage.UploadFile(ctx, objectName, pdfReader, int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload pdf to minio failed", slog.Any("error", err))
		return err
	}

	update := map[string]any{
		"pdf_url": objectName,
		"status":  "completed",
	}
	if err := h.db.WithContext(ctx).Model(&saved).Updates(update).Error; err != nil {
		log.Error("update resume failed", slog.Any("error", err))
		return err
	}

	notify := PDFGenerationNotifyMessage{
		Status:        "completed",
		ResumeID:      saved.ID,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if warnCode != errcode.OK {
		notify.ErrorCode = warnCode
		notify.ErrorMessage = "模板未购买，已使用免费模板生成"
	}
	if err := h.publishPDFGenerationNotify(ctx, saved.UserID, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("PDF generation task completed successfully.")
	return nil
}

// effectiveTemplateID 返回本次渲染实际使用的模板和告警码。
// 用户对所存模板无权限时降级到免费模板并附带告警码，渲染永远不会因此失败。
func (h *PDFTaskHandler) effectiveTemplateID(ctx context.Context, saved database.SavedResume, log *slog.Logger) (string, int) {
	templateID := saved.TemplateID
	if templateID == "" {
		return template.FreeTemplateID, errcode.OK
	}

	userID := saved.UserID
	access, err := h.entitlements.CheckAccess(ctx, &userID, templateID)
	if err != nil {
		log.Warn("entitlement check failed, falling back to free template",
			slog.String("template_id", templateID),
			slog.Any("error", err),
		)
		return template.FreeTemplateID, errcode.TemplateNotOwned
	}
	if !access.HasAccess {
		log.Warn("no access to template, falling back to free template",
			slog.String("template_id", templateID),
		)
		return template.FreeTemplateID, errcode.TemplateNotOwned
	}
	return templateID, errcode.OK
}

func (h *PDFTaskHandler) publishPDFGenerationNotify(ctx context.Context, userID uint, notify PDFGenerationNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
