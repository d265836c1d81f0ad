package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cvforge/internal/database"
)

// Outcome 是一次购买登记的结果。
type Outcome int

const (
	// OutcomeRecorded 表示写入了一条新的购买记录。
	OutcomeRecorded Outcome = iota
	// OutcomeNoop 表示 (用户, 模板) 已有有效购买，本次调用被幂等吸收。
	OutcomeNoop
)

const syntheticPrefix = "manual-"

// PlaceholderAmountCents 是兜底记录（异步确认尚未到达时）的占位金额，
// 对账时被权威金额覆盖。
const PlaceholderAmountCents int64 = 100

// Recorder 负责把成功的购买幂等地落库。
// 幂等性不靠先查后插，而是靠 (user_id, template_id) 唯一索引：
// 冲突的第二个写入者拿到 OutcomeNoop，不报错也不产生重复行。
type Recorder struct {
	db *gorm.DB
}

// NewRecorder 构造 Recorder。
func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Record 登记一次购买。重复登记（相同用户+模板，事务号可以不同）
// 返回 OutcomeNoop；只有真正的存储层错误才返回 error。
func (r *Recorder) Record(ctx context.Context, userID uint, templateID string, amountCents int64, transactionID string) (Outcome, error) {
	if strings.TrimSpace(templateID) == "" {
		return 0, errors.New("template id is required")
	}
	if strings.TrimSpace(transactionID) == "" {
		return 0, errors.New("transaction id is required")
	}

	row := database.TemplatePurchase{
		UserID:        userID,
		TemplateID:    templateID,
		AmountCents:   amountCents,
		TransactionID: transactionID,
		PurchasedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return OutcomeNoop, nil
		}
		return 0, fmt.Errorf("insert purchase (user=%d template=%s): %w", userID, templateID, err)
	}
	return OutcomeRecorded, nil
}

// RecordFallback 在权威确认尚未到达时写入兜底记录：
// 占位金额 + 合成事务号。已拥有时同样是 no-op。
func (r *Recorder) RecordFallback(ctx context.Context, userID uint, templateID string) (Outcome, error) {
	return r.Record(ctx, userID, templateID, PlaceholderAmountCents, SyntheticTransactionID())
}

// Reconcile 用权威确认修正既有记录：
// 若 (用户, 模板) 尚无记录则直接登记；若已有兜底记录则原地
// 覆盖事务号与金额，绝不追加第二行；真实记录则不动。
func (r *Recorder) Reconcile(ctx context.Context, userID uint, templateID string, amountCents int64, transactionID string) (Outcome, error) {
	var existing database.TemplatePurchase
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND template_id = ?", userID, templateID).
		First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.Record(ctx, userID, templateID, amountCents, transactionID)
	case err != nil:
		return 0, fmt.Errorf("query purchase (user=%d template=%s): %w", userID, templateID, err)
	}

	if !IsSynthetic(existing.TransactionID) {
		return OutcomeNoop, nil
	}

	if err := r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
		"transaction_id": transactionID,
		"amount_cents":   amountCents,
	}).Error; err != nil {
		return 0, fmt.Errorf("reconcile purchase (user=%d template=%s): %w", userID, templateID, err)
	}
	return OutcomeRecorded, nil
}

// History 返回用户的购买记录，最新在前。
func (r *Recorder) History(ctx context.Context, userID uint) ([]database.TemplatePurchase, error) {
	var rows []database.TemplatePurchase
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list purchases for user %d: %w", userID, err)
	}
	return rows, nil
}

// SyntheticTransactionID 生成兜底记录用的合成事务号。
// 前缀保证它不可能与支付服务商的真实订单号冲突。
func SyntheticTransactionID() string {
	return syntheticPrefix + uuid.NewString()
}

// IsSynthetic 报告事务号是否为合成号。
func IsSynthetic(transactionID string) bool {
	return strings.HasPrefix(transactionID, syntheticPrefix)
}
