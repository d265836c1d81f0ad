package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User 表示系统中的账号信息。
type User struct {
	gorm.Model
	Email        string        `gorm:"uniqueIndex;size:255"`
	PasswordHash string        `gorm:"size:255"`
	Resumes      []SavedResume `gorm:"constraint:OnDelete:CASCADE"`
}

// SavedResume 表示用户显式保存的一份简历（内容 + 选定模板）。
type SavedResume struct {
	gorm.Model
	Name       string         `gorm:"size:255"`
	Data       datatypes.JSON `gorm:"type:jsonb"` // JSONB 存储 resume.Data
	TemplateID string         `gorm:"size:64"`    // 模板 slug，读取时经注册表兜底
	IsPublic   bool           `gorm:"default:false"`
	UserID     uint           `gorm:"index"`
	User       User           `gorm:"constraint:OnDelete:CASCADE"`
	PdfURL     string         `gorm:"size:512"`
	Status     string         `gorm:"size:32"`
}

// TemplatePurchase 表示用户对某个付费模板的一次有效购买。
// (UserID, TemplateID) 上的唯一索引是幂等性的最终保证：
// 重复确认（webhook 与回跳兜底竞争）在插入时冲突并被视为 no-op。
type TemplatePurchase struct {
	gorm.Model
	UserID        uint      `gorm:"uniqueIndex:idx_user_template"`
	TemplateID    string    `gorm:"uniqueIndex:idx_user_template;size:64"`
	AmountCents   int64     // 实付金额（美分）；兜底记录先写占位值，对账时修正
	TransactionID string    `gorm:"uniqueIndex;size:128"`
	PurchasedAt   time.Time `gorm:"index"`
	User          User      `gorm:"constraint:OnDelete:CASCADE"`
}

// CheckoutSession 记录已创建的支付会话，便于排查未完成的购买。
type CheckoutSession struct {
	gorm.Model
	UserID     uint   `gorm:"index"`
	TemplateID string `gorm:"size:64"`
	CheckoutID string `gorm:"uniqueIndex;size:128"`
	Status     string `gorm:"size:32"` // pending / completed
}
