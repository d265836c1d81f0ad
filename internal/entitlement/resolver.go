package entitlement

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cvforge/internal/database"
	"cvforge/internal/template"
)

// Access 是针对 (用户, 模板) 的访问判定结果。
// PriceCents 为 nil 表示无需付费（免费档或已购买）。
type Access struct {
	HasAccess  bool   `json:"has_access"`
	PriceCents *int64 `json:"price_cents"`
}

// Resolver 负责判定用户对模板的访问权。
// 身份以显式参数传入（nil 表示匿名），不依赖任何全局会话状态。
type Resolver struct {
	db         *gorm.DB
	priceCents int64
}

// NewResolver 构造 Resolver。priceCents 是付费模板的统一标价。
func NewResolver(db *gorm.DB, priceCents int64) *Resolver {
	return &Resolver{db: db, priceCents: priceCents}
}

// CheckAccess 判定访问权：
// 免费模板对所有人（含匿名）开放；其余模板要求存在购买记录。
func (r *Resolver) CheckAccess(ctx context.Context, userID *uint, templateID string) (Access, error) {
	if template.IsFreeTier(templateID) {
		return Access{HasAccess: true}, nil
	}
	if userID == nil {
		price := r.priceCents
		return Access{HasAccess: false, PriceCents: &price}, nil
	}

	owned, err := r.ownedIDs(ctx, *userID)
	if err != nil {
		return Access{}, err
	}
	if _, ok := owned[templateID]; ok {
		return Access{HasAccess: true}, nil
	}
	price := r.priceCents
	return Access{HasAccess: false, PriceCents: &price}, nil
}

// ListOwned 返回用户可用的模板 id 集合：免费模板永远在内，
// 加上每一条购买记录。与 CheckAccess 共用同一份查询，保证两者一致。
func (r *Resolver) ListOwned(ctx context.Context, userID *uint) ([]string, error) {
	ids := []string{template.FreeTemplateID}
	if userID == nil {
		return ids, nil
	}

	purchased, err := r.purchasedIDs(ctx, *userID)
	if err != nil {
		return nil, err
	}
	for _, id := range purchased {
		if id == template.FreeTemplateID {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// purchasedIDs 是 CheckAccess 与 ListOwned 共享的唯一"已购买"口径。
// 已下架模板的历史购买记录也照常返回，保证两个接口永不分叉。
func (r *Resolver) purchasedIDs(ctx context.Context, userID uint) ([]string, error) {
	var purchased []string
	if err := r.db.WithContext(ctx).
		Model(&database.TemplatePurchase{}).
		Where("user_id = ?", userID).
		Order("purchased_at").
		Pluck("template_id", &purchased).Error; err != nil {
		return nil, fmt.Errorf("query purchases for user %d: %w", userID, err)
	}
	return purchased, nil
}

func (r *Resolver) ownedIDs(ctx context.Context, userID uint) (map[string]struct{}, error) {
	purchased, err := r.purchasedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]struct{}, len(purchased))
	for _, id := range purchased {
		owned[id] = struct{}{}
	}
	return owned, nil
}
