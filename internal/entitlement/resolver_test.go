package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cvforge/internal/database"
	"cvforge/internal/template"
)

const testPriceCents = int64(100)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.User{}, &database.TemplatePurchase{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func grant(t *testing.T, db *gorm.DB, userID uint, templateID, txn string, at time.Time) {
	t.Helper()
	err := db.Create(&database.TemplatePurchase{
		UserID:        userID,
		TemplateID:    templateID,
		AmountCents:   testPriceCents,
		TransactionID: txn,
		PurchasedAt:   at,
	}).Error
	if err != nil {
		t.Fatalf("seed purchase: %v", err)
	}
}

func TestCheckAccessFreeTemplate(t *testing.T) {
	r := NewResolver(newTestDB(t), testPriceCents)
	ctx := context.Background()

	// 匿名也能用免费模板。
	access, err := r.CheckAccess(ctx, nil, template.FreeTemplateID)
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if !access.HasAccess || access.PriceCents != nil {
		t.Fatalf("anonymous free access = %+v", access)
	}

	userID := uint(7)
	access, err = r.CheckAccess(ctx, &userID, template.FreeTemplateID)
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if !access.HasAccess {
		t.Fatal("authenticated user denied free template")
	}
}

func TestCheckAccessPaidTemplateAnonymous(t *testing.T) {
	r := NewResolver(newTestDB(t), testPriceCents)

	access, err := r.CheckAccess(context.Background(), nil, "modern")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if access.HasAccess {
		t.Fatal("anonymous granted paid template")
	}
	if access.PriceCents == nil || *access.PriceCents != testPriceCents {
		t.Fatalf("PriceCents = %v, want %d", access.PriceCents, testPriceCents)
	}
}

func TestCheckAccessPaidTemplatePurchase(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db, testPriceCents)
	ctx := context.Background()
	userID := uint(1)

	access, err := r.CheckAccess(ctx, &userID, "modern")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if access.HasAccess {
		t.Fatal("unpurchased template granted")
	}
	if access.PriceCents == nil || *access.PriceCents != testPriceCents {
		t.Fatalf("PriceCents = %v", access.PriceCents)
	}

	grant(t, db, userID, "modern", "txn-1", time.Now())

	access, err = r.CheckAccess(ctx, &userID, "modern")
	if err != nil {
		t.Fatalf("CheckAccess after purchase: %v", err)
	}
	if !access.HasAccess || access.PriceCents != nil {
		t.Fatalf("purchased access = %+v", access)
	}

	// 买了 modern 不等于买了 minimal。
	access, err = r.CheckAccess(ctx, &userID, "minimal")
	if err != nil {
		t.Fatalf("CheckAccess other template: %v", err)
	}
	if access.HasAccess {
		t.Fatal("purchase of one template leaked to another")
	}

	// 其他用户不受影响。
	other := uint(2)
	access, err = r.CheckAccess(ctx, &other, "modern")
	if err != nil {
		t.Fatalf("CheckAccess other user: %v", err)
	}
	if access.HasAccess {
		t.Fatal("purchase leaked to another user")
	}
}

func TestListOwned(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db, testPriceCents)
	ctx := context.Background()

	// 匿名只有免费模板。
	owned, err := r.ListOwned(ctx, nil)
	if err != nil {
		t.Fatalf("ListOwned anonymous: %v", err)
	}
	if len(owned) != 1 || owned[0] != template.FreeTemplateID {
		t.Fatalf("anonymous owned = %v", owned)
	}

	userID := uint(1)
	now := time.Now()
	grant(t, db, userID, "modern", "txn-1", now.Add(-time.Hour))
	grant(t, db, userID, "bold", "txn-2", now)

	owned, err = r.ListOwned(ctx, &userID)
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}
	if len(owned) != 3 {
		t.Fatalf("owned = %v, want free + 2 purchases", owned)
	}
	if owned[0] != template.FreeTemplateID {
		t.Errorf("owned[0] = %q, want free template first", owned[0])
	}
}

func TestListOwnedConsistentWithCheckAccess(t *testing.T) {
	// 已下架模板的购买记录仍然有效：两个入口的判定必须一致。
	db := newTestDB(t)
	r := NewResolver(db, testPriceCents)
	ctx := context.Background()
	userID := uint(1)

	grant(t, db, userID, "retired-theme", "txn-1", time.Now())

	access, err := r.CheckAccess(ctx, &userID, "retired-theme")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	owned, err := r.ListOwned(ctx, &userID)
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}

	inList := false
	for _, id := range owned {
		if id == "retired-theme" {
			inList = true
		}
	}
	if access.HasAccess != inList {
		t.Fatalf("CheckAccess=%v but ListOwned contains=%v", access.HasAccess, inList)
	}
	if !access.HasAccess {
		t.Fatal("existing purchase not honored")
	}
}
