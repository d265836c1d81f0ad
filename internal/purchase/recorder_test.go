package purchase

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cvforge/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.TemplatePurchase{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countPurchases(t *testing.T, db *gorm.DB, userID uint, templateID string) int64 {
	t.Helper()
	var count int64
	err := db.Model(&database.TemplatePurchase{}).
		Where("user_id = ? AND template_id = ?", userID, templateID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count purchases: %v", err)
	}
	return count
}

func TestRecordValidatesInput(t *testing.T) {
	r := NewRecorder(newTestDB(t))
	ctx := context.Background()

	if _, err := r.Record(ctx, 1, "", 100, "txn-1"); err == nil {
		t.Error("empty template id accepted")
	}
	if _, err := r.Record(ctx, 1, "modern", 100, " "); err == nil {
		t.Error("blank transaction id accepted")
	}
}

func TestRecordIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	r := NewRecorder(db)
	ctx := context.Background()

	outcome, err := r.Record(ctx, 1, "modern", 100, "txn-1")
	if err != nil {
		t.Fatalf("first record: %v", err)
	}
	if outcome != OutcomeRecorded {
		t.Fatalf("first record outcome = %v", outcome)
	}

	// 同一用户同一模板，哪怕事务号不同也是 no-op。
	outcome, err = r.Record(ctx, 1, "modern", 100, "txn-2")
	if err != nil {
		t.Fatalf("duplicate record: %v", err)
	}
	if outcome != OutcomeNoop {
		t.Fatalf("duplicate record outcome = %v, want noop", outcome)
	}
	if got := countPurchases(t, db, 1, "modern"); got != 1 {
		t.Fatalf("purchase rows = %d, want 1", got)
	}

	// 其他模板、其他用户互不影响。
	if outcome, err = r.Record(ctx, 1, "bold", 100, "txn-3"); err != nil || outcome != OutcomeRecorded {
		t.Fatalf("other template record = %v, %v", outcome, err)
	}
	if outcome, err = r.Record(ctx, 2, "modern", 100, "txn-4"); err != nil || outcome != OutcomeRecorded {
		t.Fatalf("other user record = %v, %v", outcome, err)
	}
}

func TestRecordFallbackWritesSyntheticTransaction(t *testing.T) {
	db := newTestDB(t)
	r := NewRecorder(db)
	ctx := context.Background()

	outcome, err := r.RecordFallback(ctx, 1, "modern")
	if err != nil {
		t.Fatalf("record fallback: %v", err)
	}
	if outcome != OutcomeRecorded {
		t.Fatalf("outcome = %v", outcome)
	}

	var row database.TemplatePurchase
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if !IsSynthetic(row.TransactionID) {
		t.Errorf("transaction id %q is not synthetic", row.TransactionID)
	}
	if row.AmountCents != PlaceholderAmountCents {
		t.Errorf("amount = %d, want placeholder %d", row.AmountCents, PlaceholderAmountCents)
	}
}

func TestReconcileReplacesSyntheticRecord(t *testing.T) {
	db := newTestDB(t)
	r := NewRecorder(db)
	ctx := context.Background()

	if _, err := r.RecordFallback(ctx, 1, "modern"); err != nil {
		t.Fatalf("record fallback: %v", err)
	}

	outcome, err := r.Reconcile(ctx, 1, "modern", 250, "order-42")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if outcome != OutcomeRecorded {
		t.Fatalf("reconcile outcome = %v", outcome)
	}

	var row database.TemplatePurchase
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if row.TransactionID != "order-42" {
		t.Errorf("transaction id = %q, want order-42", row.TransactionID)
	}
	if row.AmountCents != 250 {
		t.Errorf("amount = %d, want 250", row.AmountCents)
	}
	if got := countPurchases(t, db, 1, "modern"); got != 1 {
		t.Fatalf("reconcile appended a second row: %d", got)
	}
}

func TestReconcileKeepsRealRecord(t *testing.T) {
	db := newTestDB(t)
	r := NewRecorder(db)
	ctx := context.Background()

	if _, err := r.Record(ctx, 1, "modern", 100, "order-1"); err != nil {
		t.Fatalf("record: %v", err)
	}

	outcome, err := r.Reconcile(ctx, 1, "modern", 999, "order-2")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if outcome != OutcomeNoop {
		t.Fatalf("reconcile over real record = %v, want noop", outcome)
	}

	var row database.TemplatePurchase
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if row.TransactionID != "order-1" || row.AmountCents != 100 {
		t.Errorf("real record mutated: %+v", row)
	}
}

func TestReconcileWithoutExistingRecordInserts(t *testing.T) {
	db := newTestDB(t)
	r := NewRecorder(db)

	outcome, err := r.Reconcile(context.Background(), 1, "modern", 100, "order-1")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if outcome != OutcomeRecorded {
		t.Fatalf("outcome = %v", outcome)
	}
	if got := countPurchases(t, db, 1, "modern"); got != 1 {
		t.Fatalf("rows = %d", got)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := NewRecorder(db)
	ctx := context.Background()

	for _, id := range []string{"modern", "bold", "minimal"} {
		if _, err := r.Record(ctx, 1, id, 100, "txn-"+id); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}
	if _, err := r.Record(ctx, 2, "modern", 100, "txn-other"); err != nil {
		t.Fatalf("record other user: %v", err)
	}

	rows, err := r.History(ctx, 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("history rows = %d, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].PurchasedAt.After(rows[i-1].PurchasedAt) {
			t.Fatalf("history not newest-first: %v before %v", rows[i-1].PurchasedAt, rows[i].PurchasedAt)
		}
	}
}

func TestSyntheticTransactionID(t *testing.T) {
	id := SyntheticTransactionID()
	if !strings.HasPrefix(id, "manual-") {
		t.Errorf("synthetic id %q missing prefix", id)
	}
	if !IsSynthetic(id) {
		t.Error("synthetic id not recognized")
	}
	if IsSynthetic("order-123") {
		t.Error("real order id misclassified as synthetic")
	}
	if id == SyntheticTransactionID() {
		t.Error("synthetic ids collide")
	}
}
