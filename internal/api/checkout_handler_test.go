package api

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cvforge/internal/database"
	"cvforge/internal/entitlement"
	"cvforge/internal/payment"
	"cvforge/internal/purchase"
)

const testWebhookSecret = "whsec-test"

type fakeProvider struct {
	checkouts []payment.CheckoutRequest
	orders    map[string]payment.Order
	failNext  error
}

func (p *fakeProvider) CreateCheckout(_ context.Context, req payment.CheckoutRequest) (payment.Checkout, error) {
	if p.failNext != nil {
		return payment.Checkout{}, p.failNext
	}
	p.checkouts = append(p.checkouts, req)
	id := fmt.Sprintf("chk-%d", len(p.checkouts))
	return payment.Checkout{ID: id, URL: "https://pay.example.invalid/" + id}, nil
}

func (p *fakeProvider) GetOrder(_ context.Context, orderID string) (payment.Order, error) {
	order, ok := p.orders[orderID]
	if !ok {
		return payment.Order{}, errors.New("order not found")
	}
	return order, nil
}

func newCheckoutTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.TemplatePurchase{}, &database.CheckoutSession{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newCheckoutRouter(t *testing.T, db *gorm.DB, provider payment.Provider, authedUser uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := purchase.NewRecorder(db)
	entitlements := entitlement.NewResolver(db, 100)
	handler := NewCheckoutHandler(db, provider, recorder, entitlements, slog.Default(), testWebhookSecret, "https://cvforge.example")

	router := gin.New()
	asUser := func(c *gin.Context) {
		if authedUser != 0 {
			c.Set("userID", authedUser)
			c.Set("userEmail", "user@example.com")
		}
		c.Next()
	}
	router.POST("/v1/checkout/session", asUser, handler.CreateSession)
	router.GET("/v1/checkout/verify", asUser, handler.VerifyOrder)
	router.POST("/v1/payment/webhook", handler.HandleWebhook)
	return router
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateSession(t *testing.T) {
	db := newCheckoutTestDB(t)
	provider := &fakeProvider{}
	router := newCheckoutRouter(t, db, provider, 1)

	body := bytes.NewBufferString(`{"template_id":"modern"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/checkout/session", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(provider.checkouts) != 1 {
		t.Fatalf("provider calls = %d", len(provider.checkouts))
	}
	created := provider.checkouts[0]
	if created.UserID != 1 || created.TemplateID != "modern" {
		t.Errorf("checkout request = %+v", created)
	}
	if created.Email != "user@example.com" {
		t.Errorf("checkout email = %q", created.Email)
	}

	var session database.CheckoutSession
	if err := db.First(&session).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.UserID != 1 || session.TemplateID != "modern" || session.Status != "pending" {
		t.Errorf("session = %+v", session)
	}
}

func TestCreateSessionRejectsFreeAndUnknown(t *testing.T) {
	db := newCheckoutTestDB(t)
	router := newCheckoutRouter(t, db, &fakeProvider{}, 1)

	cases := []struct {
		body string
		code int
	}{
		{`{"template_id":"classic"}`, http.StatusBadRequest},
		{`{"template_id":"no-such"}`, http.StatusNotFound},
		{`{}`, http.StatusBadRequest},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/session", bytes.NewBufferString(c.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != c.code {
			t.Errorf("body %s: status = %d, want %d", c.body, w.Code, c.code)
		}
	}
}

func TestCreateSessionAlreadyOwned(t *testing.T) {
	db := newCheckoutTestDB(t)
	recorder := purchase.NewRecorder(db)
	if _, err := recorder.Record(context.Background(), 1, "modern", 100, "order-1"); err != nil {
		t.Fatalf("seed purchase: %v", err)
	}
	router := newCheckoutRouter(t, db, &fakeProvider{}, 1)

	req := httptest.NewRequest(http.MethodPost, "/v1/checkout/session", bytes.NewBufferString(`{"template_id":"modern"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestVerifyOrderRecordsPurchase(t *testing.T) {
	db := newCheckoutTestDB(t)
	provider := &fakeProvider{
		orders: map[string]payment.Order{
			"order-7": {
				ID:         "order-7",
				TotalCents: 100,
				CustomData: payment.CustomData{UserID: "1", TemplateID: "modern"},
			},
		},
	}
	router := newCheckoutRouter(t, db, provider, 1)

	req := httptest.NewRequest(http.MethodGet, "/v1/checkout/verify?order_id=order-7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var row database.TemplatePurchase
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if row.UserID != 1 || row.TemplateID != "modern" || row.TransactionID != "order-7" {
		t.Errorf("purchase = %+v", row)
	}

	// 重复核验是幂等的。
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkout/verify?order_id=order-7", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("second verify status = %d", w.Code)
	}
	var count int64
	db.Model(&database.TemplatePurchase{}).Count(&count)
	if count != 1 {
		t.Fatalf("purchase rows = %d, want 1", count)
	}
}

func TestVerifyOrderRejectsForeignOrder(t *testing.T) {
	db := newCheckoutTestDB(t)
	provider := &fakeProvider{
		orders: map[string]payment.Order{
			"order-7": {
				ID:         "order-7",
				TotalCents: 100,
				CustomData: payment.CustomData{UserID: "2", TemplateID: "modern"},
			},
		},
	}
	router := newCheckoutRouter(t, db, provider, 1)

	req := httptest.NewRequest(http.MethodGet, "/v1/checkout/verify?order_id=order-7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	var count int64
	db.Model(&database.TemplatePurchase{}).Count(&count)
	if count != 0 {
		t.Fatalf("foreign order recorded: %d rows", count)
	}
}

func webhookBody(orderID, userID, templateID string, total int64) []byte {
	payload := map[string]any{
		"meta": map[string]any{
			"event_name": "order_created",
			"custom_data": map[string]string{
				"user_id":     userID,
				"template_id": templateID,
			},
		},
		"data": map[string]any{
			"id":         orderID,
			"attributes": map[string]any{"total": total},
		},
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestWebhookRecordsPurchase(t *testing.T) {
	db := newCheckoutTestDB(t)
	router := newCheckoutRouter(t, db, &fakeProvider{}, 0)

	body := webhookBody("order-9", "5", "bold", 100)
	req := httptest.NewRequest(http.MethodPost, "/v1/payment/webhook", bytes.NewReader(body))
	req.Header.Set("X-Signature", signBody(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var row database.TemplatePurchase
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if row.UserID != 5 || row.TemplateID != "bold" || row.TransactionID != "order-9" {
		t.Errorf("purchase = %+v", row)
	}

	// 重投递被幂等吸收。
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/payment/webhook", bytes.NewReader(body))
	req.Header.Set("X-Signature", signBody(body))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("redelivery status = %d", w.Code)
	}
	var count int64
	db.Model(&database.TemplatePurchase{}).Count(&count)
	if count != 1 {
		t.Fatalf("purchase rows = %d, want 1", count)
	}
}

func TestWebhookReconcilesManualGrant(t *testing.T) {
	db := newCheckoutTestDB(t)
	recorder := purchase.NewRecorder(db)
	if _, err := recorder.RecordFallback(context.Background(), 5, "bold"); err != nil {
		t.Fatalf("seed fallback: %v", err)
	}
	router := newCheckoutRouter(t, db, &fakeProvider{}, 0)

	body := webhookBody("order-9", "5", "bold", 250)
	req := httptest.NewRequest(http.MethodPost, "/v1/payment/webhook", bytes.NewReader(body))
	req.Header.Set("X-Signature", signBody(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var row database.TemplatePurchase
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if row.TransactionID != "order-9" || row.AmountCents != 250 {
		t.Errorf("manual grant not reconciled: %+v", row)
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	db := newCheckoutTestDB(t)
	router := newCheckoutRouter(t, db, &fakeProvider{}, 0)

	body := webhookBody("order-9", "5", "bold", 100)
	req := httptest.NewRequest(http.MethodPost, "/v1/payment/webhook", bytes.NewReader(body))
	req.Header.Set("X-Signature", "deadbeef")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var count int64
	db.Model(&database.TemplatePurchase{}).Count(&count)
	if count != 0 {
		t.Fatalf("unsigned webhook recorded %d rows", count)
	}
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	db := newCheckoutTestDB(t)
	router := newCheckoutRouter(t, db, &fakeProvider{}, 0)

	body := []byte(`{"meta":{"event_name":"subscription_created"},"data":{"id":"x"}}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/payment/webhook", bytes.NewReader(body))
	req.Header.Set("X-Signature", signBody(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var count int64
	db.Model(&database.TemplatePurchase{}).Count(&count)
	if count != 0 {
		t.Fatalf("irrelevant event recorded %d rows", count)
	}
}
