package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cvforge/internal/database"
	"cvforge/internal/entitlement"
	"cvforge/internal/purchase"
	"cvforge/internal/template"
)

func newTemplateRouter(t *testing.T, authedUser uint) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	handler := NewTemplateHandler(entitlement.NewResolver(db, 100))
	router := gin.New()
	asUser := func(c *gin.Context) {
		if authedUser != 0 {
			c.Set("userID", authedUser)
		}
		c.Next()
	}
	group := router.Group("/v1/templates", asUser)
	group.GET("", handler.ListTemplates)
	group.GET("/owned", handler.ListOwnedTemplates)
	group.GET("/:id", handler.GetTemplate)
	group.GET("/:id/access", handler.CheckTemplateAccess)
	return router, db
}

func TestListTemplates(t *testing.T) {
	router, _ := newTemplateRouter(t, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var items []templateListItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != len(template.List()) {
		t.Fatalf("items = %d, want %d", len(items), len(template.List()))
	}
	if items[0].ID != template.FreeTemplateID || !items[0].Free {
		t.Errorf("first item = %+v, want free template", items[0])
	}
	for _, item := range items[1:] {
		if item.Free {
			t.Errorf("paid template %q flagged free", item.ID)
		}
	}
}

func TestGetTemplateFallsBack(t *testing.T) {
	router, _ := newTemplateRouter(t, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates/no-such", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with fallback", w.Code)
	}

	var item templateListItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.ID != template.FreeTemplateID {
		t.Errorf("fallback template = %q", item.ID)
	}
}

func TestCheckTemplateAccessAnonymous(t *testing.T) {
	router, _ := newTemplateRouter(t, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates/modern/access", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var access entitlement.Access
	if err := json.Unmarshal(w.Body.Bytes(), &access); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if access.HasAccess {
		t.Error("anonymous granted paid template")
	}
	if access.PriceCents == nil || *access.PriceCents != 100 {
		t.Errorf("price = %v", access.PriceCents)
	}
}

func TestCheckTemplateAccessPurchased(t *testing.T) {
	router, db := newTemplateRouter(t, 3)
	r := purchase.NewRecorder(db)
	if _, err := r.Record(context.Background(), 3, "modern", 100, "order-1"); err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates/modern/access", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var access entitlement.Access
	if err := json.Unmarshal(w.Body.Bytes(), &access); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !access.HasAccess || access.PriceCents != nil {
		t.Errorf("access = %+v", access)
	}
}

func TestListOwnedTemplatesEndpoint(t *testing.T) {
	router, db := newTemplateRouter(t, 3)
	if err := db.Create(&database.TemplatePurchase{
		UserID: 3, TemplateID: "bold", AmountCents: 100, TransactionID: "order-1",
	}).Error; err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates/owned", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		TemplateIDs []string `json:"template_ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.TemplateIDs) != 2 {
		t.Fatalf("owned = %v", resp.TemplateIDs)
	}
	if resp.TemplateIDs[0] != template.FreeTemplateID || resp.TemplateIDs[1] != "bold" {
		t.Errorf("owned = %v", resp.TemplateIDs)
	}
}
