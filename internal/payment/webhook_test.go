package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"meta":{"event_name":"order_created"}}`)
	secret := "whsec-test"

	if err := VerifySignature(secret, body, sign(secret, body)); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}

	if err := VerifySignature(secret, body, sign("other-secret", body)); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("wrong secret accepted: %v", err)
	}
	if err := VerifySignature(secret, body, ""); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("empty signature accepted: %v", err)
	}
	if err := VerifySignature("", body, sign(secret, body)); err == nil {
		t.Fatal("missing secret accepted")
	}

	tampered := append([]byte{}, body...)
	tampered[0] = '['
	if err := VerifySignature(secret, tampered, sign(secret, body)); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("tampered body accepted: %v", err)
	}
}

func TestParseWebhook(t *testing.T) {
	body := []byte(`{
		"meta": {
			"event_name": "order_created",
			"custom_data": {"user_id": "42", "template_id": "modern"}
		},
		"data": {
			"id": "order-9",
			"attributes": {"total": 100}
		}
	}`)

	event, err := ParseWebhook(body)
	if err != nil {
		t.Fatalf("parse webhook: %v", err)
	}
	if event.EventName != EventOrderCreated {
		t.Errorf("event name = %q", event.EventName)
	}
	if event.OrderID != "order-9" {
		t.Errorf("order id = %q", event.OrderID)
	}
	if event.TotalCents != 100 {
		t.Errorf("total = %d", event.TotalCents)
	}
	if event.CustomData.TemplateID != "modern" {
		t.Errorf("template id = %q", event.CustomData.TemplateID)
	}

	userID, err := event.CustomData.ParseUserID()
	if err != nil {
		t.Fatalf("parse user id: %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d", userID)
	}
}

func TestParseWebhookRejectsBadPayload(t *testing.T) {
	if _, err := ParseWebhook([]byte("not json")); err == nil {
		t.Error("invalid json accepted")
	}
	if _, err := ParseWebhook([]byte(`{"meta":{}}`)); err == nil {
		t.Error("payload without event name accepted")
	}
}

func TestParseUserIDRejectsInvalid(t *testing.T) {
	cases := []string{"", "0", "-1", "abc"}
	for _, c := range cases {
		d := CustomData{UserID: c}
		if _, err := d.ParseUserID(); err == nil {
			t.Errorf("ParseUserID(%q) accepted", c)
		}
	}
}
