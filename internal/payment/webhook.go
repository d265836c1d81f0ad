package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// EventOrderCreated 是我们唯一处理的 webhook 事件。
const EventOrderCreated = "order_created"

// ErrBadSignature 表示 webhook 签名校验失败。
var ErrBadSignature = errors.New("webhook signature mismatch")

// WebhookEvent 是 webhook 载荷里我们关心的字段。
type WebhookEvent struct {
	EventName  string
	OrderID    string
	TotalCents int64
	CustomData CustomData
}

// VerifySignature 用 HMAC-SHA256 校验 X-Signature 头。
// 签名比较必须恒定时间，避免侧信道。
func VerifySignature(secret string, body []byte, signature string) error {
	if secret == "" {
		return errors.New("webhook secret is not configured")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrBadSignature
	}
	return nil
}

type webhookPayload struct {
	Meta struct {
		EventName  string     `json:"event_name"`
		CustomData CustomData `json:"custom_data"`
	} `json:"meta"`
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Total int64 `json:"total"`
		} `json:"attributes"`
	} `json:"data"`
}

// ParseWebhook 解析已通过签名校验的 webhook 载荷。
func ParseWebhook(body []byte) (WebhookEvent, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return WebhookEvent{}, fmt.Errorf("decode webhook payload: %w", err)
	}
	if payload.Meta.EventName == "" {
		return WebhookEvent{}, errors.New("webhook payload missing event name")
	}
	return WebhookEvent{
		EventName:  payload.Meta.EventName,
		OrderID:    payload.Data.ID,
		TotalCents: payload.Data.Attributes.Total,
		CustomData: payload.Meta.CustomData,
	}, nil
}

// ParseUserID 把自定义数据里的用户 id 还原为数据库主键。
func (d CustomData) ParseUserID() (uint, error) {
	id, err := strconv.ParseUint(d.UserID, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid user id %q in custom data", d.UserID)
	}
	return uint(id), nil
}
