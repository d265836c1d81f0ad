package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cvforge/internal/config"
)

// CustomData 是随结账请求附带、并在订单与 webhook 中原样回传的业务数据。
// 这是把支付结果关联回 (用户, 模板) 的唯一纽带。
type CustomData struct {
	UserID     string `json:"user_id"`
	TemplateID string `json:"template_id"`
}

// CheckoutRequest 描述一次模板购买的结账会话。
type CheckoutRequest struct {
	UserID       uint
	Email        string
	TemplateID   string
	TemplateName string
	RedirectURL  string
}

// Checkout 是服务商返回的结账会话。
type Checkout struct {
	ID  string
	URL string
}

// Order 是服务商侧的已完成订单。
type Order struct {
	ID         string
	TotalCents int64
	CustomData CustomData
}

// Provider 抽象外部支付服务商，便于测试替换。
type Provider interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error)
	GetOrder(ctx context.Context, orderID string) (Order, error)
}

// Client 通过 HTTP 调用 LemonSqueezy 风格的 JSON:API 支付接口。
type Client struct {
	baseURL    string
	apiKey     string
	storeID    int
	variantID  int
	httpClient *http.Client
}

// NewClient 根据配置构造支付客户端。
func NewClient(cfg config.PaymentConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("payment api key is required")
	}
	if cfg.StoreID <= 0 || cfg.VariantID <= 0 {
		return nil, errors.New("payment store id and variant id are required")
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/"),
		apiKey:     cfg.APIKey,
		storeID:    cfg.StoreID,
		variantID:  cfg.VariantID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type checkoutAttributes struct {
	URL             string `json:"url"`
	ProductOptions  any    `json:"product_options,omitempty"`
	CheckoutData    any    `json:"checkout_data,omitempty"`
	CheckoutOptions any    `json:"checkout_options,omitempty"`
}

type apiResource[T any] struct {
	Data struct {
		ID         string `json:"id"`
		Attributes T      `json:"attributes"`
	} `json:"data"`
}

// CreateCheckout 创建结账会话，并把 {user_id, template_id} 作为
// 自定义数据附在会话上。
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error) {
	if strings.TrimSpace(req.TemplateID) == "" {
		return Checkout{}, errors.New("template id is required")
	}
	if req.UserID == 0 {
		return Checkout{}, errors.New("user id is required")
	}

	body := map[string]any{
		"data": map[string]any{
			"type": "checkouts",
			"attributes": map[string]any{
				"product_options": map[string]any{
					"name":         fmt.Sprintf("Resume Template: %s", req.TemplateName),
					"description":  fmt.Sprintf("Purchase of the %s resume template", req.TemplateName),
					"redirect_url": req.RedirectURL,
				},
				"checkout_data": map[string]any{
					"email": req.Email,
					"custom": CustomData{
						UserID:     strconv.FormatUint(uint64(req.UserID), 10),
						TemplateID: req.TemplateID,
					},
				},
			},
			"relationships": map[string]any{
				"store": map[string]any{
					"data": map[string]any{"type": "stores", "id": strconv.Itoa(c.storeID)},
				},
				"variant": map[string]any{
					"data": map[string]any{"type": "variants", "id": strconv.Itoa(c.variantID)},
				},
			},
		},
	}

	var resp apiResource[checkoutAttributes]
	if err := c.do(ctx, http.MethodPost, "/v1/checkouts", body, &resp); err != nil {
		return Checkout{}, fmt.Errorf("create checkout: %w", err)
	}
	if resp.Data.ID == "" || resp.Data.Attributes.URL == "" {
		return Checkout{}, errors.New("create checkout: empty response")
	}
	return Checkout{ID: resp.Data.ID, URL: resp.Data.Attributes.URL}, nil
}

type orderAttributes struct {
	Total      int64           `json:"total"`
	CustomData json.RawMessage `json:"custom_data"`
}

// GetOrder 拉取订单详情，主要用于用户回跳后的同步核验。
func (c *Client) GetOrder(ctx context.Context, orderID string) (Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return Order{}, errors.New("order id is required")
	}

	var resp apiResource[orderAttributes]
	if err := c.do(ctx, http.MethodGet, "/v1/orders/"+orderID, nil, &resp); err != nil {
		return Order{}, fmt.Errorf("get order %s: %w", orderID, err)
	}

	order := Order{ID: resp.Data.ID, TotalCents: resp.Data.Attributes.Total}
	if len(resp.Data.Attributes.CustomData) > 0 {
		if err := json.Unmarshal(resp.Data.Attributes.CustomData, &order.CustomData); err != nil {
			return Order{}, fmt.Errorf("decode order %s custom data: %w", orderID, err)
		}
	}
	return order, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.api+json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/vnd.api+json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request payment api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 8*1024))
		return fmt.Errorf("payment api status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
