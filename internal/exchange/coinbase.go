package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kelvinlyk2002/final-backend/internal/config"
)

// RateClient 汇率查询接口
type RateClient interface {
	// USDRate 按币种符号查询美元汇率
	USDRate(ctx context.Context, symbol string) (float64, error)
}

// ratesResponse Coinbase exchange-rates 接口响应
type ratesResponse struct {
	Data struct {
		Currency string            `json:"currency"`
		Rates    map[string]string `json:"rates"`
	} `json:"data"`
}

// CoinbaseClient Coinbase 汇率客户端
type CoinbaseClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewCoinbaseClient 创建汇率客户端
func NewCoinbaseClient(cfg config.ExchangeConfig) *CoinbaseClient {
	return &CoinbaseClient{
		apiURL: cfg.APIURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// USDRate 查询指定币种对美元的实时汇率
func (c *CoinbaseClient) USDRate(ctx context.Context, symbol string) (float64, error) {
	reqURL := fmt.Sprintf("%s/v2/exchange-rates?currency=%s", c.apiURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build exchange rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call exchange rate API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read exchange rate response: %w", err)
	}

	var rates ratesResponse
	if err := json.Unmarshal(body, &rates); err != nil {
		return 0, fmt.Errorf("failed to unmarshal exchange rate response: %w", err)
	}

	usd, ok := rates.Data.Rates["USD"]
	if !ok {
		return 0, fmt.Errorf("no USD rate for currency %s", symbol)
	}

	rate, err := strconv.ParseFloat(usd, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid USD rate %q for currency %s: %w", usd, symbol, err)
	}

	return rate, nil
}
