// Package scrape 負責取得食譜網頁並抽出標題、份數、食材與步驟。
package scrape

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"
)

// Fetcher 抓取網頁原始 HTML。
// 先用一般瀏覽器標頭抓，被擋（403 / 500）時換反偵測標頭組重試一次。
type Fetcher struct {
	client    *resty.Client
	challenge *resty.Client
	config    *config.FetchConfig
}

// NewFetcher 創建抓取器
func NewFetcher(cfg *config.FetchConfig) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeaders(map[string]string{
			"User-Agent":                cfg.UserAgent,
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
			"Accept-Language":           "en-US,en;q=0.9",
			"Accept-Encoding":           "gzip, deflate",
			"Connection":                "keep-alive",
			"Upgrade-Insecure-Requests": "1",
		})

	// 第二組客戶端模擬真實瀏覽器的挑戰回應行為：
	// 完整的 client hints 標頭加上 cookie，擋掉大部分的機器人判定
	challenge := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeaders(map[string]string{
			"User-Agent":                cfg.UserAgent,
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
			"Accept-Language":           "en-US,en;q=0.9",
			"Sec-Ch-Ua":                 `"Chromium";v="133", "Not(A:Brand";v="99"`,
			"Sec-Ch-Ua-Mobile":          "?0",
			"Sec-Ch-Ua-Platform":        `"Windows"`,
			"Sec-Fetch-Dest":            "document",
			"Sec-Fetch-Mode":            "navigate",
			"Sec-Fetch-Site":            "none",
			"Sec-Fetch-User":            "?1",
			"Upgrade-Insecure-Requests": "1",
		})

	return &Fetcher{
		client:    client,
		challenge: challenge,
		config:    cfg,
	}
}

// Fetch 抓取 URL 的原始 HTML。
// 有些網站回 500 但內容是完整頁面，body 夠長就視為成功；
// 只有真的空短的錯誤頁才當抓取失敗。
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", common.NewError(common.ErrCodeFetchFailed,
			fmt.Sprintf("failed to fetch recipe page: %v", err),
			http.StatusBadGateway, err)
	}

	// 被擋或伺服器錯誤，換反偵測客戶端再試一次
	if resp.StatusCode() == http.StatusForbidden || resp.StatusCode() == http.StatusInternalServerError {
		common.LogWarn("初次抓取被拒，改用挑戰客戶端重試",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode()),
		)
		if retry, retryErr := f.challenge.R().SetContext(ctx).Get(url); retryErr == nil {
			resp = retry
		}
	}

	body := resp.String()
	status := resp.StatusCode()

	if status == http.StatusInternalServerError && len(body) >= f.config.MinBodyBytes {
		// 500 但頁面完整，照用
		common.LogWarn("網站回 500 但內容完整，繼續解析",
			zap.String("url", url),
			zap.Int("body_bytes", len(body)),
		)
		return body, nil
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", common.NewError(common.ErrCodeSiteBlocked,
			fmt.Sprintf("site returned HTTP %d", status),
			http.StatusForbidden, nil)
	}

	common.LogInfo("網頁抓取完成",
		zap.String("url", url),
		zap.Int("status", status),
		zap.Int("body_bytes", len(body)),
	)

	return body, nil
}
