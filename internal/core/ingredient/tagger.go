package ingredient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// TaggedAmount 斷詞服務回傳的單一數量片段。
// 複合數量（"2 cups plus 2 tbsp"）時 Amounts 會帶子片段。
type TaggedAmount struct {
	Quantity string         `json:"quantity"`
	Unit     string         `json:"unit"`
	Amounts  []TaggedAmount `json:"amounts,omitempty"`
}

// TaggedLine 斷詞服務對一行食材文字的結構化結果
type TaggedLine struct {
	Name    string         `json:"name"`
	Size    string         `json:"size,omitempty"` // small / medium / large / extra-large
	Amounts []TaggedAmount `json:"amounts"`
}

// Tagger 食材斷詞服務的介面。規則式、統計式或 ML 實作都可以替換，
// 只要遵守「一行文字進、結構化結果或錯誤出」的契約。
type Tagger interface {
	Tag(ctx context.Context, line string) (*TaggedLine, error)
}

// HTTPTagger 透過 HTTP 呼叫外部斷詞服務
type HTTPTagger struct {
	client *resty.Client
}

// NewHTTPTagger 創建外部斷詞服務客戶端
func NewHTTPTagger(baseURL string, timeout time.Duration) *HTTPTagger {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &HTTPTagger{client: client}
}

// Tag 呼叫斷詞服務。任何失敗都原樣回傳錯誤，由 Parser 降級處理。
func (t *HTTPTagger) Tag(ctx context.Context, line string) (*TaggedLine, error) {
	var tagged TaggedLine
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"line": line}).
		SetResult(&tagged).
		Post("/parse")
	if err != nil {
		return nil, fmt.Errorf("tagger request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("tagger returned status %d", resp.StatusCode())
	}
	return &tagged, nil
}
