package nutrition

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"recipe-calorie/internal/core/cache"
	"recipe-calorie/internal/pkg/common"
)

// Resolver 分層解析熱量：內建表 → 快取 → USDA 搜尋。
// 內建表在最前面，常見品項（鹽、水、香料）不受線上搜尋誤配影響。
type Resolver struct {
	client *Client
	store  cache.Store
}

// NewResolver 創建熱量解析器。store 可為 nil（快取關閉）。
func NewResolver(client *Client, store cache.Store) *Resolver {
	return &Resolver{
		client: client,
		store:  store,
	}
}

// Resolve 解析一個食材名稱的每 100 公克熱量。
// 回傳值與 Client.Search 同樣是三態：成功、軟失敗原因、致命錯誤。
func (r *Resolver) Resolve(ctx context.Context, name string) (*Estimate, string, error) {
	cleaned := CleanName(name)

	// 內建表永遠優先於線上搜尋
	if kcal, desc, ok := LookupKnown(cleaned); ok {
		return &Estimate{KcalPer100g: kcal, Description: desc}, "", nil
	}

	cacheKey := "kcal:" + cleaned
	if r.store != nil {
		if value, err := r.store.Get(ctx, cacheKey); err == nil {
			var est Estimate
			if err := common.ParseJSON(value, &est); err == nil {
				return &est, "", nil
			}
			common.LogWarn("快取內容無法解析，改打 USDA",
				zap.String("key", cacheKey),
			)
		}
	}

	est, reason, err := r.client.Search(ctx, cleaned)
	if err != nil || est == nil {
		// 失敗不進快取，暫時性的限流或斷線不該卡住一整個 TTL
		return nil, reason, err
	}

	if r.store != nil {
		if value, err := json.Marshal(est); err == nil {
			if err := r.store.Set(ctx, cacheKey, string(value)); err != nil {
				common.LogWarn("寫入快取失敗",
					zap.String("key", cacheKey),
					zap.Error(err),
				)
			}
		}
	}

	return est, "", nil
}
