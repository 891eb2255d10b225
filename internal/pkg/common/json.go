package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseJSON 解析 JSON 字符串到結構體
func ParseJSON(data string, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 確保沒有多餘資料
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

// AsString 從鬆散的 JSON 值取出字串。
// schema.org 的欄位常常是 string、number 或單元素陣列，這裡一律壓平成字串。
func AsString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		return fmt.Sprintf("%g", val)
	case []interface{}:
		if len(val) > 0 {
			return AsString(val[0])
		}
	}
	return ""
}

// AsStringList 從鬆散的 JSON 值取出字串列表（string 或 []interface{} 都接受）
func AsStringList(v interface{}) []string {
	var out []string
	switch val := v.(type) {
	case string:
		for _, line := range strings.Split(val, "\n") {
			if s := strings.TrimSpace(line); s != "" {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, item := range val {
			if s := AsString(item); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
