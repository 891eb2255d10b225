package ingredient

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"recipe-calorie/internal/core/units"
)

// RuleTagger 內建的規則式斷詞器，沒有設定外部斷詞服務時的預設實作。
// 只處理行首的數量序列，剩下的文字視為名稱。
type RuleTagger struct{}

// NewRuleTagger 創建規則式斷詞器
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{}
}

var (
	// 行首數量："1 1/2"、"3/4"、"2.5"、"2-3"（取前值）、unicode 分數
	quantityRe = regexp.MustCompile(`^(?:(\d+\s+\d+/\d+)|(\d+/\d+)|(\d+(?:\.\d+)?)\s*(?:[-\x{2013}]|to\s)\s*\d+(?:\.\d+)?|(\d+(?:\.\d+)?)|([\x{00BC}-\x{00BE}\x{2150}-\x{215E}]))`)

	// 數量片段之間的連接詞
	amountSepRe = regexp.MustCompile(`^(?:plus\s+|\+\s*|and\s+|,\s*)`)

	sizeRe = regexp.MustCompile(`(?i)\b(extra[- ]large|small|medium|large)\b`)

	wordRe = regexp.MustCompile(`^[A-Za-z]+\.?`)
)

// 不可換算但會出現在數量後面的計數單位，留給每件重量表處理
var countUnits = map[string]bool{
	"can": true, "cans": true, "tin": true, "tins": true,
	"clove": true, "cloves": true, "slice": true, "slices": true,
	"piece": true, "pieces": true, "stick": true, "sticks": true,
	"stalk": true, "stalks": true, "sprig": true, "sprigs": true,
	"pinch": true, "pinches": true, "bunch": true, "bunches": true,
	"head": true, "heads": true, "handful": true, "handfuls": true,
	"package": true, "packages": true, "packet": true, "packets": true,
	"jar": true, "jars": true, "bottle": true, "bottles": true,
}

// Tag 以規則切出行首的數量與單位，其餘當作食材名稱
func (t *RuleTagger) Tag(ctx context.Context, line string) (*TaggedLine, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return nil, errors.New("empty ingredient line")
	}

	size := ""
	if m := sizeRe.FindString(s); m != "" {
		size = strings.ReplaceAll(strings.ToLower(m), " ", "-")
	}

	var amounts []TaggedAmount
	rest := s
	for {
		quantity, unit, remainder, ok := matchAmount(rest)
		if !ok {
			break
		}
		amounts = append(amounts, TaggedAmount{Quantity: quantity, Unit: unit})
		rest = remainder

		// 只有接著還是數量時才繼續吃連接詞（"plus 2 tbsp"、", 14 oz"）
		sep := amountSepRe.FindString(rest)
		if sep == "" {
			break
		}
		next := strings.TrimSpace(rest[len(sep):])
		if !quantityRe.MatchString(next) {
			break
		}
		rest = next
	}

	name := strings.TrimSpace(rest)
	name = strings.TrimPrefix(name, "of ")
	name = sizeRe.ReplaceAllString(name, "")
	name = strings.Trim(strings.Join(strings.Fields(name), " "), " ,")

	return &TaggedLine{Name: name, Size: size, Amounts: amounts}, nil
}

// matchAmount 從字串開頭切出一組 (數量, 單位)。
// 單位必須是可換算單位或已知的計數單位，其他字視為名稱的一部分。
func matchAmount(s string) (quantity, unit, remainder string, ok bool) {
	m := quantityRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", s, false
	}

	switch {
	case m[1] != "": // 帶整數的分數 "1 1/2"
		quantity = m[1]
	case m[2] != "": // 純分數 "3/4"
		quantity = m[2]
	case m[3] != "": // 範圍 "2-3"，取前值
		quantity = m[3]
	case m[4] != "": // 整數或小數
		quantity = m[4]
	default: // unicode 分數
		quantity = m[5]
	}

	remainder = strings.TrimSpace(s[len(m[0]):])

	// 兩個詞的單位（"fl oz"、"fluid ounces"）優先
	fields := strings.Fields(remainder)
	if len(fields) >= 2 {
		two := strings.ToLower(fields[0] + " " + fields[1])
		if _, found := units.Lookup(two); found {
			return quantity, two, strings.TrimSpace(remainder[len(fields[0])+1+len(fields[1]):]), true
		}
	}
	if word := wordRe.FindString(remainder); word != "" {
		candidate := strings.ToLower(strings.TrimSuffix(word, "."))
		_, convertible := units.Lookup(candidate)
		if convertible || countUnits[candidate] {
			return quantity, candidate, strings.TrimSpace(remainder[len(word):]), true
		}
	}

	return quantity, "", remainder, true
}
