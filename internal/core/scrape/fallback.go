package scrape

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)

	// 標題後綴的分隔符（" — Site"、" | Site"、" - Site"），取最後一個。
	// 要求兩側有空白，避免截斷 "Best-Ever" 這類帶連字號的菜名
	titleSepRe = regexp.MustCompile(`\s+(?:\x{2014}|\x{2013}|\||-)\s+`)

	// 像食材的一行：數字、unicode 分數或數量詞開頭
	ingredientLineRe = regexp.MustCompile(`^[0-9\x{00BC}-\x{00BE}\x{2150}-\x{215E}]|^(?i:a |one |two |three |four |half )`)

	// 步驟段落要有烹飪動詞才算
	cookingVerbRe = regexp.MustCompile(`(?i)\b(heat|preheat|cook|bake|stir|add|combine|mix|whisk|fold|place|pour|bring|simmer|boil|reduce|remove|let|set|serve|season|toss|transfer|cover|drain|slice|chop|cut|spread|layer|roll|brush)\b`)

	servingsTextRe = regexp.MustCompile(`(?i)(\d+)\s*(?:servings?|portions?)`)

	brSplitRe = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe     = regexp.MustCompile(`<[^>]+>`)
)

func normalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// extractFallback 沒有結構化標記時的 DOM 啟發式抽取。
// 每個欄位各自盡力，抽不到就留空。
func extractFallback(doc *goquery.Document) *RecipeData {
	data := &RecipeData{
		Title:        fallbackTitle(doc),
		Ingredients:  fallbackIngredients(doc),
		Instructions: fallbackInstructions(doc),
		Servings:     fallbackServings(doc),
	}
	return data
}

// fallbackTitle 優先用 <title>（去掉最後一個分隔符之後的站名），
// 再退到第一個 h1 / h2。
func fallbackTitle(doc *goquery.Document) string {
	if raw := normalizeSpace(doc.Find("title").First().Text()); raw != "" {
		if locs := titleSepRe.FindAllStringIndex(raw, -1); len(locs) > 0 {
			last := locs[len(locs)-1]
			if title := strings.TrimSpace(raw[:last[0]]); title != "" {
				return title
			}
		}
		return raw
	}
	for _, tag := range []string{"h1", "h2"} {
		if title := normalizeSpace(doc.Find(tag).First().Text()); title != "" {
			return title
		}
	}
	return "Unknown Recipe"
}

// fallbackIngredients 收集像食材的 <li>；部分網站（Smitten Kitchen 這類）
// 把食材放在帶 <br> 的單一 <p> 裡，兩邊都掃，取命中較多的那組。
func fallbackIngredients(doc *goquery.Document) []string {
	var fromList []string
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		text := normalizeSpace(s.Text())
		if text != "" && ingredientLineRe.MatchString(text) {
			fromList = append(fromList, text)
		}
	})

	var bestParagraph []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if s.Find("br").Length() < 2 {
			return
		}
		rawHTML, err := s.Html()
		if err != nil {
			return
		}
		var matches []string
		for _, chunk := range brSplitRe.Split(rawHTML, -1) {
			line := normalizeSpace(html.UnescapeString(tagRe.ReplaceAllString(chunk, " ")))
			if line != "" && ingredientLineRe.MatchString(line) {
				matches = append(matches, line)
			}
		}
		if len(matches) > len(bestParagraph) {
			bestParagraph = matches
		}
	})

	if len(bestParagraph) > len(fromList) {
		return bestParagraph
	}
	return fromList
}

// fallbackInstructions 先找最長的 <ol>，沒有再收長度夠、
// 含烹飪動詞、又不像食材行的 <p> 段落。
func fallbackInstructions(doc *goquery.Document) []string {
	var instructions []string
	doc.Find("ol").Each(func(_ int, ol *goquery.Selection) {
		var items []string
		ol.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := normalizeSpace(li.Text()); text != "" {
				items = append(items, text)
			}
		})
		if len(items) > len(instructions) {
			instructions = items
		}
	})
	if len(instructions) > 0 {
		return instructions
	}

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := normalizeSpace(s.Text())
		if len(text) > 40 && cookingVerbRe.MatchString(text) && !ingredientLineRe.MatchString(text) {
			instructions = append(instructions, text)
		}
	})
	return instructions
}

// fallbackServings 在頁面文字裡找 "N servings" 的字樣
func fallbackServings(doc *goquery.Document) *int {
	body := doc.Find("body").Text()
	m := servingsTextRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return ParseServings(m[1])
}
