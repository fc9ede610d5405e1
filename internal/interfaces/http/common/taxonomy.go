package common

import "strings"

// prefectureAliases maps common romaji aliases onto canonical Japanese labels.
// フロントエンドの旧 URL パラメータ互換のために残している。
var prefectureAliases = map[string]string{
	"hokkaido":  "北海道",
	"miyagi":    "宮城県",
	"tokyo":     "東京都",
	"kanagawa":  "神奈川県",
	"ishikawa":  "石川県",
	"aichi":     "愛知県",
	"kyoto":     "京都府",
	"osaka":     "大阪府",
	"hyogo":     "兵庫県",
	"hiroshima": "広島県",
	"kagawa":    "香川県",
	"fukuoka":   "福岡県",
	"okinawa":   "沖縄県",
}

// CanonicalPrefecture normalises romaji aliases into canonical Japanese labels.
func CanonicalPrefecture(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := prefectureAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// CanonicalPrefectures de-duplicates and cleans prefecture selections.
func CanonicalPrefectures(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, value := range values {
		canonical := CanonicalPrefecture(value)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		result = append(result, canonical)
	}
	return result
}
