package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// prefectureNames は 47 都道府県の正式名称。
var prefectureNames = []string{
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県",
	"静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県",
	"奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県",
	"熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}

var prefectureSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(prefectureNames))
	for _, name := range prefectureNames {
		set[name] = struct{}{}
	}
	return set
}()

// Prefecture は正式名称で検証済みの都道府県。
type Prefecture string

// NewPrefecture は入力をトリムし、47 都道府県のいずれかであることを検証する。
func NewPrefecture(input string) (Prefecture, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", errors.New("都道府県を指定してください")
	}
	if _, ok := prefectureSet[trimmed]; !ok {
		return "", fmt.Errorf("都道府県名が不正です: %q", trimmed)
	}
	return Prefecture(trimmed), nil
}

func (p Prefecture) String() string {
	return string(p)
}

// URL は http/https のみ許可する検証済み URL。空文字は「未設定」を表し許容する。
type URL string

// NewURL validates an optional http(s) URL.
func NewURL(input string) (URL, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", nil
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("URL の形式が不正です: %q", trimmed)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

// Year は竣工年。古代の建築も扱うため下限は緩く、未来方向のみ制限する。
type Year int

// NewYear validates a completion year.
func NewYear(value int) (Year, error) {
	if value <= 0 {
		return 0, errors.New("竣工年は正の値で指定してください")
	}
	if value > time.Now().Year()+10 {
		return 0, fmt.Errorf("竣工年が未来すぎます: %d", value)
	}
	return Year(value), nil
}

func (y Year) Int() int {
	return int(y)
}

// ValidateCoordinates は緯度経度の値域を検証する。0,0 は「未設定」として許容する。
func ValidateCoordinates(lat, lng float64) error {
	if lat == 0 && lng == 0 {
		return nil
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("緯度が値域外です: %f", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("経度が値域外です: %f", lng)
	}
	return nil
}
