package localdata

import (
	"time"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

// 埋め込みデータセットの登録日時。実データ移行前の初期投入日に合わせている。
var seededAt = time.Date(2023, 4, 1, 9, 0, 0, 0, time.UTC)

// Buildings はリモートデータソースが使えない場合に提供する静的データセットを返す。
// 正規化済み Building とまったく同じ形であることがフォールバック契約の前提。
// 呼び出しごとに新しいスライスを返すため、呼び出し側で破壊的に扱ってよい。
func Buildings() []domain.Building {
	return []domain.Building{
		{
			ID:                  1,
			UID:                 "f2c3a6be-1b84-4a5e-9f9d-3f3f6f1c2a01",
			Title:               "光の教会",
			TitleEn:             "Church of the Light",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/church-of-the-light.jpg",
			YoutubeURL:          "https://www.youtube.com/watch?v=S5PnIYSXzvA",
			CompletionYears:     1989,
			ParentBuildingTypes: []string{"宗教施設"},
			BuildingTypes:       []string{"教会"},
			ParentStructures:    []string{"RC造"},
			Structures:          []string{"鉄筋コンクリート造"},
			Prefectures:         "大阪府",
			Areas:               "茨木市",
			Location:            "大阪府茨木市北春日丘",
			Lat:                 34.8346,
			Lng:                 135.5545,
			Architects: []domain.Architect{
				{ID: 1, NameJa: "安藤忠雄", NameEn: "Tadao Ando", Websites: []domain.Website{}},
			},
			Photos: []domain.Photo{
				{ID: 101, URL: "https://media.kenchiku-map.jp/photos/church-of-the-light-01.jpg", ThumbnailURL: "https://media.kenchiku-map.jp/thumbnails/church-of-the-light-01.jpg", Likes: 24, CreatedAt: seededAt},
			},
			Likes:     132,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  2,
			UID:                 "8a1df5c0-92f7-4f24-8a3d-6f7f3f9b4b02",
			Title:               "水の教会",
			TitleEn:             "Chapel on the Water",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/chapel-on-the-water.jpg",
			YoutubeURL:          "",
			CompletionYears:     1988,
			ParentBuildingTypes: []string{"宗教施設"},
			BuildingTypes:       []string{"教会"},
			ParentStructures:    []string{"RC造"},
			Structures:          []string{"鉄筋コンクリート造"},
			Prefectures:         "北海道",
			Areas:               "勇払郡占冠村",
			Location:            "北海道勇払郡占冠村中トマム",
			Lat:                 43.0654,
			Lng:                 142.6487,
			Architects: []domain.Architect{
				{ID: 1, NameJa: "安藤忠雄", NameEn: "Tadao Ando", Websites: []domain.Website{}},
			},
			Photos:    []domain.Photo{},
			Likes:     87,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  3,
			UID:                 "0d9b7e52-6c1a-4f0b-b5a9-2e8d9c3f6c03",
			Title:               "広島平和記念資料館",
			TitleEn:             "Hiroshima Peace Memorial Museum",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/hiroshima-peace-memorial-museum.jpg",
			YoutubeURL:          "",
			CompletionYears:     1955,
			ParentBuildingTypes: []string{"文化施設"},
			BuildingTypes:       []string{"博物館"},
			ParentStructures:    []string{"RC造"},
			Structures:          []string{"鉄筋コンクリート造", "ピロティ"},
			Prefectures:         "広島県",
			Areas:               "広島市中区",
			Location:            "広島県広島市中区中島町",
			Lat:                 34.3917,
			Lng:                 132.4531,
			Architects: []domain.Architect{
				{ID: 2, NameJa: "丹下健三", NameEn: "Kenzo Tange", Websites: []domain.Website{}},
			},
			Photos:    []domain.Photo{},
			Likes:     96,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  4,
			UID:                 "5b2f8d14-3a6e-47c9-9d2b-7c4e1f8a9d04",
			Title:               "国立代々木競技場",
			TitleEn:             "Yoyogi National Gymnasium",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/yoyogi-national-gymnasium.jpg",
			YoutubeURL:          "https://www.youtube.com/watch?v=kH-zPTHYZYE",
			CompletionYears:     1964,
			ParentBuildingTypes: []string{"スポーツ施設"},
			BuildingTypes:       []string{"体育館"},
			ParentStructures:    []string{"吊り構造"},
			Structures:          []string{"鉄骨造", "鉄筋コンクリート造"},
			Prefectures:         "東京都",
			Areas:               "渋谷区",
			Location:            "東京都渋谷区神南",
			Lat:                 35.6672,
			Lng:                 139.6994,
			Architects: []domain.Architect{
				{ID: 2, NameJa: "丹下健三", NameEn: "Kenzo Tange", Websites: []domain.Website{}},
			},
			Photos: []domain.Photo{
				{ID: 102, URL: "https://media.kenchiku-map.jp/photos/yoyogi-01.jpg", ThumbnailURL: "https://media.kenchiku-map.jp/thumbnails/yoyogi-01.jpg", Likes: 41, CreatedAt: seededAt},
				{ID: 103, URL: "https://media.kenchiku-map.jp/photos/yoyogi-02.jpg", ThumbnailURL: "https://media.kenchiku-map.jp/thumbnails/yoyogi-02.jpg", Likes: 18, CreatedAt: seededAt},
			},
			Likes:     154,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  5,
			UID:                 "c7e4b9a8-5d21-4b6f-8c3a-1f9e2d7b8e05",
			Title:               "中銀カプセルタワービル",
			TitleEn:             "Nakagin Capsule Tower",
			ThumbnailURL:        "",
			YoutubeURL:          "",
			CompletionYears:     1972,
			ParentBuildingTypes: []string{"住宅"},
			BuildingTypes:       []string{"集合住宅"},
			ParentStructures:    []string{"S造"},
			Structures:          []string{"鉄骨造", "カプセルユニット"},
			Prefectures:         "東京都",
			Areas:               "中央区",
			Location:            "東京都中央区銀座",
			Lat:                 35.6654,
			Lng:                 139.7645,
			Architects: []domain.Architect{
				{ID: 3, NameJa: "黒川紀章", NameEn: "Kisho Kurokawa", Websites: []domain.Website{}},
			},
			Photos:    []domain.Photo{},
			Likes:     78,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  6,
			UID:                 "9f6a2c3d-8e07-4d5b-a1f4-6b8c9d0e1f06",
			Title:               "せんだいメディアテーク",
			TitleEn:             "Sendai Mediatheque",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/sendai-mediatheque.jpg",
			YoutubeURL:          "",
			CompletionYears:     2000,
			ParentBuildingTypes: []string{"文化施設"},
			BuildingTypes:       []string{"図書館", "ギャラリー"},
			ParentStructures:    []string{"S造"},
			Structures:          []string{"鉄骨造", "チューブ構造"},
			Prefectures:         "宮城県",
			Areas:               "仙台市青葉区",
			Location:            "宮城県仙台市青葉区春日町",
			Lat:                 38.2645,
			Lng:                 140.8652,
			Architects: []domain.Architect{
				{ID: 4, NameJa: "伊東豊雄", NameEn: "Toyo Ito", Websites: []domain.Website{}},
			},
			Photos:    []domain.Photo{},
			Likes:     102,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  7,
			UID:                 "3e8d1f72-4b9c-4e6a-bd05-8a7f6c5d4e07",
			Title:               "金沢21世紀美術館",
			TitleEn:             "21st Century Museum of Contemporary Art, Kanazawa",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/kanazawa-21st.jpg",
			YoutubeURL:          "https://www.youtube.com/watch?v=8kCnnLQBbLg",
			CompletionYears:     2004,
			ParentBuildingTypes: []string{"文化施設"},
			BuildingTypes:       []string{"美術館"},
			ParentStructures:    []string{"S造"},
			Structures:          []string{"鉄骨造", "ガラスカーテンウォール"},
			Prefectures:         "石川県",
			Areas:               "金沢市",
			Location:            "石川県金沢市広坂",
			Lat:                 36.5611,
			Lng:                 136.6581,
			Architects: []domain.Architect{
				{ID: 5, NameJa: "妹島和世", NameEn: "Kazuyo Sejima", Websites: []domain.Website{}},
				{ID: 6, NameJa: "西沢立衛", NameEn: "Ryue Nishizawa", Websites: []domain.Website{}},
			},
			Photos: []domain.Photo{
				{ID: 104, URL: "https://media.kenchiku-map.jp/photos/kanazawa-21st-01.jpg", ThumbnailURL: "https://media.kenchiku-map.jp/thumbnails/kanazawa-21st-01.jpg", Likes: 33, CreatedAt: seededAt},
			},
			Likes:     143,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  8,
			UID:                 "6c5b4a39-2d18-4f7e-9e6b-0d1c2b3a4f08",
			Title:               "根津美術館",
			TitleEn:             "Nezu Museum",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/nezu-museum.jpg",
			YoutubeURL:          "",
			CompletionYears:     2009,
			ParentBuildingTypes: []string{"文化施設"},
			BuildingTypes:       []string{"美術館"},
			ParentStructures:    []string{"S造"},
			Structures:          []string{"鉄骨造", "木造"},
			Prefectures:         "東京都",
			Areas:               "港区",
			Location:            "東京都港区南青山",
			Lat:                 35.6622,
			Lng:                 139.7175,
			Architects: []domain.Architect{
				{ID: 7, NameJa: "隈研吾", NameEn: "Kengo Kuma", Websites: []domain.Website{}},
			},
			Photos:    []domain.Photo{},
			Likes:     89,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  9,
			UID:                 "b1a0f9e8-7d64-4c5b-8a39-2e1d0c9b8a09",
			Title:               "豊島美術館",
			TitleEn:             "Teshima Art Museum",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/teshima-art-museum.jpg",
			YoutubeURL:          "",
			CompletionYears:     2010,
			ParentBuildingTypes: []string{"文化施設"},
			BuildingTypes:       []string{"美術館"},
			ParentStructures:    []string{"シェル構造"},
			Structures:          []string{"コンクリートシェル"},
			Prefectures:         "香川県",
			Areas:               "小豆郡土庄町",
			Location:            "香川県小豆郡土庄町豊島唐櫃",
			Lat:                 34.4894,
			Lng:                 134.0935,
			Architects: []domain.Architect{
				{ID: 6, NameJa: "西沢立衛", NameEn: "Ryue Nishizawa", Websites: []domain.Website{}},
			},
			Photos:    []domain.Photo{},
			Likes:     118,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  10,
			UID:                 "4d3c2b1a-0f9e-4871-b6c5-a4d3e2f1c010",
			Title:               "東京都庁舎",
			TitleEn:             "Tokyo Metropolitan Government Building",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/tokyo-metropolitan-government.jpg",
			YoutubeURL:          "",
			CompletionYears:     1991,
			ParentBuildingTypes: []string{"庁舎"},
			BuildingTypes:       []string{"超高層ビル"},
			ParentStructures:    []string{"S造"},
			Structures:          []string{"鉄骨造", "一部鉄骨鉄筋コンクリート造"},
			Prefectures:         "東京都",
			Areas:               "新宿区",
			Location:            "東京都新宿区西新宿",
			Lat:                 35.6896,
			Lng:                 139.6917,
			Architects: []domain.Architect{
				{ID: 2, NameJa: "丹下健三", NameEn: "Kenzo Tange", Websites: []domain.Website{}},
			},
			Photos:    []domain.Photo{},
			Likes:     65,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  11,
			UID:                 "7f8e9d0c-1b2a-4364-95f8-e7d6c5b4a311",
			Title:               "太宰府天満宮参道スターバックス",
			TitleEn:             "Starbucks Coffee Dazaifutenmangu Omotesando",
			ThumbnailURL:        "",
			YoutubeURL:          "https://www.youtube.com/watch?v=wXcVy3pYtIw",
			CompletionYears:     2011,
			ParentBuildingTypes: []string{"商業施設"},
			BuildingTypes:       []string{"店舗"},
			ParentStructures:    []string{"木造"},
			Structures:          []string{"木組み"},
			Prefectures:         "福岡県",
			Areas:               "太宰府市",
			Location:            "福岡県太宰府市宰府",
			Lat:                 33.5196,
			Lng:                 130.5312,
			Architects: []domain.Architect{
				{ID: 7, NameJa: "隈研吾", NameEn: "Kengo Kuma", Websites: []domain.Website{}},
			},
			Photos:    []domain.Photo{},
			Likes:     54,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:                  12,
			UID:                 "a9b8c7d6-e5f4-4213-8a9b-c0d1e2f3a412",
			Title:               "東京タワー",
			TitleEn:             "Tokyo Tower",
			ThumbnailURL:        "https://media.kenchiku-map.jp/thumbnails/tokyo-tower.jpg",
			YoutubeURL:          "",
			CompletionYears:     1958,
			ParentBuildingTypes: []string{"塔"},
			BuildingTypes:       []string{"電波塔"},
			ParentStructures:    []string{"S造"},
			Structures:          []string{"鉄骨トラス"},
			Prefectures:         "東京都",
			Areas:               "港区",
			Location:            "東京都港区芝公園",
			Lat:                 35.6586,
			Lng:                 139.7454,
			Architects: []domain.Architect{
				{ID: 8, NameJa: "内藤多仲", NameEn: "Tachu Naito", Websites: []domain.Website{}},
			},
			Photos: []domain.Photo{
				{ID: 105, URL: "https://media.kenchiku-map.jp/photos/tokyo-tower-01.jpg", ThumbnailURL: "https://media.kenchiku-map.jp/thumbnails/tokyo-tower-01.jpg", Likes: 52, CreatedAt: seededAt},
			},
			Likes:     201,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}
