package mongo

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SuggestionRepository は検索候補の逆引きと検索ログ集計を MongoDB で扱う。
// エラー処理方針は呼び出し側（アプリケーション層）に委ね、ここでは素のエラーを返す。
type SuggestionRepository struct {
	buildings  *mongo.Collection
	searchLogs *mongo.Collection
}

// NewSuggestionRepository は建築物・検索ログのコレクションを束縛したリポジトリを構築する。
func NewSuggestionRepository(db *mongo.Database, buildingCollection, searchLogCollection string) *SuggestionRepository {
	return &SuggestionRepository{
		buildings:  db.Collection(buildingCollection),
		searchLogs: db.Collection(searchLogCollection),
	}
}

// Suggest は題名・英語題名への部分一致でマッチした名称を返す。
// 重複除去は呼び出し側で行う。
func (r *SuggestionRepository) Suggest(ctx context.Context, keyword string, limit int) ([]string, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{"title": 1, "titleEn": 1})

	cursor, err := r.buildings.Find(ctx, bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"titleEn": pattern},
	}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	needle := strings.ToLower(keyword)
	candidates := make([]string, 0, limit)
	for cursor.Next(ctx) {
		var doc struct {
			Title   string `bson:"title"`
			TitleEn string `bson:"titleEn"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		if strings.Contains(strings.ToLower(doc.Title), needle) {
			candidates = append(candidates, doc.Title)
		}
		if strings.Contains(strings.ToLower(doc.TitleEn), needle) {
			candidates = append(candidates, doc.TitleEn)
		}
	}
	return candidates, cursor.Err()
}

// Popular は検索ログをキーワード単位で集計し、件数の多い順に返す。
func (r *SuggestionRepository) Popular(ctx context.Context, limit int) ([]string, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$query"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.searchLogs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	keywords := make([]string, 0, limit)
	for cursor.Next(ctx) {
		var doc struct {
			Query string `bson:"_id"`
			Count int    `bson:"count"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		keywords = append(keywords, doc.Query)
	}
	return keywords, cursor.Err()
}

// RecordSearch は検索キーワードを 1 件追記する。集計（Popular）の元データになる。
func (r *SuggestionRepository) RecordSearch(ctx context.Context, query string) error {
	_, err := r.searchLogs.InsertOne(ctx, SearchLogDocument{
		Query:     strings.TrimSpace(query),
		CreatedAt: time.Now().UTC(),
	})
	return err
}
