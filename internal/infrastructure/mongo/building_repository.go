package mongo

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/application"
	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nearbyFallbackLimit は矩形近似へ退避した場合の最大取得件数。
const nearbyFallbackLimit = 100

// buildingSort は一覧・検索の既定ソート。竣工年の昇順、同値は ID 昇順。
// completionYears は文字列カラムだが 4 桁西暦なら辞書順と数値順が一致する。
var buildingSort = bson.D{{Key: "completionYears", Value: 1}, {Key: "_id", Value: 1}}

// BuildingRepository implements application.BuildingRepository using MongoDB.
// リモートゲートウェイ本体。バックエンド起因の失敗はすべて TransportError に包む。
// 再試行は行わない（必要なら呼び出し側の責務）。
type BuildingRepository struct {
	buildings *mongo.Collection
	norm      Normalizer
}

// NewBuildingRepository creates a Mongo-backed building repository.
func NewBuildingRepository(db *mongo.Database, collectionName string) *BuildingRepository {
	return &BuildingRepository{
		buildings: db.Collection(collectionName),
		norm:      NewNormalizer(nil),
	}
}

// Find returns one page of buildings with the exact total count.
func (r *BuildingRepository) Find(ctx context.Context, paging application.Paging) (application.BuildingPage, error) {
	return r.page(ctx, bson.M{}, paging)
}

// Search applies the compiled filter clauses and returns a counted page.
func (r *BuildingRepository) Search(ctx context.Context, filter application.SearchFilters, paging application.Paging) (application.BuildingPage, error) {
	return r.page(ctx, buildSearchFilter(filter), paging)
}

// page は厳密な総件数カウントとソート済み 1 ページ分の取得をまとめる。
func (r *BuildingRepository) page(ctx context.Context, mongoFilter bson.M, paging application.Paging) (application.BuildingPage, error) {
	total, err := r.buildings.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return application.BuildingPage{}, transportError("件数の取得に失敗しました", err)
	}

	opts := options.Find().
		SetSort(buildingSort).
		SetSkip(int64(paging.Offset()))
	if paging.Limit > 0 {
		opts.SetLimit(int64(paging.Limit))
	}

	cursor, err := r.buildings.Find(ctx, mongoFilter, opts)
	if err != nil {
		return application.BuildingPage{}, transportError("建築物一覧の取得に失敗しました", err)
	}
	defer cursor.Close(ctx)

	items := make([]domain.Building, 0, paging.Limit)
	for cursor.Next(ctx) {
		var doc BuildingDocument
		if err := cursor.Decode(&doc); err != nil {
			return application.BuildingPage{}, transportError("建築物ドキュメントの読み取りに失敗しました", err)
		}
		items = append(items, r.norm.Building(doc))
	}
	if err := cursor.Err(); err != nil {
		return application.BuildingPage{}, transportError("建築物一覧の取得に失敗しました", err)
	}

	return application.BuildingPage{Items: items, Total: int(total)}, nil
}

// FindByID returns a single building by its numeric identifier.
func (r *BuildingRepository) FindByID(ctx context.Context, id int64) (*domain.Building, error) {
	var doc BuildingDocument
	err := r.buildings.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &application.NotFoundError{Resource: "building", ID: id}
	}
	if err != nil {
		return nil, transportError("建築物の取得に失敗しました", err)
	}

	building := r.norm.Building(doc)
	return &building, nil
}

// Nearby は $geoNear による距離順検索を試み、失敗した場合は矩形近似検索へ
// 黙って退避する。地理プロシージャ固有のエラーは呼び出し側へ見せない。
func (r *BuildingRepository) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Building, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{lng, lat}},
			}},
			{Key: "distanceField", Value: "distanceMeters"},
			{Key: "maxDistance", Value: radiusKm * 1000},
			{Key: "key", Value: "geo"},
			{Key: "spherical", Value: true},
		}}},
	}

	cursor, err := r.buildings.Aggregate(ctx, pipeline)
	if err == nil {
		items, decodeErr := r.decodeAll(ctx, cursor)
		if decodeErr == nil {
			return items, nil
		}
		err = decodeErr
	}
	_ = err // 地理インデックスが無い環境のエラーはここで握りつぶす

	filter := application.SearchFilters{
		CurrentLocation: &application.GeoPoint{Lat: lat, Lng: lng},
		RadiusKm:        radiusKm,
	}
	page, searchErr := r.Search(ctx, filter, application.Paging{Page: 1, Limit: nearbyFallbackLimit})
	if searchErr != nil {
		return nil, searchErr
	}
	return page.Items, nil
}

func (r *BuildingRepository) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]domain.Building, error) {
	defer cursor.Close(ctx)

	items := make([]domain.Building, 0)
	for cursor.Next(ctx) {
		var doc BuildingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, r.norm.Building(doc))
	}
	return items, cursor.Err()
}

// IncrementLikes は対象カウンタを $inc で原子的に加算し、加算後の値を返す。
// 楽観的なローカル加算は行わない。成功が返るまで加算は確定していない。
func (r *BuildingRepository) IncrementLikes(ctx context.Context, kind application.LikeKind, id int64) (int, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	switch kind {
	case application.LikeKindBuilding:
		var doc BuildingDocument
		err := r.buildings.FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{"$inc": bson.M{"likes": 1}},
			opts,
		).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, &application.NotFoundError{Resource: "building", ID: id}
		}
		if err != nil {
			return 0, transportError("いいねの加算に失敗しました", err)
		}
		return doc.Likes, nil

	case application.LikeKindPhoto:
		var doc BuildingDocument
		err := r.buildings.FindOneAndUpdate(ctx,
			bson.M{"photos.id": id},
			bson.M{"$inc": bson.M{"photos.$.likes": 1}},
			opts,
		).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, &application.NotFoundError{Resource: "photo", ID: id}
		}
		if err != nil {
			return 0, transportError("写真いいねの加算に失敗しました", err)
		}
		for _, photo := range doc.Photos {
			if photo.ID == id {
				return photo.Likes, nil
			}
		}
		return 0, &application.NotFoundError{Resource: "photo", ID: id}

	default:
		return 0, &application.TransportError{Status: http.StatusBadRequest, Message: "未知のいいね対象です"}
	}
}

// HealthCheck は最小の存在確認クエリを投げ、失敗をトランスポートエラーとして返す。
// 可用性トグルの判定にのみ使う。
func (r *BuildingRepository) HealthCheck(ctx context.Context) error {
	if _, err := r.buildings.EstimatedDocumentCount(ctx); err != nil {
		return transportError("データベースへの疎通確認に失敗しました", err)
	}
	return nil
}

// buildSearchFilter は SearchFilters をリモートクエリ句へ落とし込む。
// application.SearchFilters.Matches と同じ集合を残すことが両実装の契約。
// Architects / BuildingTypes / Areas は予約フィールドのため参照しない。
func buildSearchFilter(filter application.SearchFilters) bson.M {
	filter = filter.Normalized()

	mongoFilter := bson.M{}
	andClauses := make([]bson.M, 0)

	if filter.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
		andClauses = append(andClauses, bson.M{"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"titleEn": pattern},
			bson.M{"location": pattern},
		}})
	}

	if len(filter.Prefectures) > 0 {
		mongoFilter["prefectures"] = bson.M{"$in": filter.Prefectures}
	}

	if filter.HasPhotos {
		andClauses = append(andClauses, bson.M{
			"thumbnailUrl": bson.M{"$exists": true, "$nin": bson.A{"", nil}},
		})
	}
	if filter.HasVideos {
		andClauses = append(andClauses, bson.M{
			"youtubeUrl": bson.M{"$exists": true, "$nin": bson.A{"", nil}},
		})
	}

	if box, ok := filter.Box(); ok {
		andClauses = append(andClauses, bson.M{
			"geo": bson.M{"$geoWithin": bson.M{"$geometry": bson.M{
				"type": "Polygon",
				"coordinates": [][][]float64{{
					{box.MinLng, box.MinLat},
					{box.MaxLng, box.MinLat},
					{box.MaxLng, box.MaxLat},
					{box.MinLng, box.MaxLat},
					{box.MinLng, box.MinLat},
				}},
			}}},
		})
	}

	if len(andClauses) == 1 {
		for k, v := range andClauses[0] {
			mongoFilter[k] = v
		}
	} else if len(andClauses) > 1 {
		mongoFilter["$and"] = andClauses
	}

	return mongoFilter
}

func transportError(message string, err error) *application.TransportError {
	return &application.TransportError{
		Status:  http.StatusInternalServerError,
		Message: message,
		Err:     err,
	}
}
