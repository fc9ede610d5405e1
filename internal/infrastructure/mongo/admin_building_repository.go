package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	adminapp "github.com/kenchikumap/kenchiku-map-services/api/internal/admin/application"
	admindomain "github.com/kenchikumap/kenchiku-map-services/api/internal/admin/domain"
	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ adminapp.BuildingRepository = (*AdminBuildingRepository)(nil)

// AdminBuildingRepository は管理コンテキスト向けの建築物書き込みを担う。
// 数値 ID の採番はカウンタコレクションの $inc で行う。
type AdminBuildingRepository struct {
	buildings *mongo.Collection
	counters  *mongo.Collection
}

// NewAdminBuildingRepository creates a Mongo-backed admin repository.
func NewAdminBuildingRepository(db *mongo.Database, buildingCollection, counterCollection string) *AdminBuildingRepository {
	return &AdminBuildingRepository{
		buildings: db.Collection(buildingCollection),
		counters:  db.Collection(counterCollection),
	}
}

// Create は ID・UID・ジオハッシュを採番/導出した上でドキュメントを追加する。
func (r *AdminBuildingRepository) Create(ctx context.Context, building *admindomain.Building) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return fmt.Errorf("建築物 ID の採番に失敗しました: %w", err)
	}

	now := time.Now().UTC()
	building.ID = id
	building.UID = uuid.NewString()
	building.CreatedAt = now
	building.UpdatedAt = now

	doc := adminBuildingDocument(building)
	if _, err := r.buildings.InsertOne(ctx, doc); err != nil {
		return err
	}
	return nil
}

// Update は可変フィールドを $set で置き換える。likes と写真リレーションは
// 公開側の操作で積み上がるため、管理更新では触らない。
func (r *AdminBuildingRepository) Update(ctx context.Context, building *admindomain.Building) error {
	now := time.Now().UTC()
	building.UpdatedAt = now

	doc := adminBuildingDocument(building)
	update := bson.M{"$set": bson.M{
		"title":               doc.Title,
		"titleEn":             doc.TitleEn,
		"thumbnailUrl":        doc.ThumbnailURL,
		"youtubeUrl":          doc.YoutubeURL,
		"completionYears":     doc.CompletionYears,
		"parentBuildingTypes": doc.ParentBuildingTypes,
		"buildingTypes":       doc.BuildingTypes,
		"parentStructures":    doc.ParentStructures,
		"structures":          doc.Structures,
		"prefectures":         doc.Prefectures,
		"areas":               doc.Areas,
		"location":            doc.Location,
		"lat":                 doc.Lat,
		"lng":                 doc.Lng,
		"geohash":             doc.Geohash,
		"geo":                 doc.Geo,
		"architects":          doc.Architects,
		"updatedAt":           now,
	}}

	result, err := r.buildings.UpdateOne(ctx, bson.M{"_id": building.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FindByID は管理画面の編集フォーム向けに単一の建築物を返す。
func (r *AdminBuildingRepository) FindByID(ctx context.Context, id int64) (*admindomain.Building, error) {
	var doc BuildingDocument
	if err := r.buildings.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	building, err := adminBuildingFromDocument(doc)
	if err != nil {
		return nil, err
	}
	return building, nil
}

// nextID はカウンタドキュメントを $inc し、採番済みの次の ID を返す。
func (r *AdminBuildingRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "buildings"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// adminBuildingDocument は管理集約をドキュメントスキーマへ写像する。
// 位置情報からジオハッシュと GeoJSON Point を導出する。
func adminBuildingDocument(building *admindomain.Building) BuildingDocument {
	createdAt := building.CreatedAt
	updatedAt := building.UpdatedAt

	relations := make([]BuildingArchitectDocument, 0, len(building.Architects))
	ordered := append([]admindomain.ArchitectRef(nil), building.Architects...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})
	for _, ref := range ordered {
		relations = append(relations, BuildingArchitectDocument{
			ArchitectID: ref.ID,
			OrderIndex:  ref.OrderIndex,
			Architect: &ArchitectDocument{
				ID:     ref.ID,
				NameJa: ref.NameJa,
				NameEn: ref.NameEn,
			},
		})
	}

	doc := BuildingDocument{
		ID:                  building.ID,
		UID:                 building.UID,
		Title:               building.Title,
		TitleEn:             building.TitleEn,
		ThumbnailURL:        building.ThumbnailURL.String(),
		YoutubeURL:          building.YoutubeURL.String(),
		CompletionYears:     strconv.Itoa(building.CompletionYears.Int()),
		ParentBuildingTypes: strings.Join(building.ParentBuildingTypes, ","),
		BuildingTypes:       strings.Join(building.BuildingTypes, ","),
		ParentStructures:    strings.Join(building.ParentStructures, ","),
		Structures:          strings.Join(building.Structures, ","),
		Prefectures:         building.Prefecture.String(),
		Areas:               building.Areas,
		Location:            building.Location,
		Lat:                 strconv.FormatFloat(building.Lat, 'f', -1, 64),
		Lng:                 strconv.FormatFloat(building.Lng, 'f', -1, 64),
		Likes:               building.Likes,
		Architects:          relations,
		CreatedAt:           &createdAt,
		UpdatedAt:           &updatedAt,
	}

	if building.Lat != 0 || building.Lng != 0 {
		doc.Geohash = geohash.Encode(building.Lat, building.Lng)
		doc.Geo = &GeoPointDocument{
			Type:        "Point",
			Coordinates: []float64{building.Lng, building.Lat},
		}
	}
	return doc
}

// adminBuildingFromDocument はドキュメントを管理集約へ戻す。
// 保存済みデータが値オブジェクトの検証を通らない場合はエラーを返す。
func adminBuildingFromDocument(doc BuildingDocument) (*admindomain.Building, error) {
	prefecture, err := admindomain.NewPrefecture(doc.Prefectures)
	if err != nil {
		return nil, err
	}

	year, ok := parseYear(doc.CompletionYears)
	if !ok {
		return nil, errors.New("保存済みの竣工年を解釈できません")
	}
	completionYears, err := admindomain.NewYear(year)
	if err != nil {
		return nil, err
	}

	lat, _ := parseCoord(doc.Lat)
	lng, _ := parseCoord(doc.Lng)

	architects := make([]admindomain.ArchitectRef, 0, len(doc.Architects))
	for _, rel := range doc.Architects {
		ref := admindomain.ArchitectRef{ID: rel.ArchitectID, OrderIndex: rel.OrderIndex}
		if rel.Architect != nil {
			ref.NameJa = rel.Architect.NameJa
			ref.NameEn = rel.Architect.NameEn
		}
		architects = append(architects, ref)
	}

	building := &admindomain.Building{
		ID:                  doc.ID,
		UID:                 doc.UID,
		Title:               doc.Title,
		TitleEn:             doc.TitleEn,
		ThumbnailURL:        admindomain.URL(doc.ThumbnailURL),
		YoutubeURL:          admindomain.URL(doc.YoutubeURL),
		CompletionYears:     completionYears,
		ParentBuildingTypes: splitList(doc.ParentBuildingTypes),
		BuildingTypes:       splitList(doc.BuildingTypes),
		ParentStructures:    splitList(doc.ParentStructures),
		Structures:          splitList(doc.Structures),
		Prefecture:          prefecture,
		Areas:               doc.Areas,
		Location:            doc.Location,
		Lat:                 lat,
		Lng:                 lng,
		Architects:          architects,
		Likes:               doc.Likes,
	}
	if doc.CreatedAt != nil {
		building.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		building.UpdatedAt = *doc.UpdatedAt
	}
	return building, nil
}
