package main

import (
	"context"
	"flag"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mmcloughlin/geohash"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/config"
	"github.com/kenchikumap/kenchiku-map-services/api/internal/infrastructure/localdata"
	mongodoc "github.com/kenchikumap/kenchiku-map-services/api/internal/infrastructure/mongo"
)

func main() {
	_ = godotenv.Load()

	drop := flag.Bool("drop", false, "既存の buildings / search_logs コレクションを削除してから投入する")
	flag.Parse()

	cfg := config.Load()
	logger := cfg.ServerLog

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("MongoDB 切断時にエラー: %v", err)
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	buildings := db.Collection(cfg.BuildingCollection)
	searchLogs := db.Collection(cfg.SearchLogCollection)
	counters := db.Collection(cfg.CounterCollection)

	if *drop {
		if err := buildings.Drop(ctx); err != nil {
			logger.Fatalf("buildings コレクションの削除に失敗しました: %v", err)
		}
		if err := searchLogs.Drop(ctx); err != nil {
			logger.Fatalf("search_logs コレクションの削除に失敗しました: %v", err)
		}
		logger.Printf("既存コレクションを削除しました")
	}

	items := localdata.Buildings()
	var maxID int64
	for _, b := range items {
		doc := mongodoc.DocumentFromBuilding(b)
		if doc.UID == "" {
			doc.UID = uuid.NewString()
		}
		if b.Lat != 0 || b.Lng != 0 {
			doc.Geohash = geohash.Encode(b.Lat, b.Lng)
			doc.Geo = &mongodoc.GeoPointDocument{
				Type:        "Point",
				Coordinates: []float64{b.Lng, b.Lat},
			}
		}

		opts := options.Replace().SetUpsert(true)
		if _, err := buildings.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
			logger.Fatalf("建築物の投入に失敗しました: id=%d err=%v", doc.ID, err)
		}
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	// 管理コンテキストの採番カウンタを投入済み ID の最大値へ合わせる。
	counterOpts := options.Update().SetUpsert(true)
	if _, err := counters.UpdateOne(ctx,
		bson.M{"_id": "buildings"},
		bson.M{"$max": bson.M{"seq": maxID}},
		counterOpts,
	); err != nil {
		logger.Fatalf("採番カウンタの更新に失敗しました: %v", err)
	}

	logger.Printf("シード完了: buildings=%d counterSeq=%d", len(items), maxID)
}
