package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/config"
	"github.com/kenchikumap/kenchiku-map-services/api/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// リモートデータ接続が無効・失敗の場合でもプロセスは起動し、
	// 埋め込みデータセットで公開 API を提供する。
	var client *mongo.Client
	if cfg.RemoteDataEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
		connected, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			cfg.ServerLog.Printf("MongoDB 接続に失敗したためローカルデータで起動します: %v", err)
		} else {
			client = connected
		}
	} else {
		cfg.ServerLog.Printf("REMOTE_DATA_ENABLED=false のためローカルデータで起動します")
	}

	app := server.New(cfg, client)
	if err := app.Run(); err != nil {
		log.Fatalf("サーバー起動に失敗: %v", err)
	}
}
