package main

import (
	"context"
	"flag"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kindmap/kindmap-api/share/landmarks"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("kindmap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var landmarkFile string
	flag.StringVar(&landmarkFile, "f", "landmarks.json", "path of the landmark catalogue file")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	dbName := viper.GetString("mongo.database")

	if err := landmarks.ImportLandmarks(client, dbName, landmarkFile); err != nil {
		panic(err)
	}
}
