package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/udistrital/gestion_proyectos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const documentoDatos = "datos"

// MongoConfig ubica el documento del conjunto de datos.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore guarda el conjunto de datos como el payload JSON de un único
// documento.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

type documento struct {
	ID      string `bson:"_id"`
	Payload string `bson:"payload"`
}

// NuevoMongo conecta y verifica la conexión con un ping.
func NuevoMongo(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo uri requerida")
	}
	if cfg.Database == "" {
		cfg.Database = "gestion_proyectos"
	}
	if cfg.Collection == "" {
		cfg.Collection = "datos"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (s *MongoStore) Driver() Driver { return DriverMongo }

func (s *MongoStore) Load(ctx context.Context) (*models.Datos, error) {
	var doc documento
	err := s.collection.FindOne(ctx, bson.M{"_id": documentoDatos}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.NuevosDatos(), nil
		}
		return nil, fallo(DriverMongo, "find", err)
	}
	datos := models.NuevosDatos()
	if err := json.Unmarshal([]byte(doc.Payload), datos); err != nil {
		return nil, fallo(DriverMongo, "decode", err)
	}
	return datos, nil
}

func (s *MongoStore) Save(ctx context.Context, datos *models.Datos) error {
	raw, err := json.Marshal(datos)
	if err != nil {
		return fallo(DriverMongo, "encode", err)
	}
	_, err = s.collection.ReplaceOne(ctx,
		bson.M{"_id": documentoDatos},
		documento{ID: documentoDatos, Payload: string(raw)},
		options.Replace().SetUpsert(true))
	return fallo(DriverMongo, "replace", err)
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}
