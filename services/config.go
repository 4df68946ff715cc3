package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/udistrital/gestion_proyectos/internal/storage"

	beego "github.com/beego/beego/v2/server/web"
)

// Config centraliza la configuración del servicio.
type Config struct {
	AppName      string
	HTTPPort     int
	RunMode      string
	StoreDriver  string
	DataFile     string
	SQLitePath   string
	PostgresDSN  string
	S3Bucket     string
	S3Region     string
	S3Endpoint   string
	S3Key        string
	S3PathStyle  bool
	MongoURI     string
	MongoDB      string
	MongoColl    string
	NATSURL      string
	LogFile      string
	CORSOrigins  []string
	StoreTimeout time.Duration
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() Config {
	return Config{
		AppName:      getString("APP_NAME", "appname", "gestion_proyectos"),
		HTTPPort:     getInt("HTTP_PORT", "httpport", 3000),
		RunMode:      getString("RUN_MODE", "runmode", "dev"),
		StoreDriver:  strings.ToLower(getString("STORE_DRIVER", "store_driver", string(storage.DriverArchivo))),
		DataFile:     getString("DATA_FILE", "data_file", "./datos.json"),
		SQLitePath:   getString("SQLITE_PATH", "sqlite_path", "./datos.db"),
		PostgresDSN:  getString("POSTGRES_DSN", "postgres_dsn", ""),
		S3Bucket:     getString("S3_BUCKET", "s3_bucket", ""),
		S3Region:     getString("S3_REGION", "s3_region", "us-east-1"),
		S3Endpoint:   getString("S3_ENDPOINT", "s3_endpoint", ""),
		S3Key:        getString("S3_KEY", "s3_key", "datos.json"),
		S3PathStyle:  strings.EqualFold(getString("S3_PATH_STYLE", "s3_path_style", "false"), "true"),
		MongoURI:     getString("MONGO_URI", "mongo_uri", ""),
		MongoDB:      getString("MONGO_DATABASE", "mongo_database", "gestion_proyectos"),
		MongoColl:    getString("MONGO_COLLECTION", "mongo_collection", "datos"),
		NATSURL:      getString("NATS_URL", "nats_url", ""),
		LogFile:      getString("LOG_FILE", "log_file", ""),
		CORSOrigins:  splitList(getString("CORS_ORIGINS", "cors_origins", "*")),
		StoreTimeout: time.Duration(getInt("STORE_TIMEOUT_MS", "store_timeout_ms", 5000)) * time.Millisecond,
	}
}

// StorageConfig traduce la configuración a los parámetros del almacenamiento.
func (c Config) StorageConfig() storage.Config {
	return storage.Config{
		Driver:      storage.Driver(c.StoreDriver),
		Archivo:     c.DataFile,
		SQLitePath:  c.SQLitePath,
		PostgresDSN: c.PostgresDSN,
		S3: storage.S3Config{
			Bucket:          c.S3Bucket,
			Key:             c.S3Key,
			Region:          c.S3Region,
			Endpoint:        c.S3Endpoint,
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			PathStyle:       c.S3PathStyle,
		},
		Mongo: storage.MongoConfig{
			URI:        c.MongoURI,
			Database:   c.MongoDB,
			Collection: c.MongoColl,
		},
	}
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
