package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/udistrital/gestion_proyectos/models"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config describe el bucket y el objeto donde vive el conjunto de datos.
type S3Config struct {
	Bucket          string
	Key             string
	Region          string
	Endpoint        string // opcional, p. ej. MinIO
	AccessKeyID     string // opcional, si no se usa la cadena por defecto
	SecretAccessKey string
	PathStyle       bool
}

// S3Store guarda el conjunto de datos como un único objeto JSON.
type S3Store struct {
	client *s3.Client
	bucket string
	key    string
}

// NuevoS3 construye el cliente a partir de cfg y la configuración por
// defecto de AWS.
func NuevoS3(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket requerido")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})
	return NuevoS3ConCliente(client, cfg.Bucket, cfg.Key), nil
}

// NuevoS3ConCliente usa un cliente ya construido.
func NuevoS3ConCliente(client *s3.Client, bucket, key string) *S3Store {
	if key == "" {
		key = "datos.json"
	}
	return &S3Store{client: client, bucket: bucket, key: key}
}

func (s *S3Store) Driver() Driver { return DriverS3 }

func (s *S3Store) Load(ctx context.Context) (*models.Datos, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return models.NuevosDatos(), nil
		}
		return nil, fallo(DriverS3, "get", err)
	}
	defer func() { _ = out.Body.Close() }()
	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fallo(DriverS3, "read", err)
	}
	datos := models.NuevosDatos()
	if err := json.Unmarshal(raw, datos); err != nil {
		return nil, fallo(DriverS3, "decode", err)
	}
	return datos, nil
}

func (s *S3Store) Save(ctx context.Context, datos *models.Datos) error {
	raw, err := json.MarshalIndent(datos, "", "  ")
	if err != nil {
		return fallo(DriverS3, "encode", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &s.key,
		Body:        bytes.NewReader(raw),
		ContentType: aws.String("application/json"),
	})
	return fallo(DriverS3, "put", err)
}

func (s *S3Store) Close() error { return nil }
