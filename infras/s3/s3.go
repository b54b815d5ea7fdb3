package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"salesdesk/config"
	"salesdesk/infras/otel"
	"salesdesk/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName    = "s3"
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
)

// S3 archives ledger export snapshots as flat objects.
type S3 interface {
	UploadObject(ctx context.Context, bucketName, directory, objectName, contentType string, data []byte) (key string, err error)
	DeleteObject(ctx context.Context, bucketName, directory, objectName string) error
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) UploadObject(ctx context.Context, bucketName, directory, objectName, contentType string, data []byte) (key string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, otelScopeName, otelScopeName+".UploadObject")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bucketName == constant.Empty {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, objectName)
	reader := bytes.NewReader(data)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return objectKey, nil
}

func (svc *s3Impl) DeleteObject(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, otelScopeName, otelScopeName+".DeleteObject")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bucketName == constant.Empty {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, objectName)

	_, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete object from S3")

		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	return nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.Endpoint
	accessKeyID := config.External.S3.AccessKey
	secretAccessKey := config.External.S3.SecretKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	region := config.External.S3.Region
	if region == constant.Empty {
		region = "auto"
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != constant.Empty {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
		o.Region = region
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
