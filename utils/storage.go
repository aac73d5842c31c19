package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	appcfg "github.com/Surya-k-bot/food-management-system/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const foodImageDir = "food_images"

// SaveFoodImage stores an uploaded menu image and returns the path recorded
// on the item: an object URL when S3 is configured, otherwise a path
// relative to MEDIA_ROOT (served under /media/).
func SaveFoodImage(cfg *appcfg.App, fh *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.New().String() + ext

	if cfg.S3Bucket != "" {
		return uploadToS3(cfg, fh, name)
	}

	dir := filepath.Join(cfg.MediaRoot, foodImageDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return foodImageDir + "/" + name, nil
}

func uploadToS3(cfg *appcfg.App, fh *multipart.FileHeader, name string) (string, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return "", fmt.Errorf("load AWS config for S3: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := foodImageDir + "/" + name
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	client := s3.NewFromConfig(awsCfg)
	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(cfg.S3Bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("S3 upload failed: %w", err)
	}

	return s3ObjectURL(cfg.S3Bucket, cfg.S3Region, key), nil
}

// s3ObjectURL builds the virtual-hosted object URL. An unset region falls
// back to us-east-1 so the host never contains an empty segment.
func s3ObjectURL(bucket, region, key string) string {
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
