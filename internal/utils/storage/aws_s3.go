package storage

import (
	"FoodHub/domain"
	"FoodHub/internal/utils"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofiber/fiber/v2/log"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowType ...string) (string, error)
		DeleteFile(objectKey string) error
		GetObjectKeyFromLink(link string) string
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("failed to load AWS config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

// ObjectKey builds "<folder>/<name><ext>" keeping the uploaded file's extension.
func ObjectKey(folder, name, originalName string) string {
	return fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), name, strings.ToLower(filepath.Ext(originalName)))
}

// DetectContentType sniffs the first 512 bytes of the upload and checks it
// against allowType when that list is not empty.
func DetectContentType(file *multipart.FileHeader, allowType ...string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", domain.ErrInvalidImage
	}
	contentType := http.DetectContentType(head[:n])
	if len(allowType) == 0 {
		return contentType, nil
	}
	for _, t := range allowType {
		if t == contentType {
			return contentType, nil
		}
	}
	return "", domain.ErrInvalidImage
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowType ...string) (string, error) {
	objectKey := ObjectKey(folder, fileName, file.Filename)
	if err := a.put(objectKey, file, allowType...); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) put(objectKey string, file *multipart.FileHeader, allowType ...string) error {
	contentType, err := DetectContentType(file, allowType...)
	if err != nil {
		return err
	}

	body, err := file.Open()
	if err != nil {
		return err
	}
	defer body.Close()

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}
	return nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
