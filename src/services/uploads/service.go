package uploads

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore อัปโหลดรูปดิบแล้วคืน public URL
type ObjectStore interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

// MinioStore implements ObjectStore บน MinIO/S3-compatible storage
type MinioStore struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinioStoreFromEnv เชื่อมต่อ MinIO และสร้าง bucket ถ้ายังไม่มี
func NewMinioStoreFromEnv() (*MinioStore, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	bucket := os.Getenv("MINIO_BUCKET")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, fmt.Errorf("missing MinIO env: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_BUCKET")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	publicBase := os.Getenv("MINIO_PUBLIC_URL")
	if publicBase == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicBase = scheme + "://" + endpoint
	}
	publicBase = strings.TrimRight(publicBase, "/")

	return &MinioStore{client: client, bucket: bucket, publicBase: publicBase}, nil
}

// Upload เก็บรูปใต้ key แบบ date-partitioned คืน URL สาธารณะของ object
func (m *MinioStore) Upload(ctx context.Context, data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	ext := ".bin"
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	}

	key := fmt.Sprintf("submissions/%s/%s%s",
		time.Now().UTC().Format("2006/01/02"), uuid.NewString(), ext)

	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return m.publicBase + "/" + m.bucket + "/" + key, nil
}
