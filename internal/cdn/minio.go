package cdn

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Minio struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

var _ ObjectStore = (*Minio)(nil)

// NewMinio creates a MinIO-backed object store and ensures the bucket exists.
func NewMinio(endpoint, accessKey, secretKey string, useSSL bool, bucket, baseURL string) (*Minio, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	store := &Minio{
		client:  minioClient,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	if err := store.ensureBucketExists(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket %s exists: %w", bucket, err)
	}

	log.Printf("Minio client initialized successfully with bucket: %s", bucket)
	return store, nil
}

func (m *Minio) ensureBucketExists(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Printf("Created bucket: %s", m.bucket)
	}
	return nil
}

func (m *Minio) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	log.Printf("Successfully uploaded %s to bucket %s", objectName, m.bucket)
	return m.deliveryURL(objectName), nil
}

func (m *Minio) Overwrite(ctx context.Context, deliveryURL string, data []byte, contentType string) error {
	objectName, err := m.objectName(deliveryURL)
	if err != nil {
		return err
	}
	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to overwrite object %s: %w", objectName, err)
	}
	log.Printf("Overwrote %s in bucket %s", objectName, m.bucket)
	return nil
}

func (m *Minio) Fetch(ctx context.Context, deliveryURL string) ([]byte, error) {
	objectName, err := m.objectName(deliveryURL)
	if err != nil {
		return nil, err
	}
	obj, err := m.client.GetObject(ctx, m.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch object %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}
	return data, nil
}

func (m *Minio) Delete(ctx context.Context, deliveryURL string) error {
	objectName, err := m.objectName(deliveryURL)
	if err != nil {
		return err
	}
	if err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectName, err)
	}
	return nil
}

func (m *Minio) deliveryURL(objectName string) string {
	escaped := url.PathEscape(objectName)
	// PathEscape encodes "/" too; object names may contain folders.
	escaped = strings.ReplaceAll(escaped, "%2F", "/")
	return fmt.Sprintf("%s/%s/%s", m.baseURL, m.bucket, escaped)
}

// objectName extracts the object name from a delivery URL. The path is
// expected to be /<bucket>/<object>, percent-encoded or not.
func (m *Minio) objectName(deliveryURL string) (string, error) {
	u, err := url.Parse(deliveryURL)
	if err != nil {
		return "", fmt.Errorf("invalid delivery URL %q: %w", deliveryURL, err)
	}
	path := strings.TrimPrefix(u.Path, "/")
	prefix := m.bucket + "/"
	if !strings.HasPrefix(path, prefix) {
		return "", fmt.Errorf("delivery URL %q does not reference bucket %s", deliveryURL, m.bucket)
	}
	name := strings.TrimPrefix(path, prefix)
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		return "", fmt.Errorf("delivery URL %q has no object name", deliveryURL)
	}
	return name, nil
}
