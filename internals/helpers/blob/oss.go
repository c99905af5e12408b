package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStore: adapter Aliyun OSS.
type OSSStore struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "uploads/"
}

func getenv(m map[string]string, k string) string { return strings.TrimSpace(m[k]) }

// NewOSSStoreFromEnv membuat store dari ENV:
// ALI_OSS_ENDPOINT / ALI_OSS_ACCESS_KEY / ALI_OSS_SECRET_KEY / ALI_OSS_BUCKET
// (+ ALI_OSS_SECURITY_TOKEN opsional). prefix opsional, mis. "uploads/".
func NewOSSStoreFromEnv(env map[string]string, prefix string) (*OSSStore, error) {
	endpoint := getenv(env, "ALI_OSS_ENDPOINT")
	ak := getenv(env, "ALI_OSS_ACCESS_KEY")
	sk := getenv(env, "ALI_OSS_SECRET_KEY")
	sts := getenv(env, "ALI_OSS_SECURITY_TOKEN")
	bucketName := getenv(env, "ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSStore{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSStore) withPrefix(key string) string {
	if s.Prefix == "" {
		return key
	}
	return s.Prefix + "/" + key
}

func (s *OSSStore) Exists(ctx context.Context, key string) (bool, error) {
	return s.Bucket.IsObjectExist(s.withPrefix(key), oss.WithContext(ctx))
}

func (s *OSSStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	return s.Bucket.PutObject(s.withPrefix(key), r, opts...)
}

func (s *OSSStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.Bucket.GetObject(s.withPrefix(key), oss.WithContext(ctx))
}

func (s *OSSStore) Delete(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(s.withPrefix(key), oss.WithContext(ctx))
}

// PublicURL: https://<bucket>.<endpoint>/<prefix>/<key>
func (s *OSSStore) PublicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, s.withPrefix(key))
}

func (s *OSSStore) KeyFromPublicURL(publicURL string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	prefix := fmt.Sprintf("https://%s.%s/", s.BucketName, host)
	if !strings.HasPrefix(publicURL, prefix) {
		return ""
	}
	key := strings.TrimPrefix(publicURL, prefix)
	if s.Prefix != "" {
		key = strings.TrimPrefix(key, s.Prefix+"/")
	}
	return key
}
