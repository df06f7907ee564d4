package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const s3Scheme = "s3://"

// ErrNoPresigner is returned when an s3:// URI is resolved without a way to sign it.
var ErrNoPresigner = errors.New("s3 source requested but no presigner is configured")

// ParseS3 splits an s3://bucket/key URI. ok is false for any other input or when
// either part is empty.
func ParseS3(uri string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(uri, s3Scheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// Presigner signs GET requests for S3 objects so that ffplay and libavformat can
// stream them over plain HTTPS.
type Presigner struct {
	client *s3.S3
	expiry time.Duration
}

// NewPresigner builds a presigner from an existing AWS session.
func NewPresigner(sess *session.Session, expiry time.Duration) *Presigner {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &Presigner{client: s3.New(sess), expiry: expiry}
}

// NewPresignerFromEnv reads region and static credentials from the standard AWS
// environment variables.
func NewPresignerFromEnv(expiry time.Duration) (*Presigner, error) {
	region := os.Getenv("AWS_DEFAULT_REGION")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if region == "" || accessKey == "" || secretKey == "" {
		return nil, errors.New("missing one or more required environment variables: AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	return NewPresigner(sess, expiry), nil
}

// Presign returns a time-limited HTTPS URL for an s3://bucket/key URI.
func (p *Presigner) Presign(uri string) (string, error) {
	bucket, key, ok := ParseS3(uri)
	if !ok {
		return "", fmt.Errorf("not an s3 uri: %q", uri)
	}

	req, _ := p.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	signed, err := req.Presign(p.expiry)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", uri, err)
	}
	return signed, nil
}
