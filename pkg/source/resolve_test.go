package source

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "details page",
			input: "https://archive.org/details/night_of_the_living_dead/movie.mp4",
			want:  "https://archive.org/download/night_of_the_living_dead/movie.mp4",
		},
		{
			name:  "keeps query string",
			input: "http://archive.org/details/item/file.ogv?start=10",
			want:  "http://archive.org/download/item/file.ogv?start=10",
		},
		{
			name:  "already a download url",
			input: "https://archive.org/download/item/file.mp4",
			want:  "https://archive.org/download/item/file.mp4",
		},
		{
			name:  "other host",
			input: "https://example.com/details/item.mp4",
			want:  "https://example.com/details/item.mp4",
		},
		{
			name:  "not a url",
			input: "not a url at all",
			want:  "not a url at all",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rewrite(tt.input); got != tt.want {
				t.Fatalf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewrite_OnlyTouchesMatchedSegment(t *testing.T) {
	prefix := "https://www."
	suffix := "some-item/some file.mp4#t=5"
	got := Rewrite(prefix + detailsSegment + suffix)

	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("prefix changed: %q", got)
	}
	if !strings.HasSuffix(got, suffix) {
		t.Fatalf("suffix changed: %q", got)
	}
	if got != prefix+downloadSegment+suffix {
		t.Fatalf("unexpected rewrite: %q", got)
	}
}

func TestParseS3(t *testing.T) {
	bucket, key, ok := ParseS3("s3://films/classics/metropolis.mp4")
	if !ok || bucket != "films" || key != "classics/metropolis.mp4" {
		t.Fatalf("got bucket=%q key=%q ok=%v", bucket, key, ok)
	}

	for _, in := range []string{"s3://films", "s3:///key", "s3://films/", "https://films/key"} {
		if _, _, ok := ParseS3(in); ok {
			t.Fatalf("ParseS3(%q) should fail", in)
		}
	}
}

func testPresigner(t *testing.T) *Presigner {
	t.Helper()
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String("us-east-1"),
		Credentials: credentials.NewStaticCredentials("AKIDEXAMPLE", "secret", ""),
	})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return NewPresigner(sess, 15*time.Minute)
}

func TestPresigner_Presign(t *testing.T) {
	p := testPresigner(t)

	signed, err := p.Presign("s3://films/classics/metropolis.mp4")
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if !strings.HasPrefix(signed, "https://") {
		t.Fatalf("expected https url, got %q", signed)
	}
	if !strings.Contains(signed, "films") || !strings.Contains(signed, "classics/metropolis.mp4") {
		t.Fatalf("bucket/key missing from %q", signed)
	}
	if !strings.Contains(signed, "X-Amz-Signature=") {
		t.Fatalf("signature missing from %q", signed)
	}

	if _, err := p.Presign("https://archive.org/download/x"); err == nil {
		t.Fatal("expected error for non-s3 uri")
	}
}

func TestResolver_Resolve(t *testing.T) {
	calls := 0
	r := NewResolver(func() (*Presigner, error) {
		calls++
		return testPresigner(t), nil
	})

	got, err := r.Resolve("  https://archive.org/details/item/a.mp4\n")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "https://archive.org/download/item/a.mp4" {
		t.Fatalf("got %q", got)
	}
	if calls != 0 {
		t.Fatalf("presigner created for http source")
	}

	for i := 0; i < 2; i++ {
		signed, err := r.Resolve("s3://films/a.mp4")
		if err != nil {
			t.Fatalf("resolve s3: %v", err)
		}
		if !strings.Contains(signed, "X-Amz-Signature=") {
			t.Fatalf("not presigned: %q", signed)
		}
	}
	if calls != 1 {
		t.Fatalf("presigner factory called %d times, want 1", calls)
	}
}

func TestResolver_S3WithoutPresigner(t *testing.T) {
	r := NewResolver(nil)
	if _, err := r.Resolve("s3://films/a.mp4"); !errors.Is(err, ErrNoPresigner) {
		t.Fatalf("want ErrNoPresigner, got %v", err)
	}

	failing := NewResolver(func() (*Presigner, error) { return nil, errors.New("no creds") })
	if _, err := failing.Resolve("s3://films/a.mp4"); err == nil {
		t.Fatal("expected factory error")
	}
}
