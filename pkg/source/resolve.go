package source

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	detailsSegment  = "archive.org/details/"
	downloadSegment = "archive.org/download/"
)

// Rewrite turns an archive.org viewer page URL into the matching direct
// download URL. Anything that does not contain the viewer segment is returned
// unchanged. No validation is performed.
func Rewrite(input string) string {
	if !strings.Contains(input, detailsSegment) {
		return input
	}
	return strings.ReplaceAll(input, detailsSegment, downloadSegment)
}

// Resolver produces the URI that both the audio player and the decoder open.
type Resolver struct {
	presignerFactory func() (*Presigner, error)
	presigner        *Presigner
}

// NewResolver creates a resolver. The factory is only invoked the first time an
// s3:// URI has to be presigned, so plain HTTP sources never need credentials.
func NewResolver(factory func() (*Presigner, error)) *Resolver {
	return &Resolver{presignerFactory: factory}
}

// Resolve trims the user input, applies Rewrite and presigns s3:// URIs.
func (r *Resolver) Resolve(input string) (string, error) {
	uri := Rewrite(strings.TrimSpace(input))

	if _, _, ok := ParseS3(uri); !ok {
		log.Printf("Resolve: using %s", uri)
		return uri, nil
	}

	if r.presigner == nil {
		if r.presignerFactory == nil {
			return "", ErrNoPresigner
		}
		p, err := r.presignerFactory()
		if err != nil {
			return "", err
		}
		r.presigner = p
	}

	signed, err := r.presigner.Presign(uri)
	if err != nil {
		return "", err
	}
	log.Printf("Resolve: presigned %s", uri)
	return signed, nil
}
