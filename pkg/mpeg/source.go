package mpeg

import (
	"errors"
	"fmt"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

// DefaultFrameRate is used when neither the stream nor the caller knows better.
const DefaultFrameRate = 60

// ErrSourceUnavailable is returned by Open when the URI cannot be decoded.
var ErrSourceUnavailable = errors.New("video source unavailable")

// frameDecoder is the cgo decoder as seen by Source.
type frameDecoder interface {
	// nextFrame returns RGBA pixels and the timestamp-derived frame index,
	// -1 when the frame carries no timestamp.
	nextFrame(fps float64) ([]byte, int64, error)
	seek(frame int64, fps float64) error
	frameCount(fps float64) int
	close()
}

// Source decodes a URL-addressable video into RGBA frames and supports
// absolute, frame-accurate seeking.
type Source struct {
	dec           frameDecoder
	uri           string
	width, height int
	fps           float64
	frameCount    int

	position int
	// untimed is the index given to the next frame without a timestamp.
	untimed   int
	exhausted bool
	// skipUntil is the first frame index a pending seek will deliver, -1 when idle.
	skipUntil int

	closeOnce sync.Once
}

// Open connects to uri (file path, http(s), or anything libavformat accepts).
// fallbackFPS replaces a missing or zero stream frame rate.
func Open(uri string, fallbackFPS float64) (*Source, error) {
	dec, err := newVideoDecoder(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, uri, err)
	}
	if err := validateFrameSize(dec.width, dec.height); err != nil {
		dec.close()
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, uri, err)
	}

	if fallbackFPS <= 0 {
		fallbackFPS = DefaultFrameRate
	}
	fps := dec.fps
	if fps <= 0 {
		log.Warnf("Open: stream reports no frame rate, using %.0ffps", fallbackFPS)
		fps = fallbackFPS
	}

	s := newSource(dec, uri, dec.width, dec.height, fps)
	log.Printf("Open: %dx%d @ %.2ffps, %d frame(s)", s.Width(), s.Height(), s.fps, s.frameCount)
	return s, nil
}

// validateFrameSize rejects streams whose codec does not report dimensions;
// nothing could be drawn from them.
func validateFrameSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("stream reports no frame size (%dx%d)", width, height)
	}
	return nil
}

func newSource(dec frameDecoder, uri string, width, height int, fps float64) *Source {
	return &Source{
		dec:        dec,
		uri:        uri,
		width:      width,
		height:     height,
		fps:        fps,
		frameCount: dec.frameCount(fps),
		skipUntil:  -1,
	}
}

// Width is the frame width in pixels.
func (s *Source) Width() int { return s.width }

// Height is the frame height in pixels.
func (s *Source) Height() int { return s.height }

// FrameRate returns the stream frame rate, or the fallback given to Open.
func (s *Source) FrameRate() float64 { return s.fps }

// FrameCount returns the total number of frames, 0 when unknown.
func (s *Source) FrameCount() int { return s.frameCount }

// Position returns the index of the most recently delivered frame.
func (s *Source) Position() int { return s.position }

// Next decodes the next frame as packed RGBA rows, top row first. It returns
// io.EOF at the end of the stream; a network failure mid-stream ends the
// stream the same way once buffered frames are drained.
func (s *Source) Next() ([]byte, error) {
	if s.exhausted {
		return nil, io.EOF
	}
	for {
		data, idx, err := s.dec.nextFrame(s.fps)
		if err != nil {
			return nil, err
		}

		pos := int(idx)
		if idx < 0 {
			// Without a timestamp there is nothing to skip against: count on
			// from the last delivered frame or the seek target.
			pos = s.untimed
			s.skipUntil = -1
		}

		if s.skipUntil >= 0 {
			if pos < s.skipUntil {
				continue
			}
			s.skipUntil = -1
		}

		s.position = pos
		s.untimed = pos + 1
		return data, nil
	}
}

// Seek moves the decode cursor so that the next frame returned by Next is the
// one at frame (or the first frame after it). The index is not clamped: a
// target at or past FrameCount makes the next Next return io.EOF, and a
// negative target restarts from the beginning.
func (s *Source) Seek(frame int) error {
	target := frame
	if target < 0 {
		target = 0
	}
	if s.frameCount > 0 && target >= s.frameCount {
		log.Printf("Seek: frame %d is past the last frame (%d), stream ends", frame, s.frameCount-1)
		s.exhausted = true
		return nil
	}
	if err := s.dec.seek(int64(target), s.fps); err != nil {
		return err
	}
	s.exhausted = false
	s.skipUntil = target
	s.untimed = target
	return nil
}

// Close releases the decoder. Safe to call more than once.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		log.Printf("Close: releasing decoder for %s", s.uri)
		s.dec.close()
	})
	return nil
}

var _ io.Closer = (*Source)(nil)
