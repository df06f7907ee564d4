package mpeg

/*
#cgo pkg-config: libavformat libavcodec libavutil libswscale

#include <stdlib.h>
#include <stdio.h>
#include <string.h>
#include <libavformat/avformat.h>
#include <libavcodec/avcodec.h>
#include <libavutil/imgutils.h>
#include <libswscale/swscale.h>
#include <libavutil/log.h>

// ---------------------- C structures ----------------------------

typedef struct {
    AVFormatContext *formatCtx;
    AVCodecContext  *codecCtx;
    AVFrame         *frame;
    AVFrame         *frameRGBA;
    AVPacket        *packet;
    struct SwsContext *swsCtx;
    int             videoStream;
    int             draining;
    uint8_t         *bufferRGBA;
} Decoder;

// ----------------------------------------------------------------
// Open a (possibly remote) source and prepare an RGBA converter.
// ----------------------------------------------------------------
int init_decoder(const char *url, Decoder *d) {
    av_log_set_level(AV_LOG_ERROR);
    avformat_network_init();
    d->videoStream = -1;
    d->draining = 0;

    if (avformat_open_input(&d->formatCtx, url, NULL, NULL) != 0) {
        fprintf(stderr, "Could not open input '%s'\n", url);
        return -1;
    }

    if (avformat_find_stream_info(d->formatCtx, NULL) < 0) {
        fprintf(stderr, "Could not find stream information\n");
        return -2;
    }

    int idx = av_find_best_stream(d->formatCtx, AVMEDIA_TYPE_VIDEO, -1, -1, NULL, 0);
    if (idx < 0) {
        fprintf(stderr, "No video stream found\n");
        return -3;
    }
    d->videoStream = idx;
    AVCodecParameters *par = d->formatCtx->streams[idx]->codecpar;

    // VIDEO_DECODER may force a specific decoder; it must match the stream codec.
    const AVCodec *codec = NULL;
    const char *envDecoder = getenv("VIDEO_DECODER");
    if (envDecoder && envDecoder[0] != '\0') {
        codec = avcodec_find_decoder_by_name(envDecoder);
        if (!codec || codec->id != par->codec_id) {
            fprintf(stderr, "Decoder specified by VIDEO_DECODER ('%s') not usable. Falling back to default.\n", envDecoder);
            codec = NULL;
        }
    }
    if (!codec) {
        codec = avcodec_find_decoder(par->codec_id);
    }
    if (!codec) {
        fprintf(stderr, "No decoder for codec id %d\n", par->codec_id);
        return -4;
    }

    d->codecCtx = avcodec_alloc_context3(codec);
    if (!d->codecCtx) {
        return -4;
    }
    avcodec_parameters_to_context(d->codecCtx, par);
    d->codecCtx->thread_type = FF_THREAD_FRAME;
    d->codecCtx->thread_count = 0;

    if (avcodec_open2(d->codecCtx, codec, NULL) < 0) {
        fprintf(stderr, "Failed to open decoder: %s\n", codec->name);
        return -4;
    }

    d->frame = av_frame_alloc();
    d->frameRGBA = av_frame_alloc();
    d->packet = av_packet_alloc();
    if (!d->frame || !d->frameRGBA || !d->packet) {
        return -5;
    }

    int width  = d->codecCtx->width;
    int height = d->codecCtx->height;
    int numBytes = av_image_get_buffer_size(AV_PIX_FMT_RGBA, width, height, 1);
    d->bufferRGBA = (uint8_t *)av_malloc(numBytes * sizeof(uint8_t));
    av_image_fill_arrays(d->frameRGBA->data, d->frameRGBA->linesize, d->bufferRGBA, AV_PIX_FMT_RGBA, width, height, 1);

    d->swsCtx = sws_getContext(width, height, d->codecCtx->pix_fmt,
                               width, height, AV_PIX_FMT_RGBA,
                               SWS_BILINEAR, NULL, NULL, NULL);
    if (!d->swsCtx) {
        return -5;
    }
    return 0;
}

// Decode the next video frame into RGBA. Returns 1 on success and 0 at end of
// stream. A read failure flushes the decoder and then reports end of stream.
// pts receives the frame's best-effort timestamp (AV_NOPTS_VALUE if unknown).
int decode_frame(Decoder *d, uint8_t **rgba_data, int64_t *pts) {
    int ret;

    for (;;) {
        ret = avcodec_receive_frame(d->codecCtx, d->frame);
        if (ret == 0) {
            sws_scale(d->swsCtx,
                      (const uint8_t * const*)d->frame->data,
                      d->frame->linesize,
                      0,
                      d->codecCtx->height,
                      d->frameRGBA->data,
                      d->frameRGBA->linesize);
            *rgba_data = d->frameRGBA->data[0];
            *pts = d->frame->best_effort_timestamp;
            av_frame_unref(d->frame);
            return 1;
        }
        if (ret == AVERROR_EOF) {
            return 0;
        }
        if (ret != AVERROR(EAGAIN)) {
            return -2;
        }
        if (d->draining) {
            return 0;
        }

        ret = av_read_frame(d->formatCtx, d->packet);
        if (ret < 0) {
            // End of file or network failure: flush what the codec still holds.
            d->draining = 1;
            avcodec_send_packet(d->codecCtx, NULL);
            continue;
        }
        if (d->packet->stream_index == d->videoStream) {
            ret = avcodec_send_packet(d->codecCtx, d->packet);
            if (ret < 0 && ret != AVERROR(EAGAIN)) {
                av_packet_unref(d->packet);
                return -1;
            }
        }
        av_packet_unref(d->packet);
    }
}

// Reposition the demuxer at or before the given frame index and drop any
// frames buffered inside the codec.
int seek_decoder(Decoder *d, int64_t frameIndex, double fps) {
    AVStream *st = d->formatCtx->streams[d->videoStream];
    double seconds = (double)frameIndex / fps;
    int64_t ts = (int64_t)(seconds / av_q2d(st->time_base));
    if (st->start_time != AV_NOPTS_VALUE) {
        ts += st->start_time;
    }

    int ret = av_seek_frame(d->formatCtx, d->videoStream, ts, AVSEEK_FLAG_BACKWARD);
    if (ret < 0) {
        return ret;
    }
    avcodec_flush_buffers(d->codecCtx);
    d->draining = 0;
    return 0;
}

// Convert a presentation timestamp to a frame index, -1 when unknown.
int64_t frame_index(Decoder *d, int64_t pts, double fps) {
    if (pts == AV_NOPTS_VALUE) {
        return -1;
    }
    AVStream *st = d->formatCtx->streams[d->videoStream];
    if (st->start_time != AV_NOPTS_VALUE) {
        pts -= st->start_time;
    }
    double seconds = (double)pts * av_q2d(st->time_base);
    double idx = seconds * fps;
    if (idx < 0) {
        return 0;
    }
    return (int64_t)(idx + 0.5);
}

void close_decoder(Decoder *d) {
    if (!d) return;
    if (d->swsCtx) {
        sws_freeContext(d->swsCtx);
        d->swsCtx = NULL;
    }
    av_free(d->bufferRGBA);
    d->bufferRGBA = NULL;
    av_packet_free(&d->packet);
    av_frame_free(&d->frameRGBA);
    av_frame_free(&d->frame);
    avcodec_free_context(&d->codecCtx);
    if (d->formatCtx) {
        avformat_close_input(&d->formatCtx);
    }
}

// ----------------------------------------------------------------
// Retrieve the stream's frame-rate (as float). Uses av_guess_frame_rate.
// ----------------------------------------------------------------
double getDecoderFPS(Decoder *d) {
    if (!d || d->videoStream < 0) {
        return 0;
    }
    AVStream *st = d->formatCtx->streams[d->videoStream];
    AVRational r = av_guess_frame_rate(d->formatCtx, st, NULL);
    if (r.den == 0) {
        return 0;
    }
    return av_q2d(r);
}

// Total frames: container count, else stream duration, else container
// duration. 0 when nothing is known (live or unbounded sources).
int64_t getFrameCount(Decoder *d, double fps) {
    AVStream *st = d->formatCtx->streams[d->videoStream];
    if (st->nb_frames > 0) {
        return st->nb_frames;
    }
    if (st->duration != AV_NOPTS_VALUE && st->duration > 0) {
        return (int64_t)(st->duration * av_q2d(st->time_base) * fps + 0.5);
    }
    if (d->formatCtx->duration != AV_NOPTS_VALUE && d->formatCtx->duration > 0) {
        return (int64_t)((double)d->formatCtx->duration / AV_TIME_BASE * fps + 0.5);
    }
    return 0;
}
*/
import "C"

import (
	"fmt"
	"io"
	"unsafe"
)

// ------------------- Go wrapper around the C decoder -------------------

type videoDecoder struct {
	cdec   C.Decoder
	width  int
	height int
	fps    float64 // 0 when the stream does not say
}

func newVideoDecoder(uri string) (*videoDecoder, error) {
	cURI := C.CString(uri)
	defer C.free(unsafe.Pointer(cURI))

	dec := &videoDecoder{}
	if ret := C.init_decoder(cURI, &dec.cdec); ret != 0 {
		C.close_decoder(&dec.cdec)
		return nil, fmt.Errorf("init_decoder failed (code=%d)", int(ret))
	}

	dec.width = int(dec.cdec.codecCtx.width)
	dec.height = int(dec.cdec.codecCtx.height)
	dec.fps = float64(C.getDecoderFPS(&dec.cdec))
	return dec, nil
}

// nextFrame returns a copy of the RGBA pixels and the frame's pts-derived
// index (-1 when the stream carries no timestamp).
func (d *videoDecoder) nextFrame(fps float64) ([]byte, int64, error) {
	var data *C.uint8_t
	var pts C.int64_t
	ret := C.decode_frame(&d.cdec, &data, &pts)
	switch {
	case ret == 0:
		return nil, 0, io.EOF
	case ret < 0:
		return nil, 0, fmt.Errorf("decode error (code=%d)", int(ret))
	}

	bufLen := d.width * d.height * 4 // RGBA
	idx := int64(C.frame_index(&d.cdec, pts, C.double(fps)))
	return C.GoBytes(unsafe.Pointer(data), C.int(bufLen)), idx, nil
}

func (d *videoDecoder) seek(frame int64, fps float64) error {
	if ret := C.seek_decoder(&d.cdec, C.int64_t(frame), C.double(fps)); ret < 0 {
		return fmt.Errorf("av_seek_frame failed (code=%d)", int(ret))
	}
	return nil
}

func (d *videoDecoder) frameCount(fps float64) int {
	return int(C.getFrameCount(&d.cdec, C.double(fps)))
}

func (d *videoDecoder) close() {
	C.close_decoder(&d.cdec)
}
