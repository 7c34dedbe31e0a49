package main

import (
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/bitpack/bitmap"
)

// codec is one compression algorithm under comparison. compress runs once
// and reports the duration and output size; callers are responsible for
// iterating it numIterations times.
type codec struct {
	name     string
	compress func(data []byte) (outputSize int, elapsed time.Duration, err error)
}

func snappyCodec() codec {
	return codec{
		name: "snappy",
		compress: func(data []byte) (int, time.Duration, error) {
			dst := make([]byte, snappy.MaxEncodedLen(len(data)))
			start := time.Now()
			out := snappy.Encode(dst, data)
			return len(out), time.Since(start), nil
		},
	}
}

func zstdCodec() (codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return codec{}, err
	}
	return codec{
		name: "zstd",
		compress: func(data []byte) (int, time.Duration, error) {
			start := time.Now()
			out := enc.EncodeAll(data, nil)
			return len(out), time.Since(start), nil
		},
	}, nil
}

func bitpackCodec() codec {
	return codec{
		name: "bitpack",
		compress: func(data []byte) (int, time.Duration, error) {
			ctx, err := bitmap.NewContext(len(data))
			if err != nil {
				return 0, 0, err
			}
			defer ctx.Close()

			copy(ctx.Input(), data)

			start := time.Now()
			n, err := ctx.Compress(len(data))
			elapsed := time.Since(start)
			if err != nil {
				return 0, 0, err
			}
			return n, elapsed, nil
		},
	}
}
