package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fasthttp"
)

// ErrDecodedTooLarge is returned when a compressed body expands past
// DefaultMaxResponseBodySize.
var ErrDecodedTooLarge = errors.New("decoded body exceeds size limit")

type decoderFunc func(io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoderFunc{
	"br": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(r)), nil
	},
	"gzip": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	"zstd": func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	},
}

// DecodeChain decodes a response body according to its Content-Encoding header.
func DecodeChain(resp *fasthttp.Response, body []byte) ([]byte, bool, error) {
	return Decode(string(resp.Header.Peek(fasthttp.HeaderContentEncoding)), body)
}

// Decode unwraps chained encodings ("gzip, br") right to left. Deflate bodies
// may be zlib-wrapped or raw. The bool reports whether the body changed.
func Decode(contentEncoding string, body []byte) ([]byte, bool, error) {
	codings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(codings) - 1; i >= 0; i-- {
		coding := strings.ToLower(strings.TrimSpace(codings[i]))
		var (
			out []byte
			err error
		)
		switch coding {
		case "", "identity":
			continue
		case "deflate":
			out, err = inflate(body)
		default:
			dec, ok := decoders[coding]
			if !ok {
				return nil, false, fmt.Errorf("unsupported content-encoding %q", coding)
			}
			out, err = readAllWith(dec, body)
		}
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", coding, err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

func inflate(body []byte) ([]byte, error) {
	out, err := readAllWith(func(r io.Reader) (io.ReadCloser, error) { return zlib.NewReader(r) }, body)
	if err == nil || errors.Is(err, ErrDecodedTooLarge) {
		return out, err
	}
	return readAllWith(func(r io.Reader) (io.ReadCloser, error) { return flate.NewReader(r), nil }, body)
}

func readAllWith(dec decoderFunc, body []byte) ([]byte, error) {
	rc, err := dec(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err := io.ReadAll(io.LimitReader(rc, DefaultMaxResponseBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > DefaultMaxResponseBodySize {
		return nil, ErrDecodedTooLarge
	}
	return out, nil
}
