package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func compressWith(t *testing.T, enc string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	switch enc {
	case "gzip":
		w := gzip.NewWriter(&buf)
		_, _ = w.Write(data)
		require.NoError(t, w.Close())
	case "br":
		w := brotli.NewWriter(&buf)
		_, _ = w.Write(data)
		require.NoError(t, w.Close())
	case "zstd":
		w, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, _ = w.Write(data)
		require.NoError(t, w.Close())
	case "zlib":
		w := zlib.NewWriter(&buf)
		_, _ = w.Write(data)
		require.NoError(t, w.Close())
	case "flate":
		w, err := flate.NewWriter(&buf, flate.DefaultCompression)
		require.NoError(t, err)
		_, _ = w.Write(data)
		require.NoError(t, w.Close())
	default:
		t.Fatalf("unknown encoding %s", enc)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	plain := []byte(`{"results":[{"flagged":false}]}`)

	tests := []struct {
		name   string
		header string
		body   []byte
	}{
		{"gzip", "gzip", compressWith(t, "gzip", plain)},
		{"brotli", "br", compressWith(t, "br", plain)},
		{"zstd", "zstd", compressWith(t, "zstd", plain)},
		{"deflate zlib", "deflate", compressWith(t, "zlib", plain)},
		{"deflate raw", "deflate", compressWith(t, "flate", plain)},
		{"chained", "gzip, br", compressWith(t, "br", compressWith(t, "gzip", plain))},
		{"case and spaces", "  GZip  ", compressWith(t, "gzip", plain)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed, err := Decode(tt.header, tt.body)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, plain, out)
		})
	}
}

func TestDecode_Passthrough(t *testing.T) {
	plain := []byte("plain")
	for _, header := range []string{"", "identity"} {
		out, changed, err := Decode(header, plain)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, plain, out)
	}
}

func TestDecode_Unsupported(t *testing.T) {
	_, _, err := Decode("compress", []byte("abc"))
	assert.Error(t, err)
}

func TestDecodeChain_ReadsHeader(t *testing.T) {
	plain := []byte("tavily")
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)
	resp.Header.Set("Content-Encoding", "gzip")

	out, changed, err := DecodeChain(resp, compressWith(t, "gzip", plain))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, plain, out)
}

func TestDecode_TooLarge(t *testing.T) {
	big := bytes.Repeat([]byte{'a'}, DefaultMaxResponseBodySize+10)
	_, _, err := Decode("gzip", compressWith(t, "gzip", big))
	assert.ErrorIs(t, err, ErrDecodedTooLarge)
}
