package httpx

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxConnsPerHost     = 128
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultMaxResponseBodySize = 20 * 1024 * 1024
	DefaultUserAgent           = "skyent/1.0"
)

type FastHTTPClientOptions struct {
	Timeout             time.Duration
	InsecureSkipVerify  bool
	MaxConnsPerHost     int
	MaxResponseBodySize int
	UserAgent           string
}

type FastHTTPClientOption func(*FastHTTPClientOptions)

func WithTimeout(timeout time.Duration) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.Timeout = timeout
	}
}

func WithInsecureSkipVerify(skip bool) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.InsecureSkipVerify = skip
	}
}

func WithMaxConnsPerHost(max int) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.MaxConnsPerHost = max
	}
}

func WithUserAgent(userAgent string) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.UserAgent = userAgent
	}
}

type FastHTTPClient struct {
	client    *fasthttp.Client
	userAgent string
}

// NewFastHTTPClient creates the outbound client shared by the provider adapters.
func NewFastHTTPClient(opts ...FastHTTPClientOption) Client {
	options := &FastHTTPClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
		UserAgent:           DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(options)
	}

	client := &fasthttp.Client{
		MaxConnsPerHost:     options.MaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxResponseBodySize: options.MaxResponseBodySize,
		ReadTimeout:         options.Timeout,
		WriteTimeout:        options.Timeout,
	}
	if options.InsecureSkipVerify {
		client.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // intentionally configurable
		}
	}

	return &FastHTTPClient{
		client:    client,
		userAgent: options.UserAgent,
	}
}

// Do adapts a net/http request to fasthttp. Compressed bodies are decoded
// and the Content-Encoding header dropped so callers always read plain bytes.
func (c *FastHTTPClient) Do(req *http.Request) (*http.Response, error) {
	fastReq := fasthttp.AcquireRequest()
	fastResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(fastReq)
	defer fasthttp.ReleaseResponse(fastResp)

	if err := c.copyRequest(fastReq, req); err != nil {
		return nil, err
	}

	var err error
	if deadline, ok := req.Context().Deadline(); ok {
		err = c.client.DoDeadline(fastReq, fastResp, deadline)
	} else {
		err = c.client.Do(fastReq, fastResp)
	}
	if err != nil {
		return nil, err
	}
	return toHTTPResponse(fastResp, req)
}

func (c *FastHTTPClient) copyRequest(dst *fasthttp.Request, src *http.Request) error {
	dst.Header.SetMethod(src.Method)
	if src.URL != nil {
		dst.SetRequestURI(src.URL.String())
	}
	switch {
	case src.Host != "":
		dst.Header.SetHost(src.Host)
	case src.URL != nil && src.URL.Host != "":
		dst.Header.SetHost(src.URL.Host)
	}
	for key, values := range src.Header {
		dst.Header.Del(key)
		for _, v := range values {
			dst.Header.Add(key, v)
		}
	}
	if c.userAgent != "" && src.Header.Get(fasthttp.HeaderUserAgent) == "" {
		dst.Header.SetUserAgent(c.userAgent)
	}
	if src.Body == nil {
		return nil
	}
	defer src.Body.Close()
	body, err := io.ReadAll(src.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	dst.SetBodyRaw(body)
	return nil
}

func toHTTPResponse(resp *fasthttp.Response, req *http.Request) (*http.Response, error) {
	// resp.Body() is recycled on release
	raw := append([]byte(nil), resp.Body()...)
	body, decoded, err := DecodeChain(resp, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	header := make(http.Header)
	resp.Header.VisitAll(func(k, v []byte) {
		header.Add(string(k), string(v))
	})
	if decoded {
		header.Del(fasthttp.HeaderContentEncoding)
		header.Del(fasthttp.HeaderContentLength)
	}

	code := resp.StatusCode()
	return &http.Response{
		Status:        strconv.Itoa(code) + " " + http.StatusText(code),
		StatusCode:    code,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}
