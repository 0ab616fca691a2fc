package images

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrTooLarge is returned when an image body exceeds the configured limit
var ErrTooLarge = errors.New("image exceeds size limit")

// Result is a decoded image together with what was fetched
type Result struct {
	Image  image.Image
	Format string
	Bytes  int64
}

// Caption describes the image, e.g. "512x512 png, 24 kB"
func (r *Result) Caption() string {
	b := r.Image.Bounds()
	return fmt.Sprintf("%dx%d %s, %s", b.Dx(), b.Dy(), r.Format, humanize.Bytes(uint64(r.Bytes)))
}

// Fetcher loads the image behind a URL
type Fetcher interface {
	Load(ctx context.Context, url string) (*Result, error)
}

type Loader struct {
	httpClient *http.Client
	maxBytes   int64
}

// NewLoader creates a loader that refuses bodies larger than maxBytes. A
// zero timeout leaves downloads unbounded.
func NewLoader(timeout time.Duration, maxBytes int64) *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   maxBytes,
	}
}

func (l *Loader) Load(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image request failed with status: %d", resp.StatusCode)
	}
	if l.maxBytes > 0 && resp.ContentLength > l.maxBytes {
		return nil, fmt.Errorf("%w: %s > %s", ErrTooLarge,
			humanize.Bytes(uint64(resp.ContentLength)), humanize.Bytes(uint64(l.maxBytes)))
	}

	body := io.Reader(resp.Body)
	if l.maxBytes > 0 {
		// One extra byte tells an exact fit from an overflow
		body = io.LimitReader(resp.Body, l.maxBytes+1)
	}
	counter := &countingReader{r: body}

	img, format, err := image.Decode(counter)
	if l.maxBytes > 0 && counter.n > l.maxBytes {
		return nil, fmt.Errorf("%w: more than %s", ErrTooLarge, humanize.Bytes(uint64(l.maxBytes)))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Result{Image: img, Format: format, Bytes: counter.n}, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
