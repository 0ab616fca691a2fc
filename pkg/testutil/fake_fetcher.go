package testutil

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/killallgit/storychat/pkg/images"
)

// FakeFetcher implements images.Fetcher from an in-memory table
type FakeFetcher struct {
	mu      sync.Mutex
	results map[string]*images.Result
	errors  map[string]error
	calls   []string
}

func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{
		results: make(map[string]*images.Result),
		errors:  make(map[string]error),
	}
}

// WithImage serves a blank width x height png for url
func (f *FakeFetcher) WithImage(url string, width, height int) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[url] = &images.Result{
		Image:  image.NewRGBA(image.Rect(0, 0, width, height)),
		Format: "png",
		Bytes:  int64(width * height * 4),
	}
	return f
}

// WithError makes loads of url fail with err
func (f *FakeFetcher) WithError(url string, err error) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[url] = err
	return f
}

// Load implements images.Fetcher
func (f *FakeFetcher) Load(ctx context.Context, url string) (*images.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)

	if err, ok := f.errors[url]; ok {
		return nil, err
	}
	if result, ok := f.results[url]; ok {
		return result, nil
	}
	return nil, fmt.Errorf("image request failed with status: 404")
}

// Calls returns the urls loaded so far, in order
func (f *FakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
