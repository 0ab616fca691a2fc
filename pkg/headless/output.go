package headless

import (
	"fmt"
	"io"

	"github.com/killallgit/storychat/pkg/logger"
)

// Output handles console output for headless mode
type Output struct {
	w io.Writer
}

// NewOutput creates a new output handler writing to w
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Reply prints the reply text
func (o *Output) Reply(text string) {
	fmt.Fprintln(o.w, text)
}

// Image prints the image reference of the reply
func (o *Output) Image(url string) {
	fmt.Fprintf(o.w, "[image] %s\n", url)
}

// ImageLoaded prints the caption of a fetched image
func (o *Output) ImageLoaded(caption string) {
	fmt.Fprintf(o.w, "[image loaded: %s]\n", caption)
}

// ImageFailed reports an image that could not be loaded
func (o *Output) ImageFailed() {
	fmt.Fprintln(o.w, "[image unavailable]")
}

// Error prints an error message using the logger
func (o *Output) Error(msg string) {
	logger.Error("%s", msg)
}
