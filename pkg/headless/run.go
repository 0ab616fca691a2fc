package headless

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/killallgit/storychat/pkg/images"
	"github.com/killallgit/storychat/pkg/storyapi"
)

// RunHeadless sends a single prompt and prints the outcome to out. A failed
// call prints the fallback message and is not an error. fetcher may be nil,
// in which case images are reported but not loaded.
func RunHeadless(ctx context.Context, sender storyapi.Sender, fetcher images.Fetcher, out io.Writer, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("prompt cannot be empty in headless mode")
	}

	r := newRunner(sender, fetcher, NewOutput(out))
	if err := r.run(ctx, prompt); err != nil {
		return fmt.Errorf("failed to execute prompt: %w", err)
	}
	return nil
}
