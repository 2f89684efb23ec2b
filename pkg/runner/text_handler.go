package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/pushdown/pkg/domain"
)

// DefaultPrompt is printed before each read.
const DefaultPrompt = "> "

// VerdictStyle renders the verdict word, e.g. with terminal colors.
type VerdictStyle func(accepted bool) string

// PlainVerdict prints "accepted" or "rejected" unstyled.
func PlainVerdict(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader *bufio.Reader
	Writer io.Writer

	Prompt     string
	Verdict    VerdictStyle
	ShowReason bool

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerPrompt replaces DefaultPrompt. An empty prompt disables it.
func WithTextHandlerPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// WithTextHandlerVerdict configures how the verdict word is rendered.
func WithTextHandlerVerdict(style VerdictStyle) TextHandlerOption {
	return func(h *TextHandler) {
		h.Verdict = style
	}
}

// WithTextHandlerReason prints the rejection cause under "rejected".
func WithTextHandlerReason(show bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.ShowReason = show
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Prompt:  DefaultPrompt,
		Verdict: PlainVerdict,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// initPump starts a reader goroutine so Input can honor ctx while a read is blocked.
// The goroutine stops once the ctx of the first Input call is done.
func (h *TextHandler) initPump(ctx context.Context) {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump(ctx)
	})
}

func (h *TextHandler) pump(ctx context.Context) {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" && !h.send(ctx, inputResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				h.send(ctx, inputResult{err: err})
			}
			return
		}
	}
}

// send hands res to Input, giving up when ctx is done.
func (h *TextHandler) send(ctx context.Context, res inputResult) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case h.inputChan <- res:
		return true
	case <-ctx.Done():
		return false
	}
}

// Input prompts and reads one sanitized line.
// A line that fails sanitization is reported and the prompt repeats.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump(ctx)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			if h.Prompt != "" {
				fmt.Fprint(h.Writer, h.Prompt)
			}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// Output prints the verdict and, on acceptance, one trace step per line.
func (h *TextHandler) Output(ctx context.Context, input string, res domain.Result) error {
	if _, err := fmt.Fprintln(h.Writer, h.Verdict(res.Accepted)); err != nil {
		return err
	}
	if !res.Accepted {
		if h.ShowReason && res.Err != nil {
			_, err := fmt.Fprintf(h.Writer, "  %v\n", res.Err)
			return err
		}
		return nil
	}
	for _, step := range res.Trace {
		if _, err := fmt.Fprintln(h.Writer, step); err != nil {
			return err
		}
	}
	return nil
}

// SystemOutput prints a meta-message on its own line.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}
