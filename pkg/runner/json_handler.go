package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/pushdown/internal/dto"
	"github.com/aretw0/pushdown/pkg/domain"
)

// JSONHandler implements the IOHandler interface for newline-delimited JSON.
//
// Each input line is either a JSON object {"input": "..."}, a JSON string, or raw text.
// Each verdict is written as one dto.CheckResponse object per line.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder

	mu sync.Mutex
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

// Input reads the next non-blank line.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := h.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		value := decodeLine(text)
		clean, sanErr := SanitizeInput(value)
		if sanErr != nil {
			if outErr := h.SystemOutput(ctx, sanErr.Error()); outErr != nil {
				return "", outErr
			}
			continue
		}
		return clean, nil
	}
}

func decodeLine(text string) string {
	var req dto.CheckRequest
	if strings.HasPrefix(text, "{") {
		if err := json.Unmarshal([]byte(text), &req); err == nil {
			return req.Input
		}
	}
	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return val
	}
	return text
}

// Output writes the verdict as one JSON line.
func (h *JSONHandler) Output(ctx context.Context, input string, res domain.Result) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(dto.FromResult(input, res))
}

// SystemOutput writes {"message": msg}.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(map[string]string{"message": msg})
}
