package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/pushdown/internal/dto"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/aretw0/pushdown/pkg/runner"
	"github.com/aretw0/pushdown/pkg/suite"
)

// CheckOptions configures a one-shot check.
type CheckOptions struct {
	EngineOptions

	JSON   bool
	Record bool
	Out    io.Writer
}

// Check runs input once and prints the verdict. It reports whether input was accepted;
// the error covers loading, persistence and output failures only.
func Check(opts CheckOptions, input string) (bool, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := NewLogger(opts.Debug)

	engine, closeStore, err := NewEngine(opts.EngineOptions, logger)
	if err != nil {
		return false, err
	}
	defer closeStore()

	ctx := context.Background()
	var (
		res domain.Result
		id  string
	)
	if opts.Record {
		record, r, err := engine.Record(ctx, input)
		if err != nil {
			return r.Accepted, err
		}
		res, id = r, record.ID
	} else {
		res = engine.Check(ctx, input)
	}

	if opts.JSON {
		resp := dto.FromResult(input, res)
		resp.ID = id
		enc := json.NewEncoder(out)
		return res.Accepted, enc.Encode(resp)
	}

	handler := runner.NewTextHandler(strings.NewReader(""), out, runner.WithTextHandlerReason(true))
	if err := handler.Output(ctx, input, res); err != nil {
		return res.Accepted, err
	}
	if id != "" {
		printSystemMessage(out, "Recorded run %s", id)
	}
	return res.Accepted, nil
}

// SuiteOptions configures a suite run. An empty File uses the suite's own definition.
type SuiteOptions struct {
	EngineOptions

	Path string
	Out  io.Writer
}

// RunSuite checks every case of the suite file and prints the mismatches.
func RunSuite(opts SuiteOptions) (*suite.Report, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	s, err := suite.Load(opts.Path)
	if err != nil {
		return nil, err
	}
	if opts.File == "" {
		opts.File = s.DefinitionPath()
	}
	if opts.File == "" {
		return nil, fmt.Errorf("%s names no definition", opts.Path)
	}

	engine, closeStore, err := NewEngine(opts.EngineOptions, NewLogger(opts.Debug))
	if err != nil {
		return nil, err
	}
	defer closeStore()

	report := suite.Run(context.Background(), engine, s.Cases)
	if err := report.Write(out); err != nil {
		return report, err
	}
	return report, nil
}
