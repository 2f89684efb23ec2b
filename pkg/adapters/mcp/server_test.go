package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/pushdown"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/aretw0/pushdown/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *pushdown.Engine) {
	t.Helper()
	engine, err := pushdown.New("../../../testdata/food.pda")
	require.NoError(t, err)
	return NewServer(engine), engine
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return ""
}

func TestCheckInput(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := s.handleCheck(ctx, mcp.CallToolRequest{}, CheckArgs{Input: "sandwich sub beef"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, domain.State("done"), resp.State)

	resp, err = s.handleCheck(ctx, mcp.CallToolRequest{}, CheckArgs{Input: "pizza"})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	assert.Contains(t, resp.Reason, "pizza")
}

func TestCheckInput_Record(t *testing.T) {
	s, engine := newTestServer(t)
	ctx := context.Background()

	resp, err := s.handleCheck(ctx, mcp.CallToolRequest{}, CheckArgs{Input: "bowl", Record: true})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	record, err := engine.Runs().Load(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "bowl", record.Input)
}

func TestCheckInput_Oversized(t *testing.T) {
	s, _ := newTestServer(t)
	_, err := s.handleCheck(context.Background(), mcp.CallToolRequest{}, CheckArgs{Input: strings.Repeat("bowl ", 1000)})
	assert.Error(t, err)
}

func TestCheckInput_ControlCharIsRefused(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := s.handleCheck(ctx, mcp.CallToolRequest{}, CheckArgs{Input: "bo\x07wl"})
	require.ErrorIs(t, err, runner.ErrControlChar)
	assert.False(t, resp.Accepted)

	res, err := s.handleGraph(ctx, callRequest(map[string]any{"input": "bo\x07wl"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestCheckInput_StructuredHandler(t *testing.T) {
	s, _ := newTestServer(t)
	handler := mcp.NewStructuredToolHandler(s.handleCheck)

	res, err := handler(context.Background(), callRequest(map[string]any{"input": "bowl rice"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.NotNil(t, res.StructuredContent)
}

func TestDescribeDefinition(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleDescribe(context.Background(), callRequest(nil))
	require.NoError(t, err)
	text := resultText(t, res)
	assert.Contains(t, text, "food.pda")
	assert.Contains(t, text, "bowl_base")
}

func TestRenderGraph(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleGraph(ctx, callRequest(nil))
	require.NoError(t, err)
	plain := resultText(t, res)
	assert.True(t, strings.HasPrefix(plain, "graph LR\n"))
	assert.NotContains(t, plain, "class ")

	res, err = s.handleGraph(ctx, callRequest(map[string]any{"input": "sandwich beef"}))
	require.NoError(t, err)
	traced := resultText(t, res)
	assert.Contains(t, traced, "class sandwich current;")
	assert.Contains(t, traced, "fill:#ffcdd2", "rejected runs are drawn red")
}
