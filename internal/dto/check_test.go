package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResult_EncodesEmptySlices(t *testing.T) {
	resp := FromResult("pizza", domain.Result{State: "start", Err: errors.New("nope")})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"input": "pizza",
		"accepted": false,
		"trace": [],
		"state": "start",
		"stack": [],
		"remaining": [],
		"reason": "nope"
	}`, string(data))
}

func TestFromResult_EpsilonTrigger(t *testing.T) {
	resp := FromResult("bowl", domain.Result{
		Accepted: true,
		Trace: []domain.Step{
			{From: "start", Trigger: domain.Sym("bowl"), To: "bowl"},
			{From: "bowl", Trigger: domain.Epsilon, To: "done"},
		},
		State: "done",
	})

	data, err := json.Marshal(resp.Trace)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"from":"start","trigger":"bowl","to":"bowl"},{"from":"bowl","trigger":null,"to":"done"}]`, string(data))
	assert.Equal(t, []string{"(start, bowl, bowl)", "(bowl, λ, done)"}, TraceLines(resp.Trace))
}
