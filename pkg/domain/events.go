package domain

import "context"

// StepEvent is emitted after a transition has been applied.
// Stack and Remaining are snapshots; mutating them has no effect on the run.
type StepEvent struct {
	Phase     Phase
	Step      Step
	Stack     []Symbol
	Remaining []Symbol
}

// RejectEvent is emitted when a run stops on a local failure.
type RejectEvent struct {
	Phase Phase
	Err   error
	Trace []Step
}

// RunEvent is emitted once per run with the final result.
type RunEvent struct {
	Input  []Symbol
	Result Result
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks observe; they never influence control flow.
type LifecycleHooks struct {
	OnStep     func(context.Context, *StepEvent)
	OnReject   func(context.Context, *RejectEvent)
	OnComplete func(context.Context, *RunEvent)
}

// MergeHooks fans each callback out to every non-nil hook, in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks
	for _, h := range hooks {
		if h.OnStep != nil {
			prev := merged.OnStep
			merged.OnStep = func(ctx context.Context, e *StepEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnStep(ctx, e)
			}
		}
		if h.OnReject != nil {
			prev := merged.OnReject
			merged.OnReject = func(ctx context.Context, e *RejectEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnReject(ctx, e)
			}
		}
		if h.OnComplete != nil {
			prev := merged.OnComplete
			merged.OnComplete = func(ctx context.Context, e *RunEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnComplete(ctx, e)
			}
		}
	}
	return merged
}
