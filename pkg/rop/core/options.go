package core

import "context"

// OptionKey is the type of the context keys this package sets.
type OptionKey string

const (
	FailureOptionKey OptionKey = "failure_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// FailureOptions controls how task.All and task.Collect report failures.
type FailureOptions struct {
	JoinAll bool
}

// WithFailureOptions selects whether an aggregate reports every failure
// (errors.Join, input order) or only the first one in input order.
func WithFailureOptions(ctx context.Context, joinAll bool) context.Context {
	return context.WithValue(ctx, FailureOptionKey, FailureOptions{JoinAll: joinAll})
}

// WithWorkerOptions caps how many computations an aggregate runs at once.
// Zero or a negative value means no cap.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the cap set by WithWorkerOptions, or
// defaultMaxWorkers when ctx carries none.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

// IsJoinAllEnabled reports whether aggregates join every failure.
// Without WithFailureOptions on ctx it returns defaultJoinAll.
func IsJoinAllEnabled(ctx context.Context, defaultJoinAll bool) bool {
	options, ok := ctx.Value(FailureOptionKey).(FailureOptions)
	if ok {
		return options.JoinAll
	}
	return defaultJoinAll
}
