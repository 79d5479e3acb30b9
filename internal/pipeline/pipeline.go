package pipeline

import (
	"context"
	"log/slog"

	"github.com/wordscan/wordscan/internal/model"
)

// Step defines the interface that all pipeline steps implement.
// Steps are executed in sequence, each receiving the report accumulated
// by previous steps.
//
// Design decision: an interface rather than function types, because it
// lets steps carry configuration state and provides a Name() for
// logging.
type Step interface {
	// Do executes the step, writing its results into the report.
	Do(ctx context.Context, report *model.AnalysisReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes an ordered list of steps against one report.
type Pipeline struct {
	steps []Step

	logger *slog.Logger

	// continueOnError determines whether to keep executing steps after
	// one fails. If false, the pipeline stops on the first error.
	continueOnError bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue executing
// steps even when one fails. The first error is recorded in the report.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a Pipeline with the given options.
// Steps are added with AddStep or AddSteps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps run in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence against the report.
// Cancellation is checked before each step; the steps themselves are
// fast, synchronous computations.
//
// Returns the first error encountered if continueOnError is false, or
// nil when all steps complete (step errors are recorded in the report).
func (p *Pipeline) Execute(ctx context.Context, report *model.AnalysisReport) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)

			report.Error = err
			report.ErrorMessage = err.Error()

			if !p.continueOnError {
				return err
			}
		}

		report.PerformedSteps = append(report.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
