package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"maestro/pkg/config"
	"maestro/pkg/faults"
)

// stubCmd returns a fixed error from Run.
type stubCmd struct {
	err error
}

func (s *stubCmd) Name() string              { return "stub" }
func (s *stubCmd) Run(context.Context) error { return s.err }

func TestExecuteExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil maps to zero", nil, 0},
		{"explicit code passes through", faults.New(faults.DelegateExecution, "rc").WithCode(2), 2},
		{"fault maps to one", faults.New(faults.ProcessSpawn, "spawn"), 1},
		{"plain error maps to one", errors.New("anything truthy"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Execute(context.Background(), &stubCmd{err: tt.err})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteVerboseTrace(t *testing.T) {
	ctx := config.WithRun(context.Background(), config.Run{Verbose: true})
	err := faults.Wrap(faults.DelegateExecution, errors.New("inner"), "outer")
	assert.Equal(t, 1, Execute(ctx, &stubCmd{err: err}))
}
