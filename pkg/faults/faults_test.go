package faults

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"msg and cause", Wrap(DelegateExecution, cause, "unable to deploy workflow"), "unable to deploy workflow: boom"},
		{"msg only", New(SchemaDiscovery, "unknown kind: Foo"), "unknown kind: Foo"},
		{"cause only", &Error{Kind: ConfigParse, Err: cause}, "boom"},
		{"bare kind", &Error{Kind: InvalidCommand}, "invalid command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(SchemaFile, "schema file is NOT valid"))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, SchemaFile, kind)
	assert.True(t, IsKind(err, SchemaFile))
	assert.False(t, IsKind(err, ConfigParse))

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, 0},
		{"explicit code passes through", New(DelegateExecution, "rc").WithCode(2), 2},
		{"fault defaults to one", New(ProcessSpawn, "spawn failed"), 1},
		{"plain error defaults to one", errors.New("anything"), 1},
		{"wrapped coded fault", fmt.Errorf("w: %w", New(ConfigParse, "bad").WithCode(3)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := Wrap(StructuralValidation, cause, "document is not valid")
	assert.True(t, errors.Is(err, cause))
}
