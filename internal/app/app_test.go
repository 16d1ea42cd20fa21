package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"materi/internal/app/cli"
	"materi/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner implements fx.Shutdowner for testing
type mockShutdowner struct {
	calls atomic.Int32
}

func (m *mockShutdowner) Shutdown(...fx.ShutdownOption) error {
	m.calls.Add(1)
	return nil
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	application := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
	assert.NotNil(t, application.done)
}

func Test_execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	app := &App{
		cli: mockCLI,
		log: mockLogger,
	}

	tests := []struct {
		name          string
		before        func()
		args          []string
		expectedError bool
	}{
		{
			name: "Success",
			args: []string{"help"},
			before: func() {
				mockCLI.EXPECT().Run(gomock.Any(), []string{"help"}).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "Failure",
			args: []string{"complete", "9", "X"},
			before: func() {
				mockCLI.EXPECT().Run(gomock.Any(), []string{"complete", "9", "X"}).Return(errors.New("week not found"))
				mockLogger.EXPECT().Error().Return(nil)
			},
			expectedError: true,
		},
		{
			name: "With no arguments",
			args: []string{},
			before: func() {
				mockCLI.EXPECT().Run(gomock.Any(), []string{}).Return(nil)
			},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.before()

			err := app.execute(context.Background(), tt.args)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := NewApp(cli.NewMockCLI(ctrl), &mockShutdowner{}, logger.NewMockLogger(ctrl))

	var registered bool
	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) {
		registered = true
		capturedHook = hook
	}}, app)

	assert.True(t, registered)
	assert.NotNil(t, capturedHook.OnStart)
	assert.NotNil(t, capturedHook.OnStop)
}

func Test_Register_RunsAndShutsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	shutdowner := &mockShutdowner{}
	app := NewApp(mockCLI, shutdowner, logger.NewMockLogger(ctrl))

	mockCLI.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)

	var hook fx.Hook
	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, app)

	require.NoError(t, hook.OnStart(context.Background()))

	select {
	case <-app.done:
	case <-time.After(time.Second):
		t.Fatal("app did not finish")
	}

	assert.Eventually(t, func() bool { return shutdowner.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.NoError(t, hook.OnStop(context.Background()))
}

func Test_Register_OnStopCancelsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	shutdowner := &mockShutdowner{}
	app := NewApp(mockCLI, shutdowner, mockLogger)

	started := make(chan struct{})

	mockCLI.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, args []string) error {
		close(started)
		<-ctx.Done()

		return ctx.Err()
	})
	mockLogger.EXPECT().Error().Return(nil)

	var hook fx.Hook
	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, app)

	require.NoError(t, hook.OnStart(context.Background()))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, hook.OnStop(ctx))
	assert.Eventually(t, func() bool { return shutdowner.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func Test_Register_OnStopTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := NewApp(cli.NewMockCLI(ctrl), &mockShutdowner{}, logger.NewMockLogger(ctrl))

	var hook fx.Hook
	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, hook.OnStop(ctx), context.Canceled)
}
