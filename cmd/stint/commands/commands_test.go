package commands_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stint/cmd/stint/commands"
	"go.trai.ch/stint/internal/adapters/fingerprint"
	"go.trai.ch/stint/internal/adapters/logger"
	"go.trai.ch/stint/internal/adapters/telemetry/progrock"
	"go.trai.ch/stint/internal/app"
	"go.trai.ch/stint/internal/build"
	"go.trai.ch/stint/internal/core/domain"
	"go.trai.ch/stint/internal/core/ports"
	"go.trai.ch/stint/internal/core/ports/mocks"
	"go.trai.ch/stint/internal/engine/replay"
	"go.uber.org/mock/gomock"
)

func newApp(loader ports.SessionLoader, log ports.Logger) *app.App {
	clock := domain.ClockFunc(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) })
	engine := replay.NewEngine(clock, fingerprint.NewHasher(), progrock.New(), log)
	return app.New(loader, engine, log)
}

func setup(t *testing.T) (*mocks.MockSessionLoader, *app.App) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockSessionLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	return mockLoader, newApp(mockLoader, mockLogger)
}

func session() *domain.Session {
	return &domain.Session{
		Name:  "standup",
		Tasks: []domain.TaskSpec{{Name: "triage", Description: "Triage inbox"}},
		Events: []domain.Event{
			{At: 0, Task: domain.NewTaskPath("triage"), Action: domain.ActionStart},
			{At: 10 * time.Minute, Task: domain.NewTaskPath("triage"), Action: domain.ActionPause},
		},
	}
}

func TestReplay_DefaultSessionFile(t *testing.T) {
	mockLoader, a := setup(t)
	mockLoader.EXPECT().Load("stint.yaml").Return(session(), nil).Times(1)

	var out bytes.Buffer
	cli := commands.New(a, commands.WithOutput(&out))
	cli.SetArgs([]string{"replay", "--no-color"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "standup")
	assert.Contains(t, out.String(), "triage")
	assert.Contains(t, out.String(), "total 10m0s")
}

func TestReplay_JSONFormat(t *testing.T) {
	mockLoader, a := setup(t)
	mockLoader.EXPECT().Load("monday.yaml").Return(session(), nil).Times(1)

	var out bytes.Buffer
	cli := commands.New(a, commands.WithOutput(&out))
	cli.SetArgs([]string{"replay", "-o", "json", "-p", "1", "monday.yaml"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"session": "standup"`)
	assert.Contains(t, out.String(), `"time_taken": 600000000000`)
}

func TestReplay_UnknownFormat(t *testing.T) {
	_, a := setup(t)

	cli := commands.New(a, commands.WithOutput(&bytes.Buffer{}))
	cli.SetArgs([]string{"replay", "--format", "yaml", "monday.yaml"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownFormat.Error())
}

func TestReplay_Intervals(t *testing.T) {
	mockLoader, a := setup(t)
	mockLoader.EXPECT().Load("stint.yaml").Return(session(), nil).Times(1)

	var out, errOut bytes.Buffer
	cli := commands.New(a, commands.WithOutput(&out), commands.WithErrOutput(&errOut))
	cli.SetArgs([]string{"replay", "--no-color", "--intervals"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "total 10m0s")
	assert.Contains(t, errOut.String(), "standup/triage#1  done")
	assert.Contains(t, errOut.String(), "[INFO] pause at +10m0s, counted 10m0s")
}

func TestReplay_Verbose(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantDebug bool
	}{
		{"Verbose", []string{"--verbose", "replay", "--no-color"}, true},
		{"Quiet", []string{"replay", "--no-color"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLoader := mocks.NewMockSessionLoader(ctrl)
			mockLoader.EXPECT().Load("stint.yaml").Return(session(), nil).Times(1)

			var logs bytes.Buffer
			log := logger.New()
			log.SetOutput(&logs)

			cli := commands.New(newApp(mockLoader, log), commands.WithOutput(&bytes.Buffer{}))
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Contains(t, logs.String(), "replayed session standup")
			if tt.wantDebug {
				assert.Contains(t, logs.String(), "level=DEBUG")
				assert.Contains(t, logs.String(), "standup +10m0s pause triage")
			} else {
				assert.NotContains(t, logs.String(), "level=DEBUG")
			}
		})
	}
}

func TestVersion(t *testing.T) {
	_, a := setup(t)

	var out bytes.Buffer
	cli := commands.New(a, commands.WithOutput(&out))
	cli.SetArgs([]string{"version"})

	assert.NotPanics(t, func() {
		require.NoError(t, cli.Execute(context.Background()))
	})
	assert.Equal(t, "stint version "+build.Version+"\n", out.String())
}

func TestRoot_VersionShorthand(t *testing.T) {
	_, a := setup(t)

	var out bytes.Buffer
	cli := commands.New(a, commands.WithOutput(&out))
	cli.SetArgs([]string{"-v"})

	assert.NotPanics(t, func() {
		require.NoError(t, cli.Execute(context.Background()))
	})
	assert.Contains(t, out.String(), build.Version)
}

func TestRoot_Help(t *testing.T) {
	_, a := setup(t)

	var out bytes.Buffer
	cli := commands.New(a, commands.WithOutput(&out))
	cli.SetArgs([]string{"--help"})

	// Cobra handles help automatically
	assert.NotPanics(t, func() {
		require.NoError(t, cli.Execute(context.Background()))
	})
	assert.Contains(t, out.String(), "--verbose")
}
