package dispatcher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anybuild/internal/adapters/config"
	"go.trai.ch/anybuild/internal/core/domain"
	"go.trai.ch/anybuild/internal/core/ports/mocks"
	"go.trai.ch/anybuild/internal/engine/dispatcher"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// project describes which markers exist in a fake working directory.
type project struct {
	files       []string
	dirs        []string
	executables []string
}

func (p project) probe(ctrl *gomock.Controller) *mocks.MockProbe {
	has := func(set []string) func(string) bool {
		return func(path string) bool {
			for _, s := range set {
				if s == path {
					return true
				}
			}
			return false
		}
	}

	probe := mocks.NewMockProbe(ctrl)
	probe.EXPECT().IsFile(gomock.Any()).DoAndReturn(has(p.files)).AnyTimes()
	probe.EXPECT().IsDir(gomock.Any()).DoAndReturn(has(p.dirs)).AnyTimes()
	probe.EXPECT().IsExecutable(gomock.Any()).DoAndReturn(has(p.executables)).AnyTimes()
	return probe
}

func defaultTable(t *testing.T) *domain.RuleTable {
	t.Helper()
	table, err := config.NewLoader().Load()
	require.NoError(t, err)
	return table
}

func TestDispatcher_Run_SelectsRule(t *testing.T) {
	tests := []struct {
		name    string
		project project
		args    []string
		want    domain.Invocation
	}{
		{
			name:    "BuildScript",
			project: project{executables: []string{"./build.sh"}},
			want:    domain.Invocation{Program: "./build.sh", Args: []string{}},
		},
		{
			name:    "MakeScript",
			project: project{executables: []string{"./make.sh"}},
			args:    []string{"install"},
			want:    domain.Invocation{Program: "./make.sh", Args: []string{"install"}},
		},
		{
			name:    "Justfile",
			project: project{files: []string{"Justfile"}},
			want:    domain.Invocation{Program: "just", Args: []string{}},
		},
		{
			name:    "JustfileLowercase",
			project: project{files: []string{"justfile"}},
			args:    []string{"test"},
			want:    domain.Invocation{Program: "just", Args: []string{"test"}},
		},
		{
			name:    "Makefile",
			project: project{files: []string{"Makefile"}},
			want:    domain.Invocation{Program: "make", Args: []string{}},
		},
		{
			name:    "MakefileLowercase",
			project: project{files: []string{"makefile"}},
			want:    domain.Invocation{Program: "make", Args: []string{}},
		},
		{
			name:    "GNUmakefile",
			project: project{files: []string{"GNUmakefile"}},
			args:    []string{"-j4"},
			want:    domain.Invocation{Program: "make", Args: []string{"-j4"}},
		},
		{
			name:    "Cargo",
			project: project{files: []string{"Cargo.toml"}},
			args:    []string{"--release"},
			want:    domain.Invocation{Program: "cargo", Args: []string{"build", "--release"}},
		},
		{
			name:    "Sbt",
			project: project{files: []string{"build.sbt"}},
			want:    domain.Invocation{Program: "sbt", Args: []string{"compile"}},
		},
		{
			name:    "Gradle",
			project: project{files: []string{"build.gradle"}},
			want:    domain.Invocation{Program: "gradle", Args: []string{"build"}},
		},
		{
			name:    "Dune",
			project: project{files: []string{"dune"}},
			want:    domain.Invocation{Program: "dune", Args: []string{"build"}},
		},
		{
			name:    "Bazel",
			project: project{files: []string{"BUILD"}},
			args:    []string{"--config=ci"},
			want: domain.Invocation{
				Program: "bazel",
				Args:    []string{"build", "--spawn_strategy=local", "//...", "--config=ci"},
			},
		},
		{
			name:    "CMakeWithoutBuildDir",
			project: project{files: []string{"CMakeLists.txt"}},
			want:    domain.Invocation{Program: "cmake", Args: []string{"."}},
		},
		{
			name:    "BuildScriptBeatsMakefile",
			project: project{files: []string{"Makefile"}, executables: []string{"./build.sh"}},
			want:    domain.Invocation{Program: "./build.sh", Args: []string{}},
		},
		{
			name:    "CargoBeatsCMake",
			project: project{files: []string{"CMakeLists.txt", "Cargo.toml"}, dirs: []string{"build"}},
			want:    domain.Invocation{Program: "cargo", Args: []string{"build"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := mocks.NewMockExecutor(ctrl)
			log := mocks.NewMockLogger(ctrl)

			gomock.InOrder(
				log.EXPECT().Info(tt.want.Trace()),
				executor.EXPECT().Execute(gomock.Any(), tt.want).Return(0, nil),
			)

			d := dispatcher.New(tt.project.probe(ctrl), executor, log)
			outcome, err := d.Run(context.Background(), defaultTable(t), tt.args)
			require.NoError(t, err)

			assert.Equal(t, dispatcher.OutcomeExecuted, outcome.Kind)
			assert.Equal(t, domain.ExitSuccess, outcome.ExitCode)
		})
	}
}

func TestDispatcher_Run_PropagatesExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Info(gomock.Any())
	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(2, nil)

	d := dispatcher.New(project{files: []string{"Makefile"}}.probe(ctrl), executor, log)
	outcome, err := d.Run(context.Background(), defaultTable(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "make", outcome.Rule)
	assert.Equal(t, 2, outcome.ExitCode)
}

func TestDispatcher_Run_CMakeStub(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	// No Execute expectation: cmake must not run.
	log.EXPECT().Info("Run this: cd build && cmake .. && make")

	p := project{files: []string{"CMakeLists.txt"}, dirs: []string{"build"}}
	d := dispatcher.New(p.probe(ctrl), executor, log)

	outcome, err := d.Run(context.Background(), defaultTable(t), []string{"ignored"})
	require.NoError(t, err)

	assert.Equal(t, dispatcher.OutcomeStubbed, outcome.Kind)
	assert.Equal(t, "cmake", outcome.Rule)
	assert.Equal(t, domain.ExitSuccess, outcome.ExitCode)
}

func TestDispatcher_Run_Fallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Info(domain.FallbackMessage)

	// A build directory alone matches nothing.
	d := dispatcher.New(project{dirs: []string{"build"}}.probe(ctrl), executor, log)
	outcome, err := d.Run(context.Background(), defaultTable(t), []string{"--release"})
	require.NoError(t, err)

	assert.Equal(t, dispatcher.OutcomeFallback, outcome.Kind)
	assert.Empty(t, outcome.Rule)
	assert.Equal(t, domain.ExitSuccess, outcome.ExitCode)
}

func TestDispatcher_Run_SubmoduleAdvisory(t *testing.T) {
	advisory := "You may want to run: git submodule update --init --recursive"

	t.Run("BeforeRuleMatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		log := mocks.NewMockLogger(ctrl)

		gomock.InOrder(
			log.EXPECT().Info(advisory).Times(1),
			log.EXPECT().Info(`Running: "make"`),
			executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(0, nil),
		)

		p := project{files: []string{".gitmodules", "Makefile"}}
		d := dispatcher.New(p.probe(ctrl), executor, log)
		_, err := d.Run(context.Background(), defaultTable(t), nil)
		require.NoError(t, err)
	})

	t.Run("WithFallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		log := mocks.NewMockLogger(ctrl)

		gomock.InOrder(
			log.EXPECT().Info(advisory).Times(1),
			log.EXPECT().Info(domain.FallbackMessage),
		)

		d := dispatcher.New(project{files: []string{".gitmodules"}}.probe(ctrl), executor, log)
		outcome, err := d.Run(context.Background(), defaultTable(t), nil)
		require.NoError(t, err)
		assert.Equal(t, dispatcher.OutcomeFallback, outcome.Kind)
	})

	t.Run("WithStub", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		log := mocks.NewMockLogger(ctrl)

		gomock.InOrder(
			log.EXPECT().Info(advisory).Times(1),
			log.EXPECT().Info("Run this: cd build && cmake .. && make"),
		)

		p := project{files: []string{".gitmodules", "CMakeLists.txt"}, dirs: []string{"build"}}
		d := dispatcher.New(p.probe(ctrl), executor, log)
		_, err := d.Run(context.Background(), defaultTable(t), nil)
		require.NoError(t, err)
	})
}

func TestDispatcher_Run_FatalExecutorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Info(`Running: "cargo" "build"`)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(domain.ExitFatal, zerr.With(domain.ErrProgramNotFound, "program", "cargo"))

	d := dispatcher.New(project{files: []string{"Cargo.toml"}}.probe(ctrl), executor, log)
	outcome, err := d.Run(context.Background(), defaultTable(t), nil)
	require.Error(t, err)

	assert.Equal(t, domain.ExitFatal, outcome.ExitCode)
	assert.Contains(t, err.Error(), "could not find program")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "cargo", zErr.Metadata()["program"])
	assert.Equal(t, "cargo", zErr.Metadata()["rule"])
}

func TestDispatcher_Run_NonTerminalContinues(t *testing.T) {
	table := domain.NewRuleTable()
	require.NoError(t, table.AddRule(&domain.Rule{
		Name:    "generate",
		Marker:  domain.FileMarker("gen.yaml"),
		Program: "gen",
	}))
	require.NoError(t, table.AddRule(&domain.Rule{
		Name:     "make",
		Marker:   domain.FileMarker("Makefile"),
		Program:  "make",
		Terminal: true,
	}))

	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Info(`Running: "gen" "x"`),
		executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(3, nil),
		log.EXPECT().Info(`Running: "make" "x"`),
		executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(0, nil),
	)

	p := project{files: []string{"gen.yaml", "Makefile"}}
	outcome, err := dispatcher.New(p.probe(ctrl), executor, log).Run(context.Background(), table, []string{"x"})
	require.NoError(t, err)

	assert.Equal(t, "make", outcome.Rule)
	assert.Equal(t, 0, outcome.ExitCode, "only the terminal rule decides the exit code")
}

func TestDispatcher_Exec(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	inv := domain.Invocation{Program: "git", Args: []string{"submodule", "status"}}
	gomock.InOrder(
		log.EXPECT().Info(`Running: "git" "submodule" "status"`),
		executor.EXPECT().Execute(gomock.Any(), inv).Return(7, nil),
	)

	code, err := dispatcher.New(mocks.NewMockProbe(ctrl), executor, log).Exec(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}
