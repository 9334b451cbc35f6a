package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/ports"
	portsmocks "github.com/renato0307/hookpin/internal/ports/mocks"
)

// stubResolver hands back fixed hooks
type stubResolver struct {
	hooks     []domain.ResolvedHook
	installed []domain.ResolvedHook
}

func (r *stubResolver) Resolve(context.Context, *domain.Config, string) ([]domain.ResolvedHook, error) {
	return r.hooks, nil
}

func (r *stubResolver) InstallEnvironments(_ context.Context, hooks []domain.ResolvedHook) error {
	r.installed = hooks
	return nil
}

type runServiceMocks struct {
	classifier *portsmocks.MockFileClassifier
	executor   *portsmocks.MockHookExecutor
	git        *portsmocks.MockGitRepository
	loader     *portsmocks.MockConfigLoader
	reporter   *portsmocks.MockRunReporter
	store      *portsmocks.MockStore
}

func localHook(id string, stages ...domain.Stage) domain.ResolvedHook {
	def := domain.NewHookDefinition(id, id, "echo "+id, domain.LanguageSystem)
	def.Stages = stages
	return domain.ResolvedHook{HookDefinition: def, Repo: domain.RepoLocal}
}

func newRunService(t *testing.T, cfg *domain.Config, hooks ...domain.ResolvedHook) (*RunService, runServiceMocks, *stubResolver) {
	t.Helper()
	m := runServiceMocks{
		classifier: portsmocks.NewMockFileClassifier(t),
		executor:   portsmocks.NewMockHookExecutor(t),
		git:        portsmocks.NewMockGitRepository(t),
		loader:     portsmocks.NewMockConfigLoader(t),
		reporter:   portsmocks.NewMockRunReporter(t),
		store:      portsmocks.NewMockStore(t),
	}
	resolver := &stubResolver{hooks: hooks}

	m.git.EXPECT().RepoRoot("/work").Return("/work", nil)
	m.loader.EXPECT().Load("/work/" + domain.ConfigFileName).Return(cfg, nil)

	svc := NewRunService(m.git, m.loader, resolver, m.classifier, m.executor, m.store, m.reporter)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, m, resolver
}

// passThroughFilters makes the classifier keep every file
func passThroughFilters(m runServiceMocks) {
	m.classifier.EXPECT().FilterByPattern(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(files []string, _, _ string) ([]string, error) { return files, nil })
	m.classifier.EXPECT().FilterIgnored(mock.Anything).
		RunAndReturn(func(files []string) []string { return files })
	m.classifier.EXPECT().FilterByTypes(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ string, files, _, _, _ []string) []string { return files }).Maybe()
}

func runOpts() RunOptions {
	return RunOptions{ConfigPath: domain.ConfigFileName, WorkDir: "/work"}
}

func TestRunService_Run_PassAndFail(t *testing.T) {
	svc, m, resolver := newRunService(t, &domain.Config{}, localHook("ok"), localHook("bad"))
	passThroughFilters(m)

	m.git.EXPECT().StagedFiles("/work").Return([]string{"a.go", "b.go"}, nil)
	m.git.EXPECT().Diff("/work").Return(nil, nil)
	m.executor.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(h domain.ResolvedHook) bool { return h.ID == "ok" }), []string{"a.go", "b.go"}, mock.Anything).
		Return(ports.ExecResult{}, nil)
	m.executor.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(h domain.ResolvedHook) bool { return h.ID == "bad" }), mock.Anything, mock.Anything).
		Return(ports.ExecResult{ExitCode: 3, Output: []byte("nope\n")}, nil)
	m.reporter.EXPECT().HookFinished(mock.Anything).Times(2)

	var recorded []domain.HookRun
	m.store.EXPECT().RecordRuns(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, runs []domain.HookRun) error {
			recorded = runs
			return nil
		})

	summary, err := svc.Run(context.Background(), runOpts())

	require.NoError(t, err)
	require.Len(t, summary.Results, 2)
	assert.True(t, summary.Failed())
	assert.Equal(t, domain.StatusPassed, summary.Results[0].Status)
	assert.Equal(t, domain.StatusFailed, summary.Results[1].Status)
	assert.Equal(t, 3, summary.Results[1].ExitCode)
	assert.Equal(t, "nope\n", string(summary.Results[1].Output))
	assert.Equal(t, time.Second, summary.Results[0].Duration)
	assert.Len(t, resolver.installed, 2)

	require.Len(t, recorded, 2)
	assert.Equal(t, summary.RunID, recorded[0].RunID)
	assert.Equal(t, "bad", recorded[1].HookID)
	assert.Equal(t, 2, recorded[1].Files)
}

func TestRunService_Run_ModifiedFilesFail(t *testing.T) {
	svc, m, _ := newRunService(t, &domain.Config{}, localHook("fixer"))
	passThroughFilters(m)

	m.git.EXPECT().StagedFiles("/work").Return([]string{"a.txt"}, nil)
	m.git.EXPECT().Diff("/work").Return([]byte("before"), nil).Once()
	m.git.EXPECT().Diff("/work").Return([]byte("after"), nil).Once()
	m.executor.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(ports.ExecResult{}, nil)
	m.reporter.EXPECT().HookFinished(mock.Anything)
	m.store.EXPECT().RecordRuns(mock.Anything, mock.Anything).Return(nil)

	summary, err := svc.Run(context.Background(), runOpts())

	require.NoError(t, err)
	assert.True(t, summary.Results[0].FilesModified)
	assert.Equal(t, domain.StatusFailed, summary.Results[0].Status)
}

func TestRunService_Run_SkipsWithoutFilesAndFromEnv(t *testing.T) {
	always := localHook("always")
	always.AlwaysRun = true
	svc, m, _ := newRunService(t, &domain.Config{}, localHook("nofiles"), localHook("skipped"), always)
	passThroughFilters(m)

	m.git.EXPECT().StagedFiles("/work").Return(nil, nil)
	m.git.EXPECT().Diff("/work").Return(nil, nil)
	m.executor.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(h domain.ResolvedHook) bool { return h.ID == "always" }), mock.Anything, mock.Anything).
		Return(ports.ExecResult{}, nil)
	m.reporter.EXPECT().HookFinished(mock.Anything).Times(3)
	m.store.EXPECT().RecordRuns(mock.Anything, mock.Anything).Return(nil)

	opts := runOpts()
	opts.Skip = []string{"skipped"}
	summary, err := svc.Run(context.Background(), opts)

	require.NoError(t, err)
	require.Len(t, summary.Results, 3)
	assert.Equal(t, domain.StatusSkipped, summary.Results[0].Status)
	assert.Equal(t, domain.SkipNoFiles, summary.Results[0].SkipReason)
	assert.Equal(t, domain.StatusSkipped, summary.Results[1].Status)
	assert.Equal(t, domain.SkipEnv, summary.Results[1].SkipReason)
	assert.Equal(t, domain.StatusPassed, summary.Results[2].Status)
	assert.False(t, summary.Failed())
}

func TestRunService_Run_FailFastAndShowDiff(t *testing.T) {
	svc, m, _ := newRunService(t, &domain.Config{FailFast: true}, localHook("first"), localHook("second"))
	passThroughFilters(m)

	m.git.EXPECT().AllFiles("/work").Return([]string{"x"}, nil)
	m.git.EXPECT().Diff("/work").Return([]byte("diff --git a/x b/x\n"), nil)
	m.executor.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(ports.ExecResult{ExitCode: 1}, nil).Once()
	m.reporter.EXPECT().HookFinished(mock.Anything).Once()
	m.reporter.EXPECT().ShowDiff([]byte("diff --git a/x b/x\n")).Once()
	m.store.EXPECT().RecordRuns(mock.Anything, mock.Anything).Return(assert.AnError)

	opts := runOpts()
	opts.AllFiles = true
	opts.ShowDiffOnFailure = true
	summary, err := svc.Run(context.Background(), opts)

	require.NoError(t, err)
	assert.Len(t, summary.Results, 1)
}

func TestRunService_Run_SelectsHookAndStage(t *testing.T) {
	svc, m, _ := newRunService(t, &domain.Config{},
		localHook("lint"),
		localHook("push-only", domain.StagePrePush),
		localHook("manual", domain.StageManual),
	)
	passThroughFilters(m)

	m.git.EXPECT().ChangedFiles("/work", "origin/main", "HEAD").Return([]string{"a.go"}, nil)
	m.git.EXPECT().Diff("/work").Return(nil, nil)
	m.executor.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(h domain.ResolvedHook) bool { return h.ID == "push-only" }), mock.Anything, mock.Anything).
		Return(ports.ExecResult{}, nil)
	m.reporter.EXPECT().HookFinished(mock.Anything).Once()
	m.store.EXPECT().RecordRuns(mock.Anything, mock.Anything).Return(nil)

	opts := runOpts()
	opts.FromRef, opts.ToRef = "origin/main", "HEAD"
	opts.HookID = "push-only"
	opts.Stage = domain.StagePrePush
	summary, err := svc.Run(context.Background(), opts)

	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "push-only", summary.Results[0].Hook.ID)
}

func TestRunService_Run_UnknownHookID(t *testing.T) {
	svc, _, _ := newRunService(t, &domain.Config{}, localHook("lint"))

	opts := runOpts()
	opts.HookID = "nope"
	_, err := svc.Run(context.Background(), opts)

	assert.ErrorIs(t, err, domain.ErrHookNotFound)
}

func TestRunService_Run_ExplicitFiles(t *testing.T) {
	svc, m, _ := newRunService(t, &domain.Config{}, localHook("lint"))
	passThroughFilters(m)

	m.git.EXPECT().Diff("/work").Return(nil, nil)
	m.executor.EXPECT().Execute(mock.Anything, mock.Anything, []string{"pkg/a.go", "b.go"}, mock.Anything).Return(ports.ExecResult{}, nil)
	m.reporter.EXPECT().HookFinished(mock.Anything)
	m.store.EXPECT().RecordRuns(mock.Anything, mock.Anything).Return(nil)

	opts := runOpts()
	opts.Files = []string{"/work/pkg/a.go", "b.go"}
	_, err := svc.Run(context.Background(), opts)

	require.NoError(t, err)
}

func TestNormalizePaths(t *testing.T) {
	got := normalizePaths("/repo", "/repo/sub", []string{"a.go", "/repo/b.go", "../c.go"})

	assert.Equal(t, []string{"sub/a.go", "b.go", "c.go"}, got)
}
