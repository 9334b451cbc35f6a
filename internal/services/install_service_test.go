package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookpin/internal/domain"
	portsmocks "github.com/renato0307/hookpin/internal/ports/mocks"
)

func newInstallService(t *testing.T) (*InstallService, *portsmocks.MockConfigLoader, string) {
	t.Helper()
	root := t.TempDir()
	git := portsmocks.NewMockGitRepository(t)
	loader := portsmocks.NewMockConfigLoader(t)
	git.EXPECT().RepoRoot(root).Return(root, nil)
	git.EXPECT().HooksDir(root).Return(filepath.Join(root, ".git", "hooks"), nil)
	return NewInstallService(git, loader, "/usr/local/bin/hookpin"), loader, root
}

func TestInstallService_Install(t *testing.T) {
	svc, _, root := newInstallService(t)

	paths, err := svc.Install(InstallOptions{
		ConfigPath: domain.ConfigFileName,
		HookTypes:  []string{"pre-commit", "pre-push"},
		WorkDir:    root,
	})

	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}

	script, err := os.ReadFile(filepath.Join(root, ".git", "hooks", "pre-push"))
	require.NoError(t, err)
	assert.Contains(t, string(script), hookMarker)
	assert.Contains(t, string(script), "HOOKPIN_BIN='/usr/local/bin/hookpin'")
	assert.Contains(t, string(script), "--config='.pre-commit-config.yaml' --hook-type=pre-push")
}

func TestInstallService_Install_DefaultsFromConfig(t *testing.T) {
	svc, loader, root := newInstallService(t)
	loader.EXPECT().Load(filepath.Join(root, domain.ConfigFileName)).
		Return(&domain.Config{DefaultInstallHookTypes: []string{"commit-msg"}}, nil)

	paths, err := svc.Install(InstallOptions{ConfigPath: domain.ConfigFileName, WorkDir: root})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, ".git", "hooks", "commit-msg")}, paths)
}

func TestInstallService_Install_UnknownType(t *testing.T) {
	svc, _, root := newInstallService(t)

	_, err := svc.Install(InstallOptions{HookTypes: []string{"manual"}, WorkDir: root})

	assert.ErrorContains(t, err, "unknown hook type 'manual'")
}

func TestInstallService_LegacyRoundTrip(t *testing.T) {
	svc, _, root := newInstallService(t)
	hooksDir := filepath.Join(root, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))
	legacy := "#!/bin/sh\necho legacy\n"
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte(legacy), 0755))

	opts := InstallOptions{ConfigPath: domain.ConfigFileName, HookTypes: []string{"pre-commit"}, WorkDir: root}

	_, err := svc.Install(opts)
	require.NoError(t, err)
	moved, err := os.ReadFile(filepath.Join(hooksDir, "pre-commit.legacy"))
	require.NoError(t, err)
	assert.Equal(t, legacy, string(moved))

	// Reinstalling must not move our own script aside
	_, err = svc.Install(opts)
	require.NoError(t, err)
	moved, err = os.ReadFile(filepath.Join(hooksDir, "pre-commit.legacy"))
	require.NoError(t, err)
	assert.Equal(t, legacy, string(moved))

	removed, err := svc.Uninstall(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(hooksDir, "pre-commit")}, removed)

	restored, err := os.ReadFile(filepath.Join(hooksDir, "pre-commit"))
	require.NoError(t, err)
	assert.Equal(t, legacy, string(restored))
	assert.NoFileExists(t, filepath.Join(hooksDir, "pre-commit.legacy"))
}

func TestInstallService_Install_Overwrite(t *testing.T) {
	svc, _, root := newInstallService(t)
	hooksDir := filepath.Join(root, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte("#!/bin/sh\n"), 0644))

	_, err := svc.Install(InstallOptions{HookTypes: []string{"pre-commit"}, Overwrite: true, WorkDir: root})

	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(hooksDir, "pre-commit.legacy"))
}

func TestInstallService_Uninstall_LeavesForeignScripts(t *testing.T) {
	svc, _, root := newInstallService(t)
	hooksDir := filepath.Join(root, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte("#!/bin/sh\n"), 0755))

	removed, err := svc.Uninstall(InstallOptions{HookTypes: []string{"pre-commit"}, WorkDir: root})

	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.FileExists(t, filepath.Join(hooksDir, "pre-commit"))
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'it'"'"'s'`, shellQuote("it's"))
}
