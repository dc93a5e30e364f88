package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ReactPush/react-push-client/pkg/locator"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	dataDir       string
	defaultBundle string
}

func setupCLI(t *testing.T) *cliEnv {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, name := range []string{"BL_APP_ID", "BL_BUNDLE_DIR_NAME", "BL_MARKER_FILE_NAME", "BL_BUNDLE_NAME", "BL_BUNDLE_EXT"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	chdirForTest(t, t.TempDir())

	resources := t.TempDir()
	e := &cliEnv{
		dataDir:       t.TempDir(),
		defaultBundle: filepath.Join(resources, "main.jsbundle"),
	}
	require.NoError(t, os.WriteFile(e.defaultBundle, []byte("default"), 0o644))

	t.Setenv("BL_DATA_DIR", e.dataDir)
	t.Setenv("BL_RESOURCE_DIRS", resources)

	return e
}

func (e *cliEnv) writeDownloadedBundle(t *testing.T) string {
	t.Helper()

	bundleDir := filepath.Join(e.dataDir, locator.BundleDirName)
	require.NoError(t, os.MkdirAll(bundleDir, 0o755))

	bundle := filepath.Join(bundleDir, "bundle_1.0.1.js")
	require.NoError(t, os.WriteFile(bundle, []byte("downloaded"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(bundleDir, locator.MarkerFileName), []byte(bundle+"\n"), 0o644))

	return bundle
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestResolveDefault(t *testing.T) {
	e := setupCLI(t)

	out, err := execute(t, "resolve")
	require.NoError(t, err)
	require.Equal(t, e.defaultBundle+"\n", out)
}

func TestResolveDownloaded(t *testing.T) {
	e := setupCLI(t)
	bundle := e.writeDownloadedBundle(t)

	out, err := execute(t, "resolve", "--debug")
	require.NoError(t, err)
	require.Equal(t, bundle+"\n", out)
}

func TestResolveFlags(t *testing.T) {
	e := setupCLI(t)

	other := filepath.Join(filepath.Dir(e.defaultBundle), "index.android.bundle")
	require.NoError(t, os.WriteFile(other, []byte("android"), 0o644))

	out, err := execute(t, "resolve", "--name", "index", "--ext", ".android.bundle")
	require.NoError(t, err)
	require.Equal(t, other+"\n", out)
}

func TestResolveDefaultMissing(t *testing.T) {
	setupCLI(t)
	t.Setenv("BL_BUNDLE_NAME", "absent")

	out, err := execute(t, "resolve")
	require.ErrorIs(t, err, locator.ErrDefaultResourceMissing)
	require.Empty(t, out)
}

func TestStatus(t *testing.T) {
	e := setupCLI(t)

	out, err := execute(t, "status")
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(e.dataDir, locator.BundleDirName, locator.MarkerFileName))
	require.Contains(t, out, "false")
	require.Contains(t, out, e.defaultBundle)

	bundle := e.writeDownloadedBundle(t)

	out, err = execute(t, "status")
	require.NoError(t, err)
	require.Contains(t, out, "true")
	require.Contains(t, out, bundle)
}

func TestStatusDefaultMissing(t *testing.T) {
	setupCLI(t)
	t.Setenv("BL_BUNDLE_EXT", "missing")

	out, err := execute(t, "status")
	require.ErrorIs(t, err, locator.ErrDefaultResourceMissing)
	require.Contains(t, out, locator.CodeDefaultResourceMissing)
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
