package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everview/everview/pkg/photo"
	"github.com/everview/everview/pkg/site"
)

func fixture(t *testing.T) (string, string) {
	t.Helper()
	in := t.TempDir()
	for _, rel := range []string{
		"bedrooms/master-suite-1.jpg",
		"bedrooms/bedroom-2.jpg",
		"bedrooms/garden/garden-king-1.jpg",
		"living/lounge-1.jpg",
	} {
		p := filepath.Join(in, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("jpeg"), 0o644))
	}

	cat := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(cat, []byte("lounge-2:\n  tags: [living]\n"), 0o644))
	return in, cat
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBedroomsCommand(t *testing.T) {
	in, cat := fixture(t)
	out, err := run(t, "bedrooms", "--in", in, "--catalog", cat)
	require.NoError(t, err)

	assert.Contains(t, out, "3 photos in \"bedrooms\"")
	assert.Contains(t, out, "master      master-suite-1")
	assert.Contains(t, out, "oceanking   (none)")
	assert.Contains(t, out, "gardenking  bedroom-2 garden-king-1")
	assert.Contains(t, out, "ground      (none)")
}

func TestTagsCommand(t *testing.T) {
	in, cat := fixture(t)
	out, err := run(t, "tags", "--in", in, "--catalog", cat)
	require.NoError(t, err)
	assert.Contains(t, out, "    3 bedrooms\n")
}

func TestLintCommand(t *testing.T) {
	in, cat := fixture(t)
	out, err := run(t, "lint", "--in", in, "--catalog", cat)
	require.Error(t, err)
	assert.Contains(t, out, `lounge-2: no such photo (did you mean "lounge-1"?)`)
}

func TestWatchDirs(t *testing.T) {
	in, _ := fixture(t)
	all, err := photo.Find(in)
	require.NoError(t, err)

	c := site.DefaultConfig()
	c.InDir = in
	got := watchDirs(c, &site.Assembly{Photos: all})
	assert.Equal(t, []string{
		in,
		filepath.Join(in, "bedrooms"),
		filepath.Join(in, "bedrooms", "garden"),
		filepath.Join(in, "living"),
	}, got)
}

func TestDotEnvDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"EVERVIEW_IN=/env/in\nEVERVIEW_OUT=/env/out\nEVERVIEW_TITLE=EnvTitle\nEVERVIEW_ADDR=:9999\nEVERVIEW_CATALOG=/env/catalog.yaml\n"), 0o644))

	for _, k := range []string{"EVERVIEW_IN", "EVERVIEW_OUT", "EVERVIEW_TITLE", "EVERVIEW_ADDR", "EVERVIEW_CATALOG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, loadDotEnv())

	root := &cobra.Command{Use: "everview"}
	addRootFlags(root)
	b := &cobra.Command{Use: "build"}
	addBuildFlags(b)

	assert.Equal(t, "/env/in", root.PersistentFlags().Lookup("in").DefValue)
	assert.Equal(t, "/env/catalog.yaml", root.PersistentFlags().Lookup("catalog").DefValue)
	assert.Equal(t, "/env/out", b.Flags().Lookup("out").DefValue)
	assert.Equal(t, "EnvTitle", b.Flags().Lookup("title").DefValue)
	assert.Equal(t, ":9999", b.Flags().Lookup("addr").DefValue)
}

func TestDotEnvMissing(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.True(t, os.IsNotExist(loadDotEnv()))
}
