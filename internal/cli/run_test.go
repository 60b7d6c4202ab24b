package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/ttp/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFramework = testutils.SampleFramework

func writeFramework(t *testing.T, content string) string {
	t.Helper()
	return testutils.WriteFramework(t, "dataset.json", content)
}

func TestExecute_MissingFileStartsFromSkeleton(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	out := &bytes.Buffer{}

	err := Execute(RunOptions{
		Path: path,
		In:   strings.NewReader(lines("2", "root", "T1", "Phishing", "Lures", "4")),
		Out:  out,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Starting from a fresh skeleton.")
	assert.NotContains(t, out.String(), "Fraud TTP framework editor", "no banner when output is not a terminal")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "T1"`)
	assert.Contains(t, string(data), `"title": "Phishing"`)
}

func TestExecute_RoundTripPreservesFile(t *testing.T) {
	path := writeFramework(t, sampleFramework)

	err := Execute(RunOptions{Path: path, In: strings.NewReader(lines("4")), Out: &bytes.Buffer{}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleFramework, string(data))
}

func TestExecute_MalformedFileFallsBack(t *testing.T) {
	path := writeFramework(t, `{"tactics": [`)
	out := &bytes.Buffer{}

	err := Execute(RunOptions{Path: path, In: strings.NewReader(lines("1", "5")), Out: out})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Failed to read")
	assert.Contains(t, out.String(), "Creating fresh skeleton")
	assert.Contains(t, out.String(), "T0000 — tactics")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"tactics": [`, string(data), "discarding leaves the bad file alone")
}

func TestExecute_InterruptIsGraceful(t *testing.T) {
	path := writeFramework(t, sampleFramework)
	out := &bytes.Buffer{}

	// Input ends in the middle of the add protocol.
	err := Execute(RunOptions{Path: path, In: strings.NewReader(lines("2", "T1")), Out: out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Interrupted by user. Goodbye!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleFramework, string(data))
}

func TestExecute_SaveFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := Execute(RunOptions{
		Path: filepath.Join(blocker, "dataset.json"),
		In:   strings.NewReader(lines("4")),
		Out:  &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save framework")
}

func TestExecute_BackupKeepsPreviousVersion(t *testing.T) {
	path := writeFramework(t, sampleFramework)

	err := Execute(RunOptions{
		Path:   path,
		Backup: true,
		In:     strings.NewReader(lines("3", "TQ1", "y", "4")),
		Out:    &bytes.Buffer{},
	})
	require.NoError(t, err)

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, sampleFramework, string(backup))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "TQ1")
}

func TestExecute_NoBackupByDefault(t *testing.T) {
	path := writeFramework(t, sampleFramework)

	require.NoError(t, Execute(RunOptions{
		Path: path,
		In:   strings.NewReader(lines("4")),
		Out:  &bytes.Buffer{},
	}))

	_, err := os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err))
}

func TestShow(t *testing.T) {
	path := writeFramework(t, sampleFramework)

	t.Run("Plain", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, Show(ShowOptions{Path: path, Out: out}))
		assert.Equal(t, "T0000 — tactics\n  ├─ T1 — Account Takeover\n    ├─ TQ1 — SIM swap\n", out.String())
	})

	t.Run("Rich", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, Show(ShowOptions{Path: path, Rich: true, Out: out}))
		assert.Contains(t, out.String(), "Account Takeover")
	})

	t.Run("Missing file", func(t *testing.T) {
		err := Show(ShowOptions{Path: filepath.Join(t.TempDir(), "nope.json"), Out: &bytes.Buffer{}})
		assert.Error(t, err)
	})
}

func TestGraph(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Graph(writeFramework(t, sampleFramework), out))
	assert.Contains(t, out.String(), "n1[\"T1 Account Takeover\"]")
	assert.Contains(t, out.String(), "n1 --> n2")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(writeFramework(t, sampleFramework)))

	bad := strings.Replace(sampleFramework, `"id": "TQ1"`, `"id": "T1"`, 1)
	err := Validate(writeFramework(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate id: 'T1'")
}
