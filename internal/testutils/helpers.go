package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleFramework is a small framework file in the canonical on-disk layout.
// Loading and saving it unchanged must reproduce it byte for byte.
const SampleFramework = `{
  "tactics": {
    "id": "T0000",
    "title": "tactics",
    "description": "Methods and techniques used to execute fraudulent operations",
    "items": [
      {
        "id": "T1",
        "title": "Account Takeover",
        "description": "Gaining control",
        "items": [
          {
            "id": "TQ1",
            "title": "SIM swap",
            "description": "Porting the number",
            "items": []
          }
        ]
      }
    ]
  }
}
`

// WriteFramework writes content to name inside a fresh temp dir and returns
// the absolute path. It fails the test immediately on error.
func WriteFramework(t *testing.T, name, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp file")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0644), "Failed to write framework file")
	return absPath
}
