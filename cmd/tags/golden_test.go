package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ptasevski/blogtidy/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestNormalizePostTagsGolden(t *testing.T) {
	env := testutil.NewTestEnv(t)
	golden := testutil.NewGoldenHelper(t, "testdata/golden")

	input, err := os.ReadFile(filepath.Join("testdata", "post.md"))
	require.NoError(t, err)
	env.WriteFile("post.md", input)

	results, err := NormalizePostTags(Options{Dir: env.RootDir()})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, StatusRewritten, results[0].Status)

	golden.AssertGoldenString("normalized.md", env.ReadFileString("post.md"))
}
