package render

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesMissingInput(t *testing.T) {
	_, err := Pages(filepath.Join(t.TempDir(), "absent.pdf"), t.TempDir(), 150)
	assert.Error(t, err)
}

func TestPages(t *testing.T) {
	testPDF := filepath.Join("testdata", "sample.pdf")
	if _, err := os.Stat(testPDF); os.IsNotExist(err) {
		t.Skipf("Test PDF not found at %s, skipping test", testPDF)
	}

	outDir := t.TempDir()
	images, err := Pages(testPDF, outDir, 72)
	require.NoError(t, err)
	require.NotEmpty(t, images)

	for i, img := range images {
		assert.Equal(t, i+1, img.PageNumber)
		assert.Equal(t, filepath.Join(outDir, fmt.Sprintf("page_%d.png", i+1)), img.Path)
		assert.Positive(t, img.Width)
		assert.Positive(t, img.Height)

		info, err := os.Stat(img.Path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
