package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layoffscli/internal/config"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	paths, err := config.NewPaths(t.TempDir())
	require.NoError(t, err)
	return paths
}

func TestWriteSimpleCSV(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	err := writer.WriteSimpleCSV("summary.csv",
		[]string{"country", "total"},
		[][]string{
			{"United States", "1000"},
			{"Canada", "250"},
		})
	require.NoError(t, err)

	data, err := os.ReadFile(paths.GetReportPath("summary.csv"))
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"), "file starts with a UTF-8 BOM")
	assert.Contains(t, content, "country,total\n")
	assert.Contains(t, content, "United States,1000\n")
}

func TestAppendToCSV(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	require.NoError(t, writer.WriteSimpleCSV("out.csv", []string{"a", "b"}, [][]string{{"1", "2"}}))
	require.NoError(t, writer.AppendToCSV("out.csv", [][]string{{"3", "4"}}))

	data, err := os.ReadFile(paths.GetReportPath("out.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")), "\n")
	assert.Equal(t, []string{"a,b", "1,2", "3,4"}, lines)
}

func TestStreamWriter(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	stream, err := writer.CreateStreamWriter("stream.csv", []string{"company", "total"})
	require.NoError(t, err)

	require.NoError(t, stream.WriteRecord([]string{"Acme", "100"}))
	require.NoError(t, stream.WriteRecord([]string{"Globex", "200"}))
	require.NoError(t, stream.Close())

	data, err := os.ReadFile(paths.GetReportPath("stream.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Globex,200\n")
}

func TestResolvePath(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	abs := filepath.Join(t.TempDir(), "elsewhere.csv")
	assert.Equal(t, abs, writer.resolvePath(abs))
	assert.Equal(t, filepath.Join(paths.CleanedDir, "x.csv"), writer.resolvePath("cleaned/x.csv"))
	assert.Equal(t, filepath.Join(paths.ReportsDir, "x.csv"), writer.resolvePath("x.csv"))
}
