package report

import (
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewReportWriter(fs, "out")

	window, err := NewWeeklyWindow("2024-08-29")
	assert.NoError(t, err)

	summaries := []*core.ProjectSummary{
		{Project: "p1", TotalHours: 12.5, TotalRuns: 3, MasterNodeRuns: 1, OverlapRuns: 0, IgnoreRuns: 2},
		{Project: "p2", TotalHours: 0.333, TotalRuns: 1},
	}

	err = writer.Write("acme", summaries, window)
	assert.NoError(t, err)

	content, err := afero.ReadFile(fs, "out/2024-08-26/acme_2024-08-26.csv")
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "project,Total hours,Total runs,master_node_runs,overlap_runs,ignore_runs", lines[0])
	assert.Equal(t, "p1,12.50,3,1,0,2", lines[1])
	assert.Equal(t, "p2,0.33,1,0,0,0", lines[2])
}

func TestWriteReportEmptySummaries(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewReportWriter(fs, "out")

	window, err := NewWeeklyWindow("2024-08-29")
	assert.NoError(t, err)

	err = writer.Write("acme", nil, window)
	assert.NoError(t, err)

	// 没有数据也输出只有表头的文件
	content, err := afero.ReadFile(fs, "out/2024-08-26/acme_2024-08-26.csv")
	assert.NoError(t, err)
	assert.Equal(t, "project,Total hours,Total runs,master_node_runs,overlap_runs,ignore_runs",
		strings.TrimSpace(string(content)))
}
