package report

import (
	"encoding/csv"
	"fmt"
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"path/filepath"
	"strconv"
)

var reportHeader = []string{"project", "Total hours", "Total runs",
	"master_node_runs", "overlap_runs", "ignore_runs"}

func NewReportWriter(fs afero.Fs, outputDir string) ReportWriter {
	return &csvReportWriter{fs: fs, outputDir: outputDir}
}

type csvReportWriter struct {
	fs        afero.Fs
	outputDir string
}

var _ ReportWriter = &csvReportWriter{}

// Write 输出一个企业的周报表，路径为{outputDir}/{窗口结束日}/{企业名}_{窗口结束日}.csv。
// 不做跨企业的汇总文件
func (w *csvReportWriter) Write(company string, summaries []*core.ProjectSummary, window core.WeeklyWindow) error {
	endDate := window.End.Format(core.DateLayout)
	dir := filepath.Join(w.outputDir, endDate)
	err := w.fs.MkdirAll(dir, 0755)
	if err != nil {
		return errors.Wrap(err, "创建目录"+dir+"失败")
	}

	fileName := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", company, endDate))
	fout, err := w.fs.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "创建输出文件"+fileName+"失败")
	}
	defer func() {
		_ = fout.Close()
	}()

	writer := csv.NewWriter(fout)
	defer writer.Flush()

	err = writer.Write(reportHeader)
	if err != nil {
		return errors.Wrap(err, "写入表头错误")
	}

	for i, s := range summaries {
		record := []string{
			s.Project,
			fmt.Sprintf("%.2f", s.TotalHours),
			strconv.Itoa(s.TotalRuns),
			strconv.Itoa(s.MasterNodeRuns),
			strconv.Itoa(s.OverlapRuns),
			strconv.Itoa(s.IgnoreRuns),
		}
		err = writer.Write(record)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("写入第%d条数据出错", i))
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "刷出"+fileName+"失败")
}
