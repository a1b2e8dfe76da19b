package report

import "github.com/packagewjx/gpu-usage-report/pkg/core"

// Config 是一次周报计算的全部参数。阈值与忽略标签集不再硬编码，
// 由调用方显式传入
type Config struct {
	InputFile          string
	OutputDir          string
	TargetDate         string
	IgnoreTags         []string
	MasterNodeGpuCount int
}

type RecordStore interface {
	// Load 读取原始运行记录表。输入文件不存在时返回nil表且无错误，
	// 调用方需要检查nil再继续
	Load() ([]*core.RunRecord, error)
}

type ReportWriter interface {
	Write(company string, summaries []*core.ProjectSummary, window core.WeeklyWindow) error
}

const DefaultOutputDir = "out"
