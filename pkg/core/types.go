package core

import "time"

// RunRecord 是一条任务运行的观测记录。同一个RunId可能有多条记录，
// 例如心跳上报的场景，因此RunId在表中不唯一
type RunRecord struct {
	RunId        string
	CompanyName  string
	Project      string
	HostName     string
	GpuCount     int
	DurationHour float64
	Tags         string // 标签列表的文本编码，例如["a","b"]，由TagFilter解码
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LoggedAt     time.Time
	Date         time.Time // 用于按周过滤的日历日期
}

// WeeklyWindow 是七天的左闭右开区间[Start, End)
type WeeklyWindow struct {
	Start time.Time
	End   time.Time
}

func (w WeeklyWindow) Contains(date time.Time) bool {
	return !date.Before(w.Start) && date.Before(w.End)
}

// ProjectSummary 是每个企业每个项目一行的周报数据
type ProjectSummary struct {
	Project        string
	TotalHours     float64
	TotalRuns      int
	MasterNodeRuns int
	OverlapRuns    int
	IgnoreRuns     int
}

// 输入表的列名
const (
	ColDate         = "date"
	ColCompanyName  = "company_name"
	ColProject      = "project"
	ColRunId        = "run_id"
	ColHostName     = "host_name"
	ColGpuCount     = "gpu_count"
	ColDurationHour = "duration_hour"
	ColTags         = "tags"
	ColCreatedAt    = "created_at"
	ColUpdatedAt    = "updated_at"
	ColLoggedAt     = "logged_at"
)

// DefaultMasterNodeGpuCount 是判断整节点（master node）分配的GPU数量阈值
const DefaultMasterNodeGpuCount = 9

const DateLayout = "2006-01-02"
