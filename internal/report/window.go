package report

import (
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"github.com/pkg/errors"
	"time"
)

// NewWeeklyWindow 根据锚定日期计算上一周的周一到周一区间。
// start = anchor - (weekday(anchor)+7)天，end = start + 7天，
// 其中weekday以周一为0。例如2024-08-29对应[2024-08-19, 2024-08-26)
func NewWeeklyWindow(anchor string) (core.WeeklyWindow, error) {
	t, err := time.Parse(core.DateLayout, anchor)
	if err != nil {
		return core.WeeklyWindow{}, errors.Wrap(err, "锚定日期["+anchor+"]格式错误")
	}

	weekday := (int(t.Weekday()) + 6) % 7 // time.Weekday以周日为0，转为周一为0
	start := t.AddDate(0, 0, -(weekday + 7))
	return core.WeeklyWindow{
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}, nil
}

// FilterByWindow 保留date落在区间内的记录
func FilterByWindow(records []*core.RunRecord, window core.WeeklyWindow) []*core.RunRecord {
	filtered := make([]*core.RunRecord, 0, len(records))
	for _, rec := range records {
		if window.Contains(rec.Date) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
