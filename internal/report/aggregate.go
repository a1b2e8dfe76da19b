package report

import (
	"fmt"
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"github.com/pkg/errors"
	"math"
	"sort"
)

// Aggregator 对单个企业在周窗口内的记录按项目分组，计算五项指标。
// 分组用显式的map累加器实现，不依赖任何表格处理库
type Aggregator struct {
	masterNodeGpuCount int
	tagFilter          *TagFilter
}

func NewAggregator(masterNodeGpuCount int, ignoreTags []string) *Aggregator {
	if masterNodeGpuCount <= 0 {
		masterNodeGpuCount = core.DefaultMasterNodeGpuCount
	}
	return &Aggregator{
		masterNodeGpuCount: masterNodeGpuCount,
		tagFilter:          NewTagFilter(ignoreTags),
	}
}

type projectAccumulator struct {
	totalHours  float64
	runs        map[string]struct{}
	masterRuns  map[string]struct{}
	overlapRuns map[string]struct{}
	ignoreRuns  map[string]struct{}
}

func newProjectAccumulator() *projectAccumulator {
	return &projectAccumulator{
		runs:        make(map[string]struct{}),
		masterRuns:  make(map[string]struct{}),
		overlapRuns: make(map[string]struct{}),
		ignoreRuns:  make(map[string]struct{}),
	}
}

// Summarize 计算每个项目一行的周报。records应当是同一企业、已过滤到
// 周窗口内的记录。没有命中某项指标的项目在该列得到整数0而不是缺失值
func (a *Aggregator) Summarize(records []*core.RunRecord) ([]*core.ProjectSummary, error) {
	overlaps := DetectOverlaps(records)

	accumulators := make(map[string]*projectAccumulator)
	for _, rec := range records {
		acc, ok := accumulators[rec.Project]
		if !ok {
			acc = newProjectAccumulator()
			accumulators[rec.Project] = acc
		}

		// GPU时 = 持续小时数 × GPU数量，这是计费口径
		acc.totalHours += rec.DurationHour * float64(rec.GpuCount)
		acc.runs[rec.RunId] = struct{}{}

		if rec.GpuCount >= a.masterNodeGpuCount {
			acc.masterRuns[rec.RunId] = struct{}{}
		}
		if overlaps[rec] {
			acc.overlapRuns[rec.RunId] = struct{}{}
		}

		ignored, err := a.tagFilter.Ignored(rec.Tags)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("RunId为%s的记录标签解码失败", rec.RunId))
		}
		if ignored {
			acc.ignoreRuns[rec.RunId] = struct{}{}
		}
	}

	summaries := make([]*core.ProjectSummary, 0, len(accumulators))
	for project, acc := range accumulators {
		summaries = append(summaries, &core.ProjectSummary{
			Project:        project,
			TotalHours:     math.Round(acc.totalHours*100) / 100,
			TotalRuns:      len(acc.runs),
			MasterNodeRuns: len(acc.masterRuns),
			OverlapRuns:    len(acc.overlapRuns),
			IgnoreRuns:     len(acc.ignoreRuns),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Project < summaries[j].Project
	})

	return summaries, nil
}
