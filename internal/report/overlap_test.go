package report

import (
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestDetectOverlaps(t *testing.T) {
	t0 := time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)

	recA := &core.RunRecord{
		RunId: "a", Project: "p1", HostName: "host1",
		CreatedAt: t0, UpdatedAt: t0.Add(2 * time.Hour),
	}
	recB := &core.RunRecord{
		RunId: "b", Project: "p1", HostName: "host1",
		CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(3 * time.Hour),
	}

	flagged := DetectOverlaps([]*core.RunRecord{recB, recA})
	assert.False(t, flagged[recA]) // 分区内第一条没有前驱
	assert.True(t, flagged[recB])
}

func TestDetectOverlapsDifferentPartition(t *testing.T) {
	t0 := time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)

	recA := &core.RunRecord{
		RunId: "a", Project: "p1", HostName: "host1",
		CreatedAt: t0, UpdatedAt: t0.Add(2 * time.Hour),
	}
	// 区间重叠，但主机不同，不算重叠
	recB := &core.RunRecord{
		RunId: "b", Project: "p1", HostName: "host2",
		CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(3 * time.Hour),
	}
	// 区间重叠，但项目不同
	recC := &core.RunRecord{
		RunId: "c", Project: "p2", HostName: "host1",
		CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(3 * time.Hour),
	}

	flagged := DetectOverlaps([]*core.RunRecord{recA, recB, recC})
	assert.Len(t, flagged, 0)
}

func TestDetectOverlapsTouchingIntervals(t *testing.T) {
	t0 := time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)

	recA := &core.RunRecord{
		RunId: "a", Project: "p1", HostName: "host1",
		CreatedAt: t0, UpdatedAt: t0.Add(time.Hour),
	}
	// 首尾相接不算重叠，必须严格早于前一条的updated_at
	recB := &core.RunRecord{
		RunId: "b", Project: "p1", HostName: "host1",
		CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(2 * time.Hour),
	}

	flagged := DetectOverlaps([]*core.RunRecord{recA, recB})
	assert.Len(t, flagged, 0)
}

func TestDetectOverlapsOnlyAgainstPrevious(t *testing.T) {
	t0 := time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)

	// A覆盖很长区间，B与A重叠，C只与A重叠而与B不重叠。
	// 按created_at顺序C的前驱是B，因此C不标记
	recA := &core.RunRecord{
		RunId: "a", Project: "p1", HostName: "host1",
		CreatedAt: t0, UpdatedAt: t0.Add(10 * time.Hour),
	}
	recB := &core.RunRecord{
		RunId: "b", Project: "p1", HostName: "host1",
		CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(2 * time.Hour),
	}
	recC := &core.RunRecord{
		RunId: "c", Project: "p1", HostName: "host1",
		CreatedAt: t0.Add(3 * time.Hour), UpdatedAt: t0.Add(4 * time.Hour),
	}

	flagged := DetectOverlaps([]*core.RunRecord{recC, recA, recB})
	assert.True(t, flagged[recB])
	assert.False(t, flagged[recC])
}
