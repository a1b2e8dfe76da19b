package report

import (
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"sort"
)

// DetectOverlaps 在每个(project, host_name)分区内按created_at升序排列记录，
// 若某条记录的created_at早于前一条记录的updated_at，则该记录的区间与前一条
// 重叠，标记之。分区内第一条记录没有前驱，永远不标记。
// 这种重叠说明同一主机上的用量可能被重复记录
func DetectOverlaps(records []*core.RunRecord) map[*core.RunRecord]bool {
	type partitionKey struct {
		project string
		host    string
	}

	partitions := make(map[partitionKey][]*core.RunRecord)
	for _, rec := range records {
		key := partitionKey{project: rec.Project, host: rec.HostName}
		partitions[key] = append(partitions[key], rec)
	}

	flagged := make(map[*core.RunRecord]bool, len(records))
	for _, partition := range partitions {
		sort.Slice(partition, func(i, j int) bool {
			if !partition[i].CreatedAt.Equal(partition[j].CreatedAt) {
				return partition[i].CreatedAt.Before(partition[j].CreatedAt)
			}
			// created_at相同时按RunId排，保证结果可复现
			return partition[i].RunId < partition[j].RunId
		})

		for i := 1; i < len(partition); i++ {
			if partition[i].CreatedAt.Before(partition[i-1].UpdatedAt) {
				flagged[partition[i]] = true
			}
		}
	}

	return flagged
}
