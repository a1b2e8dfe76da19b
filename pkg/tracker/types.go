// Package tracker 定义本报表批处理的外部协作方接口。
// 上游从实验跟踪服务拉取运行记录并生成原始表文件，下游的看板
// 可用性检查独立轮询已部署的报表页面。两者的实现均不在本仓库内
package tracker

import "time"

// RunTableSource 从实验跟踪服务获取运行记录，生成原始CSV表，
// 返回生成文件的路径。本仓库只以文件路径为输入消费该表
type RunTableSource interface {
	FetchRunTable(start, end time.Time) (string, error)
}

// DashboardChecker 轮询已部署的报表看板，确认其可用。
// 与报表计算没有数据依赖
type DashboardChecker interface {
	Check(targetDate time.Time) error
}
