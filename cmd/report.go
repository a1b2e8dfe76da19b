/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/packagewjx/gpu-usage-report/internal/report"
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log"
	"time"
)

// Flags for report
const (
	OutputDirFlag          = "output"
	TargetDateFlag         = "target-date"
	IgnoreTagsFlag         = "ignore-tags"
	MasterNodeGpuCountFlag = "master-node-gpu-count"
)

var outputDir string
var targetDate string
var ignoreTags []string
var masterNodeGpuCount int

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report inputFile",
	Short: "读取运行记录表并生成上一周的企业用量周报",
	Long: "读取inputFile指定的运行记录表，取锚定日期所在周的上一周（周一到周一）为\n" +
		"统计区间，按企业与项目汇总GPU时、去重运行数、整节点运行数、区间重叠运行数\n" +
		"与忽略标签运行数，每个企业输出一个csv文件。\n" +
		"定时批处理场景下任何企业的失败只记录日志，不会使进程报错退出。",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("参数错误，必须指定输入文件")
		}
		if targetDate != "" {
			if _, err := time.Parse(core.DateLayout, targetDate); err != nil {
				return fmt.Errorf("锚定日期[%s]格式错误，应当为YYYY-MM-DD", targetDate)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor := targetDate
		if anchor == "" {
			// 不指定时默认取昨天
			anchor = time.Now().AddDate(0, 0, -1).Format(core.DateLayout)
		}

		reporter := report.NewReporter(&report.Config{
			InputFile:          args[0],
			OutputDir:          viper.GetString(OutputDirFlag),
			TargetDate:         anchor,
			IgnoreTags:         viper.GetStringSlice(IgnoreTagsFlag),
			MasterNodeGpuCount: viper.GetInt(MasterNodeGpuCountFlag),
		})

		result, err := reporter.Run()
		if err != nil {
			// 无人值守的批处理，错误只留在日志里，不向外抛出
			log.Printf("本次周报计算失败：%+v\n", err)
			return nil
		}
		if result == nil {
			return nil
		}

		for company, err := range result.Failed {
			log.Printf("企业%s处理失败：%+v\n", company, err)
		}
		log.Printf("周报生成完毕，成功%d个企业，失败%d个企业\n",
			len(result.Succeeded), len(result.Failed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&outputDir, OutputDirFlag, "o", report.DefaultOutputDir,
		"周报输出根目录")
	reportCmd.Flags().StringVarP(&targetDate, TargetDateFlag, "t", "",
		"锚定日期，格式为YYYY-MM-DD。默认为昨天")
	reportCmd.Flags().StringSliceVarP(&ignoreTags, IgnoreTagsFlag, "g", []string{},
		"忽略标签集合。携带这些标签的运行单独计数")
	reportCmd.Flags().IntVarP(&masterNodeGpuCount, MasterNodeGpuCountFlag, "m", core.DefaultMasterNodeGpuCount,
		"判定整节点分配的GPU数量阈值")

	_ = viper.BindPFlag(OutputDirFlag, reportCmd.Flags().Lookup(OutputDirFlag))
	_ = viper.BindPFlag(IgnoreTagsFlag, reportCmd.Flags().Lookup(IgnoreTagsFlag))
	_ = viper.BindPFlag(MasterNodeGpuCountFlag, reportCmd.Flags().Lookup(MasterNodeGpuCountFlag))
}
