package report

import (
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"github.com/spf13/afero"
	"log"
	"os"
	"sort"
)

// Reporter 串联整个周报流程：读取记录、按周窗口过滤、逐企业聚合并输出。
// 单线程批处理，整表驻留内存
type Reporter struct {
	config *Config
	fs     afero.Fs
	logger *log.Logger
}

// Result 记录一次批处理中各企业的成败。某个企业失败不会中断其余企业，
// 但失败的企业不会有输出文件
type Result struct {
	Window    core.WeeklyWindow
	Succeeded []string
	Failed    map[string]error
}

func NewReporter(config *Config) *Reporter {
	return &Reporter{
		config: config,
		fs:     afero.NewOsFs(),
		logger: log.New(os.Stdout, "Reporter: ", log.LstdFlags|log.Lmsgprefix|log.Lshortfile),
	}
}

// Run 执行一次周报计算。锚定日期非法或输入表读取失败时立即返回错误；
// 输入文件不存在时返回(nil, nil)，表示本次无事可做。
// 企业处理过程中的错误收集在Result.Failed中，不会向上抛出
func (r *Reporter) Run() (*Result, error) {
	window, err := NewWeeklyWindow(r.config.TargetDate)
	if err != nil {
		return nil, err
	}
	r.logger.Printf("统计区间为%s到%s\n",
		window.Start.Format(core.DateLayout), window.End.Format(core.DateLayout))

	store := NewRecordStore(r.fs, r.config.InputFile, r.config.OutputDir)
	records, err := store.Load()
	if err != nil {
		return nil, err
	}
	if records == nil {
		return nil, nil
	}

	windowed := FilterByWindow(records, window)
	r.logger.Printf("窗口内共%d条记录\n", len(windowed))

	byCompany := make(map[string][]*core.RunRecord)
	for _, rec := range windowed {
		byCompany[rec.CompanyName] = append(byCompany[rec.CompanyName], rec)
	}
	companies := make([]string, 0, len(byCompany))
	for company := range byCompany {
		companies = append(companies, company)
	}
	sort.Strings(companies)

	aggregator := NewAggregator(r.config.MasterNodeGpuCount, r.config.IgnoreTags)
	writer := NewReportWriter(r.fs, r.config.OutputDir)

	result := &Result{
		Window:    window,
		Succeeded: make([]string, 0, len(companies)),
		Failed:    make(map[string]error),
	}
	for _, company := range companies {
		summaries, err := aggregator.Summarize(byCompany[company])
		if err != nil {
			r.logger.Printf("企业%s聚合失败：%+v\n", company, err)
			result.Failed[company] = err
			continue
		}
		err = writer.Write(company, summaries, window)
		if err != nil {
			r.logger.Printf("企业%s输出失败：%+v\n", company, err)
			result.Failed[company] = err
			continue
		}
		result.Succeeded = append(result.Succeeded, company)
	}

	r.logger.Printf("处理完毕，成功%d个企业，失败%d个企业\n",
		len(result.Succeeded), len(result.Failed))
	return result, nil
}
