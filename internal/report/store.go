package report

import (
	"encoding/csv"
	"fmt"
	"github.com/packagewjx/gpu-usage-report/pkg/core"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"io"
	"log"
	"os"
	"strconv"
	"time"
)

// timestampLayouts 是时间戳列接受的格式。上游以ISO格式导出，
// 秒的小数部分与时区可能缺失
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	core.DateLayout,
}

func NewRecordStore(fs afero.Fs, inputFile string, outputDir string) RecordStore {
	return &csvRecordStore{
		fs:        fs,
		inputFile: inputFile,
		outputDir: outputDir,
		logger:    log.New(os.Stdout, "RecordStore: ", log.LstdFlags|log.Lmsgprefix|log.Lshortfile),
	}
}

type csvRecordStore struct {
	fs        afero.Fs
	inputFile string
	outputDir string
	logger    *log.Logger
}

var _ RecordStore = &csvRecordStore{}

func (s *csvRecordStore) Load() ([]*core.RunRecord, error) {
	err := s.fs.MkdirAll(s.outputDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "创建输出目录"+s.outputDir+"失败")
	}

	exist, err := afero.Exists(s.fs, s.inputFile)
	if err != nil {
		return nil, errors.Wrap(err, "检查输入文件"+s.inputFile+"出错")
	}
	if !exist {
		s.logger.Printf("输入文件%s不存在，跳过本次计算\n", s.inputFile)
		return nil, nil
	}

	fin, err := s.fs.Open(s.inputFile)
	if err != nil {
		return nil, errors.Wrap(err, "打开输入文件"+s.inputFile+"失败")
	}
	defer func() {
		_ = fin.Close()
	}()

	reader := csv.NewReader(fin)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "读取表头失败")
	}

	colIdx := make(map[string]int)
	for i, name := range header {
		colIdx[name] = i
	}
	for _, name := range []string{core.ColDate, core.ColCompanyName, core.ColProject,
		core.ColRunId, core.ColHostName, core.ColGpuCount, core.ColDurationHour,
		core.ColTags, core.ColCreatedAt, core.ColUpdatedAt, core.ColLoggedAt} {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("输入表缺少%s列", name)
		}
	}

	records := make([]*core.RunRecord, 0, 1024)
	var row []string
	cnt := 1 // 表头为第1行
	for row, err = reader.Read(); err == nil; row, err = reader.Read() {
		cnt++
		rec, err := parseRunRecord(row, colIdx)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("第%d行记录解析失败", cnt))
		}
		records = append(records, rec)
	}
	if err != io.EOF {
		return nil, errors.Wrap(err, "读取运行记录出错")
	}

	s.logger.Printf("读取了%d条运行记录\n", len(records))
	return records, nil
}

func parseRunRecord(row []string, colIdx map[string]int) (*core.RunRecord, error) {
	gpuCount, err := strconv.ParseInt(row[colIdx[core.ColGpuCount]], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("gpu_count格式错误，数据为[%s]", row[colIdx[core.ColGpuCount]]))
	}
	durationHour, err := strconv.ParseFloat(row[colIdx[core.ColDurationHour]], 64)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("duration_hour格式错误，数据为[%s]", row[colIdx[core.ColDurationHour]]))
	}

	createdAt, err := parseTimestamp(row[colIdx[core.ColCreatedAt]])
	if err != nil {
		return nil, errors.Wrap(err, "created_at格式错误")
	}
	updatedAt, err := parseTimestamp(row[colIdx[core.ColUpdatedAt]])
	if err != nil {
		return nil, errors.Wrap(err, "updated_at格式错误")
	}
	loggedAt, err := parseTimestamp(row[colIdx[core.ColLoggedAt]])
	if err != nil {
		return nil, errors.Wrap(err, "logged_at格式错误")
	}
	date, err := parseTimestamp(row[colIdx[core.ColDate]])
	if err != nil {
		return nil, errors.Wrap(err, "date格式错误")
	}

	return &core.RunRecord{
		RunId:        row[colIdx[core.ColRunId]],
		CompanyName:  row[colIdx[core.ColCompanyName]],
		Project:      row[colIdx[core.ColProject]],
		HostName:     row[colIdx[core.ColHostName]],
		GpuCount:     int(gpuCount),
		DurationHour: durationHour,
		Tags:         row[colIdx[core.ColTags]],
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		LoggedAt:     loggedAt,
		Date:         truncateToDay(date),
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析时间戳[%s]", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
