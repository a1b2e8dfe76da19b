package report

import (
	"fmt"
	"strings"
)

// TagFilter 判断记录的标签是否命中配置的忽略集合
type TagFilter struct {
	ignore map[string]struct{}
}

func NewTagFilter(ignoreTags []string) *TagFilter {
	ignore := make(map[string]struct{}, len(ignoreTags))
	for _, tag := range ignoreTags {
		ignore[tag] = struct{}{}
	}
	return &TagFilter{ignore: ignore}
}

// Ignored 解码标签文本后与忽略集合求交集，非空则该记录被忽略
func (f *TagFilter) Ignored(rawTags string) (bool, error) {
	tags, err := ParseTagList(rawTags)
	if err != nil {
		return false, err
	}
	for _, tag := range tags {
		if _, ok := f.ignore[strings.Trim(tag, `[]"'`)]; ok {
			return true, nil
		}
	}
	return false, nil
}

// ParseTagList 解析形如["a","b"]的标签列表文本。标签来自外部，
// 因此只做结构化解析，只产生字符串，绝不求值
func ParseTagList(s string) ([]string, error) {
	runes := []rune(s)
	i := skipSpaces(runes, 0)
	if i >= len(runes) {
		// 缺失值当作空列表
		return nil, nil
	}
	if runes[i] != '[' {
		return nil, fmt.Errorf("标签文本[%s]不是列表字面量", s)
	}
	i++

	tags := make([]string, 0, 4)
	for {
		i = skipSpaces(runes, i)
		if i >= len(runes) {
			return nil, fmt.Errorf("标签文本[%s]没有闭合", s)
		}
		if runes[i] == ']' {
			i++
			break
		}

		var tag string
		var err error
		if runes[i] == '"' || runes[i] == '\'' {
			tag, i, err = scanQuoted(runes, i)
		} else {
			tag, i, err = scanBare(runes, i)
		}
		if err != nil {
			return nil, fmt.Errorf("标签文本[%s]解析失败：%v", s, err)
		}
		tags = append(tags, tag)

		i = skipSpaces(runes, i)
		if i >= len(runes) {
			return nil, fmt.Errorf("标签文本[%s]没有闭合", s)
		}
		switch runes[i] {
		case ',':
			i++
		case ']':
		default:
			return nil, fmt.Errorf("标签文本[%s]第%d个字符非法", s, i+1)
		}
	}

	if skipSpaces(runes, i) != len(runes) {
		return nil, fmt.Errorf("标签文本[%s]在列表之后还有多余内容", s)
	}
	return tags, nil
}

func skipSpaces(runes []rune, i int) int {
	for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
		i++
	}
	return i
}

// scanQuoted 读取引号包围的标签，支持反斜杠转义
func scanQuoted(runes []rune, i int) (string, int, error) {
	quote := runes[i]
	i++
	builder := strings.Builder{}
	for i < len(runes) {
		switch runes[i] {
		case quote:
			return builder.String(), i + 1, nil
		case '\\':
			if i+1 >= len(runes) {
				return "", i, fmt.Errorf("第%d个字符处转义不完整", i+1)
			}
			builder.WriteRune(runes[i+1])
			i += 2
		default:
			builder.WriteRune(runes[i])
			i++
		}
	}
	return "", i, fmt.Errorf("引号没有闭合")
}

// scanBare 读取无引号的标签，到逗号或右括号为止
func scanBare(runes []rune, i int) (string, int, error) {
	start := i
	for i < len(runes) && runes[i] != ',' && runes[i] != ']' {
		i++
	}
	if i >= len(runes) {
		return "", i, fmt.Errorf("列表没有闭合")
	}
	return strings.TrimSpace(string(runes[start:i])), i, nil
}
