package report

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseTagList(t *testing.T) {
	tags, err := ParseTagList(`["cuda","train"]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"cuda", "train"}, tags)

	tags, err = ParseTagList(`['other_gpu', 'train']`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"other_gpu", "train"}, tags)

	tags, err = ParseTagList("[]")
	assert.NoError(t, err)
	assert.Len(t, tags, 0)

	// 缺失值当作空列表
	tags, err = ParseTagList("")
	assert.NoError(t, err)
	assert.Len(t, tags, 0)

	// 允许末尾逗号
	tags, err = ParseTagList(`["a",]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, tags)

	// 无引号的标签
	tags, err = ParseTagList(`[cuda, train]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"cuda", "train"}, tags)

	// 转义
	tags, err = ParseTagList(`["a\"b"]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{`a"b`}, tags)
}

func TestParseTagListMalformed(t *testing.T) {
	_, err := ParseTagList(`["a"`)
	assert.Error(t, err)

	_, err = ParseTagList(`["a]`)
	assert.Error(t, err)

	_, err = ParseTagList(`abc`)
	assert.Error(t, err)

	_, err = ParseTagList(`["a"] extra`)
	assert.Error(t, err)

	_, err = ParseTagList(`["a" "b"]`)
	assert.Error(t, err)
}

func TestTagFilterIgnored(t *testing.T) {
	filter := NewTagFilter([]string{"other_gpu", "others_gpu"})

	ignored, err := filter.Ignored(`["other_gpu","train"]`)
	assert.NoError(t, err)
	assert.True(t, ignored)

	ignored, err = filter.Ignored(`["cuda","train"]`)
	assert.NoError(t, err)
	assert.False(t, ignored)

	ignored, err = filter.Ignored(`[]`)
	assert.NoError(t, err)
	assert.False(t, ignored)

	// 标签两侧残留的括号引号在比较前去掉
	ignored, err = filter.Ignored(`["[other_gpu]"]`)
	assert.NoError(t, err)
	assert.True(t, ignored)

	_, err = filter.Ignored(`not a list`)
	assert.Error(t, err)
}
