package parser

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashEmbedderDeterminism 相同输入必须产生逐位一致的向量
func TestHashEmbedderDeterminism(t *testing.T) {
	e := NewHashEmbedder(128)
	ctx := context.Background()

	first, err := e.EmbedStrings(ctx, []string{"python docker engineer"})
	require.NoError(t, err)
	second, err := e.EmbedStrings(ctx, []string{"python docker engineer"})
	require.NoError(t, err)

	assert.Equal(t, first, second, "hash嵌入器必须是确定性的")
}

// TestHashEmbedderUnitNorm 非空文本的向量应为单位长度
func TestHashEmbedderUnitNorm(t *testing.T) {
	e := NewHashEmbedder(256)
	vecs, err := e.EmbedStrings(context.Background(), []string{"machine learning with python"})
	require.NoError(t, err)
	require.Len(t, vecs, 1)

	var sq float64
	for _, v := range vecs[0] {
		sq += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(sq), 1e-9, "向量应归一化到单位长度")
}

// TestHashEmbedderEmptyText 空文本产生零向量而不是错误
func TestHashEmbedderEmptyText(t *testing.T) {
	e := NewHashEmbedder(64)
	vecs, err := e.EmbedStrings(context.Background(), []string{""})
	require.NoError(t, err)
	require.Len(t, vecs, 1)
	for _, v := range vecs[0] {
		assert.Zero(t, v)
	}
}

// TestHashEmbedderOrderAndSimilarity 输出顺序与输入一致，相同文本相似度高于无关文本
func TestHashEmbedderOrderAndSimilarity(t *testing.T) {
	e := NewHashEmbedder(512)
	texts := []string{
		"python docker engineer",
		"python docker engineer",
		"completely unrelated gardening hobbies",
	}
	vecs, err := e.EmbedStrings(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	dot := func(a, b []float64) float64 {
		var s float64
		for i := range a {
			s += a[i] * b[i]
		}
		return s
	}

	same := dot(vecs[0], vecs[1])
	diff := dot(vecs[0], vecs[2])
	assert.InDelta(t, 1.0, same, 1e-9, "相同文本的余弦相似度应为1")
	assert.Less(t, diff, same, "无关文本的相似度应低于相同文本")
}
