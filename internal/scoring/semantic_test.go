package scoring

import (
	"context"
	"testing"

	"resume-match-go/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSemanticScorerNilEmbedder 缺少嵌入后端是编程错误
func TestNewSemanticScorerNilEmbedder(t *testing.T) {
	_, err := NewSemanticScorer(nil)
	assert.Error(t, err)
}

// TestSemanticScoreAllIdenticalAndEmpty 与JD相同的候选接近满分，空候选得0
func TestSemanticScoreAllIdenticalAndEmpty(t *testing.T) {
	scorer, err := NewSemanticScorer(parser.NewHashEmbedder(256))
	require.NoError(t, err)

	jd := "Looking for a Python and Docker engineer"
	scores, err := scorer.ScoreAll(context.Background(), []string{jd, ""}, jd)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.InDelta(t, 100.0, scores[0], 0.01, "与JD逐字相同的候选应接近满分")
	assert.Equal(t, 0.0, scores[1], "空候选的零向量相似度为0")
	assert.Greater(t, scores[0], scores[1])
}

// TestSemanticScoreAllOrderPreserved 输出顺序必须与输入候选顺序一致
func TestSemanticScoreAllOrderPreserved(t *testing.T) {
	scorer, err := NewSemanticScorer(parser.NewHashEmbedder(256))
	require.NoError(t, err)

	jd := "python docker engineer"
	scores, err := scorer.ScoreAll(context.Background(), []string{
		"completely unrelated gardening text",
		"python docker engineer",
	}, jd)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Less(t, scores[0], scores[1], "更相关的候选在其输入位置上得分更高")
}

// TestSemanticScoreAllDeterminism 固定后端下重复运行结果逐位一致
func TestSemanticScoreAllDeterminism(t *testing.T) {
	scorer, err := NewSemanticScorer(parser.NewHashEmbedder(256))
	require.NoError(t, err)

	candidates := []string{"python engineer with docker", "java developer"}
	jd := "python docker"

	first, err := scorer.ScoreAll(context.Background(), candidates, jd)
	require.NoError(t, err)
	second, err := scorer.ScoreAll(context.Background(), candidates, jd)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSemanticScoreAllEmptyBatch 空候选批次直接返回空切片
func TestSemanticScoreAllEmptyBatch(t *testing.T) {
	scorer, err := NewSemanticScorer(parser.NewHashEmbedder(64))
	require.NoError(t, err)

	scores, err := scorer.ScoreAll(context.Background(), nil, "jd")
	require.NoError(t, err)
	assert.Empty(t, scores)
}

// TestSemanticScoreAllRange 得分落在[0,100]
func TestSemanticScoreAllRange(t *testing.T) {
	scorer, err := NewSemanticScorer(parser.NewHashEmbedder(128))
	require.NoError(t, err)

	scores, err := scorer.ScoreAll(context.Background(),
		[]string{"python", "gardening", ""}, "python docker")
	require.NoError(t, err)
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}
