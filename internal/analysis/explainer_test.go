package analysis

import (
	"context"
	"testing"

	"resume-match-go/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitSentencesBoundary 在 . ! ? 后断句并过滤短片段
func TestSplitSentencesBoundary(t *testing.T) {
	text := "Built scalable data pipelines in Python. Led a team of five engineers! Short. What about container orchestration?"
	sentences := SplitSentences(text)

	require.Len(t, sentences, 3)
	assert.Equal(t, "Built scalable data pipelines in Python.", sentences[0])
	assert.Equal(t, "Led a team of five engineers!", sentences[1])
	assert.Equal(t, "What about container orchestration?", sentences[2])
}

// TestSplitSentencesDiscardsShortFragments 不足20字符的片段（标题、项目符号）被丢弃
func TestSplitSentencesDiscardsShortFragments(t *testing.T) {
	assert.Empty(t, SplitSentences("Skills. Python. SQL."))
	assert.Empty(t, SplitSentences(""))
}

// TestExplainTopKAndOrdering 返回至多top_k句，按得分降序
func TestExplainTopKAndOrdering(t *testing.T) {
	explainer, err := NewSentenceExplainer(parser.NewHashEmbedder(256), 2)
	require.NoError(t, err)

	resume := "Designed python microservices with docker containers. " +
		"Maintained legacy spreadsheets for the accounting team. " +
		"Deployed python services using docker and kubernetes clusters."
	jd := "python docker engineer"

	explanations, err := explainer.Explain(context.Background(), resume, jd)
	require.NoError(t, err)
	require.Len(t, explanations, 2, "top_k=2时最多返回两句")

	assert.GreaterOrEqual(t, explanations[0].Score, explanations[1].Score, "按得分降序")
	for _, e := range explanations {
		assert.GreaterOrEqual(t, e.Score, 0.0)
		assert.LessOrEqual(t, e.Score, 100.0)
	}
	// 无关的句子不应挤进前两名
	for _, e := range explanations {
		assert.NotContains(t, e.Sentence, "spreadsheets")
	}
}

// TestExplainNoSurvivingSentences 没有句子通过过滤时返回空结果而不是错误
func TestExplainNoSurvivingSentences(t *testing.T) {
	explainer, err := NewSentenceExplainer(parser.NewHashEmbedder(128), 5)
	require.NoError(t, err)

	explanations, err := explainer.Explain(context.Background(), "Skills. SQL.", "python engineer")
	require.NoError(t, err)
	assert.Empty(t, explanations)
}

// TestNewSentenceExplainerDefaults topK<=0时回落到默认值
func TestNewSentenceExplainerDefaults(t *testing.T) {
	_, err := NewSentenceExplainer(nil, 5)
	assert.Error(t, err, "缺少嵌入后端是编程错误")

	explainer, err := NewSentenceExplainer(parser.NewHashEmbedder(64), 0)
	require.NoError(t, err)
	assert.NotNil(t, explainer)
}
