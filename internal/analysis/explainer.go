package analysis

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resume-match-go/internal/constants"
	"resume-match-go/internal/scoring"
	"resume-match-go/internal/types"

	"github.com/cloudwego/eino/components/embedding"
)

// 在 . ! ? 后跟空白处断句
var sentenceBoundary = regexp.MustCompile(`([.!?])\s+`)

// SentenceExplainer 把排名第一文档切成句子，按与JD的语义相似度排序，
// 取前top_k句作为"为什么排第一"的证据
type SentenceExplainer struct {
	embedder embedding.Embedder
	topK     int
}

// NewSentenceExplainer 创建句子解释器。topK<=0 时使用默认值
func NewSentenceExplainer(embedder embedding.Embedder, topK int) (*SentenceExplainer, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder不能为空")
	}
	if topK <= 0 {
		topK = constants.DefaultExplainTopK
	}
	return &SentenceExplainer{embedder: embedder, topK: topK}, nil
}

// SplitSentences 按边界启发式断句，丢弃trim后不足最小长度的片段
// （过滤标题、项目符号等零碎内容，不是真句子）
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	marked := sentenceBoundary.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if len(trimmed) > constants.MinSentenceLength {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// Explain 返回与JD最相近的top_k个句子（百分比得分，两位小数，降序）。
// 没有句子通过长度过滤时返回空结果，不是错误
func (e *SentenceExplainer) Explain(ctx context.Context, resumeText, jdText string) ([]types.Explanation, error) {
	sentences := SplitSentences(resumeText)
	if len(sentences) == 0 {
		return []types.Explanation{}, nil
	}

	texts := make([]string, 0, len(sentences)+1)
	texts = append(texts, jdText)
	texts = append(texts, sentences...)

	vectors, err := e.embedder.EmbedStrings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("句子嵌入失败: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("嵌入结果数量不匹配: 期望%d, 实际%d", len(texts), len(vectors))
	}

	jdVec := scoring.UnitVector(vectors[0])
	ranked := make([]types.Explanation, len(sentences))
	for i, sent := range sentences {
		sim := scoring.DotProduct(scoring.UnitVector(vectors[i+1]), jdVec)
		ranked[i] = types.Explanation{
			Sentence: sent,
			Score:    scoring.Round2(scoring.ClampPercent(sim * 100)),
		}
	}

	// 稳定排序: 同分保持句子原始顺序
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	if len(ranked) > e.topK {
		ranked = ranked[:e.topK]
	}
	return ranked, nil
}
