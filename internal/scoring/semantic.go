package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/cloudwego/eino/components/embedding"
)

// SemanticScorer 基于注入的嵌入后端计算候选文档与查询的语义相似度。
// 嵌入后端在进程启动时构造一次并在此处共享引用，没有隐式全局状态
type SemanticScorer struct {
	embedder embedding.Embedder
}

// NewSemanticScorer 创建语义打分器
func NewSemanticScorer(embedder embedding.Embedder) (*SemanticScorer, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder不能为空")
	}
	return &SemanticScorer{embedder: embedder}, nil
}

// ScoreAll 把 [query]+candidates 作为一个批次编码，返回每个候选的语义相似度
// （百分比，两位小数），输出顺序与输入候选顺序一致。
// 向量在本地归一化为单位长度，不依赖后端的归一化保证
func (s *SemanticScorer) ScoreAll(ctx context.Context, candidates []string, query string) ([]float64, error) {
	if len(candidates) == 0 {
		return []float64{}, nil
	}

	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, query)
	texts = append(texts, candidates...)

	vectors, err := s.embedder.EmbedStrings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("批量嵌入失败: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("嵌入结果数量不匹配: 期望%d, 实际%d", len(texts), len(vectors))
	}

	queryVec := UnitVector(vectors[0])
	scores := make([]float64, len(candidates))
	for i := range candidates {
		sim := DotProduct(UnitVector(vectors[i+1]), queryVec)
		scores[i] = Round2(ClampPercent(sim * 100))
	}
	return scores, nil
}

// UnitVector 返回归一化副本；零向量原样返回（相似度自然为0）
func UnitVector(vec []float64) []float64 {
	var sq float64
	for _, v := range vec {
		sq += v * v
	}
	if sq == 0 {
		return vec
	}
	norm := math.Sqrt(sq)
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = v / norm
	}
	return out
}

// DotProduct 两个等长向量的点积，长度不一致时取较短者
func DotProduct(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	return dot
}
