package parser

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/cloudwego/eino/components/embedding"
)

// DefaultHashDimensions 本地hash嵌入器的默认向量维度
const DefaultHashDimensions = 512

// HashEmbedder 本地确定性嵌入器，实现 embedding.Embedder 接口。
// 将词token、词二元组和字符三元组经特征哈希投射到固定维度的单位向量。
// 不依赖外部服务，相同输入永远产生相同向量，作为离线后端和测试后端使用。
// 纯函数，可安全并发调用
type HashEmbedder struct {
	dimensions int
}

// NewHashEmbedder 创建本地hash嵌入器。dimensions<=0 时使用默认维度
func NewHashEmbedder(dimensions int) *HashEmbedder {
	if dimensions <= 0 {
		dimensions = DefaultHashDimensions
	}
	return &HashEmbedder{dimensions: dimensions}
}

// GetDimensions 返回向量维度
func (h *HashEmbedder) GetDimensions() int {
	return h.dimensions
}

// EmbedStrings 实现 embedding.Embedder 接口，输出顺序与输入一致
func (h *HashEmbedder) EmbedStrings(_ context.Context, texts []string, _ ...embedding.Option) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = h.embed(text)
	}
	return out, nil
}

func (h *HashEmbedder) embed(text string) []float64 {
	vec := make([]float64, h.dimensions)
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	// 词token权重最高，二元组捕捉短语，字符三元组容忍拼写差异
	for _, tok := range tokens {
		h.addFeature(vec, "w:"+tok, 1.0)
		for j := 0; j+3 <= len(tok); j++ {
			h.addFeature(vec, "c:"+tok[j:j+3], 0.25)
		}
	}
	for i := 0; i+1 < len(tokens); i++ {
		h.addFeature(vec, "b:"+tokens[i]+" "+tokens[i+1], 0.5)
	}

	normalize(vec)
	return vec
}

// addFeature 符号哈希: 一个哈希选桶，另一个哈希决定符号，减少碰撞偏置
func (h *HashEmbedder) addFeature(vec []float64, feature string, weight float64) {
	hasher := fnv.New64a()
	hasher.Write([]byte(feature))
	sum := hasher.Sum64()

	bucket := int(sum % uint64(h.dimensions))
	sign := 1.0
	if (sum>>32)&1 == 1 {
		sign = -1.0
	}
	vec[bucket] += sign * weight
}

func normalize(vec []float64) {
	var sq float64
	for _, v := range vec {
		sq += v * v
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for i := range vec {
		vec[i] /= norm
	}
}
