package parser

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/components/embedding"
)

// SerialEmbedder 用互斥锁串行化对底层嵌入后端的调用。
// 远程后端未声明批量encode的并发安全性时用它包装；
// 本地HashEmbedder是纯函数，不需要包装
type SerialEmbedder struct {
	inner embedding.Embedder
	mu    sync.Mutex
}

// NewSerialEmbedder 包装一个嵌入后端，使其推理调用串行执行
func NewSerialEmbedder(inner embedding.Embedder) *SerialEmbedder {
	return &SerialEmbedder{inner: inner}
}

// EmbedStrings 实现 embedding.Embedder 接口
func (s *SerialEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.EmbedStrings(ctx, texts, opts...)
}
