package processor

import (
	"io"
	"log"

	"resume-match-go/internal/analysis"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/scoring"

	"github.com/cloudwego/eino/components/embedding"
)

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// ----- 组件选项 -----

// WithcompSegmenter 设置章节切分器组件
func WithcompSegmenter(segmenter *parser.SectionSegmenter) ComponentOpt {
	return func(c *Components) {
		c.Segmenter = segmenter
	}
}

// WithcompSkillextractor 设置技能提取器组件
func WithcompSkillextractor(extractor *parser.SkillExtractor) ComponentOpt {
	return func(c *Components) {
		c.SkillExtractor = extractor
	}
}

// WithcompEmbedder 设置嵌入后端组件
func WithcompEmbedder(embedder embedding.Embedder) ComponentOpt {
	return func(c *Components) {
		c.Embedder = embedder
	}
}

// WithcompSemanticscorer 设置语义打分器组件
func WithcompSemanticscorer(scorer *scoring.SemanticScorer) ComponentOpt {
	return func(c *Components) {
		c.SemanticScorer = scorer
	}
}

// WithcompExplainer 设置句子解释器组件
func WithcompExplainer(explainer *analysis.SentenceExplainer) ComponentOpt {
	return func(c *Components) {
		c.Explainer = explainer
	}
}

// ----- 设置选项 -----

// WithsetExplaintopk 设置解释句子数量上限
func WithsetExplaintopk(topK int) SettingOpt {
	return func(s *Settings) {
		s.ExplainTopK = topK
	}
}

// WithsetSuggestionthreshold 设置触发章节建议的得分阈值
func WithsetSuggestionthreshold(threshold float64) SettingOpt {
	return func(s *Settings) {
		s.SuggestionThreshold = threshold
	}
}

// WithsetDebug 设置调试模式
func WithsetDebug(debug bool) SettingOpt {
	return func(s *Settings) {
		s.Debug = debug
	}
}

// WithsetLogger 设置日志记录器
func WithsetLogger(logger *log.Logger) SettingOpt {
	return func(s *Settings) {
		if logger != nil {
			s.Logger = logger
		} else {
			// 提供一个 discard logger 以防万一
			s.Logger = log.New(io.Discard, "[NilLoggerFallback] ", log.LstdFlags)
		}
	}
}

// NewMatchProcessorWithOptions 以选项模式创建编排器，主要用于测试中替换单个组件
func NewMatchProcessorWithOptions(compOpts []ComponentOpt, setOpts []SettingOpt) (*MatchProcessor, error) {
	components := &Components{}
	for _, opt := range compOpts {
		opt(components)
	}
	settings := &Settings{}
	for _, opt := range setOpts {
		opt(settings)
	}
	return NewMatchProcessor(components, settings)
}
