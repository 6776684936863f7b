// Package processor 聚合匹配管线的全部组件并驱动一次完整的分析:
// 归一化 -> 词法/语义打分 -> 融合排名 -> 对第一名做章节、差距、解释和建议分析
package processor

import (
	"context"
	"fmt"
	"log"
	"sync"

	"resume-match-go/internal/analysis"
	"resume-match-go/internal/config"
	"resume-match-go/internal/constants"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/scoring"
	"resume-match-go/internal/tracing"
	"resume-match-go/internal/types"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Components 聚合所有功能组件依赖，便于集中管理和测试替换
type Components struct {
	Segmenter      *parser.SectionSegmenter
	SkillExtractor *parser.SkillExtractor
	Embedder       embedding.Embedder
	SemanticScorer *scoring.SemanticScorer
	Explainer      *analysis.SentenceExplainer
}

// Settings 纯配置项，不包含任何业务逻辑组件
type Settings struct {
	ExplainTopK         int
	SuggestionThreshold float64
	Debug               bool
	Logger              *log.Logger
}

// MatchProcessor 匹配管线编排器。所有分析实体只在单次Analyze调用内存活
type MatchProcessor struct {
	components *Components
	settings   *Settings
}

// NewMatchProcessor 由组件集合和设置创建编排器
func NewMatchProcessor(components *Components, settings *Settings) (*MatchProcessor, error) {
	if components == nil || components.Embedder == nil {
		return nil, fmt.Errorf("嵌入后端未初始化")
	}
	if components.SkillExtractor == nil {
		components.SkillExtractor = parser.NewSkillExtractor(nil)
	}
	if components.Segmenter == nil {
		components.Segmenter = parser.NewSectionSegmenter(nil, components.SkillExtractor)
	}
	if components.SemanticScorer == nil {
		scorer, err := scoring.NewSemanticScorer(components.Embedder)
		if err != nil {
			return nil, err
		}
		components.SemanticScorer = scorer
	}
	if settings == nil {
		settings = &Settings{}
	}
	if settings.ExplainTopK <= 0 {
		settings.ExplainTopK = constants.DefaultExplainTopK
	}
	if settings.SuggestionThreshold <= 0 {
		settings.SuggestionThreshold = constants.DefaultSuggestionThreshold
	}
	if components.Explainer == nil {
		explainer, err := analysis.NewSentenceExplainer(components.Embedder, settings.ExplainTopK)
		if err != nil {
			return nil, err
		}
		components.Explainer = explainer
	}
	return &MatchProcessor{components: components, settings: settings}, nil
}

// CreateProcessorFromConfig 按配置装配编排器。
// 嵌入后端在此构造一次并注入，进程内没有隐式全局状态；
// 远程后端用SerialEmbedder包装以串行化推理调用
func CreateProcessorFromConfig(cfg *config.Config, logger *log.Logger) (*MatchProcessor, error) {
	var embedder embedding.Embedder
	switch cfg.Embedding.Provider {
	case "aliyun":
		aliyun, err := parser.NewAliyunEmbedder(cfg.Embedding.APIKey, cfg.Embedding)
		if err != nil {
			return nil, fmt.Errorf("初始化阿里云Embedder失败: %w", err)
		}
		embedder = parser.NewSerialEmbedder(aliyun)
	case "hash", "":
		embedder = parser.NewHashEmbedder(cfg.Embedding.Dimensions)
	default:
		return nil, fmt.Errorf("未知的嵌入后端: %s", cfg.Embedding.Provider)
	}

	skillExtractor := parser.NewSkillExtractor(cfg.Matcher.Skills)
	components := &Components{
		Embedder:       embedder,
		SkillExtractor: skillExtractor,
		Segmenter:      parser.NewSectionSegmenter(nil, skillExtractor),
	}
	settings := &Settings{
		ExplainTopK:         cfg.Matcher.ExplainTopK,
		SuggestionThreshold: cfg.Matcher.SuggestionThreshold,
		Logger:              logger,
	}
	return NewMatchProcessor(components, settings)
}

// Analyze 对一批候选文档与一个JD执行完整分析。
// 数据质量问题一律降级为零分/空结果，不中断批次；
// 只有嵌入后端故障这类基础设施错误才会返回error
func (p *MatchProcessor) Analyze(ctx context.Context, inputs []types.DocumentInput, jobDescription string) (*types.AnalysisReport, error) {
	tracer := otel.Tracer("resume-match-processor")
	ctx, span := tracer.Start(ctx, "match.analyze")
	defer span.End()

	analysisID := uuid.NewString()
	span.SetAttributes(
		attribute.String("analysis.id", analysisID),
		attribute.Int("analysis.document_count", len(inputs)),
		attribute.String("analysis.jd_preview", tracing.SafeJDContent(jobDescription)),
	)

	documents := make([]types.Document, len(inputs))
	ids := make([]string, len(inputs))
	rawTexts := make([]string, len(inputs))
	normalizedTexts := make([]string, len(inputs))
	for i, in := range inputs {
		documents[i] = types.Document{
			ID:             in.Filename,
			RawText:        in.RawText,
			NormalizedText: parser.NormalizeText(in.RawText),
		}
		ids[i] = documents[i].ID
		rawTexts[i] = documents[i].RawText
		normalizedTexts[i] = documents[i].NormalizedText
	}
	normalizedJD := parser.NormalizeText(jobDescription)

	// 词法与语义打分相互独立，按候选并行计算；两路结果都保持输入下标对应，
	// 融合前按文档标识对齐
	var (
		lexical  []float64
		semantic []float64
		semErr   error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, lexSpan := tracer.Start(ctx, "match.lexical_scores")
		defer lexSpan.End()
		lexical = scoring.LexicalScores(normalizedTexts, normalizedJD)
	}()
	go func() {
		defer wg.Done()
		semCtx, semSpan := tracer.Start(ctx, "match.semantic_scores")
		defer semSpan.End()
		semantic, semErr = p.components.SemanticScorer.ScoreAll(semCtx, rawTexts, jobDescription)
		if semErr != nil {
			tracing.RecordError(semSpan, semErr, tracing.ErrorTypeEmbedding)
		}
	}()
	wg.Wait()
	if semErr != nil {
		return nil, fmt.Errorf("语义打分失败: %w", semErr)
	}

	records := scoring.FuseScores(ids, lexical, semantic)
	report := &types.AnalysisReport{AnalysisID: analysisID, Records: records}
	if len(records) == 0 {
		return report, nil
	}

	top, err := p.analyzeTop(ctx, documents, records[0], jobDescription)
	if err != nil {
		return nil, err
	}
	report.Top = top

	if p.settings.Logger != nil && p.settings.Debug {
		p.settings.Logger.Printf("分析 %s 完成: %d 个候选, 第一名 %s (%.2f%%)",
			analysisID, len(records), records[0].DocumentID, records[0].FinalPercent)
	}
	return report, nil
}

// analyzeTop 对排名第一的文档做深度分析。单候选深挖，不是批量操作
func (p *MatchProcessor) analyzeTop(ctx context.Context, documents []types.Document, top types.ScoreRecord, jobDescription string) (*types.TopResumeReport, error) {
	tracer := otel.Tracer("resume-match-processor")
	ctx, span := tracer.Start(ctx, "match.analyze_top")
	defer span.End()
	span.SetAttributes(attribute.String("analysis.top_document", top.DocumentID))

	var rawText string
	for _, doc := range documents {
		if doc.ID == top.DocumentID {
			rawText = doc.RawText
			break
		}
	}

	sections := p.components.Segmenter.Segment(rawText)
	skillsFound := []string{}
	if sec, ok := sections[types.SectionSkills]; ok && sec.Skills != nil {
		skillsFound = sec.Skills
	}

	sectionScores := scoring.ScoreSections(sections, jobDescription)
	gap := analysis.SkillGap(rawText, jobDescription, p.components.SkillExtractor)

	explanations, err := p.components.Explainer.Explain(ctx, rawText, jobDescription)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeEmbedding)
		return nil, fmt.Errorf("句子解释失败: %w", err)
	}

	suggestions := analysis.GenerateSuggestions(gap.Missing, sectionScores, p.settings.SuggestionThreshold)

	return &types.TopResumeReport{
		DocumentID:    top.DocumentID,
		SkillsFound:   skillsFound,
		Explanations:  explanations,
		SkillGap:      gap,
		SectionScores: sectionScores,
		Suggestions:   suggestions,
	}, nil
}
