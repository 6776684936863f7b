package handler

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/processor"
	"resume-match-go/internal/types"

	"github.com/gofrs/uuid/v5"
)

// MatchHandler 匹配处理器，负责协调一次简历-JD匹配请求的处理流程
type MatchHandler struct {
	cfg             *config.Config
	processorModule *processor.MatchProcessor
	pdfExtractor    *parser.EinoPDFTextExtractor
}

// NewMatchHandler 创建一个新的匹配处理器。pdfExtractor可为nil，此时不支持PDF上传
func NewMatchHandler(
	cfg *config.Config,
	processorModule *processor.MatchProcessor,
	pdfExtractor *parser.EinoPDFTextExtractor,
) *MatchHandler {
	return &MatchHandler{
		cfg:             cfg,
		processorModule: processorModule,
		pdfExtractor:    pdfExtractor,
	}
}

// AnalyzeRequest 文本分析请求
type AnalyzeRequest struct {
	JobDescription string                `json:"job_description"`
	Documents      []types.DocumentInput `json:"documents"`
}

// AnalyzeResponse 分析响应
type AnalyzeResponse struct {
	SubmissionUUID string                `json:"submission_uuid"`
	Report         *types.AnalysisReport `json:"report"`
}

// HandleAnalyze 处理纯文本的批量匹配请求
func (h *MatchHandler) HandleAnalyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	if req == nil || strings.TrimSpace(req.JobDescription) == "" {
		return nil, fmt.Errorf("job_description不能为空")
	}
	if h.processorModule == nil {
		return nil, fmt.Errorf("处理器模块未初始化")
	}

	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	report, err := h.processorModule.Analyze(ctx, req.Documents, req.JobDescription)
	if err != nil {
		logger.Error().
			Err(err).
			Str("submission_uuid", submissionUUID).
			Int("document_count", len(req.Documents)).
			Msg("批量匹配分析失败")
		return nil, err
	}

	logger.Info().
		Str("submission_uuid", submissionUUID).
		Str("analysis_id", report.AnalysisID).
		Int("document_count", len(report.Records)).
		Msg("批量匹配分析完成")

	return &AnalyzeResponse{
		SubmissionUUID: submissionUUID,
		Report:         report,
	}, nil
}

// PDFDocument 一份待解析的PDF文档
type PDFDocument struct {
	Filename string
	Reader   io.Reader
}

// ExtractDocuments 将一批PDF解析为文本输入。
// 单个PDF解析失败不会中断批次: 该文档的raw_text置为空串，
// 在打分阶段自然降级为0分
func (h *MatchHandler) ExtractDocuments(ctx context.Context, pdfs []PDFDocument) ([]types.DocumentInput, error) {
	if h.pdfExtractor == nil {
		return nil, fmt.Errorf("PDF提取器组件未初始化")
	}

	inputs := make([]types.DocumentInput, len(pdfs))
	for i, pdf := range pdfs {
		text, err := h.pdfExtractor.ExtractTextFromReader(ctx, pdf.Reader, pdf.Filename)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("filename", pdf.Filename).
				Msg("PDF文本提取失败，该文档按空文本处理")
			text = ""
		}
		inputs[i] = types.DocumentInput{
			Filename: pdf.Filename,
			RawText:  text,
		}
	}
	return inputs, nil
}

// WriteScoresCSV 将排名结果写成CSV（下载用）。
// 列与网页表格一致: 文件名、词法、语义和融合得分
func WriteScoresCSV(w io.Writer, records []types.ScoreRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Filename", "Match%", "Semantic Match%", "Final Score"}); err != nil {
		return fmt.Errorf("写CSV表头失败: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.DocumentID,
			strconv.FormatFloat(r.LexicalPercent, 'f', 2, 64),
			strconv.FormatFloat(r.SemanticPercent, 'f', 2, 64),
			strconv.FormatFloat(r.FinalPercent, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("写CSV行失败: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
