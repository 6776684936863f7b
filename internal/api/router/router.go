package router

import (
	"bytes"
	"context"

	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, cfg *config.Config, matchHandler *handler.MatchHandler) {
	api := h.Group("/api/v1")

	// 配置了API Key时启用Bearer鉴权，否则开放访问
	if cfg.Server.APIKey != "" {
		api.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:Authorization", "Bearer"),
			keyauth.WithValidator(func(ctx context.Context, c *app.RequestContext, key string) (bool, error) {
				return key == cfg.Server.APIKey, nil
			}),
		))
	}

	api.POST("/match/analyze", func(c context.Context, ctx *app.RequestContext) {
		var req handler.AnalyzeRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体解析失败"})
			return
		}

		resp, err := matchHandler.HandleAnalyze(c, &req)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		if ctx.Query("format") == "csv" {
			var buf bytes.Buffer
			if err := handler.WriteScoresCSV(&buf, resp.Report.Records); err != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
				return
			}
			ctx.Response.Header.Set("Content-Disposition", "attachment; filename=resume_scores.csv")
			ctx.Data(consts.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/match/upload", func(c context.Context, ctx *app.RequestContext) {
		form, err := ctx.MultipartForm()
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "multipart表单解析失败"})
			return
		}

		jobDescription := ctx.PostForm("job_description")
		fileHeaders := form.File["files"]
		if len(fileHeaders) == 0 {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		// 逐个打开上传的PDF，解析失败的文档降级为空文本参与打分
		pdfs := make([]handler.PDFDocument, 0, len(fileHeaders))
		closers := make([]func(), 0, len(fileHeaders))
		defer func() {
			for _, closeFile := range closers {
				closeFile()
			}
		}()
		for _, fh := range fileHeaders {
			file, err := fh.Open()
			if err != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
				return
			}
			closers = append(closers, func() { file.Close() })
			pdfs = append(pdfs, handler.PDFDocument{Filename: fh.Filename, Reader: file})
		}

		documents, err := matchHandler.ExtractDocuments(c, pdfs)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		resp, err := matchHandler.HandleAnalyze(c, &handler.AnalyzeRequest{
			JobDescription: jobDescription,
			Documents:      documents,
		})
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
