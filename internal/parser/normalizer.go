package parser

import (
	"regexp"
	"strings"

	"resume-match-go/internal/constants"
)

// 保留 + # . - 以免破坏 "c++"、"c#"、"node.js"、"scikit-learn" 这类token
var (
	nonTokenRunes = regexp.MustCompile(`[^a-z0-9+#.\-\s]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	tokenPattern  = regexp.MustCompile(`[a-z0-9+#.\-]+`)
)

// CleanText 小写化并清除非语义标点，折叠空白。纯函数，空输入返回空串
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	t := strings.ToLower(text)
	t = nonTokenRunes.ReplaceAllString(t, " ")
	t = whitespaceRun.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Tokenize 从文本中提取词状token（保留c++、c#、scikit-learn等形式）
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// NormalizeText 完整归一化：清洗、分词、去停用词、丢弃长度<=1的token后重新拼接
func NormalizeText(text string) string {
	cleaned := CleanText(text)
	if cleaned == "" {
		return ""
	}
	tokens := Tokenize(cleaned)
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 1 {
			continue
		}
		if _, stop := constants.StopWords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
