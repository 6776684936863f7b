// Package scoring 实现词法(TF-IDF)与语义(嵌入)两路相似度打分及其融合。
// TF-IDF 与 sklearn 的 TfidfVectorizer 对齐: unigram+bigram、平滑IDF、L2归一化
package scoring

import (
	"math"
	"regexp"
	"strings"

	"resume-match-go/internal/constants"
)

var termPattern = regexp.MustCompile(`[a-z0-9+#.\-]+`)

// TfidfVectorizer 在一个语料上拟合词表和IDF权重，之后将任意文本转为稀疏TF-IDF向量。
// 每次打分调用拟合一次（语料+查询作为同一拟合集），不跨请求复用
type TfidfVectorizer struct {
	vocabulary map[string]int
	idf        []float64
	fitted     bool
}

// NewTfidfVectorizer 创建未拟合的向量化器
func NewTfidfVectorizer() *TfidfVectorizer {
	return &TfidfVectorizer{vocabulary: make(map[string]int)}
}

// analyze 提取unigram和bigram词项，剔除停用词和单字符token
func analyze(text string) []string {
	raw := termPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) <= 1 {
			continue
		}
		if _, stop := constants.StopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// Fit 在给定语料上建立词表并计算平滑IDF: ln((1+n)/(1+df)) + 1
func (v *TfidfVectorizer) Fit(corpus []string) {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, term := range analyze(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	v.vocabulary = make(map[string]int, len(df))
	v.idf = make([]float64, 0, len(df))
	n := float64(len(corpus))
	for term, count := range df {
		v.vocabulary[term] = len(v.idf)
		v.idf = append(v.idf, math.Log((1+n)/(1+float64(count)))+1)
	}
	v.fitted = true
}

// Transform 将文本转为L2归一化的稀疏TF-IDF向量。
// 词表外的词项被忽略；空文本或全部词项落在词表外时返回空向量
func (v *TfidfVectorizer) Transform(text string) map[int]float64 {
	vec := make(map[int]float64)
	if !v.fitted {
		return vec
	}
	for _, term := range analyze(text) {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	normalizeSparse(vec)
	return vec
}

func normalizeSparse(vec map[int]float64) {
	var sq float64
	for _, val := range vec {
		sq += val * val
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for idx := range vec {
		vec[idx] /= norm
	}
}

// CosineSparse 两个已归一化稀疏向量的余弦相似度（即点积）。
// 任一向量为空时相似度为0，这是合法结果而非错误
func CosineSparse(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, val := range a {
		dot += val * b[idx]
	}
	return dot
}

// Round2 四舍五入到两位小数，所有百分比得分统一使用
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ClampPercent 把得分钳制到 [0,100] 区间（浮点误差或负余弦）
func ClampPercent(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
