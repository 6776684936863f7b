package scoring

// LexicalScores 计算每个候选文档与查询之间的TF-IDF余弦相似度（百分比，两位小数）。
// 候选语料加查询作为同一拟合集，一次打分调用内拟合一次。
// 输出顺序与输入候选顺序一致。单文档语料或全空文本得0，不是错误
func LexicalScores(candidates []string, query string) []float64 {
	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, query)
	corpus = append(corpus, candidates...)

	vect := NewTfidfVectorizer()
	vect.Fit(corpus)

	queryVec := vect.Transform(query)
	scores := make([]float64, len(candidates))
	for i, cand := range candidates {
		sim := CosineSparse(vect.Transform(cand), queryVec)
		scores[i] = Round2(ClampPercent(sim * 100))
	}
	return scores
}

// ScorePair 对一个(章节, JD)文本对独立拟合并打分，用于章节级评分。
// 任一文本为空直接得0
func ScorePair(sectionText, jdText string) float64 {
	if sectionText == "" || jdText == "" {
		return 0
	}
	vect := NewTfidfVectorizer()
	vect.Fit([]string{sectionText, jdText})

	sim := CosineSparse(vect.Transform(sectionText), vect.Transform(jdText))
	return ClampPercent(sim * 100)
}
