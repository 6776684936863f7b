package types

// SectionName 表示简历章节的规范名称
type SectionName string

const (
	// SectionSkills 技能章节
	SectionSkills SectionName = "skills"
	// SectionExperience 工作经历章节
	SectionExperience SectionName = "experience"
	// SectionEducation 教育经历章节
	SectionEducation SectionName = "education"
	// SectionProjects 项目章节
	SectionProjects SectionName = "projects"
	// SectionCertifications 证书章节
	SectionCertifications SectionName = "certifications"
	// SectionInternships 实习章节
	SectionInternships SectionName = "internships"
	// SectionFull 未命中任何标题时的整篇回退章节
	SectionFull SectionName = "full"
)

// DocumentInput 解码层交来的一份候选文档。解码失败时RawText为空串而不是缺失
type DocumentInput struct {
	Filename string `json:"filename"`
	RawText  string `json:"raw_text"`
}

// Document 一份候选文档。批次内以文件名作为唯一标识，创建后不再修改
type Document struct {
	ID             string `json:"id"` // 文件名
	RawText        string `json:"raw_text"`
	NormalizedText string `json:"normalized_text"`
}

// Section 简历的一个命名章节。RawText 不包含标题行本身
type Section struct {
	Name    SectionName `json:"name"`
	RawText string      `json:"raw_text"`
	// Skills 仅技能章节携带，按词表顺序去重
	Skills []string `json:"skills,omitempty"`
}

// SectionMap 规范名称到章节的映射，名称在文档内唯一
type SectionMap map[SectionName]*Section

// ScoreRecord 单个候选文档的打分记录，百分比均保留两位小数
type ScoreRecord struct {
	DocumentID      string  `json:"document_id"`
	LexicalPercent  float64 `json:"lexical_percent"`
	SemanticPercent float64 `json:"semantic_percent"`
	FinalPercent    float64 `json:"final_percent"` // 0.5*lexical + 0.5*semantic
	Rank            int     `json:"rank"`          // 排序后的1-based名次
}

// SectionScoreSet 仅对排名第一的文档计算的章节得分
type SectionScoreSet struct {
	Skills     float64 `json:"skills"`
	Projects   float64 `json:"projects"`
	Experience float64 `json:"experience"`
	// Final ATS得分: 0.4*skills + 0.4*projects + 0.2*experience
	Final float64 `json:"final"`
}

// SkillGapResult 候选技能与JD技能的集合差异，各列表已排序
type SkillGapResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// Explanation 排名第一文档中与JD最相近的一个句子
type Explanation struct {
	Sentence string  `json:"sentence"`
	Score    float64 `json:"score"` // 百分比，两位小数
}

// TopResumeReport 排名第一文档的深度分析结果
type TopResumeReport struct {
	DocumentID    string          `json:"document_id"`
	SkillsFound   []string        `json:"skills_found"`
	Explanations  []Explanation   `json:"explanations"`
	SkillGap      SkillGapResult  `json:"skill_gap"`
	SectionScores SectionScoreSet `json:"section_scores"`
	Suggestions   []string        `json:"suggestions"`
}

// AnalysisReport 一次完整分析的输出。所有实体只在本次请求内存活
type AnalysisReport struct {
	AnalysisID string           `json:"analysis_id"`
	Records    []ScoreRecord    `json:"records"` // 按FinalPercent降序
	Top        *TopResumeReport `json:"top,omitempty"`
}
