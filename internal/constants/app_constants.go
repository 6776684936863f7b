package constants

// 排名融合与章节加权的固定权重，不做训练调整
const (
	// LexicalWeight 词法相似度在最终得分中的权重
	LexicalWeight = 0.5
	// SemanticWeight 语义相似度在最终得分中的权重
	SemanticWeight = 0.5

	// SectionSkillsWeight 技能章节在ATS得分中的权重
	SectionSkillsWeight = 0.4
	// SectionProjectsWeight 项目章节在ATS得分中的权重
	SectionProjectsWeight = 0.4
	// SectionExperienceWeight 经历章节在ATS得分中的权重
	SectionExperienceWeight = 0.2

	// DefaultExplainTopK 解释器默认返回的句子数量
	DefaultExplainTopK = 5
	// MinSentenceLength 解释器保留句子的最小字符数（过滤标题和零碎片段）
	MinSentenceLength = 20

	// DefaultSuggestionThreshold 章节得分低于该阈值时触发改进建议
	DefaultSuggestionThreshold = 40.0
	// MaxSkillSuggestions 针对缺失技能生成建议的数量上限
	MaxSkillSuggestions = 5
)

// SectionHeadingPatterns 章节标题匹配模式，按顺序匹配，锚定行首
var SectionHeadingPatterns = []string{
	"experience",
	"work experience",
	"professional experience",
	"employment history",
	"education",
	"academic qualifications",
	"skills",
	"technical skills",
	"projects",
	"certifications",
	"internships",
}

// CommonSkills 默认技能词表。构造时注入，测试可替换为最小词表
var CommonSkills = []string{
	"python",
	"java",
	"c++",
	"c",
	"sql",
	"mysql",
	"postgresql",
	"mongodb",
	"machine learning",
	"deep learning",
	"data structures",
	"algorithms",
	"pandas",
	"numpy",
	"scikit-learn",
	"tensorflow",
	"pytorch",
	"nlp",
	"docker",
	"aws",
	"azure",
	"html",
	"css",
	"javascript",
	"react",
	"git",
	"linux",
}

// StopWords 归一化时剔除的常见英文虚词
var StopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "in": {}, "on": {},
	"for": {}, "with": {}, "to": {}, "of": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "they": {},
	"we": {}, "this": {}, "that": {}, "these": {}, "those": {}, "as": {},
	"by": {}, "at": {}, "from": {}, "be": {}, "been": {}, "has": {},
	"have": {}, "had": {}, "but": {}, "not": {}, "will": {}, "can": {},
	"may": {},
}
