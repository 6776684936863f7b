package scoring

import (
	"resume-match-go/internal/constants"
	"resume-match-go/internal/types"
)

// ScoreSections 对排名第一文档的skills/projects/experience三个章节分别与JD做
// TF-IDF余弦打分（每对文本是独立的二文档语料），并按固定权重融合为ATS得分。
// 缺失章节得0，不是错误。ATS得分由未取整的分量计算后再取整
func ScoreSections(sections types.SectionMap, jdText string) types.SectionScoreSet {
	sectionText := func(name types.SectionName) string {
		if sec, ok := sections[name]; ok {
			return sec.RawText
		}
		return ""
	}

	skills := ScorePair(sectionText(types.SectionSkills), jdText)
	projects := ScorePair(sectionText(types.SectionProjects), jdText)
	experience := ScorePair(sectionText(types.SectionExperience), jdText)

	final := constants.SectionSkillsWeight*skills +
		constants.SectionProjectsWeight*projects +
		constants.SectionExperienceWeight*experience

	return types.SectionScoreSet{
		Skills:     Round2(skills),
		Projects:   Round2(projects),
		Experience: Round2(experience),
		Final:      Round2(final),
	}
}
