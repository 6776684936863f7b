// Package analysis 为排名第一的候选生成可解释的反馈:
// 技能差距、句子级解释和规则驱动的改进建议
package analysis

import (
	"sort"

	"resume-match-go/internal/parser"
	"resume-match-go/internal/types"
)

// SkillGap 对比候选全文与JD全文的技能集合，输出已排序的
// matched/missing/extra 三个列表。匹配为大小写不敏感的子串包含
func SkillGap(resumeText, jdText string, extractor *parser.SkillExtractor) types.SkillGapResult {
	resumeSkills := extractor.ExtractSet(resumeText)
	jdSkills := extractor.ExtractSet(jdText)

	matched := make([]string, 0)
	missing := make([]string, 0)
	extra := make([]string, 0)

	for skill := range jdSkills {
		if _, ok := resumeSkills[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for skill := range resumeSkills {
		if _, ok := jdSkills[skill]; !ok {
			extra = append(extra, skill)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)

	return types.SkillGapResult{Matched: matched, Missing: missing, Extra: extra}
}
