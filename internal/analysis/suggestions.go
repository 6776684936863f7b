package analysis

import (
	"fmt"

	"resume-match-go/internal/constants"
	"resume-match-go/internal/types"
)

// GenerateSuggestions 确定性规则引擎，把缺失技能和低分章节映射为改进建议。
// 规则按固定顺序执行，输出顺序跟随规则顺序而非得分大小:
//  1. 前5个缺失技能各生成一条技能建议
//  2. projects得分低于阈值 -> 项目章节建议
//  3. experience得分低于阈值 -> 经历章节建议
//  4. skills得分低于阈值 -> 技能章节建议
//  5. 规则1-4都没有产出时给一条"匹配良好"的兜底建议
func GenerateSuggestions(missingSkills []string, sectionScores types.SectionScoreSet, threshold float64) []string {
	if threshold <= 0 {
		threshold = constants.DefaultSuggestionThreshold
	}

	suggestions := make([]string, 0)

	skillCount := len(missingSkills)
	if skillCount > constants.MaxSkillSuggestions {
		skillCount = constants.MaxSkillSuggestions
	}
	for _, skill := range missingSkills[:skillCount] {
		suggestions = append(suggestions, fmt.Sprintf(
			"Add experience or projects demonstrating %s, as it is required in the job description.", skill))
	}

	if sectionScores.Projects < threshold {
		suggestions = append(suggestions,
			"Improve the Projects section by clearly stating technologies used, your role, and measurable impact.")
	}
	if sectionScores.Experience < threshold {
		suggestions = append(suggestions,
			"Align the Experience section more closely with the job responsibilities mentioned in the JD.")
	}
	if sectionScores.Skills < threshold {
		suggestions = append(suggestions,
			"Reorder and highlight the most relevant skills in the Skills section based on the job description.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Your resume aligns well with the job description. Focus on improving clarity and impact of bullet points.")
	}
	return suggestions
}
