package parser

import (
	"strings"

	"resume-match-go/internal/constants"
)

// SkillExtractor 在任意文本中匹配固定技能词表。
// 匹配策略为大小写不敏感的子串包含，输出按词表顺序、无重复
type SkillExtractor struct {
	vocabulary []string
}

// NewSkillExtractor 创建技能提取器。vocabulary为空时使用内置词表
func NewSkillExtractor(vocabulary []string) *SkillExtractor {
	if len(vocabulary) == 0 {
		vocabulary = constants.CommonSkills
	}
	return &SkillExtractor{vocabulary: vocabulary}
}

// Vocabulary 返回词表（只读使用）
func (e *SkillExtractor) Vocabulary() []string {
	return e.vocabulary
}

// Extract 返回文本中出现的技能，按词表顺序
func (e *SkillExtractor) Extract(text string) []string {
	found := make([]string, 0)
	if text == "" {
		return found
	}
	lower := strings.ToLower(text)
	seen := make(map[string]struct{}, len(e.vocabulary))
	for _, skill := range e.vocabulary {
		if _, dup := seen[skill]; dup {
			continue
		}
		if strings.Contains(lower, skill) {
			found = append(found, skill)
			seen[skill] = struct{}{}
		}
	}
	return found
}

// ExtractSet 返回文本中出现的技能集合
func (e *SkillExtractor) ExtractSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	if text == "" {
		return set
	}
	lower := strings.ToLower(text)
	for _, skill := range e.vocabulary {
		if strings.Contains(lower, skill) {
			set[skill] = struct{}{}
		}
	}
	return set
}
