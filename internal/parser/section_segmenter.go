package parser

import (
	"regexp"
	"strings"

	"resume-match-go/internal/constants"
	"resume-match-go/internal/types"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// SectionSegmenter 按标题行把简历切分为命名章节
type SectionSegmenter struct {
	patterns []string
	skills   *SkillExtractor
}

// NewSectionSegmenter 创建章节切分器。patterns为空时使用内置标题模式
func NewSectionSegmenter(patterns []string, skills *SkillExtractor) *SectionSegmenter {
	if len(patterns) == 0 {
		patterns = constants.SectionHeadingPatterns
	}
	return &SectionSegmenter{patterns: patterns, skills: skills}
}

// headingName 行级分类器: 若该行是章节标题，返回其归一化文本，否则返回空串。
// 匹配在trim+小写+折叠空白后进行，模式锚定行首
func (s *SectionSegmenter) headingName(line string) string {
	norm := whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(line)), " ")
	if norm == "" {
		return ""
	}
	for _, pat := range s.patterns {
		if strings.HasPrefix(norm, pat) {
			return norm
		}
	}
	return ""
}

// canonicalName 将标题slug归并到规范章节名
func canonicalName(slug string) types.SectionName {
	switch {
	case strings.Contains(slug, "skill"):
		return types.SectionSkills
	case strings.Contains(slug, "experience"),
		strings.Contains(slug, "employment"),
		strings.Contains(slug, "professional"):
		return types.SectionExperience
	case strings.Contains(slug, "education"),
		strings.Contains(slug, "academic"):
		return types.SectionEducation
	default:
		return types.SectionName(slug)
	}
}

// Segment 切分文档并提取技能列表。
// 未命中任何标题时整篇文本落入 "full" 章节；没有技能章节时从全文推断技能。
// 多个标题归并到同一规范名时，正文按出现顺序以空行拼接，避免丢失内容
func (s *SectionSegmenter) Segment(text string) types.SectionMap {
	out := types.SectionMap{}
	if text == "" {
		out[types.SectionSkills] = &types.Section{Name: types.SectionSkills, Skills: []string{}}
		return out
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	type headingMark struct {
		lineIdx int
		slug    string
	}
	var headings []headingMark
	for i, line := range lines {
		if h := s.headingName(line); h != "" {
			slug := strings.Trim(slugPattern.ReplaceAllString(h, "_"), "_")
			headings = append(headings, headingMark{lineIdx: i, slug: slug})
		}
	}

	appendBody := func(name types.SectionName, body string) {
		sec, ok := out[name]
		if !ok {
			out[name] = &types.Section{Name: name, RawText: body}
			return
		}
		if body == "" {
			return
		}
		if sec.RawText == "" {
			sec.RawText = body
		} else {
			sec.RawText += "\n\n" + body
		}
	}

	if len(headings) == 0 {
		appendBody(types.SectionFull, text)
	} else {
		bounds := make([]int, 0, len(headings)+1)
		for _, h := range headings {
			bounds = append(bounds, h.lineIdx)
		}
		bounds = append(bounds, len(lines))

		for i, h := range headings {
			body := strings.TrimSpace(strings.Join(lines[h.lineIdx+1:bounds[i+1]], "\n"))
			appendBody(canonicalName(h.slug), body)
		}
	}

	if sec, ok := out[types.SectionSkills]; ok {
		sec.Skills = s.skills.Extract(sec.RawText)
	} else {
		// 没有专门的技能章节时从全文推断
		out[types.SectionSkills] = &types.Section{
			Name:   types.SectionSkills,
			Skills: s.skills.Extract(text),
		}
	}

	return out
}
