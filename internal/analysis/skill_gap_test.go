package analysis

import (
	"testing"

	"resume-match-go/internal/parser"

	"github.com/stretchr/testify/assert"
)

// TestSkillGapBasic 场景: 简历有python/sql/docker，JD要python/docker
func TestSkillGapBasic(t *testing.T) {
	ex := parser.NewSkillExtractor([]string{"python", "sql", "docker"})
	gap := SkillGap(
		"Experience\nBuilt scalable systems using Python and SQL.\nSkills\nPython, SQL, Docker",
		"Looking for a Python and Docker engineer",
		ex,
	)

	assert.Equal(t, []string{"docker", "python"}, gap.Matched)
	assert.Empty(t, gap.Missing, "JD的技能都在简历里")
	assert.Equal(t, []string{"sql"}, gap.Extra)
}

// TestSkillGapSetLaws 验证集合律: matched∩missing=∅, matched∪missing=jd技能
func TestSkillGapSetLaws(t *testing.T) {
	ex := parser.NewSkillExtractor([]string{"python", "sql", "docker", "aws", "react"})
	gap := SkillGap(
		"python and react developer",
		"need python, docker and aws",
		ex,
	)

	matchedSet := make(map[string]struct{})
	for _, s := range gap.Matched {
		matchedSet[s] = struct{}{}
	}
	for _, s := range gap.Missing {
		_, intersects := matchedSet[s]
		assert.False(t, intersects, "matched与missing不可相交")
	}

	// matched ∪ missing 恰好等于JD技能集合
	jdSkills := ex.ExtractSet("need python, docker and aws")
	assert.Len(t, jdSkills, len(gap.Matched)+len(gap.Missing))
	for _, s := range append(append([]string{}, gap.Matched...), gap.Missing...) {
		assert.Contains(t, jdSkills, s)
	}

	// extra = 简历技能 − matched
	resumeSkills := ex.ExtractSet("python and react developer")
	assert.Len(t, resumeSkills, len(gap.Matched)+len(gap.Extra))
}

// TestSkillGapSortedOutput 三个列表都按字典序排序，便于确定性展示
func TestSkillGapSortedOutput(t *testing.T) {
	ex := parser.NewSkillExtractor([]string{"react", "python", "aws", "docker"})
	gap := SkillGap("react python aws docker", "", ex)

	assert.Equal(t, []string{"aws", "docker", "python", "react"}, gap.Extra)
}

// TestSkillGapEmptyInputs 空文本产生空集合，不报错
func TestSkillGapEmptyInputs(t *testing.T) {
	ex := parser.NewSkillExtractor(nil)
	gap := SkillGap("", "", ex)
	assert.Empty(t, gap.Matched)
	assert.Empty(t, gap.Missing)
	assert.Empty(t, gap.Extra)
}
