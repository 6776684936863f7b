package scoring

import (
	"testing"

	"resume-match-go/internal/types"

	"github.com/stretchr/testify/assert"
)

func sectionMap(skills, projects, experience string) types.SectionMap {
	m := types.SectionMap{}
	if skills != "" {
		m[types.SectionSkills] = &types.Section{Name: types.SectionSkills, RawText: skills}
	}
	if projects != "" {
		m[types.SectionProjects] = &types.Section{Name: types.SectionProjects, RawText: projects}
	}
	if experience != "" {
		m[types.SectionExperience] = &types.Section{Name: types.SectionExperience, RawText: experience}
	}
	return m
}

// TestScoreSectionsAllIdentical 三个章节都与JD相同时ATS得分为100
func TestScoreSectionsAllIdentical(t *testing.T) {
	jd := "python docker engineer"
	set := ScoreSections(sectionMap(jd, jd, jd), jd)

	assert.Equal(t, 100.0, set.Skills)
	assert.Equal(t, 100.0, set.Projects)
	assert.Equal(t, 100.0, set.Experience)
	assert.Equal(t, 100.0, set.Final)
}

// TestScoreSectionsMissingSections 缺失章节得0而不是错误，权重仍然生效
func TestScoreSectionsMissingSections(t *testing.T) {
	jd := "python docker engineer"
	set := ScoreSections(sectionMap(jd, "", ""), jd)

	assert.Equal(t, 100.0, set.Skills)
	assert.Zero(t, set.Projects)
	assert.Zero(t, set.Experience)
	// 0.4*100 + 0.4*0 + 0.2*0
	assert.Equal(t, 40.0, set.Final)
}

// TestScoreSectionsAllMissing 没有任何章节时全部得0
func TestScoreSectionsAllMissing(t *testing.T) {
	set := ScoreSections(types.SectionMap{}, "python docker")
	assert.Zero(t, set.Skills)
	assert.Zero(t, set.Projects)
	assert.Zero(t, set.Experience)
	assert.Zero(t, set.Final)
}

// TestScoreSectionsEmptyJD 空JD使所有章节得0
func TestScoreSectionsEmptyJD(t *testing.T) {
	set := ScoreSections(sectionMap("python", "built tools", "worked"), "")
	assert.Zero(t, set.Final)
}

// TestScoreSectionsRange 所有得分落在[0,100]
func TestScoreSectionsRange(t *testing.T) {
	set := ScoreSections(
		sectionMap("python sql", "built a docker pipeline", "five years python"),
		"python docker engineer",
	)
	for _, v := range []float64{set.Skills, set.Projects, set.Experience, set.Final} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}
