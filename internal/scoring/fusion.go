package scoring

import (
	"sort"

	"resume-match-go/internal/constants"
	"resume-match-go/internal/types"
)

// FuseScores 按文档标识合并词法与语义百分比，生成最终排名。
// final = 0.5*lexical + 0.5*semantic（精确线性组合后再取两位小数）。
// 降序稳定排序，同分时保持输入顺序；Rank为排序后的1-based位置
func FuseScores(ids []string, lexical, semantic []float64) []types.ScoreRecord {
	records := make([]types.ScoreRecord, len(ids))
	for i, id := range ids {
		var lex, sem float64
		if i < len(lexical) {
			lex = lexical[i]
		}
		if i < len(semantic) {
			sem = semantic[i]
		}
		records[i] = types.ScoreRecord{
			DocumentID:      id,
			LexicalPercent:  lex,
			SemanticPercent: sem,
			FinalPercent:    Round2(constants.LexicalWeight*lex + constants.SemanticWeight*sem),
		}
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].FinalPercent > records[b].FinalPercent
	})
	for i := range records {
		records[i].Rank = i + 1
	}
	return records
}
