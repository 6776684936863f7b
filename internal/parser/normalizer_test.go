package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCleanTextKeepsSymbolTokens 验证清洗保留 c++ / c# / node.js 这类带符号的token
func TestCleanTextKeepsSymbolTokens(t *testing.T) {
	got := CleanText("Expert in C++, C# & Node.js!")
	assert.Equal(t, "expert in c++ c# node.js", got)
}

// TestCleanTextEmptyInput 空输入永远不报错，输出空串
func TestCleanTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", NormalizeText(""))
}

// TestNormalizeTextRemovesStopwordsAndShortTokens 验证停用词和单字符token被剔除
func TestNormalizeTextRemovesStopwordsAndShortTokens(t *testing.T) {
	got := NormalizeText("I am a developer with skills in Python and R")
	// "i"、"a"、"and"、"with"、"in" 是停用词，"r"、"am" — "am"不在停用词表但长度2保留
	assert.Equal(t, "am developer skills python", got)
}

// TestNormalizeTextCollapsesWhitespace 验证空白折叠与重新拼接
func TestNormalizeTextCollapsesWhitespace(t *testing.T) {
	got := NormalizeText("docker\t\tkubernetes\n\n  linux")
	assert.Equal(t, "docker kubernetes linux", got)
}

// TestTokenizePreservesCompoundSkills 验证分词保留 scikit-learn 这样的复合token
func TestTokenizePreservesCompoundSkills(t *testing.T) {
	tokens := Tokenize("scikit-learn, TensorFlow 2.0")
	assert.Equal(t, []string{"scikit-learn", "tensorflow", "2.0"}, tokens)
}
