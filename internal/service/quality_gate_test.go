package service

import (
	"strings"
	"testing"

	"launch-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// words 生成n个词的内容
func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "word"
	}
	return strings.Join(parts, " ")
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t  "))
	assert.Equal(t, 3, CountWords("one two three"))
	assert.Equal(t, 3, CountWords("  one\ttwo\nthree  "))
}

func TestEvaluateQualityGates_AllPass(t *testing.T) {
	gates := models.QualityGates{
		MinWords:         intPtr(3),
		MaxWords:         intPtr(100),
		RequiredKeywords: []string{"launch"},
		ProhibitedWords:  []string{"guaranteed"},
	}

	result := EvaluateQualityGates("our product launch is coming soon", gates)

	assert.True(t, result.Passed)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Checks)
}

func TestEvaluateQualityGates_MinWords(t *testing.T) {
	gates := models.QualityGates{MinWords: intPtr(50)}

	result := EvaluateQualityGates(words(10), gates)

	assert.True(t, result.Passed) // 80 >= 70
	assert.Equal(t, 80, result.Score)
	require.Len(t, result.Checks, 1)
	assert.Equal(t, "min_words", result.Checks[0].Gate)
	assert.False(t, result.Checks[0].Passed)
	assert.Equal(t, "Content has 10 words, minimum is 50", result.Checks[0].Message)
}

func TestEvaluateQualityGates_MaxWords(t *testing.T) {
	gates := models.QualityGates{MaxWords: intPtr(5)}

	result := EvaluateQualityGates(words(8), gates)

	assert.True(t, result.Passed)
	assert.Equal(t, 90, result.Score)
	require.Len(t, result.Checks, 1)
	assert.Equal(t, "max_words", result.Checks[0].Gate)
	assert.Equal(t, "Content has 8 words, maximum is 5", result.Checks[0].Message)
}

func TestEvaluateQualityGates_RequiredKeywords(t *testing.T) {
	gates := models.QualityGates{
		RequiredKeywords: []string{"Launch", "pricing"},
	}

	// 大小写不敏感的子串匹配
	result := EvaluateQualityGates("the big LAUNCH day", gates)
	assert.Equal(t, 85, result.Score)
	require.Len(t, result.Checks, 1)
	assert.Equal(t, "required_keywords", result.Checks[0].Gate)
	assert.Equal(t, "Missing required keywords: pricing", result.Checks[0].Message)

	// 全部缺失也只有一条检查，扣分不变
	result = EvaluateQualityGates("nothing relevant here", gates)
	assert.Equal(t, 85, result.Score)
	require.Len(t, result.Checks, 1)
	assert.Equal(t, "Missing required keywords: Launch, pricing", result.Checks[0].Message)
}

func TestEvaluateQualityGates_ProhibitedWords(t *testing.T) {
	gates := models.QualityGates{
		ProhibitedWords: []string{"guaranteed", "best ever"},
	}

	result := EvaluateQualityGates("Results Guaranteed or your money back", gates)

	assert.True(t, result.Passed) // 75 >= 70
	assert.Equal(t, 75, result.Score)
	require.Len(t, result.Checks, 1)
	assert.Equal(t, "prohibited_words", result.Checks[0].Gate)
	assert.Equal(t, "Contains prohibited words: guaranteed", result.Checks[0].Message)
}

func TestEvaluateQualityGates_MultipleViolationsFail(t *testing.T) {
	gates := models.QualityGates{
		MinWords:         intPtr(50),
		RequiredKeywords: []string{"launch"},
		ProhibitedWords:  []string{"guaranteed"},
	}

	result := EvaluateQualityGates("success guaranteed", gates)

	// 100 - 20 - 15 - 25 = 40
	assert.False(t, result.Passed)
	assert.Equal(t, 40, result.Score)
	require.Len(t, result.Checks, 3)
}

func TestEvaluateQualityGates_CheckOrder(t *testing.T) {
	gates := models.QualityGates{
		MinWords:         intPtr(100),
		MaxWords:         intPtr(0),
		RequiredKeywords: []string{"missing"},
		ProhibitedWords:  []string{"word"},
	}

	result := EvaluateQualityGates("word", gates)

	require.Len(t, result.Checks, 4)
	assert.Equal(t, "min_words", result.Checks[0].Gate)
	assert.Equal(t, "max_words", result.Checks[1].Gate)
	assert.Equal(t, "required_keywords", result.Checks[2].Gate)
	assert.Equal(t, "prohibited_words", result.Checks[3].Gate)
}

func TestEvaluateQualityGates_ScoreNotClamped(t *testing.T) {
	gates := models.QualityGates{
		MinWords:         intPtr(1000),
		MaxWords:         intPtr(0),
		RequiredKeywords: []string{"a_missing_keyword"},
		ProhibitedWords:  []string{"bad"},
	}

	// 大量内容同时触发四项: 100-20-10-15-25 = 30，不截断
	result := EvaluateQualityGates("bad "+words(10), gates)
	assert.Equal(t, 30, result.Score)
	assert.False(t, result.Passed)
}

func TestEvaluateQualityGates_EmptyGates(t *testing.T) {
	result := EvaluateQualityGates("anything at all", models.QualityGates{})

	assert.True(t, result.Passed)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Checks)
}

func TestEvaluateQualityGates_Deterministic(t *testing.T) {
	gates := models.QualityGates{
		MinWords:         intPtr(20),
		RequiredKeywords: []string{"launch", "pricing"},
	}
	content := "a short launch note"

	first := EvaluateQualityGates(content, gates)
	second := EvaluateQualityGates(content, gates)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Passed, second.Passed)
	require.Equal(t, len(first.Checks), len(second.Checks))
	for i := range first.Checks {
		assert.Equal(t, first.Checks[i], second.Checks[i])
	}
}
