package service

import (
	"fmt"
	"strings"
	"time"

	"launch-go/internal/models"
)

// 各项门限的扣分值
const (
	penaltyMinWords   = 20
	penaltyMaxWords   = 10
	penaltyRequired   = 15
	penaltyProhibited = 25

	// 总分达到该阈值视为通过
	passingScore = 70
)

// CountWords 统计空白分隔的词数
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// EvaluateQualityGates 按门限配置为生成内容打分
// 评估顺序固定: min_words, max_words, required_keywords, prohibited_words,
// checks列表只包含已配置且未通过的门限。
// 分数从100起扣，不做下限截断，负分保留以便审计。
func EvaluateQualityGates(content string, gates models.QualityGates) models.QualityCheckResult {
	score := 100
	var checks []models.QualityCheck

	wordCount := CountWords(content)

	if gates.MinWords != nil && wordCount < *gates.MinWords {
		checks = append(checks, models.QualityCheck{
			Gate:    "min_words",
			Passed:  false,
			Message: fmt.Sprintf("Content has %d words, minimum is %d", wordCount, *gates.MinWords),
		})
		score -= penaltyMinWords
	}

	if gates.MaxWords != nil && wordCount > *gates.MaxWords {
		checks = append(checks, models.QualityCheck{
			Gate:    "max_words",
			Passed:  false,
			Message: fmt.Sprintf("Content has %d words, maximum is %d", wordCount, *gates.MaxWords),
		})
		score -= penaltyMaxWords
	}

	if len(gates.RequiredKeywords) > 0 {
		lower := strings.ToLower(content)
		var missing []string
		for _, kw := range gates.RequiredKeywords {
			if !strings.Contains(lower, strings.ToLower(kw)) {
				missing = append(missing, kw)
			}
		}
		// 缺失关键词合并为一条检查，扣分固定与缺失数量无关
		if len(missing) > 0 {
			checks = append(checks, models.QualityCheck{
				Gate:    "required_keywords",
				Passed:  false,
				Message: fmt.Sprintf("Missing required keywords: %s", strings.Join(missing, ", ")),
			})
			score -= penaltyRequired
		}
	}

	if len(gates.ProhibitedWords) > 0 {
		lower := strings.ToLower(content)
		var found []string
		for _, w := range gates.ProhibitedWords {
			if strings.Contains(lower, strings.ToLower(w)) {
				found = append(found, w)
			}
		}
		// 命中的禁用词同样合并为一条检查
		if len(found) > 0 {
			checks = append(checks, models.QualityCheck{
				Gate:    "prohibited_words",
				Passed:  false,
				Message: fmt.Sprintf("Contains prohibited words: %s", strings.Join(found, ", ")),
			})
			score -= penaltyProhibited
		}
	}

	return models.QualityCheckResult{
		Passed:    score >= passingScore,
		Score:     score,
		Checks:    checks,
		Timestamp: time.Now(),
	}
}
