package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GeneratedAssetsTotal 按状态统计生成资产数
	GeneratedAssetsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "launch",
		Name:      "generated_assets_total",
		Help:      "生成资产总数，按状态区分",
	}, []string{"status"})

	// GenerationFailuresTotal 文本生成服务调用失败数
	GenerationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "launch",
		Name:      "generation_failures_total",
		Help:      "文本生成服务调用失败总数",
	})

	// RuleSetMissesTotal 规则缺失跳过次数
	RuleSetMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "launch",
		Name:      "rule_set_misses_total",
		Help:      "因规则缺失而跳过的资产类型次数",
	})

	// KnowledgeDropsTotal 知识库事件因缓冲满被丢弃的次数
	KnowledgeDropsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "launch",
		Name:      "knowledge_drops_total",
		Help:      "知识库事件缓冲满丢弃总数",
	})
)
