package service

import (
	"encoding/json"
	"log"
	"sync"

	"launch-go/internal/metrics"
	"launch-go/internal/models"
	"launch-go/internal/repository"

	"github.com/nats-io/nats.go"
)

// KnowledgeSubject 知识库事件发布主题
const KnowledgeSubject = "launch.knowledge.asset"

// KnowledgeRecorder 知识库记录器
// 生成管线通过Record投递条目，落库与消息发布在独立goroutine中完成，
// 任何失败只记日志，不影响管线返回值。
type KnowledgeRecorder struct {
	repo    *repository.KnowledgeRepository
	nc      *nats.Conn
	entries chan *models.KnowledgeEntry

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// NewKnowledgeRecorder 创建知识库记录器，nc可为nil表示不发布消息
func NewKnowledgeRecorder(repo *repository.KnowledgeRepository, nc *nats.Conn, buffer int) *KnowledgeRecorder {
	if buffer <= 0 {
		buffer = 256
	}
	return &KnowledgeRecorder{
		repo:    repo,
		nc:      nc,
		entries: make(chan *models.KnowledgeEntry, buffer),
		done:    make(chan struct{}),
	}
}

// Start 启动后台写入goroutine
func (kr *KnowledgeRecorder) Start() {
	kr.startOnce.Do(func() {
		go kr.run()
	})
}

// Record 投递一条知识库条目，缓冲满时丢弃并告警，绝不阻塞调用方
func (kr *KnowledgeRecorder) Record(entry *models.KnowledgeEntry) {
	select {
	case kr.entries <- entry:
	default:
		metrics.KnowledgeDropsTotal.Inc()
		log.Printf("[KnowledgeRecorder] 缓冲已满，丢弃条目: asset_id=%s", entry.AssetID)
	}
}

// Stop 停止记录器，排空剩余条目后返回
func (kr *KnowledgeRecorder) Stop() {
	kr.stopOnce.Do(func() {
		close(kr.entries)
		<-kr.done
	})
}

// run 消费条目：先落库，再尽力发布到NATS
func (kr *KnowledgeRecorder) run() {
	defer close(kr.done)

	for entry := range kr.entries {
		if err := kr.repo.Create(entry); err != nil {
			log.Printf("[KnowledgeRecorder] 写入知识库失败: asset_id=%s, err=%v", entry.AssetID, err)
		}

		kr.publish(entry)
	}
}

// publish 发布知识库事件，无NATS连接时静默跳过
func (kr *KnowledgeRecorder) publish(entry *models.KnowledgeEntry) {
	if kr.nc == nil {
		return
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		log.Printf("[KnowledgeRecorder] 序列化知识库事件失败: %v", err)
		return
	}

	if err := kr.nc.Publish(KnowledgeSubject, payload); err != nil {
		log.Printf("[KnowledgeRecorder] 发布知识库事件失败: %v", err)
	}
}
