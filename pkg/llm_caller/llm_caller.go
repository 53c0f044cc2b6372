package llm_caller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GenerationServiceError 文本生成服务错误，调用方可按可重试错误处理
type GenerationServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

// Error 实现error接口
func (e *GenerationServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("文本生成服务错误(%s): status=%d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("文本生成服务错误(%s): %v", e.Op, e.Err)
}

// Unwrap 返回底层错误
func (e *GenerationServiceError) Unwrap() error {
	return e.Err
}

// Retryable 调用是至多一次的，重试由调用方决定
func (e *GenerationServiceError) Retryable() bool {
	return true
}

// Message 对话消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest /chat/completions请求体
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// chatResponse /chat/completions响应体
type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client 文本生成服务调用客户端
type Client struct {
	client      *http.Client
	apiBase     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
}

// NewClient 创建文本生成服务客户端
func NewClient(apiBase, apiKey, model string, temperature float64, maxTokens int, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		apiBase:     apiBase,
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Generate 发送系统指令与用户提示词，返回首个补全文本
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GenerationServiceError{Op: "marshal", Err: err}
	}

	// 构建HTTP请求
	url := c.apiBase + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", &GenerationServiceError{Op: "request", Err: err}
	}

	// 设置请求头
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	// 发送请求
	resp, err := c.client.Do(req)
	if err != nil {
		return "", &GenerationServiceError{Op: "call", Err: err}
	}
	defer resp.Body.Close()

	// 读取响应
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationServiceError{Op: "read", Err: err}
	}

	// 检查HTTP状态码，限流(429)与服务端错误统一按服务错误处理
	if resp.StatusCode != http.StatusOK {
		return "", &GenerationServiceError{
			Op:         "call",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("API返回错误: %s", string(body)),
		}
	}

	// 解析响应
	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &GenerationServiceError{Op: "parse", Err: err}
	}

	// 缺少补全内容视为响应格式错误
	if len(result.Choices) == 0 {
		return "", &GenerationServiceError{Op: "parse", Err: fmt.Errorf("响应中没有补全内容")}
	}

	return result.Choices[0].Message.Content, nil
}
