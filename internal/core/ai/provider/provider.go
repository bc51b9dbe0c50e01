package provider

import "context"

// Provider 文字生成供應商介面
// 目前只有 OpenRouter 實作，保留介面方便測試替身與之後替換供應商
type Provider interface {
	// Generate 送出 prompt 並回傳模型產生的文字
	Generate(ctx context.Context, prompt string) (string, error)
	// Model 回傳使用中的模型名稱
	Model() string
}
