package image

import (
	"context"
	"fmt"
	"net/http"

	"recipe-ideas/internal/infrastructure/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RunwareClient Runware 圖片生成客戶端
type RunwareClient struct {
	config *config.Config
	client *resty.Client
}

// NewRunwareClient 創建 Runware 客戶端
func NewRunwareClient(cfg *config.Config) *RunwareClient {
	client := resty.New().
		SetBaseURL(cfg.ImageGen.BaseURL).
		SetTimeout(cfg.ImageGen.Timeout)

	return &RunwareClient{
		config: cfg,
		client: client,
	}
}

// runwareTask Runware 的批次任務條目
type runwareTask struct {
	TaskType       string `json:"taskType"`
	APIKey         string `json:"apiKey,omitempty"`
	TaskUUID       string `json:"taskUUID,omitempty"`
	PositivePrompt string `json:"positivePrompt,omitempty"`
	Model          string `json:"model,omitempty"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
	NumberResults  int    `json:"numberResults,omitempty"`
}

// Generate 生成一張圖片並回傳其 URL
// Runware 用單一批次端點，驗證任務與推論任務同一個請求送出
func (c *RunwareClient) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	tasks := []runwareTask{
		{
			TaskType: "authentication",
			APIKey:   apiKey,
		},
		{
			TaskType:       "imageInference",
			TaskUUID:       uuid.NewString(),
			PositivePrompt: prompt,
			Model:          c.config.ImageGen.Model,
			Width:          c.config.ImageGen.Width,
			Height:         c.config.ImageGen.Height,
			NumberResults:  1,
		},
	}

	var result struct {
		Data []struct {
			TaskType string `json:"taskType"`
			ImageURL string `json:"imageURL"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(tasks).
		SetResult(&result).
		Post("")

	if err != nil {
		return "", fmt.Errorf("failed to send request to Runware: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("Runware API returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("Runware API error: %s", result.Errors[0].Message)
	}

	for _, d := range result.Data {
		if d.TaskType == "imageInference" && d.ImageURL != "" {
			return d.ImageURL, nil
		}
	}
	return "", fmt.Errorf("no image in Runware response")
}
