package image

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"recipe-ideas/internal/pkg/common"

	"go.uber.org/zap"
)

// CredentialStore 圖片生成金鑰的檔案儲存
// 金鑰跨重啟保留，清除後外部生成立即停用、改走庫存圖片
type CredentialStore struct {
	mu   sync.RWMutex
	path string
	key  string
}

// NewCredentialStore 建立儲存並載入既有金鑰，檔案不存在不是錯誤
func NewCredentialStore(path string) (*CredentialStore, error) {
	s := &CredentialStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	s.key = strings.TrimSpace(string(data))
	if s.key != "" {
		common.LogInfo("圖片生成金鑰已載入", zap.String("path", path))
	}
	return s, nil
}

// Set 保存金鑰並落盤
func (s *CredentialStore) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return common.NewValidationError("api key must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(key), 0o600); err != nil {
		return err
	}
	s.key = key
	common.LogInfo("圖片生成金鑰已更新")
	return nil
}

// Clear 移除金鑰，檔案本來就不存在也算成功
func (s *CredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	s.key = ""
	common.LogInfo("圖片生成金鑰已移除")
	return nil
}

// Get 取得金鑰，未設定時回傳空字串
func (s *CredentialStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

// Configured 是否已設定金鑰，探測端點只回報布林值不洩漏金鑰
func (s *CredentialStore) Configured() bool {
	return s.Get() != ""
}
