package service

import (
	"errors"

	"github.com/mojocn/base64Captcha"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/pkg/cache"
)

// ==================== CaptchaService 验证码服务 ====================

// CaptchaConfig 验证码配置
type CaptchaConfig struct {
	Width  int
	Height int
	Length int
}

// DefaultCaptchaConfig 默认配置
func DefaultCaptchaConfig() *CaptchaConfig {
	return &CaptchaConfig{
		Width:  120,
		Height: 40,
		Length: 4,
	}
}

// CaptchaService 图形验证码服务
// 生成数字验证码图片，答案写进短时存储（Redis 或进程内），校验时用完即焚
type CaptchaService struct {
	driver base64Captcha.Driver
	store  cache.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg *CaptchaConfig, store cache.Store) *CaptchaService {
	if cfg == nil {
		cfg = DefaultCaptchaConfig()
	}
	driver := base64Captcha.NewDriverDigit(cfg.Height, cfg.Width, cfg.Length, 0.7, 80)
	return &CaptchaService{
		driver: driver,
		store:  store,
	}
}

// Generate 生成验证码
// clientID 为客户端自带的会话标识，为空时由驱动生成随机 ID
func (s *CaptchaService) Generate(clientID string) (*dto.CaptchaResponse, error) {
	id, content, answer := s.driver.GenerateIdQuestionAnswer()
	if clientID != "" {
		id = clientID
	}

	item, err := s.driver.DrawCaptcha(content)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(id, answer); err != nil {
		return nil, err
	}

	return &dto.CaptchaResponse{
		CaptchaID: id,
		Image:     item.EncodeB64string(),
	}, nil
}

// Verify 校验验证码，无论对错都消费掉，防止重放
func (s *CaptchaService) Verify(id, answer string) error {
	if id == "" || answer == "" {
		return ErrCaptchaInvalid
	}
	if !s.store.Verify(id, answer, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

// ==================== 错误定义 ====================

var ErrCaptchaInvalid = errors.New("验证码错误或已过期")
