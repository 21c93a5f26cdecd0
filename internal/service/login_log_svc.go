package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/model"
	"admin_scaffold_v1_202608/internal/repository"
	"admin_scaffold_v1_202608/pkg/logger"
)

// ==================== LoginLogService 登录日志服务 ====================

// 归属地查询接口（纯文本返回 "国家|区域|省份|城市|ISP"）
const ipRegionURL = "https://whois.pconline.com.cn/ipJson.jsp"

// LoginLogService 登录日志：同步落库，归属地异步回填
type LoginLogService struct {
	logRepo repository.LoginLogRepository
	client  *resty.Client
}

// NewLoginLogService 创建登录日志服务
func NewLoginLogService(logRepo repository.LoginLogRepository) *LoginLogService {
	client := resty.New()
	client.SetTimeout(5 * time.Second)
	client.SetRetryCount(2)

	return &LoginLogService{
		logRepo: logRepo,
		client:  client,
	}
}

// Record 记录一次登录尝试，失败只打日志不阻断登录
func (s *LoginLogService) Record(ctx context.Context, username, ip string, status int, message string) {
	entry := &model.SysLoginLog{
		Username:  username,
		IP:        ip,
		Status:    status,
		Message:   message,
		LoginTime: time.Now(),
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		logger.L().Warn("登录日志落库失败", zap.Error(err))
		return
	}

	// 归属地异步解析，不占登录路径
	go s.resolveRegion(entry.ID, ip)
}

// resolveRegion 查询 IP 归属地并回填
func (s *LoginLogService) resolveRegion(logID int64, ip string) {
	if ip == "" || ip == "127.0.0.1" || ip == "::1" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("ip", ip).
		SetQueryParam("json", "true").
		Get(ipRegionURL)
	if err != nil {
		logger.L().Debug("IP 归属地查询失败", zap.String("ip", ip), zap.Error(err))
		return
	}
	if resp.StatusCode() != 200 {
		return
	}

	region := parseRegion(resp.String())
	if region == "" {
		return
	}

	if err := s.logRepo.UpdateRegion(ctx, logID, region); err != nil {
		logger.L().Debug("IP 归属地回填失败", zap.Int64("log_id", logID), zap.Error(err))
	}
}

// parseRegion 从响应里抠出 addr 字段，响应是 JSONP 包裹的非标准 JSON，做宽松提取
func parseRegion(body string) string {
	const key = `"addr":"`
	start := strings.Index(body, key)
	if start < 0 {
		return ""
	}
	start += len(key)
	end := strings.IndexByte(body[start:], '"')
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(body[start : start+end])
}

// ==================== 查询 ====================

// ListLogs 登录日志列表
func (s *LoginLogService) ListLogs(ctx context.Context, req *dto.LoginLogListRequest) ([]model.SysLoginLog, error) {
	conds := map[string]interface{}{}
	if req.Username != "" {
		conds["username"] = req.Username
	}
	if req.Status != nil {
		conds["status"] = *req.Status
	}
	return s.logRepo.List(ctx, conds)
}

// PageLogs 登录日志分页
func (s *LoginLogService) PageLogs(ctx context.Context, req *dto.LoginLogPageRequest) (*dto.PageResult, error) {
	req.Normalize()

	conds := map[string]interface{}{}
	if req.Username != "" {
		conds["username"] = req.Username
	}
	if req.Status != nil {
		conds["status"] = *req.Status
	}

	logs, total, err := s.logRepo.Page(ctx, conds, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.PageResult{
		List:     logs,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
