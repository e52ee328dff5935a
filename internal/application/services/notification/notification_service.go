package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/config"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/telegram"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

// AppNotificationService 扫描结果通知服务，当前只支持 Telegram 渠道
type AppNotificationService struct {
	config *config.Config
	client *telegram.Client
}

func NewAppNotificationService(cfg *config.Config) contracts.NotificationService {
	svc := &AppNotificationService{config: cfg}

	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		logger.Info("初始化 Telegram 通知",
			"token", logger.MaskToken(cfg.Telegram.BotToken),
			"chats", len(cfg.Telegram.ChatIDs))
		svc.client = telegram.NewClient(&cfg.Telegram)
	}

	return svc
}

// NotifyScanCompleted 推送扫描完成摘要，通知渠道不可用时静默跳过
func (s *AppNotificationService) NotifyScanCompleted(ctx context.Context, summary contracts.ScanSummary) error {
	if s.client == nil || !s.client.Ready() {
		logger.Debug("通知渠道未启用，跳过推送", "directory", summary.Directory)
		return nil
	}

	if err := s.client.Broadcast(formatSummary(summary)); err != nil {
		logger.Warn("扫描通知推送失败", "error", err)
		return err
	}
	return nil
}

func formatSummary(summary contracts.ScanSummary) string {
	var b strings.Builder

	if summary.Err != "" {
		b.WriteString("❌ 扫描失败\n")
	} else {
		b.WriteString("✅ 扫描完成\n")
	}

	if summary.TaskName != "" {
		fmt.Fprintf(&b, "任务: %s\n", summary.TaskName)
	}
	fmt.Fprintf(&b, "目录: %s\n", summary.Directory)

	if summary.Err != "" {
		fmt.Fprintf(&b, "错误: %s\n", summary.Err)
	} else {
		fmt.Fprintf(&b, "视频文件: %d\n剧集分组: %d\n", summary.FileCount, summary.SeriesCount)
		if summary.BangumiCount > 0 {
			fmt.Fprintf(&b, "番剧: %d\n", summary.BangumiCount)
		}
	}
	fmt.Fprintf(&b, "耗时: %dms", summary.DurationMs)

	return b.String()
}
