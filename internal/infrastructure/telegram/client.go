package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/config"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

// Client Telegram 推送客户端，只负责向配置的会话发送通知
type Client struct {
	config *config.TelegramConfig
	bot    *tgbotapi.BotAPI
}

func NewClient(cfg *config.TelegramConfig) *Client {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Error("Telegram bot 初始化失败", "error", err)
		return &Client{config: cfg, bot: nil}
	}

	logger.Info("Telegram bot 已连接", "username", bot.Self.UserName)
	return &Client{config: cfg, bot: bot}
}

// Ready bot 是否可用
func (c *Client) Ready() bool {
	return c.bot != nil
}

// SendMessage 向单个会话发送文本消息
func (c *Client) SendMessage(chatID int64, text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram bot not initialized")
	}

	msg := tgbotapi.NewMessage(chatID, cleanUTF8(text))
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// Broadcast 向所有配置的会话发送消息，单个会话失败不影响其余会话
func (c *Client) Broadcast(text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram bot not initialized")
	}

	var lastErr error
	for _, chatID := range c.config.ChatIDs {
		if err := c.SendMessage(chatID, text); err != nil {
			logger.Warn("Telegram 消息发送失败", "chat_id", chatID, "error", err)
			lastErr = err
		}
	}
	return lastErr
}

// cleanUTF8 确保文本是有效的UTF-8编码
func cleanUTF8(text string) string {
	if !utf8.ValidString(text) {
		return strings.ToValidUTF8(text, "?")
	}
	return text
}
