// Package notification posts optional Discord embeds for scan activity.
// A nil client is valid and does nothing, so the rest of the code never
// checks whether notifications are configured.
package notification

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x2ECC71
	colorError   = 0xFF0000
)

type Client struct {
	sg        *discordgo.Session
	channelID string
}

// NewClient opens a Discord session. Returns (nil, nil) when token or
// channel are unset; notifications are simply off.
func NewClient(token, channelID string) (*Client, error) {
	if token == "" || channelID == "" {
		return nil, nil
	}

	sg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	if err := sg.Open(); err != nil {
		return nil, err
	}

	return &Client{sg: sg, channelID: channelID}, nil
}

func (c *Client) ScanSaved(userID uint, scanType, url string) error {
	return c.send("Scan guardado", fmt.Sprintf("Nuevo escaneo %s para %s", scanType, url), colorSuccess, map[string]string{
		"Usuario": fmt.Sprintf("%d", userID),
		"Tipo":    scanType,
		"URL":     url,
	})
}

func (c *Client) ToolFailed(tool, target string, runErr error) error {
	return c.send("Herramienta fallida", runErr.Error(), colorError, map[string]string{
		"Herramienta": tool,
		"Objetivo":    target,
	})
}

func (c *Client) send(title, description string, color int, fields map[string]string) error {
	if c == nil || c.sg == nil {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	for key, value := range fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   key,
			Value:  value,
			Inline: true,
		})
	}

	_, err := c.sg.ChannelMessageSendEmbed(c.channelID, embed)
	return err
}

func (c *Client) Close() error {
	if c == nil || c.sg == nil {
		return nil
	}
	return c.sg.Close()
}
