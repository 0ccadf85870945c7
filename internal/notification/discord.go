package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agrisight/agrisight-cli/internal/properties"
)

type DiscordMessage struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

type DiscordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

// Enabled reports whether a webhook is configured. Notifications are opt-in,
// the workflows skip them silently when no URL is set.
func Enabled() bool {
	return properties.DiscordErrorNotificationUrl() != "" || properties.DiscordSuccessNotificationUrl() != ""
}

func SendDiscordErrorNotification(errorMessage string) error {
	message := DiscordMessage{
		Embeds: []DiscordEmbed{
			{
				Title:       "🚨 Crop health run failed",
				Description: fmt.Sprintf("An error occurred: %s", errorMessage),
				Color:       16711680, // Red color
			},
		},
	}

	return postWebhook(properties.DiscordErrorNotificationUrl(), message)
}

func SendDiscordSuccessNotification(successMessage string) error {
	message := DiscordMessage{
		Embeds: []DiscordEmbed{
			{
				Title:       "✅ Crop health run finished",
				Description: successMessage,
				Color:       65280, // Green color
			},
		},
	}

	return postWebhook(properties.DiscordSuccessNotificationUrl(), message)
}

func postWebhook(url string, message DiscordMessage) error {
	if url == "" {
		return nil
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send Discord notification, status code: %d", resp.StatusCode)
	}

	return nil
}
