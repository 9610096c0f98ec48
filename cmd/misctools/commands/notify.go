package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/notify"
)

// messageSender abstracts the notification client so tests can stub
// the Telegram API away.
type messageSender interface {
	Send(ctx context.Context, text string) (notify.Response, error)
}

type senderFactory func(token, chatID string, timeout time.Duration) messageSender

// NewNotifyCommand groups the campaign notification subcommands.
func NewNotifyCommand(app *App) *cobra.Command {
	return newNotifyCommandWithDeps(app, defaultSender)
}

func newNotifyCommandWithDeps(app *App, newSender senderFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send campaign notifications",
	}

	cmd.AddCommand(newNotifySendCommand(app, newSender))

	return cmd
}

func defaultSender(token, chatID string, timeout time.Duration) messageSender {
	opts := notify.Options{}
	if timeout > 0 {
		opts.Client = &http.Client{Timeout: timeout}
	}

	return notify.New(token, chatID, opts)
}

func newNotifySendCommand(app *App, newSender senderFactory) *cobra.Command {
	var (
		message string
		token   string
		chatID  string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a Telegram message to the campaign chat",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sendToken := token
			sendChat := chatID

			var timeout time.Duration

			if app.Config != nil {
				if sendToken == "" {
					sendToken = app.Config.Notify.Token
				}

				if sendChat == "" {
					sendChat = app.Config.Notify.ChatID
				}

				timeout = app.Config.Notify.Timeout
			}

			resp, err := newSender(sendToken, sendChat, timeout).Send(cmd.Context(), message)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Message %d delivered\n", resp.Result.MessageID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text")
	cmd.Flags().StringVar(&token, "token", "", "Bot token (default from config)")
	cmd.Flags().StringVar(&chatID, "chat-id", "", "Chat ID (default from config)")

	mustMarkRequired(cmd, "message")

	return cmd
}
