// Package notify sends campaign progress messages through a Telegram
// bot, so long-running solver runs can report completion to a phone.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	defaultTimeout = 30 * time.Second
)

// ErrMissingCredentials is returned when the bot token or chat ID is
// empty.
var ErrMissingCredentials = errors.New("notify: missing bot token or chat id")

// ErrSendFailed is returned when the Telegram API rejects a message.
var ErrSendFailed = errors.New("notify: telegram rejected message")

// Response is the API acknowledgement for a sent message.
type Response struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int `json:"message_id"`
	} `json:"result"`
}

// Options tunes a Telegram client. The zero value selects the public
// API endpoint, a 30 second HTTP timeout and Telegram's advised one
// message per second per chat.
type Options struct {
	BaseURL string
	Client  *http.Client
	Limiter *rate.Limiter
}

// Telegram sends messages to a single chat through a bot.
type Telegram struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// New returns a Telegram client for the given bot token and chat ID.
func New(token, chatID string, opts Options) *Telegram {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: defaultTimeout}
	}

	if opts.Limiter == nil {
		opts.Limiter = rate.NewLimiter(rate.Every(time.Second), 1)
	}

	return &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: opts.BaseURL,
		client:  opts.Client,
		limiter: opts.Limiter,
	}
}

// Send delivers text to the chat with Markdown formatting and returns
// the API acknowledgement. The call blocks on the rate limiter until a
// send slot opens or the context is done.
func (t *Telegram) Send(ctx context.Context, text string) (Response, error) {
	if t.token == "" || t.chatID == "" {
		return Response{}, ErrMissingCredentials
	}

	waitErr := t.limiter.Wait(ctx)
	if waitErr != nil {
		return Response{}, fmt.Errorf("await send slot: %w", waitErr)
	}

	query := url.Values{}
	query.Set("chat_id", t.chatID)
	query.Set("parse_mode", "Markdown")
	query.Set("text", text)

	endpoint := t.baseURL + "/bot" + t.token + "/sendMessage?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}

	res, err := t.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("send message: %w", err)
	}
	defer res.Body.Close()

	var response Response

	decodeErr := json.NewDecoder(res.Body).Decode(&response)
	if decodeErr != nil {
		return Response{}, fmt.Errorf("decode response: %w", decodeErr)
	}

	if !response.OK {
		return response, fmt.Errorf("%w: %s", ErrSendFailed, response.Description)
	}

	return response, nil
}
