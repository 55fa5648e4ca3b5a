package huggy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const defaultBaseURL = "https://api.huggy.io/v2"

// Client talks to the Huggy v2 REST API. Transport-level failures (timeouts,
// 5xx) are retried up to three times by the underlying retryable HTTP client
// before an error surfaces to the caller.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger

	chatPageDelay time.Duration
	msgPageDelay  time.Duration
	maxPages      int
}

// ClientConfig carries the wire credentials and the pagination throttle.
type ClientConfig struct {
	Token            string
	BaseURL          string
	ChatPageDelay    time.Duration
	MessagePageDelay time.Duration
	MaxPages         int
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil
	rc.HTTPClient.Timeout = 30 * time.Second

	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	return &Client{
		baseURL:       strings.TrimRight(base, "/"),
		token:         cfg.Token,
		http:          rc.StandardClient(),
		logger:        logger,
		chatPageDelay: cfg.ChatPageDelay,
		msgPageDelay:  cfg.MessagePageDelay,
		maxPages:      cfg.MaxPages,
	}
}

// SetTestTransport points the client at a test server.
func (c *Client) SetTestTransport(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// FetchChats lists every chat across all pages, honoring the configured
// inter-page delay and page cap.
func (c *Client) FetchChats(ctx context.Context) ([]Chat, error) {
	return FetchAll(ctx, func(ctx context.Context, page int) ([]Chat, error) {
		var chats []Chat
		if err := c.get(ctx, "chats", page, &chats); err != nil {
			return nil, err
		}
		return chats, nil
	}, c.chatPageDelay, c.maxPages)
}

// FetchMessages lists every message of one chat across all pages.
func (c *Client) FetchMessages(ctx context.Context, chatID ID) ([]Message, error) {
	path := fmt.Sprintf("chats/%s/messages", chatID)
	return FetchAll(ctx, func(ctx context.Context, page int) ([]Message, error) {
		var msgs []Message
		if err := c.get(ctx, path, page, &msgs); err != nil {
			return nil, err
		}
		return msgs, nil
	}, c.msgPageDelay, c.maxPages)
}

func (c *Client) get(ctx context.Context, path string, page int, out any) error {
	url := fmt.Sprintf("%s/%s?page=%d", c.baseURL, path, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("huggy get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("huggy get %s: status %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s page %d: %w", path, page, err)
	}
	return nil
}
