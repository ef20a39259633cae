package band

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crustacean/tracker/internal/config"
	"crustacean/tracker/internal/dates"
	"crustacean/tracker/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// ErrNoPost is returned when no posting on the board matches the configured
// marker and vendor. Callers treat it as "no data today", not a failure.
var ErrNoPost = errors.New("no market post found")

// PostSource supplies the day's price listing as (date, text).
type PostSource interface {
	FetchMarketPost(ctx context.Context) (string, string, error)
}

type client struct {
	rl         ratelimit.Limiter
	config     config.BandConfig
	baseURL    string
	httpClient *resty.Client
	now        func() time.Time
}

type postsResponse struct {
	ResultData struct {
		Items []postItem `json:"items"`
	} `json:"result_data"`
}

type postItem struct {
	Content string `json:"content"`
	Author  struct {
		Name string `json:"name"`
	} `json:"author"`
}

// NewClient builds a PostSource over the Band open API.
func NewClient(cfg config.BandConfig) PostSource {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		SetHeader("Accept", "application/json")

	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &client{
		rl:         ratelimit.New(rps),
		config:     cfg,
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// FetchMarketPost lists recent board posts and returns the first one whose
// content carries the market-table marker and whose author matches the
// vendor. The nominal date comes from the posting text when present,
// otherwise from the wall clock.
func (c *client) FetchMarketPost(ctx context.Context) (string, string, error) {
	posts, err := c.fetchPosts(ctx)
	if err != nil {
		return "", "", err
	}

	post, ok := c.selectMarketPost(posts)
	if !ok {
		return "", "", ErrNoPost
	}

	today := c.now()
	date, ok := dates.FromContent(today, post.Content)
	if !ok {
		date = today.Format(dates.Layout)
		log.Debugf("Post carries no date mention, using today (%s)", date)
	}

	log.Infof("Found market post by %s dated %s", post.Author, date)
	return date, post.Content, nil
}

func (c *client) fetchPosts(ctx context.Context) ([]domain.Post, error) {
	c.rl.Take()

	url := fmt.Sprintf("%s/v2/band/posts", c.baseURL)

	var body postsResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("access_token", c.config.AccessToken).
		SetQueryParam("band_key", c.config.BandKey).
		SetResult(&body).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch band posts: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	posts := make([]domain.Post, 0, len(body.ResultData.Items))
	for _, item := range body.ResultData.Items {
		posts = append(posts, domain.Post{
			Author:  item.Author.Name,
			Content: item.Content,
		})
	}

	log.Debugf("Fetched %d posts from band", len(posts))
	return posts, nil
}

func (c *client) selectMarketPost(posts []domain.Post) (domain.Post, bool) {
	for _, post := range posts {
		if strings.Contains(post.Content, c.config.PostMarker) &&
			strings.Contains(post.Author, c.config.VendorName) {
			return post, true
		}
	}
	return domain.Post{}, false
}
