package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const feedMaxItems = 12

// ErrFeedNotConfigured is returned when the Instagram credentials are absent.
var ErrFeedNotConfigured = errors.New("instagram feed is not configured")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FeedItem is one gallery entry materialized from the Instagram feed.
type FeedItem struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Caption     string `json:"caption"`
	Permalink   string `json:"permalink"`
	Timestamp   string `json:"timestamp"`
	MediaType   string `json:"media_type"`
}

// FeedSnapshot is the JSON document written by the fetch job and read by the
// public gallery.
type FeedSnapshot struct {
	Posts       []FeedItem `json:"posts"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// FeedService fetches recent Instagram media and materializes it as a static
// snapshot file. The gallery reads the snapshot ahead of the photos table.
type FeedService struct {
	http         httpDoer
	baseURL      string
	accessToken  string
	userID       string
	snapshotPath string
}

// NewFeedService creates a FeedService instance.
func NewFeedService(accessToken, userID, snapshotPath string) *FeedService {
	return &FeedService{
		http:         &http.Client{Timeout: 30 * time.Second},
		baseURL:      "https://graph.instagram.com",
		accessToken:  strings.TrimSpace(accessToken),
		userID:       strings.TrimSpace(userID),
		snapshotPath: snapshotPath,
	}
}

// SetHTTPClient swaps the HTTP client, mainly for tests.
func (s *FeedService) SetHTTPClient(client httpDoer) {
	if client != nil {
		s.http = client
	}
}

// SetBaseURL overrides the Graph API endpoint, mainly for tests.
func (s *FeedService) SetBaseURL(baseURL string) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed != "" {
		s.baseURL = trimmed
	}
}

type graphMedia struct {
	ID           string `json:"id"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Permalink    string `json:"permalink"`
	Timestamp    string `json:"timestamp"`
}

type graphMediaResponse struct {
	Data []graphMedia `json:"data"`
}

// Fetch pulls the latest media from the Graph API, keeping images and
// carousel albums only, newest first, capped at twelve entries.
func (s *FeedService) Fetch(ctx context.Context) ([]FeedItem, error) {
	if s.accessToken == "" || s.userID == "" {
		return nil, ErrFeedNotConfigured
	}

	endpoint := fmt.Sprintf(
		"%s/%s/media?fields=id,caption,media_type,media_url,thumbnail_url,permalink,timestamp&access_token=%s",
		s.baseURL, url.PathEscape(s.userID), url.QueryEscape(s.accessToken),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("instagram api responded %d", resp.StatusCode)
	}

	var payload graphMediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}

	items := make([]FeedItem, 0, feedMaxItems)
	for _, media := range payload.Data {
		if media.MediaType != "IMAGE" && media.MediaType != "CAROUSEL_ALBUM" {
			continue
		}
		if len(items) == feedMaxItems {
			break
		}

		thumbnail := media.ThumbnailURL
		if thumbnail == "" {
			thumbnail = media.MediaURL
		}

		items = append(items, FeedItem{
			ID:          media.ID,
			URL:         media.MediaURL,
			Thumbnail:   thumbnail,
			Title:       feedTitle(media.Caption),
			Description: feedDescription(media.Caption),
			Caption:     media.Caption,
			Permalink:   media.Permalink,
			Timestamp:   media.Timestamp,
			MediaType:   media.MediaType,
		})
	}

	return items, nil
}

// Refresh fetches the feed and rewrites the snapshot file.
func (s *FeedService) Refresh(ctx context.Context) (int, error) {
	items, err := s.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	snapshot := FeedSnapshot{Posts: items, LastUpdated: time.Now().UTC()}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode feed snapshot: %w", err)
	}

	if dir := filepath.Dir(s.snapshotPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(s.snapshotPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("write feed snapshot: %w", err)
	}

	return len(items), nil
}

// Load reads the current snapshot. A missing file simply yields no items, so
// the gallery falls back to the photos table.
func (s *FeedService) Load() ([]FeedItem, error) {
	data, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read feed snapshot: %w", err)
	}

	var snapshot FeedSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode feed snapshot: %w", err)
	}
	return snapshot.Posts, nil
}

// feedTitle derives a short title from a caption: its first line, truncated.
func feedTitle(caption string) string {
	if strings.TrimSpace(caption) == "" {
		return "Instagram"
	}

	firstLine := strings.SplitN(caption, "\n", 2)[0]
	runes := []rune(firstLine)
	if len(runes) <= 50 {
		return firstLine
	}
	return string(runes[:50]) + "..."
}

// feedDescription derives a description from the caption's remaining lines,
// or from the tail of a long single line.
func feedDescription(caption string) string {
	if strings.TrimSpace(caption) == "" {
		return ""
	}

	lines := strings.Split(caption, "\n")
	if len(lines) > 1 {
		rest := strings.Join(lines[1:], " ")
		runes := []rune(rest)
		if len(runes) > 100 {
			rest = string(runes[:100])
		}
		return rest
	}

	runes := []rune(caption)
	if len(runes) > 50 {
		end := len(runes)
		if end > 150 {
			end = 150
		}
		return string(runes[50:end]) + "..."
	}
	return ""
}
