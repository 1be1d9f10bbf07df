package steamgifts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"autojoin-server/internal/config"
	"autojoin-server/internal/observability"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

var (
	ErrAuthExpired     = errors.New("steamgifts session expired")
	ErrRateLimited     = errors.New("steamgifts rate limited")
	ErrSiteUnavailable = errors.New("steamgifts unavailable")
	ErrNotFound        = errors.New("steamgifts resource not found")
	ErrNotConfigured   = errors.New("steamgifts session not configured")
)

const maxBodyBytes = 4 << 20

// Filter selects the listing source
type Filter string

const (
	FilterAll      Filter = ""
	FilterWishlist Filter = "wishlist"
	FilterDLC      Filter = "dlc"
)

// Listing is one giveaway row scraped from a listing or history page
type Listing struct {
	Code          string
	Name          string
	PointsCost    int
	Copies        int
	EndTime       *time.Time
	CatalogItemID *int64
	Entered       bool
}

// EntryOutcome is the site's answer to an entry submission
type EntryOutcome struct {
	Success bool
	Message string
	// Points is the balance reported after the entry, when the site includes it
	Points *int
}

// HideOutcome is the result of hiding a giveaway's game
type HideOutcome struct {
	Hidden  bool
	GameID  int64
	Message string
}

// Session is the authentication material sent with every request
type Session struct {
	PHPSessID string
	UserAgent string
	XSRFToken string
}

// SessionSource supplies the current session. It is read on every call so settings changes apply without restart.
type SessionSource interface {
	Session(ctx context.Context) (Session, error)
}

// Client talks to the giveaway site over HTTP and scrapes its pages
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	sessions   SessionSource
	logger     *observability.Logger

	mu        sync.Mutex
	xsrfFor   string
	xsrfToken string
}

// NewClient creates a site client paced at cfg.RequestsPerMinute
func NewClient(cfg config.SteamGiftsConfig, sessions SessionSource, logger *observability.Logger) *Client {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
		sessions:   sessions,
		logger:     logger,
	}
}

// ListGiveaways scrapes one listing page. Pinned giveaways are skipped.
func (c *Client) ListGiveaways(ctx context.Context, page int, filter Filter) ([]Listing, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	switch filter {
	case FilterWishlist:
		q.Set("type", "wishlist")
	case FilterDLC:
		q.Set("dlc", "true")
	}

	doc, err := c.getAuthenticatedDocument(ctx, "/giveaways/search?"+q.Encode())
	if err != nil {
		return nil, err
	}
	return parseListings(doc), nil
}

// ListWon scrapes one page of won giveaways. EndTime carries the win time.
func (c *Client) ListWon(ctx context.Context, page int) ([]Listing, error) {
	doc, err := c.getAuthenticatedDocument(ctx, fmt.Sprintf("/giveaways/won?page=%d", page))
	if err != nil {
		return nil, err
	}
	return parseTableRows(doc), nil
}

// ListEntered scrapes one page of giveaways the account has entered
func (c *Client) ListEntered(ctx context.Context, page int) ([]Listing, error) {
	doc, err := c.getAuthenticatedDocument(ctx, fmt.Sprintf("/giveaways/entered?page=%d", page))
	if err != nil {
		return nil, err
	}
	rows := parseTableRows(doc)
	for i := range rows {
		rows[i].Entered = true
	}
	return rows, nil
}

// GetBalance returns the account's current points
func (c *Client) GetBalance(ctx context.Context) (int, error) {
	doc, err := c.getAuthenticatedDocument(ctx, "/")
	if err != nil {
		return 0, err
	}
	points, ok := parseBalance(doc)
	if !ok {
		return 0, fmt.Errorf("%w: points not found on page", ErrAuthExpired)
	}
	c.rememberXSRF(ctx, doc)
	return points, nil
}

// GetDetailPage returns the raw detail page of a giveaway
func (c *Client) GetDetailPage(ctx context.Context, code string) (string, error) {
	sess, err := c.session(ctx)
	if err != nil {
		return "", err
	}
	body, err := c.get(ctx, sess, "/giveaway/"+url.PathEscape(code)+"/")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

type ajaxResponse struct {
	Type   string `json:"type"`
	Msg    string `json:"msg"`
	Points string `json:"points"`
}

// SubmitEntry enters a giveaway. A site-side refusal is an outcome, not an error.
func (c *Client) SubmitEntry(ctx context.Context, code string) (EntryOutcome, error) {
	sess, err := c.session(ctx)
	if err != nil {
		return EntryOutcome{}, err
	}
	token, err := c.xsrf(ctx, sess)
	if err != nil {
		return EntryOutcome{}, err
	}

	form := url.Values{}
	form.Set("xsrf_token", token)
	form.Set("do", "entry_insert")
	form.Set("code", code)

	body, err := c.post(ctx, sess, "/ajax.php", form)
	if err != nil {
		return EntryOutcome{}, err
	}

	var resp ajaxResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		// the site answers with the login page when the session is gone
		return EntryOutcome{}, fmt.Errorf("%w: unexpected entry response", ErrAuthExpired)
	}

	outcome := EntryOutcome{Success: resp.Type == "success", Message: resp.Msg}
	if p, err := strconv.Atoi(resp.Points); err == nil {
		outcome.Points = &p
	}
	if !outcome.Success && outcome.Message == "" {
		outcome.Message = "entry rejected"
	}
	return outcome, nil
}

// Hide hides every giveaway of the game behind code
func (c *Client) Hide(ctx context.Context, code string) (HideOutcome, error) {
	sess, err := c.session(ctx)
	if err != nil {
		return HideOutcome{}, err
	}
	body, err := c.get(ctx, sess, "/giveaway/"+url.PathEscape(code)+"/")
	if err != nil {
		return HideOutcome{}, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return HideOutcome{}, fmt.Errorf("failed to parse giveaway page: %w", err)
	}
	gameID, ok := parseGameID(doc)
	if !ok {
		return HideOutcome{}, fmt.Errorf("%w: game id missing on giveaway %s", ErrNotFound, code)
	}
	c.rememberXSRF(ctx, doc)

	token, err := c.xsrf(ctx, sess)
	if err != nil {
		return HideOutcome{}, err
	}
	form := url.Values{}
	form.Set("xsrf_token", token)
	form.Set("game_id", strconv.FormatInt(gameID, 10))
	form.Set("do", "hide_giveaways_by_game_id")

	body, err = c.post(ctx, sess, "/ajax.php", form)
	if err != nil {
		return HideOutcome{GameID: gameID}, err
	}

	// an empty reply is the site's success answer
	if len(bytes.TrimSpace(body)) == 0 {
		return HideOutcome{Hidden: true, GameID: gameID}, nil
	}
	var resp ajaxResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return HideOutcome{GameID: gameID}, fmt.Errorf("%w: unexpected hide response", ErrAuthExpired)
	}
	if resp.Type == "error" {
		msg := resp.Msg
		if msg == "" {
			msg = "hide rejected"
		}
		return HideOutcome{GameID: gameID, Message: msg}, nil
	}
	return HideOutcome{Hidden: true, GameID: gameID}, nil
}

func (c *Client) session(ctx context.Context) (Session, error) {
	sess, err := c.sessions.Session(ctx)
	if err != nil {
		return Session{}, err
	}
	if sess.PHPSessID == "" {
		return Session{}, ErrNotConfigured
	}
	return sess, nil
}

func (c *Client) getAuthenticatedDocument(ctx context.Context, path string) (*goquery.Document, error) {
	sess, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, sess, path)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", path, err)
	}
	if _, ok := parseBalance(doc); !ok {
		return nil, fmt.Errorf("%w: page %s is not signed in", ErrAuthExpired, path)
	}
	return doc, nil
}

// xsrf returns the configured token, or one scraped from the home page for this session
func (c *Client) xsrf(ctx context.Context, sess Session) (string, error) {
	if sess.XSRFToken != "" {
		return sess.XSRFToken, nil
	}
	c.mu.Lock()
	if c.xsrfFor == sess.PHPSessID && c.xsrfToken != "" {
		token := c.xsrfToken
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	body, err := c.get(ctx, sess, "/")
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("failed to parse home page: %w", err)
	}
	token := parseXSRF(doc)
	if token == "" {
		return "", fmt.Errorf("%w: xsrf token not found", ErrAuthExpired)
	}
	c.mu.Lock()
	c.xsrfFor, c.xsrfToken = sess.PHPSessID, token
	c.mu.Unlock()
	return token, nil
}

func (c *Client) rememberXSRF(ctx context.Context, doc *goquery.Document) {
	token := parseXSRF(doc)
	if token == "" {
		return
	}
	sess, err := c.sessions.Session(ctx)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.xsrfFor, c.xsrfToken = sess.PHPSessID, token
	c.mu.Unlock()
}

func (c *Client) get(ctx context.Context, sess Session, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(ctx, sess, req)
}

func (c *Client) post(ctx context.Context, sess Session, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	return c.do(ctx, sess, req)
}

func (c *Client) do(ctx context.Context, sess Session, req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req.AddCookie(&http.Cookie{Name: "PHPSESSID", Value: sess.PHPSessID})
	if sess.UserAgent != "" {
		req.Header.Set("User-Agent", sess.UserAgent)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url_path", Value: req.URL.Path},
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.WarnWithError(ctx, "steamgifts request failed", err)
		return nil, fmt.Errorf("%w: %v", ErrSiteUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrSiteUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrAuthExpired
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrSiteUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Path)
	}
	return body, nil
}
