// Package imageapi talks to the hosted image API (face swap and text-to-image) and downloads remote pictures
package imageapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"slices"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("image API is not configured")
	ErrTooLarge      = errors.New("remote image exceeds size limit")
	ErrBadStatus     = errors.New("unexpected response status")
	ErrNoOutput      = errors.New("no output_url in API response")
	ErrForbiddenURL  = errors.New("image URL is not allowed")
)

type Config struct {
	APIKey         string
	FaceSwapURL    string
	TextToImageURL string
	FetchTimeout   time.Duration
	CallTimeout    time.Duration
	MaxBytes       int64
	// TrustedHosts are fetched even when they resolve to private addresses (own object storage)
	TrustedHosts []string
	// AllowPrivateHosts turns the private-address check off
	AllowPrivateHosts bool
}

type Client struct {
	http *http.Client
	cfg  Config
}

type apiResponse struct {
	OutputURL string `json:"output_url"`
}

// NewClient uses http.DefaultClient when hc is nil
func NewClient(cfg Config, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 60 * time.Second
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 10 << 20
	}
	trusted := make([]string, 0, len(cfg.TrustedHosts))
	for _, h := range cfg.TrustedHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			trusted = append(trusted, h)
		}
	}
	cfg.TrustedHosts = trusted

	c := &Client{cfg: cfg}
	guarded := *hc
	if guarded.CheckRedirect == nil {
		// every redirect hop goes through the same address check
		guarded.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return c.checkURL(req.Context(), req.URL.String())
		}
	}
	c.http = &guarded
	return c
}

func (c *Client) FaceSwapEnabled() bool {
	return c.cfg.APIKey != "" && c.cfg.FaceSwapURL != ""
}

func (c *Client) TextToImageEnabled() bool {
	return c.cfg.APIKey != "" && c.cfg.TextToImageURL != ""
}

// Fetch downloads url with the fetch timeout and size limit applied
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.FetchTimeout)
	defer cancel()

	if err := c.checkURL(ctx, url); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch %q returned %d", ErrBadStatus, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", url, err)
	}
	if int64(len(data)) > c.cfg.MaxBytes {
		return nil, fmt.Errorf("%w: %q", ErrTooLarge, url)
	}
	return data, nil
}

// FaceSwap sends the user photo as image1 and the destination as image2, then downloads the result
func (c *Client) FaceSwap(ctx context.Context, userImage, destImage []byte) ([]byte, error) {
	if !c.FaceSwapEnabled() {
		return nil, ErrNotConfigured
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := writeImagePart(w, "image1", "user.jpg", userImage); err != nil {
		return nil, err
	}
	if err := writeImagePart(w, "image2", "destination.jpg", destImage); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	outURL, err := c.call(ctx, c.cfg.FaceSwapURL, w.FormDataContentType(), &body)
	if err != nil {
		return nil, fmt.Errorf("face swap: %w", err)
	}
	return c.Fetch(ctx, outURL)
}

// TextToImage returns the URL of the generated picture
func (c *Client) TextToImage(ctx context.Context, prompt, imageType string) (string, error) {
	if !c.TextToImageEnabled() {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("text", prompt); err != nil {
		return "", fmt.Errorf("failed to write text field: %w", err)
	}
	if err := w.WriteField("image_type", imageType); err != nil {
		return "", fmt.Errorf("failed to write image_type field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	outURL, err := c.call(ctx, c.cfg.TextToImageURL, w.FormDataContentType(), &body)
	if err != nil {
		return "", fmt.Errorf("text to image: %w", err)
	}
	return outURL, nil
}

func (c *Client) call(ctx context.Context, url, contentType string, body io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var res apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode API response: %w", err)
	}
	if res.OutputURL == "" {
		return "", ErrNoOutput
	}
	return res.OutputURL, nil
}

// checkURL keeps client-supplied URLs away from loopback, private and link-local addresses
func (c *Client) checkURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrForbiddenURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrForbiddenURL, u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("%w: empty host", ErrForbiddenURL)
	}
	if c.cfg.AllowPrivateHosts || slices.Contains(c.cfg.TrustedHosts, strings.ToLower(host)) {
		return nil
	}

	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", host, err)
		}
		for _, a := range addrs {
			ips = append(ips, a.IP)
		}
	}

	for _, ip := range ips {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
			ip.IsUnspecified() || ip.IsMulticast() {
			return fmt.Errorf("%w: %s resolves to %s", ErrForbiddenURL, host, ip)
		}
	}
	return nil
}

func writeImagePart(w *multipart.Writer, field, filename string, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", "image/jpeg")

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write %s part: %w", field, err)
	}
	return nil
}

func closeBody(b io.Closer) {
	_ = b.Close()
}
