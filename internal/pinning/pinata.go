// Package pinning stores project images on IPFS through the Pinata
// pinning API and resolves content references to gateway URLs.
package pinning

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.pinata.cloud"
	defaultGateway = "https://gateway.pinata.cloud/ipfs"

	maxImageBytes = 10 << 20
)

// Credentials selects one of the two Pinata auth schemes. The key/secret
// pair takes precedence when both are set.
type Credentials struct {
	APIKey    string
	APISecret string
	JWT       string
}

func (c Credentials) configured() bool {
	return c.JWT != "" || (c.APIKey != "" && c.APISecret != "")
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

type pinErrorResponse struct {
	Error struct {
		Details string `json:"details"`
	} `json:"error"`
}

// Client pins content and builds gateway URLs.
type Client struct {
	http    *resty.Client
	creds   Credentials
	gateway string
	logger  *zap.Logger
}

// NewClient constructs a Client. baseURL and gateway fall back to the
// public Pinata endpoints when empty.
func NewClient(baseURL, gateway string, creds Credentials, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if gateway == "" {
		gateway = defaultGateway
	}
	return &Client{
		http:    resty.New().SetBaseURL(baseURL),
		creds:   creds,
		gateway: strings.TrimRight(gateway, "/"),
		logger:  logger.Named("pinata"),
	}
}

// Store pins blob under name and returns its content hash. Blobs over
// the 10 MiB image cap are rejected before any network call.
func (c *Client) Store(ctx context.Context, name string, blob []byte) (string, error) {
	if !c.creds.configured() {
		return "", fmt.Errorf("pinata credentials are not configured")
	}
	if len(blob) > maxImageBytes {
		return "", fmt.Errorf("blob %q exceeds %d bytes", name, maxImageBytes)
	}

	var (
		out    pinResponse
		outErr pinErrorResponse
	)
	req := c.http.R().
		SetContext(ctx).
		SetFileReader("file", name, bytes.NewReader(blob)).
		SetMultipartField("pinataMetadata", "", "application/json", strings.NewReader(fmt.Sprintf(`{"name":%q}`, name))).
		SetResult(&out).
		SetError(&outErr)

	if c.creds.APIKey != "" && c.creds.APISecret != "" {
		req.SetHeader("pinata_api_key", c.creds.APIKey)
		req.SetHeader("pinata_secret_api_key", c.creds.APISecret)
	} else {
		req.SetAuthToken(c.creds.JWT)
	}

	resp, err := req.Post("/pinning/pinFileToIPFS")
	if err != nil {
		return "", fmt.Errorf("pin %q: %w", name, err)
	}
	if resp.IsError() {
		c.logger.Warn("pin rejected",
			zap.String("name", name),
			zap.Int("status", resp.StatusCode()),
			zap.String("details", outErr.Error.Details),
		)
		return "", fmt.Errorf("pin %q: status %d: %s", name, resp.StatusCode(), outErr.Error.Details)
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("pin %q: empty hash in response", name)
	}

	c.logger.Info("pinned", zap.String("name", name), zap.String("hash", out.IpfsHash))
	return out.IpfsHash, nil
}

// GatewayURL normalizes a content reference into a fetchable URL. Full
// http(s) URLs pass through, ipfs:// references and bare hashes resolve
// against the gateway, and an empty reference stays empty.
func (c *Client) GatewayURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	ref = strings.TrimPrefix(ref, "ipfs://")
	return c.gateway + "/" + ref
}
