package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkurbatov/lifehub/internal/config"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/go-resty/resty/v2"
)

type blobClient struct {
	client  *resty.Client
	baseURL string
	logger  *logger.Logger
}

// NewBlobClient constructs a [BlobStorage] that PUTs objects under
// cfg.BaseURL keyed by their storage key. The stored object's public URL is
// the base URL joined with the key.
func NewBlobClient(cfg config.Blob, logger *logger.Logger) (BlobStorage, error) {
	client, err := newRestyClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid blob base url: %w", err)
	}

	return &blobClient{client: client, baseURL: client.BaseURL, logger: logger}, nil
}

func (b *blobClient) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	key = strings.TrimLeft(key, "/")

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put("/" + key)
	if err != nil {
		return "", fmt.Errorf("%w: blob put request: %v", ErrUpstream, err)
	}
	if err = mapUpstreamError(resp); err != nil {
		b.logger.Warn().Int("status", resp.StatusCode()).Str("key", key).Msg("blob put failed")
		return "", err
	}

	return b.baseURL + "/" + key, nil
}
