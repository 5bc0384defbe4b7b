package cloud

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/infrastructure/signing"
	"media-uploader/internal/pkg/config"
	"media-uploader/pkg/constants"
	"media-uploader/pkg/formdata"

	"go.uber.org/zap"
)

var ErrNoUploadPreset = errors.New("no upload preset configured")

// Client talks to a Cloudinary-style upload API.
type Client struct {
	creds     config.Credentials
	cfg       config.ProviderConfig
	signer    *signing.Signer
	transport *Transport
	log       *zap.Logger
	now       func() time.Time
}

func NewClient(creds config.Credentials, cfg config.ProviderConfig, log *zap.Logger) *Client {
	return &Client{
		creds:     creds,
		cfg:       cfg,
		signer:    signing.NewSigner(creds.APISecret),
		transport: NewTransport(),
		log:       log.Named("cloud"),
		now:       time.Now,
	}
}

func (c *Client) endpoint(rt entities.ResourceType, action string) string {
	return fmt.Sprintf("%s/%s/%s/%s", strings.TrimRight(c.cfg.APIURL, "/"), c.creds.AccountID, rt, action)
}

func (c *Client) timestamp() string {
	return strconv.FormatInt(c.now().Unix(), 10)
}

func (c *Client) timeoutFor(rt entities.ResourceType) time.Duration {
	if rt == entities.ResourceVideo && c.cfg.VideoTimeout > 0 {
		return c.cfg.VideoTimeout
	}
	return c.cfg.Timeout
}

// UploadVideoFast is the signed video path with asynchronous eager
// transformations and overwrite allowed.
func (c *Client) UploadVideoFast(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error) {
	params := map[string]string{
		"public_id":      req.PublicID,
		"timestamp":      c.timestamp(),
		"eager_async":    "true",
		"overwrite":      "true",
		"transformation": "q_auto",
	}
	addTags(params, req.Tags)

	fields := []formdata.Field{{Name: "api_key", Value: c.creds.APIKey}}
	fields = append(fields, sortedFields(params)...)
	fields = append(fields,
		formdata.Field{Name: "signature", Value: c.signer.Sign(params)},
		formdata.Field{Name: "resource_type", Value: string(entities.ResourceVideo)},
	)
	return c.upload(ctx, entities.ResourceVideo, req, fields)
}

// UploadUnsigned authenticates with the upload preset only.
func (c *Client) UploadUnsigned(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error) {
	if c.creds.UploadPreset == "" {
		return nil, ErrNoUploadPreset
	}
	params := map[string]string{
		"upload_preset": c.creds.UploadPreset,
		"public_id":     req.PublicID,
	}
	addTags(params, req.Tags)
	addVideoHints(params, req.ResourceType)

	return c.upload(ctx, req.ResourceType, req, sortedFields(params))
}

// UploadSigned authenticates with api_key, timestamp and signature.
func (c *Client) UploadSigned(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error) {
	params := map[string]string{
		"public_id": req.PublicID,
		"timestamp": c.timestamp(),
	}
	addTags(params, req.Tags)
	if req.ResourceType == entities.ResourceVideo {
		params["eager_async"] = "true"
	}

	fields := []formdata.Field{{Name: "api_key", Value: c.creds.APIKey}}
	fields = append(fields, sortedFields(params)...)
	fields = append(fields, formdata.Field{Name: "signature", Value: c.signer.Sign(params)})
	if req.ResourceType == entities.ResourceVideo {
		fields = append(fields, formdata.Field{Name: "resource_type", Value: string(entities.ResourceVideo)})
	}
	return c.upload(ctx, req.ResourceType, req, fields)
}

func (c *Client) upload(ctx context.Context, rt entities.ResourceType, req *dto.ProviderUploadRequest, fields []formdata.Field) (*dto.ProviderUploadResponse, error) {
	src, err := os.Open(req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	filename := req.Filename
	if filename == "" {
		filename = req.SourcePath
	}

	body, err := formdata.Encode(fields, &formdata.FilePart{
		FieldName: "file",
		Filename:  filename,
		Content:   src,
		Size:      info.Size(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode upload body: %w", err)
	}

	var resp dto.ProviderUploadResponse
	if err := c.transport.Post(ctx, c.endpoint(rt, "upload"), body, c.timeoutFor(rt), &resp); err != nil {
		return nil, err
	}
	if resp.PublicID == "" {
		return nil, &TransportError{Err: errors.New("response has no public_id")}
	}
	return &resp, nil
}

// Destroy deletes publicID at the provider. It reports true only when the
// provider answers with result "ok".
func (c *Client) Destroy(ctx context.Context, publicID string, resourceType entities.ResourceType) (bool, error) {
	if resourceType == "" || resourceType == entities.ResourceAuto {
		resourceType = entities.ResourceImage
	}
	params := map[string]string{
		"public_id": publicID,
		"timestamp": c.timestamp(),
	}
	fields := []formdata.Field{{Name: "api_key", Value: c.creds.APIKey}}
	fields = append(fields, sortedFields(params)...)
	fields = append(fields, formdata.Field{Name: "signature", Value: c.signer.Sign(params)})

	body, err := formdata.Encode(fields, nil)
	if err != nil {
		return false, fmt.Errorf("encode destroy body: %w", err)
	}

	var resp dto.ProviderDestroyResponse
	if err := c.transport.Post(ctx, c.endpoint(resourceType, "destroy"), body, c.cfg.Timeout, &resp); err != nil {
		return false, err
	}
	if resp.Result != constants.DestroyResultOK {
		return false, fmt.Errorf("provider destroy result %q", resp.Result)
	}
	return true, nil
}

func (c *Client) BuildURL(publicID string, opts dto.URLOptions) string {
	return BuildURL(c.cfg.DeliveryURL, c.creds.AccountID, publicID, opts)
}

func addTags(params map[string]string, tags []string) {
	if len(tags) > 0 {
		params["tags"] = strings.Join(tags, ",")
	}
}

func addVideoHints(params map[string]string, rt entities.ResourceType) {
	if rt == entities.ResourceVideo {
		params["resource_type"] = string(entities.ResourceVideo)
		params["eager_async"] = "true"
	}
}

func sortedFields(params map[string]string) []formdata.Field {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]formdata.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, formdata.Field{Name: k, Value: params[k]})
	}
	return fields
}
