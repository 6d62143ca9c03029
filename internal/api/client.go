package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Form is a multipart body: plain values plus an optional file part.
type Form struct {
	Fields    map[string]string
	FileField string
	File      *dto.Upload
}

// Op describes one call to the remote API. Token is sent as a bearer
// credential when RequiresAuth is set; an empty Token sends no header and the
// remote API decides.
type Op struct {
	Method       string
	Path         string
	Query        url.Values
	Body         interface{}
	Form         *Form
	RequiresAuth bool
	Token        string
}

type Client struct {
	logger     *zap.Logger
	baseURL    string
	httpClient *http.Client
}

func New(logger *zap.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do performs op and returns the raw JSON of a 2xx response. A non-2xx
// response yields *RejectionError; a call that got no response at all yields
// *FaultError.
func (c *Client) Do(ctx context.Context, op Op) (json.RawMessage, error) {
	requestID := uuid.New().String()

	body, contentType, err := encodeBody(op)
	if err != nil {
		c.logger.Sugar().Errorf("failed to encode request(%s) body for %s %s: %s", requestID, op.Method, op.Path, err.Error())
		return nil, &FaultError{Err: err}
	}

	endpoint := c.baseURL + op.Path
	if len(op.Query) > 0 {
		endpoint += "?" + op.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, endpoint, body)
	if err != nil {
		c.logger.Sugar().Errorf("failed to create request(%s) %s %s: %s", requestID, op.Method, op.Path, err.Error())
		return nil, &FaultError{Err: err}
	}

	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if op.RequiresAuth {
		if op.Token != "" {
			req.Header.Add("Authorization", "Bearer "+op.Token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("failed to send request(%s) %s %s: %s", requestID, op.Method, op.Path, err.Error())
		return nil, &FaultError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Sugar().Errorf("failed to read response body of request(%s): %s", requestID, err.Error())
		return nil, &FaultError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rejection := &RejectionError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
		var errResp dto.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			rejection.Message = errResp.Message
		}
		c.logger.Sugar().Infof("request(%s) %s %s rejected, code(%d), details: %s", requestID, op.Method, op.Path, resp.StatusCode, rejection.Message)
		return nil, rejection
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(respBody), nil
}

func encodeBody(op Op) (io.Reader, string, error) {
	if op.Form != nil {
		return encodeForm(op.Form)
	}
	if op.Body == nil {
		return nil, "", nil
	}

	bodyJSON, err := json.Marshal(op.Body)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewReader(bodyJSON), "application/json", nil
}

func encodeForm(form *Form) (io.Reader, string, error) {
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	for name, value := range form.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if form.File != nil {
		fileWriter, err := writer.CreateFormFile(form.FileField, form.File.Filename)
		if err != nil {
			return nil, "", err
		}
		if form.File.Content != nil {
			if _, err := io.Copy(fileWriter, form.File.Content); err != nil {
				return nil, "", err
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &requestBody, writer.FormDataContentType(), nil
}
