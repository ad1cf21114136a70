package services

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"engagement_platform/configs"
	"engagement_platform/internal/mailchimp"
)

// APIError is returned when Mailchimp answers with a non 2xx status.
type APIError struct {
	StatusCode int
	Title      string `json:"title"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mailchimp responded with status %d: %s: %s", e.StatusCode, e.Title, e.Detail)
}

// IsRetryable reports whether a failed call may succeed on a later attempt:
// transport errors, rate limiting and server errors are, any other API error
// is not.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

type mailchimpService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	listID  string
}

type MailchimpService interface {
	UpdateMember(ctx context.Context, request mailchimp.MemberRequest) error
	UpdateMemberTags(ctx context.Context, request mailchimp.MemberTagsRequest) error
	ReplaceMemberEmail(ctx context.Context, request mailchimp.MemberRequest) error
	// ArchiveMember archives the list member. A member unknown to the list
	// counts as archived.
	ArchiveMember(ctx context.Context, memberIdentifier string) error
}

func NewMailchimpService(config configs.Mailchimp) MailchimpService {
	return &mailchimpService{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		listID:  config.ListID,
	}
}

// SubscriberHash is the member id Mailchimp derives from an email address.
func SubscriberHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

func (s *mailchimpService) UpdateMember(ctx context.Context, request mailchimp.MemberRequest) error {
	return s.do(ctx, http.MethodPut, s.memberURL(request.MemberIdentifier), request)
}

func (s *mailchimpService) UpdateMemberTags(ctx context.Context, request mailchimp.MemberTagsRequest) error {
	if len(request.Tags) == 0 {
		return nil
	}

	return s.do(ctx, http.MethodPost, s.memberURL(request.MemberIdentifier)+"/tags", request)
}

func (s *mailchimpService) ReplaceMemberEmail(ctx context.Context, request mailchimp.MemberRequest) error {
	return s.do(ctx, http.MethodPatch, s.memberURL(request.MemberIdentifier), request)
}

func (s *mailchimpService) ArchiveMember(ctx context.Context, memberIdentifier string) error {
	err := s.do(ctx, http.MethodDelete, s.memberURL(memberIdentifier), nil)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil
	}

	return err
}

func (s *mailchimpService) memberURL(memberIdentifier string) string {
	return fmt.Sprintf("%s/lists/%s/members/%s", s.baseURL, s.listID, SubscriberHash(memberIdentifier))
}

func (s *mailchimpService) do(ctx context.Context, method, url string, body any) error {
	var payload io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewBuffer(jsonData)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return err
	}

	if payload != nil {
		request.Header.Add("Content-Type", "application/json; charset=utf-8")
	}
	request.SetBasicAuth("engagement_platform", s.apiKey)

	response, err := s.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: response.StatusCode}
		_ = json.Unmarshal(responseBody, apiErr)
		return apiErr
	}

	return nil
}
