package venueservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	branchPath = "/internal/companies/{companyId}/branches/{branchId}"
	courtPath  = "/internal/companies/{companyId}/branches/{branchId}/courts/{courtId}"

	retryCount   = 2
	retryWait    = 100 * time.Millisecond
	retryMaxWait = time.Second
)

// Client клиент для работы с сервисом площадок (компании, филиалы, корты)
type Client struct {
	httpClient *resty.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса площадок
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		log:        log,
	}
}

// GetBranch получает филиал компании
func (c *Client) GetBranch(ctx context.Context, companyID, branchID int64) (*Branch, error) {
	var branch Branch
	var apiErr ErrorResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"companyId": fmt.Sprint(companyID),
			"branchId":  fmt.Sprint(branchID),
		}).
		SetResult(&branch).
		SetError(&apiErr).
		Get(branchPath)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBranch - execute request: %v", ErrInternal, err)
	}

	if err := checkStatus(resp, ErrBranchNotFound, apiErr); err != nil {
		return nil, err
	}

	return &branch, nil
}

// GetCourt получает корт филиала
func (c *Client) GetCourt(ctx context.Context, companyID, branchID, courtID int64) (*Court, error) {
	var court Court
	var apiErr ErrorResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"companyId": fmt.Sprint(companyID),
			"branchId":  fmt.Sprint(branchID),
			"courtId":   fmt.Sprint(courtID),
		}).
		SetResult(&court).
		SetError(&apiErr).
		Get(courtPath)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - execute request: %v", ErrInternal, err)
	}

	if err := checkStatus(resp, ErrCourtNotFound, apiErr); err != nil {
		return nil, err
	}

	return &court, nil
}

// CheckCourtWithGracefulDegradation проверяет, что филиал (и корт, если courtID задан) существуют.
// При недоступности сервиса возвращает ErrServiceDegraded, и вызывающий может пропустить проверку.
func (c *Client) CheckCourtWithGracefulDegradation(ctx context.Context, companyID, branchID int64, courtID *int64) error {
	err := c.checkCourt(ctx, companyID, branchID, courtID)
	if err == nil {
		return nil
	}

	// Бизнес-ошибки пробрасываем как есть
	if errors.Is(err, ErrBranchNotFound) || errors.Is(err, ErrCourtNotFound) {
		c.log.Info("Venue check failed for company_id=%d branch_id=%d: %v", companyID, branchID, err)
		return err
	}

	c.log.Error("VenueService unavailable, applying graceful degradation for company_id=%d branch_id=%d: %v", companyID, branchID, err)
	return fmt.Errorf("%w: company_id=%d, branch_id=%d, error=%v", ErrServiceDegraded, companyID, branchID, err)
}

func (c *Client) checkCourt(ctx context.Context, companyID, branchID int64, courtID *int64) error {
	if courtID == nil {
		_, err := c.GetBranch(ctx, companyID, branchID)
		return err
	}

	// 404 по корту может означать и отсутствие филиала, поэтому сначала проверяем филиал
	if _, err := c.GetBranch(ctx, companyID, branchID); err != nil {
		return err
	}

	_, err := c.GetCourt(ctx, companyID, branchID, *courtID)
	return err
}

func checkStatus(resp *resty.Response, notFound error, apiErr ErrorResponse) error {
	switch resp.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return notFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, apiErr.Message)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}
}
