package warehouseservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to WarehouseService, the catalog of organizations, facilities
// and appointment types. All lookups are read-only.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a WarehouseService client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetOrganization fetches an organization (tenant) by id.
func (c *Client) GetOrganization(ctx context.Context, orgID int64) (*Organization, error) {
	url := fmt.Sprintf("%s/internal/organizations/%d", c.baseURL, orgID)

	var org Organization
	if err := c.getJSON(ctx, url, &org, ErrOrganizationNotFound); err != nil {
		return nil, err
	}
	return &org, nil
}

// GetFacility fetches a facility by id.
func (c *Client) GetFacility(ctx context.Context, facilityID int64) (*Facility, error) {
	url := fmt.Sprintf("%s/internal/facilities/%d", c.baseURL, facilityID)

	var facility Facility
	if err := c.getJSON(ctx, url, &facility, ErrFacilityNotFound); err != nil {
		return nil, err
	}
	return &facility, nil
}

// GetAppointmentType fetches an appointment type of a facility.
func (c *Client) GetAppointmentType(ctx context.Context, facilityID, typeID int64) (*AppointmentType, error) {
	url := fmt.Sprintf("%s/internal/facilities/%d/appointment-types/%d", c.baseURL, facilityID, typeID)

	var apptType AppointmentType
	if err := c.getJSON(ctx, url, &apptType, ErrAppointmentTypeNotFound); err != nil {
		return nil, err
	}
	return &apptType, nil
}

// getJSON performs a GET and decodes the body, mapping 404 to notFoundErr.
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
