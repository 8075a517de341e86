package carrierservice

import (
	"context"
	"encoding/json"
	"errors"
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

// Client talks to CarrierService, the carrier/driver profile store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a CarrierService client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSelectedTruck fetches the carrier's currently selected truck.
func (c *Client) GetSelectedTruck(ctx context.Context, carrierID int64) (*Truck, error) {
	url := fmt.Sprintf("%s/internal/carriers/%d/trucks/selected", c.baseURL, carrierID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return nil, ErrTruckNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var truck Truck
	if err := json.NewDecoder(resp.Body).Decode(&truck); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &truck, nil
}

// GetSelectedTruckWithGracefulDegradation fetches the selected truck but
// converts transport failures into ErrServiceDegraded: a booking can be
// created without denormalized truck data, so an outage of CarrierService
// must not block the dock schedule.
func (c *Client) GetSelectedTruckWithGracefulDegradation(ctx context.Context, carrierID int64) (*Truck, error) {
	truck, err := c.GetSelectedTruck(ctx, carrierID)
	if err != nil {
		if errors.Is(err, ErrTruckNotFound) {
			c.log.Info("No selected truck for carrier_id=%d", carrierID)
			return nil, err
		}

		c.log.Error("CarrierService unavailable, applying graceful degradation for carrier_id=%d: %v", carrierID, err)
		return nil, fmt.Errorf("%w: carrier_id=%d, error=%v", ErrServiceDegraded, carrierID, err)
	}

	c.log.Info("Fetched selected truck for carrier_id=%d, plate=%s", carrierID, truck.Plate)
	return truck, nil
}
