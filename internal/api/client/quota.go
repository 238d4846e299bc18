package client

import (
	"context"
	"time"
)

// QuotaStatus is the current eBay API quota usage.
type QuotaStatus struct {
	DailyLimit int64      `json:"daily_limit"`
	DailyUsed  int64      `json:"daily_used"`
	Remaining  int64      `json:"remaining"`
	ResetAt    time.Time  `json:"reset_at"`
	Live       *LiveQuota `json:"live,omitempty"`
}

// LiveQuota is the quota state reported by the eBay Analytics API.
type LiveQuota struct {
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// GetQuota returns the current eBay API quota status.
func (c *Client) GetQuota(ctx context.Context) (*QuotaStatus, error) {
	var status QuotaStatus
	if err := c.get(ctx, "/api/v1/quota", &status); err != nil {
		return nil, err
	}
	return &status, nil
}
