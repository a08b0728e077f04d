package geo

import (
	"context"
	"errors"
)

// ErrPermissionDenied is returned when the user has not consented to
// location capture.
var ErrPermissionDenied = errors.New("location permission denied")

// Position is a captured device location.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // meters
}

// Provider supplies the device's current coordinates on demand.
type Provider interface {
	// RequestPermission asks for foreground location access. Returns
	// ErrPermissionDenied when the user has not granted it.
	RequestPermission(ctx context.Context) error
	// Current captures the current position at high accuracy.
	Current(ctx context.Context) (Position, error)
}

// ConfigProvider serves the workstation coordinates from configuration.
// A terminal has no GPS; the configured consent flag stands in for the OS
// permission prompt.
type ConfigProvider struct {
	Latitude  float64
	Longitude float64
	Consent   bool
}

// Nominal accuracy reported for configured coordinates.
const configAccuracyMeters = 15.0

func (p *ConfigProvider) RequestPermission(ctx context.Context) error {
	if !p.Consent {
		return ErrPermissionDenied
	}
	return nil
}

func (p *ConfigProvider) Current(ctx context.Context) (Position, error) {
	if p.Latitude == 0 && p.Longitude == 0 {
		return Position{}, errors.New("no coordinates configured, set HRTRACK_LATITUDE/HRTRACK_LONGITUDE or pass --lat/--lon")
	}
	return Position{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Accuracy:  configAccuracyMeters,
	}, nil
}
