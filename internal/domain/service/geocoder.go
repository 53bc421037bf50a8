package service

import "context"

// AddressNotAvailable is the placeholder returned when no address can be resolved.
const AddressNotAvailable = "Address not available"

// ReverseGeocoder resolves coordinates to a human readable address.
type ReverseGeocoder interface {
	// Reverse never fails; any problem degrades to AddressNotAvailable.
	Reverse(ctx context.Context, lat, lng float64) string
}
