package courier

import (
	"fmt"

	"delivery/internal/pkg/errs"
)

// Transport represents the vehicle a courier uses for deliveries.
// Each transport has a fixed average speed used to estimate delivery times.
type Transport int

const (
	// TransportUnknown represents an invalid or undefined transport.
	TransportUnknown Transport = iota

	// TransportPedestrian is a courier on foot.
	TransportPedestrian

	// TransportBicycle is a courier on a bicycle.
	TransportBicycle

	// TransportCar is a courier driving a car.
	TransportCar
)

// getTransportStrings returns a map of Transport values to their string representations.
func getTransportStrings() map[Transport]string {
	return map[Transport]string{
		TransportUnknown:    "UNKNOWN",
		TransportPedestrian: "PEDESTRIAN",
		TransportBicycle:    "BICYCLE",
		TransportCar:        "CAR",
	}
}

// getTransportSpeeds returns the average speed in km/h per transport.
func getTransportSpeeds() map[Transport]float64 {
	return map[Transport]float64{
		TransportPedestrian: 5,
		TransportBicycle:    15,
		TransportCar:        40,
	}
}

// TransportFromString parses a transport from its wire representation
// (e.g. "BICYCLE"). Returns an error for unrecognized values.
func TransportFromString(s string) (Transport, error) {
	for transport, str := range getTransportStrings() {
		if transport != TransportUnknown && str == s {
			return transport, nil
		}
	}
	return TransportUnknown, errs.NewValueIsInvalidErrorWithCause("transport is invalid",
		fmt.Errorf("%q is not a recognized transport", s))
}

// Validate checks if the Transport value is valid.
func (t Transport) Validate() error {
	if _, ok := getTransportSpeeds()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport is invalid",
			fmt.Errorf("%d is not a valid transport", t))
	}
	return nil
}

// String returns the wire name of the transport.
// Implements fmt.Stringer and is safe to call on any Transport value.
func (t Transport) String() string {
	if str, ok := getTransportStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// SpeedKMH returns the transport's average speed in km/h.
// Returns 0 for invalid transports.
func (t Transport) SpeedKMH() float64 {
	return getTransportSpeeds()[t]
}
