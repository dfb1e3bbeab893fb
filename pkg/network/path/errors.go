package path

import "errors"

var (
	// ErrInvalidNode is returned when a node id does not exist in the network.
	ErrInvalidNode = errors.New("node id is not contained in the network")
	// ErrUnreachable is returned when no mode combination connects two nodes.
	ErrUnreachable = errors.New("no route between the given nodes")
	// ErrTooFewStops is returned for tours and trips over fewer than two stops.
	ErrTooFewStops = errors.New("at least two stops are required")
	// ErrTooManyStops is returned when a tour exceeds the exact solver limit.
	ErrTooManyStops = errors.New("too many stops for exact tour planning")
	// ErrNoFeasibleTour is returned when no closed tour covers all stops.
	ErrNoFeasibleTour = errors.New("no feasible tour through the given stops")
	// ErrBrokenLeg is returned when one leg of an ordered trip has no route.
	ErrBrokenLeg = errors.New("no route for a leg of the trip")
)
