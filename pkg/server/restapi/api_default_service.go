package restapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/network/path"
	"github.com/thunur/travel-route-planner/pkg/routing"
)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	planner  *routing.Planner
	defaults routing.Preferences
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(net *network.Network, defaults routing.Preferences) DefaultApiServicer {
	return &DefaultApiService{
		planner:  routing.NewPlanner(net),
		defaults: defaults,
	}
}

// 请求未携带权重时退回服务端默认偏好
func (s *DefaultApiService) preferences(timeWeight, costWeight float64) routing.Preferences {
	if timeWeight == 0 && costWeight == 0 {
		return s.defaults
	}
	return routing.Preferences{TimeWeight: timeWeight, CostWeight: costWeight}
}

// ComputeRoute - Compute the best route between two places
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	start, ok := s.planner.ResolveNode(routeRequest.Start)
	if !ok {
		return Response(http.StatusBadRequest, "未知的地点: "+routeRequest.Start), nil
	}
	end, ok := s.planner.ResolveNode(routeRequest.End)
	if !ok {
		return Response(http.StatusBadRequest, "未知的地点: "+routeRequest.End), nil
	}

	prefs := s.preferences(routeRequest.TimeWeight, routeRequest.CostWeight)
	route, err := s.planner.PlanRoute(start, end, prefs)
	return s.routeResponse(route, err)
}

// ComputeTour - Compute a round trip through the given nodes
func (s *DefaultApiService) ComputeTour(ctx context.Context, tourRequest TourRequest) (ImplResponse, error) {
	prefs := s.preferences(tourRequest.TimeWeight, tourRequest.CostWeight)
	route, err := s.planner.PlanTour(tourRequest.NodeIds, prefs)
	return s.routeResponse(route, err)
}

// ComputeTrip - Compute a route through the given nodes in order
func (s *DefaultApiService) ComputeTrip(ctx context.Context, tripRequest TripRequest) (ImplResponse, error) {
	prefs := s.preferences(tripRequest.TimeWeight, tripRequest.CostWeight)
	route, err := s.planner.PlanTrip(tripRequest.NodeIds, prefs)
	return s.routeResponse(route, err)
}

func (s *DefaultApiService) GetNodes(ctx context.Context) (ImplResponse, error) {
	net := s.planner.Network()

	nodes := make([]Node, 0)
	for _, node := range net.GetNodes() {
		nodes = append(nodes, Node{
			Id:   node.Id,
			City: net.GetCity(node.CityId).Name,
			Type: node.Type.String(),
			Name: node.Name,
			Lat:  node.Position.Lat(),
			Lon:  node.Position.Lon(),
		})
	}

	return Response(http.StatusOK, Nodes{Nodes: nodes}), nil
}

func (s *DefaultApiService) GetCities(ctx context.Context) (ImplResponse, error) {
	cities := make([]City, 0)
	for _, city := range s.planner.Network().GetCities() {
		cities = append(cities, City{
			Id:            city.Id,
			Name:          city.Name,
			LandmarkId:    city.LandmarkId,
			AirportId:     city.AirportId,
			RailStationId: city.RailStationId,
		})
	}

	return Response(http.StatusOK, Cities{Cities: cities}), nil
}

// routeResponse maps planner outcomes onto http responses. Invalid
// input gets a 400, a well-formed request without a feasible journey
// stays 200 with Reachable false.
func (s *DefaultApiService) routeResponse(route *path.Route, err error) (ImplResponse, error) {
	if err != nil {
		switch {
		case errors.Is(err, path.ErrUnreachable), errors.Is(err, path.ErrNoFeasibleTour), errors.Is(err, path.ErrBrokenLeg):
			result := RouteResult{Reachable: false, Reason: err.Error(), Segments: make([]RouteSegment, 0)}
			return Response(http.StatusOK, result), nil
		case errors.Is(err, path.ErrInvalidNode), errors.Is(err, path.ErrTooFewStops), errors.Is(err, path.ErrTooManyStops):
			return Response(http.StatusBadRequest, err.Error()), nil
		}
		return Response(http.StatusInternalServerError, err.Error()), nil
	}

	net := s.planner.Network()
	result := RouteResult{
		Reachable:       true,
		Segments:        make([]RouteSegment, 0),
		TotalDistanceKm: route.TotalDistanceKm,
		TotalTimeHours:  route.TotalHours,
		TotalCostYuan:   route.TotalYuan,
	}
	for _, segment := range route.Segments {
		result.Segments = append(result.Segments, RouteSegment{
			From:       net.GetNode(segment.From).Name,
			To:         net.GetNode(segment.To).Name,
			Mode:       segment.Mode.String(),
			DistanceKm: segment.DistanceKm,
			TimeHours:  segment.Hours,
			CostYuan:   segment.Yuan,
		})
	}
	return Response(http.StatusOK, result), nil
}
