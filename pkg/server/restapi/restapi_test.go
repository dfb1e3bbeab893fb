package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/routing"
)

// 两座相距约一千公里的城市，各有地标、机场、高铁站
const apiTestCsv = `
北城,landmark,北城广场,39.9000,116.4000
北城,airport,北城机场,40.0500,116.6000
北城,railway,北城高铁站,39.8000,116.3000
南城,landmark,南城广场,31.2000,121.5000
南城,airport,南城机场,31.1500,121.3000
南城,railway,南城高铁站,31.1000,121.2000
`

// 一座只有地标的城市和一座只有机场的城市，彼此无法连通
const apiUnreachableCsv = `
孤山,landmark,孤山亭,28.0000,119.9000
空港,airport,空港机场,34.5000,111.1000
`

func newTestRouter(csv string) http.Handler {
	net := network.NewNetworkFromCsvString(csv)
	service := NewDefaultApiService(net, routing.Balanced())
	controller := NewDefaultApiController(service)
	return NewRouter(controller)
}

func postJson(handler http.Handler, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestApiComputeRoute(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	recorder := postJson(handler, "/routes", `{"start":"北城","end":"南城"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status is %v, should be %v, body: %v\n", recorder.Code, http.StatusOK, recorder.Body.String())
	}

	result := RouteResult{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid json: %v\n", err)
	}
	if !result.Reachable {
		t.Fatalf("route is not reachable, reason: %v\n", result.Reason)
	}
	if len(result.Segments) < 1 {
		t.Fatalf("route has no segments\n")
	}
	// 城市名应当解析到地标
	if from := result.Segments[0].From; from != "北城广场" {
		t.Errorf("route starts at %v, should be %v\n", from, "北城广场")
	}
	if to := result.Segments[len(result.Segments)-1].To; to != "南城广场" {
		t.Errorf("route ends at %v, should be %v\n", to, "南城广场")
	}
	if result.TotalDistanceKm <= 0 || result.TotalTimeHours <= 0 || result.TotalCostYuan <= 0 {
		t.Errorf("route totals are %v km, %v h, %v yuan, should all be positive\n",
			result.TotalDistanceKm, result.TotalTimeHours, result.TotalCostYuan)
	}
}

func TestApiComputeRouteUnknownPlace(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	recorder := postJson(handler, "/routes", `{"start":"不存在","end":"南城"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status is %v, should be %v\n", recorder.Code, http.StatusBadRequest)
	}
}

func TestApiComputeRouteMissingField(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	recorder := postJson(handler, "/routes", `{"start":"北城"}`)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Errorf("status is %v, should be %v\n", recorder.Code, http.StatusUnprocessableEntity)
	}
}

func TestApiComputeRouteUnknownField(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	recorder := postJson(handler, "/routes", `{"start":"北城","end":"南城","via":"西城"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status is %v, should be %v\n", recorder.Code, http.StatusBadRequest)
	}
}

func TestApiComputeRouteUnreachable(t *testing.T) {
	handler := newTestRouter(apiUnreachableCsv)

	recorder := postJson(handler, "/routes", `{"start":"孤山","end":"空港机场"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status is %v, should be %v\n", recorder.Code, http.StatusOK)
	}

	result := RouteResult{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid json: %v\n", err)
	}
	if result.Reachable {
		t.Errorf("route is reachable, should not be\n")
	}
	if result.Reason == "" {
		t.Errorf("unreachable result carries no reason\n")
	}
}

func TestApiComputeTour(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	recorder := postJson(handler, "/tours", `{"nodeIds":[0,3]}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status is %v, should be %v, body: %v\n", recorder.Code, http.StatusOK, recorder.Body.String())
	}

	result := RouteResult{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid json: %v\n", err)
	}
	if !result.Reachable {
		t.Fatalf("tour is not reachable, reason: %v\n", result.Reason)
	}
	if len(result.Segments) < 2 {
		t.Fatalf("tour has %v segments, should have at least 2\n", len(result.Segments))
	}
	// 环游必须回到起点
	if from, to := result.Segments[0].From, result.Segments[len(result.Segments)-1].To; from != to {
		t.Errorf("tour runs from %v to %v, should be closed\n", from, to)
	}
}

func TestApiComputeTourTooFewStops(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	recorder := postJson(handler, "/tours", `{"nodeIds":[0]}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status is %v, should be %v\n", recorder.Code, http.StatusBadRequest)
	}
}

func TestApiComputeTrip(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	recorder := postJson(handler, "/trips", `{"nodeIds":[0,3,0],"timeWeight":1}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status is %v, should be %v, body: %v\n", recorder.Code, http.StatusOK, recorder.Body.String())
	}

	result := RouteResult{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid json: %v\n", err)
	}
	if !result.Reachable {
		t.Fatalf("trip is not reachable, reason: %v\n", result.Reason)
	}
	if result.Segments[0].From != "北城广场" || result.Segments[len(result.Segments)-1].To != "北城广场" {
		t.Errorf("trip does not start and end at 北城广场\n")
	}
}

func TestApiGetNodes(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	request := httptest.NewRequest(http.MethodGet, "/nodes", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status is %v, should be %v\n", recorder.Code, http.StatusOK)
	}

	result := Nodes{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid json: %v\n", err)
	}
	if len(result.Nodes) != 6 {
		t.Fatalf("node count is %v, should be %v\n", len(result.Nodes), 6)
	}
	if result.Nodes[1].City != "北城" || result.Nodes[1].Type != "airport" {
		t.Errorf("node 1 is %v/%v, should be 北城/airport\n", result.Nodes[1].City, result.Nodes[1].Type)
	}
}

func TestApiGetCities(t *testing.T) {
	handler := newTestRouter(apiTestCsv)

	request := httptest.NewRequest(http.MethodGet, "/cities", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status is %v, should be %v\n", recorder.Code, http.StatusOK)
	}

	result := Cities{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid json: %v\n", err)
	}
	citiesReference := []City{
		{Id: 0, Name: "北城", LandmarkId: 0, AirportId: 1, RailStationId: 2},
		{Id: 1, Name: "南城", LandmarkId: 3, AirportId: 4, RailStationId: 5},
	}
	if len(result.Cities) != len(citiesReference) {
		t.Fatalf("city count is %v, should be %v\n", len(result.Cities), len(citiesReference))
	}
	for i, city := range result.Cities {
		if city != citiesReference[i] {
			t.Errorf("city %v is %v, should be %v\n", i, city, citiesReference[i])
		}
	}
}
