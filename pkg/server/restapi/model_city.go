package restapi

// City lists a city with its hub node ids. An id of -1 means the city
// has no hub of that type.
type City struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	LandmarkId    int    `json:"landmark_id"`
	AirportId     int    `json:"airport_id"`
	RailStationId int    `json:"rail_station_id"`
}

type Cities struct {
	Cities []City `json:"cities"`
}
