package restapi

type Node struct {
	Id   int     `json:"id"`
	City string  `json:"city"`
	Type string  `json:"type"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type Nodes struct {
	Nodes []Node `json:"nodes"`
}
