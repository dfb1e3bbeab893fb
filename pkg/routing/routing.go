package routing

import (
	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/network/path"
)

// 出行偏好
type Preferences struct {
	TimeWeight float64 // 时间权重
	CostWeight float64 // 费用权重
}

// 时间优先
func Fastest() Preferences {
	return Preferences{TimeWeight: 1, CostWeight: 0}
}

// 费用优先
func Cheapest() Preferences {
	return Preferences{TimeWeight: 0, CostWeight: 1}
}

// 时间与费用并重
func Balanced() Preferences {
	return Preferences{TimeWeight: 0.5, CostWeight: 0.5}
}

// 解析偏好名称
func ParsePreferences(name string) (Preferences, bool) {
	switch name {
	case "fastest":
		return Fastest(), true
	case "cheapest":
		return Cheapest(), true
	case "balanced":
		return Balanced(), true
	}
	return Preferences{}, false
}

// 行程规划器
type Planner struct {
	network *network.Network
}

// 创建新的规划器
func NewPlanner(n *network.Network) *Planner {
	return &Planner{network: n}
}

// 获取底层交通网络
func (p *Planner) Network() *network.Network {
	return p.network
}

// 按名称解析节点。先按城市名找地标，再按节点名精确匹配。
func (p *Planner) ResolveNode(name string) (network.NodeId, bool) {
	if cityId := p.network.FindCityByName(name); cityId >= 0 {
		city := p.network.GetCity(cityId)
		if city.LandmarkId != network.NoNode {
			return city.LandmarkId, true
		}
	}
	if nodeId := p.network.FindNodeByName(name); nodeId != network.NoNode {
		return nodeId, true
	}
	return network.NoNode, false
}

// 计算两个节点间的最优路线
func (p *Planner) PlanRoute(start, end network.NodeId, prefs Preferences) (*path.Route, error) {
	return path.FindRoute(p.network, start, end, prefs.TimeWeight, prefs.CostWeight)
}

// 规划经过所有停靠点并回到起点的环游
func (p *Planner) PlanTour(stops []network.NodeId, prefs Preferences) (*path.Route, error) {
	return path.SolveTsp(p.network, stops, prefs.TimeWeight, prefs.CostWeight)
}

// 按给定顺序规划多段行程
func (p *Planner) PlanTrip(stops []network.NodeId, prefs Preferences) (*path.Route, error) {
	return path.FindSequentialRoute(p.network, stops, prefs.TimeWeight, prefs.CostWeight)
}
