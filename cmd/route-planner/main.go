package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/thunur/travel-route-planner/pkg/mapview"
	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/network/path"
	"github.com/thunur/travel-route-planner/pkg/routing"
)

type console struct {
	scanner *bufio.Scanner
}

func (c *console) readLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *console) readFloat(prompt string, fallback float64) float64 {
	line, ok := c.readLine(prompt)
	if !ok || line == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Printf("无效输入，使用默认值 %.1f。\n", fallback)
		return fallback
	}
	return value
}

func (c *console) readPreferences() routing.Preferences {
	timeWeight := c.readFloat("请输入时间权重 (0.0-1.0): ", 0.5)
	costWeight := c.readFloat("请输入成本权重 (0.0-1.0): ", 0.5)
	return routing.Preferences{TimeWeight: timeWeight, CostWeight: costWeight}
}

// collectStops reads hub names until 'done'. Unknown names are
// reported and skipped, known ones are resolved to node ids.
func (c *console) collectStops(planner *routing.Planner, header string, maxStops int) []network.NodeId {
	fmt.Println(header)
	stops := make([]network.NodeId, 0)
	for len(stops) < maxStops {
		line, ok := c.readLine(fmt.Sprintf("地标 %d: ", len(stops)+1))
		if !ok || line == "done" {
			break
		}
		if line == "" {
			continue
		}
		if id, found := planner.ResolveNode(line); found {
			stops = append(stops, id)
		} else {
			fmt.Printf("未找到地标: %s\n", line)
		}
	}
	return stops
}

type routeSegmentJson struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	TimeHours  float64 `json:"time_hours"`
	CostYuan   float64 `json:"cost_yuan"`
}

type routeJson struct {
	Segments        []routeSegmentJson `json:"segments"`
	TotalTimeHours  float64            `json:"total_time_hours"`
	TotalCostYuan   float64            `json:"total_cost_yuan"`
	TotalDistanceKm float64            `json:"total_distance_km"`
}

// 输出保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func printRouteHumanReadable(net *network.Network, route *path.Route) {
	if route == nil || len(route.Segments) == 0 {
		fmt.Println("\n> 未能找到有效路径。")
		return
	}
	fmt.Println("\n--- 规划结果 ---")
	for _, segment := range route.Segments {
		fmt.Printf("  %s --(%s)--> %s\n",
			net.GetNode(segment.From).Name,
			segment.Mode.LocalName(),
			net.GetNode(segment.To).Name)
	}
	fmt.Printf("--- 总计: 距离 %.1fkm, 时间 %.2fh, 成本 %.2f元 ---\n",
		route.TotalDistanceKm, route.TotalHours, route.TotalYuan)
}

func printRouteJson(net *network.Network, route *path.Route) {
	segments := make([]routeSegmentJson, 0)
	for _, segment := range route.Segments {
		segments = append(segments, routeSegmentJson{
			From:       net.GetNode(segment.From).Name,
			To:         net.GetNode(segment.To).Name,
			Mode:       segment.Mode.String(),
			DistanceKm: round2(segment.DistanceKm),
			TimeHours:  round2(segment.Hours),
			CostYuan:   round2(segment.Yuan),
		})
	}
	document := struct {
		Route routeJson `json:"route"`
	}{
		Route: routeJson{
			Segments:        segments,
			TotalTimeHours:  round2(route.TotalHours),
			TotalCostYuan:   round2(route.TotalYuan),
			TotalDistanceKm: round2(route.TotalDistanceKm),
		},
	}
	encoded, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		fmt.Printf("{\"error\": \"%v\"}\n", err)
		return
	}
	fmt.Println(string(encoded))
}

func printNoRoute() {
	fmt.Println("\n> 未能找到有效路径。")
	fmt.Println("\n--- JSON格式输出 ---")
	fmt.Println(`{"error": "No route found."}`)
}

func printRoute(net *network.Network, route *path.Route) {
	printRouteHumanReadable(net, route)
	fmt.Println("\n--- JSON格式输出 ---")
	printRouteJson(net, route)
}

func handleSinglePathPlanning(planner *routing.Planner, c *console) *path.Route {
	startName, ok := c.readLine("请输入起点地标: ")
	if !ok {
		return nil
	}
	endName, ok := c.readLine("请输入终点地标: ")
	if !ok {
		return nil
	}

	start, startFound := planner.ResolveNode(startName)
	end, endFound := planner.ResolveNode(endName)
	if !startFound || !endFound {
		fmt.Println("错误: 未找到输入的地标名称。")
		return nil
	}

	prefs := c.readPreferences()

	route, err := planner.PlanRoute(start, end, prefs)
	if err != nil {
		if errors.Is(err, path.ErrUnreachable) {
			printNoRoute()
		} else {
			fmt.Printf("错误: %v\n", err)
		}
		return nil
	}
	printRoute(planner.Network(), route)
	return route
}

func handleTspPlanning(planner *routing.Planner, c *console) *path.Route {
	stops := c.collectStops(planner, "请输入要经过的地标列表 (起点为第一个, 输入 'done' 结束):", path.MaxTourStops)
	if len(stops) < 2 {
		fmt.Println("错误: TSP需要至少2个地标。")
		return nil
	}

	prefs := c.readPreferences()

	fmt.Println("\n正在计算TSP路径，请稍候...")
	route, err := planner.PlanTour(stops, prefs)
	if err != nil {
		if errors.Is(err, path.ErrNoFeasibleTour) {
			printNoRoute()
		} else {
			fmt.Printf("错误: %v\n", err)
		}
		return nil
	}
	printRoute(planner.Network(), route)
	return route
}

func handleTripPlanning(planner *routing.Planner, c *console) *path.Route {
	stops := c.collectStops(planner, "请输入要经过的地标列表 (按访问顺序, 输入 'done' 结束):", 20)
	if len(stops) < 2 {
		fmt.Println("错误: 顺序行程需要至少2个地标。")
		return nil
	}

	prefs := c.readPreferences()

	route, err := planner.PlanTrip(stops, prefs)
	if err != nil {
		if errors.Is(err, path.ErrBrokenLeg) {
			printNoRoute()
			fmt.Printf("(%v)\n", err)
		} else {
			fmt.Printf("错误: %v\n", err)
		}
		return nil
	}
	printRoute(planner.Network(), route)
	return route
}

func printCities(net *network.Network) {
	fmt.Println("\n--- 城市列表 ---")
	for _, city := range net.GetCities() {
		parts := make([]string, 0, 3)
		for _, hubType := range []network.HubType{network.Landmark, network.Airport, network.RailStation} {
			if id := city.HubId(hubType); id != network.NoNode {
				parts = append(parts, hubType.LocalName()+": "+net.GetNode(id).Name)
			}
		}
		fmt.Printf("%3d. %s (%s)\n", city.Id, city.Name, strings.Join(parts, " / "))
	}
	fmt.Printf("共 %d 座城市, %d 个节点\n", net.CityCount(), net.NodeCount())
}

func handleExport(net *network.Network, c *console, route *path.Route) {
	if route == nil || len(route.Segments) == 0 {
		fmt.Println("Path is empty, not generating visualization file.")
		return
	}
	prefix, ok := c.readLine("请输入输出文件名前缀 (默认 route_visualization): ")
	if !ok {
		return
	}
	if prefix == "" {
		prefix = "route_visualization"
	}

	htmlFile := prefix + ".html"
	if err := mapview.WriteHtml(net, route, htmlFile); err != nil {
		fmt.Printf("错误: 导出HTML失败: %v\n", err)
	} else {
		fmt.Printf("\nRoute visualization generated: %s\n", htmlFile)
	}

	geojsonFile := prefix + ".geojson"
	if err := mapview.WriteGeoJson(mapview.RouteFeatureCollection(net, route), geojsonFile); err != nil {
		fmt.Printf("错误: 导出GeoJSON失败: %v\n", err)
	} else {
		fmt.Printf("Route GeoJSON generated: %s\n", geojsonFile)
	}
}

// loadNetwork reads the CSV file and falls back to the built-in
// dataset when the file cannot be read.
func loadNetwork(filename string) *network.Network {
	net, err := network.NewNetworkFromCsvFile(filename)
	if err != nil {
		log.Printf("未能读取 %s (%v), 使用内置数据\n", filename, err)
		return network.NewDefaultNetwork()
	}
	return net
}

func main() {
	networkFile := flag.String("network", "data/nodes.csv", "网络数据CSV文件路径，读取失败时使用内置数据")
	flag.Parse()

	net := loadNetwork(*networkFile)
	planner := routing.NewPlanner(net)
	c := &console{scanner: bufio.NewScanner(os.Stdin)}

	var lastRoute *path.Route

	for {
		fmt.Println("\n========== 交通网络路径规划系统 ==========")
		fmt.Println("1. 单点路径规划")
		fmt.Println("2. 多点旅行规划 (TSP)")
		fmt.Println("3. 顺序多段行程规划")
		fmt.Println("4. 查看城市列表")
		fmt.Println("5. 导出上次路线 (HTML + GeoJSON)")
		fmt.Println("6. 退出")

		line, ok := c.readLine("请选择功能: ")
		if !ok {
			fmt.Println("感谢使用！")
			return
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			choice = 0
		}

		switch choice {
		case 1:
			if route := handleSinglePathPlanning(planner, c); route != nil {
				lastRoute = route
			}
		case 2:
			if route := handleTspPlanning(planner, c); route != nil {
				lastRoute = route
			}
		case 3:
			if route := handleTripPlanning(planner, c); route != nil {
				lastRoute = route
			}
		case 4:
			printCities(net)
		case 5:
			handleExport(net, c, lastRoute)
		case 6:
			fmt.Println("感谢使用！")
			return
		default:
			fmt.Println("无效输入，请输入1-6之间的数字。")
		}
	}
}
