package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/network/path"
	"github.com/thunur/travel-route-planner/pkg/routing"
	"github.com/thunur/travel-route-planner/pkg/slice"
)

func main() {
	amountTargets := flag.Int("n", 100, "测试的起终点对数量")
	seed := flag.Int64("seed", 0, "随机数种子, 0表示使用当前时间")
	networkFile := flag.String("network", "", "网络数据CSV文件路径，留空使用内置数据")
	preference := flag.String("preference", "balanced", "出行偏好: fastest, cheapest, balanced 或 custom")
	timeWeight := flag.Float64("time-weight", 0.5, "custom偏好下的时间权重")
	costWeight := flag.Float64("cost-weight", 0.5, "custom偏好下的费用权重")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	flag.Parse()

	if !slice.Contains([]string{"fastest", "cheapest", "balanced", "custom"}, *preference) {
		log.Fatalf("未知的偏好: %s", *preference)
	}
	prefs := routing.Preferences{TimeWeight: *timeWeight, CostWeight: *costWeight}
	if *preference != "custom" {
		prefs, _ = routing.ParsePreferences(*preference)
	}

	start := time.Now()
	net := loadNetwork(*networkFile)
	elapsed := time.Since(start)
	fmt.Printf("[TIME-Import] = %s\n", elapsed)
	fmt.Printf("城市数量: %d, 节点数量: %d\n", net.CityCount(), net.NodeCount())

	targets := createTargets(*amountTargets, net, *seed)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	benchmark(net, targets, prefs)
}

func loadNetwork(filename string) *network.Network {
	if filename == "" {
		return network.NewDefaultNetwork()
	}
	net, err := network.NewNetworkFromCsvFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	return net
}

func createTargets(n int, net *network.Network, seed int64) [][2]int {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	targets := make([][2]int, n)
	for i := 0; i < n; i++ {
		origin := rng.Intn(net.NodeCount())
		destination := rng.Intn(net.NodeCount())
		targets[i] = [2]int{origin, destination}
	}
	return targets
}

// Run the search over all targets and report timing and search effort
func benchmark(net *network.Network, targets [][2]int, prefs routing.Preferences) {
	var runtime time.Duration = 0
	var runtimeWithRouteExtraction time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	relaxationAttempts := 0
	edgeRelaxations := 0
	unreachable := 0

	showResults := func() {
		if completed == 0 {
			return
		}
		fmt.Printf("Average runtime: %.3fms, %.3fms\n", float64(int(runtime.Nanoseconds())/completed)/1000000, float64(int(runtimeWithRouteExtraction.Nanoseconds())/completed)/1000000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average relaxation attempts: %d\n", relaxationAttempts/completed)
		fmt.Printf("Average edge relaxations: %d\n", edgeRelaxations/completed)
		fmt.Printf("%v/%v unreachable pairs.\n", unreachable, completed)
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	for i, target := range targets {
		origin := target[0]
		destination := target[1]

		dijkstra := path.NewDijkstra(net, prefs.TimeWeight, prefs.CostWeight)

		start := time.Now()
		cost := dijkstra.ComputeShortestPath(origin, destination)
		elapsed := time.Since(start)

		route := dijkstra.GetRoute(origin, destination)
		elapsedRoute := time.Since(start)

		pqPops += dijkstra.GetPqPops()
		pqUpdates += dijkstra.GetPqUpdates()
		relaxationAttempts += dijkstra.GetRelaxationAttempts()
		edgeRelaxations += dijkstra.GetEdgeRelaxations()

		segments := 0
		if route != nil {
			segments = len(route.Segments)
		}
		if cost < 0 {
			unreachable++
		}

		fmt.Printf("[%3v TIME-Search, TIME-Route, PQ Pops, PQ Updates, relaxed Edges, relax attempts, segments] = %12s, %12s, %7d, %7d, %7d, %7d, %3d\n",
			i, elapsed, elapsedRoute, dijkstra.GetPqPops(), dijkstra.GetPqUpdates(), dijkstra.GetEdgeRelaxations(), dijkstra.GetRelaxationAttempts(), segments)

		runtime += elapsed
		runtimeWithRouteExtraction += elapsedRoute
		completed++
	}
	// normal termination, show results
	showResults()
}
