package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/thunur/travel-route-planner/internal/osmdata"
	"github.com/thunur/travel-route-planner/pkg/network"
)

func main() {
	inputFile := flag.String("f", "china-latest.osm.pbf", "OSM输入文件 (.osm.pbf 或 .osm)")
	outputFile := flag.String("o", "data/nodes.csv", "输出的网络CSV文件")
	flag.Parse()

	importer := osmdata.NewImporter(*inputFile)

	start := time.Now()
	if err := importer.Import(); err != nil {
		log.Fatalf("导入 %s 失败: %v", *inputFile, err)
	}
	elapsed := time.Since(start)
	fmt.Printf("[TIME] 导入OSM数据: %s\n", elapsed)

	start = time.Now()
	net := importer.BuildNetwork()
	elapsed = time.Since(start)
	fmt.Printf("[TIME] 构建交通网络: %s\n", elapsed)
	fmt.Printf("城市数量: %d\n", net.CityCount())
	fmt.Printf("节点数量: %d\n", net.NodeCount())

	start = time.Now()
	network.WriteCsv(net, *outputFile)
	elapsed = time.Since(start)
	fmt.Printf("[TIME] 导出CSV: %s\n", elapsed)
}
