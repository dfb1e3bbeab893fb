package network

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/thunur/travel-route-planner/pkg/geometry"
)

// NewNetworkFromCsvFile reads a network from a CSV file. The error is
// non-nil only when the file cannot be opened, so callers may fall back
// to the built-in dataset.
func NewNetworkFromCsvFile(filename string) (*Network, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewNetworkFromCsvString(string(file)), nil
}

// NewNetworkFromCsvString parses CSV lines of the form
//
//	city,node_type,node_name,lat,lon
//
// Blank lines and lines starting with '#' are skipped. Malformed lines
// are reported and skipped instead of aborting the whole load.
func NewNetworkFromCsvString(csv string) *Network {
	network := NewNetwork()
	scanner := bufio.NewScanner(strings.NewReader(csv))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 || line[0] == '#' {
			// skip empty lines and comments
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 5 {
			log.Printf("警告: 第%d行字段数错误, 已跳过: %s", lineNumber, line)
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		hubType, ok := ParseHubType(fields[1])
		if !ok {
			log.Printf("警告: 第%d行节点类型未知, 已跳过: %s", lineNumber, fields[1])
			continue
		}
		lat, err1 := strconv.ParseFloat(fields[3], 64)
		lon, err2 := strconv.ParseFloat(fields[4], 64)
		if err1 != nil || err2 != nil {
			log.Printf("警告: 第%d行坐标无效, 已跳过: %s", lineNumber, line)
			continue
		}
		network.AddNode(fields[0], hubType, fields[2], geometry.MakePoint(lat, lon))
	}
	return network
}

// AsCsv serializes the network in the format NewNetworkFromCsvString
// reads back.
func (n *Network) AsCsv() string {
	var sb strings.Builder
	sb.WriteString("# city,node_type,node_name,lat,lon\n")
	for i := range n.Nodes {
		node := &n.Nodes[i]
		city := n.GetCity(node.CityId)
		sb.WriteString(fmt.Sprintf("%v,%v,%v,%v,%v\n",
			city.Name, node.Type, node.Name, node.Position.Lat(), node.Position.Lon()))
	}
	return sb.String()
}

// WriteCsv stores the network in a CSV file.
func WriteCsv(n *Network, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	networkAsCsv := n.AsCsv()
	fmt.Println("网络数据长度", len(networkAsCsv))
	writer := bufio.NewWriter(file)
	writer.WriteString(networkAsCsv)
	writer.Flush()
}
