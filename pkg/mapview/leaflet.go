package mapview

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/network/path"
	"github.com/thunur/travel-route-planner/pkg/slice"
	"github.com/thunur/travel-route-planner/pkg/transport"
)

// ErrEmptyRoute is returned when there is nothing to draw.
var ErrEmptyRoute = errors.New("route is empty, nothing to draw")

// ModeColor returns the CSS color a mode is drawn with.
func ModeColor(mode transport.Mode) string {
	switch mode {
	case transport.Driving:
		return "#4A90E2" // 鲜艳的蓝色
	case transport.HighSpeedRail:
		return "#50E3C2" // 青绿色
	case transport.Flight:
		return "#F5A623" // 橙黄色
	case transport.Bus:
		return "#7ED321" // 鲜绿色
	default:
		return "#9B9B9B" // 默认灰色
	}
}

const htmlHead = `<!DOCTYPE html>
<html lang="zh">
<head>
    <meta charset="UTF-8">
    <title>路径规划可视化</title>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
    <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
    <style>
        body { margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; }
        #map { height: 100vh; width: 100vw; } /* Make map fill the viewport */
        .summary-box { position: absolute; top: 10px; left: 10px; z-index: 1000; background: rgba(255,255,255,0.9); padding: 10px 15px; border-radius: 8px; box-shadow: 0 1px 7px rgba(0,0,0,0.3); max-width: 350px; max-height: 90vh; overflow-y: auto; }
        .summary-box h4 { margin: 0 0 10px; text-align: center; font-weight: bold; color: #000; border-bottom: 1px solid #ccc; padding-bottom: 8px; }
        .summary-box p { margin: 4px 0; font-size: 13px; color: #333; line-height: 1.4; }
        .summary-box p b { min-width: 70px; display: inline-block; font-weight: bold; }
        .summary-box .segment { border-top: 1px dashed #ddd; padding-top: 8px; margin-top: 8px; }
        .summary-box .total { font-weight: bold; border-top: 2px solid #333; padding-top: 8px; margin-top: 8px; }
        .legend { padding: 10px; font-size: 14px; background: rgba(255,255,255,0.85); box-shadow: 0 0 15px rgba(0,0,0,0.2); border-radius: 5px; line-height: 1.5; color: #333; }
        .legend h4 { margin: 0 0 8px; color: #000; text-align: center; font-weight: bold; }
        .legend .legend-item { display: flex; align-items: center; height: 22px; margin-bottom: 2px;}
        .legend .legend-item i { width: 18px; height: 18px; margin-right: 8px; opacity: 0.9; flex-shrink: 0; border: 1px solid rgba(0,0,0,0.2);}
        .leaflet-popup-content-wrapper { border-radius: 5px; }
        .leaflet-popup-content b { color: #333; }
        .leaflet-popup-content p { margin: 5px 0; }
    </style>
</head>
<body>

`

const mapSetupJs = `    const map = L.map('map').setView([35.8617, 104.1954], 5);
    L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
        attribution: '&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors'
    }).addTo(map);

    fetch('https://geo.datav.aliyun.com/areas_v3/bound/100000_full.json')
      .then(res => res.json())
      .then(data => {
        L.geoJSON(data, {
          style: {
            color: '#666',
            weight: 1,
            opacity: 0.8,
            fillColor: '#888',
            fillOpacity: 0.1
          }
        }).addTo(map);
      });

    const landmarkIcon = new L.Icon({ iconUrl: 'data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHZpZXdCb3g9IjAgMCAyNCAyNCIgZmlsbD0iIzAwNzhmZiIgd2lkdGg9IjMycHgiIGhlaWdodD0iMzJweCI+PHBhdGggZD0iTTEyIDJDOC4xMyAyIDUgNS4xMyA1IDljMCA1LjI1IDcgMTMgNyAxM3M3LTcuNzUgNy0xM0MxOSAxMyAxMiAyem0wIDkuNWMtMS4zOCAwLTIuNS0xLjEyLTIuNS0yLjVzMS4xMi0yLjUgMi41LTIuNSAyLjUgMS4xMiAyLjUgMi41LTEuMTIgMi41LTIuNSAyLjV6Ii8+PC9zdmc+', iconSize: [32, 32], iconAnchor: [16, 32], popupAnchor: [0, -32] });
    const airportIcon = new L.Icon({ iconUrl: 'data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIGhlaWdodD0iMjRweCIgdmlld0JveD0iMCAwIDI0IDI0IiB3aWR0aD0iMjRweCIgZmlsbD0iIzAwMDAwMCI+PHBhdGggZD0iTTAsMCBIMjRWMEgyNEwwLDAgWiIgZmlsbD0ibm9uZSIvPjxwYXRoIGQ9Ik0yMSw5LjVjMC0uODMtLjY3LTEuNS0xLjUtMS41SDUuNjFMMzgsNkgxNFY0YzAtLjU1LTAuNDUtMS0xLTFIMTAuNWwtMiwySDd2Mi41bC0yLDIvMTAuNSwzLjUgVjIxaDJ2LTJsMS41LTEuNUgyMC41QzIwLjY3LDE2LjUgMjEsMTYuMzMgMjEsMTYuMTZWMTAuNUwyMSw5LjV6Ii8+PC9zdmc+', iconSize: [28, 28], iconAnchor: [14, 14] });
    const hsrIcon = new L.Icon({ iconUrl: 'data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIGVuYWJsZS1iYWNrZ3JvdW5kPSJuZXcgMCAwIDI0IDI0IiBoZWlnaHQ9IjI0cHgiIHZpZXdCb3g9IjAgMCAyNCAyNCIgd2lkdGg9IjI0cHgiIGZpbGw9IiMwMDAwMDAiPjxnLz48Zz48cGF0aCBkPSJNMiwxNmgyMGMyLjIyLDAsNC0xLjc4LDQtNFY0YzAtMS4zLTAuODEtMi40My0yLTIuODJWNEgyVjkuMTdDMy4xOSw5LjU3LDQsMTAuNyw0LDEycy0wLjgxLDIuNDMtMiwyLjg0VjE2eiBNMTgsOUg2VjVINzhWOUg2djJoMTJWOUwxOCw5eiIvPjxwYXRoIGQ9Ik0xOCwxOFYxM0g2djVDNC4xNywxMywzLDE0Ljc4LDMsMTZoMThjMC0xLjIyLTEuMTctMy0zLTN6IE0xMS41LDE3LjVjLTAuODMsMC0xLjUtMC42Ny0xLjUtMS41czAuNjctMS41LDEuNS0xLjVTMTIuNSwxNS4xNywxMi41LDE2UzEyLjMzLDE3LjUsMTEuNSwxNy41eiBNMTYuNSwxNy41Yy0wLjg0LDAtMS41LTAuNjctMS41LTEuNXMwLjY2LTEuNSwxLjUtMS41czEuNSwwLjY3LDEuNSwxLjVTLTkuODMsMTcuNSwxNi41LDE3LjV6Ii8+PC9nPg0KPC9zdmc+', iconSize: [28, 28], iconAnchor: [14, 14] });
    function getIcon(nodeType) { switch(nodeType) { case 'airport': return airportIcon; case 'hsr': return hsrIcon; default: return landmarkIcon; } }

`

const legendJs = `    const legend = L.control({position: 'bottomright'});
    legend.onAdd = function (map) {
        const div = L.DomUtil.create('div', 'info legend');
        const modes = [{mode: '驾车', color: '%s'}, {mode: '高铁', color: '%s'}, {mode: '飞机', color: '%s'}, {mode: '公交', color: '%s'}];
        div.innerHTML = '<h4>图例</h4>';
        for (let i = 0; i < modes.length; i++) {
            div.innerHTML += '<div class="legend-item"><i style="background:' + modes[i].color + '"></i>' + modes[i].mode + '</div>';
        }
        return div;
    };
    legend.addTo(map);
`

// Render produces a self-contained Leaflet page showing the route on a
// map of China, with a per-segment summary box and a mode legend.
func Render(net *network.Network, route *path.Route) string {
	var sb strings.Builder
	sb.WriteString(htmlHead)

	sb.WriteString("<div class=\"summary-box\">\n    <h4>行程摘要</h4>\n")
	for _, s := range route.Segments {
		from := net.GetNode(s.From)
		to := net.GetNode(s.To)
		sb.WriteString("    <div class=\"segment\">\n")
		fmt.Fprintf(&sb, "        <p><b>出发:</b> %s</p>\n", from.Name)
		fmt.Fprintf(&sb, "        <p><b>到达:</b> %s</p>\n", to.Name)
		fmt.Fprintf(&sb, "        <p><b>方式:</b> %s</p>\n", s.Mode.LocalName())
		fmt.Fprintf(&sb, "        <p><b>详情:</b> %.1f 公里, %.2f 小时, %.2f 元</p>\n", s.DistanceKm, s.Hours, s.Yuan)
		sb.WriteString("    </div>\n")
	}
	sb.WriteString("    <div class=\"total\">\n")
	fmt.Fprintf(&sb, "        <p><b>总距离:</b> %.1f 公里</p>\n", route.TotalDistanceKm)
	fmt.Fprintf(&sb, "        <p><b>总时间:</b> %.2f 小时</p>\n", route.TotalHours)
	fmt.Fprintf(&sb, "        <p><b>总花费:</b> %.2f 元</p>\n", route.TotalYuan)
	sb.WriteString("    </div>\n</div>\n\n")

	sb.WriteString("<div id=\"map\"></div>\n\n<script>\n")
	sb.WriteString(mapSetupJs)

	// 同一节点只绘制一次标记
	drawnNodes := make([]network.NodeId, 0)
	sb.WriteString("    const bounds = L.latLngBounds();\n")
	for _, s := range route.Segments {
		from := net.GetNode(s.From)
		to := net.GetNode(s.To)
		fmt.Fprintf(&sb, "    L.polyline([[%f, %f], [%f, %f]], { color: '%s', weight: 5, opacity: 0.8 }).addTo(map).bindPopup('<b>%s 到 %s</b><p>方式: %s</p><p>距离: %.1f 公里</p><p>时间: %.2f 小时</p><p>花费: %.2f 元</p>');\n",
			from.Position.Lat(), from.Position.Lon(), to.Position.Lat(), to.Position.Lon(),
			ModeColor(s.Mode), from.Name, to.Name, s.Mode.LocalName(), s.DistanceKm, s.Hours, s.Yuan)
		for _, node := range []*network.Node{from, to} {
			if !slice.Contains(drawnNodes, node.Id) {
				fmt.Fprintf(&sb, "    L.marker([%f, %f], { icon: getIcon('%s') }).addTo(map).bindTooltip('%s');\n",
					node.Position.Lat(), node.Position.Lon(), node.Type, node.Name)
				drawnNodes = append(drawnNodes, node.Id)
			}
		}
		fmt.Fprintf(&sb, "    bounds.extend([%f, %f]);\n", from.Position.Lat(), from.Position.Lon())
		fmt.Fprintf(&sb, "    bounds.extend([%f, %f]);\n", to.Position.Lat(), to.Position.Lon())
	}
	sb.WriteString("\n    if (bounds.isValid()) { map.fitBounds(bounds, { padding: [50, 50] }); }\n\n")

	fmt.Fprintf(&sb, legendJs,
		ModeColor(transport.Driving), ModeColor(transport.HighSpeedRail),
		ModeColor(transport.Flight), ModeColor(transport.Bus))
	sb.WriteString("</script>\n\n</body>\n</html>\n")
	return sb.String()
}

// WriteHtml renders the route and stores the page in a file.
func WriteHtml(net *network.Network, route *path.Route, filename string) error {
	if route == nil || len(route.Segments) == 0 {
		return ErrEmptyRoute
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(Render(net, route))
	return err
}
