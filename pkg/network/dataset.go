package network

import (
	"github.com/thunur/travel-route-planner/pkg/geometry"
)

// 原始城市数据，经纬度为近似值。机场或高铁站名为空表示该城市没有对应枢纽。
type rawCity struct {
	name             string
	landmark         string
	landLat, landLon float64
	airport          string
	airLat, airLon   float64
	railway          string
	railLat, railLon float64
}

var defaultCities = []rawCity{
	{"北京", "故宫", 39.9163, 116.3972, "首都国际机场", 40.0801, 116.5845, "北京南站", 39.8652, 116.3786},
	{"上海", "外滩", 31.2393, 121.4839, "虹桥国际机场", 31.1979, 121.3363, "上海虹桥站", 31.1946, 121.3267},
	{"广州", "广州塔", 23.1065, 113.3246, "白云国际机场", 23.3924, 113.2988, "广州南站", 22.9904, 113.2642},
	{"深圳", "世界之窗", 22.5371, 113.9715, "宝安国际机场", 22.6392, 113.8106, "深圳北站", 22.6103, 114.0303},
	{"成都", "宽窄巷子", 30.6700, 104.0600, "双流国际机场", 30.5785, 103.9471, "成都东站", 30.6593, 104.1413},
	{"西安", "兵马俑", 34.3851, 109.2792, "咸阳国际机场", 34.4471, 108.7523, "西安北站", 34.3789, 108.9203},
	{"杭州", "西湖", 30.2460, 120.1552, "萧山国际机场", 30.2295, 120.4342, "杭州东站", 30.2931, 120.2152},
	{"武汉", "黄鹤楼", 30.5463, 114.2934, "天河国际机场", 30.7831, 114.2085, "武汉站", 30.6100, 114.4239},
	{"重庆", "洪崖洞", 29.5630, 106.5516, "江北国际机场", 29.7195, 106.6417, "重庆西站", 29.5085, 106.4560},
	{"长沙", "橘子洲", 28.1947, 112.9828, "黄花国际机场", 28.1892, 113.2196, "长沙南站", 28.1518, 113.0612},
	// 无高铁站
	{"三门峡", "天鹅湖", 34.7726, 111.1813, "三门峡机场", 34.5150, 111.1000, "", 0, 0},
	// 无机场
	{"苏州", "拙政园", 31.3233, 120.6267, "", 0, 0, "苏州站", 31.3210, 120.6190},
	// 无机场且无高铁站
	{"丽水", "缙云仙都", 28.4563, 119.9220, "", 0, 0, "", 0, 0},
	{"天津", "天津之眼", 39.1423, 117.1767, "滨海国际机场", 39.1249, 117.3624, "天津西站", 39.1556, 117.1593},
	{"南京", "夫子庙", 32.0293, 118.7881, "禄口国际机场", 31.7420, 118.8622, "南京南站", 31.9867, 118.7954},
	{"哈尔滨", "中央大街", 45.7567, 126.6424, "太平国际机场", 45.6234, 126.2503, "哈尔滨西站", 45.6787, 126.6077},
	{"青岛", "栈桥", 36.0671, 120.3826, "胶东国际机场", 36.2715, 120.3740, "青岛北站", 36.1750, 120.3730},
	{"乌鲁木齐", "红山公园", 43.8280, 87.6170, "地窝堡国际机场", 43.9071, 87.4742, "乌鲁木齐站", 43.7940, 87.5650},
	{"拉萨", "布达拉宫", 29.6510, 91.1180, "贡嘎机场", 29.2978, 90.9119, "拉萨站", 29.6390, 91.1511},
	{"昆明", "滇池", 24.8822, 102.7123, "长水国际机场", 25.1019, 102.9292, "昆明南站", 24.9196, 102.6200},
	{"贵阳", "甲秀楼", 26.5711, 106.7076, "龙洞堡机场", 26.5385, 106.8012, "贵阳北站", 26.6449, 106.7087},
	{"兰州", "中山桥", 36.0613, 103.8343, "中川机场", 36.5152, 103.6200, "兰州西站", 36.0570, 103.6900},
	{"西宁", "塔尔寺", 36.5023, 101.5692, "曹家堡机场", 36.5276, 102.0431, "西宁站", 36.6285, 101.7574},
	{"太原", "晋祠", 37.7310, 112.4700, "武宿机场", 37.7485, 112.6283, "太原南站", 37.7643, 112.6640},
	{"郑州", "少林寺", 34.7466, 113.6254, "新郑机场", 34.5190, 113.8400, "郑州东站", 34.7858, 113.7312},
	{"石家庄", "正定古城", 38.0428, 114.5140, "正定机场", 38.2800, 114.6960, "石家庄站", 38.0423, 114.4990},
	{"福州", "三坊七巷", 26.0858, 119.2965, "长乐机场", 25.9342, 119.6632, "福州站", 26.0580, 119.3100},
	{"厦门", "鼓浪屿", 24.4798, 118.0894, "高崎机场", 24.5449, 118.1270, "厦门北站", 24.7215, 118.0322},
	{"南昌", "滕王阁", 28.6829, 115.8582, "昌北机场", 28.8650, 115.8999, "南昌西站", 28.6466, 115.8054},
	{"合肥", "包公园", 31.8613, 117.2856, "新桥机场", 31.9912, 116.9740, "合肥南站", 31.8206, 117.3389},
	{"宁波", "天一阁", 29.8683, 121.5440, "栎社机场", 29.8267, 121.4619, "宁波站", 29.8668, 121.5443},
	{"济南", "趵突泉", 36.6759, 117.0009, "遥墙机场", 36.8572, 117.2145, "济南西站", 36.6824, 116.8752},
	{"沈阳", "故宫", 41.7957, 123.4328, "桃仙机场", 41.6418, 123.4840, "沈阳北站", 41.8138, 123.4331},
	{"大连", "星海广场", 38.8785, 121.5500, "周水子机场", 38.9657, 121.5381, "大连北站", 38.9489, 121.6226},
	{"海口", "骑楼老街", 20.0440, 110.3249, "美兰机场", 19.9349, 110.4584, "海口东站", 20.0448, 110.3612},
	{"三亚", "亚龙湾", 18.2528, 109.5120, "凤凰机场", 18.3026, 109.4123, "三亚站", 18.2625, 109.4990},
	{"南宁", "青秀山", 22.8167, 108.3833, "吴圩机场", 22.6083, 108.1714, "南宁东站", 22.8130, 108.3730},
	{"桂林", "漓江", 25.2736, 110.2900, "两江机场", 25.2181, 110.0392, "桂林北站", 25.3081, 110.3186},
	{"珠海", "长隆海洋", 22.1163, 113.5767, "金湾机场", 22.0064, 113.3760, "", 0, 0},
	{"澳门", "大三巴", 22.1987, 113.5439, "澳门机场", 22.1496, 113.5916, "", 0, 0},
	{"香港", "维多利亚港", 22.2830, 114.1588, "赤鱲角机场", 22.3080, 113.9185, "西九龙站", 22.3040, 114.1600},
	{"温州", "江心屿", 27.9960, 120.6994, "龙湾机场", 27.9127, 120.8522, "温州南站", 27.9300, 120.7160},
	{"银川", "沙湖", 38.4672, 106.2737, "河东机场", 38.3223, 106.3955, "银川站", 38.4920, 106.1840},
	{"呼和浩特", "大召寺", 40.8118, 111.6586, "白塔机场", 40.8514, 111.8240, "呼和浩特东站", 40.8218, 111.6710},
	{"大庆", "铁人广场", 46.5977, 125.0000, "", 0, 0, "大庆站", 46.5974, 125.1031},
	{"宜昌", "三峡大坝", 30.6919, 111.2865, "三峡机场", 30.5555, 111.4848, "", 0, 0},
	{"自贡", "恐龙博物馆", 29.3390, 104.7784, "", 0, 0, "", 0, 0},
	{"扬州", "瘦西湖", 32.3942, 119.4358, "", 0, 0, "扬州东站", 32.3750, 119.4600},
	{"义乌", "国际商贸城", 29.3060, 120.0768, "", 0, 0, "义乌站", 29.3550, 120.0695},
	{"泉州", "清源山", 24.9151, 118.5858, "晋江机场", 24.7964, 118.5893, "泉州站", 24.8960, 118.6000},
	{"岳阳", "岳阳楼", 29.3573, 113.1292, "", 0, 0, "岳阳东站", 29.4710, 113.1120},
	{"九江", "庐山", 29.7060, 116.0019, "", 0, 0, "九江站", 29.7040, 115.9900},
}

// NewDefaultNetwork builds the built-in network. Per city the landmark
// node is added first, then the airport and the rail station if present,
// so node ids are stable across runs.
func NewDefaultNetwork() *Network {
	network := NewNetwork()
	for _, c := range defaultCities {
		network.AddNode(c.name, Landmark, c.landmark, geometry.MakePoint(c.landLat, c.landLon))
		if c.airport != "" {
			network.AddNode(c.name, Airport, c.airport, geometry.MakePoint(c.airLat, c.airLon))
		}
		if c.railway != "" {
			network.AddNode(c.name, RailStation, c.railway, geometry.MakePoint(c.railLat, c.railLon))
		}
	}
	return network
}
