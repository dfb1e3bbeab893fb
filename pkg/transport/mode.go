package transport

// Mode is the means of travel of a single route segment.
type Mode int

const (
	Driving Mode = iota
	HighSpeedRail
	Flight
	Bus
	ModeCount
)

func (m Mode) String() string {
	return []string{"driving", "high_speed_rail", "flight", "bus"}[m]
}

// 中文名称，用于输出展示
func (m Mode) LocalName() string {
	return []string{"驾车", "高铁", "飞机", "公交"}[m]
}

// Modes lists all transport modes in evaluation order.
func Modes() []Mode {
	modes := make([]Mode, 0, ModeCount)
	for m := Driving; m < ModeCount; m++ {
		modes = append(modes, m)
	}
	return modes
}
