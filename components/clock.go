package components

import "github.com/yohamta/donburi"

// ClockData is the per-frame time source. Singleton.
type ClockData struct {
	Delta   float64 // seconds since the previous tick
	Elapsed float64
	Tick    int
}

var Clock = donburi.NewComponentType[ClockData]()
