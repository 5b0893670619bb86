package components

import "github.com/yohamta/donburi"

// NameData is the scene name an entity can be looked up by.
type NameData struct {
	Name string
}

var Name = donburi.NewComponentType[NameData]()
