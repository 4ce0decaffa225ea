// Package skind holds the closed set of object kinds an object file can describe.
package skind

import (
	"fmt"
)

type (
	Kind       uint8
	SourceGame uint8
)

const (
	InterfaceSkin Kind = iota
	Sound
	Currency
	Steam
	CliffEdge
	Water
	Land
	TownNames
	Cargo
	Wall
	TrainSignal
	LevelCrossing
	StreetLight
	Tunnel
	Bridge
	TrainStation
	TrackExtra
	Track
	RoadStation
	RoadExtra
	Road
	Airport
	Dock
	Vehicle
	Tree
	Snow
	Climate
	HillShapes
	Building
	Scaffolding
	Industry
	Region
	Competitor
	ScenarioText

	NumKinds = int(ScenarioText) + 1
)

const (
	SourceGameCustom SourceGame = iota
	SourceGameData
	SourceGameVanilla
	SourceGameUnknown
)

var kindNames = [NumKinds]string{
	"interface_skin",
	"sound",
	"currency",
	"steam",
	"cliff_edge",
	"water",
	"land",
	"town_names",
	"cargo",
	"wall",
	"train_signal",
	"level_crossing",
	"street_light",
	"tunnel",
	"bridge",
	"train_station",
	"track_extra",
	"track",
	"road_station",
	"road_extra",
	"road",
	"airport",
	"dock",
	"vehicle",
	"tree",
	"snow",
	"climate",
	"hill_shapes",
	"building",
	"scaffolding",
	"industry",
	"region",
	"competitor",
	"scenario_text",
}

func (k Kind) Valid() bool {
	return int(k) < NumKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("unknown_kind_%d", uint8(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf(`skind.UnmarshalText unknown kind "%s"`, text)
	}
	*k = parsed
	return nil
}

// Parse looks a kind up by its snake case name.
func Parse(name string) (Kind, bool) {
	for i, kindName := range kindNames {
		if kindName == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// All returns every kind of the closed set in discriminant order.
func All() []Kind {
	kinds := make([]Kind, 0, NumKinds)
	for i := 0; i < NumKinds; i++ {
		kinds = append(kinds, Kind(i))
	}
	return kinds
}

func (s SourceGame) String() string {
	switch s {
	case SourceGameCustom:
		return "custom"
	case SourceGameData:
		return "data"
	case SourceGameVanilla:
		return "vanilla"
	default:
		return "unknown"
	}
}
