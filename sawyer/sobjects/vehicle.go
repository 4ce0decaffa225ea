package sobjects

import (
	"fmt"

	"github.com/samber/lo"

	"loco-savior/ds"
	"loco-savior/sawyer/skind"
)

type (
	TransportMode uint8
	VehicleType   uint8

	Vehicle struct {
		Name                      uint16        `json:"name"`
		Mode                      TransportMode `json:"mode"`
		Type                      VehicleType   `json:"type"`
		Var04                     uint8         `json:"var_04"`
		TrackType                 uint8         `json:"track_type"`
		NumMods                   uint8         `json:"num_mods"`
		CostIndex                 uint8         `json:"cost_index"`
		CostFactor                int16         `json:"cost_factor"`
		Reliability               uint8         `json:"reliability"`
		RunCostIndex              uint8         `json:"run_cost_index"`
		RunCostFactor             int16         `json:"run_cost_factor"`
		ColourType                uint8         `json:"colour_type"`
		NumCompat                 uint8         `json:"num_compat"`
		CompatibleVehicles        [8]uint16     `json:"compatible_vehicles"`
		RequiredTrackExtras       [4]uint8      `json:"required_track_extras"`
		Var24                     [24]uint8     `json:"var_24"`
		BodySprites               [120]uint8    `json:"body_sprites"`
		BogieSprites              [36]uint8     `json:"bogie_sprites"`
		Power                     uint16        `json:"power"`
		Speed                     uint16        `json:"speed"`
		RackSpeed                 uint16        `json:"rack_speed"`
		Weight                    uint16        `json:"weight"`
		Flags                     uint16        `json:"flags"`
		MaxCargo                  [2]uint8      `json:"max_cargo"`
		CargoTypes                [2]uint32     `json:"cargo_types"`
		CargoTypeSpriteOffsets    [32]uint8     `json:"cargo_type_sprite_offsets"`
		NumSimultaneousCargoTypes uint8         `json:"num_simultaneous_cargo_types"`
		Animation                 [6]uint8      `json:"animation"`
		Var113                    uint8         `json:"var_113"`
		Designed                  uint16        `json:"designed"`
		Obsolete                  uint16        `json:"obsolete"`
		RackRailType              uint8         `json:"rack_rail_type"`
		DrivingSoundType          uint8         `json:"driving_sound_type"`
		Sound                     [27]uint8     `json:"sound"`
		Pad135                    [37]uint8     `json:"pad_135"`
		NumStartSounds            uint8         `json:"num_start_sounds"`
		StartSounds               [3]uint8      `json:"start_sounds"`
	}

	// Animation is one of the two exhaust animations packed into Vehicle.Animation.
	Animation struct {
		ObjectID uint8 `json:"object_id"`
		Height   uint8 `json:"height"`
		Type     uint8 `json:"type"`
	}
)

const (
	TransportModeRail TransportMode = iota
	TransportModeRoad
	TransportModeAir
	TransportModeWater
)

const (
	VehicleTypeTrain VehicleType = iota
	VehicleTypeBus
	VehicleTypeTruck
	VehicleTypeTram
	VehicleTypeAircraft
	VehicleTypeShip
)

func (r *Vehicle) Kind() skind.Kind { return skind.Vehicle }

func (r *Vehicle) Animations() []Animation {
	return lo.Map(
		ds.MakeChunks(r.Animation[:], 3),
		func(chunk []uint8, _ int) Animation {
			return Animation{
				ObjectID: chunk[0],
				Height:   chunk[1],
				Type:     chunk[2],
			}
		},
	)
}

func (m TransportMode) String() string {
	switch m {
	case TransportModeRail:
		return "rail"
	case TransportModeRoad:
		return "road"
	case TransportModeAir:
		return "air"
	case TransportModeWater:
		return "water"
	default:
		return fmt.Sprintf("transport_mode_%d", uint8(m))
	}
}

func (t VehicleType) String() string {
	switch t {
	case VehicleTypeTrain:
		return "train"
	case VehicleTypeBus:
		return "bus"
	case VehicleTypeTruck:
		return "truck"
	case VehicleTypeTram:
		return "tram"
	case VehicleTypeAircraft:
		return "aircraft"
	case VehicleTypeShip:
		return "ship"
	default:
		return fmt.Sprintf("vehicle_type_%d", uint8(t))
	}
}
