// Package sobjects declares the typed records of the object kinds the codec understands and
// registers their layouts with slayout. Importing it for side effects is enough to make
// those kinds loadable.
package sobjects

import (
	"loco-savior/sawyer/skind"
)

type (
	Climate struct {
		Name           uint16   `json:"name"`
		FirstSeason    uint8    `json:"first_season"`
		SeasonLengths  [4]uint8 `json:"season_lengths"`
		WinterSnowLine uint8    `json:"winter_snow_line"`
		SummerSnowLine uint8    `json:"summer_snow_line"`
		Pad09          uint8    `json:"pad_09"`
	}

	Currency struct {
		Name         uint16 `json:"name"`
		PrefixSymbol uint16 `json:"prefix_symbol"`
		SuffixSymbol uint16 `json:"suffix_symbol"`
		ObjectIcon   uint32 `json:"object_icon"`
		Separator    uint8  `json:"separator"`
		Factor       uint8  `json:"factor"`
	}

	CliffEdge struct {
		Name  uint16 `json:"name"`
		Image uint32 `json:"image"`
	}

	Snow struct {
		Name  uint16 `json:"name"`
		Image uint32 `json:"image"`
	}

	Scaffolding struct {
		Name           uint16    `json:"name"`
		Image          uint32    `json:"image"`
		SegmentHeights [3]uint16 `json:"segment_heights"`
		RoofHeights    [3]uint16 `json:"roof_heights"`
	}

	ScenarioText struct {
		Name    uint16   `json:"name"`
		Details uint16   `json:"details"`
		Pad04   [2]uint8 `json:"pad_04"`
	}

	Sound struct {
		Name   uint16 `json:"name"`
		Data   uint32 `json:"data"`
		Var06  uint8  `json:"var_06"`
		Pad07  uint8  `json:"pad_07"`
		Volume uint32 `json:"volume"`
	}

	InterfaceSkin struct {
		Name    uint16    `json:"name"`
		Image   uint32    `json:"image"`
		Colours [18]uint8 `json:"colours"`
	}

	LevelCrossing struct {
		Name           uint16   `json:"name"`
		CostFactor     int16    `json:"cost_factor"`
		SellCostFactor int16    `json:"sell_cost_factor"`
		CostIndex      uint8    `json:"cost_index"`
		AnimationSpeed uint8    `json:"animation_speed"`
		ClosingFrames  uint8    `json:"closing_frames"`
		ClosedFrames   uint8    `json:"closed_frames"`
		Pad0A          [2]uint8 `json:"pad_0a"`
		DesignedYear   uint16   `json:"designed_year"`
		Image          uint32   `json:"image"`
	}

	Competitor struct {
		Var00           uint16    `json:"var_00"`
		Var02           uint16    `json:"var_02"`
		Var04           uint32    `json:"var_04"`
		Var08           uint32    `json:"var_08"`
		Emotions        uint32    `json:"emotions"`
		Images          [9]uint32 `json:"images"`
		Intelligence    uint8     `json:"intelligence"`
		Aggressiveness  uint8     `json:"aggressiveness"`
		Competitiveness uint8     `json:"competitiveness"`
		Var37           uint8     `json:"var_37"`
	}

	Cargo struct {
		Name                uint16 `json:"name"`
		Var02               uint16 `json:"var_02"`
		Var04               uint16 `json:"var_04"`
		UnitsAndCargoName   uint16 `json:"units_and_cargo_name"`
		UnitNameSingular    uint16 `json:"unit_name_singular"`
		UnitNamePlural      uint16 `json:"unit_name_plural"`
		UnitInlineSprite    uint32 `json:"unit_inline_sprite"`
		MatchFlags          uint16 `json:"match_flags"`
		Flags               uint8  `json:"flags"`
		NumPlatformVariants uint8  `json:"num_platform_variations"`
		Var14               uint8  `json:"var_14"`
		PremiumDays         uint8  `json:"premium_days"`
		MaxNonPremiumDays   uint8  `json:"max_non_premium_days"`
		NonPremiumRate      uint16 `json:"non_premium_rate"`
		PenaltyRate         uint16 `json:"penalty_rate"`
		PaymentFactor       uint16 `json:"payment_factor"`
		PaymentIndex        uint8  `json:"payment_index"`
		UnitSize            uint8  `json:"unit_size"`
	}

	Bridge struct {
		Name               uint16   `json:"name"`
		NoRoof             uint8    `json:"no_roof"`
		Pad03              [3]uint8 `json:"pad_03"`
		Var06              uint16   `json:"var_06"`
		SpanLength         uint8    `json:"span_length"`
		PillarSpacing      uint8    `json:"pillar_spacing"`
		MaxSpeed           int16    `json:"max_speed"`
		MaxHeight          uint8    `json:"max_height"`
		CostIndex          uint8    `json:"cost_index"`
		BaseCostFactor     int16    `json:"base_cost_factor"`
		HeightCostFactor   int16    `json:"height_cost_factor"`
		SellCostFactor     int16    `json:"sell_cost_factor"`
		DisabledTrackCfg   uint16   `json:"disabled_track_cfg"`
		Image              uint32   `json:"image"`
		TrackNumCompatible uint8    `json:"track_num_compatible"`
		TrackMods          [7]uint8 `json:"track_mods"`
		RoadNumCompatible  uint8    `json:"road_num_compatible"`
		RoadMods           [7]uint8 `json:"road_mods"`
		DesignedYear       uint16   `json:"designed_year"`
	}

	Airport struct {
		Name              uint16     `json:"name"`
		BuildCostFactor   int16      `json:"build_cost_factor"`
		SellCostFactor    int16      `json:"sell_cost_factor"`
		CostIndex         uint8      `json:"cost_index"`
		Var07             uint8      `json:"var_07"`
		Image             uint32     `json:"image"`
		Var0C             uint32     `json:"var_0c"`
		AllowedPlaneTypes uint16     `json:"allowed_plane_types"`
		NumSpriteSets     uint8      `json:"num_sprite_sets"`
		NumTiles          uint8      `json:"num_tiles"`
		Var14             uint32     `json:"var_14"`
		Var18             uint32     `json:"var_18"`
		Var1C             [32]uint32 `json:"var_1c"`
		Var9C             uint32     `json:"var_9c"`
		LargeTiles        uint32     `json:"large_tiles"`
		MinX              int8       `json:"min_x"`
		MinY              int8       `json:"min_y"`
		MaxX              int8       `json:"max_x"`
		MaxY              int8       `json:"max_y"`
		DesignedYear      uint16     `json:"designed_year"`
		ObsoleteYear      uint16     `json:"obsolete_year"`
		NumMovementNodes  uint8      `json:"num_movement_nodes"`
		NumMovementEdges  uint8      `json:"num_movement_edges"`
		MovementNodes     uint32     `json:"movement_nodes"`
		MovementEdges     uint32     `json:"movement_edges"`
		PadB6             [4]uint8   `json:"pad_b6"`
	}
)

func (r *Climate) Kind() skind.Kind       { return skind.Climate }
func (r *Currency) Kind() skind.Kind      { return skind.Currency }
func (r *CliffEdge) Kind() skind.Kind     { return skind.CliffEdge }
func (r *Snow) Kind() skind.Kind          { return skind.Snow }
func (r *Scaffolding) Kind() skind.Kind   { return skind.Scaffolding }
func (r *ScenarioText) Kind() skind.Kind  { return skind.ScenarioText }
func (r *Sound) Kind() skind.Kind         { return skind.Sound }
func (r *InterfaceSkin) Kind() skind.Kind { return skind.InterfaceSkin }
func (r *LevelCrossing) Kind() skind.Kind { return skind.LevelCrossing }
func (r *Competitor) Kind() skind.Kind    { return skind.Competitor }
func (r *Cargo) Kind() skind.Kind         { return skind.Cargo }
func (r *Bridge) Kind() skind.Kind        { return skind.Bridge }
func (r *Airport) Kind() skind.Kind       { return skind.Airport }
