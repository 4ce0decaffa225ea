package sobjects

import (
	"loco-savior/sawyer/skind"
	"loco-savior/sawyer/slayout"
)

func init() {
	slayout.Register(climateLayout())
	slayout.Register(currencyLayout())
	slayout.Register(cliffEdgeLayout())
	slayout.Register(snowLayout())
	slayout.Register(scaffoldingLayout())
	slayout.Register(scenarioTextLayout())
	slayout.Register(soundLayout())
	slayout.Register(interfaceSkinLayout())
	slayout.Register(levelCrossingLayout())
	slayout.Register(competitorLayout())
	slayout.Register(cargoLayout())
	slayout.Register(bridgeLayout())
	slayout.Register(airportLayout())
	slayout.Register(vehicleLayout())
}

func climateLayout() slayout.Mapper {
	type t = Climate
	return slayout.New[t, *t](
		skind.Climate, 0x0A, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("first_season", 0x02, func(r *t) *uint8 { return &r.FirstSeason }),
		slayout.Array("season_lengths", 0x03, func(r *t) []uint8 { return r.SeasonLengths[:] }),
		slayout.Scalar("winter_snow_line", 0x07, func(r *t) *uint8 { return &r.WinterSnowLine }),
		slayout.Scalar("summer_snow_line", 0x08, func(r *t) *uint8 { return &r.SummerSnowLine }),
		slayout.Scalar("pad_09", 0x09, func(r *t) *uint8 { return &r.Pad09 }),
	)
}

func currencyLayout() slayout.Mapper {
	type t = Currency
	return slayout.New[t, *t](
		skind.Currency, 0x0C, 3,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("prefix_symbol", 0x02, func(r *t) *uint16 { return &r.PrefixSymbol }),
		slayout.Scalar("suffix_symbol", 0x04, func(r *t) *uint16 { return &r.SuffixSymbol }),
		slayout.Scalar("object_icon", 0x06, func(r *t) *uint32 { return &r.ObjectIcon }),
		slayout.Scalar("separator", 0x0A, func(r *t) *uint8 { return &r.Separator }),
		slayout.Scalar("factor", 0x0B, func(r *t) *uint8 { return &r.Factor }),
	)
}

func cliffEdgeLayout() slayout.Mapper {
	type t = CliffEdge
	return slayout.New[t, *t](
		skind.CliffEdge, 0x06, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("image", 0x02, func(r *t) *uint32 { return &r.Image }),
	)
}

func snowLayout() slayout.Mapper {
	type t = Snow
	return slayout.New[t, *t](
		skind.Snow, 0x06, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("image", 0x02, func(r *t) *uint32 { return &r.Image }),
	)
}

func scaffoldingLayout() slayout.Mapper {
	type t = Scaffolding
	return slayout.New[t, *t](
		skind.Scaffolding, 0x12, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("image", 0x02, func(r *t) *uint32 { return &r.Image }),
		slayout.Array("segment_heights", 0x06, func(r *t) []uint16 { return r.SegmentHeights[:] }),
		slayout.Array("roof_heights", 0x0C, func(r *t) []uint16 { return r.RoofHeights[:] }),
	)
}

func scenarioTextLayout() slayout.Mapper {
	type t = ScenarioText
	return slayout.New[t, *t](
		skind.ScenarioText, 0x06, 2,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("details", 0x02, func(r *t) *uint16 { return &r.Details }),
		slayout.Array("pad_04", 0x04, func(r *t) []uint8 { return r.Pad04[:] }),
	)
}

func soundLayout() slayout.Mapper {
	type t = Sound
	return slayout.New[t, *t](
		skind.Sound, 0x0C, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("data", 0x02, func(r *t) *uint32 { return &r.Data }),
		slayout.Scalar("var_06", 0x06, func(r *t) *uint8 { return &r.Var06 }),
		slayout.Scalar("pad_07", 0x07, func(r *t) *uint8 { return &r.Pad07 }),
		slayout.Scalar("volume", 0x08, func(r *t) *uint32 { return &r.Volume }),
	)
}

func interfaceSkinLayout() slayout.Mapper {
	type t = InterfaceSkin
	return slayout.New[t, *t](
		skind.InterfaceSkin, 0x18, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("image", 0x02, func(r *t) *uint32 { return &r.Image }),
		slayout.Array("colours", 0x06, func(r *t) []uint8 { return r.Colours[:] }),
	)
}

func levelCrossingLayout() slayout.Mapper {
	type t = LevelCrossing
	return slayout.New[t, *t](
		skind.LevelCrossing, 0x12, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("cost_factor", 0x02, func(r *t) *int16 { return &r.CostFactor }),
		slayout.Scalar("sell_cost_factor", 0x04, func(r *t) *int16 { return &r.SellCostFactor }),
		slayout.Scalar("cost_index", 0x06, func(r *t) *uint8 { return &r.CostIndex }),
		slayout.Scalar("animation_speed", 0x07, func(r *t) *uint8 { return &r.AnimationSpeed }),
		slayout.Scalar("closing_frames", 0x08, func(r *t) *uint8 { return &r.ClosingFrames }),
		slayout.Scalar("closed_frames", 0x09, func(r *t) *uint8 { return &r.ClosedFrames }),
		slayout.Array("pad_0a", 0x0A, func(r *t) []uint8 { return r.Pad0A[:] }),
		slayout.Scalar("designed_year", 0x0C, func(r *t) *uint16 { return &r.DesignedYear }),
		slayout.Scalar("image", 0x0E, func(r *t) *uint32 { return &r.Image }),
	)
}

func competitorLayout() slayout.Mapper {
	type t = Competitor
	return slayout.New[t, *t](
		skind.Competitor, 0x38, 2,
		slayout.Scalar("var_00", 0x00, func(r *t) *uint16 { return &r.Var00 }),
		slayout.Scalar("var_02", 0x02, func(r *t) *uint16 { return &r.Var02 }),
		slayout.Scalar("var_04", 0x04, func(r *t) *uint32 { return &r.Var04 }),
		slayout.Scalar("var_08", 0x08, func(r *t) *uint32 { return &r.Var08 }),
		slayout.Scalar("emotions", 0x0C, func(r *t) *uint32 { return &r.Emotions }),
		slayout.Array("images", 0x10, func(r *t) []uint32 { return r.Images[:] }),
		slayout.Scalar("intelligence", 0x34, func(r *t) *uint8 { return &r.Intelligence }),
		slayout.Scalar("aggressiveness", 0x35, func(r *t) *uint8 { return &r.Aggressiveness }),
		slayout.Scalar("competitiveness", 0x36, func(r *t) *uint8 { return &r.Competitiveness }),
		slayout.Scalar("var_37", 0x37, func(r *t) *uint8 { return &r.Var37 }),
	)
}

func cargoLayout() slayout.Mapper {
	type t = Cargo
	return slayout.New[t, *t](
		skind.Cargo, 0x1F, 4,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("var_02", 0x02, func(r *t) *uint16 { return &r.Var02 }),
		slayout.Scalar("var_04", 0x04, func(r *t) *uint16 { return &r.Var04 }),
		slayout.Scalar("units_and_cargo_name", 0x06, func(r *t) *uint16 { return &r.UnitsAndCargoName }),
		slayout.Scalar("unit_name_singular", 0x08, func(r *t) *uint16 { return &r.UnitNameSingular }),
		slayout.Scalar("unit_name_plural", 0x0A, func(r *t) *uint16 { return &r.UnitNamePlural }),
		slayout.Scalar("unit_inline_sprite", 0x0C, func(r *t) *uint32 { return &r.UnitInlineSprite }),
		slayout.Scalar("match_flags", 0x10, func(r *t) *uint16 { return &r.MatchFlags }),
		slayout.Scalar("flags", 0x12, func(r *t) *uint8 { return &r.Flags }),
		slayout.Scalar("num_platform_variations", 0x13, func(r *t) *uint8 { return &r.NumPlatformVariants }),
		slayout.Scalar("var_14", 0x14, func(r *t) *uint8 { return &r.Var14 }),
		slayout.Scalar("premium_days", 0x15, func(r *t) *uint8 { return &r.PremiumDays }),
		slayout.Scalar("max_non_premium_days", 0x16, func(r *t) *uint8 { return &r.MaxNonPremiumDays }),
		slayout.Scalar("non_premium_rate", 0x17, func(r *t) *uint16 { return &r.NonPremiumRate }),
		slayout.Scalar("penalty_rate", 0x19, func(r *t) *uint16 { return &r.PenaltyRate }),
		slayout.Scalar("payment_factor", 0x1B, func(r *t) *uint16 { return &r.PaymentFactor }),
		slayout.Scalar("payment_index", 0x1D, func(r *t) *uint8 { return &r.PaymentIndex }),
		slayout.Scalar("unit_size", 0x1E, func(r *t) *uint8 { return &r.UnitSize }),
	)
}

func bridgeLayout() slayout.Mapper {
	type t = Bridge
	return slayout.New[t, *t](
		skind.Bridge, 0x2C, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("no_roof", 0x02, func(r *t) *uint8 { return &r.NoRoof }),
		slayout.Array("pad_03", 0x03, func(r *t) []uint8 { return r.Pad03[:] }),
		slayout.Scalar("var_06", 0x06, func(r *t) *uint16 { return &r.Var06 }),
		slayout.Scalar("span_length", 0x08, func(r *t) *uint8 { return &r.SpanLength }),
		slayout.Scalar("pillar_spacing", 0x09, func(r *t) *uint8 { return &r.PillarSpacing }),
		slayout.Scalar("max_speed", 0x0A, func(r *t) *int16 { return &r.MaxSpeed }),
		slayout.Scalar("max_height", 0x0C, func(r *t) *uint8 { return &r.MaxHeight }),
		slayout.Scalar("cost_index", 0x0D, func(r *t) *uint8 { return &r.CostIndex }),
		slayout.Scalar("base_cost_factor", 0x0E, func(r *t) *int16 { return &r.BaseCostFactor }),
		slayout.Scalar("height_cost_factor", 0x10, func(r *t) *int16 { return &r.HeightCostFactor }),
		slayout.Scalar("sell_cost_factor", 0x12, func(r *t) *int16 { return &r.SellCostFactor }),
		slayout.Scalar("disabled_track_cfg", 0x14, func(r *t) *uint16 { return &r.DisabledTrackCfg }),
		slayout.Scalar("image", 0x16, func(r *t) *uint32 { return &r.Image }),
		slayout.Scalar("track_num_compatible", 0x1A, func(r *t) *uint8 { return &r.TrackNumCompatible }),
		slayout.Array("track_mods", 0x1B, func(r *t) []uint8 { return r.TrackMods[:] }),
		slayout.Scalar("road_num_compatible", 0x22, func(r *t) *uint8 { return &r.RoadNumCompatible }),
		slayout.Array("road_mods", 0x23, func(r *t) []uint8 { return r.RoadMods[:] }),
		slayout.Scalar("designed_year", 0x2A, func(r *t) *uint16 { return &r.DesignedYear }),
	)
}

func airportLayout() slayout.Mapper {
	type t = Airport
	return slayout.New[t, *t](
		skind.Airport, 0xBA, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("build_cost_factor", 0x02, func(r *t) *int16 { return &r.BuildCostFactor }),
		slayout.Scalar("sell_cost_factor", 0x04, func(r *t) *int16 { return &r.SellCostFactor }),
		slayout.Scalar("cost_index", 0x06, func(r *t) *uint8 { return &r.CostIndex }),
		slayout.Scalar("var_07", 0x07, func(r *t) *uint8 { return &r.Var07 }),
		slayout.Scalar("image", 0x08, func(r *t) *uint32 { return &r.Image }),
		slayout.Scalar("var_0c", 0x0C, func(r *t) *uint32 { return &r.Var0C }),
		slayout.Scalar("allowed_plane_types", 0x10, func(r *t) *uint16 { return &r.AllowedPlaneTypes }),
		slayout.Scalar("num_sprite_sets", 0x12, func(r *t) *uint8 { return &r.NumSpriteSets }),
		slayout.Scalar("num_tiles", 0x13, func(r *t) *uint8 { return &r.NumTiles }),
		slayout.Scalar("var_14", 0x14, func(r *t) *uint32 { return &r.Var14 }),
		slayout.Scalar("var_18", 0x18, func(r *t) *uint32 { return &r.Var18 }),
		slayout.Array("var_1c", 0x1C, func(r *t) []uint32 { return r.Var1C[:] }),
		slayout.Scalar("var_9c", 0x9C, func(r *t) *uint32 { return &r.Var9C }),
		slayout.Scalar("large_tiles", 0xA0, func(r *t) *uint32 { return &r.LargeTiles }),
		slayout.Scalar("min_x", 0xA4, func(r *t) *int8 { return &r.MinX }),
		slayout.Scalar("min_y", 0xA5, func(r *t) *int8 { return &r.MinY }),
		slayout.Scalar("max_x", 0xA6, func(r *t) *int8 { return &r.MaxX }),
		slayout.Scalar("max_y", 0xA7, func(r *t) *int8 { return &r.MaxY }),
		slayout.Scalar("designed_year", 0xA8, func(r *t) *uint16 { return &r.DesignedYear }),
		slayout.Scalar("obsolete_year", 0xAA, func(r *t) *uint16 { return &r.ObsoleteYear }),
		slayout.Scalar("num_movement_nodes", 0xAC, func(r *t) *uint8 { return &r.NumMovementNodes }),
		slayout.Scalar("num_movement_edges", 0xAD, func(r *t) *uint8 { return &r.NumMovementEdges }),
		slayout.Scalar("movement_nodes", 0xAE, func(r *t) *uint32 { return &r.MovementNodes }),
		slayout.Scalar("movement_edges", 0xB2, func(r *t) *uint32 { return &r.MovementEdges }),
		slayout.Array("pad_b6", 0xB6, func(r *t) []uint8 { return r.PadB6[:] }),
	)
}

func vehicleLayout() slayout.Mapper {
	type t = Vehicle
	return slayout.New[t, *t](
		skind.Vehicle, 0x15E, 1,
		slayout.Scalar("name", 0x00, func(r *t) *uint16 { return &r.Name }),
		slayout.Scalar("mode", 0x02, func(r *t) *TransportMode { return &r.Mode }),
		slayout.Scalar("type", 0x03, func(r *t) *VehicleType { return &r.Type }),
		slayout.Scalar("var_04", 0x04, func(r *t) *uint8 { return &r.Var04 }),
		slayout.Scalar("track_type", 0x05, func(r *t) *uint8 { return &r.TrackType }),
		slayout.Scalar("num_mods", 0x06, func(r *t) *uint8 { return &r.NumMods }),
		slayout.Scalar("cost_index", 0x07, func(r *t) *uint8 { return &r.CostIndex }),
		slayout.Scalar("cost_factor", 0x08, func(r *t) *int16 { return &r.CostFactor }),
		slayout.Scalar("reliability", 0x0A, func(r *t) *uint8 { return &r.Reliability }),
		slayout.Scalar("run_cost_index", 0x0B, func(r *t) *uint8 { return &r.RunCostIndex }),
		slayout.Scalar("run_cost_factor", 0x0C, func(r *t) *int16 { return &r.RunCostFactor }),
		slayout.Scalar("colour_type", 0x0E, func(r *t) *uint8 { return &r.ColourType }),
		slayout.Scalar("num_compat", 0x0F, func(r *t) *uint8 { return &r.NumCompat }),
		slayout.Array("compatible_vehicles", 0x10, func(r *t) []uint16 { return r.CompatibleVehicles[:] }),
		slayout.Array("required_track_extras", 0x20, func(r *t) []uint8 { return r.RequiredTrackExtras[:] }),
		slayout.Array("var_24", 0x24, func(r *t) []uint8 { return r.Var24[:] }),
		slayout.Array("body_sprites", 0x3C, func(r *t) []uint8 { return r.BodySprites[:] }),
		slayout.Array("bogie_sprites", 0xB4, func(r *t) []uint8 { return r.BogieSprites[:] }),
		slayout.Scalar("power", 0xD8, func(r *t) *uint16 { return &r.Power }),
		slayout.Scalar("speed", 0xDA, func(r *t) *uint16 { return &r.Speed }),
		slayout.Scalar("rack_speed", 0xDC, func(r *t) *uint16 { return &r.RackSpeed }),
		slayout.Scalar("weight", 0xDE, func(r *t) *uint16 { return &r.Weight }),
		slayout.Scalar("flags", 0xE0, func(r *t) *uint16 { return &r.Flags }),
		slayout.Array("max_cargo", 0xE2, func(r *t) []uint8 { return r.MaxCargo[:] }),
		slayout.Array("cargo_types", 0xE4, func(r *t) []uint32 { return r.CargoTypes[:] }),
		slayout.Array("cargo_type_sprite_offsets", 0xEC, func(r *t) []uint8 { return r.CargoTypeSpriteOffsets[:] }),
		slayout.Scalar("num_simultaneous_cargo_types", 0x10C, func(r *t) *uint8 { return &r.NumSimultaneousCargoTypes }),
		slayout.Array("animation", 0x10D, func(r *t) []uint8 { return r.Animation[:] }),
		slayout.Scalar("var_113", 0x113, func(r *t) *uint8 { return &r.Var113 }),
		slayout.Scalar("designed", 0x114, func(r *t) *uint16 { return &r.Designed }),
		slayout.Scalar("obsolete", 0x116, func(r *t) *uint16 { return &r.Obsolete }),
		slayout.Scalar("rack_rail_type", 0x118, func(r *t) *uint8 { return &r.RackRailType }),
		slayout.Scalar("driving_sound_type", 0x119, func(r *t) *uint8 { return &r.DrivingSoundType }),
		slayout.Array("sound", 0x11A, func(r *t) []uint8 { return r.Sound[:] }),
		slayout.Array("pad_135", 0x135, func(r *t) []uint8 { return r.Pad135[:] }),
		slayout.Scalar("num_start_sounds", 0x15A, func(r *t) *uint8 { return &r.NumStartSounds }),
		slayout.Array("start_sounds", 0x15B, func(r *t) []uint8 { return r.StartSounds[:] }),
	)
}
