package sobjects

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loco-savior/sawyer/skind"
	"loco-savior/sawyer/slayout"
)

func TestLayouts_Registered(t *testing.T) {
	assert.Equal(
		t,
		[]skind.Kind{
			skind.InterfaceSkin, skind.Sound, skind.Currency, skind.CliffEdge,
			skind.Cargo, skind.LevelCrossing, skind.Bridge, skind.Airport,
			skind.Vehicle, skind.Snow, skind.Climate, skind.Scaffolding,
			skind.Competitor, skind.ScenarioText,
		},
		slayout.Kinds(),
	)
	for _, kind := range slayout.Kinds() {
		mapper, err := slayout.Lookup(kind)
		require.NoError(t, err)
		assert.NoError(t, mapper.Validate(), kind.String())
		assert.Equal(t, kind, mapper.New().Kind())
	}
}

func TestLayouts_RoundTrip(t *testing.T) {
	for _, kind := range slayout.Kinds() {
		mapper, err := slayout.Lookup(kind)
		require.NoError(t, err)

		buf := make([]byte, mapper.StructSize())
		for i := range buf {
			buf[i] = byte(i*7 + 3)
		}

		record, err := slayout.Project(buf, kind)
		require.NoError(t, err, kind.String())
		bs, err := slayout.Unproject(record)
		require.NoError(t, err, kind.String())
		assert.Equal(t, buf, bs, kind.String())

		// the JSON form must carry every byte as well
		js, err := json.Marshal(record)
		require.NoError(t, err)
		decoded := mapper.New()
		require.NoError(t, json.Unmarshal(js, decoded))
		assert.Equal(t, record, decoded, kind.String())

		_, err = slayout.Project(buf[:len(buf)-1], kind)
		assert.Error(t, err, kind.String())
	}
}

func TestClimate_Project(t *testing.T) {
	record, err := slayout.Project([]byte{0, 0, 1, 57, 80, 100, 80, 48, 76, 0}, skind.Climate)
	require.NoError(t, err)

	climate, ok := record.(*Climate)
	require.True(t, ok)
	assert.Equal(t, uint8(1), climate.FirstSeason)
	assert.Equal(t, [4]uint8{57, 80, 100, 80}, climate.SeasonLengths)
	assert.Equal(t, uint8(48), climate.WinterSnowLine)
	assert.Equal(t, uint8(76), climate.SummerSnowLine)
	assert.Equal(t, uint8(0), climate.Pad09)
}

func TestVehicle_Project(t *testing.T) {
	buf := make([]byte, 0x15E)
	buf[0x02] = byte(TransportModeAir)
	buf[0x03] = byte(VehicleTypeAircraft)
	binary.LittleEndian.PutUint16(buf[0x08:], 345)
	buf[0x0A] = 88
	binary.LittleEndian.PutUint16(buf[0xD8:], 3000)
	binary.LittleEndian.PutUint16(buf[0xDA:], 604)
	binary.LittleEndian.PutUint16(buf[0xE0:], 16384)
	buf[0x10E] = 24
	binary.LittleEndian.PutUint16(buf[0x114:], 1957)
	binary.LittleEndian.PutUint16(buf[0x116:], 1987)
	buf[0x15A] = 2

	record, err := slayout.Project(buf, skind.Vehicle)
	require.NoError(t, err)
	vehicle := record.(*Vehicle)

	assert.Equal(t, TransportModeAir, vehicle.Mode)
	assert.Equal(t, "air", vehicle.Mode.String())
	assert.Equal(t, VehicleTypeAircraft, vehicle.Type)
	assert.Equal(t, "aircraft", vehicle.Type.String())
	assert.Equal(t, int16(345), vehicle.CostFactor)
	assert.Equal(t, uint8(88), vehicle.Reliability)
	assert.Equal(t, uint16(3000), vehicle.Power)
	assert.Equal(t, uint16(604), vehicle.Speed)
	assert.Equal(t, uint16(16384), vehicle.Flags)
	assert.Equal(t, uint16(1957), vehicle.Designed)
	assert.Equal(t, uint16(1987), vehicle.Obsolete)
	assert.Equal(t, uint8(2), vehicle.NumStartSounds)
	assert.Equal(
		t,
		[]Animation{{Height: 24}, {}},
		vehicle.Animations(),
	)
}

func TestVehicle_Describe(t *testing.T) {
	mapper, err := slayout.Lookup(skind.Vehicle)
	require.NoError(t, err)

	om, err := mapper.Describe(&Vehicle{Designed: 1957})
	require.NoError(t, err)
	keys := om.Keys()
	assert.Equal(t, "name", keys[0])
	assert.Equal(t, "start_sounds", keys[len(keys)-1])

	designed, ok := om.Get("designed")
	require.True(t, ok)
	assert.Equal(t, uint16(1957), designed)
}
