package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

func TestGroupProperties(t *testing.T) {
	rows := []owner.PropertyRow{
		{PropertyID: "p1", Title: "Roomless Villa"},
		{PropertyID: "p2", Title: "Beach House", RoomID: "r10", RoomName: "Sea View"},
		{PropertyID: "p2", Title: "Beach House", RoomID: "r11", RoomName: "Garden View"},
	}

	properties := GroupProperties(rows)

	assert.Len(t, properties, 2)
	assert.Equal(t, "p1", properties[0].PropertyID)
	assert.Empty(t, properties[0].Rooms)
	assert.NotNil(t, properties[0].Rooms)
	assert.Equal(t, "p2", properties[1].PropertyID)
	assert.Len(t, properties[1].Rooms, 2)
	assert.Equal(t, "r10", properties[1].Rooms[0].RoomID)
	assert.Equal(t, "r11", properties[1].Rooms[1].RoomID)
}

// Interleaved rows still produce one record per property, rooms in input
// row order.
func TestGroupPropertiesInterleaved(t *testing.T) {
	rows := []owner.PropertyRow{
		{PropertyID: "p1", RoomID: "r1"},
		{PropertyID: "p2", RoomID: "r2"},
		{PropertyID: "p1", RoomID: "r3"},
	}

	properties := GroupProperties(rows)

	assert.Len(t, properties, 2)
	assert.Equal(t, "r1", properties[0].Rooms[0].RoomID)
	assert.Equal(t, "r3", properties[0].Rooms[1].RoomID)
	assert.Len(t, properties[1].Rooms, 1)
}

func TestGroupPropertiesEmpty(t *testing.T) {
	assert.Empty(t, GroupProperties(nil))
}

func TestBuildPropertyMetrics(t *testing.T) {
	rows := []owner.PropertyRow{
		{PropertyID: "p1", Status: "active", RoomID: "r1", RoomActive: true},
		{PropertyID: "p1", Status: "active", RoomID: "r2", RoomActive: false},
		{PropertyID: "p2", Status: "inactive"},
	}

	metrics := BuildPropertyMetrics(rows)

	assert.Equal(t, 2, metrics.TotalProperties)
	assert.Equal(t, 1, metrics.InactiveProperties)
	assert.Equal(t, 1, metrics.ActiveRooms)
	assert.Equal(t, 1, metrics.InactiveRooms)
}
