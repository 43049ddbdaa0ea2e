package model

import (
	"testing"

	"restaurant_manager/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.STATUS_PENDING, constants.STATUS_PREPARING, true},
		{constants.STATUS_PENDING, constants.STATUS_CANCELLED, true},
		{constants.STATUS_PENDING, constants.STATUS_READY, false},
		{constants.STATUS_PENDING, constants.STATUS_SERVED, false},
		{constants.STATUS_PREPARING, constants.STATUS_READY, true},
		{constants.STATUS_PREPARING, constants.STATUS_CANCELLED, true},
		{constants.STATUS_PREPARING, constants.STATUS_PENDING, false},
		{constants.STATUS_PREPARING, constants.STATUS_SERVED, false},
		{constants.STATUS_READY, constants.STATUS_SERVED, true},
		{constants.STATUS_READY, constants.STATUS_CANCELLED, true},
		{constants.STATUS_READY, constants.STATUS_PENDING, false},
		{constants.STATUS_READY, constants.STATUS_PREPARING, false},
		{constants.STATUS_SERVED, constants.STATUS_PENDING, false},
		{constants.STATUS_SERVED, constants.STATUS_PREPARING, false},
		{constants.STATUS_SERVED, constants.STATUS_READY, false},
		{constants.STATUS_SERVED, constants.STATUS_CANCELLED, false},
		{constants.STATUS_CANCELLED, constants.STATUS_PENDING, false},
		{constants.STATUS_CANCELLED, constants.STATUS_PREPARING, false},
		{constants.STATUS_CANCELLED, constants.STATUS_SERVED, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("shipped", constants.STATUS_SERVED))
	assert.False(t, CanTransition(constants.STATUS_PENDING, "shipped"))
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, IsTerminalStatus(constants.STATUS_SERVED))
	assert.True(t, IsTerminalStatus(constants.STATUS_CANCELLED))
	assert.False(t, IsTerminalStatus(constants.STATUS_PENDING))
	assert.False(t, IsTerminalStatus(constants.STATUS_PREPARING))
	assert.False(t, IsTerminalStatus(constants.STATUS_READY))
	assert.False(t, IsTerminalStatus("shipped"))
}

func TestActiveStatuses(t *testing.T) {
	assert.True(t, IsActiveStatus(constants.STATUS_PENDING))
	assert.True(t, IsActiveStatus(constants.STATUS_PREPARING))
	assert.True(t, IsActiveStatus(constants.STATUS_READY))
	assert.False(t, IsActiveStatus(constants.STATUS_SERVED))
	assert.False(t, IsActiveStatus(constants.STATUS_CANCELLED))
	assert.False(t, IsActiveStatus("shipped"))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		constants.STATUS_PENDING,
		constants.STATUS_PREPARING,
		constants.STATUS_READY,
		constants.STATUS_SERVED,
		constants.STATUS_CANCELLED,
	} {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("PENDING"))
}
