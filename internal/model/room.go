package model

// RoomType is a normalized room category.
type RoomType string

const (
	RoomShared        RoomType = "shared"
	RoomSinglePrivate RoomType = "single_private"
	RoomAny           RoomType = "any_room"
	RoomUnknown       RoomType = "unknown"
)

// Rank places room types on the total order shared < single_private < any_room,
// used only to compare the billed category against the eligible one.
// ok is false for unknown or unrecognized types.
func (r RoomType) Rank() (rank int, ok bool) {
	switch r {
	case RoomShared:
		return 0, true
	case RoomSinglePrivate:
		return 1, true
	case RoomAny:
		return 2, true
	}
	return 0, false
}

// RoomStatus reports how the billed room compares to the policy entitlement.
type RoomStatus string

const (
	RoomWithinCap     RoomStatus = "within_cap"
	RoomOverLimit     RoomStatus = "over_limit"
	RoomStatusUnknown RoomStatus = "unknown"
)
