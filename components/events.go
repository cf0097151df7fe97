package components

import (
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/yohamta/donburi/features/events"
)

type EventKind int

const (
	EventLanded EventKind = iota
	EventLethalContact
	EventFellOut
	EventCollected
	EventCheckpointReached
	EventPlatformCollapsed
	EventLevelCompleted
	EventRespawned
)

var eventKindNames = [...]string{
	EventLanded:            "landed",
	EventLethalContact:     "lethal-contact",
	EventFellOut:           "fell-out",
	EventCollected:         "collected",
	EventCheckpointReached: "checkpoint-reached",
	EventPlatformCollapsed: "platform-collapsed",
	EventLevelCompleted:    "level-completed",
	EventRespawned:         "respawned",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// SimEvent reports something that happened during a step. Index is the
// platform, collectible or checkpoint the event refers to, -1 when none.
type SimEvent struct {
	Kind  EventKind
	Index int
	Pos   gamemath.Vec
	Value int
}

var SimEvents = events.NewEventType[SimEvent]()
