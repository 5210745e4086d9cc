package services

import (
	"realtime-relay/contract"
	"realtime-relay/domain"

	"github.com/samber/lo"
)

const allTypes = "all"

type ConnectionList struct {
	Total       int                     `json:"total"`
	Type        string                  `json:"type"`
	Connections []domain.ConnectionView `json:"connections"`
}

type Stats struct {
	Rooms       map[string]int          `json:"rooms"`
	Connections domain.ConnectionCounts `json:"connections"`
}

// StatsReporter is a read-only view over the registry and the delivery groups.
type StatsReporter struct {
	registry contract.IRegistry
	hub      contract.IHub
}

func NewStatsReporter(registry contract.IRegistry, hub contract.IHub) *StatsReporter {
	return &StatsReporter{registry: registry, hub: hub}
}

// RoomCounts never reports a label that is a live connection id.
func (s *StatsReporter) RoomCounts() map[string]int {
	sizes := s.hub.RoomSizes()
	for _, conn := range s.registry.ListAll("") {
		delete(sizes, conn.ConnectionID)
	}
	return sizes
}

func (s *StatsReporter) ConnectionCounts() domain.ConnectionCounts {
	return s.registry.CountsByType()
}

func (s *StatsReporter) Stats() Stats {
	return Stats{Rooms: s.RoomCounts(), Connections: s.ConnectionCounts()}
}

// ListConnections filters by actor type; an empty filter lists everyone.
func (s *StatsReporter) ListConnections(filter domain.ActorType) ConnectionList {
	views := lo.Map(s.registry.ListAll(filter), func(c domain.Connection, _ int) domain.ConnectionView {
		return c.View()
	})
	typ := string(filter)
	if typ == "" {
		typ = allTypes
	}
	return ConnectionList{Total: len(views), Type: typ, Connections: views}
}
