package service

import (
	"myregistrar/domain"
	"myregistrar/interfaces"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

// NewUUIDGenerator creates an IDGenerator backed by random (version 4) UUIDs.
func NewUUIDGenerator() interfaces.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() domain.InstanceID {
	return domain.InstanceID(uuid.NewString())
}
