package interfaces

import "myregistrar/domain"

// IDGenerator produces the identifier of this running process.
//
//go:generate moq -stub -out mock/id_generator.go -pkg mock . IDGenerator
type IDGenerator interface {
	// NewID returns an id that is unique with overwhelming probability.
	NewID() domain.InstanceID
}
