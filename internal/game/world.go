package game

import "flightsim/internal/maps"

// World holds the two textured planes every pilot flies over.
type World struct {
	Ground *maps.Texture
	Cloud  *maps.Texture
}

// NewWorld creates a world from the given textures. A nil texture falls back
// to the compiled-in one.
func NewWorld(ground, cloud *maps.Texture) *World {
	if ground == nil {
		ground = maps.Ground()
	}
	if cloud == nil {
		cloud = maps.Cloud()
	}
	return &World{Ground: ground, Cloud: cloud}
}

// DefaultWorld returns a world using the compiled-in textures.
func DefaultWorld() *World {
	return NewWorld(nil, nil)
}
