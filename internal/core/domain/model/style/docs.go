// Package style implements the GarmentStyle aggregate: the catalog of garment
// cuts the atelier offers and the measurement fields each cut requires.
package style
