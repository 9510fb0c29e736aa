// Package tailor implements the Tailor aggregate: the atelier's production
// roster. Tailors declare specialty styles and a concurrent-work capacity;
// the assignment flow matches awaiting orders against both.
package tailor
