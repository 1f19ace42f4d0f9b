// Package scout extracts points of interest from web articles and resolves
// them to geographic coordinates. A page is fetched, a language model lists
// the places it mentions, and each place is geocoded.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, googlemaps/, http/).
package scout
