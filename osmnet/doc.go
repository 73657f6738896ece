// SPDX-License-Identifier: MIT

// Package osmnet turns OpenStreetMap data into walkable core.Graph street
// networks.
//
// Decode reads OSM XML (as served by Overpass or exported to a .osm file),
// keeps ways a pedestrian may use (see Walkable), splits each way into one
// undirected edge per consecutive node pair with a haversine length, copies
// the highway and lit tags, and finally retains only the largest connected
// component so every routable node can reach every other.
//
// Two routing.MapProvider implementations are offered:
//
//   - Overpass: queries an Overpass API endpoint for each footprint.
//   - Static:   serves footprints out of one pre-loaded graph (LoadFile),
//     for offline deployments and tests.
//
// Errors:
//
//   - ErrDecode   malformed OSM XML.
//   - ErrOverpass the Overpass endpoint answered with a non-200 status.
package osmnet
