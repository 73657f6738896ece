// Package serenipy plans walking routes that trade a little distance for a
// lot of comfort: away from traffic noise, along lit streets at night and
// around steep climbs when asked.
//
// What is serenipy?
//
//	For every request it returns two routes over the same street network:
//		• Fast       the shortest walk by length
//		• Optimized  the cheapest walk under the comfort cost model
//
// Packages:
//
//	core/       thread-safe pedestrian street graph, tags, nearest-node index
//	cost/       noise, park, night and slope cost model; per-request annotation
//	dijkstra/   single-pair shortest path under a pluggable edge weight
//	bfs/        traversal and connected components
//	builder/    synthetic street districts for tests, demos and benchmarks
//	osmnet/     OpenStreetMap ingestion: walk filter, .osm files, Overpass
//	elevation/  Open-Elevation client
//	geocode/    Nominatim client with LRU cache
//	routing/    the Service façade: geocode, area cache, enrich, route
//	config/     YAML configuration with environment expansion
//	httpapi/    gin HTTP API: JSON, polyline and GeoJSON renderings
//	cmd/serenipy  `serve` and `route` subcommands
//
// Quick ASCII example:
//
//	   [S]──100 m primary, lit──[A]──100 m──[T]
//	     \                                  /
//	      └──300 m residential, unlit──[B]─┘
//
// By day the quiet detour S→B→T wins; in night mode the lit primary
// S→A→T does.
//
//	go run ./cmd/serenipy route -grid 10 -from 48.1374,11.5755 -to 48.1455,11.5876
package serenipy
