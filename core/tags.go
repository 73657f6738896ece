// SPDX-License-Identifier: MIT
//
// File: tags.go
// Role: Road classification and lighting tags with total parsers.
// Determinism:
//   - ParseClassification and ParseLit are pure; unknown input never fails.

package core

import "strings"

// Classification is the road type of an edge, taken from the OSM "highway" tag.
//
// The named constants cover the values the default cost table knows about.
// Any other upstream value is kept verbatim (after normalisation) so that a
// configured weight table can address it; ClassUnknown stands for a missing tag.
type Classification string

// Recognised road classifications.
const (
	ClassUnknown      Classification = "unknown"
	ClassMotorway     Classification = "motorway"
	ClassTrunk        Classification = "trunk"
	ClassPrimary      Classification = "primary"
	ClassSecondary    Classification = "secondary"
	ClassTertiary     Classification = "tertiary"
	ClassResidential  Classification = "residential"
	ClassLivingStreet Classification = "living_street"
	ClassService      Classification = "service"
	ClassFootway      Classification = "footway"
	ClassCycleway     Classification = "cycleway"
	ClassPedestrian   Classification = "pedestrian"
	ClassTrack        Classification = "track"
	ClassPath         Classification = "path"
	ClassSteps        Classification = "steps"
)

// KnownClassifications lists the named classifications in a stable order.
var KnownClassifications = []Classification{
	ClassMotorway, ClassTrunk, ClassPrimary, ClassSecondary, ClassTertiary,
	ClassResidential, ClassLivingStreet, ClassService, ClassFootway,
	ClassCycleway, ClassPedestrian, ClassTrack, ClassPath, ClassSteps,
}

// ParseClassification normalises a raw highway tag.
//
// Behavior highlights:
//   - Surrounding whitespace is trimmed and the value lower-cased.
//   - Multi-valued tags ("footway;path", or a list flattened by an upstream
//     tool as "[footway, path]") resolve to their first element.
//   - An empty value yields ClassUnknown.
func ParseClassification(raw string) Classification {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if i := strings.IndexAny(s, ";,"); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(strings.TrimSpace(s), `'"`)
	if s == "" {
		return ClassUnknown
	}

	return Classification(s)
}

// Known reports whether c is one of the named classifications.
func (c Classification) Known() bool {
	for _, k := range KnownClassifications {
		if c == k {
			return true
		}
	}

	return false
}

// Lit is the tri-state lighting tag of an edge.
type Lit uint8

const (
	// LitUnknown means the way carries no lighting information.
	LitUnknown Lit = iota
	// LitYes means the way is lit at night.
	LitYes
	// LitNo means the way is explicitly unlit.
	LitNo
)

// ParseLit maps an OSM "lit" value to the tri-state.
// "" → unknown; "no", "disused", "off" → no; any other value (yes, 24/7,
// automatic, limited, interval, sunset-sunrise, …) → yes.
func ParseLit(raw string) Lit {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return LitUnknown
	case "no", "disused", "off":
		return LitNo
	default:
		return LitYes
	}
}

// String returns "yes", "no" or "unknown".
func (l Lit) String() string {
	switch l {
	case LitYes:
		return "yes"
	case LitNo:
		return "no"
	default:
		return "unknown"
	}
}
