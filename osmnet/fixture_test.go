// SPDX-License-Identifier: MIT

package osmnet_test

// fixtureXML is a small Overpass answer:
//
//	1─2─3 residential lit, 3─4 footway, 2─5 primary unlit
//	5─30─31 motorway, 4─6 private service, 1─7 building,
//	3─7 pedestrian area, 4─99 steps to a missing node,
//	20─21 footway island.
const fixtureXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="Overpass API">
  <node id="1" lat="48.1370" lon="11.5750"/>
  <node id="2" lat="48.1370" lon="11.5760"/>
  <node id="3" lat="48.1370" lon="11.5770"/>
  <node id="4" lat="48.1380" lon="11.5770"/>
  <node id="5" lat="48.1360" lon="11.5760"/>
  <node id="6" lat="48.1390" lon="11.5770"/>
  <node id="7" lat="48.1380" lon="11.5750"/>
  <node id="20" lat="48.1400" lon="11.5800"/>
  <node id="21" lat="48.1401" lon="11.5800"/>
  <node id="30" lat="48.1350" lon="11.5760"/>
  <node id="31" lat="48.1340" lon="11.5760"/>
  <way id="100"><nd ref="1"/><nd ref="2"/><nd ref="3"/><tag k="highway" v="residential"/><tag k="lit" v="yes"/></way>
  <way id="101"><nd ref="3"/><nd ref="4"/><tag k="highway" v="footway"/></way>
  <way id="102"><nd ref="2"/><nd ref="5"/><tag k="highway" v="primary"/><tag k="lit" v="no"/></way>
  <way id="103"><nd ref="5"/><nd ref="30"/><nd ref="31"/><tag k="highway" v="motorway"/></way>
  <way id="104"><nd ref="4"/><nd ref="6"/><tag k="highway" v="service"/><tag k="service" v="private"/></way>
  <way id="105"><nd ref="20"/><nd ref="21"/><tag k="highway" v="footway"/></way>
  <way id="106"><nd ref="1"/><nd ref="7"/><tag k="building" v="yes"/></way>
  <way id="107"><nd ref="3"/><nd ref="7"/><tag k="highway" v="pedestrian"/><tag k="area" v="yes"/></way>
  <way id="108"><nd ref="4"/><nd ref="99"/><tag k="highway" v="steps"/></way>
</osm>`
