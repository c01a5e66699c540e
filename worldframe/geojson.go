package worldframe

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridnav/occupancy"
)

// Feature "kind" property values.
// Values of the "kind" property on exported features.
const (
	// KindPath marks the planned route.
	KindPath = "path"
	// KindObstacles marks the obstacle cells of the grid.
	KindObstacles = "obstacles"
)

// PathFeature wraps a grid path as a GeoJSON feature in world coordinates:
// a LineString, or a Point when the path is a single cell. It returns nil for
// an empty path. props are copied onto the feature.
func (f Frame) PathFeature(path []occupancy.Position, props map[string]any) *geojson.Feature {
	var geom orb.Geometry
	switch len(path) {
	case 0:
		return nil
	case 1:
		geom = f.ToWorld(path[0])
	default:
		geom = f.Trace(path)
	}
	feat := geojson.NewFeature(geom)
	for k, v := range props {
		feat.Properties[k] = v
	}
	feat.Properties["kind"] = KindPath
	feat.Properties["steps"] = len(path) - 1
	feat.Properties["length"] = f.Length(path)
	return feat
}

// ObstacleFeature collects the grid's obstacle cell centres into one
// MultiPoint feature. It returns nil when the grid has no obstacles.
func (f Frame) ObstacleFeature(grid *occupancy.Grid) *geojson.Feature {
	cells := grid.Obstacles()
	if len(cells) == 0 {
		return nil
	}
	mp := make(orb.MultiPoint, len(cells))
	for i, c := range cells {
		mp[i] = f.ToWorld(c)
	}
	feat := geojson.NewFeature(mp)
	feat.Properties["kind"] = KindObstacles
	feat.Properties["count"] = len(cells)
	return feat
}

// Collection bundles the path and, when grid is non-nil, its obstacles.
func (f Frame) Collection(path []occupancy.Position, grid *occupancy.Grid, props map[string]any) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if feat := f.PathFeature(path, props); feat != nil {
		fc.Append(feat)
	}
	if grid != nil {
		if feat := f.ObstacleFeature(grid); feat != nil {
			fc.Append(feat)
		}
	}
	return fc
}

// MarshalGeoJSON renders Collection as GeoJSON bytes.
func (f Frame) MarshalGeoJSON(path []occupancy.Position, grid *occupancy.Grid, props map[string]any) ([]byte, error) {
	return f.Collection(path, grid, props).MarshalJSON()
}
