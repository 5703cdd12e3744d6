package mds

import (
	"net/url"
	"strconv"
	"time"
)

// Query holds per-call filter parameters. The zero value queries everything.
type Query struct {
	// StartTime and EndTime bound the query per the MDS spec; zero values
	// are omitted. Serialized as integer UNIX seconds.
	StartTime time.Time
	EndTime   time.Time

	// DeviceID filters for records of a single device.
	DeviceID string

	// VehicleID filters for records of a single vehicle.
	VehicleID string

	// BBox filters to a bounding box, as
	// "swLon,swLat,neLon,neLat", e.g. "-122.4183,37.7758,-122.4120,37.7858".
	BBox string

	// Extra holds additional passthrough filters; empty values are omitted.
	Extra map[string]string

	// FirstPageOnly stops after the first page instead of walking pagination.
	FirstPageOnly bool
}

// values serializes the set filters. Unset filters never appear in the
// querystring.
func (q Query) values() url.Values {
	v := url.Values{}
	if !q.StartTime.IsZero() {
		v.Set("start_time", strconv.FormatInt(q.StartTime.Unix(), 10))
	}
	if !q.EndTime.IsZero() {
		v.Set("end_time", strconv.FormatInt(q.EndTime.Unix(), 10))
	}
	if q.DeviceID != "" {
		v.Set("device_id", q.DeviceID)
	}
	if q.VehicleID != "" {
		v.Set("vehicle_id", q.VehicleID)
	}
	if q.BBox != "" {
		v.Set("bbox", q.BBox)
	}
	for key, val := range q.Extra {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}
