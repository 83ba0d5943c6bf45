package model

import (
	"fmt"
	"time"
)

// UTCOffset is a signed offset from UTC in minutes
type UTCOffset int

// Location returns a fixed zone for the offset
func (o UTCOffset) Location() *time.Location {
	return time.FixedZone(o.String(), int(o)*60)
}

// String formats the offset as UTC+hh:mm
func (o UTCOffset) String() string {
	sign := '+'
	m := int(o)
	if m < 0 {
		sign = '-'
		m = -m
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, m/60, m%60)
}

// UTCOffsetFromSeconds sums raw and daylight-saving offsets given in seconds
func UTCOffsetFromSeconds(rawOffset, dstOffset int) UTCOffset {
	return UTCOffset((rawOffset + dstOffset) / 60)
}

// Device identifies the voice device an action was spoken to
type Device struct {
	ID           string
	APIEndpoint  string
	ConsentToken ConsentToken
}

// HasLocationAccess reports whether the device carries what an address lookup needs
func (d *Device) HasLocationAccess() bool {
	return d != nil && d.ID != "" && d.APIEndpoint != "" && d.ConsentToken != ""
}

// Address is the coarse postal address of a device
type Address struct {
	CountryCode string
	PostalCode  string
}

// Query returns the address as a geocoding query
func (a Address) Query() string {
	return fmt.Sprintf("%s, %s", a.PostalCode, a.CountryCode)
}

// Coordinates is a geographic position
type Coordinates struct {
	Lat float64
	Lng float64
}
