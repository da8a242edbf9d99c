package domain

import "time"

// LocationProfile fixes the shape of a site's footfall distribution. Profiles
// are static configuration loaded once; nothing mutates them at runtime.
type LocationProfile struct {
	Popularity float64
	BaseScale  float64
}

// defaultProfile backs estimates for sites outside the catalog.
var defaultProfile = LocationProfile{Popularity: 1.0, BaseScale: 200}

// locationNames lists the catalog in a stable order so seeded draws are
// reproducible. Keep in sync with locationProfiles.
var locationNames = []string{
	"Mysore_Palace",
	"Chamundi_Hills",
	"Mysore_Zoo",
	"Brindavan_Gardens",
	"St_Philomena_Church",
	"Jaganmohan_Palace",
	"Karanji_Lake",
	"Somanathapura_Temple",
}

var locationProfiles = map[string]LocationProfile{
	"Mysore_Palace":        {Popularity: 1.5, BaseScale: 800},
	"Chamundi_Hills":       {Popularity: 1.2, BaseScale: 500},
	"Mysore_Zoo":           {Popularity: 1.3, BaseScale: 600},
	"Brindavan_Gardens":    {Popularity: 1.1, BaseScale: 450},
	"St_Philomena_Church":  {Popularity: 0.9, BaseScale: 300},
	"Jaganmohan_Palace":    {Popularity: 0.8, BaseScale: 250},
	"Karanji_Lake":         {Popularity: 0.7, BaseScale: 200},
	"Somanathapura_Temple": {Popularity: 0.6, BaseScale: 150},
}

// Locations returns the catalog site names in stable order.
func Locations() []string {
	out := make([]string, len(locationNames))
	copy(out, locationNames)
	return out
}

// KnownLocation reports whether a site is in the catalog.
func KnownLocation(location string) bool {
	_, ok := locationProfiles[location]
	return ok
}

// ProfileFor returns a site's profile, or the default profile for sites
// outside the catalog.
func ProfileFor(location string) LocationProfile {
	if p, ok := locationProfiles[location]; ok {
		return p
	}
	return defaultProfile
}

// weatherNames lists conditions in draw order for the generator.
var weatherNames = []string{"Clear", "Cloudy", "Rain", "Hot", "Humid"}

var weatherFactors = map[string]float64{
	"Clear":  1.0,
	"Cloudy": 0.95,
	"Rain":   0.6,
	"Hot":    0.8,
	"Humid":  0.9,
}

// WeatherConditions returns the known conditions in stable order.
func WeatherConditions() []string {
	out := make([]string, len(weatherNames))
	copy(out, weatherNames)
	return out
}

// WeatherFactor returns the footfall multiplier for a condition. Unknown
// conditions are neutral (1.0) rather than an error.
func WeatherFactor(condition string) float64 {
	if f, ok := weatherFactors[condition]; ok {
		return f
	}
	return 1.0
}

// monthTemperature holds the baseline temperature in °C per month (index 1-12),
// following the local climate.
var monthTemperature = [13]float64{0, 24, 26, 29, 31, 30, 27, 25, 25, 26, 26, 24, 23}

// MonthBaselineTemperature returns the baseline temperature for a month.
func MonthBaselineTemperature(m time.Month) float64 {
	if m < time.January || m > time.December {
		return monthTemperature[time.January]
	}
	return monthTemperature[m]
}

type monthDay struct {
	Month time.Month
	Day   int
}

// festivalDays is the recurring regional festival calendar: Sankranti,
// Republic Day, Ugadi, Independence Day, Ganesh Chaturthi, Gandhi Jayanti,
// Dasara, Rajyotsava, Deepavali, Christmas.
var festivalDays = map[monthDay]bool{
	{time.January, 14}:  true,
	{time.January, 26}:  true,
	{time.March, 25}:    true,
	{time.August, 15}:   true,
	{time.September, 7}: true,
	{time.October, 2}:   true,
	{time.October, 15}:  true,
	{time.November, 1}:  true,
	{time.November, 12}: true,
	{time.December, 25}: true,
}

// IsFestivalDate reports whether a date falls on a calendar festival.
func IsFestivalDate(t time.Time) bool {
	return festivalDays[monthDay{t.Month(), t.Day()}]
}
