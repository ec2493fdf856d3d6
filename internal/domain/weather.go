package domain

import "time"

// Weather is the subset of the current-weather report the CLI can render.
// Sunrise and Sunset carry the location's own UTC offset.
type Weather struct {
	City        string
	Temperature float64
	FeelsLike   float64
	Mood        string
	TempMin     float64
	TempMax     float64
	Cloudiness  int
	Pressure    int
	Humidity    int
	WindSpeed   float64
	Sunrise     time.Time
	Sunset      time.Time
}
