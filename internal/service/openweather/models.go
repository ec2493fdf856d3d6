package openweather

// Current mirrors the fields of the /weather response the application
// consumes; everything else in the payload is ignored.
type Current struct {
	Weather  []Condition `json:"weather"`
	Main     Main        `json:"main"`
	Wind     Wind        `json:"wind"`
	Clouds   Clouds      `json:"clouds"`
	Sys      Sys         `json:"sys"`
	Timezone int         `json:"timezone"`
	Name     string      `json:"name"`
	ID       int         `json:"id"`
}

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

type Clouds struct {
	All int `json:"all"`
}

type Sys struct {
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}
