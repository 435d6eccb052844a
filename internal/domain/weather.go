package domain

type AlertKind string

const (
	AlertWind          AlertKind = "wind"
	AlertPrecipitation AlertKind = "precipitation"
	AlertHeat          AlertKind = "heat"
	AlertCold          AlertKind = "cold"
	AlertAirQuality    AlertKind = "air_quality"
)

type WeatherAlert struct {
	Kind     AlertKind `json:"kind"`
	Headline string    `json:"headline"`
}

// WeatherContext is an immutable per-request snapshot from the weather
// provider. Alerts are passed through to the result unchanged.
type WeatherContext struct {
	Temperature     float64        `json:"temperature"`
	FeelsLike       float64        `json:"feels_like"`
	Humidity        float64        `json:"humidity"`
	WindSpeed       float64        `json:"wind_speed"`
	UVIndex         float64        `json:"uv_index"`
	AirQualityIndex int            `json:"air_quality_index"`
	PollenCount     int            `json:"pollen_count"`
	Condition       string         `json:"condition"`
	Season          string         `json:"season"`
	Alerts          []WeatherAlert `json:"alerts,omitempty"`
}

// HasAlert reports whether an alert of the given kind is present.
func (w WeatherContext) HasAlert(kind AlertKind) bool {
	for _, a := range w.Alerts {
		if a.Kind == kind {
			return true
		}
	}
	return false
}
