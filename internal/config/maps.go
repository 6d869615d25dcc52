package config

type MapsConfig struct {
	GoogleMaps       *GoogleMapsConfig `yaml:"google_maps"`
	ShowroomAddress  string            `yaml:"showroom_address"`
	DefaultLatitude  float64           `yaml:"default_latitude"`
	DefaultLongitude float64           `yaml:"default_longitude"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		GoogleMaps: &GoogleMapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
		ShowroomAddress:  getEnv("SHOWROOM_ADDRESS", "Pune, Maharashtra, India"),
		DefaultLatitude:  getEnvAsFloat64("SHOWROOM_LATITUDE", 18.5204),
		DefaultLongitude: getEnvAsFloat64("SHOWROOM_LONGITUDE", 73.8567),
	}
}
