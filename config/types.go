package config

// FeedConfig describes one realtime vehicle position feed
type FeedConfig struct {
	Name                string `yaml:"name" validate:"required"`
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	AgencyID            string `yaml:"agency_id" validate:"omitempty"`
}

// CRSAlias maps a short name to a projection definition
type CRSAlias struct {
	Name       string `yaml:"name" validate:"required"`
	Definition string `yaml:"definition" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Feeds            []FeedConfig `yaml:"feeds"`
	CRSAliases       []CRSAlias   `yaml:"crsAliases"`
	TargetProjection string       `yaml:"targetProjection"`
}
