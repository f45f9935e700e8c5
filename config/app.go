package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// NodeID seeds the snowflake generator, 0..1023
	NodeID int64 `json:"node_id" yaml:"node_id"`
}
