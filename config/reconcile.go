package config

// Reconcile schedules the counter repair job. Empty Spec disables it.
type Reconcile struct {
	Spec string `json:"spec" yaml:"spec"`
}

func ProvideReconcileConfig(cfg *Config) *Reconcile {
	return cfg.Reconcile
}
