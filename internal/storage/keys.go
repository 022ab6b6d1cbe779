package storage

import "respire/internal/structures"

// Keys is the logical key space, prefixed with store.namespace.
type Keys struct {
	QuitDate       string
	UnitsPerDay    string
	ConversionRate string
	CostPerPack    string
	SchemaVersion  string
	Logs           string
	Bounties       string
}

func NewKeys(conf *structures.Config) Keys {
	ns := conf.Store.Namespace
	if ns == "" {
		ns = "respire"
	}
	key := func(name string) string { return ns + ":" + name }
	return Keys{
		QuitDate:       key("quit_date"),
		UnitsPerDay:    key("cigs_per_day"),
		ConversionRate: key("conversion_rate"),
		CostPerPack:    key("cost_per_pack"),
		SchemaVersion:  key("schema_version"),
		Logs:           key("logs"),
		Bounties:       key("bounties"),
	}
}

// All lists every key, used by factory reset.
func (k Keys) All() []string {
	return []string{k.QuitDate, k.UnitsPerDay, k.ConversionRate, k.CostPerPack, k.SchemaVersion, k.Logs, k.Bounties}
}
