package configs

// Store selects the registry/ledger persistence driver. "memory" keeps the
// keyed stores in process (dev mode, no durability); "postgres" uses the
// database configured in the Psql section.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}
