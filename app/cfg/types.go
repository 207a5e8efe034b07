package cfg

// Cfg holds process-level configuration from flags and environment. Album
// settings live in the YAML file named by ConfigFile.
type Cfg struct {
	ConfigFile string
	Timeout    int
	UserAgent  string
	DryRun     bool
	Debug      bool
	Version    string
}
