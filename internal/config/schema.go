package config

// Config is the top-level YAML structure.
type Config struct {
	Version string     `yaml:"version"`
	Batch   BatchConf  `yaml:"batch"`
	Server  ServerConf `yaml:"server"`
}

// BatchConf drives the batch runner: which graph files to process and
// how the shortest-path pass is parameterized.
type BatchConf struct {
	GraphDir   string   `yaml:"graph_dir"`
	Graphs     []string `yaml:"graphs"` // file names sans extension
	SourceNode string   `yaml:"source_node"`
	Directed   bool     `yaml:"directed"`
	Workers    int      `yaml:"workers"`
	Seed       int64    `yaml:"seed"` // weight source for label-less edges
}

// ServerConf holds the optional HTTP query API settings.
type ServerConf struct {
	Addr string `yaml:"addr"`
}
