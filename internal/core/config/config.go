package config

const (
	DefaultConfigFile       = "comptree.toml"
	DefaultOutputFile       = "componentsTree.mm.md"
	DefaultTitle            = "Component Tree"
	DefaultColorFreezeLevel = 4

	ParserModeLexical = "lexical"
	ParserModeAST     = "ast"
)

// DefaultExtensions are the component-source extensions scanned when
// [scan] extensions is not set.
var DefaultExtensions = []string{".jsx", ".tsx"}

type Config struct {
	Version     int      `toml:"version"`
	Directory   string   `toml:"directory"`
	Include     []string `toml:"include"`
	IgnoreLibs  []string `toml:"ignore_libs"`
	ProjectOnly bool     `toml:"project_only"`
	Scan        Scan     `toml:"scan"`
	Parser      Parser   `toml:"parser"`
	Output      Output   `toml:"output"`
	Metrics     Metrics  `toml:"metrics"`
}

type Scan struct {
	Extensions []string `toml:"extensions"`
	Exclude    Exclude  `toml:"exclude"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Parser struct {
	Mode string `toml:"mode"`
}

type Output struct {
	Path             string `toml:"path"`
	Title            string `toml:"title"`
	ColorFreezeLevel *int   `toml:"color_freeze_level"`
}

type Metrics struct {
	File string `toml:"file"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// FreezeLevel returns the markmap colorFreezeLevel, falling back to the default.
func (o Output) FreezeLevel() int {
	if o.ColorFreezeLevel == nil {
		return DefaultColorFreezeLevel
	}
	return *o.ColorFreezeLevel
}
