package model

// SetConfig is the raw, undecoded description of one symbol set as it appears
// in pathenum.yaml or on the command line.
type SetConfig struct {
	Name    string `mapstructure:"name"`
	Package string `mapstructure:"package"`
	Output  string `mapstructure:"output"`
	Root    string `mapstructure:"root"`
	Ext     string `mapstructure:"ext"`
	Prefix  string `mapstructure:"prefix"`
	Dot     string `mapstructure:"dot"`
	Casing  string `mapstructure:"casing"`
}
