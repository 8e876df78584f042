package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/blueshen/ik-go/ikerr"
)

// builtinStopWordDict is the one stop word file spec.md §6 says is
// always prepended ahead of whatever the YAML file names.
const builtinStopWordDict = "stopword.dic"

// yamlDoc is the on-disk shape of ik.yml, ported field-for-field from
// the original DefaultConfig struct.
type yamlDoc struct {
	MainDict         string   `yaml:"main_dict"`
	QuantifierDict   string   `yaml:"quantifier_dict"`
	StopWordDict     string   `yaml:"stop_word_dict"`
	ExtDicts         []string `yaml:"ext_dicts"`
	ExtStopWordDicts []string `yaml:"ext_stop_word_dicts"`
}

// YAMLProvider is a Provider backed by an ik.yml file. Every path it
// returns is resolved relative to the directory ik.yml lives in, the
// same root-relative scheme the original's DefaultConfig used relative
// to its crate root.
type YAMLProvider struct {
	root string
	doc  yamlDoc
}

// LoadYAML reads and parses path (an ik.yml file) into a YAMLProvider.
// A missing file is reported as *ikerr.ConfigMissingError; a malformed
// file as a plain parse error.
func LoadYAML(path string) (*YAMLProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ikerr.ConfigMissingError{Path: path}
		}
		return nil, err
	}
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &YAMLProvider{root: filepath.Dir(path), doc: doc}, nil
}

func (p *YAMLProvider) resolve(name string) string {
	return filepath.Join(p.root, name)
}

// MainDictionary implements Provider.
func (p *YAMLProvider) MainDictionary() string {
	return p.resolve(p.doc.MainDict)
}

// QuantifierDictionary implements Provider.
func (p *YAMLProvider) QuantifierDictionary() string {
	return p.resolve(p.doc.QuantifierDict)
}

// ExtDictionaries implements Provider.
func (p *YAMLProvider) ExtDictionaries() []string {
	out := make([]string, len(p.doc.ExtDicts))
	for i, d := range p.doc.ExtDicts {
		out[i] = p.resolve(d)
	}
	return out
}

// ExtStopWordDictionaries implements Provider, with the built-in stop
// word file always first.
func (p *YAMLProvider) ExtStopWordDictionaries() []string {
	out := make([]string, 0, len(p.doc.ExtStopWordDicts)+1)
	out = append(out, p.resolve(builtinStopWordDict))
	if p.doc.StopWordDict != "" {
		out = append(out, p.resolve(p.doc.StopWordDict))
	}
	for _, d := range p.doc.ExtStopWordDicts {
		out = append(out, p.resolve(d))
	}
	return out
}
