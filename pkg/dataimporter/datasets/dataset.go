package datasets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

type DataSetFormat string

const (
	DataSetFormatRailCSV DataSetFormat = "rail-csv"
)

// DataSet describes one importable timetable source.
type DataSet struct {
	Identifier string        `yaml:"Identifier"`
	Format     DataSetFormat `yaml:"Format"`

	Provider Provider `yaml:"Provider"`

	Source string `yaml:"Source"`
}

type Provider struct {
	Name    string `yaml:"Name"`
	Website string `yaml:"Website"`
}

//go:embed data/datasets.yaml
var datasetsYaml []byte

func GetRegisteredDataSets() []DataSet {
	var datasets []DataSet

	if err := yaml.Unmarshal(datasetsYaml, &datasets); err != nil {
		return nil
	}

	return datasets
}

func GetDataSet(identifier string) (DataSet, error) {
	for _, dataset := range GetRegisteredDataSets() {
		if dataset.Identifier == identifier {
			return dataset, nil
		}
	}

	return DataSet{}, fmt.Errorf("unknown dataset %s", identifier)
}
