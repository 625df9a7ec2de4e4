package commands

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/graph"
	"github.com/teranos/sankeyfmt/persist"
)

// Dataset is a render fixture. JSON files parse too, as JSON is a YAML subset.
type Dataset struct {
	NodeColors map[string]string      `yaml:"node_colors"`
	Palette    []string               `yaml:"palette"`
	Flows      []graph.Flow           `yaml:"flows"`
	Positions  []persist.NodePosition `yaml:"positions"`
}

// loadDataset reads and checks a dataset file
func loadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dataset %s", path)
	}
	return parseDataset(data, path)
}

func parseDataset(data []byte, name string) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset %s", name)
	}
	if len(ds.Flows) == 0 {
		return nil, errors.WithHint(
			errors.Newf("dataset %s has no flows", name),
			"add a 'flows' list of {source, destination, weight} entries",
		)
	}
	for i, f := range ds.Flows {
		if f.Source == "" || f.Destination == "" {
			return nil, errors.Newf("dataset %s: flow %d needs both source and destination", name, i)
		}
	}
	return &ds, nil
}
