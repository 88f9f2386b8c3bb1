package manifest

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

// Manifest describes a pool of latent workers: the worker names to
// provision and, after a run, the instances that back them.
type Manifest struct {
	Name                 string                `yaml:"name"`
	Workers              []string              `yaml:"workers"`
	Tags                 map[string]string     `yaml:"tags,omitempty"`
	ProvisionedInstances []ProvisionedInstance `yaml:"provisioned_instances,omitempty"`
}

// ProvisionedInstance records the instance provisioned for one worker.
type ProvisionedInstance struct {
	Worker     string `yaml:"worker"`
	InstanceID string `yaml:"instance_id"`
	ImageID    string `yaml:"image_id"`
	Address    string `yaml:"address,omitempty"`
}

func NewFromReader(r io.Reader) (Manifest, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest: %s", err)
	}

	m := Manifest{}
	err = yaml.Unmarshal(b, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("unmarshaling YAML to manifest: %s", err)
	}

	if m.Name == "" {
		return Manifest{}, fmt.Errorf("manifest must have a name")
	}
	if len(m.Workers) == 0 {
		return Manifest{}, fmt.Errorf("manifest lists no workers")
	}

	return m, nil
}

// Write serializes the manifest. At least one provisioned instance must have
// been recorded; an empty pool output is always a caller bug.
func (m *Manifest) Write(w io.Writer) error {
	if len(m.ProvisionedInstances) == 0 {
		return fmt.Errorf("no instances have been provisioned")
	}

	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest to YAML: %s", err)
	}

	_, err = w.Write(b)
	if err != nil {
		return fmt.Errorf("writing manifest: %s", err)
	}
	return nil
}
