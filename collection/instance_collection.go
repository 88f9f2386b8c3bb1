package collection

import (
	"sync"

	"ec2-latent-worker/manifest"
)

// Instance accumulates provisioned instances from concurrently running
// controllers.
type Instance struct {
	sync.Mutex
	instances []manifest.ProvisionedInstance
}

func (c *Instance) Add(instance manifest.ProvisionedInstance) {
	c.Lock()
	defer c.Unlock()

	c.instances = append(c.instances, instance)
}

func (c *Instance) GetAll() []manifest.ProvisionedInstance {
	c.Lock()
	defer c.Unlock()

	return c.instances
}
