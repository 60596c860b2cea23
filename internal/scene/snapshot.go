package scene

// Snapshot is an immutable view of the instance collection.
// Instances are in insertion order.
type Snapshot struct {
	Version   uint64
	instances []Instance
}

// Instances returns a copy of the instances
func (s Snapshot) Instances() []Instance {
	out := make([]Instance, len(s.instances))
	copy(out, s.instances)
	return out
}

// Len returns the number of instances
func (s Snapshot) Len() int { return len(s.instances) }

// Get returns the instance with the given id
func (s Snapshot) Get(id int) (Instance, bool) {
	for _, inst := range s.instances {
		if inst.ID == id {
			return inst, true
		}
	}
	return Instance{}, false
}
