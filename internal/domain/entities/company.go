package entities

// Company is the slice of the external company domain the engine needs:
// the registered address snapshotted into the order's billing address at
// quote time. The company model itself is owned elsewhere.
type Company struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	RegisteredAddress Address `json:"registered_address"`
}
