package model

// Duplicates holds the buckets of entries sharing a key. Only buckets with
// more than one member are kept. Source is the pair the buckets were drawn
// from; it resolves the group references of the params.
type Duplicates struct {
	Source Entries
	Groups [][]Group
	Params [][]Param
}

// FlattenGroups returns the members of every group bucket in bucket order.
func (d Duplicates) FlattenGroups() []Group {
	var groups []Group
	for _, bucket := range d.Groups {
		groups = append(groups, bucket...)
	}

	return groups
}

// FlattenParams returns the members of every param bucket in bucket order.
func (d Duplicates) FlattenParams() []Param {
	var params []Param
	for _, bucket := range d.Params {
		params = append(params, bucket...)
	}

	return params
}
