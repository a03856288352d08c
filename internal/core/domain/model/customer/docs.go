// Package customer contains the read-only Customer entity and its tier
// classification. The customer directory is an external collaborator; the
// ordering core only reads customers to snapshot their address and derive
// the discount rate when an order is created.
package customer
