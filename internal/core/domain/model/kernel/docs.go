// Package kernel holds value objects shared by every aggregate of the orders
// domain. Today that is the UUID identifier used for orders.
package kernel
