// Package order provides the Order aggregate of the artisan orders service.
//
// An Order is a single customer commission: who ordered (client name and phone),
// what was ordered (free-form details), the agreed price, and where the piece
// stands in its lifecycle.
//
// Key business rules:
//   - an order gets its identifier and UTC creation time once, at creation
//   - a new order always starts as Pending
//   - Status is a closed set {Pending, Ready, Delivered}; any other value is rejected
//     by ParseStatus before it can reach an Order
//   - the status is the only field that changes after creation
//   - client name, phone, details and price carry no format or range rules
package order
