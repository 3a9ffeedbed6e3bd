package platform

// Package platform contains OS integration helpers: filesystem setup,
// converter discovery, and opening/revealing downloaded files.
