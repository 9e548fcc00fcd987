package handlers

// HandlerBundle groups the endpoint handlers handed to route registration.
type HandlerBundle struct {
	Business *BusinessHandler
	Customer *CustomerHandler
	Booking  *BookingHandler
	Admin    *AdminHandler
	QRCode   *QRCodeHandler
}
