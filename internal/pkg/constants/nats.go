package constants

// NATS Subjects
const (
	// Dispatch events
	SubjectOfferPush     = "dispatch.offer.push"
	SubjectOfferExpired  = "dispatch.offer.expired"
	SubjectOfferAccepted = "dispatch.offer.accepted"
	SubjectNoDrivers     = "dispatch.no_drivers"

	// Trip lifecycle events
	SubjectTripAccepted  = "trip.accepted"
	SubjectTripArrived   = "trip.arrived"
	SubjectTripStarted   = "trip.started"
	SubjectTripCompleted = "trip.completed"
	SubjectTripCancelled = "trip.cancelled"

	// Driver events
	SubjectDriverOffline = "driver.forced_offline"
)

// NSQ topics
const (
	TopicRiderNotifications  = "rider-notifications"
	TopicDriverNotifications = "driver-notifications"
)
